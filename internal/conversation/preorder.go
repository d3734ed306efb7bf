package conversation

// Field keys collected by the preorder conversation. The item, member name
// and contact are seeded from the triggering selection before Start.
const (
	FieldItem    = "item"
	FieldName    = "name"
	FieldContact = "contact"
	FieldQty     = "qty"
	FieldComment = "comment"
)

// PreOrder is the two-step preorder form: quantity, then optional comment.
type PreOrder struct{}

func (PreOrder) Kind() Kind { return KindPreOrder }

func (PreOrder) Start(s *Session) StepResult {
	s.Step = StepQuantity
	return StepResult{
		Status:   StatusContinue,
		Prompt:   "Количество:",
		Keyboard: KeyboardCancel,
	}
}

func (PreOrder) Advance(s *Session, ev Event) StepResult {
	if IsCancel(ev.Text) {
		return cancelled()
	}

	switch s.Step {
	case StepQuantity:
		s.set(FieldQty, ev.Text)
		s.Step = StepComment
		return StepResult{
			Status:   StatusContinue,
			Prompt:   "Комментарий (или «Пропустить»):",
			Keyboard: KeyboardSkipCancel,
		}
	case StepComment:
		if ev.Text != SkipToken {
			s.set(FieldComment, ev.Text)
		}
		return StepResult{
			Status:   StatusCompleted,
			Prompt:   "Спасибо! Мы свяжемся с вами 📩",
			Keyboard: KeyboardMain,
			Fields:   s.snapshot(),
		}
	default:
		// Unknown step means corrupted state; end as cancelled.
		return cancelled()
	}
}
