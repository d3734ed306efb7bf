package conversation

// ClubJoin is the four-step enrollment questionnaire: name, phone, e-mail,
// personal-data agreement.
type ClubJoin struct{}

func (ClubJoin) Kind() Kind { return KindClubJoin }

func (ClubJoin) Start(s *Session) StepResult {
	s.Step = StepName
	return StepResult{
		Status: StatusContinue,
		Prompt: "RIDNESS Club — 10 % скидка на сезонную коллекцию и доступ к предзаказу новинок.\n" +
			"Для вступления заполните анкету.\n\nВаше имя и фамилия:",
		Keyboard: KeyboardCancel,
	}
}

func (ClubJoin) Advance(s *Session, ev Event) StepResult {
	if IsCancel(ev.Text) {
		return cancelled()
	}

	switch s.Step {
	case StepName:
		s.set(FieldName, ev.Text)
		s.Step = StepPhone
		return StepResult{
			Status:   StatusContinue,
			Prompt:   "Номер телефона:",
			Keyboard: KeyboardCancel,
		}
	case StepPhone:
		s.set(FieldPhone, ev.Text)
		s.Step = StepEmail
		return StepResult{
			Status:   StatusContinue,
			Prompt:   "E-mail:",
			Keyboard: KeyboardCancel,
		}
	case StepEmail:
		s.set(FieldEmail, ev.Text)
		s.Step = StepAgreement
		return StepResult{
			Status: StatusContinue,
			Prompt: "Вы подтверждаете согласие на обработку персональных данных?\n" +
				"Подробнее: https://ridness.ru/privacy",
			Keyboard: KeyboardAgreeCancel,
		}
	case StepAgreement:
		if ev.Text != AgreeToken {
			return StepResult{
				Status:   StatusDeclined,
				Prompt:   "Для вступления требуется согласие.",
				Keyboard: KeyboardMain,
			}
		}
		return StepResult{
			Status:   StatusCompleted,
			Keyboard: KeyboardMain,
			Fields:   s.snapshot(),
		}
	default:
		return cancelled()
	}
}

// Field keys collected by the enrollment conversation. FieldName is shared
// with the preorder form.
const (
	FieldPhone = "phone"
	FieldEmail = "email"
)
