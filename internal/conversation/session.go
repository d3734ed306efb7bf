package conversation

import (
	"strings"
	"sync"
	"time"
)

// Kind names a conversation state machine.
type Kind string

const (
	// KindPreOrder collects quantity and comment for a catalog item.
	KindPreOrder Kind = "preorder"
	// KindClubJoin collects the enrollment questionnaire.
	KindClubJoin Kind = "clubjoin"
)

// Step is the current position inside a conversation.
type Step string

const (
	StepQuantity  Step = "quantity"
	StepComment   Step = "comment"
	StepName      Step = "name"
	StepPhone     Step = "phone"
	StepEmail     Step = "email"
	StepAgreement Step = "agreement"
)

// Reserved reply tokens. Cancel matches case-insensitively; skip and agree
// must match exactly, any other text at those steps is treated as data
// (skip) or refusal (agree).
const (
	CancelToken = "Отмена"
	SkipToken   = "Пропустить"
	AgreeToken  = "Согласен"
)

// IsCancel reports whether the text is the universal cancel token.
func IsCancel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), CancelToken)
}

// Event is one inbound user turn fed to an active conversation.
type Event struct {
	Text string
}

// Status classifies the outcome of one transition.
type Status int

const (
	// StatusContinue means the conversation expects another turn.
	StatusContinue Status = iota
	// StatusCompleted means the form is filled; Fields carries the result.
	StatusCompleted
	// StatusCancelled means the user aborted; no side effects happened.
	StatusCancelled
	// StatusDeclined means the user refused the agreement step; the
	// conversation ends without enrollment and without being an error.
	StatusDeclined
)

// Keyboard hints tell the rendering layer which reply keyboard to attach.
// The engine itself never touches transport types.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardCancel
	KeyboardSkipCancel
	KeyboardAgreeCancel
)

// StepResult is the outcome of starting or advancing a conversation.
type StepResult struct {
	Status   Status
	Prompt   string
	Keyboard Keyboard
	// Fields holds the collected form on StatusCompleted, nil otherwise.
	Fields map[string]string
}

// Session is one live multi-step form for one chat.
type Session struct {
	ChatID int64
	Kind   Kind
	Step   Step
	Fields map[string]string

	mu        sync.Mutex
	startedAt time.Time
	touchedAt time.Time
	ended     bool
}

func (s *Session) touch(now time.Time) {
	s.touchedAt = now
}

func (s *Session) set(key, value string) {
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[key] = value
}

func (s *Session) snapshot() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		out[k] = v
	}
	return out
}
