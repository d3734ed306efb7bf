package conversation

// Machine is one conversation kind expressed as an explicit state machine:
// a single transition function consumes the session and an event and yields
// the next prompt or a terminal result.
type Machine interface {
	Kind() Kind
	// Start initializes a fresh session (first step, seeded fields already
	// applied by the registry) and returns the opening prompt.
	Start(s *Session) StepResult
	// Advance applies one user turn. Terminal statuses (Completed,
	// Cancelled, Declined) end the session; the registry evicts it.
	Advance(s *Session, ev Event) StepResult
}

func cancelled() StepResult {
	return StepResult{
		Status:   StatusCancelled,
		Prompt:   "Отменено.",
		Keyboard: KeyboardMain,
	}
}
