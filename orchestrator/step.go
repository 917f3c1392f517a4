package orchestrator

// Action is a unit of remote work executed against a session.
type Action func(session *Session) error

// Step pairs a named forward action with an optional compensating
// action. The compensator undoes the forward action when a later step
// in the same transaction fails.
type Step struct {
	name        string
	run         Action
	compensator Action
}

func NewStep(name string, run Action) Step {
	return Step{name: name, run: run}
}

func (step Step) WithCompensator(compensator Action) Step {
	step.compensator = compensator
	return step
}

func (step Step) Name() string {
	return step.name
}

func (step Step) Run(session *Session) error {
	return step.run(session)
}

func (step Step) HasCompensator() bool {
	return step.compensator != nil
}

func (step Step) Compensate(session *Session) error {
	return step.compensator(session)
}
