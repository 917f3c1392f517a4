package orchestrator

// State describes where a transaction is in its lifecycle. RolledBack
// and Committed are terminal.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateCommitted
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Transaction executes an ordered list of steps. If a step fails, the
// compensators of every previously-succeeded step are invoked in
// reverse order; compensation is best effort and never aborts early.
// A Transaction value is single use.
type Transaction struct {
	steps  []Step
	logger Logger
	state  State
}

func NewTransaction(logger Logger, steps ...Step) *Transaction {
	return &Transaction{steps: steps, logger: logger, state: StateNotStarted}
}

func (transaction *Transaction) State() State {
	return transaction.state
}

// Run returns nil when every step succeeded. Otherwise it returns an
// Error whose first element is the failure that triggered the rollback,
// followed by any compensation failures in the order they occurred.
func (transaction *Transaction) Run(session *Session) Error {
	transaction.state = StateRunning

	for index, step := range transaction.steps {
		transaction.logger.Info("transaction", "Running step '%s'", step.Name())

		err := step.Run(session)
		if err == nil {
			continue
		}

		transaction.logger.Error("transaction", "Step '%s' failed: %s", step.Name(), err)
		errs := Error{asRemoteCommandError(err)}
		errs = append(errs, transaction.compensate(session, index)...)
		transaction.state = StateRolledBack
		return errs
	}

	transaction.state = StateCommitted
	return nil
}

func (transaction *Transaction) compensate(session *Session, failedIndex int) Error {
	var errs Error

	for index := failedIndex - 1; index >= 0; index-- {
		step := transaction.steps[index]
		if !step.HasCompensator() {
			continue
		}

		transaction.logger.Info("transaction", "Compensating step '%s'", step.Name())
		if err := step.Compensate(session); err != nil {
			transaction.logger.Error("transaction", "Compensation of step '%s' failed: %s", step.Name(), err)
			errs = append(errs, NewCompensationError(step.Name(), err))
		}
	}

	return errs
}

func asRemoteCommandError(err error) error {
	switch err.(type) {
	case RemoteCommandError, TagResolutionError, ConfigError:
		return err
	default:
		return RemoteCommandError{err}
	}
}
