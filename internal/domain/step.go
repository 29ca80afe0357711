package domain

type StepRecord struct {
	Timestep       int
	Position       Position
	CarryingAmount int
	Action         string
	Done           bool
}

// PollResult is one of StepPolled, NoStepAvailable or TransportFailure.
type PollResult interface {
	isPollResult()
}

type StepPolled struct {
	Record StepRecord
}

// NoStepAvailable means the agent has not produced a new step yet. It is not an error.
type NoStepAvailable struct{}

type TransportFailure struct {
	Err error
}

func (StepPolled) isPollResult()       {}
func (NoStepAvailable) isPollResult()  {}
func (TransportFailure) isPollResult() {}

func (f TransportFailure) Error() string {
	if f.Err == nil {
		return "transport failure"
	}
	return f.Err.Error()
}

func (f TransportFailure) Unwrap() error {
	return f.Err
}
