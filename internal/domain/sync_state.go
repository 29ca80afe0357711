package domain

import "fmt"

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseBootstrapping Phase = "bootstrapping"
	PhaseRunning       Phase = "running"
	PhaseEnded         Phase = "ended"
	PhaseFailed        Phase = "failed"
)

// Entity is the local handle for one remotely simulated agent.
type Entity struct {
	ID           AgentID
	Position     Position
	Carrying     int
	Action       string
	LastTimestep int
	Observed     int
}

// SyncState is the progress and entity model of one session. A restart
// replaces it wholesale; it is never patched across sessions.
type SyncState struct {
	CurrentStep int
	TotalSteps  int
	Ended       bool
	Entities    map[AgentID]*Entity
}

func NewSyncState(descriptor SessionDescriptor) *SyncState {
	entities := make(map[AgentID]*Entity, len(descriptor.Agents))
	for _, agent := range descriptor.Agents {
		entities[agent.ID] = &Entity{
			ID:       agent.ID,
			Position: agent.InitialPosition,
			Carrying: agent.InitialLoad,
		}
	}

	return &SyncState{
		TotalSteps: descriptor.TotalSteps,
		Entities:   entities,
	}
}

// ApplyStep moves the agent's entity to the step position unconditionally.
func (s *SyncState) ApplyStep(id AgentID, record StepRecord) (*Entity, error) {
	entity, ok := s.Entities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAgent, id)
	}

	entity.Position = record.Position
	entity.Carrying = record.CarryingAmount
	entity.Action = record.Action
	entity.LastTimestep = record.Timestep
	entity.Observed++

	return entity, nil
}

// AdvanceClock folds a clock-agent step into global progress. currentStep never
// decreases and never exceeds TotalSteps. It reports true only on the step that
// ends the session.
func (s *SyncState) AdvanceClock(record StepRecord) bool {
	if s.Ended {
		return false
	}

	next := record.Timestep
	if next < s.CurrentStep {
		next = s.CurrentStep
	}
	if next < 0 {
		next = 0
	}
	if next > s.TotalSteps {
		next = s.TotalSteps
	}
	s.CurrentStep = next

	if record.Done {
		s.Ended = true
		return true
	}

	return false
}
