package application

import (
	"time"

	"github.com/bnema/simsync/internal/domain"
)

type EntityStatus struct {
	ID           domain.AgentID
	Position     domain.Position
	Carrying     int
	Action       string
	LastTimestep int
	Observed     int
}

type SyncSnapshot struct {
	Phase        domain.Phase
	SessionID    string
	ClockAgentID domain.AgentID
	GridWidth    int
	GridHeight   int
	CurrentStep  int
	TotalSteps   int
	Ended        bool
	Entities     []EntityStatus
	Objects      []domain.ObjectSpec
	Rounds       int
	LastError    string
	StartedAt    time.Time
}

// Percent is the clock-agent progress in [0,1].
func (s SyncSnapshot) Percent() float64 {
	if s.TotalSteps <= 0 {
		return 0
	}
	p := float64(s.CurrentStep) / float64(s.TotalSteps)
	if p > 1 {
		return 1
	}
	return p
}
