package ports

import (
	"context"

	"github.com/bnema/simsync/internal/domain"
)

type SimulationAPI interface {
	Reset(ctx context.Context) error
	FetchSession(ctx context.Context) (domain.SessionDescriptor, error)
	// NextStep returns domain.ErrNoStepAvailable when the agent has nothing new yet.
	NextStep(ctx context.Context, id domain.AgentID) (domain.StepRecord, error)
}
