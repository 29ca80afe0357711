package application

import (
	"context"
	"fmt"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
	"github.com/mudler/xlog"
)

// BootstrapStage is the remote call a bootstrap attempt is waiting on.
type BootstrapStage int

const (
	StageResetting BootstrapStage = iota
	StageFetching
)

func (s BootstrapStage) String() string {
	switch s {
	case StageResetting:
		return "Resetting simulation"
	case StageFetching:
		return "Fetching session"
	default:
		return "Bootstrapping"
	}
}

type Bootstrapper struct {
	api          ports.SimulationAPI
	clockAgentID domain.AgentID
	skipReset    bool
	onStage      func(BootstrapStage)
}

func NewBootstrapper(api ports.SimulationAPI, clockAgentID domain.AgentID, skipReset bool) *Bootstrapper {
	return &Bootstrapper{api: api, clockAgentID: clockAgentID, skipReset: skipReset}
}

// OnStage registers fn to be called before each remote call of Bootstrap.
func (b *Bootstrapper) OnStage(fn func(BootstrapStage)) *Bootstrapper {
	b.onStage = fn
	return b
}

func (b *Bootstrapper) enter(stage BootstrapStage) {
	if b.onStage != nil {
		b.onStage(stage)
	}
}

// Bootstrap resets the remote simulation and fetches a fresh session
// descriptor. A failed reset is logged and ignored; a failed fetch is fatal to
// the attempt and wraps domain.ErrBootstrapFailed.
func (b *Bootstrapper) Bootstrap(ctx context.Context) (domain.SessionDescriptor, error) {
	if !b.skipReset {
		b.enter(StageResetting)
		if err := b.api.Reset(ctx); err != nil {
			if ctx.Err() != nil {
				return domain.SessionDescriptor{}, ctx.Err()
			}
			xlog.Warn("simulation reset failed, continuing with session fetch", "error", err)
		}
	}

	b.enter(StageFetching)
	descriptor, err := b.api.FetchSession(ctx)
	if err != nil {
		return domain.SessionDescriptor{}, fmt.Errorf("%w: %w", domain.ErrBootstrapFailed, err)
	}

	if !descriptor.HasAgent(b.clockAgentID) {
		return domain.SessionDescriptor{}, fmt.Errorf("%w: %w: id %d", domain.ErrBootstrapFailed, domain.ErrClockAgentMissing, b.clockAgentID)
	}

	return descriptor, nil
}
