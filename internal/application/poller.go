package application

import (
	"context"
	"errors"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
	"github.com/mudler/xlog"
)

type Poller struct {
	api ports.SimulationAPI
}

func NewPoller(api ports.SimulationAPI) *Poller {
	return &Poller{api: api}
}

// PollStep asks for the next step of one agent. Neither NoStepAvailable nor
// TransportFailure is fatal; the caller retries on the next round.
func (p *Poller) PollStep(ctx context.Context, id domain.AgentID) domain.PollResult {
	record, err := p.api.NextStep(ctx, id)
	switch {
	case err == nil:
		return domain.StepPolled{Record: record}
	case errors.Is(err, domain.ErrNoStepAvailable):
		return domain.NoStepAvailable{}
	default:
		if ctx.Err() == nil {
			xlog.Warn("step poll failed", "agent", int(id), "error", err)
		}
		return domain.TransportFailure{Err: err}
	}
}
