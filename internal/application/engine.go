package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
	"github.com/google/uuid"
	"github.com/mudler/xlog"
)

const (
	DefaultRoundInterval   = 250 * time.Millisecond
	DefaultDiagnosticEvery = 50
)

// EngineOptions tunes the loop. Zero RoundInterval and DiagnosticEvery take
// the package defaults; a negative DiagnosticEvery turns diagnostics off.
type EngineOptions struct {
	ClockAgentID    domain.AgentID
	RoundInterval   time.Duration
	DiagnosticEvery int
	SkipReset       bool
	// WaitForRestart keeps Run alive after a session ends or fails to
	// bootstrap, until Restart is called or the context is canceled.
	WaitForRestart bool
	Clock          ports.Clock
}

type sessionOutcome int

const (
	sessionEnded sessionOutcome = iota
	sessionFailed
	sessionRestarted
	sessionCanceled
)

// Engine is the synchronization loop. One goroutine runs it; Restart and
// Snapshot may be called from any goroutine.
type Engine struct {
	sink         ports.EntitySink
	reporter     ports.ProgressReporter
	bootstrapper *Bootstrapper
	poller       *Poller
	opts         EngineOptions
	restartCh    chan struct{}

	mu            sync.RWMutex
	running       bool
	phase         domain.Phase
	generation    uint64
	cancelSession context.CancelFunc
	sessionID     string
	descriptor    domain.SessionDescriptor
	state         *domain.SyncState
	rounds        int
	lastErr       error
	startedAt     time.Time
}

func NewEngine(api ports.SimulationAPI, sink ports.EntitySink, reporter ports.ProgressReporter, opts EngineOptions) *Engine {
	if opts.RoundInterval <= 0 {
		opts.RoundInterval = DefaultRoundInterval
	}
	if opts.DiagnosticEvery == 0 {
		opts.DiagnosticEvery = DefaultDiagnosticEvery
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}

	return &Engine{
		sink:         sink,
		reporter:     reporter,
		bootstrapper: NewBootstrapper(api, opts.ClockAgentID, opts.SkipReset),
		poller:       NewPoller(api),
		opts:         opts,
		restartCh:    make(chan struct{}, 1),
		phase:        domain.PhaseIdle,
	}
}

// Run drives sessions until the simulation ends (nil), bootstrap fails (the
// bootstrap error) or ctx is canceled (ctx.Err()). With WaitForRestart set,
// ended and failed sessions wait for Restart instead of returning.
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return domain.ErrEngineRunning
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.cancelSession = nil
		e.mu.Unlock()
	}()

	for {
		outcome, err := e.runSession(ctx)
		switch outcome {
		case sessionRestarted:
			xlog.Info("restarting simulation session")
			continue
		case sessionCanceled:
			return ctx.Err()
		}

		if !e.opts.WaitForRestart {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.restartCh:
			xlog.Info("restarting simulation session")
		}
	}
}

// Restart requests a full session restart. It never blocks; the running
// round is canceled and its pending responses are discarded.
func (e *Engine) Restart() {
	select {
	case e.restartCh <- struct{}{}:
	default:
	}

	e.mu.Lock()
	cancel := e.cancelSession
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (e *Engine) Snapshot() SyncSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := SyncSnapshot{
		Phase:        e.phase,
		SessionID:    e.sessionID,
		ClockAgentID: e.opts.ClockAgentID,
		Rounds:       e.rounds,
		StartedAt:    e.startedAt,
	}
	if e.lastErr != nil {
		snapshot.LastError = e.lastErr.Error()
	}
	if e.state == nil {
		return snapshot
	}

	snapshot.GridWidth = e.descriptor.GridWidth
	snapshot.GridHeight = e.descriptor.GridHeight
	snapshot.CurrentStep = e.state.CurrentStep
	snapshot.TotalSteps = e.state.TotalSteps
	snapshot.Ended = e.state.Ended
	snapshot.Objects = append([]domain.ObjectSpec(nil), e.descriptor.Objects...)
	snapshot.Entities = make([]EntityStatus, 0, len(e.state.Entities))
	for _, entity := range e.state.Entities {
		snapshot.Entities = append(snapshot.Entities, EntityStatus{
			ID:           entity.ID,
			Position:     entity.Position,
			Carrying:     entity.Carrying,
			Action:       entity.Action,
			LastTimestep: entity.LastTimestep,
			Observed:     entity.Observed,
		})
	}
	sort.Slice(snapshot.Entities, func(i, j int) bool {
		return snapshot.Entities[i].ID < snapshot.Entities[j].ID
	})

	return snapshot
}

func (e *Engine) runSession(ctx context.Context) (sessionOutcome, error) {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := e.beginSession(cancel)

	descriptor, err := e.bootstrapper.Bootstrap(sessionCtx)
	if err != nil {
		if outcome, interrupted := e.interrupted(ctx, sessionCtx); interrupted {
			return outcome, nil
		}
		e.setFailed(gen, err)
		xlog.Error("session bootstrap failed", "session", e.currentSessionID(), "error", err)
		return sessionFailed, err
	}

	ids, ok := e.install(gen, descriptor)
	if !ok {
		return sessionRestarted, nil
	}

	for {
		if outcome, interrupted := e.interrupted(ctx, sessionCtx); interrupted {
			return outcome, nil
		}

		if e.runRound(sessionCtx, gen, ids) {
			return sessionEnded, nil
		}

		if outcome, interrupted := e.interrupted(ctx, sessionCtx); interrupted {
			return outcome, nil
		}

		e.pace(sessionCtx)
	}
}

// pace waits out the inter-round interval so the remote simulation can advance.
func (e *Engine) pace(ctx context.Context) {
	timer := time.NewTimer(e.opts.RoundInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// interrupted reports whether the session context is done and why: a canceled
// parent ends Run, anything else is a restart request.
func (e *Engine) interrupted(parent, sessionCtx context.Context) (sessionOutcome, bool) {
	if sessionCtx.Err() == nil {
		return 0, false
	}
	if parent.Err() != nil {
		return sessionCanceled, true
	}
	return sessionRestarted, true
}

// beginSession discards the previous SyncState and moves through Idle into
// Bootstrapping under a new generation.
func (e *Engine) beginSession(cancel context.CancelFunc) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	select {
	case <-e.restartCh:
	default:
	}

	e.generation++
	e.phase = domain.PhaseIdle
	e.state = nil
	e.descriptor = domain.SessionDescriptor{}
	e.rounds = 0
	e.lastErr = nil
	e.sessionID = uuid.NewString()
	e.startedAt = e.opts.Clock.Now()
	e.cancelSession = cancel

	e.phase = domain.PhaseBootstrapping
	return e.generation
}

func (e *Engine) setFailed(gen uint64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		return
	}
	e.phase = domain.PhaseFailed
	e.lastErr = err
}

func (e *Engine) currentSessionID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sessionID
}

// install tears down the previous scene and rebuilds entities from the
// descriptor. It returns false when a restart superseded this generation.
func (e *Engine) install(gen uint64, descriptor domain.SessionDescriptor) ([]domain.AgentID, bool) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		return nil, false
	}
	e.descriptor = descriptor
	e.state = domain.NewSyncState(descriptor)
	e.phase = domain.PhaseRunning
	sessionID := e.sessionID
	e.mu.Unlock()

	xlog.Info("session bootstrapped",
		"session", sessionID,
		"grid", fmt.Sprintf("%dx%d", descriptor.GridWidth, descriptor.GridHeight),
		"total_steps", descriptor.TotalSteps,
		"agents", len(descriptor.Agents),
		"objects", len(descriptor.Objects),
	)

	e.sink.OnSceneCleared()
	for i, object := range descriptor.Objects {
		e.sink.OnObjectPlaced(i, object)
	}

	initial := make(map[domain.AgentID]domain.Position, len(descriptor.Agents))
	for _, agent := range descriptor.Agents {
		initial[agent.ID] = agent.InitialPosition
	}

	ids := descriptor.AgentIDs()
	for _, id := range ids {
		position := initial[id]
		if !descriptor.InBounds(position) {
			xlog.Warn("agent placed outside grid", "session", sessionID, "agent", int(id), "position", position.String())
		}
		e.sink.OnEntityPlaced(id, position)
	}

	return ids, true
}

// runRound polls every agent once in ascending id order. It returns true once
// the clock agent reports done; the rest of that round is skipped.
func (e *Engine) runRound(ctx context.Context, gen uint64, ids []domain.AgentID) bool {
	for _, id := range ids {
		if ctx.Err() != nil {
			return false
		}

		result := e.poller.PollStep(ctx, id)
		if ctx.Err() != nil {
			return false
		}

		switch r := result.(type) {
		case domain.StepPolled:
			if e.applyStep(gen, id, r.Record) {
				return true
			}
		case domain.NoStepAvailable, domain.TransportFailure:
			// retried next round
		}
	}

	e.mu.Lock()
	if gen == e.generation {
		e.rounds++
	}
	e.mu.Unlock()

	return false
}

func (e *Engine) applyStep(gen uint64, id domain.AgentID, record domain.StepRecord) bool {
	e.mu.Lock()
	if gen != e.generation || e.state == nil {
		e.mu.Unlock()
		return false
	}

	entity, err := e.state.ApplyStep(id, record)
	if err != nil {
		e.mu.Unlock()
		xlog.Warn("discarding step for agent outside roster", "agent", int(id), "error", err)
		return false
	}
	position := entity.Position
	observed := entity.Observed
	inBounds := e.descriptor.InBounds(position)

	isClock := id == e.opts.ClockAgentID
	completed := false
	current, total := 0, 0
	if isClock {
		completed = e.state.AdvanceClock(record)
		current, total = e.state.CurrentStep, e.state.TotalSteps
		if completed {
			e.phase = domain.PhaseEnded
		}
	}
	sessionID := e.sessionID
	e.mu.Unlock()

	if !inBounds {
		xlog.Warn("agent moved outside grid", "session", sessionID, "agent", int(id), "position", position.String())
	}

	e.sink.OnEntityMoved(id, position)

	if !isClock {
		if e.opts.DiagnosticEvery > 0 && record.Timestep%e.opts.DiagnosticEvery == 0 {
			xlog.Debug("agent step",
				"session", sessionID,
				"agent", int(id),
				"t", record.Timestep,
				"position", position.String(),
				"carrying", record.CarryingAmount,
				"action", record.Action,
				"observed", observed,
			)
		}
		return false
	}

	e.reporter.OnProgress(current, total)
	if completed {
		xlog.Info("simulation completed", "session", sessionID, "step", current, "total_steps", total)
		e.reporter.OnCompleted(current, total)
	}

	return completed
}
