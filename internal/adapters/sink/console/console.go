package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
)

var (
	_ ports.EntitySink       = (*Sink)(nil)
	_ ports.ProgressReporter = (*Sink)(nil)
)

// Sink prints engine events as plain lines. Write errors are dropped; the
// engine has nothing useful to do with them.
type Sink struct {
	mu     sync.Mutex
	out    io.Writer
	quiet  bool
	every  int
	lastAt int
}

type Options struct {
	// Quiet suppresses placement and movement lines.
	Quiet bool
	// ProgressEvery prints a progress line only every N steps. The final
	// step and completion are always printed.
	ProgressEvery int
}

func New(out io.Writer, opts Options) *Sink {
	return &Sink{out: out, quiet: opts.Quiet, every: opts.ProgressEvery, lastAt: -1}
}

func (s *Sink) OnSceneCleared() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAt = -1
	if s.quiet {
		return
	}
	s.printf("scene cleared\n")
}

func (s *Sink) OnObjectPlaced(index int, object domain.ObjectSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiet {
		return
	}
	s.printf("placed container %d at %s fill %d\n", index, object.Position, object.FillLevel)
}

func (s *Sink) OnEntityPlaced(id domain.AgentID, position domain.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiet {
		return
	}
	s.printf("placed agent %d at %s\n", id, position)
}

func (s *Sink) OnEntityMoved(id domain.AgentID, position domain.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiet {
		return
	}
	s.printf("agent %d moved to %s\n", id, position)
}

func (s *Sink) OnProgress(current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current == s.lastAt {
		return
	}
	if s.every > 1 && current != total && current%s.every != 0 {
		return
	}
	s.lastAt = current
	s.printf("step %d/%d\n", current, total)
}

func (s *Sink) OnCompleted(current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("simulation completed at step %d/%d\n", current, total)
}

func (s *Sink) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
