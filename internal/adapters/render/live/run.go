package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Engine is driven by Run in a background goroutine.
type Engine interface {
	Controller
	Run(ctx context.Context) error
}

type Options struct {
	Input         io.Reader
	Output        io.Writer
	Refresh       time.Duration
	TruckCapacity int
	AltScreen     bool
}

// Run starts the engine and the interactive view together. It returns once the
// user quits, ctx is canceled or the engine stops on its own.
func Run(ctx context.Context, engine Engine, bridge *Bridge, opts Options) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOpts := []tea.ProgramOption{tea.WithContext(runCtx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newModel(engine, opts), programOpts...)
	bridge.Attach(p)

	engineDone := make(chan error, 1)
	go func() {
		err := engine.Run(runCtx)
		engineDone <- err
		p.Send(engineDoneMsg{err: err})
	}()

	finalModel, runErr := p.Run()
	cancel()
	engineErr := <-engineDone

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run live view: %w", runErr)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if final, ok := finalModel.(model); ok && final.quitting {
		return nil
	}
	if errors.Is(engineErr, context.Canceled) {
		return nil
	}
	return engineErr
}
