package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bnema/simsync/internal/adapters/render/live"
	"github.com/bnema/simsync/internal/adapters/sink/console"
	"github.com/bnema/simsync/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		plain         bool
		quiet         bool
		noReset       bool
		noSummary     bool
		progressEvery int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Synchronize with the simulation until it ends",
		Long:  "run bootstraps a session and polls every agent round after round. On a terminal it opens a live view (r restarts the session, q quits); otherwise it prints one line per event.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := app.engineOptions()
			if noReset {
				opts.SkipReset = true
			}

			out := cmd.OutOrStdout()
			if !plain && app.isTerminal(out) {
				bridge := live.NewBridge()
				opts.WaitForRestart = true
				engine := application.NewEngine(app.api, bridge, bridge, opts)

				return live.Run(ctx, engine, bridge, live.Options{
					Input:         cmd.InOrStdin(),
					Output:        out,
					TruckCapacity: app.cfg.Display.TruckCapacity,
					AltScreen:     true,
				})
			}

			sink := console.New(out, console.Options{Quiet: quiet, ProgressEvery: progressEvery})
			engine := application.NewEngine(app.api, sink, sink, opts)

			err := engine.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}

			if quiet || noSummary {
				return nil
			}

			rendered, err := app.renderSnapshot(engine.Snapshot(), app.renderOptions())
			if err != nil {
				return fmt.Errorf("render summary: %w", err)
			}
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text events instead of the live view")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only print progress and completion")
	cmd.Flags().BoolVar(&noReset, "no-reset", false, "Attach to the running simulation without resetting it")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Skip the final snapshot summary")
	cmd.Flags().IntVar(&progressEvery, "progress-every", 0, "Print a progress line only every N steps")

	return cmd
}
