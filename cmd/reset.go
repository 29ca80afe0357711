package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/simsync/internal/application"
	"github.com/spf13/cobra"
)

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the remote simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.withStages(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context, report func(string)) error {
				report(application.StageResetting.String())
				return app.api.Reset(ctx)
			})
			if err != nil {
				return fmt.Errorf("reset simulation: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "simulation reset")
			return err
		},
	}
}
