package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bnema/simsync/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the simsync config file",
	}

	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))
	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				_, err := os.Stat(app.configPath)
				if err == nil {
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", app.configPath)
				}
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("stat config file: %w", err)
				}
			}

			if err := config.Write(app.configPath, app.cfg); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", app.configPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Encode(app.cfg)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", app.configPath); err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
