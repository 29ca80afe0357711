package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

const skipWireAnnotation = "simsync/skip-wire"

type globalFlags struct {
	configPath     string
	baseURL        string
	clockAgent     int
	roundInterval  time.Duration
	requestTimeout time.Duration
	logLevel       string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	state := &app{}

	rootCmd := &cobra.Command{
		Use:           "simsync",
		Short:         "Keep a local view in sync with a remote step simulation",
		Long:          "simsync bootstraps a session against a remote simulation API, polls every agent for its next step, and reports progress driven by the clock agent until the simulation ends.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := configureLogging(flags.logLevel); err != nil {
				return err
			}
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			wired, err := wireApp(cmd, flags)
			if err != nil {
				return err
			}
			*state = *wired
			return nil
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.configPath, "config", "", "Config file (default $HOME/.simsync/config.toml)")
	persistent.StringVar(&flags.baseURL, "base-url", "", "Simulation API base URL")
	persistent.IntVar(&flags.clockAgent, "clock-agent", 0, "Agent id whose timestep drives global progress")
	persistent.DurationVar(&flags.roundInterval, "interval", 0, "Pause between polling rounds")
	persistent.DurationVar(&flags.requestTimeout, "timeout", 0, "Per-request timeout")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL, then error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(state),
		newSessionCmd(state),
		newStepCmd(state),
		newResetCmd(state),
		newConfigCmd(state),
	)

	return rootCmd
}
