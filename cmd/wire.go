package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bnema/simsync/internal/adapters/render/progress"
	"github.com/bnema/simsync/internal/adapters/transport/httpapi"
	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/config"
	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
	"github.com/bnema/simsync/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type app struct {
	cfg            config.Config
	configPath     string
	api            ports.SimulationAPI
	renderSnapshot func(application.SyncSnapshot, progress.RenderOptions) (string, error)
	isTerminal     func(io.Writer) bool
}

func wireApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	configPath := flags.configPath
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyFlagOverrides(cmd, flags, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := httpapi.NewClient(cfg.API.BaseURL, http.DefaultClient, cfg.API.RequestTimeout)
	client.UserAgent = "simsync/" + version.Version

	return &app{
		cfg:            cfg,
		configPath:     configPath,
		api:            client,
		renderSnapshot: progress.Render,
		isTerminal:     isTerminal,
	}, nil
}

func applyFlagOverrides(cmd *cobra.Command, flags *globalFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("base-url") {
		cfg.API.BaseURL = flags.baseURL
	}
	if changed("clock-agent") {
		cfg.Sync.ClockAgentID = flags.clockAgent
	}
	if changed("interval") {
		cfg.Sync.RoundInterval = flags.roundInterval
	}
	if changed("timeout") {
		cfg.API.RequestTimeout = flags.requestTimeout
	}
}

func (a *app) engineOptions() application.EngineOptions {
	diagnosticEvery := a.cfg.Sync.DiagnosticEvery
	if diagnosticEvery == 0 {
		// diagnostic_every = 0 in config means off.
		diagnosticEvery = -1
	}

	return application.EngineOptions{
		ClockAgentID:    domain.AgentID(a.cfg.Sync.ClockAgentID),
		RoundInterval:   a.cfg.Sync.RoundInterval,
		DiagnosticEvery: diagnosticEvery,
		SkipReset:       a.cfg.Sync.SkipReset,
	}
}

func (a *app) renderOptions() progress.RenderOptions {
	return progress.RenderOptions{
		ContainerCapacity: a.cfg.Display.ContainerCapacity,
		TruckCapacity:     a.cfg.Display.TruckCapacity,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
