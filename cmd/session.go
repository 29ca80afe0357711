package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type sessionView struct {
	GridWidth  int             `json:"grid_width" yaml:"grid_width"`
	GridHeight int             `json:"grid_height" yaml:"grid_height"`
	TotalSteps int             `json:"total_steps" yaml:"total_steps"`
	ClockAgent int             `json:"clock_agent" yaml:"clock_agent"`
	Agents     []agentView     `json:"agents" yaml:"agents"`
	Containers []containerView `json:"containers" yaml:"containers"`
}

type agentView struct {
	ID       int    `json:"id" yaml:"id"`
	X        int    `json:"x" yaml:"x"`
	Y        int    `json:"y" yaml:"y"`
	Load     int    `json:"load" yaml:"load"`
	Status   string `json:"status" yaml:"status"`
	InBounds bool   `json:"in_bounds" yaml:"in_bounds"`
}

type containerView struct {
	Index  int    `json:"index" yaml:"index"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Fill   int    `json:"fill" yaml:"fill"`
	Status string `json:"status" yaml:"status"`
}

func newSessionCmd(app *app) *cobra.Command {
	var (
		asJSON  bool
		asYAML  bool
		noReset bool
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Bootstrap a session once and print its descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skipReset := app.cfg.Sync.SkipReset || noReset
			bootstrapper := application.NewBootstrapper(app.api, domain.AgentID(app.cfg.Sync.ClockAgentID), skipReset)

			var descriptor domain.SessionDescriptor
			err := app.withStages(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context, report func(string)) error {
				var err error
				descriptor, err = bootstrapper.
					OnStage(func(stage application.BootstrapStage) { report(stage.String()) }).
					Bootstrap(ctx)
				return err
			})
			if err != nil {
				return err
			}

			view := app.sessionView(descriptor)
			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(view); err != nil {
					return fmt.Errorf("encode session yaml: %w", err)
				}
				return enc.Close()
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			return writeSessionText(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output descriptor as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output descriptor as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	cmd.Flags().BoolVar(&noReset, "no-reset", false, "Fetch the session without resetting the simulation")

	return cmd
}

func (a *app) sessionView(descriptor domain.SessionDescriptor) sessionView {
	view := sessionView{
		GridWidth:  descriptor.GridWidth,
		GridHeight: descriptor.GridHeight,
		TotalSteps: descriptor.TotalSteps,
		ClockAgent: a.cfg.Sync.ClockAgentID,
		Agents:     make([]agentView, 0, len(descriptor.Agents)),
		Containers: make([]containerView, 0, len(descriptor.Objects)),
	}

	byID := make(map[domain.AgentID]domain.AgentSpec, len(descriptor.Agents))
	for _, agent := range descriptor.Agents {
		byID[agent.ID] = agent
	}
	for _, id := range descriptor.AgentIDs() {
		agent := byID[id]
		view.Agents = append(view.Agents, agentView{
			ID:       int(agent.ID),
			X:        agent.InitialPosition.X,
			Y:        agent.InitialPosition.Y,
			Load:     agent.InitialLoad,
			Status:   domain.TruckStatus(agent.InitialLoad, a.cfg.Display.TruckCapacity),
			InBounds: descriptor.InBounds(agent.InitialPosition),
		})
	}

	for i, object := range descriptor.Objects {
		view.Containers = append(view.Containers, containerView{
			Index:  i,
			X:      object.Position.X,
			Y:      object.Position.Y,
			Fill:   object.FillLevel,
			Status: domain.ContainerStatus(object.FillLevel, a.cfg.Display.ContainerCapacity),
		})
	}

	return view
}

func writeSessionText(out io.Writer, view sessionView) error {
	lines := []string{
		fmt.Sprintf("grid: %dx%d", view.GridWidth, view.GridHeight),
		fmt.Sprintf("total steps: %d", view.TotalSteps),
		fmt.Sprintf("clock agent: %d", view.ClockAgent),
		fmt.Sprintf("agents: %d", len(view.Agents)),
	}
	for _, agent := range view.Agents {
		line := fmt.Sprintf("  agent %d at (%d,%d) load %d %s", agent.ID, agent.X, agent.Y, agent.Load, agent.Status)
		if !agent.InBounds {
			line += " [outside grid]"
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("containers: %d", len(view.Containers)))
	for _, container := range view.Containers {
		lines = append(lines, fmt.Sprintf("  container %d at (%d,%d) fill %d %s", container.Index, container.X, container.Y, container.Fill, container.Status))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
