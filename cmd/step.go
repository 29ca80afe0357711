package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	"github.com/spf13/cobra"
)

type stepView struct {
	Agent     int    `json:"agent"`
	Available bool   `json:"available"`
	Timestep  int    `json:"t,omitempty"`
	X         int    `json:"x,omitempty"`
	Y         int    `json:"y,omitempty"`
	Carrying  int    `json:"carrying,omitempty"`
	Action    string `json:"action,omitempty"`
	Done      bool   `json:"done,omitempty"`
}

func newStepCmd(app *app) *cobra.Command {
	var (
		agentID int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Poll one agent for its next step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if agentID < 0 {
				return fmt.Errorf("agent id must not be negative: %d", agentID)
			}

			id := domain.AgentID(agentID)
			view := stepView{Agent: agentID}

			switch result := application.NewPoller(app.api).PollStep(cmd.Context(), id).(type) {
			case domain.StepPolled:
				view.Available = true
				view.Timestep = result.Record.Timestep
				view.X = result.Record.Position.X
				view.Y = result.Record.Position.Y
				view.Carrying = result.Record.CarryingAmount
				view.Action = result.Record.Action
				view.Done = result.Record.Done
			case domain.NoStepAvailable:
			case domain.TransportFailure:
				return fmt.Errorf("poll agent %d: %w", agentID, result.Err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			if !view.Available {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "agent %d: no step available\n", agentID)
				return err
			}

			line := fmt.Sprintf("agent %d: t=%d at (%d,%d) carrying %d", agentID, view.Timestep, view.X, view.Y, view.Carrying)
			if view.Action != "" {
				line += " action " + view.Action
			}
			if view.Done {
				line += " [done]"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().IntVar(&agentID, "agent", 0, "Agent id to poll")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output step as JSON")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}
