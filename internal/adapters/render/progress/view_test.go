package progress

import (
	"testing"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runningSnapshot() application.SyncSnapshot {
	return application.SyncSnapshot{
		Phase:       domain.PhaseRunning,
		SessionID:   "0b5e6a8c-2f2c-4d8e-9a57-3b8f0c1d2e3f",
		GridWidth:   20,
		GridHeight:  15,
		CurrentStep: 125,
		TotalSteps:  500,
		Entities: []application.EntityStatus{
			{ID: 0, Position: domain.Position{X: 3, Y: 4}, Carrying: 950, Action: "collect", LastTimestep: 125, Observed: 125},
			{ID: 1, Position: domain.Position{X: 7, Y: 1}},
		},
		Objects: []domain.ObjectSpec{
			{Position: domain.Position{X: 2, Y: 2}, FillLevel: 10},
			{Position: domain.Position{X: 5, Y: 9}, FillLevel: 70},
			{Position: domain.Position{X: 8, Y: 8}, FillLevel: 80},
		},
	}
}

func TestRenderRunningSnapshot(t *testing.T) {
	output, err := Render(runningSnapshot(), RenderOptions{ContainerCapacity: 75, TruckCapacity: 1000, BarWidth: 20})

	require.NoError(t, err)
	assert.Contains(t, output, "Simulation Sync")
	assert.Contains(t, output, "phase: running")
	assert.Contains(t, output, "grid: 20x15")
	assert.Contains(t, output, "step 125/500")
	assert.Contains(t, output, " 25%")
	assert.Contains(t, output, "[=====---------------]")
	assert.Contains(t, output, "0*")
	assert.Contains(t, output, "(3,4)")
	assert.Contains(t, output, "full")
	assert.Contains(t, output, "collect")
	assert.Contains(t, output, "empty")
	assert.Contains(t, output, "normal")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "overflowing")
	assert.NotContains(t, output, "[completed]")
}

func TestRenderEndedSnapshot(t *testing.T) {
	snapshot := runningSnapshot()
	snapshot.Phase = domain.PhaseEnded
	snapshot.CurrentStep = 500
	snapshot.Ended = true

	output, err := Render(snapshot, RenderOptions{ContainerCapacity: 75, TruckCapacity: 1000, BarWidth: 10, HideObjects: true})

	require.NoError(t, err)
	assert.Contains(t, output, "phase: ended")
	assert.Contains(t, output, "step 500/500")
	assert.Contains(t, output, "[==========]")
	assert.Contains(t, output, "[completed]")
	assert.NotContains(t, output, "container")
}

func TestRenderFailedSnapshotWithoutEntities(t *testing.T) {
	output, err := Render(application.SyncSnapshot{
		Phase:     domain.PhaseFailed,
		LastError: "bootstrap failed: connection refused",
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "phase: failed")
	assert.Contains(t, output, "error: bootstrap failed: connection refused")
	assert.Contains(t, output, "step 0/0")
	assert.Contains(t, output, "No agents synchronized.")
	assert.NotContains(t, output, "grid:")
}

func TestRenderProgressBarClamps(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[----]", renderProgressBar(-20, 4, s))
	assert.Equal(t, "[====]", renderProgressBar(140, 4, s))
	assert.Equal(t, "", renderProgressBar(50, 0, s))
}
