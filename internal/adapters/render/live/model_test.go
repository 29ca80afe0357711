package live

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	mu       sync.Mutex
	snapshot application.SyncSnapshot
	restarts int
}

func (f *fakeController) Snapshot() application.SyncSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeController) Restart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restarts++
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelRestartKeyCallsController(t *testing.T) {
	controller := &fakeController{}
	m := newModel(controller, Options{})
	m.current, m.total, m.completed = 500, 500, true

	m, cmd := update(t, m, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, controller.restarts)
	assert.False(t, m.completed)
	assert.Equal(t, 0, m.total)

	m, _ = update(t, m, runeKey('R'))
	assert.Equal(t, 2, controller.restarts)
	assert.Equal(t, 2, m.restarts)
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), runeKey('Q'), {Type: tea.KeyCtrlC}} {
		m := newModel(&fakeController{}, Options{})

		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	}
}

func TestModelRefreshPullsSnapshot(t *testing.T) {
	controller := &fakeController{snapshot: application.SyncSnapshot{
		Phase:       domain.PhaseRunning,
		SessionID:   "abc",
		GridWidth:   10,
		GridHeight:  8,
		CurrentStep: 40,
		TotalSteps:  200,
		Entities: []application.EntityStatus{
			{ID: 0, Position: domain.Position{X: 1, Y: 2}, Carrying: 600, Action: "move"},
			{ID: 1, Position: domain.Position{X: 5, Y: 5}},
		},
	}}
	m := newModel(controller, Options{TruckCapacity: 1000, Refresh: time.Millisecond})

	m, cmd := update(t, m, refreshMsg(time.Now()))
	require.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "running")
	assert.Contains(t, view, "session abc  grid 10x8")
	assert.Contains(t, view, "step 40/200")
	assert.Contains(t, view, "* agent 0")
	assert.Contains(t, view, "(1,2)")
	assert.Contains(t, view, "half_full")
	assert.Contains(t, view, "r restart • q quit")
	assert.NotContains(t, view, "Bootstrapping")
}

func TestModelShowsSpinnerWhileBootstrapping(t *testing.T) {
	controller := &fakeController{snapshot: application.SyncSnapshot{Phase: domain.PhaseBootstrapping}}
	m := newModel(controller, Options{})
	m, _ = update(t, m, refreshMsg(time.Now()))

	assert.Contains(t, m.View(), "Bootstrapping session...")
}

func TestModelShowsBootstrapFailure(t *testing.T) {
	controller := &fakeController{snapshot: application.SyncSnapshot{
		Phase:     domain.PhaseFailed,
		LastError: "connection refused",
	}}
	m := newModel(controller, Options{})
	m, _ = update(t, m, refreshMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "bootstrap failed: connection refused")
	assert.Contains(t, view, "press r to retry")
}

func TestModelAppliesEngineEvents(t *testing.T) {
	m := newModel(&fakeController{}, Options{})

	m, _ = update(t, m, entityPlacedMsg{id: 2, position: domain.Position{X: 3, Y: 3}})
	assert.Equal(t, "agent 2 placed at (3,3)", m.lastEvent)

	m, _ = update(t, m, entityMovedMsg{id: 2, position: domain.Position{X: 4, Y: 3}})
	assert.Equal(t, 1, m.moves)
	assert.Equal(t, "agent 2 moved to (4,3)", m.lastEvent)

	m, _ = update(t, m, progressMsg{current: 10, total: 20})
	assert.Contains(t, m.View(), "step 10/20")

	m, _ = update(t, m, completedMsg{current: 20, total: 20})
	assert.True(t, m.completed)
	assert.Contains(t, m.View(), "completed")

	m, _ = update(t, m, sceneClearedMsg{})
	assert.False(t, m.completed)
	assert.Equal(t, 0, m.moves)
}

func TestModelQuitsWhenEngineStops(t *testing.T) {
	m := newModel(&fakeController{}, Options{})

	m, cmd := update(t, m, engineDoneMsg{err: domain.ErrBootstrapFailed})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.err, domain.ErrBootstrapFailed)
}

func TestModelWindowSizeClampsBar(t *testing.T) {
	m := newModel(&fakeController{}, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 25, Height: 10})
	assert.Equal(t, 10, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 10})
	assert.Equal(t, defaultBarWidth, m.bar.Width)
}

func TestBridgeForwardsEventsOnceAttached(t *testing.T) {
	bridge := NewBridge()
	bridge.OnProgress(1, 2)

	var got []tea.Msg
	bridge.attach(func(msg tea.Msg) { got = append(got, msg) })

	bridge.OnSceneCleared()
	bridge.OnObjectPlaced(0, domain.ObjectSpec{FillLevel: 5})
	bridge.OnEntityPlaced(1, domain.Position{X: 1})
	bridge.OnEntityMoved(1, domain.Position{X: 2})
	bridge.OnProgress(3, 10)
	bridge.OnCompleted(10, 10)

	assert.Equal(t, []tea.Msg{
		sceneClearedMsg{},
		objectPlacedMsg{index: 0, object: domain.ObjectSpec{FillLevel: 5}},
		entityPlacedMsg{id: 1, position: domain.Position{X: 1}},
		entityMovedMsg{id: 1, position: domain.Position{X: 2}},
		progressMsg{current: 3, total: 10},
		completedMsg{current: 10, total: 10},
	}, got)
}
