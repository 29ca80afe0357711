package live

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultRefresh  = 200 * time.Millisecond
	defaultBarWidth = 40
	maxAgentRows    = 12
)

// Controller is the part of the engine the view drives.
type Controller interface {
	Snapshot() application.SyncSnapshot
	Restart()
}

type refreshMsg time.Time

type model struct {
	controller Controller
	opts       Options
	keys       keyMap
	spinner    spinner.Model
	bar        progress.Model
	styles     styles

	snapshot  application.SyncSnapshot
	current   int
	total     int
	completed bool
	moves     int
	lastEvent string
	restarts  int
	err       error
	quitting  bool
}

func newModel(controller Controller, opts Options) model {
	if opts.Refresh <= 0 {
		opts.Refresh = defaultRefresh
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		controller: controller,
		opts:       opts,
		keys:       defaultKeyMap(),
		spinner:    s,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		styles:     newStyles(),
	}
}

func refreshAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshAfter(m.opts.Refresh))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.restarts++
			m.completed = false
			m.current, m.total = 0, 0
			m.moves = 0
			m.lastEvent = "restart requested"
			m.controller.Restart()
			return m, nil
		}
		return m, nil
	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > defaultBarWidth {
			width = defaultBarWidth
		}
		if width < 10 {
			width = 10
		}
		m.bar.Width = width
		return m, nil
	case refreshMsg:
		m.snapshot = m.controller.Snapshot()
		return m, refreshAfter(m.opts.Refresh)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sceneClearedMsg:
		m.completed = false
		m.current, m.total = 0, 0
		m.moves = 0
		m.lastEvent = "scene rebuilt"
		return m, nil
	case objectPlacedMsg:
		m.lastEvent = fmt.Sprintf("container %d placed at %s", msg.index, msg.object.Position)
		return m, nil
	case entityPlacedMsg:
		m.lastEvent = fmt.Sprintf("agent %d placed at %s", msg.id, msg.position)
		return m, nil
	case entityMovedMsg:
		m.moves++
		m.lastEvent = fmt.Sprintf("agent %d moved to %s", msg.id, msg.position)
		return m, nil
	case progressMsg:
		m.current, m.total = msg.current, msg.total
		return m, nil
	case completedMsg:
		m.current, m.total = msg.current, msg.total
		m.completed = true
		m.lastEvent = fmt.Sprintf("simulation completed at step %d/%d", msg.current, msg.total)
		return m, nil
	case engineDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	phase := m.snapshot.Phase
	if phase == "" {
		phase = domain.PhaseIdle
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, m.styles.title.Render("Simulation Sync"), "  ", m.styles.phase(phase).Render(string(phase))),
	}
	if m.snapshot.SessionID != "" {
		lines = append(lines, m.styles.meta.Render(fmt.Sprintf("session %s  grid %dx%d  rounds %d",
			m.snapshot.SessionID, m.snapshot.GridWidth, m.snapshot.GridHeight, m.snapshot.Rounds)))
	}

	switch phase {
	case domain.PhaseIdle, domain.PhaseBootstrapping:
		lines = append(lines, fmt.Sprintf("%s %s", m.spinner.View(), "Bootstrapping session..."))
	case domain.PhaseFailed:
		lines = append(lines, m.styles.failed.Render("bootstrap failed: "+m.snapshot.LastError))
		lines = append(lines, m.styles.meta.Render("press r to retry"))
	}

	current, total := m.progress()
	percent := 0.0
	if total > 0 {
		percent = float64(current) / float64(total)
	}
	stepLine := lipgloss.JoinHorizontal(lipgloss.Top, fmt.Sprintf("step %d/%d ", current, total), m.bar.ViewAs(percent))
	if m.completed {
		stepLine += " " + m.styles.ended.Render("completed")
	}
	lines = append(lines, "", stepLine)

	if rows := m.agentRows(); len(rows) > 0 {
		lines = append(lines, "")
		lines = append(lines, rows...)
	}

	if m.lastEvent != "" {
		lines = append(lines, "", m.styles.meta.Render(m.lastEvent))
	}

	lines = append(lines, "", m.styles.help.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Restart.Help().Key, m.keys.Restart.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// progress prefers pushed events and falls back to the polled snapshot.
func (m model) progress() (int, int) {
	if m.total > 0 {
		return m.current, m.total
	}
	return m.snapshot.CurrentStep, m.snapshot.TotalSteps
}

func (m model) agentRows() []string {
	if len(m.snapshot.Entities) == 0 {
		return nil
	}

	rows := make([]string, 0, len(m.snapshot.Entities)+1)
	for i, entity := range m.snapshot.Entities {
		if i == maxAgentRows {
			rows = append(rows, m.styles.meta.Render(fmt.Sprintf("... %d more agents", len(m.snapshot.Entities)-maxAgentRows)))
			break
		}

		marker := " "
		if entity.ID == m.snapshot.ClockAgentID {
			marker = "*"
		}
		action := entity.Action
		if action == "" {
			action = "-"
		}
		rows = append(rows, fmt.Sprintf("%s agent %-3d %-9s load %-5d %-10s %s",
			marker,
			entity.ID,
			entity.Position.String(),
			entity.Carrying,
			domain.TruckStatus(entity.Carrying, m.opts.TruckCapacity),
			strings.TrimSpace(action),
		))
	}

	return rows
}
