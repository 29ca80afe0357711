package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stageMsg moves the indicator to the named stage and marks the previous one
// as finished.
type stageMsg string

type stagesDoneMsg struct {
	err error
}

type stagesModel struct {
	spinner  spinner.Model
	doneMark lipgloss.Style
	faint    lipgloss.Style
	finished []string
	current  string
	err      error
	done     bool
	work     tea.Cmd
}

func newStagesModel(work tea.Cmd) stagesModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	return stagesModel{
		spinner:  s,
		doneMark: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		faint:    lipgloss.NewStyle().Faint(true),
		work:     work,
	}
}

func (m stagesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m stagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stageMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
		}
		m.current = string(msg)
		return m, nil
	case stagesDoneMsg:
		m.done = true
		m.err = msg.err
		if msg.err == nil && m.current != "" {
			m.finished = append(m.finished, m.current)
			m.current = ""
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m stagesModel) View() string {
	// A failed run leaves nothing behind; the command prints the error.
	if m.done && m.err != nil {
		return ""
	}

	var b strings.Builder
	for _, stage := range m.finished {
		b.WriteString(m.doneMark.Render("✓") + " " + m.faint.Render(stage) + "\n")
	}
	if !m.done {
		label := m.current
		if label == "" {
			label = "Working"
		}
		b.WriteString(fmt.Sprintf("%s %s...", m.spinner.View(), label))
	}

	return b.String()
}

// runStages renders work's reported stages on output until it returns. Callers
// only use it when output is a terminal.
func runStages(ctx context.Context, output io.Writer, work func(ctx context.Context, report func(string)) error) error {
	var p *tea.Program
	workCmd := func() tea.Msg {
		return stagesDoneMsg{err: work(ctx, func(stage string) { p.Send(stageMsg(stage)) })}
	}

	p = tea.NewProgram(
		newStagesModel(workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(stagesModel)
	if !ok {
		return fmt.Errorf("unexpected final stages model type %T", finalModel)
	}

	return result.err
}

// withStages runs work behind a stage indicator on terminals. Elsewhere the
// reported stages are dropped.
func (a *app) withStages(ctx context.Context, output io.Writer, work func(ctx context.Context, report func(string)) error) error {
	if !a.isTerminal(output) {
		return work(ctx, func(string) {})
	}
	return runStages(ctx, output, work)
}
