package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/simsync/internal/application"
	"github.com/bnema/simsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 30

type RenderOptions struct {
	ContainerCapacity int
	TruckCapacity     int
	BarWidth          int
	// HideObjects drops the container table, which can be long on big grids.
	HideObjects bool
}

func renderView(snapshot application.SyncSnapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Simulation Sync"),
		lipgloss.JoinHorizontal(lipgloss.Top, s.header.Render("phase: "), phaseStyle(snapshot.Phase, s).Render(string(snapshot.Phase))),
	}

	if snapshot.SessionID != "" {
		lines = append(lines, s.header.Render("session: "+snapshot.SessionID))
	}
	if snapshot.GridWidth > 0 || snapshot.GridHeight > 0 {
		lines = append(lines, s.header.Render(fmt.Sprintf("grid: %dx%d", snapshot.GridWidth, snapshot.GridHeight)))
	}
	if snapshot.LastError != "" {
		lines = append(lines, s.failed.Render("error: "+snapshot.LastError))
	}

	lines = append(lines, s.section.Render(progressLine(snapshot, opts, s)))

	if len(snapshot.Entities) == 0 {
		lines = append(lines, s.empty.Render("No agents synchronized."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(agentTable(snapshot, opts, s)))
	if !opts.HideObjects && len(snapshot.Objects) > 0 {
		lines = append(lines, s.section.Render(containerTable(snapshot.Objects, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func phaseStyle(phase domain.Phase, s styles) lipgloss.Style {
	switch phase {
	case domain.PhaseFailed:
		return s.failed
	case domain.PhaseEnded:
		return s.ended
	default:
		return s.phase
	}
}

func progressLine(snapshot application.SyncSnapshot, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	percent := snapshot.Percent() * 100
	label := s.barText.Render(fmt.Sprintf("step %d/%d", snapshot.CurrentStep, snapshot.TotalSteps))
	meta := s.header.Render(fmt.Sprintf("%3.0f%%", percent))

	line := lipgloss.JoinHorizontal(lipgloss.Top, label, " ", renderProgressBar(percent, width, s), " ", meta)
	if snapshot.Ended {
		line += " " + s.ended.Render("[completed]")
	}
	return line
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func agentTable(snapshot application.SyncSnapshot, opts RenderOptions, s styles) string {
	rows := []string{s.column.Render(fmt.Sprintf("%-6s %-10s %-9s %-11s %-12s %s", "agent", "position", "carrying", "load", "action", "t"))}
	for _, entity := range snapshot.Entities {
		name := fmt.Sprintf("%d", entity.ID)
		if entity.ID == snapshot.ClockAgentID {
			name += "*"
		}
		action := entity.Action
		if action == "" {
			action = "-"
		}
		timestep := "-"
		if entity.Observed > 0 {
			timestep = fmt.Sprintf("%d", entity.LastTimestep)
		}
		rows = append(rows, s.cell.Render(fmt.Sprintf("%-6s %-10s %-9d %-11s %-12s %s",
			name,
			entity.Position.String(),
			entity.Carrying,
			domain.TruckStatus(entity.Carrying, opts.TruckCapacity),
			action,
			timestep,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func containerTable(objects []domain.ObjectSpec, opts RenderOptions, s styles) string {
	rows := []string{s.column.Render(fmt.Sprintf("%-9s %-10s %-6s %s", "container", "position", "fill", "status"))}
	for i, object := range objects {
		status := domain.ContainerStatus(object.FillLevel, opts.ContainerCapacity)
		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.cell.Render(fmt.Sprintf("%-9d %-10s %-6d ", i, object.Position.String(), object.FillLevel)),
			s.containerStatus(status).Render(status),
		)
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
