package live

import (
	"github.com/bnema/simsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	meta    lipgloss.Style
	running lipgloss.Style
	failed  lipgloss.Style
	ended   lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ended:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		help:    lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) phase(phase domain.Phase) lipgloss.Style {
	switch phase {
	case domain.PhaseFailed:
		return s.failed
	case domain.PhaseEnded:
		return s.ended
	default:
		return s.running
	}
}
