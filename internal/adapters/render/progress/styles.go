package progress

import (
	"github.com/bnema/simsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	phase      lipgloss.Style
	failed     lipgloss.Style
	ended      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	column     lipgloss.Style
	cell       lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	barText    lipgloss.Style
	normal     lipgloss.Style
	medium     lipgloss.Style
	critical   lipgloss.Style
	overflow   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		phase:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		failed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ended:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		column:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		normal:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		critical:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		overflow:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (s styles) containerStatus(status string) lipgloss.Style {
	switch status {
	case domain.ContainerMedium:
		return s.medium
	case domain.ContainerCritical:
		return s.critical
	case domain.ContainerOverflowing:
		return s.overflow
	default:
		return s.normal
	}
}
