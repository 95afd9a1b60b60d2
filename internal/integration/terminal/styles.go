// Package terminal provides the interactive terminal shell for the strength evaluator.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/password-meter/backend/internal/domain/entity"
)

// Semantic colors shared by banners and the progress bar.
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
	Muted       = lipgloss.Color("#8a8f98")
)

// Styles holds all the styled components.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Prompt   lipgloss.Style
	Heading  lipgloss.Style
	Bullet   lipgloss.Style
	Help     lipgloss.Style
	Balloons lipgloss.Style

	// Status banners
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	banner := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(Muted),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		Bullet:   lipgloss.NewStyle().PaddingLeft(1),
		Help:     lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Balloons: lipgloss.NewStyle(),

		Success: banner.BorderForeground(Success).Foreground(Success),
		Error:   banner.BorderForeground(Destructive).Foreground(Destructive),
		Warning: banner.BorderForeground(Warning).Foreground(Warning),
		Info:    banner.BorderForeground(Info).Foreground(Info),
	}
}

// Banner returns the banner style for a tone.
func (s Styles) Banner(tone entity.Tone) lipgloss.Style {
	switch tone {
	case entity.ToneSuccess:
		return s.Success
	case entity.ToneWarning:
		return s.Warning
	case entity.ToneError:
		return s.Error
	default:
		return s.Info
	}
}
