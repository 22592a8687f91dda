package tui

import "charm.land/lipgloss/v2"

// Styles groups the lipgloss styles used by the renderer.
type Styles struct {
	Border         lipgloss.Style
	FocusedBorder  lipgloss.Style
	FloatingBorder lipgloss.Style
	Title          lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Prompt         lipgloss.Style
}

func defaultStyles() Styles {
	var (
		colorBorder   = lipgloss.Color("#3a3a3a")
		colorFocused  = lipgloss.Color("#00AA00")
		colorFloating = lipgloss.Color("#5f87d7")
		colorMuted    = lipgloss.Color("#808080")
		colorError    = lipgloss.Color("#d75f5f")
	)
	return Styles{
		Border:         lipgloss.NewStyle().Foreground(colorBorder),
		FocusedBorder:  lipgloss.NewStyle().Foreground(colorFocused),
		FloatingBorder: lipgloss.NewStyle().Foreground(colorFloating),
		Title:          lipgloss.NewStyle().Foreground(colorMuted),
		Status:         lipgloss.NewStyle().Foreground(colorMuted),
		StatusError:    lipgloss.NewStyle().Foreground(colorError),
		Prompt:         lipgloss.NewStyle().Foreground(colorFocused),
	}
}
