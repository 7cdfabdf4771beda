package controller

import (
	"github.com/charmbracelet/lipgloss"
)

type paint func(string) string

type palette struct {
	title   paint
	heading paint
	issue   paint
	warning paint
	success paint
	muted   paint
	added   paint
	removed paint
}

func plain(s string) string { return s }

var plainPalette = palette{
	title:   plain,
	heading: plain,
	issue:   plain,
	warning: plain,
	success: plain,
	muted:   plain,
	added:   plain,
	removed: plain,
}

func render(style lipgloss.Style) paint {
	return func(s string) string {
		return style.Render(s)
	}
}

var styledPalette = palette{
	title: render(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Bold(true)),
	heading: render(lipgloss.NewStyle().Bold(true)),
	issue: render(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F87171")).
		Bold(true)),
	warning: render(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FBBF24")).
		Bold(true)),
	success: render(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)),
	muted: render(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748B")).
		Italic(true)),
	added:   render(lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))),
	removed: render(lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))),
}
