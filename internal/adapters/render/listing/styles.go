package listing

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	muted     lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	key       lipgloss.Style
	badge     lipgloss.Style
	premium   lipgloss.Style
	starFill  lipgloss.Style
	starEmpty lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		premium:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		starFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		starEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
