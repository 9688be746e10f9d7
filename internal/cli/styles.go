package cli

import "github.com/charmbracelet/lipgloss"

// Colors assume a dark terminal background.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(13)

	foundStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	missStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
