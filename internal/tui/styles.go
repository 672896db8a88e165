package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorWhite = lipgloss.Color("255")
	ColorGray  = lipgloss.Color("245")
	ColorPink  = lipgloss.Color("205")
	ColorNight = lipgloss.Color("16")
)

// Icon shades from faint to solid, indexed by opacity.
var (
	likeShades    = []string{"53", "89", "125", "162", "199", "205"}
	dislikeShades = []string{"52", "88", "124", "160", "196", "203"}
)

var (
	logoStyle = lipgloss.NewStyle().Foreground(ColorPink).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWhite).
			Padding(0, 1)

	cardNameStyle  = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	cardImageStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)
	ledgeStyle     = lipgloss.NewStyle().Foreground(ColorGray)
	helpStyle      = lipgloss.NewStyle().Foreground(ColorGray)

	messageStyle = lipgloss.NewStyle().Foreground(ColorWhite).Align(lipgloss.Center)
	titleStyle   = lipgloss.NewStyle().Foreground(ColorPink).Bold(true).Align(lipgloss.Center)
	heartStyle   = lipgloss.NewStyle().Foreground(ColorPink)
	countStyle   = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorPink).
			Bold(true).
			Padding(0, 3)

	nightStyle = lipgloss.NewStyle().Background(ColorNight)
)
