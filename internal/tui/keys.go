package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Swipe screen. Each key plays a full drag through the gesture tracker.
	Like    key.Binding
	Dislike key.Binding

	// Results screen
	StartOver key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Like: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "like"),
		),
		Dislike: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "nope"),
		),
		StartOver: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start over"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dislike, k.Like, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dislike, k.Like},
		{k.StartOver},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// resultsKeys narrows help to the results screen.
type resultsKeys struct{ KeyMap }

func (k resultsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.StartOver, k.Quit}
}

func (k resultsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.StartOver}, {k.Help, k.Quit, k.ForceQuit}}
}
