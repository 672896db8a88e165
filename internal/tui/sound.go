package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/swipe"
)

// effectCmds turns controller effects into commands. Sounds run off the UI
// loop and never report back.
func effectCmds(player model.SoundPlayer, effects []swipe.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case swipe.PlaySound:
			if player != nil {
				cmds = append(cmds, playSoundCmd(player, e.Path))
			}
		}
	}
	return cmds
}

func playSoundCmd(player model.SoundPlayer, path string) tea.Cmd {
	return func() tea.Msg {
		if err := player.Play(path); err != nil {
			log.Printf("tui: sound %s: %v", path, err)
		}
		return nil
	}
}
