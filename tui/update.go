package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.helpC.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.quit, b.keymap.forceQuit) {
			// Closing waits for a starting player, so it happens in Run.
			b.cancel()
			b.state = doneState
			return b, tea.Quit
		}
		return b, nil

	case resolvedMsg:
		if msg.err != nil {
			b.err = msg.err
			b.state = doneState
			return b, tea.Quit
		}

		b.video = msg.video
		if b.options.Player == nil {
			b.state = doneState
			return b, tea.Quit
		}

		b.state = playingState
		return b, b.startPlayer()

	case playerStartedMsg:
		if b.state == doneState {
			return b, nil
		}
		if msg.err != nil {
			b.err = msg.err
			b.state = doneState
			return b, tea.Quit
		}
		return b, b.waitForPlayer()

	case playerExitMsg:
		b.stopPlayer()
		b.state = doneState
		return b, tea.Quit
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}
