package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidsel/vidsel/log"
	"github.com/vidsel/vidsel/source"
)

type resolvedMsg struct {
	video *source.Video
	err   error
}

type playerStartedMsg struct {
	err error
}

type playerExitMsg struct{}

func (b *bubble) resolve() tea.Cmd {
	return func() tea.Msg {
		video, _, err := source.Resolve(b.ctx, b.options.Resolver, b.options.ID)
		return resolvedMsg{video: video, err: err}
	}
}

func (b *bubble) startPlayer() tea.Cmd {
	return func() tea.Msg {
		b.playerMu.Lock()
		defer b.playerMu.Unlock()

		// Quit may have been handled before this command ran.
		if b.playerClosed {
			return playerStartedMsg{err: context.Canceled}
		}
		if err := b.ctx.Err(); err != nil {
			return playerStartedMsg{err: err}
		}

		title := fmt.Sprintf("%s (%s)", b.options.ID, b.video.Quality)
		if err := b.options.Player.Play(b.video.URL, title); err != nil {
			return playerStartedMsg{err: err}
		}

		log.Infof("playing %s", b.video.URL)
		return playerStartedMsg{}
	}
}

func (b *bubble) waitForPlayer() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.options.Player.Wait():
		case <-b.ctx.Done():
		}
		return playerExitMsg{}
	}
}

// stopPlayer closes the player once. A start still in progress finishes
// first, and a start that has not begun yet is prevented.
func (b *bubble) stopPlayer() {
	if b.options.Player == nil {
		return
	}

	b.playerMu.Lock()
	defer b.playerMu.Unlock()

	if b.playerClosed {
		return
	}
	b.playerClosed = true

	if err := b.options.Player.Close(); err != nil {
		log.Warnf("close player: %v", err)
	}
}
