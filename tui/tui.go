// Package tui shows resolution and playback progress in an interactive terminal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidsel/vidsel/player"
	"github.com/vidsel/vidsel/source"
)

// Options describe a single resolve-and-play session.
type Options struct {
	// ID is the normalized video identifier.
	ID string
	// Resolver answers player API requests.
	Resolver source.Resolver
	// Player receives the resolved URL. Nil only resolves.
	Player player.Player
}

// Run drives the session until playback ends or the user quits.
// It returns the video that was resolved, if any.
func Run(ctx context.Context, options *Options) (*source.Video, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newBubble(ctx, cancel, options)
	_, err := tea.NewProgram(model).Run()

	cancel()
	model.stopPlayer()

	if err != nil {
		return nil, err
	}
	return model.video, model.err
}
