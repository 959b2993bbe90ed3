package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidsel/vidsel/source"
	"github.com/vidsel/vidsel/style"
)

type state int

const (
	resolvingState state = iota + 1
	playingState
	doneState
)

type bubble struct {
	state state

	ctx     context.Context
	cancel  context.CancelFunc
	options *Options

	spinnerC spinner.Model
	helpC    help.Model
	keymap   *keymap

	video *source.Video
	err   error
	width int

	// playerMu orders Play against Close across the command goroutine.
	playerMu     sync.Mutex
	playerClosed bool
}

func newBubble(ctx context.Context, cancel context.CancelFunc, options *Options) *bubble {
	b := &bubble{
		state:   resolvingState,
		ctx:     ctx,
		cancel:  cancel,
		options: options,
		helpC:   help.New(),
		keymap:  newKeymap(),
	}

	b.spinnerC = spinner.New()
	b.spinnerC.Spinner = spinner.Dot
	b.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	return b
}

func (b *bubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.resolve())
}
