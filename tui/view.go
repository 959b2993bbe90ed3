package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/youtube"
)

func (b *bubble) View() string {
	var lines []string

	switch b.state {
	case resolvingState:
		lines = append(lines, fmt.Sprintf("%s Resolving %s", b.spinnerC.View(), style.Bold(b.options.ID)))
	case playingState:
		lines = append(lines,
			fmt.Sprintf("%s Playing %s %s", b.spinnerC.View(), style.Bold(b.options.ID), style.Faint(b.describe())),
			style.Faint(b.truncate(b.video.URL)),
		)
	case doneState:
		return ""
	}

	lines = append(lines, "", b.helpC.View(b.keymap))
	return "\n" + strings.Join(lines, "\n") + "\n"
}

func (b *bubble) describe() string {
	if b.video.Kind == youtube.KindManifest {
		return icon.Get(icon.Manifest) + " " + b.video.Quality
	}
	return icon.Get(icon.Video) + " " + b.video.Quality
}

func (b *bubble) truncate(s string) string {
	if b.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(b.width), "…")
}
