// Package player hands resolved stream URLs to an external media player.
package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

// Player launches a playback session for a single URL.
type Player interface {
	// Play starts playback of rawURL with the given window title.
	Play(rawURL string, title string) error

	// Wait returns a channel closed when the session ends.
	Wait() <-chan struct{}

	// Close stops the session and releases its resources.
	Close() error
}

// Names of the supported backends.
const (
	MPV    = "mpv"
	IINA   = "iina"
	System = "system"
)

// Available returns the backend names accepted by New.
func Available() []string {
	return []string{MPV, IINA, System}
}

// New returns the backend called name.
func New(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MPV:
		return NewMPV(), nil
	case IINA:
		return NewIINA(), nil
	case System:
		return NewSystem(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %s", name, strings.Join(Available(), ", "))
	}
}

// Executable returns the binary a backend needs on PATH, if any.
func Executable(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MPV:
		return "mpv", true
	default:
		return "", false
	}
}

// Installed reports whether the binary needed by the backend is on PATH.
func Installed(name string) bool {
	binary, ok := Executable(name)
	if !ok {
		return true
	}

	_, err := exec.LookPath(binary)
	return err == nil
}

// sanitizeMediaTarget accepts only http(s) URLs that cannot be mistaken for flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
