package player

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/vidsel/vidsel/log"
	"github.com/vidsel/vidsel/where"
)

// mpv may take a while to open its socket on a cold start.
const (
	socketPolls    = 10
	socketInterval = 300 * time.Millisecond
	quitTimeout    = 3 * time.Second
)

var errExited = errors.New("mpv exited")

// MPVPlayer runs mpv and controls it over JSON IPC.
type MPVPlayer struct {
	cmd    *exec.Cmd
	ipc    *ipc
	exited chan struct{}
}

func NewMPV() *MPVPlayer {
	return &MPVPlayer{exited: make(chan struct{})}
}

func (m *MPVPlayer) Play(rawURL string, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("mpv: %w", err)
	}

	if m.ipc == nil {
		socket, err := socketPath()
		if err != nil {
			return err
		}
		m.ipc = &ipc{socket: socket}
	}

	cmd := exec.Command("mpv", mpvArgs(m.ipc.socket, target, sanitizeTitle(title))...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()
	m.cmd, m.exited = cmd, exited

	if err := m.awaitSocket(); err != nil {
		if !errors.Is(err, errExited) {
			log.Warnf("mpv socket %s never opened, killing it", m.ipc.socket)
			terminate(cmd)
		}
		return err
	}
	return nil
}

func socketPath() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("mpv socket name: %w", err)
	}
	return filepath.Join(where.Temp(), "mpv-"+hex.EncodeToString(suffix)+".sock"), nil
}

// mpvArgs keeps video output options in the user's mpv.conf.
func mpvArgs(socket, target, title string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--force-window=yes",
		"--input-ipc-server=" + socket,
		"--force-media-title=" + title,
		"--title=" + title,
		"--",
		target,
	}
}

func (m *MPVPlayer) awaitSocket() error {
	for poll := 0; poll < socketPolls; poll++ {
		select {
		case <-m.exited:
			return errExited
		case <-time.After(socketInterval):
		}

		if m.ipc.reachable() {
			return nil
		}
	}
	return fmt.Errorf("mpv socket %s not ready after %s", m.ipc.socket, socketPolls*socketInterval)
}

func (m *MPVPlayer) Wait() <-chan struct{} {
	return m.exited
}

// Close asks mpv to quit and kills it if it has not within quitTimeout.
func (m *MPVPlayer) Close() error {
	if m.cmd == nil {
		return nil
	}

	_, _ = m.ipc.call("quit")
	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		terminate(m.cmd)
	}

	if err := os.Remove(m.ipc.socket); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
