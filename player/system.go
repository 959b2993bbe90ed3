package player

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// SystemPlayer hands the URL to the OS default handler. Wait is closed as
// soon as the handler returns, since the eventual player is not a child.
type SystemPlayer struct {
	exited chan struct{}
}

func NewSystem() *SystemPlayer {
	return &SystemPlayer{exited: make(chan struct{})}
}

func (p *SystemPlayer) Play(rawURL string, _ string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	cmd, ok := openCommand(runtime.GOOS, target)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", cmd.Path, err)
	}

	go func() {
		_ = cmd.Wait()
		close(p.exited)
	}()

	return nil
}

func (p *SystemPlayer) Wait() <-chan struct{} {
	return p.exited
}

func (p *SystemPlayer) Close() error {
	return nil
}

func openCommand(goos, input string) (*exec.Cmd, bool) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case "darwin":
		return exec.Command("open", input), true
	case "linux":
		return exec.Command("xdg-open", input), true
	case "android":
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
