package player

import (
	"fmt"
	"os/exec"
	"runtime"
)

// IINAPlayer launches IINA through LaunchServices. It has no IPC channel.
type IINAPlayer struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA() *IINAPlayer {
	return &IINAPlayer{exited: make(chan struct{})}
}

func (p *IINAPlayer) Play(rawURL string, title string) error {
	if runtime.GOOS != "darwin" {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	p.cmd = exec.Command("open", iinaArgs(target, sanitizeTitle(title))...)
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	go func() {
		_ = p.cmd.Wait()
		close(p.exited)
	}()

	return nil
}

// iinaArgs forwards mpv options after --args.
func iinaArgs(target, title string) []string {
	return []string{
		"-W", "-a", "IINA",
		target,
		"--args", fmt.Sprintf("--mpv-force-media-title=%s", title),
	}
}

func (p *IINAPlayer) Wait() <-chan struct{} {
	return p.exited
}

func (p *IINAPlayer) Close() error {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return nil
}
