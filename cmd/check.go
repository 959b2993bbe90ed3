package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/player"
	"github.com/vidsel/vidsel/style"
)

// packageManagers maps GOOS to the install command prefix suggested for a missing player.
var packageManagers = map[string]string{
	"darwin":  "brew install",
	"linux":   "sudo apt install",
	"windows": "scoop install",
}

// CheckDependencies exits when the chosen player needs a binary that is not on PATH.
func CheckDependencies(name string) {
	if player.Installed(name) {
		return
	}

	binary, _ := player.Executable(name)
	fmt.Println(missingPlayer(binary, runtime.GOOS))
	os.Exit(1)
}

func missingPlayer(binary, goos string) string {
	lines := []string{
		style.New().Bold(true).Foreground(style.HiRed).Render(icon.Get(icon.Fail) + " " + binary + " is not installed"),
		"",
		style.New().Foreground(style.Text).Render("vidsel hands the resolved stream to " + binary + ", but it is not on your PATH."),
	}

	if manager, ok := packageManagers[goos]; ok {
		lines = append(lines, "", "Install it with", "  "+style.New().Foreground(style.AccentColor).Bold(true).Render(manager+" "+binary))
	}

	return style.Box(style.HiRed, lipgloss.JoinVertical(lipgloss.Left, lines...))
}
