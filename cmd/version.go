package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/version"
)

// buildInfo pairs labels with build metadata in print order.
func buildInfo() []lo.Tuple2[string, string] {
	return []lo.Tuple2[string, string]{
		{A: "version", B: constant.Version},
		{A: "revision", B: constant.Revision},
		{A: "built", B: strings.TrimSpace(constant.BuiltAt)},
		{A: "by", B: constant.BuiltBy},
		{A: "platform", B: runtime.GOOS + "/" + runtime.GOARCH},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vidsel version and build details",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		cmd.Println(style.Fg(style.ANSIPurple)(constant.Vidsel))
		for _, row := range buildInfo() {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-9s", row.A)), style.Bold(row.B))
		}

		version.Notify()
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
