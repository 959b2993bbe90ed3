package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidsel/vidsel/config"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/where"
)

// variables lists every variable vidsel reads, the config directory override first.
func variables() []string {
	return append([]string{where.EnvConfigPath}, lo.Map(config.Fields(), func(f *config.Field, _ int) string {
		return f.Env()
	})...)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the VIDSEL_* variables and their values in this shell",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		onlySet := lo.Must(cmd.Flags().GetBool("set"))
		name := style.New().Bold(true).Foreground(style.ANSIPurple).Render

		for _, env := range variables() {
			value, ok := os.LookupEnv(env)
			switch {
			case ok:
				cmd.Printf("%s=%s\n", name(env), style.Fg(style.ANSIGreen)(value))
			case !onlySet:
				cmd.Printf("%s %s\n", name(env), style.Faint("unset"))
			}
		}
	},
}

func init() {
	envCmd.Flags().BoolP("set", "s", false, "Skip variables that are not set")
	rootCmd.AddCommand(envCmd)
}
