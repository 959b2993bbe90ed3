package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidsel/vidsel/config"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/style"
)

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func done(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.ANSIGreen)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings stored in vidsel.toml",
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe settings, all of them when no key is given",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := config.Fields()
		if len(args) > 0 {
			fields = lo.Map(args, func(k string, _ int) *config.Field {
				f, err := config.Lookup(k)
				handleErr(err)
				return f
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Println(strings.Join(lo.Map(fields, func(f *config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the effective value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := config.Lookup(args[0])
		handleErr(err)
		cmd.Println(f.Value())
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change a setting and save it",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := config.Set(args[0], args[1])
		handleErr(err)
		done("%s is now %s", style.Fg(style.ANSIPurple)(args[0]), style.Fg(style.ANSIYellow)(fmt.Sprint(v)))
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset <key...>",
	Short:             "Restore settings to their defaults and save them",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range args {
			f, err := config.Reset(k)
			handleErr(err)
			done("%s is back to %s", style.Fg(style.ANSIPurple)(f.Key), style.Fg(style.ANSIYellow)(fmt.Sprint(f.Default)))
		}
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the effective settings to vidsel.toml",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Write(lo.Must(cmd.Flags().GetBool("force"))))
		done("wrote %s", config.Path())
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete vidsel.toml so every setting falls back to its default",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Remove())
		done("deleted %s", config.Path())
	},
}

func init() {
	configInfoCmd.Flags().BoolP("json", "j", false, "Print settings as JSON")
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")

	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)
	rootCmd.AddCommand(configCmd)
}
