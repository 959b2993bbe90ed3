package cmd

import (
	"errors"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/util"
)

func selected(cmd *cobra.Command, from []location) []location {
	return lo.Filter(from, func(l location, _ int) bool {
		return lo.Must(cmd.Flags().GetBool(l.flag))
	})
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print where vidsel keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if picked := selected(cmd, locations); len(picked) > 0 {
			cmd.Println(picked[0].path())
			return
		}

		name := style.New().Bold(true).Foreground(style.HiPurple).Render
		for _, l := range locations {
			cmd.Printf("%s %s\n  %s\n", name(l.flag), style.Faint(l.about), l.path())
		}
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		clearable := lo.Filter(locations, func(l location, _ int) bool { return l.clearable })
		picked := selected(cmd, clearable)
		if len(picked) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range picked {
			erase := util.PrintErasable(icon.Get(icon.Progress) + " removing " + l.about)
			err := util.Delete(l.path())
			erase()
			if errors.Is(err, fs.ErrNotExist) {
				err = nil
			}
			handleErr(err)
			cmd.Printf("%s removed %s\n", icon.Get(icon.Success), l.about)
		}
	},
}

func init() {
	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, "only print the "+l.about+" path")
		if l.clearable {
			clearCmd.Flags().BoolP(l.flag, l.short, false, "remove "+l.about)
		}
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)

	rootCmd.AddCommand(whereCmd, clearCmd)
}
