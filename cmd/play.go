package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/log"
	"github.com/vidsel/vidsel/player"
	"github.com/vidsel/vidsel/query"
	"github.com/vidsel/vidsel/source"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/tui"
	"github.com/vidsel/vidsel/util"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("player", "P", "", "Media player to use (mpv, iina, system)")
	lo.Must0(playCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, playCmd.Flags().Lookup("player")))
}

var playCmd = &cobra.Command{
	Use:               "play [id|url]",
	Short:             "Resolve a video and open it in a media player",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := videoIDs(args)
		handleErr(err)
		if len(ids) == 0 {
			handleErr(errors.New("no valid video identifier given"))
		}

		name := viper.GetString(key.Player)
		CheckDependencies(name)

		p, err := player.New(name)
		handleErr(err)

		ctx, cancel := signalContext()
		defer cancel()

		options := &tui.Options{
			ID:       ids[0],
			Resolver: newResolver(),
			Player:   p,
		}

		if !util.IsTerminal() {
			handleErr(playPlain(ctx, options))
			return
		}

		video, err := tui.Run(ctx, options)
		handleErr(err)
		if video == nil {
			return
		}

		remember(video.ID)
		fmt.Printf("%s %s\n%s\n", style.Fg(style.ANSIGreen)(icon.Get(icon.Success)), video.ID, style.Faint(util.Wrap(video.String(), util.TerminalWidth(80))))
	},
}

// playPlain runs without the progress view, for pipes and scripts.
func playPlain(ctx context.Context, options *tui.Options) error {
	video, _, err := source.Resolve(ctx, options.Resolver, options.ID)
	if err != nil {
		return err
	}

	if err := options.Player.Play(video.URL, video.ID); err != nil {
		return err
	}
	defer util.Ignore(options.Player.Close)

	remember(video.ID)

	select {
	case <-options.Player.Wait():
	case <-ctx.Done():
	}
	return nil
}

func remember(id string) {
	if !viper.GetBool(key.ResolveRemember) {
		return
	}

	if err := query.Remember(id); err != nil {
		log.Warnf("remember %s: %v", id, err)
	}
}
