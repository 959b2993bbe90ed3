package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/inline"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/network"
	"github.com/vidsel/vidsel/query"
	"github.com/vidsel/vidsel/util"
	"github.com/vidsel/vidsel/youtube"
)

func newResolver() *youtube.Resolver {
	return youtube.NewResolver(youtube.NewNegotiator(network.New()))
}

// signalContext is cancelled on the first interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// videoIDs normalizes arguments, prompting for one when none were given.
func videoIDs(args []string) ([]string, error) {
	if len(args) == 0 {
		if !util.IsInputTerminal() {
			return nil, errors.New("no video given")
		}

		var response string
		input := &survey.Input{
			Message: "Video ID or URL",
			Default: query.Suggest("").OrEmpty(),
			Suggest: query.SuggestMany,
		}
		if err := survey.AskOne(input, &response, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		args = []string{response}
	}

	return lo.FilterMap(args, func(arg string, _ int) (string, bool) {
		id := util.VideoID(arg)
		return id, id != ""
	}), nil
}

func completionVideoIDs(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	resolveCmd.Flags().BoolP("full", "f", false, "Include the raw player response in JSON output")
	resolveCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	resolveCmd.Flags().IntP("parallel", "p", 0, "Maximum number of videos resolved at the same time")
	lo.Must0(viper.BindPFlag(key.ResolveParallel, resolveCmd.Flags().Lookup("parallel")))
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [id|url...]",
	Short: "Print the best directly playable URL for each video",
	Long: `Resolve video identifiers or watch/share/embed URLs to a single stream URL each.

An HLS manifest is preferred. Otherwise the widest progressive (audio and video)
stream is chosen. Adaptive streams are never returned.`,
	Example:           "  vidsel resolve dQw4w9WgXcQ\n  vidsel resolve --json https://youtu.be/dQw4w9WgXcQ",
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		ids, err := videoIDs(args)
		handleErr(err)
		if len(ids) == 0 {
			handleErr(errors.New("no valid video identifier given"))
		}

		ctx, cancel := signalContext()
		defer cancel()

		output := lo.Must(cmd.Flags().GetString("output"))
		err = writeOutput(output, func(w io.Writer) error {
			return inline.Run(ctx, &inline.Options{
				Out:      w,
				Resolver: newResolver(),
				IDs:      ids,
				Json:     lo.Must(cmd.Flags().GetBool("json")),
				Full:     lo.Must(cmd.Flags().GetBool("full")),
				Parallel: viper.GetInt(key.ResolveParallel),
				Remember: viper.GetBool(key.ResolveRemember),
			})
		})
		cancel()
		handleErr(err)
	},
}

// writeOutput runs write against stdout, or against path when one is given.
// The file is closed before returning so nothing is lost when the caller exits.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}

	return errors.Join(write(file), file.Close())
}

func init() {
	resolveCmd.AddCommand(resolveSchemaCmd)
}

var resolveSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the resolve --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", strings.Repeat(" ", 2))
		handleErr(encoder.Encode(inline.JsonSchema()))
	},
}
