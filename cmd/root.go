// Package cmd implements the vidsel command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/log"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/version"
)

const tagline = "Resolve video identifiers to directly playable stream URLs"

var rootCmd = &cobra.Command{
	Use:   constant.Vidsel,
	Short: tagline,
	Long:  constant.AsciiArtLogo + "\n    " + style.New().Italic(true).Foreground(style.HiRed).Render(tagline),
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, nil)
			return
		}
		handleErr(cmd.Help())
	},
}

// bind ties a persistent flag to a setting so the flag wins when given.
func bind(name, setting string) {
	lo.Must0(viper.BindPFlag(setting, rootCmd.PersistentFlags().Lookup(name)))
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the version")

	flags := rootCmd.PersistentFlags()
	flags.StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	flags.Bool("fingerprint", false, "Present a browser TLS fingerprint to the player API")
	bind("icons", key.IconsVariant)
	bind("fingerprint", key.NetworkTLSFingerprint)

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))

	help := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		help(cmd, args)
		version.Notify()
	})
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// handleErr logs err, prints it and exits. Deferred calls do not run, so
// anything holding a resource must release it before calling this.
func handleErr(err error) {
	if err == nil {
		return
	}
	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.TrimSpace(err.Error()))
	os.Exit(1)
}
