package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/icon"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/style"
	"github.com/vidsel/vidsel/util"
)

const lookupTimeout = 5 * time.Second

// Newer returns the latest release when it is ahead of the running build.
func Newer(ctx context.Context) (string, bool) {
	latest, err := Latest(ctx)
	if err != nil {
		return "", false
	}

	ahead, err := Compare(latest, constant.Version)
	return latest, err == nil && ahead > 0
}

// Notify prints an upgrade hint when cli.version_check is on and a newer
// release exists. Lookup failures print nothing.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	erase := util.PrintErasable(icon.Get(icon.Progress) + " looking for a newer vidsel")
	latest, ok := Newer(ctx)
	erase()
	if !ok {
		return
	}

	fmt.Printf("\n%s is out %s\n%s\n\n",
		style.Fg(style.ANSIGreen)("vidsel "+latest),
		style.Faint("(running "+constant.Version+")"),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
