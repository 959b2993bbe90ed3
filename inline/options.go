// Package inline resolves video identifiers without any interactive UI and
// writes the results for scripts to consume.
package inline

import (
	"io"

	"github.com/vidsel/vidsel/source"
)

type Options struct {
	// Out receives the results. Defaults to os.Stdout.
	Out io.Writer
	// Resolver answers player API requests.
	Resolver source.Resolver
	// IDs are already normalized video identifiers.
	IDs []string
	// Json switches output from one URL per line to a JSON document.
	Json bool
	// Full includes the raw player response in JSON output.
	Full bool
	// Parallel bounds concurrent resolutions. Values below 1 mean 1.
	Parallel int
	// Remember records successfully resolved ids for completion.
	Remember bool
}
