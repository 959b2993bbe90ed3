// Package filesystem is the afero backend every vidsel file goes through.
// Tests switch it to memory before touching paths.
package filesystem

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

var backend afero.Afero

func init() {
	UseOS()
}

func API() afero.Afero {
	return backend
}

// UseOS routes files to the real disk.
func UseOS() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// UseMemory routes files to an empty in-memory tree.
func UseMemory() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Dir creates path if needed and returns it. Failing to create an
// application directory is fatal.
func Dir(path string) string {
	lo.Must0(backend.MkdirAll(path, os.ModePerm))
	return path
}
