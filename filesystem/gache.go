package filesystem

import (
	"io"
	"os"
	"time"

	"github.com/metafates/gache"
)

// Store opens a JSON gache file at path on the active backend.
// A zero lifetime keeps entries forever.
func Store[T any](path string, lifetime time.Duration) *gache.Cache[T] {
	return gache.New[T](&gache.Options{
		Path:       path,
		Lifetime:   lifetime,
		FileSystem: gacheBackend{},
	})
}

// gacheBackend resolves API() on every call, so a Store opened before
// UseMemory still follows the switch.
type gacheBackend struct{}

func (gacheBackend) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (gacheBackend) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
