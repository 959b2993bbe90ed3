package util

import "github.com/vidsel/vidsel/filesystem"

// Delete removes path, recursing into directories.
// A missing path is reported as fs.ErrNotExist.
func Delete(path string) error {
	api := filesystem.API()
	if _, err := api.Stat(path); err != nil {
		return err
	}
	return api.RemoveAll(path)
}

// Ignore calls f and drops its error, for deferred closes.
func Ignore(f func() error) {
	_ = f()
}
