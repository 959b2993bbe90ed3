// Package where resolves application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "VIDSEL_CONFIG_PATH"

// Config returns the configuration directory, honoring VIDSEL_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return filesystem.Dir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return filesystem.Dir(filepath.Join(base, constant.Vidsel))
}

// Cache returns the cache directory, falling back to ./cache when the system has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return filesystem.Dir(filepath.Join(base, constant.Vidsel))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return filesystem.Dir(filepath.Join(Config(), "logs"))
}

// Queries returns the file remembering resolved video IDs.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp returns a scratch directory for player sockets and similar artifacts.
func Temp() string {
	return filesystem.Dir(filepath.Join(os.TempDir(), constant.Vidsel))
}
