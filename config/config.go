package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/constant"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/where"
)

const fileType = "toml"

// Path is the location of vidsel.toml.
func Path() string {
	return filepath.Join(where.Config(), constant.Vidsel+"."+fileType)
}

// Setup registers defaults and VIDSEL_* overrides, then reads the file if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigFile(Path())
	viper.SetConfigType(fileType)

	viper.SetEnvPrefix(constant.Vidsel)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	for _, f := range fields {
		viper.SetDefault(f.Key, f.Default)
		if err := viper.BindEnv(f.Key); err != nil {
			return err
		}
	}

	exists, err := filesystem.API().Exists(Path())
	if err != nil || !exists {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", Path(), err)
	}
	return nil
}

// Set parses raw for k, applies it and saves the file.
func Set(k, raw string) (any, error) {
	f, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	v, err := f.Parse(raw)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, save()
}

// Reset restores k to its default and saves the file.
func Reset(k string) (*Field, error) {
	f, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	viper.Set(k, f.Default)
	return f, save()
}

// ErrExists is returned by Write when the file is present and force is not set.
var ErrExists = errors.New("config file already exists")

// Write saves the effective settings, keeping an existing file unless force is set.
func Write(force bool) error {
	exists, err := filesystem.API().Exists(Path())
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s: %w, use --force to overwrite", Path(), ErrExists)
	}
	return save()
}

// Remove deletes the file. Settings fall back to defaults on the next run.
func Remove() error {
	err := filesystem.API().Remove(Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func save() error {
	return viper.WriteConfigAs(Path())
}
