package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	oerrors "github.com/opmodel/generate-component/internal/errors"
)

// WriteDefault writes the default configuration as an override file at path.
// An existing file is only replaced when force is set.
func WriteDefault(fsys afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return oerrors.NewIOError("stat", path, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewIOError("create directory", filepath.Dir(path), err)
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigType("json")

	defaults := DefaultConfig()
	for _, key := range Keys() {
		v.Set(key, defaults.Get(key))
	}

	if err := v.WriteConfigAs(path); err != nil {
		return oerrors.NewIOError("write config", path, fmt.Errorf("writing config file: %w", err))
	}
	return nil
}
