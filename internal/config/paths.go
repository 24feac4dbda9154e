package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/opmodel/generate-component/internal/output"
)

// FileName is the override file name looked up in the home and project directories.
const FileName = ".create-component-config.json"

// Paths contains the override file locations.
type Paths struct {
	// HomeFile is the user-global override file. Empty when the home
	// directory is unknown.
	HomeFile string

	// ProjectFile is the project-local override file.
	ProjectFile string
}

// PathsFor returns the override file paths for the given directories.
func PathsFor(homeDir, workDir string) Paths {
	p := Paths{ProjectFile: filepath.Join(workDir, FileName)}
	if homeDir != "" {
		p.HomeFile = filepath.Join(homeDir, FileName)
	}
	return p
}

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// DefaultResolverOptions returns resolver options backed by the real
// filesystem, the user's home directory and the process working directory.
// An unknown home directory leaves HomeDir empty, which skips the home layer.
func DefaultResolverOptions() (ResolverOptions, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		output.Warn("home directory unknown, skipping user override file", "error", err)
		homeDir = ""
	}
	workDir, err := os.Getwd()
	if err != nil {
		return ResolverOptions{}, fmt.Errorf("finding working directory: %w", err)
	}

	return ResolverOptions{
		FS:        afero.NewOsFs(),
		HomeDir:   homeDir,
		WorkDir:   workDir,
		LookupEnv: os.LookupEnv,
	}, nil
}

// ExpandPath expands a leading ~ to homeDir. Paths are returned unchanged
// when homeDir is empty.
func ExpandPath(path, homeDir string) string {
	if len(path) == 0 || path[0] != '~' || homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// Handle ~username (not supported, return as-is)
	return path
}
