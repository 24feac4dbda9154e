// Package format normalizes generated source text before it is written.
package format

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ConfigFiles are the formatter option files searched for, in order, in each
// directory from the working directory up to the filesystem root.
var ConfigFiles = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
}

// End-of-line styles.
const (
	EndOfLineLF   = "lf"
	EndOfLineCRLF = "crlf"
	EndOfLineAuto = "auto"
)

// Options controls formatting. Field names follow the prettier option names so
// an existing project configuration can be reused.
type Options struct {
	Semi        bool   `json:"semi"`
	SingleQuote bool   `json:"singleQuote"`
	TabWidth    int    `json:"tabWidth"`
	UseTabs     bool   `json:"useTabs"`
	EndOfLine   string `json:"endOfLine"`
}

// DefaultOptions returns the options used when no configuration file is found.
func DefaultOptions() Options {
	return Options{
		Semi:        true,
		SingleQuote: true,
		TabWidth:    2,
		EndOfLine:   EndOfLineLF,
	}
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.TabWidth < 1 {
		return fmt.Errorf("tabWidth must be positive, got %d", o.TabWidth)
	}
	switch o.EndOfLine {
	case EndOfLineLF, EndOfLineCRLF, EndOfLineAuto:
		return nil
	default:
		return fmt.Errorf("unsupported endOfLine %q", o.EndOfLine)
	}
}

// LoadOptions searches dir and its ancestors for a formatter configuration
// file. It returns the defaults and an empty path when none is found. Keys
// absent from the file keep their default values.
func LoadOptions(fsys afero.Fs, dir string) (Options, string, error) {
	opts := DefaultOptions()

	path, err := findConfig(fsys, dir)
	if err != nil || path == "" {
		return opts, "", err
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return opts, path, fmt.Errorf("reading %s: %w", path, err)
	}

	// YAML is a superset of JSON, so one decoder serves every file name.
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), path, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return DefaultOptions(), path, fmt.Errorf("%s: %w", path, err)
	}

	return opts, path, nil
}

func findConfig(fsys afero.Fs, dir string) (string, error) {
	current := filepath.Clean(dir)
	for {
		for _, name := range ConfigFiles {
			candidate := filepath.Join(current, name)
			ok, err := afero.Exists(fsys, candidate)
			if err != nil {
				return "", fmt.Errorf("checking %s: %w", candidate, err)
			}
			if ok {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}
