package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	oerrors "github.com/opmodel/generate-component/internal/errors"
	"github.com/opmodel/generate-component/internal/output"
)

// Environment variable prefix for configuration overrides.
const envPrefix = "GENERATE_COMPONENT"

// EnvVar returns the environment variable name for a configuration key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

// ResolverOptions holds the inputs of configuration resolution.
type ResolverOptions struct {
	// FS is the filesystem override files are read from.
	FS afero.Fs

	// HomeDir is searched for the user-global override file.
	HomeDir string

	// WorkDir is searched for the project-local override file.
	WorkDir string

	// LookupEnv reads environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Resolver merges defaults, override files and environment variables.
type Resolver struct {
	opts  ResolverOptions
	paths Paths
}

// NewResolver creates a new Resolver.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	return &Resolver{
		opts:  opts,
		paths: PathsFor(opts.HomeDir, opts.WorkDir),
	}
}

// Paths returns the override file locations the resolver reads.
func (r *Resolver) Paths() Paths {
	return r.paths
}

type layer struct {
	source ConfigSource
	path   string
}

// Resolve loads the effective configuration. Precedence, lowest first:
// defaults, home override file, project override file, environment.
// A missing override file is an empty layer; an unreadable or malformed one
// is returned as a config load error. Keys match exactly: "LANG" is not "lang".
func (r *Resolver) Resolve() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	for _, key := range Keys() {
		v.SetDefault(key, defaults.Get(key))
	}

	res := make(map[string]ResolvedValue, len(Keys()))
	for _, key := range Keys() {
		res[key] = ResolvedValue{
			Key:      key,
			Value:    defaults.Get(key),
			Source:   SourceDefault,
			Shadowed: make(map[ConfigSource]string),
		}
	}
	record := func(key, value string, source ConfigSource) {
		rv := res[key]
		rv.Shadowed[rv.Source] = rv.Value
		rv.Value = value
		rv.Source = source
		res[key] = rv
	}

	layers := []layer{
		{SourceHome, r.paths.HomeFile},
		{SourceProject, r.paths.ProjectFile},
	}
	for _, l := range layers {
		if l.path == "" {
			output.Debug("override file skipped", "source", l.source)
			continue
		}
		settings, err := r.readLayer(l.path)
		if err != nil {
			return nil, oerrors.NewConfigLoadError(l.path, err)
		}
		if settings == nil {
			output.Debug("override file not found", "source", l.source, "path", l.path)
			continue
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return nil, oerrors.NewConfigLoadError(l.path, err)
		}
		for _, key := range Keys() {
			if val, ok := settings[key]; ok {
				record(key, fmt.Sprint(val), l.source)
			}
		}
		output.Debug("override file loaded", "source", l.source, "path", l.path)
	}

	for _, key := range Keys() {
		if val, ok := r.opts.LookupEnv(EnvVar(key)); ok && val != "" {
			v.Set(key, val)
			record(key, val, SourceEnv)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewConfigLoadError("", fmt.Errorf("decoding configuration: %w", err))
	}
	cfg.Dir = ExpandPath(cfg.Dir, r.opts.HomeDir)
	cfg.resolution = res

	return &cfg, nil
}

// readLayer reads one override file and keeps only the recognized keys.
// Values are not type checked here; the closed enums reject bad values
// downstream. It returns nil settings when the file does not exist.
func (r *Resolver) readLayer(path string) (map[string]any, error) {
	exists, err := afero.Exists(r.opts.FS, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, nil
	}

	data, err := afero.ReadFile(r.opts.FS, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// viper folds key case, so the document is decoded before it is merged.
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	settings := make(map[string]any, len(Keys()))
	for _, key := range Keys() {
		val, ok := raw[key]
		if !ok || val == nil {
			continue
		}
		settings[key] = fmt.Sprint(val)
	}
	return settings, nil
}
