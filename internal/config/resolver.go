package config

import (
	"github.com/opmodel/generate-component/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
	// SourceHome indicates value came from the user-global override file.
	SourceHome ConfigSource = "home"
	// SourceProject indicates value came from the project-local override file.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates value came from an environment variable.
	SourceEnv ConfigSource = "env"
	// SourceFlag indicates value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
)

// ResolvedValue records the winning value of a key and the values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// Flags holds CLI overrides. A nil field means the flag was not given.
type Flags struct {
	Lang  *string
	Dir   *string
	Style *string
}

// ApplyFlags returns a copy of cfg with the given flags layered on top.
func ApplyFlags(cfg *Config, flags Flags) *Config {
	out := cfg.clone()

	set := func(key string, val *string, field *string) {
		if val == nil {
			return
		}
		rv, ok := out.resolution[key]
		if !ok {
			rv = ResolvedValue{Key: key, Value: *field, Source: SourceDefault}
		}
		shadowed := make(map[ConfigSource]string, len(rv.Shadowed)+1)
		for s, v := range rv.Shadowed {
			shadowed[s] = v
		}
		shadowed[rv.Source] = rv.Value
		out.resolution[key] = ResolvedValue{Key: key, Value: *val, Source: SourceFlag, Shadowed: shadowed}
		*field = *val
	}

	set(KeyLang, flags.Lang, &out.Lang)
	set(KeyDir, flags.Dir, &out.Dir)
	set(KeyStyle, flags.Style, &out.Style)

	return out
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
