// Package config resolves the effective generation settings from built-in
// defaults, optional override files, the environment and CLI flags.
package config

// Configuration keys, shared by override files, environment variables and flags.
const (
	KeyLang  = "lang"
	KeyDir   = "dir"
	KeyStyle = "style"
)

// Keys returns the recognized configuration keys in display order.
func Keys() []string {
	return []string{KeyLang, KeyDir, KeyStyle}
}

// Built-in defaults.
const (
	DefaultLang  = "ts"
	DefaultDir   = "app/ui"
	DefaultStyle = "scssModule"
)

// Config is the effective configuration. Values are kept as loaded; the
// closed language and style sets are enforced by the component package.
// A Config is not modified after construction.
type Config struct {
	// Lang is the component language (js or ts).
	Lang string `mapstructure:"lang" json:"lang"`

	// Dir is the directory components are created in.
	Dir string `mapstructure:"dir" json:"dir"`

	// Style is the stylesheet variant.
	Style string `mapstructure:"style" json:"style"`

	resolution map[string]ResolvedValue
}

// DefaultConfig returns a Config with all default values populated.
// Used by `config init` to generate an override file.
func DefaultConfig() *Config {
	return &Config{
		Lang:  DefaultLang,
		Dir:   DefaultDir,
		Style: DefaultStyle,
	}
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) string {
	switch key {
	case KeyLang:
		return c.Lang
	case KeyDir:
		return c.Dir
	case KeyStyle:
		return c.Style
	default:
		return ""
	}
}

// Source returns where the value of key came from.
func (c *Config) Source(key string) ConfigSource {
	if rv, ok := c.resolution[key]; ok {
		return rv.Source
	}
	return SourceDefault
}

// Resolved returns the resolution record of every key in display order.
func (c *Config) Resolved() []ResolvedValue {
	out := make([]ResolvedValue, 0, len(Keys()))
	for _, key := range Keys() {
		rv, ok := c.resolution[key]
		if !ok {
			rv = ResolvedValue{Key: key, Value: c.Get(key), Source: SourceDefault}
		}
		out = append(out, rv)
	}
	return out
}

func (c *Config) clone() *Config {
	cp := *c
	cp.resolution = make(map[string]ResolvedValue, len(c.resolution))
	for k, v := range c.resolution {
		shadowed := make(map[ConfigSource]string, len(v.Shadowed))
		for s, val := range v.Shadowed {
			shadowed[s] = val
		}
		v.Shadowed = shadowed
		cp.resolution[k] = v
	}
	return &cp
}
