package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestApplyFlags(t *testing.T) {
	base, err := newTestResolver(t, map[string]string{
		PathsFor(testHome, testWork).HomeFile: `{"lang": "js"}`,
	}).Resolve()
	require.NoError(t, err)

	t.Run("flag overrides every lower layer", func(t *testing.T) {
		cfg := ApplyFlags(base, Flags{Lang: strPtr("ts")})

		assert.Equal(t, "ts", cfg.Lang)
		assert.Equal(t, SourceFlag, cfg.Source(KeyLang))
		for _, rv := range cfg.Resolved() {
			if rv.Key == KeyLang {
				assert.Equal(t, "js", rv.Shadowed[SourceHome])
			}
		}
	})

	t.Run("unset flags leave values alone", func(t *testing.T) {
		cfg := ApplyFlags(base, Flags{})
		assert.Equal(t, "js", cfg.Lang)
		assert.Equal(t, SourceHome, cfg.Source(KeyLang))
	})

	t.Run("base config is not modified", func(t *testing.T) {
		_ = ApplyFlags(base, Flags{Dir: strPtr("lib"), Style: strPtr("none")})
		assert.Equal(t, "app/ui", base.Dir)
		assert.Equal(t, "scssModule", base.Style)
		assert.Equal(t, SourceDefault, base.Source(KeyDir))
	})

	t.Run("works on a bare default config", func(t *testing.T) {
		cfg := ApplyFlags(DefaultConfig(), Flags{Style: strPtr("css")})
		assert.Equal(t, "css", cfg.Style)
		assert.Equal(t, SourceFlag, cfg.Source(KeyStyle))
	})
}

func TestResolvedOrder(t *testing.T) {
	values := DefaultConfig().Resolved()
	require.Len(t, values, 3)
	assert.Equal(t, []string{KeyLang, KeyDir, KeyStyle}, []string{values[0].Key, values[1].Key, values[2].Key})
}

func TestLogResolvedValues(t *testing.T) {
	assert.NotPanics(t, func() {
		LogResolvedValues(DefaultConfig().Resolved())
	})
}
