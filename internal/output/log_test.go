package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	prev := logger
	t.Cleanup(func() { logger = prev })

	tests := []struct {
		name  string
		cfg   LogConfig
		level log.Level
	}{
		{name: "default is info", cfg: LogConfig{}, level: log.InfoLevel},
		{name: "verbose is debug", cfg: LogConfig{Verbose: true}, level: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogging(tt.cfg)
			assert.Equal(t, tt.level, logger.GetLevel())
		})
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogOutput(&buf)
	defer restore()

	SetupLogging(LogConfig{})
	Debug("hidden", "key", "value")
	Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetLogOutputSurvivesSetup(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogOutput(&buf)

	SetupLogging(LogConfig{Verbose: true})
	Error("generation failed", "exit", "Collision")
	Debug("details")

	restore()
	Error("not captured")

	assert.Contains(t, buf.String(), "generation failed")
	assert.Contains(t, buf.String(), "exit=Collision")
	assert.Contains(t, buf.String(), "details")
	assert.NotContains(t, buf.String(), "not captured")
}

func TestPrintlnUsesOutput(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Print("a")
	Println("b")

	assert.Equal(t, "ab\n", buf.String())
}
