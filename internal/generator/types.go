// Package generator runs the component generation state machine: it resolves
// configuration, validates the request, guards the target directory and
// writes the stylesheet, component and barrel files in order.
package generator

import (
	"github.com/spf13/afero"

	"github.com/opmodel/generate-component/internal/component"
	"github.com/opmodel/generate-component/internal/config"
)

// ConfigSource produces the effective configuration before flags are applied.
type ConfigSource interface {
	Resolve() (*config.Config, error)
}

// Formatter normalizes generated source text.
type Formatter interface {
	Format(text string) string
}

// Event is emitted after every successful transition and once on entering
// StateErrored.
type Event struct {
	State State

	// Request and Plan are populated from StateValidated onwards.
	Request component.Request
	Plan    component.Plan

	// Path is the file or directory produced by the transition, if any.
	Path string

	// Err is set for StateErrored only.
	Err error
}

// Reporter receives pipeline events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

// Report calls f(ev).
func (f ReporterFunc) Report(ev Event) {
	f(ev)
}

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// Options configures a Pipeline.
type Options struct {
	// FS is the filesystem components are written to. Defaults to the OS filesystem.
	FS afero.Fs

	// Config supplies defaults and override files. Required.
	Config ConfigSource

	// Formatter formats the component and barrel files. When nil, formatter
	// options are discovered from the output directory upwards.
	Formatter Formatter

	// Reporter receives status events. Optional.
	Reporter Reporter
}

// Input is one invocation of the pipeline.
type Input struct {
	// Name is the component name as typed by the user.
	Name string

	// Flags holds command-line overrides.
	Flags config.Flags

	// WorkDir anchors a relative output directory. Optional.
	WorkDir string
}

// Result describes where a run ended.
type Result struct {
	// State is StateDone or StateErrored.
	State State

	// Failed is the state whose work failed. Only meaningful when State is StateErrored.
	Failed State

	Config  *config.Config
	Request component.Request
	Plan    component.Plan

	// Files lists written files in write order.
	Files []string

	// FormatConfig is the formatter configuration file used, if any.
	FormatConfig string
}
