package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/generate-component/internal/component"
	"github.com/opmodel/generate-component/internal/config"
	oerrors "github.com/opmodel/generate-component/internal/errors"
	"github.com/opmodel/generate-component/internal/generator"
	"github.com/opmodel/generate-component/internal/output"
)

func runGenerate(cmd *cobra.Command, args []string, flags *rootFlags, e *env) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	}

	var overrides config.Flags
	if cmd.Flags().Changed("lang") {
		overrides.Lang = &flags.lang
	}
	if cmd.Flags().Changed("dir") {
		overrides.Dir = &flags.dir
	}
	if cmd.Flags().Changed("style") {
		overrides.Style = &flags.style
	}

	p := generator.New(generator.Options{
		FS:       e.fs,
		Config:   config.NewResolver(e.resolverOptions()),
		Reporter: &statusReporter{workDir: e.workDir, tty: e.tty},
	})

	res, err := p.Run(cmd.Context(), generator.Input{
		Name:    name,
		Flags:   overrides,
		WorkDir: e.workDir,
	})
	if err != nil {
		code := oerrors.ExitCodeFromError(err)
		if flags.verbose {
			logFailure(err, code)
		}
		return &oerrors.ExitError{Err: err, Code: code, Printed: true}
	}

	output.Debug("component generated", "dir", res.Plan.ComponentDir, "files", len(res.Files), "prettier", res.FormatConfig)
	return nil
}

// logFailure records the classified failure behind the error banner.
func logFailure(err error, code int) {
	keyvals := []interface{}{"exit", oerrors.ExitCodeName(code), "code", code}
	var stepErr *generator.StepError
	if errors.As(err, &stepErr) {
		keyvals = append(keyvals, "state", stepErr.State.String())
	}
	output.Error("component generation failed", append(keyvals, "error", err)...)
}

// statusReporter prints a status line for every generator transition.
type statusReporter struct {
	workDir string
	tty     bool
}

func (r *statusReporter) Report(ev generator.Event) {
	switch ev.State {
	case generator.StateValidated:
		r.intro(ev.Request, ev.Plan)
	case generator.StateDirectoryEnsured:
		output.ItemCompleted(output.TextDirCreated)
	case generator.StateStyleEmitted:
		if ev.Path != "" {
			output.ItemCompleted(output.StylesheetSaved(filepath.Base(ev.Path)))
		}
	case generator.StateComponentEmitted:
		output.ItemCompleted(output.TextComponentSaved)
	case generator.StateIndexEmitted:
		output.ItemCompleted(output.TextIndexSaved)
	case generator.StateDone:
		r.conclusion(ev.Request, ev.Plan)
	case generator.StateErrored:
		output.ErrorBanner(r.errorDetail(ev.Err))
	}
}

func (r *statusReporter) intro(req component.Request, plan component.Plan) {
	if r.tty {
		choices := make([]output.Choice, 0, len(component.Languages()))
		for _, l := range component.Languages() {
			choices = append(choices, output.Choice{Label: l.DisplayName(), Selected: l == req.Language})
		}
		output.Intro(req.Name, r.display(plan.ComponentDir), choices)
	}
	output.TargetDirectory(r.display(req.OutputDir), req.OutputDir)
}

func (r *statusReporter) conclusion(req component.Request, plan component.Plan) {
	files := map[string]string{
		filepath.Base(plan.ComponentFile): "component",
		filepath.Base(plan.IndexFile):     "barrel",
	}
	if plan.StyleFile != "" {
		files[filepath.Base(plan.StyleFile)] = "stylesheet"
	}
	output.Println("")
	output.Print(output.RenderFileTree(req.Name, files))
	output.Conclusion(req.Name, r.tty)
}

// display shortens path relative to the working directory when it lies inside it.
func (r *statusReporter) display(path string) string {
	if r.workDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// errorDetail returns the text shown under the error banner.
func (r *statusReporter) errorDetail(err error) string {
	var detail *oerrors.DetailError
	switch {
	case errors.Is(err, oerrors.ErrInput):
		return output.TextNameMissing
	case errors.Is(err, oerrors.ErrCollision) && errors.As(err, &detail):
		return output.AlreadyExists(r.display(detail.Location))
	default:
		return err.Error()
	}
}
