package generator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/opmodel/generate-component/internal/component"
	"github.com/opmodel/generate-component/internal/config"
	oerrors "github.com/opmodel/generate-component/internal/errors"
	"github.com/opmodel/generate-component/internal/format"
	"github.com/opmodel/generate-component/internal/output"
	"github.com/opmodel/generate-component/internal/templates"
)

// Pipeline generates one component per Run.
type Pipeline struct {
	fs        afero.Fs
	config    ConfigSource
	formatter Formatter
	reporter  Reporter
	guard     *Guard
	emitter   *Emitter
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return &Pipeline{
		fs:        opts.FS,
		config:    opts.Config,
		formatter: opts.Formatter,
		reporter:  opts.Reporter,
		guard:     NewGuard(opts.FS),
		emitter:   NewEmitter(opts.FS),
	}
}

// run holds the state of a single invocation.
type run struct {
	p      *Pipeline
	in     Input
	result *Result
	fmt    Formatter
}

// Run drives the state machine from StateInit to StateDone or StateErrored.
//
// Transition sequence:
//  1. INIT:       reject a missing name before touching config or disk
//  2. CONFIG:     resolve override files and apply flags
//  3. VALIDATE:   parse closed enums, validate the request, plan paths
//  4. DIRECTORY:  ensure parent, refuse an existing component directory, create it
//  5. STYLE:      write the stylesheet (skipped for style none)
//  6. COMPONENT:  render, format and write the component file
//  7. INDEX:      format and write the barrel file
//
// The returned Result is never nil. Errors are *StepError values wrapping the
// classified error of the failing step.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	r := &run{p: p, in: in, result: &Result{State: StateInit}}

	steps := []struct {
		next State
		fn   func() (string, error)
	}{
		{StateConfigResolved, r.resolveConfig},
		{StateValidated, r.validate},
		{StateDirectoryEnsured, r.ensureDirectory},
		{StateStyleEmitted, r.emitStyle},
		{StateComponentEmitted, r.emitComponent},
		{StateIndexEmitted, r.emitIndex},
	}

	if strings.TrimSpace(in.Name) == "" {
		return r.fail(StateInit, oerrors.NewInputError(output.TextNameMissing, ""))
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return r.fail(step.next, err)
		}
		path, err := step.fn()
		if err != nil {
			return r.fail(step.next, err)
		}
		r.advance(step.next, path)
	}

	r.advance(StateDone, "")
	return r.result, nil
}

func (r *run) advance(s State, path string) {
	output.Debug("generator state", "state", s, "path", path)
	r.result.State = s
	r.p.reporter.Report(Event{
		State:   s,
		Request: r.result.Request,
		Plan:    r.result.Plan,
		Path:    path,
	})
}

func (r *run) fail(target State, err error) (*Result, error) {
	stepErr := &StepError{State: target, Err: err}
	r.result.Failed = target
	r.result.State = StateErrored
	output.Debug("generator failed", "state", target, "error", err)
	r.p.reporter.Report(Event{
		State:   StateErrored,
		Request: r.result.Request,
		Plan:    r.result.Plan,
		Err:     err,
	})
	return r.result, stepErr
}

func (r *run) resolveConfig() (string, error) {
	cfg, err := r.p.config.Resolve()
	if err != nil {
		return "", err
	}
	cfg = config.ApplyFlags(cfg, r.in.Flags)
	config.LogResolvedValues(cfg.Resolved())
	r.result.Config = cfg
	return "", nil
}

func (r *run) validate() (string, error) {
	cfg := r.result.Config

	lang, err := component.ParseLanguage(cfg.Lang)
	if err != nil {
		return "", err
	}
	style, err := component.ParseStyle(cfg.Style)
	if err != nil {
		return "", err
	}

	dir := cfg.Dir
	if r.in.WorkDir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(r.in.WorkDir, dir)
	}

	req := component.Request{
		Name:      r.in.Name,
		Language:  lang,
		OutputDir: dir,
		Style:     style,
	}
	if err := component.Validate(req); err != nil {
		return "", err
	}

	r.result.Request = req
	r.result.Plan = component.NewPlan(req)

	r.fmt = r.p.formatter
	if r.fmt == nil {
		opts, path, err := format.LoadOptions(r.p.fs, dir)
		if err != nil {
			return "", oerrors.NewConfigLoadError(path, err)
		}
		r.result.FormatConfig = path
		r.fmt = format.New(opts)
	}
	return "", nil
}

func (r *run) ensureDirectory() (string, error) {
	plan := r.result.Plan
	if err := r.p.guard.EnsureParent(r.result.Request.OutputDir); err != nil {
		return "", err
	}
	if err := r.p.guard.CheckNotExists(plan.ComponentDir); err != nil {
		return "", err
	}
	if err := r.p.guard.CreateComponentDir(plan.ComponentDir); err != nil {
		return "", err
	}
	return plan.ComponentDir, nil
}

func (r *run) emitStyle() (string, error) {
	plan := r.result.Plan
	if !plan.Style.HasFile() {
		return "", nil
	}
	return r.write(plan.StyleFile, plan.Style.Content)
}

func (r *run) emitComponent() (string, error) {
	req, plan := r.result.Request, r.result.Plan

	src, err := templates.NewRenderer(templates.Bindings{
		Styles:        plan.Style.Import,
		ClassName:     plan.Style.ClassName,
		ComponentName: req.Name,
	}).RenderTemplate(string(req.Language))
	if err != nil {
		return "", err
	}
	return r.write(plan.ComponentFile, r.fmt.Format(src))
}

func (r *run) emitIndex() (string, error) {
	plan := r.result.Plan
	return r.write(plan.IndexFile, r.fmt.Format(component.IndexSource(r.result.Request.Name)))
}

func (r *run) write(path, content string) (string, error) {
	if err := r.p.emitter.Write(path, content); err != nil {
		return "", err
	}
	r.result.Files = append(r.result.Files, path)
	return path, nil
}
