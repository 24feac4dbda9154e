package generator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/generate-component/internal/component"
	"github.com/opmodel/generate-component/internal/config"
	oerrors "github.com/opmodel/generate-component/internal/errors"
	"github.com/opmodel/generate-component/internal/testutil"
)

var (
	testHome = filepath.FromSlash("/home/dev")
	testWork = filepath.FromSlash("/work/project")
)

// countingSource records how often configuration was requested.
type countingSource struct {
	inner ConfigSource
	calls int
}

func (c *countingSource) Resolve() (*config.Config, error) {
	c.calls++
	return c.inner.Resolve()
}

func newTestFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := testutil.MemFS(t, testHome, testWork)
	for path, content := range files {
		testutil.WriteFile(t, fsys, path, content)
	}
	return fsys
}

func noEnv(string) (string, bool) { return "", false }

func newTestResolver(fsys afero.Fs) *config.Resolver {
	return config.NewResolver(config.ResolverOptions{
		FS:        fsys,
		HomeDir:   testHome,
		WorkDir:   testWork,
		LookupEnv: noEnv,
	})
}

func newTestPipeline(fsys afero.Fs, reporter Reporter) (*Pipeline, *countingSource) {
	src := &countingSource{inner: newTestResolver(fsys)}
	return New(Options{FS: fsys, Config: src, Reporter: reporter}), src
}

func snapshot(t *testing.T, fsys afero.Fs) map[string]string {
	t.Helper()
	return testutil.Snapshot(t, fsys, string(filepath.Separator))
}

func strPtr(s string) *string { return &s }

func TestRunPlainCSSCard(t *testing.T) {
	fsys := newTestFS(t, nil)
	p, _ := newTestPipeline(fsys, nil)

	res, err := p.Run(context.Background(), Input{
		Name:    "Card",
		Flags:   config.Flags{Style: strPtr("css")},
		WorkDir: testWork,
	})
	require.NoError(t, err)
	assert.Equal(t, StateDone, res.State)

	dir := filepath.Join(testWork, "app", "ui", "Card")
	assert.Equal(t, []string{
		filepath.Join(dir, "Card.css"),
		filepath.Join(dir, "Card.tsx"),
		filepath.Join(dir, "index.ts"),
	}, res.Files)

	assert.Equal(t, "", testutil.ReadFile(t, fsys, filepath.Join(dir, "Card.css")))
	assert.Equal(t, `import type { ReactNode } from 'react';
import './Card.css';

type CardProps = {
  children?: ReactNode;
};

export default function Card({ children }: CardProps) {
  return <div className="Card">{children}</div>;
}
`, testutil.ReadFile(t, fsys, filepath.Join(dir, "Card.tsx")))
	assert.Equal(t, "export * from './Card';\nexport { default as Card } from './Card';\n",
		testutil.ReadFile(t, fsys, filepath.Join(dir, "index.ts")))
}

func TestRunSCSSModuleMyButton(t *testing.T) {
	fsys := newTestFS(t, nil)
	p, _ := newTestPipeline(fsys, nil)

	res, err := p.Run(context.Background(), Input{Name: "MyButton", WorkDir: testWork})
	require.NoError(t, err)

	dir := filepath.Join(testWork, "app", "ui", "MyButton")
	assert.Equal(t, filepath.Join(dir, "my-button.module.scss"), res.Plan.StyleFile)
	assert.Equal(t, ".my-button {\n\n}", testutil.ReadFile(t, fsys, res.Plan.StyleFile))

	src := testutil.ReadFile(t, fsys, filepath.Join(dir, "MyButton.tsx"))
	assert.Contains(t, src, "import styles from './my-button.module.scss';\n")
	assert.Contains(t, src, "<div className={styles['my-button']}>")
	assert.Contains(t, src, "export default function MyButton({ children }: MyButtonProps) {")
}

func TestRunStyleNoneJavaScript(t *testing.T) {
	fsys := newTestFS(t, map[string]string{
		filepath.Join(testHome, config.FileName): `{"lang": "js", "style": "none"}`,
	})
	p, _ := newTestPipeline(fsys, nil)

	res, err := p.Run(context.Background(), Input{Name: "Badge", WorkDir: testWork})
	require.NoError(t, err)

	dir := filepath.Join(testWork, "app", "ui", "Badge")
	assert.Empty(t, res.Plan.StyleFile)
	assert.Equal(t, []string{
		filepath.Join(dir, "Badge.js"),
		filepath.Join(dir, "index.js"),
	}, res.Files)
	assert.Equal(t, "export default function Badge({ children }) {\n  return <div>{children}</div>;\n}\n",
		testutil.ReadFile(t, fsys, filepath.Join(dir, "Badge.js")))

	entries, err := afero.ReadDir(fsys, dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunTwiceCollides(t *testing.T) {
	fsys := newTestFS(t, nil)
	p, _ := newTestPipeline(fsys, nil)
	in := Input{Name: "Card", WorkDir: testWork}

	first, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, first.Files, 3)

	before := snapshot(t, fsys)

	second, err := p.Run(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCollision))
	assert.Equal(t, StateErrored, second.State)
	assert.Equal(t, StateDirectoryEnsured, second.Failed)
	assert.Empty(t, second.Files)

	assert.Equal(t, before, snapshot(t, fsys))
}

func TestRunMissingNameHasNoSideEffects(t *testing.T) {
	for _, name := range []string{"", "   "} {
		fsys := newTestFS(t, nil)
		before := snapshot(t, fsys)

		var events []Event
		p, src := newTestPipeline(fsys, ReporterFunc(func(ev Event) { events = append(events, ev) }))

		res, err := p.Run(context.Background(), Input{Name: name, WorkDir: testWork})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrInput))
		assert.Equal(t, oerrors.ExitSuccess, oerrors.ExitCodeFromError(err))
		assert.Equal(t, StateInit, res.Failed)
		assert.Zero(t, src.calls)
		assert.Equal(t, before, snapshot(t, fsys))

		require.Len(t, events, 1)
		assert.Equal(t, StateErrored, events[0].State)
	}
}

func TestRunEventsInOrder(t *testing.T) {
	fsys := newTestFS(t, nil)
	var states []State
	p, _ := newTestPipeline(fsys, ReporterFunc(func(ev Event) { states = append(states, ev.State) }))

	_, err := p.Run(context.Background(), Input{Name: "Card", WorkDir: testWork})
	require.NoError(t, err)

	assert.Equal(t, []State{
		StateConfigResolved,
		StateValidated,
		StateDirectoryEnsured,
		StateStyleEmitted,
		StateComponentEmitted,
		StateIndexEmitted,
		StateDone,
	}, states)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		flags    config.Flags
		input    string
		sentinel error
		failed   State
	}{
		{
			name:     "malformed project override",
			files:    map[string]string{filepath.Join(testWork, config.FileName): `{"lang":`},
			input:    "Card",
			sentinel: oerrors.ErrConfigLoad,
			failed:   StateConfigResolved,
		},
		{
			name:     "unsupported language flag",
			flags:    config.Flags{Lang: strPtr("rust")},
			input:    "Card",
			sentinel: oerrors.ErrValidation,
			failed:   StateValidated,
		},
		{
			name:     "unsupported style in override",
			files:    map[string]string{filepath.Join(testHome, config.FileName): `{"style": "less"}`},
			input:    "Card",
			sentinel: oerrors.ErrValidation,
			failed:   StateValidated,
		},
		{
			name:     "name with separator",
			input:    "nested/Card",
			sentinel: oerrors.ErrValidation,
			failed:   StateValidated,
		},
		{
			name:     "malformed formatter options",
			files:    map[string]string{filepath.Join(testWork, ".prettierrc"): `{"tabWidth": "wide"}`},
			input:    "Card",
			sentinel: oerrors.ErrConfigLoad,
			failed:   StateValidated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newTestFS(t, tt.files)
			before := snapshot(t, fsys)
			p, _ := newTestPipeline(fsys, nil)

			res, err := p.Run(context.Background(), Input{Name: tt.input, Flags: tt.flags, WorkDir: testWork})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var stepErr *StepError
			require.True(t, errors.As(err, &stepErr))
			assert.Equal(t, tt.failed, stepErr.State)
			assert.Equal(t, tt.failed, res.Failed)
			assert.Equal(t, before, snapshot(t, fsys))
		})
	}
}

func TestRunWriteFailure(t *testing.T) {
	base := newTestFS(t, nil)
	fsys := afero.NewReadOnlyFs(base)
	p := New(Options{
		FS:     fsys,
		Config: newTestResolver(fsys),
	})

	res, err := p.Run(context.Background(), Input{Name: "Card", WorkDir: testWork})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrIO))
	assert.Equal(t, StateDirectoryEnsured, res.Failed)
	assert.Equal(t, oerrors.ExitIOError, oerrors.ExitCodeFromError(err))
}

func TestRunUsesDiscoveredFormatterOptions(t *testing.T) {
	rc := filepath.Join(testWork, ".prettierrc.yaml")
	fsys := newTestFS(t, map[string]string{rc: "tabWidth: 4\nsingleQuote: false\n"})
	p, _ := newTestPipeline(fsys, nil)

	res, err := p.Run(context.Background(), Input{
		Name:    "Card",
		Flags:   config.Flags{Style: strPtr("none")},
		WorkDir: testWork,
	})
	require.NoError(t, err)
	assert.Equal(t, rc, res.FormatConfig)

	src := testutil.ReadFile(t, fsys, res.Plan.ComponentFile)
	assert.Contains(t, src, "import type { ReactNode } from \"react\";\n")
	assert.Contains(t, src, "\n    children?: ReactNode;\n")
}

type upperFormatter struct{}

func (upperFormatter) Format(text string) string { return "// formatted\n" + text }

func TestRunUsesInjectedFormatter(t *testing.T) {
	fsys := newTestFS(t, nil)
	p := New(Options{
		FS:        fsys,
		Config:    newTestResolver(fsys),
		Formatter: upperFormatter{},
	})

	res, err := p.Run(context.Background(), Input{Name: "Card", WorkDir: testWork})
	require.NoError(t, err)
	assert.Empty(t, res.FormatConfig)
	assert.Contains(t, testutil.ReadFile(t, fsys, res.Plan.IndexFile), "// formatted\n")
}

func TestRunCanceledContext(t *testing.T) {
	fsys := newTestFS(t, nil)
	p, src := newTestPipeline(fsys, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, Input{Name: "Card", WorkDir: testWork})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, StateConfigResolved, res.Failed)
	assert.Zero(t, src.calls)
}

func TestRunRequestFromConfig(t *testing.T) {
	fsys := newTestFS(t, map[string]string{
		filepath.Join(testWork, config.FileName): `{"dir": "src/components"}`,
	})
	p, _ := newTestPipeline(fsys, nil)

	res, err := p.Run(context.Background(), Input{Name: "Nav", Flags: config.Flags{Lang: strPtr("js")}, WorkDir: testWork})
	require.NoError(t, err)

	assert.Equal(t, component.Request{
		Name:      "Nav",
		Language:  component.LanguageJS,
		OutputDir: filepath.Join(testWork, "src", "components"),
		Style:     component.StyleSCSSModule,
	}, res.Request)
	assert.Equal(t, config.SourceFlag, res.Config.Source(config.KeyLang))
	assert.Equal(t, config.SourceProject, res.Config.Source(config.KeyDir))
}
