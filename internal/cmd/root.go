// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/generate-component/internal/component"
	"github.com/opmodel/generate-component/internal/config"
	"github.com/opmodel/generate-component/internal/output"
)

// env holds the process inputs commands read. Tests substitute their own.
type env struct {
	fs        afero.Fs
	homeDir   string
	workDir   string
	lookupEnv func(string) (string, bool)
	tty       bool
}

func (e *env) resolverOptions() config.ResolverOptions {
	return config.ResolverOptions{FS: e.fs, HomeDir: e.homeDir, WorkDir: e.workDir, LookupEnv: e.lookupEnv}
}

// rootFlags holds the generate flags.
type rootFlags struct {
	lang    string
	dir     string
	style   string
	verbose bool
}

// NewRootCmd creates the root command. Without a subcommand it generates a component.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(e *env) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "generate-component <componentName>",
		Short: "Scaffold a React component directory",
		Long: `Scaffold a React component directory containing the component source,
an index barrel and an optional stylesheet.

Defaults come from ` + config.FileName + ` in the home directory, then
the current directory, then GENERATE_COMPONENT_* environment variables.
Flags override all of them.

Examples:
  # TypeScript component with a SCSS module in app/ui/MyButton
  generate-component MyButton

  # JavaScript component with a plain stylesheet
  generate-component Card --lang js --style css --dir src/components`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetupLogging(output.LogConfig{Verbose: flags.verbose})
			if e != nil {
				return nil
			}
			opts, err := config.DefaultResolverOptions()
			if err != nil {
				return err
			}
			e = &env{
				fs:        opts.FS,
				homeDir:   opts.HomeDir,
				workDir:   opts.WorkDir,
				lookupEnv: opts.LookupEnv,
				tty:       output.IsTTY(),
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &flags, e)
		},
	}

	rootCmd.Flags().StringVarP(&flags.lang, "lang", "l", config.DefaultLang, "Which language to use: js, ts (env: GENERATE_COMPONENT_LANG)")
	rootCmd.Flags().StringVarP(&flags.dir, "dir", "d", config.DefaultDir, "Path to the components directory (env: GENERATE_COMPONENT_DIR)")
	rootCmd.Flags().StringVarP(&flags.style, "style", "s", component.StyleSCSSModule.Token(),
		"Stylesheet variant: css, module.css, scss, module.scss, none (env: GENERATE_COMPONENT_STYLE)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	// The env is resolved lazily, so subcommands read it through a getter.
	getEnv := func() *env { return e }
	rootCmd.AddCommand(newConfigCmd(getEnv))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
