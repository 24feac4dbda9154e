package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/generate-component/internal/config"
	oerrors "github.com/opmodel/generate-component/internal/errors"
	"github.com/opmodel/generate-component/internal/output"
)

func newConfigCmd(getEnv func() *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the ` + config.FileName + ` override files.`,
	}

	cmd.AddCommand(newConfigInitCmd(getEnv))
	cmd.AddCommand(newConfigShowCmd(getEnv))

	return cmd
}

func newConfigInitCmd(getEnv func() *env) *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an override file with the default values",
		Long: `Write ` + config.FileName + ` holding the built-in defaults.

The file is written to the current directory, or to the home directory
with --global.

Examples:
  # Project override
  generate-component config init

  # User override, replacing an existing one
  generate-component config init --global --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			paths := config.PathsFor(e.homeDir, e.workDir)
			path := paths.ProjectFile
			if global {
				if paths.HomeFile == "" {
					err := &oerrors.DetailError{
						Type:    "validation failed",
						Message: "home directory is unknown",
						Hint:    "Set HOME or run without --global.",
						Cause:   oerrors.ErrValidation,
					}
					return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err)}
				}
				path = paths.HomeFile
			}

			if err := config.WriteDefault(e.fs, path, force); err != nil {
				return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err)}
			}

			output.Println(output.FormatCheckmark("Configuration written to " + output.StylePath.Render(path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Write to the home directory instead of the current directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing override file")

	return cmd
}

// shownValue is one configuration key as printed by config show.
type shownValue struct {
	Key      string            `json:"key" yaml:"key"`
	Value    string            `json:"value" yaml:"value"`
	Source   string            `json:"source" yaml:"source"`
	Shadowed map[string]string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

func newConfigShowCmd(getEnv func() *env) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv()
			resolver := config.NewResolver(e.resolverOptions())
			cfg, err := resolver.Resolve()
			if err != nil {
				return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err)}
			}

			values := make([]shownValue, 0, len(cfg.Resolved()))
			for _, rv := range cfg.Resolved() {
				sv := shownValue{Key: rv.Key, Value: rv.Value, Source: string(rv.Source)}
				if len(rv.Shadowed) > 0 {
					sv.Shadowed = make(map[string]string, len(rv.Shadowed))
					for src, v := range rv.Shadowed {
						sv.Shadowed[string(src)] = v
					}
				}
				values = append(values, sv)
			}

			return printConfig(output.ParseOutputFormat(outputFlag), resolver.Paths(), values)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func printConfig(format output.OutputFormat, paths config.Paths, values []shownValue) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Print(string(data))
	default:
		output.Println(output.StyleLabel.Render("Home file:    ") + output.StylePath.Render(paths.HomeFile))
		output.Println(output.StyleLabel.Render("Project file: ") + output.StylePath.Render(paths.ProjectFile))
		output.Println("")
		for _, v := range values {
			output.Println(fmt.Sprintf("  %-6s %-20s %s", v.Key, v.Value, output.StyleDim.Render("("+v.Source+")")))
		}
	}
	return nil
}
