package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/generate-component/internal/output"
	"github.com/opmodel/generate-component/internal/templates"
	"github.com/opmodel/generate-component/internal/version"
)

// versionOutput is the structured form of the version command.
type versionOutput struct {
	version.Info `yaml:",inline"`
	Templates    []string `json:"templates" yaml:"templates"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show generate-component version information.

Displays:
  - version, commit and build date
  - Go toolchain and platform
  - embedded component templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(output.ParseOutputFormat(outputFlag))
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runVersion(format output.OutputFormat) error {
	out := versionOutput{Info: version.Get(), Templates: templates.Names()}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling version: %w", err)
		}
		output.Print(string(data))
	default:
		output.Println(out.Info.String())
		output.Println("  Templates: " + strings.Join(out.Templates, ", "))
	}
	return nil
}
