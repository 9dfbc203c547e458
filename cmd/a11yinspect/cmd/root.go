// Package cmd implements the a11yinspect commands.
//
// Every command reads the optional accessbridge.yaml from --dir so that
// type names and runtime gating match what an application would see.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/accessbridge/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "a11yinspect",
		Short: "Inspect native accessibility types, text boundaries and trees",
		Long: `a11yinspect shows what the accessibility bridge hands to the native
runtime: the composite type of a widget role, the text unit a boundary
query returns, and the native view of a tree described in YAML.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("dir", ".", "Directory containing "+config.FileName)
	root.PersistentFlags().String("format", "yaml", "Output format: yaml or json")

	root.AddCommand(newCapsCommand(), newTextCommand(), newTreeCommand())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the configuration named by --dir.
func resolveConfig(cmd *cobra.Command) (*config.Resolved, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return config.Resolve(dir)
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", format)
	}
}

// render writes v in the --format encoding.
func render(cmd *cobra.Command, v any) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), format, v)
}

func encode(w io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
