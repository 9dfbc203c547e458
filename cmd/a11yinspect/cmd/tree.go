package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	a11ytest "github.com/go-drift/accessbridge/pkg/testing"
)

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file.yaml>",
		Short: "Print the native view of a described tree",
		Long: `Build nodes from a YAML tree description and print the tree the native
runtime sees: type, role, name, states, interfaces and text per object.

A description looks like:

  class: Window
  role: window
  name: Settings
  children:
    - role: push-button
      name: OK
      actions: [press]`,
		Args: cobra.ExactArgs(1),
		RunE: runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	fixture, err := a11ytest.ParseFixture(data)
	if err != nil {
		return err
	}
	resolved, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := accessibility.OptionsFromConfig(resolved)
	if err != nil {
		return err
	}
	defer func() { _ = opts.Logger.Sync() }()

	h := a11ytest.NewHarness(
		a11ytest.WithBridgeOptions(opts),
		a11ytest.WithRuntimeVersion(resolved.RuntimeVersion),
	)
	defer h.Cleanup()

	root, err := h.Build(fixture)
	if err != nil {
		return err
	}
	view := h.Capture(root)
	if errs := h.Errors.Errors(); len(errs) > 0 {
		return errs[0]
	}

	var out []byte
	if format == "json" {
		out, err = view.JSON()
	} else {
		out, err = view.YAML()
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
