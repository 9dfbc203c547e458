package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/accessbridge/pkg/capability"
	"github.com/go-drift/accessbridge/pkg/semantics"
	"github.com/go-drift/accessbridge/pkg/typereg"
)

type capsReport struct {
	Role         string   `json:"role" yaml:"role"`
	Host         string   `json:"host" yaml:"host"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Type         string   `json:"type" yaml:"type"`
	Interfaces   []string `json:"interfaces" yaml:"interfaces"`
}

func newCapsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "caps <role>",
		Short: "Show the capabilities and native type of a role",
		Long: `Resolve the optional capabilities of a semantic role and the composite
native type a widget of --host class with that role is exposed as.

Roles use kebab-case names, e.g. push-button, page-tab-list or
"unspecified" for a widget whose listeners give no role.`,
		Args: cobra.ExactArgs(1),
		RunE: runCaps,
	}
	c.Flags().String("host", "Widget", "Widget class the type is created for")
	return c
}

func runCaps(cmd *cobra.Command, args []string) error {
	role, ok := semantics.ParseRole(args[0])
	if !ok {
		return fmt.Errorf("unknown role %q", args[0])
	}
	host, _ := cmd.Flags().GetString("host")
	resolved, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	reg := typereg.New(typereg.Options{Prefix: resolved.TypePrefix, RootSize: resolved.RootSize})
	caps := capability.Resolve(role)
	t, err := reg.GetOrCreate(host, caps)
	if err != nil {
		return err
	}

	report := capsReport{
		Role:         role.String(),
		Host:         host,
		Capabilities: []string{},
		Type:         t.Name,
		Interfaces:   t.Interfaces,
	}
	for _, c := range caps.Members() {
		report.Capabilities = append(report.Capabilities, c.String())
	}
	return render(cmd, report)
}
