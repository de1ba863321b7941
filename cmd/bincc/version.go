package main

import (
	"fmt"

	"github.com/davidepi/bincc/internal/version"
	"github.com/spf13/cobra"
)

// VersionCommand prints build/version information. Grounded on
// cmd/pyscn/version.go.
type VersionCommand struct {
	short bool
}

// NewVersionCommand returns a command defaulting to the full banner.
func NewVersionCommand() *VersionCommand { return &VersionCommand{} }

// CreateCobraCommand builds the `bincc version` cobra.Command.
func (v *VersionCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  v.run,
	}
	cmd.Flags().BoolVarP(&v.short, "short", "s", false, "Show only the version number")
	return cmd
}

func (v *VersionCommand) run(cmd *cobra.Command, args []string) error {
	if v.short {
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	}
	return nil
}

// NewVersionCmd returns the cobra command for `bincc version`.
func NewVersionCmd() *cobra.Command {
	return NewVersionCommand().CreateCobraCommand()
}
