package main

import (
	"context"
	"fmt"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/service"
	"github.com/spf13/cobra"
)

// CompareCommand drives `bincc compare`, structuring one function from
// each of two binaries and reporting whether they share a structural
// clone (spec.md 4.4).
type CompareCommand struct {
	offsetA, offsetB uint64
	nameA, nameB     string
}

// NewCompareCommand returns a command with zero-valued offsets/names; the
// run step fills Function.Offset from the flags.
func NewCompareCommand() *CompareCommand { return &CompareCommand{} }

// CreateCobraCommand builds the `bincc compare` cobra.Command.
func (c *CompareCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <binaryA> <binaryB>",
		Short: "Compare a function from each of two binaries for a structural clone",
		Long: `Disassembles and structures one function from binaryA and one
from binaryB, then determines whether a subtree of one reduced tree has
the same structural hash as a subtree of the other (spec.md 4.4).`,
		Args: cobra.ExactArgs(2),
		RunE: c.run,
	}
	cmd.Flags().Uint64Var(&c.offsetA, "offset-a", 0, "Entry offset of the function to compare in binaryA")
	cmd.Flags().Uint64Var(&c.offsetB, "offset-b", 0, "Entry offset of the function to compare in binaryB")
	cmd.Flags().StringVar(&c.nameA, "name-a", "", "Display name for the function in binaryA")
	cmd.Flags().StringVar(&c.nameB, "name-b", "", "Display name for the function in binaryB")
	return cmd
}

func (c *CompareCommand) run(cmd *cobra.Command, args []string) error {
	fnA := domain.Function{Offset: c.offsetA, Name: c.nameA}
	fnB := domain.Function{Offset: c.offsetB, Name: c.nameB}

	result, err := service.CompareFunctions(context.Background(), args[0], fnA, args[1], fnB)
	if err != nil {
		return err
	}

	if result.Cloned {
		fmt.Fprintf(cmd.OutOrStdout(), "clone: yes (A node %d, B node %d)\n", result.NodeA, result.NodeB)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "clone: no")
	}
	return nil
}

// NewCompareCmd returns the cobra command for `bincc compare`.
func NewCompareCmd() *cobra.Command {
	return NewCompareCommand().CreateCobraCommand()
}
