// Command bincc is the CLI entry point for the Control Flow Structuring
// engine: it disassembles a binary, reduces each function's CFG into a
// structured tree, and emits the result (or a clone comparison) in the
// requested format. Grounded on cmd/pyscn/main.go.
package main

import (
	"os"

	"github.com/davidepi/bincc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bincc",
	Short: "Control flow structuring and clone detection for disassembled binaries",
	Long: `bincc reduces a binary's control flow graphs into hierarchical
structured regions (sequences, if-then, if-else, self-loop, while,
do-while) and compares the resulting trees for structural clones.

Features:
  • Single-exit normalization and unreachable-node pruning of raw CFGs
  • Fixed-point structural reduction into a hierarchical region tree
  • Structural hashing and clone comparison across functions/binaries
  • Graphviz, JSON, and YAML output`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: discover .bincc.toml)")

	rootCmd.AddCommand(NewStructureCmd())
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a returned error to the CLI exit-code discipline
// SPEC_FULL.md 2 fixes: 0 success (handled by Execute returning nil), 1
// structuring/quality failure, 2 operational failure.
func exitCodeFor(err error) int {
	if qf, ok := err.(qualityFailure); ok && qf.quality {
		return 1
	}
	return 2
}

// qualityFailure marks an error as a structuring/quality outcome (e.g.
// --fail-on-irreducible tripped) rather than an operational one (bad
// path, disassembler crash), so main can choose exit code 1 vs 2.
type qualityFailure struct {
	quality bool
	err     error
}

func (q qualityFailure) Error() string { return q.err.Error() }
func (q qualityFailure) Unwrap() error { return q.err }
