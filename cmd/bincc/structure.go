package main

import (
	"context"
	"fmt"
	"time"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/config"
	"github.com/davidepi/bincc/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StructureCommand runs the CFS reduction engine over one or more
// binaries (or a directory of them) and emits the result. Grounded on
// cmd/pyscn/check.go's flag/exit-code shape, adapted to this domain.
type StructureCommand struct {
	format            string
	dir               bool
	failOnIrreducible bool
	quiet             bool
	flagsSet          map[string]bool
}

// NewStructureCommand returns a command with the built-in defaults.
func NewStructureCommand() *StructureCommand {
	return &StructureCommand{format: "dot", flagsSet: map[string]bool{}}
}

// CreateCobraCommand builds the `bincc structure` cobra.Command.
func (s *StructureCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "structure <binary|dir>...",
		Short: "Reduce one or more binaries' functions to structured control flow trees",
		Long: `Disassembles each given binary (or every file under a given
directory matching the configured include globs), reduces every
function's control flow graph to a hierarchical structured tree, and
writes the result to stdout.

Exit codes:
  0  every function reduced to a single region (or --fail-on-irreducible unset)
  1  at least one function was irreducible and --fail-on-irreducible was set
  2  an operational failure occurred (missing file, disassembler crash, ...)`,
		Args: cobra.MinimumNArgs(1),
		RunE: s.run,
	}

	cmd.Flags().StringVarP(&s.format, "format", "f", "dot", "Output format: dot, json, yaml")
	cmd.Flags().BoolVar(&s.dir, "dir", false, "Treat arguments as directories to scan for binaries")
	cmd.Flags().BoolVar(&s.failOnIrreducible, "fail-on-irreducible", false, "Exit 1 if any function fails to reduce")
	cmd.Flags().BoolVarP(&s.quiet, "quiet", "q", false, "Suppress progress output")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		cmd.Flags().Visit(func(f *pflag.Flag) { s.flagsSet[f.Name] = true })
	}
	return cmd
}

func (s *StructureCommand) run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if s.flagsSet["quiet"] {
		s.flagsSet["progress"] = true
	}
	loader := config.NewLoaderWithFlags(s.flagsSet)
	override := &config.Config{
		Structure: config.StructureConfig{FailOnIrreducible: s.failOnIrreducible},
		Disasm:    cfg.Disasm,
		Output:    config.OutputConfig{Format: s.format, Color: cfg.Output.Color},
		Batch:     config.BatchConfig{IncludeGlobs: cfg.Batch.IncludeGlobs, Progress: !s.quiet},
	}
	cfg = loader.Merge(cfg, override)

	timeout := time.Duration(cfg.Disasm.TimeoutSeconds) * time.Second * time.Duration(len(args))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var pm domain.ProgressManager
	if cfg.Batch.Progress {
		pm = service.NewProgressManager()
	} else {
		pm = noopProgress{}
	}

	var report *service.BatchReport
	if s.dir {
		report, err = service.StructureDirectory(ctx, args, cfg.Batch.IncludeGlobs, pm)
	} else {
		report, err = structureBinaries(ctx, args, pm)
	}
	if err != nil {
		return err
	}

	if err := service.WriteReport(cmd.OutOrStdout(), report, cfg.Output.Format); err != nil {
		return err
	}

	if cfg.Structure.FailOnIrreducible && report.Failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "bincc: %d function(s) failed to reduce\n", report.Failed)
		return qualityFailure{quality: true, err: fmt.Errorf("irreducible functions present")}
	}
	return nil
}

// structureBinaries runs StructureBinary over each standalone binary
// argument and merges the per-binary reports into one, mirroring
// StructureDirectory's aggregation for the non--dir path.
func structureBinaries(ctx context.Context, binaries []string, pm domain.ProgressManager) (*service.BatchReport, error) {
	agg := &service.BatchReport{}
	for _, bin := range binaries {
		r, err := service.StructureBinary(ctx, bin, pm)
		if err != nil {
			return nil, err
		}
		if agg.RunID == "" {
			agg.RunID = r.RunID
		}
		agg.Binaries = append(agg.Binaries, r.Binaries...)
		agg.Results = append(agg.Results, r.Results...)
		agg.Succeeded += r.Succeeded
		agg.Failed += r.Failed
	}
	return agg, nil
}

// NewStructureCmd returns the cobra command for `bincc structure`.
func NewStructureCmd() *cobra.Command {
	return NewStructureCommand().CreateCobraCommand()
}
