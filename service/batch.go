package service

import (
	"context"
	"fmt"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/analyzer"
	"github.com/davidepi/bincc/internal/disasm"
	"github.com/google/uuid"
)

// FunctionResult is the outcome of structuring a single function: its
// ControlFlowStructure (set whether or not reduction succeeded, with Ok
// telling which; nil only when the function's CFG could not be obtained)
// and the CFG it was built from, kept around so a caller can still emit
// Graphviz for diagnostics (spec.md 7).
type FunctionResult struct {
	Function domain.Function
	CFG      *analyzer.CFG
	Tree     *analyzer.ControlFlowStructure
	Ok       bool
	Err      error
}

// BatchReport summarizes structuring every function of one or more
// binaries, stamped with a per-run correlation id the way MCP tool-call
// results are correlated (SPEC_FULL.md 3: google/uuid wiring).
type BatchReport struct {
	RunID     string
	Binaries  []string
	Results   []FunctionResult
	Succeeded int
	Failed    int
}

// StructureFunction disassembles a single named/offset function of a
// binary and runs the CFS reduction engine over it, without enumerating
// every other function — the single-function path MCP's
// structure_function tool uses.
func StructureFunction(ctx context.Context, binary string, fn domain.Function) (FunctionResult, error) {
	driver := disasm.NewDriver(binary)
	if err := driver.Analyse(ctx); err != nil {
		return FunctionResult{}, err
	}
	spec, err := driver.FunctionCFG(ctx, fn)
	if err != nil {
		return FunctionResult{Function: fn, Err: err}, nil
	}
	cfg := disasm.BuildCFG(spec)
	cfs := analyzer.NewControlFlowStructure()
	ok := cfs.Build(cfg)
	return FunctionResult{Function: fn, CFG: cfg, Tree: cfs, Ok: ok}, nil
}

// StructureBinary disassembles every function of a binary and runs the
// CFS reduction engine over each one, reporting progress through pm.
// Grounded on DisassemblerR2::analyse followed by per-function CFG
// construction (original_source/src/disassembler/disassembler.cpp) feeding
// the core's ControlFlowStructure.Build (spec.md 4.2).
func StructureBinary(ctx context.Context, binary string, pm domain.ProgressManager) (*BatchReport, error) {
	driver := disasm.NewDriver(binary)
	if err := driver.Analyse(ctx); err != nil {
		return nil, err
	}

	funcs := driver.Functions()
	report := &BatchReport{RunID: uuid.NewString(), Binaries: []string{binary}}
	pm.Initialize(len(funcs))
	defer pm.Finish()

	for _, fn := range funcs {
		pm.StartTask(fn.Name)
		spec, err := driver.FunctionCFG(ctx, fn)
		if err != nil {
			report.Results = append(report.Results, FunctionResult{Function: fn, Err: err})
			report.Failed++
			pm.CompleteTask(fn.Name, false)
			continue
		}

		cfg := disasm.BuildCFG(spec)
		cfs := analyzer.NewControlFlowStructure()
		ok := cfs.Build(cfg)

		result := FunctionResult{Function: fn, CFG: cfg, Tree: cfs, Ok: ok}
		report.Results = append(report.Results, result)
		if ok {
			report.Succeeded++
		} else {
			report.Failed++
		}
		pm.CompleteTask(fn.Name, ok)
	}
	return report, nil
}

// StructureDirectory runs StructureBinary over every file DiscoverBinaries
// selects under the given paths, aggregating into one report stamped with
// a single run id (SPEC_FULL.md 4: batch/directory mode).
func StructureDirectory(ctx context.Context, paths []string, includeGlobs []string, pm domain.ProgressManager) (*BatchReport, error) {
	binaries, err := DiscoverBinaries(paths, includeGlobs)
	if err != nil {
		return nil, err
	}

	agg := &BatchReport{RunID: uuid.NewString(), Binaries: binaries}
	for _, bin := range binaries {
		r, err := StructureBinary(ctx, bin, pm)
		if err != nil {
			agg.Results = append(agg.Results, FunctionResult{
				Function: domain.Function{Name: bin},
				Err:      fmt.Errorf("structuring %s: %w", bin, err),
			})
			agg.Failed++
			continue
		}
		agg.Results = append(agg.Results, r.Results...)
		agg.Succeeded += r.Succeeded
		agg.Failed += r.Failed
	}
	return agg, nil
}
