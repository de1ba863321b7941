package service

import (
	"context"

	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/analyzer"
	"github.com/davidepi/bincc/internal/disasm"
)

// CompareResult reports whether two functions, each independently
// structured, share a structural clone, and where (spec.md 4.4).
type CompareResult struct {
	FunctionA, FunctionB domain.Function
	Cloned               bool
	NodeA, NodeB         int
}

// CompareFunctions disassembles and structures one function from each of
// two binaries, then runs the core Comparison over the resulting trees.
// Either function failing to reduce still produces a comparable tree
// (spec.md 7: "a CFG that fails to reduce is still renderable... inspect
// the residual"); an irreducible structure simply contributes whatever
// partial nodes it built before giving up.
func CompareFunctions(ctx context.Context, binaryA string, fnA domain.Function, binaryB string, fnB domain.Function) (*CompareResult, error) {
	treeA, err := structureOne(ctx, binaryA, fnA)
	if err != nil {
		return nil, err
	}
	treeB, err := structureOne(ctx, binaryB, fnB)
	if err != nil {
		return nil, err
	}

	cmp := analyzer.NewComparison(treeA, treeB)
	nodeA, nodeB, ok := cmp.Cloned()
	return &CompareResult{
		FunctionA: fnA, FunctionB: fnB,
		Cloned: ok, NodeA: nodeA, NodeB: nodeB,
	}, nil
}

func structureOne(ctx context.Context, binary string, fn domain.Function) (*analyzer.ControlFlowStructure, error) {
	driver := disasm.NewDriver(binary)
	if err := driver.Analyse(ctx); err != nil {
		return nil, err
	}
	spec, err := driver.FunctionCFG(ctx, fn)
	if err != nil {
		return nil, err
	}
	cfg := disasm.BuildCFG(spec)
	cfs := analyzer.NewControlFlowStructure()
	cfs.Build(cfg)
	return cfs, nil
}
