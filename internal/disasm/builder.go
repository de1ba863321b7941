package disasm

import (
	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/analyzer"
)

// BuildCFG translates a disassembler-produced FunctionCFGSpec into a
// finalized *analyzer.CFG. This is the sole place where upstream
// (disassembler) data becomes core input, per spec.md 6: "the core itself
// never observes malformed inputs by construction" — any inconsistency in
// spec (out-of-range edge indices, a source with more than one
// conditional edge) is silently absorbed by analyzer.CFG's total,
// no-op-on-invalid mutators rather than surfaced as an error here.
func BuildCFG(spec domain.FunctionCFGSpec) *analyzer.CFG {
	cfg := analyzer.NewCFG(len(spec.Blocks))
	for i := range spec.Blocks {
		cfg.SetNextNull(i)
	}
	for i, r := range spec.Blocks {
		cfg.SetOffsets(i, r.Start, r.End)
	}
	for _, e := range spec.Edges {
		if e.Conditional {
			cfg.SetConditional(e.Source, e.Target)
		} else {
			cfg.SetNext(e.Source, e.Target)
		}
	}
	cfg.Finalize()
	return cfg
}

// ClassifyBlockEdges determines, for a basic block ending in the given
// terminal statement, which of its two successor address candidates (the
// instruction's literal jump target and the textually-next instruction)
// is the fall-through and which is the conditional target, using the
// architecture's mnemonic classification (spec.md 6's jump-classification
// helper). It returns ok=false when the terminal statement is not a
// branch at all (straight-line fall-through only).
func ClassifyBlockEdges(arch Architecture, terminal domain.Statement, jumpTarget, fallThrough uint64) (cond uint64, fall uint64, ok bool) {
	jt := arch.Classify(terminal.Mnemonic())
	if !jt.IsJump() {
		return 0, 0, false
	}
	if !jt.IsConditional() {
		// Unconditional jump/return: the jump target is returned as the
		// single successor in fall and cond is zero; for a return,
		// jumpTarget is passed through unchanged.
		return 0, jumpTarget, true
	}
	return jumpTarget, fallThrough, true
}
