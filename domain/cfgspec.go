package domain

// BlockRange is one basic block's instruction address range, as the
// disassembler reports it: ordered, non-overlapping, one per block index.
type BlockRange struct {
	Start uint64
	End   uint64
}

// EdgeSpec is one control-flow edge the disassembler discovered between
// two basic-block indices (spec.md 6: "a list of edges
// (source_block_index, target_block_index, conditional_flag)").
type EdgeSpec struct {
	Source      int
	Target      int
	Conditional bool
}

// FunctionCFGSpec is the upstream disassembler's CFG construction protocol
// for a single function: an ordered set of basic-block address ranges plus
// the edges between them. It carries no ownership and no behavior; it is
// translated into an *analyzer.CFG by internal/disasm's builder, which is
// the only component allowed to construct one from raw JSON (spec.md 6,
// 7: "the core itself never observes malformed inputs by construction").
type FunctionCFGSpec struct {
	Function Function
	Blocks   []BlockRange
	Edges    []EdgeSpec
}
