package analyzer

import (
	"fmt"
	"strings"
)

// CFG is a dense, id-addressed control flow graph of BASIC blocks. It owns
// every block in the graph; ids are dense, contiguous integers starting at
// zero. All mutators are total: an out-of-range id is silently ignored, the
// error taxonomy the core engine uses throughout (spec.md 4.1, 7).
type CFG struct {
	blocks  []*Block
	edgesNo int
}

// NewCFG allocates size basic blocks with ids 0..size-1 and links each
// block's fall-through to the next, producing a default linear chain; the
// last block has no successors.
func NewCFG(size int) *CFG {
	cfg := &CFG{blocks: make([]*Block, size)}
	for i := 0; i < size; i++ {
		cfg.blocks[i] = NewBasicBlock(i)
	}
	for i := 0; i < size-1; i++ {
		cfg.blocks[i].Next = cfg.blocks[i+1]
		cfg.edgesNo++
	}
	return cfg
}

// NodesNo returns the number of blocks currently in the graph.
func (cfg *CFG) NodesNo() int {
	return len(cfg.blocks)
}

// EdgesNo returns the number of non-null successor edges in the graph.
func (cfg *CFG) EdgesNo() int {
	return cfg.edgesNo
}

// Block returns the block with the given id, or nil if out of range.
func (cfg *CFG) Block(id int) *Block {
	if id < 0 || id >= len(cfg.blocks) {
		return nil
	}
	return cfg.blocks[id]
}

// Root returns the entry block (id 0), or nil for an empty graph.
func (cfg *CFG) Root() *Block {
	return cfg.Block(0)
}

// SetNext installs the fall-through edge src->dst. Out-of-range ids are a
// no-op.
func (cfg *CFG) SetNext(src, dst int) {
	s, d := cfg.Block(src), cfg.Block(dst)
	if s == nil || d == nil {
		return
	}
	if s.Next == nil {
		cfg.edgesNo++
	}
	s.Next = d
}

// SetNextNull clears the fall-through edge out of src.
func (cfg *CFG) SetNextNull(src int) {
	s := cfg.Block(src)
	if s == nil {
		return
	}
	if s.Next != nil {
		cfg.edgesNo--
	}
	s.Next = nil
}

// SetConditional installs the conditional edge src->dst.
func (cfg *CFG) SetConditional(src, dst int) {
	s, d := cfg.Block(src), cfg.Block(dst)
	if s == nil || d == nil {
		return
	}
	if s.Cond == nil {
		cfg.edgesNo++
	}
	s.Cond = d
}

// SetConditionalNull clears the conditional edge out of src.
func (cfg *CFG) SetConditionalNull(src int) {
	s := cfg.Block(src)
	if s == nil {
		return
	}
	if s.Cond != nil {
		cfg.edgesNo--
	}
	s.Cond = nil
}

// SetOffsets records the instruction address range carried by block id.
// Used only for presentation and left out of the structural hash.
func (cfg *CFG) SetOffsets(id int, start, end uint64) {
	b := cfg.Block(id)
	if b == nil {
		return
	}
	b.Start, b.End = start, end
}

// DFST returns a depth-first post-order enumeration of block ids: visit
// fall-through first, then conditional, push self last. The ordering is
// deterministic given a fixed graph.
func (cfg *CFG) DFST() []int {
	if len(cfg.blocks) == 0 {
		return nil
	}
	order := make([]int, 0, len(cfg.blocks))
	visited := make(map[int]bool, len(cfg.blocks))
	var visit func(b *Block)
	visit = func(b *Block) {
		if b == nil || visited[b.ID] {
			return
		}
		visited[b.ID] = true
		if b.Next != nil {
			visit(b.Next)
		}
		if b.Cond != nil {
			visit(b.Cond)
		}
		order = append(order, b.ID)
	}
	visit(cfg.blocks[0])
	return order
}

// dfsReachable marks every block reachable from root via Next/Cond edges.
func (cfg *CFG) dfsReachable() []bool {
	marked := make([]bool, len(cfg.blocks))
	var visit func(b *Block)
	visit = func(b *Block) {
		if b == nil || marked[b.ID] {
			return
		}
		marked[b.ID] = true
		visit(b.Next)
		visit(b.Cond)
	}
	if len(cfg.blocks) > 0 {
		visit(cfg.blocks[0])
	}
	return marked
}

// Finalize normalizes the graph so it satisfies the single-exit invariant
// and contains only reachable blocks, in this order:
//
//  1. swap degenerate branches (conditional but no fall-through)
//  2. collapse duplicate edges (fall-through == conditional)
//  3. single-exit coercion (append a synthetic exit if more than one exists)
//  4. reachability prune (renumber surviving blocks densely from 0)
//
// Finalize is idempotent: running it again on an already-finalized graph
// changes nothing.
func (cfg *CFG) Finalize() {
	var exitNodes []int
	for _, b := range cfg.blocks {
		switch {
		case b.Next == nil && b.Cond == nil:
			exitNodes = append(exitNodes, b.ID)
		case b.Next == nil && b.Cond != nil:
			// conditional but no fall-through: swap so fall-through is
			// always populated first (spec.md 3.2).
			b.Next, b.Cond = b.Cond, nil
		case b.Next == b.Cond:
			b.Cond = nil
			cfg.edgesNo--
		}
	}

	if len(exitNodes) > 1 {
		exit := cfg.appendBlock()
		for _, id := range exitNodes {
			cfg.SetNext(id, exit.ID)
		}
	}

	cfg.pruneUnreachable()
}

// appendBlock adds a fresh, disconnected BASIC block at the next id and
// returns it.
func (cfg *CFG) appendBlock() *Block {
	b := NewBasicBlock(len(cfg.blocks))
	cfg.blocks = append(cfg.blocks, b)
	return b
}

// pruneUnreachable removes blocks unreachable from the root and packs the
// survivors into a dense, contiguous, renumbered slice.
func (cfg *CFG) pruneUnreachable() {
	marked := cfg.dfsReachable()
	skipped := 0
	unreachable := false
	for _, m := range marked {
		if !m {
			unreachable = true
			break
		}
	}
	if !unreachable {
		return
	}

	newID := make([]int, len(cfg.blocks))
	for i := range cfg.blocks {
		if !marked[i] {
			skipped++
			newID[i] = -1
			continue
		}
		newID[i] = i - skipped
	}

	survivors := make([]*Block, 0, len(cfg.blocks)-skipped)
	for i, b := range cfg.blocks {
		if !marked[i] {
			continue
		}
		b.ID = newID[i]
		survivors = append(survivors, b)
	}

	edges := 0
	for _, b := range survivors {
		if b.Next != nil {
			edges++
		}
		if b.Cond != nil {
			edges++
		}
	}
	cfg.blocks = survivors
	cfg.edgesNo = edges
}

// ToDot renders the raw control flow graph as a Graphviz digraph. Edges to
// the conditional successor are annotated with an empty arrowhead.
func (cfg *CFG) ToDot() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for _, b := range cfg.blocks {
		if b.Next != nil {
			fmt.Fprintf(&sb, "\t%d -> %d;\n", b.ID, b.Next.ID)
		}
		if b.Cond != nil {
			fmt.Fprintf(&sb, "\t%d -> %d [arrowhead=\"empty\"];\n", b.ID, b.Cond.ID)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
