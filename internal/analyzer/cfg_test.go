package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCFGLinearChain(t *testing.T) {
	cfg := NewCFG(5)
	require.Equal(t, 5, cfg.NodesNo())
	assert.Equal(t, 4, cfg.EdgesNo())
	for i := 0; i < 4; i++ {
		assert.Same(t, cfg.Block(i+1), cfg.Block(i).Next)
	}
	assert.Nil(t, cfg.Block(4).Next)
}

func TestCFGEdgeMutators(t *testing.T) {
	cfg := NewCFG(3)
	cfg.SetConditional(0, 2)
	assert.Equal(t, 3, cfg.EdgesNo(), "fall-through plus one new conditional")

	cfg.SetConditional(0, 2) // replacing a non-null slot leaves the count unchanged
	assert.Equal(t, 3, cfg.EdgesNo())

	cfg.SetConditionalNull(0)
	assert.Equal(t, 2, cfg.EdgesNo())

	// out-of-range ids are a no-op
	cfg.SetNext(99, 0)
	cfg.SetNext(0, 99)
	assert.Equal(t, 2, cfg.EdgesNo())
}

func TestCFGOffsets(t *testing.T) {
	cfg := NewCFG(2)
	cfg.SetOffsets(0, 0x1000, 0x1010)
	assert.Equal(t, uint64(0x1000), cfg.Block(0).Start)
	assert.Equal(t, uint64(0x1010), cfg.Block(0).End)
	cfg.SetOffsets(99, 1, 2) // no-op
}

func TestCFGDFSTPostOrder(t *testing.T) {
	cfg := NewCFG(3)
	cfg.SetNextNull(2)
	order := cfg.DFST()
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestFinalizeSwapsDegenerateBranch(t *testing.T) {
	cfg := NewCFG(2)
	cfg.SetNextNull(0)
	cfg.SetConditional(0, 1)
	cfg.Finalize()
	assert.Same(t, cfg.Block(1), cfg.Block(0).Next)
	assert.Nil(t, cfg.Block(0).Cond)
}

func TestFinalizeCollapsesDuplicateEdges(t *testing.T) {
	cfg := NewCFG(2)
	cfg.SetConditional(0, 1) // same target as the default fall-through
	cfg.Finalize()
	assert.Nil(t, cfg.Block(0).Cond)
	assert.Equal(t, 1, cfg.EdgesNo())
}

func TestFinalizeSingleExitCoercion(t *testing.T) {
	cfg := NewCFG(3)
	cfg.SetConditional(0, 2) // block0 now branches to both 1 (fall-through) and 2
	cfg.SetNextNull(1)       // block1 is a dead end, block2 already is one
	cfg.Finalize()

	assert.Equal(t, 4, cfg.NodesNo())
	exits := 0
	for i := 0; i < cfg.NodesNo(); i++ {
		b := cfg.Block(i)
		if b.Next == nil && b.Cond == nil {
			exits++
		}
	}
	assert.Equal(t, 1, exits, "more than one exit must be coerced into a single synthetic one")
	assert.Equal(t, cfg.Block(1).Next, cfg.Block(2).Next, "both former exits now converge on the same synthetic block")
}

func TestFinalizePrunesUnreachableAndRenumbers(t *testing.T) {
	cfg := NewCFG(4)
	cfg.SetNextNull(1) // block 1 is now a second dead-end, unreachable aside
	cfg.SetNext(0, 2)  // 0 now skips 1 entirely; block 1 becomes unreachable
	cfg.SetNextNull(2)
	cfg.SetNextNull(3)
	cfg.Finalize()

	// 1 and 3 were unreachable from root 0->2; only 0,2 plus the synthetic
	// exit survive, densely renumbered.
	assert.Equal(t, 3, cfg.NodesNo())
	for i := 0; i < cfg.NodesNo(); i++ {
		assert.Equal(t, i, cfg.Block(i).ID)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	cfg := NewCFG(3)
	cfg.Finalize()
	n1, e1 := cfg.NodesNo(), cfg.EdgesNo()
	cfg.Finalize()
	assert.Equal(t, n1, cfg.NodesNo())
	assert.Equal(t, e1, cfg.EdgesNo())
}

func TestToDotRendersConditionalEdges(t *testing.T) {
	cfg := NewCFG(2)
	cfg.SetConditional(0, 1)
	out := cfg.ToDot()
	assert.Contains(t, out, "digraph {")
	assert.Contains(t, out, `0 -> 1 [arrowhead="empty"];`)
}
