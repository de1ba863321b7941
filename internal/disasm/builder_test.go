package disasm

import (
	"testing"

	"github.com/davidepi/bincc/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCFGWiresEdgesAndOffsets(t *testing.T) {
	spec := domain.FunctionCFGSpec{
		Function: domain.Function{Name: "f"},
		Blocks: []domain.BlockRange{
			{Start: 0, End: 4},
			{Start: 4, End: 8},
			{Start: 8, End: 12},
		},
		Edges: []domain.EdgeSpec{
			{Source: 0, Target: 1, Conditional: false},
			{Source: 0, Target: 2, Conditional: true},
			{Source: 1, Target: 2, Conditional: false},
		},
	}

	cfg := BuildCFG(spec)
	require.Equal(t, 3, cfg.NodesNo())
	assert.Same(t, cfg.Block(1), cfg.Block(0).Next)
	assert.Same(t, cfg.Block(2), cfg.Block(0).Cond)
	assert.Equal(t, uint64(4), cfg.Block(1).Start)
}

func TestBuildCFGEmptySpec(t *testing.T) {
	cfg := BuildCFG(domain.FunctionCFGSpec{})
	assert.Equal(t, 0, cfg.NodesNo())
}

func TestClassifyBlockEdgesUnconditional(t *testing.T) {
	arch := ArchitectureFor("x86")
	stmt := domain.NewStatement(0, "jmp 0x2000")
	cond, fall, ok := ClassifyBlockEdges(arch, stmt, 0x2000, 0x1004)
	assert.True(t, ok)
	assert.Equal(t, uint64(0x2000), fall)
	assert.Equal(t, uint64(0), cond)
}

func TestClassifyBlockEdgesConditional(t *testing.T) {
	arch := ArchitectureFor("x86")
	stmt := domain.NewStatement(0, "jne 0x2000")
	cond, fall, ok := ClassifyBlockEdges(arch, stmt, 0x2000, 0x1004)
	assert.True(t, ok)
	assert.Equal(t, uint64(0x2000), cond)
	assert.Equal(t, uint64(0x1004), fall)
}

func TestClassifyBlockEdgesStraightLine(t *testing.T) {
	arch := ArchitectureFor("x86")
	stmt := domain.NewStatement(0, "mov eax, ebx")
	_, _, ok := ClassifyBlockEdges(arch, stmt, 0, 0)
	assert.False(t, ok)
}
