package disasm

import (
	"testing"

	"github.com/davidepi/bincc/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunction(t *testing.T) {
	f := ParseFunction(`{"offset":4096,"name":"main"}`)
	assert.Equal(t, uint64(4096), f.Offset)
	assert.Equal(t, "main", f.Name)
}

func TestParseFunctionMalformedDefaultsToZeroValue(t *testing.T) {
	assert.Equal(t, domain.Function{}, ParseFunction("not json"))
}

func TestParseInfo(t *testing.T) {
	info := ParseInfo(`{"bin":{"arch":"x86","endian":"big","canary":true,"stripped":true,"bits":64}}`)
	assert.True(t, info.BigEndian)
	assert.True(t, info.Canary)
	assert.True(t, info.Stripped)
	assert.True(t, info.Is64Bit)
}

func TestParseInfoDefaultsOnError(t *testing.T) {
	info := ParseInfo("{broken")
	assert.False(t, info.BigEndian)
	assert.False(t, info.Is64Bit)
}

func TestParseArchitecture(t *testing.T) {
	assert.Equal(t, "x86", ParseArchitecture(`{"bin":{"arch":"x86"}}`).Name())
	assert.Equal(t, "unknown", ParseArchitecture("").Name())
	assert.Equal(t, "unknown", ParseArchitecture("garbage").Name())
}

func TestParseStatementInvalidBecomesNop(t *testing.T) {
	s := ParseStatement(`{"offset":16,"type":"invalid","disasm":"??"}`)
	assert.Equal(t, "nop", s.Mnemonic())
	assert.Equal(t, uint64(16), s.Offset)
}

func TestParseStatementNormal(t *testing.T) {
	s := ParseStatement(`{"offset":0,"type":"jmp","disasm":"JMP EAX"}`)
	assert.Equal(t, "jmp", s.Mnemonic())
	assert.Equal(t, "eax", s.Args())
}

func TestParseBasicBlocksOrdersByAddressAndResolvesEdges(t *testing.T) {
	raw := `[
		{"addr":4112,"size":8,"jump":4096},
		{"addr":4096,"size":16,"jump":4112,"fail":4128},
		{"addr":4128,"size":4}
	]`
	ranges, edges, err := ParseBasicBlocks(raw)
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	assert.Equal(t, uint64(4096), ranges[0].Start)
	assert.Equal(t, uint64(4112), ranges[0].End)
	assert.Equal(t, uint64(4112), ranges[1].Start)
	assert.Equal(t, uint64(4128), ranges[2].Start)

	require.Len(t, edges, 3)
	foundUnconditional, foundConditional := 0, 0
	for _, e := range edges {
		if e.Conditional {
			foundConditional++
		} else {
			foundUnconditional++
		}
	}
	assert.Equal(t, 2, foundUnconditional)
	assert.Equal(t, 1, foundConditional)
}

func TestParseBasicBlocksDropsEdgesToUnknownTargets(t *testing.T) {
	raw := `[{"addr":0,"size":4,"jump":999}]`
	ranges, edges, err := ParseBasicBlocks(raw)
	require.NoError(t, err)
	assert.Len(t, ranges, 1)
	assert.Empty(t, edges)
}

func TestParseBasicBlocksMalformedReturnsError(t *testing.T) {
	_, _, err := ParseBasicBlocks("not json")
	assert.Error(t, err)
}
