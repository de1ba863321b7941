package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatementLowercasesAndSplits(t *testing.T) {
	s := NewStatement(0x1000, "  JMP EAX, 4  ")
	assert.Equal(t, uint64(0x1000), s.Offset)
	assert.Equal(t, "jmp eax, 4", s.Command())
	assert.Equal(t, "jmp", s.Mnemonic())
	assert.Equal(t, "eax, 4", s.Args())
}

func TestNewStatementWithoutArgs(t *testing.T) {
	s := NewStatement(0, "ret")
	assert.Equal(t, "ret", s.Mnemonic())
	assert.Equal(t, "", s.Args())
}

func TestFunctionLess(t *testing.T) {
	a := Function{Offset: 0x100}
	b := Function{Offset: 0x200}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestJumpTypeClassification(t *testing.T) {
	assert.False(t, JumpNone.IsJump())
	assert.True(t, JumpConditional.IsJump())
	assert.True(t, JumpConditional.IsConditional())
	assert.False(t, JumpUnconditional.IsConditional())
	assert.True(t, JumpReturnConditional.IsReturn())
	assert.False(t, JumpUnconditional.IsReturn())
	assert.Equal(t, "conditional-jump", JumpConditional.String())
}
