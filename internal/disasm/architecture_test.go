package disasm

import (
	"testing"

	"github.com/davidepi/bincc/domain"
	"github.com/stretchr/testify/assert"
)

func TestArchitectureForKnownNames(t *testing.T) {
	assert.Equal(t, "x86", ArchitectureFor("x86").Name())
	assert.Equal(t, "arm", ArchitectureFor("arm").Name())
}

func TestArchitectureForUnknownFallsBack(t *testing.T) {
	arch := ArchitectureFor("mips")
	assert.Equal(t, "unknown", arch.Name())
	assert.Equal(t, domain.JumpNone, arch.Classify("jmp"))
}

func TestX86Classify(t *testing.T) {
	arch := ArchitectureFor("x86")
	assert.Equal(t, domain.JumpReturnUnconditional, arch.Classify("ret"))
	assert.Equal(t, domain.JumpReturnUnconditional, arch.Classify("retn"))
	assert.Equal(t, domain.JumpUnconditional, arch.Classify("jmp"))
	assert.Equal(t, domain.JumpConditional, arch.Classify("jne"))
	assert.Equal(t, domain.JumpConditional, arch.Classify("je"))
	assert.Equal(t, domain.JumpNone, arch.Classify("mov"))
	assert.Equal(t, domain.JumpNone, arch.Classify(""))
}

func TestARMClassify(t *testing.T) {
	arch := ArchitectureFor("arm")
	assert.Equal(t, domain.JumpReturnUnconditional, arch.Classify("bx"))
	assert.Equal(t, domain.JumpReturnUnconditional, arch.Classify("pop"))
	assert.Equal(t, domain.JumpUnconditional, arch.Classify("b"))
	assert.Equal(t, domain.JumpUnconditional, arch.Classify("bl"))
	assert.Equal(t, domain.JumpConditional, arch.Classify("bne"))
	assert.Equal(t, domain.JumpNone, arch.Classify("mov"))
}
