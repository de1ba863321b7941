// Package disasm wraps an external disassembler (radare2) as a subprocess,
// parses its JSON protocol, and translates the result into the
// analyzer.CFG construction protocol fixed by spec.md 6. None of this is
// part of the core: the core never observes a disassembler, a JSON blob,
// or a mnemonic string — only a finalized *analyzer.CFG (spec.md 1, 7).
package disasm

import "github.com/davidepi/bincc/domain"

// Architecture classifies an instruction mnemonic into a domain.JumpType.
// Grounded on original_source/src/architectures/architecture.hpp and its
// per-ISA subclasses (architecture_x86.cpp, the ARM sibling referenced by
// r2_json_parser.cpp).
type Architecture interface {
	Name() string
	Classify(mnemonic string) domain.JumpType
}

// unknownArch is the fallback used when radare2 reports an architecture
// this package does not recognize; every mnemonic classifies as JumpNone,
// matching ArchitectureUNK in the source.
type unknownArch struct{}

func (unknownArch) Name() string                          { return "unknown" }
func (unknownArch) Classify(string) domain.JumpType        { return domain.JumpNone }

// x86Arch classifies mnemonics the way ArchitectureX86::is_jump does: any
// mnemonic starting with 'j' other than a bare match is a conditional
// jump, "jmp" is unconditional, and "ret"/"retn" are unconditional
// returns.
type x86Arch struct{}

func (x86Arch) Name() string { return "x86" }

func (x86Arch) Classify(mnemonic string) domain.JumpType {
	switch {
	case mnemonic == "ret" || mnemonic == "retn":
		return domain.JumpReturnUnconditional
	case len(mnemonic) == 0 || mnemonic[0] != 'j':
		return domain.JumpNone
	case mnemonic == "jmp":
		return domain.JumpUnconditional
	default:
		return domain.JumpConditional
	}
}

// armArch classifies mnemonics for ARM, where conditional suffixes on
// branch and return mnemonics are common (spec.md's "conditional return"
// case this taxonomy exists for).
type armArch struct{}

func (armArch) Name() string { return "arm" }

func (armArch) Classify(mnemonic string) domain.JumpType {
	switch {
	case mnemonic == "bx" || mnemonic == "pop" || mnemonic == "ldmfd":
		return domain.JumpReturnUnconditional
	case mnemonic == "bl" || mnemonic == "b":
		return domain.JumpUnconditional
	case hasPrefix(mnemonic, "b") && len(mnemonic) > 1:
		return domain.JumpConditional
	default:
		return domain.JumpNone
	}
}

func hasPrefix(s, p string) bool {
	return len(s) >= len(p) && s[:len(p)] == p
}

// ArchitectureFor returns the classifier named by radare2's "arch" field,
// or unknownArch for anything this package does not implement (spec.md 6:
// "architecture-specific jump classification... is consumed only through
// the interfaces stated in §6").
func ArchitectureFor(name string) Architecture {
	switch name {
	case "x86":
		return x86Arch{}
	case "arm":
		return armArch{}
	default:
		return unknownArch{}
	}
}
