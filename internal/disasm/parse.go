package disasm

import (
	"encoding/json"

	"github.com/davidepi/bincc/domain"
)

// Grounded on original_source/src/disassembler/radare2/r2_json_parser.cpp:
// each parse function except ParseBasicBlocks takes raw JSON text and
// returns a zero-value domain type (the unknown architecture, for
// ParseArchitecture) on any parse error rather than propagating it,
// matching the source's catch-and-log-default behavior. ParseBasicBlocks
// returns its parse error. A disassembler error never
// reaches the core; it only ever produces a degenerate (empty) value that
// upstream batch logic can detect and skip.

type r2FunctionJSON struct {
	Offset uint64 `json:"offset"`
	Name   string `json:"name"`
}

// ParseFunction parses one element of radare2's `aflj` array into a
// domain.Function.
func ParseFunction(raw string) domain.Function {
	if raw == "" {
		return domain.Function{}
	}
	var f r2FunctionJSON
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return domain.Function{}
	}
	return domain.Function{Offset: f.Offset, Name: f.Name}
}

type r2BinInfoJSON struct {
	Bin struct {
		Arch     string `json:"arch"`
		Endian   string `json:"endian"`
		Canary   bool   `json:"canary"`
		Stripped bool   `json:"stripped"`
		Bits     int    `json:"bits"`
	} `json:"bin"`
}

// ParseInfo parses radare2's `ij` response into a domain.BinaryInfo.
func ParseInfo(raw string) domain.BinaryInfo {
	if raw == "" {
		return domain.BinaryInfo{}
	}
	var i r2BinInfoJSON
	if err := json.Unmarshal([]byte(raw), &i); err != nil {
		return domain.BinaryInfo{}
	}
	return domain.BinaryInfo{
		BigEndian: i.Bin.Endian == "big",
		Canary:    i.Bin.Canary,
		Stripped:  i.Bin.Stripped,
		Is64Bit:   i.Bin.Bits == 64,
	}
}

// ParseArchitecture parses radare2's `ij` response into an Architecture
// classifier, falling back to the unknown architecture on any error or
// unrecognized name.
func ParseArchitecture(raw string) Architecture {
	if raw == "" {
		return unknownArch{}
	}
	var i r2BinInfoJSON
	if err := json.Unmarshal([]byte(raw), &i); err != nil {
		return unknownArch{}
	}
	return ArchitectureFor(i.Bin.Arch)
}

type r2StatementJSON struct {
	Offset uint64 `json:"offset"`
	Type   string `json:"type"`
	Disasm string `json:"disasm"`
}

// ParseStatement parses one element of radare2's `pdfj` statement array
// into a domain.Statement. An "invalid" type is reported as a "nop"
// instruction, matching the source.
func ParseStatement(raw string) domain.Statement {
	if raw == "" {
		return domain.Statement{}
	}
	var s r2StatementJSON
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return domain.Statement{}
	}
	opcode := s.Disasm
	if s.Type == "invalid" {
		opcode = "nop"
	}
	return domain.NewStatement(s.Offset, opcode)
}

// r2BlockJSON is one entry of radare2's `afbj` (function basic blocks)
// response: an address range plus the address of the fall-through ("jump")
// and optional conditional ("fail") successor, following radare2's actual
// field names for this command.
type r2BlockJSON struct {
	Addr  uint64  `json:"addr"`
	Size  uint64  `json:"size"`
	Jump  *uint64 `json:"jump,omitempty"`
	Fail  *uint64 `json:"fail,omitempty"`
}

// ParseBasicBlocks parses radare2's `afbj` array into the ordered block
// ranges and edge list of the CFG construction protocol (spec.md 6).
// Blocks are sorted by address before indices are assigned, so block index
// i always corresponds to the i-th lowest address — the disassembler's
// "ordered set of basic-block address ranges".
func ParseBasicBlocks(raw string) ([]domain.BlockRange, []domain.EdgeSpec, error) {
	var blocks []r2BlockJSON
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		return nil, nil, err
	}

	sortBlocksByAddr(blocks)

	indexOf := make(map[uint64]int, len(blocks))
	ranges := make([]domain.BlockRange, len(blocks))
	for i, b := range blocks {
		indexOf[b.Addr] = i
		ranges[i] = domain.BlockRange{Start: b.Addr, End: b.Addr + b.Size}
	}

	var edges []domain.EdgeSpec
	for i, b := range blocks {
		if b.Jump != nil {
			if tgt, ok := indexOf[*b.Jump]; ok {
				edges = append(edges, domain.EdgeSpec{Source: i, Target: tgt, Conditional: false})
			}
		}
		if b.Fail != nil {
			if tgt, ok := indexOf[*b.Fail]; ok {
				edges = append(edges, domain.EdgeSpec{Source: i, Target: tgt, Conditional: true})
			}
		}
	}
	return ranges, edges, nil
}

func sortBlocksByAddr(blocks []r2BlockJSON) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].Addr < blocks[j-1].Addr; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}
