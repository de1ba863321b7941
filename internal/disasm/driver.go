package disasm

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/davidepi/bincc/domain"
)

// Driver owns one analysis session against a single binary file, matching
// original_source/src/disassembler/disassembler.hpp's lifecycle:
// construct with a binary, Analyse once, then query functions/info. A new
// Driver is required to analyze a different binary (set_binary in the
// source requires a fresh analyse() call; this package just asks for a
// new Driver instead of allowing binary reassignment mid-life).
type Driver struct {
	pipe   *Pipe
	binary string

	arch      Architecture
	info      domain.BinaryInfo
	functions []domain.Function
}

// NewDriver returns a driver bound to the given binary, ready for Analyse.
func NewDriver(binary string) *Driver {
	d := &Driver{pipe: NewPipe(), binary: binary, arch: unknownArch{}}
	return d
}

// Analyse spawns radare2 against the binary, runs its auto-analysis, and
// populates architecture, binary info, and the function list. It mirrors
// DisassemblerR2::analyse: ij for info/arch, "aaaa" to trigger analysis,
// aflj to enumerate functions.
func (d *Driver) Analyse(ctx context.Context) error {
	if !d.pipe.SetAnalyzedFile(d.binary) {
		return domain.NewFileNotFoundError(d.binary, nil)
	}
	if err := d.pipe.Open(ctx); err != nil {
		return domain.NewDisassemblerFailedError("opening radare2 session", err)
	}
	defer d.pipe.Close()

	infoJSON, err := d.pipe.Exec("ij")
	if err != nil {
		return domain.NewDisassemblerFailedError("querying binary info", err)
	}
	d.info = ParseInfo(infoJSON)
	d.arch = ParseArchitecture(infoJSON)

	if _, err := d.pipe.Exec("aaaa"); err != nil {
		return domain.NewDisassemblerFailedError("running auto-analysis", err)
	}

	funcsJSON, err := d.pipe.Exec("aflj")
	if err != nil {
		return domain.NewDisassemblerFailedError("listing functions", err)
	}
	funcs, err := parseFunctionArray(funcsJSON)
	if err != nil {
		return domain.NewMalformedUpstreamError("parsing function list", err)
	}
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Less(funcs[j]) })
	d.functions = funcs
	return nil
}

// Architecture returns the classifier for the analyzed binary. Valid only
// after a successful Analyse.
func (d *Driver) Architecture() Architecture { return d.arch }

// Info returns the binary metadata reported by radare2.
func (d *Driver) Info() domain.BinaryInfo { return d.info }

// Functions returns every function discovered, ordered by entry offset.
func (d *Driver) Functions() []domain.Function { return d.functions }

// FunctionCFG re-opens a session and asks radare2 for the named function's
// basic blocks, returning them as the CFG construction protocol spec.md 6
// fixes (an ordered block range list plus an edge list). This is the
// adapter boundary: everything above this call is disassembler-specific
// text/JSON; everything below is the core's CFG/CFS machinery.
func (d *Driver) FunctionCFG(ctx context.Context, fn domain.Function) (domain.FunctionCFGSpec, error) {
	if !d.pipe.SetAnalyzedFile(d.binary) {
		return domain.FunctionCFGSpec{}, domain.NewFileNotFoundError(d.binary, nil)
	}
	if err := d.pipe.Open(ctx); err != nil {
		return domain.FunctionCFGSpec{}, domain.NewDisassemblerFailedError("opening radare2 session", err)
	}
	defer d.pipe.Close()

	if _, err := d.pipe.Exec(fmt.Sprintf("s 0x%x", fn.Offset)); err != nil {
		return domain.FunctionCFGSpec{}, domain.NewDisassemblerFailedError("seeking to function", err)
	}
	blocksJSON, err := d.pipe.Exec("afbj")
	if err != nil {
		return domain.FunctionCFGSpec{}, domain.NewDisassemblerFailedError("listing basic blocks", err)
	}
	ranges, edges, err := ParseBasicBlocks(blocksJSON)
	if err != nil {
		return domain.FunctionCFGSpec{}, domain.NewMalformedUpstreamError("parsing basic blocks", err)
	}
	return domain.FunctionCFGSpec{Function: fn, Blocks: ranges, Edges: edges}, nil
}

func parseFunctionArray(raw string) ([]domain.Function, error) {
	if raw == "" {
		return nil, nil
	}
	var headers []r2FunctionJSON
	if err := json.Unmarshal([]byte(raw), &headers); err != nil {
		return nil, err
	}
	funcs := make([]domain.Function, 0, len(headers))
	for _, h := range headers {
		funcs = append(funcs, domain.Function{Offset: h.Offset, Name: h.Name})
	}
	return funcs, nil
}
