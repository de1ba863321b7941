package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davidepi/bincc/domain"
	"gopkg.in/yaml.v3"
)

// functionSummary is the serializable projection of a FunctionResult,
// shaped for the --format json/yaml output envelope (spec.md 6's
// "fixed textual envelope", extended beyond raw Graphviz per
// SPEC_FULL.md 3's yaml.v3 wiring).
type functionSummary struct {
	Name       string `json:"name" yaml:"name"`
	Offset     uint64 `json:"offset" yaml:"offset"`
	Reduced    bool   `json:"reduced" yaml:"reduced"`
	NodesNo    int    `json:"nodes_no,omitempty" yaml:"nodes_no,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// reportEnvelope is the top-level shape written to stdout for
// --format json|yaml.
type reportEnvelope struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Succeeded int               `json:"succeeded" yaml:"succeeded"`
	Failed    int               `json:"failed" yaml:"failed"`
	Functions []functionSummary `json:"functions" yaml:"functions"`
}

func toEnvelope(r *BatchReport) reportEnvelope {
	env := reportEnvelope{RunID: r.RunID, Succeeded: r.Succeeded, Failed: r.Failed}
	for _, res := range r.Results {
		fs := functionSummary{Name: res.Function.Name, Offset: res.Function.Offset, Reduced: res.Ok}
		if res.Err != nil {
			fs.Error = res.Err.Error()
		}
		if res.Tree != nil {
			fs.NodesNo = res.Tree.NodesNo()
		}
		env.Functions = append(env.Functions, fs)
	}
	return env
}

// WriteReport renders a BatchReport to w in the requested format: "json",
// "yaml", or "dot" (one digraph per function, concatenated). Any other
// format is a domain.ErrCodeUnsupportedFormat error.
func WriteReport(w io.Writer, r *BatchReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toEnvelope(r)); err != nil {
			return domain.NewOutputError("encoding json report", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(toEnvelope(r)); err != nil {
			return domain.NewOutputError("encoding yaml report", err)
		}
		return nil
	case "dot":
		for _, res := range r.Results {
			if res.CFG == nil {
				continue
			}
			fmt.Fprintf(w, "// function %s\n", res.Function.Name)
			if res.Tree != nil {
				fmt.Fprint(w, res.Tree.ToDot(res.CFG))
			} else {
				fmt.Fprint(w, res.CFG.ToDot())
			}
		}
		return nil
	default:
		return domain.NewUnsupportedFormatError(format)
	}
}
