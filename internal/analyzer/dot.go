package analyzer

import (
	"fmt"
	"strings"
)

// ToDot renders the reduction tree as a Graphviz digraph. It shares the
// raw-CFG renderer's edge syntax (spec.md 6: "the same renderer handles
// both raw CFGs and reduced CFS trees") but additionally wraps every
// composite block in a cluster subgraph containing its children, and
// falls back to rendering the residual working graph when the last Build
// did not fully reduce (spec.md 7: a CFG that fails to reduce is still
// renderable).
func (cfs *ControlFlowStructure) ToDot(cfg *CFG) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")

	if cfs.built && cfs.root != nil {
		visited := make(map[int]bool)
		var walk func(b *Block)
		walk = func(b *Block) {
			if b == nil || visited[b.ID] {
				return
			}
			visited[b.ID] = true
			writeNode(&sb, b, 1)
			for _, child := range b.Children {
				walk(child)
			}
			if succ := b.successor(); succ != nil {
				fmt.Fprintf(&sb, "\t%d -> %d;\n", b.ID, succ.ID)
			}
			if b.Kind == KindBasic && b.Cond != nil {
				fmt.Fprintf(&sb, "\t%d -> %d [arrowhead=\"empty\"];\n", b.ID, b.Cond.ID)
			}
		}
		walk(cfs.root)
	} else {
		// irreducible: render whatever is left of the working frontier so
		// the residual graph is still inspectable.
		for id, b := range cfs.frontier {
			writeNode(&sb, b, 1)
			if b.Kind == KindBasic {
				if b.Next != nil {
					fmt.Fprintf(&sb, "\t%d -> %d;\n", id, b.Next.ID)
				}
				if b.Cond != nil {
					fmt.Fprintf(&sb, "\t%d -> %d [arrowhead=\"empty\"];\n", id, b.Cond.ID)
				}
			} else if b.Successor != nil {
				fmt.Fprintf(&sb, "\t%d -> %d;\n", id, b.Successor.ID)
			}
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// writeNode emits a node or, for a composite, a cluster subgraph wrapping
// its children, labeled with the block's variant.
func writeNode(sb *strings.Builder, b *Block, clusterSeq int) {
	if b.Kind == KindBasic {
		fmt.Fprintf(sb, "\t%d [label=\"%s\"];\n", b.ID, b.String())
		return
	}
	fmt.Fprintf(sb, "\tsubgraph cluster_%d {\n\t\tlabel=\"%s#%d\";\n", b.ID, b.Kind, b.ID)
	for _, child := range b.Children {
		fmt.Fprintf(sb, "\t\t%d;\n", child.ID)
	}
	sb.WriteString("\t}\n")
}
