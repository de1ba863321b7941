package analyzer

// ControlFlowStructure consumes a finalized CFG and produces a single
// hierarchical tree of structured regions by repeatedly matching one of
// the patterns tryMatch tries, in priority order, against the current working graph and
// replacing the match with a composite block, until either a single root
// remains (success) or a full scan finds no match (irreducible).
type ControlFlowStructure struct {
	// all holds every node ever created — leaves and composites — keyed by
	// id, and is never pruned; GetNode/NodesNo read from it.
	all map[int]*Block

	// frontier holds the current working graph: id -> the node currently
	// standing in for that position. It shrinks by at least one entry on
	// every successful pattern match.
	frontier map[int]*Block

	// preds maps a frontier id to the set of frontier ids whose outgoing
	// edge currently targets it.
	preds map[int]map[int]struct{}

	entry  int
	nextID int
	root   *Block
	built  bool
}

// NewControlFlowStructure returns an empty, unbuilt structure.
func NewControlFlowStructure() *ControlFlowStructure {
	return &ControlFlowStructure{}
}

// Root returns the reduction root, or nil before a successful Build.
func (cfs *ControlFlowStructure) Root() *Block {
	return cfs.root
}

// NodesNo returns the total node count after reduction: original leaves
// plus every composite synthesized along the way.
func (cfs *ControlFlowStructure) NodesNo() int {
	return cfs.nextID
}

// GetNode returns the node assigned id i, whether a leaf or a composite
// retired from the frontier once it was absorbed into something larger.
func (cfs *ControlFlowStructure) GetNode(i int) *Block {
	return cfs.all[i]
}

// Built reports whether the last Build call reduced the graph fully.
func (cfs *ControlFlowStructure) Built() bool {
	return cfs.built
}

// Build runs the fixed-point reduction loop over a deep copy of cfg and
// returns true exactly when the graph was fully reducible to a single
// root. The original cfg is never mutated. On failure, the partially
// reduced frontier remains available for diagnostics (see ToDot).
func (cfs *ControlFlowStructure) Build(cfg *CFG) bool {
	n := cfg.NodesNo()
	cfs.built = false
	cfs.root = nil
	if n == 0 {
		cfs.all, cfs.frontier, cfs.preds = map[int]*Block{}, map[int]*Block{}, map[int]map[int]struct{}{}
		cfs.nextID = 0
		return false
	}

	cfs.deepCopy(cfg)

	for len(cfs.frontier) > 1 {
		order := cfs.postOrder()
		modified := false
		for _, id := range order {
			node := cfs.frontier[id]
			if node == nil {
				continue
			}
			if cfs.tryMatch(node) {
				modified = true
				break
			}
		}
		if !modified {
			break
		}
	}

	if len(cfs.frontier) == 1 {
		cfs.root = cfs.frontier[cfs.entry]
		cfs.built = true
		return true
	}
	return false
}

// deepCopy clones every basic block of cfg into fresh Block values owned
// by this structure, then translates edge targets to the copies and
// computes the initial predecessor map in the same pass (spec.md 4.2).
func (cfs *ControlFlowStructure) deepCopy(cfg *CFG) {
	n := cfg.NodesNo()
	cfs.all = make(map[int]*Block, n*2)
	cfs.frontier = make(map[int]*Block, n)
	cfs.preds = make(map[int]map[int]struct{}, n*2)
	cfs.nextID = n
	cfs.entry = 0

	copies := make([]*Block, n)
	for i := 0; i < n; i++ {
		src := cfg.Block(i)
		copies[i] = &Block{ID: i, Kind: KindBasic, Start: src.Start, End: src.End, Label: src.Label}
		cfs.preds[i] = make(map[int]struct{})
	}
	for i := 0; i < n; i++ {
		src := cfg.Block(i)
		dst := copies[i]
		if src.Next != nil {
			dst.Next = copies[src.Next.ID]
			cfs.preds[src.Next.ID][i] = struct{}{}
		}
		if src.Cond != nil {
			dst.Cond = copies[src.Cond.ID]
			cfs.preds[src.Cond.ID][i] = struct{}{}
		}
	}
	for i := 0; i < n; i++ {
		cfs.all[i] = copies[i]
		cfs.frontier[i] = copies[i]
	}
}

// postOrder performs a depth-first post-order walk of the current
// frontier starting at the current entry: fall-through (or the sole
// composite successor) first, then conditional, push self last.
func (cfs *ControlFlowStructure) postOrder() []int {
	order := make([]int, 0, len(cfs.frontier))
	visited := make(map[int]bool, len(cfs.frontier))
	var visit func(b *Block)
	visit = func(b *Block) {
		if b == nil || visited[b.ID] {
			return
		}
		visited[b.ID] = true
		if b.Kind == KindBasic {
			if b.Next != nil {
				visit(b.Next)
			}
			if b.Cond != nil {
				visit(b.Cond)
			}
		} else if b.Successor != nil {
			visit(b.Successor)
		}
		order = append(order, b.ID)
	}
	visit(cfs.frontier[cfs.entry])
	return order
}

// tryMatch attempts every pattern against node in priority order —
// sequence, self-loop, if-then, if-else, while, do-while — and performs
// the first one that applies.
func (cfs *ControlFlowStructure) tryMatch(node *Block) bool {
	switch {
	case cfs.trySequence(node):
	case cfs.trySelfLoop(node):
	case cfs.tryIfThen(node):
	case cfs.tryIfElse(node):
	case cfs.tryWhile(node):
	case cfs.tryDoWhile(node):
	default:
		return false
	}
	return true
}

// allocID returns the next synthetic composite id and advances the
// counter, initialized to the original CFG's node count.
func (cfs *ControlFlowStructure) allocID() int {
	id := cfs.nextID
	cfs.nextID++
	return id
}

// commit replaces every node in mergedIDs with composite in the working
// graph. entryID is the node whose predecessor set the composite inherits
// (predecessor rewiring per spec.md 4.2): every predecessor of entryID
// outside the merged set has its outgoing edge to entryID's old block
// rewritten to point at composite, and the predecessor sets of every
// interior merged node are discarded.
func (cfs *ControlFlowStructure) commit(mergedIDs []int, composite *Block, entryID int) {
	composite.ID = cfs.allocID()

	merged := make(map[int]struct{}, len(mergedIDs))
	for _, id := range mergedIDs {
		merged[id] = struct{}{}
	}

	inherited := make(map[int]struct{})
	for p := range cfs.preds[entryID] {
		if _, skip := merged[p]; skip {
			continue
		}
		inherited[p] = struct{}{}
	}

	entryBlock := cfs.frontier[entryID]
	for p := range inherited {
		if pb := cfs.frontier[p]; pb != nil {
			pb.replaceIfMatch(entryBlock, composite)
		}
	}

	if succ := composite.successor(); succ != nil {
		sset := cfs.preds[succ.ID]
		if sset == nil {
			sset = make(map[int]struct{})
			cfs.preds[succ.ID] = sset
		}
		for _, id := range mergedIDs {
			delete(sset, id)
		}
		sset[composite.ID] = struct{}{}
	}

	for _, id := range mergedIDs {
		delete(cfs.frontier, id)
		delete(cfs.preds, id)
	}

	cfs.all[composite.ID] = composite
	cfs.frontier[composite.ID] = composite
	cfs.preds[composite.ID] = inherited

	// The current reduction root can be absorbed through any merged slot,
	// not just entryID (e.g. trySequence merges the root in as "next" when
	// a loop's back edge is its only predecessor) — follow it regardless
	// of which slot carried it.
	if _, wasEntry := merged[cfs.entry]; wasEntry {
		cfs.entry = composite.ID
	}
}

// replaceIfMatch rewrites any outgoing edge of b that currently targets
// old to instead target next. BASIC blocks may match via Next or Cond (or
// both, for a degenerate not-yet-collapsed self-edge); composites match
// via their single Successor.
func (b *Block) replaceIfMatch(old, next *Block) bool {
	if b.Kind == KindBasic {
		replaced := false
		if b.Next == old {
			b.Next = next
			replaced = true
		}
		if b.Cond == old {
			b.Cond = next
			replaced = true
		}
		return replaced
	}
	if b.Successor == old {
		b.Successor = next
		return true
	}
	return false
}

// flattenChildren returns b's components if it is already a SEQUENCE, or
// the single-element slice [b] otherwise — the flattening rule a nested
// sequence absorbed into another undergoes (spec.md 4.2 pattern 1).
func flattenChildren(b *Block) []*Block {
	if b.Kind == KindSequence {
		return b.Children
	}
	return []*Block{b}
}
