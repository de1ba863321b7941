package analyzer

// This file implements the six structural patterns, tried against a
// candidate node in priority order by tryMatch: Sequence, Self-loop,
// If-Then, If-Else, While, Do-While. Each matcher only inspects and
// mutates the current frontier; a successful match always ends by calling
// commit, which performs the predecessor surgery common to every pattern.

// trySequence matches node -> next where next has no other predecessor,
// flattening either side that is already a sequence (spec.md 4.2,
// pattern 1).
func (cfs *ControlFlowStructure) trySequence(node *Block) bool {
	if node.outDegree() != 1 {
		return false
	}
	next := node.successor()
	if next == nil || next.ID == node.ID {
		return false
	}
	if next.outDegree() > 1 {
		return false
	}
	if len(cfs.preds[next.ID]) != 1 {
		return false
	}
	if _, ok := cfs.preds[next.ID][node.ID]; !ok {
		return false
	}

	children := append(flattenChildren(node), flattenChildren(next)...)
	composite := &Block{Kind: KindSequence, Children: children, Successor: next.successor()}
	cfs.commit([]int{node.ID, next.ID}, composite, node.ID)
	return true
}

// trySelfLoop matches a BASIC block one of whose edges targets itself. If
// the fall-through is the self-edge, the two edges are swapped first so
// the back-edge is always the conditional one, per spec.md 4.2 pattern 2.
func (cfs *ControlFlowStructure) trySelfLoop(node *Block) bool {
	if node.Kind != KindBasic {
		return false
	}
	switch {
	case node.Cond == node:
		// already in the canonical position
	case node.Next == node:
		node.Next, node.Cond = node.Cond, node
	default:
		return false
	}

	exit := node.Next
	composite := &Block{Kind: KindSelfLoop, Children: []*Block{node}, Successor: exit}
	cfs.commit([]int{node.ID}, composite, node.ID)
	return true
}

// walkChain follows the branch of a conditional cascade that does not
// lead directly to target: starting at cur (whose sole predecessor must
// be prevID), it accepts a chain of BASIC blocks each of whose two edges
// are {target, next-in-chain}, and stops at the first node whose single
// outgoing edge reaches target directly — that node is the terminal
// (spec.md 3.1's cascaded short-circuit condition, grounded on
// acyclic_block.cpp's IfThenBlock/IfElseBlock constructors, which walk
// forward from the head rather than backward from it).
func (cfs *ControlFlowStructure) walkChain(cur, target *Block, prevID int) (chain []*Block, terminal *Block, ok bool) {
	guard := len(cfs.frontier) + 2
	for {
		guard--
		if guard < 0 || cur == nil {
			return nil, nil, false
		}
		preds := cfs.preds[cur.ID]
		if len(preds) != 1 {
			return nil, nil, false
		}
		if _, has := preds[prevID]; !has {
			return nil, nil, false
		}

		switch cur.outDegree() {
		case 1:
			if cur.successor() == target {
				return chain, cur, true
			}
			return nil, nil, false
		case 2:
			if cur.Kind != KindBasic {
				return nil, nil, false
			}
			var next *Block
			switch {
			case cur.Next == target:
				next = cur.Cond
			case cur.Cond == target:
				next = cur.Next
			default:
				return nil, nil, false
			}
			if next == nil || next == cur {
				return nil, nil, false
			}
			chain = append(chain, cur)
			prevID = cur.ID
			cur = next
		default:
			return nil, nil, false
		}
	}
}

// tryIfThen matches a BASIC head with two successors, one of which is the
// join and the other of which reaches a then-block via zero or more
// chained conditions, the then-block's sole outgoing edge landing back on
// the same join (spec.md 4.2 pattern 3).
func (cfs *ControlFlowStructure) tryIfThen(head *Block) bool {
	if head.Kind != KindBasic || head.outDegree() != 2 {
		return false
	}
	candidates := [2][2]*Block{{head.Next, head.Cond}, {head.Cond, head.Next}}
	for _, c := range candidates {
		join, cont := c[0], c[1]
		if join == nil || cont == nil {
			continue
		}
		chain, then, ok := cfs.walkChain(cont, join, head.ID)
		if !ok || then == join {
			continue
		}

		merged := append([]int{head.ID, then.ID}, idsOf(chain)...)
		children := append([]*Block{head, then}, chain...)
		composite := &Block{Kind: KindIfThen, Children: children, Successor: join}
		cfs.commit(merged, composite, head.ID)
		return true
	}
	return false
}

// tryIfElse matches a BASIC head whose two successors are a direct else
// target and a chain of conditions leading to a then target, with then
// and else each having exactly one outgoing edge and both landing on the
// same join (spec.md 4.2 pattern 4). The fall-through successor is tried
// as the then-chain's start first, matching spec.md §8 scenario 3's
// convention (fall-through -> then, conditional -> else); the reversed
// pairing is a fallback for graphs where only that assignment fits.
func (cfs *ControlFlowStructure) tryIfElse(head *Block) bool {
	if head.Kind != KindBasic || head.outDegree() != 2 {
		return false
	}
	candidates := [2][2]*Block{{head.Cond, head.Next}, {head.Next, head.Cond}}
	for _, c := range candidates {
		elseb, cont := c[0], c[1]
		if elseb == nil || cont == nil || elseb == head {
			continue
		}
		if elseb.outDegree() != 1 {
			continue
		}
		elsePreds := cfs.preds[elseb.ID]
		if len(elsePreds) != 1 {
			continue
		}
		if _, has := elsePreds[head.ID]; !has {
			continue
		}
		join := elseb.successor()
		if join == nil {
			continue
		}

		chain, then, ok := cfs.walkChain(cont, join, head.ID)
		if !ok || then == elseb {
			continue
		}

		merged := append([]int{head.ID, then.ID, elseb.ID}, idsOf(chain)...)
		children := append([]*Block{head, then, elseb}, chain...)
		composite := &Block{Kind: KindIfElse, Children: children, Successor: join}
		cfs.commit(merged, composite, head.ID)
		return true
	}
	return false
}

// tryWhile matches a BASIC head with two successors, one of which (the
// body) has no other predecessor and loops directly back to head; the
// other successor is the loop exit (spec.md 4.2 pattern 5).
func (cfs *ControlFlowStructure) tryWhile(head *Block) bool {
	if head.Kind != KindBasic || head.outDegree() != 2 {
		return false
	}
	candidates := [2][2]*Block{{head.Next, head.Cond}, {head.Cond, head.Next}}
	for _, c := range candidates {
		body, exit := c[0], c[1]
		if body == nil || exit == nil {
			continue
		}
		if body.outDegree() != 1 || body.successor() != head {
			continue
		}
		bodyPreds := cfs.preds[body.ID]
		if len(bodyPreds) != 1 {
			continue
		}
		if _, has := bodyPreds[head.ID]; !has {
			continue
		}

		composite := &Block{Kind: KindWhile, Children: []*Block{head, body}, Successor: exit}
		cfs.commit([]int{head.ID, body.ID}, composite, head.ID)
		return true
	}
	return false
}

// tryDoWhile matches any node (head) with a single successor landing on a
// BASIC tail that has no other predecessor, one of whose two edges loops
// back to head and the other of which exits (spec.md 4.2 pattern 6).
func (cfs *ControlFlowStructure) tryDoWhile(head *Block) bool {
	if head.outDegree() != 1 {
		return false
	}
	tail := head.successor()
	if tail == nil || tail.Kind != KindBasic || tail == head {
		return false
	}
	if tail.outDegree() != 2 {
		return false
	}
	tailPreds := cfs.preds[tail.ID]
	if len(tailPreds) != 1 {
		return false
	}
	if _, has := tailPreds[head.ID]; !has {
		return false
	}

	var exit *Block
	switch {
	case tail.Next == head:
		exit = tail.Cond
	case tail.Cond == head:
		exit = tail.Next
	default:
		return false
	}

	composite := &Block{Kind: KindDoWhile, Children: []*Block{head, tail}, Successor: exit}
	cfs.commit([]int{head.ID, tail.ID}, composite, head.ID)
	return true
}

// idsOf extracts the ids of a block slice, used to fold a chain's members
// into the merged-id list commit needs.
func idsOf(blocks []*Block) []int {
	ids := make([]int, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}
