package analyzer

import "math"

// SentinelIndex is returned for both out-parameters of Comparison.Cloned
// when no clone is found, mirroring the UINT32_MAX sentinel of the engine
// this package was distilled from.
const SentinelIndex = math.MaxInt32

// Comparison precomputes the per-node structural hashes of two reduced
// trees and answers whether a subtree of one reappears in the other.
type Comparison struct {
	hashA []uint64
	hashB []uint64
}

// NewComparison builds the hash tables for both structures. get_node(i) on
// a built ControlFlowStructure returns the node assigned id i, and ids are
// allocated in increasing order as reduction proceeds, so hashA/hashB[i]
// is simply the hash of node i; composite ids are always larger than the
// ids of the leaves and nodes they replaced, so index order is also
// root-most-last order, exactly what Cloned needs to scan from the root
// down.
func NewComparison(a, b *ControlFlowStructure) *Comparison {
	c := &Comparison{
		hashA: make([]uint64, a.NodesNo()),
		hashB: make([]uint64, b.NodesNo()),
	}
	for i := range c.hashA {
		if n := a.GetNode(i); n != nil {
			c.hashA[i] = n.Hash()
		}
	}
	for i := range c.hashB {
		if n := b.GetNode(i); n != nil {
			c.hashB[i] = n.Hash()
		}
	}
	return c
}

// Cloned determines whether some subtree of A has the same structural hash
// as some subtree of B. It scans B from the largest (root-most) id
// downward; for the first hash also present in A's set, it records B's
// node index in cloneB and the smallest-id A node with that hash in
// cloneA, then returns true. If the intersection is empty it returns false
// with both out-parameters set to SentinelIndex. An empty input on either
// side also returns false (spec.md 7, EmptyInput).
func (c *Comparison) Cloned() (cloneA, cloneB int, ok bool) {
	cloneA, cloneB = SentinelIndex, SentinelIndex
	if len(c.hashA) == 0 || len(c.hashB) == 0 {
		return cloneA, cloneB, false
	}

	present := make(map[uint64]struct{}, len(c.hashA))
	for _, h := range c.hashA {
		present[h] = struct{}{}
	}

	found := false
	var target uint64
	for idx := len(c.hashB) - 1; idx >= 0; idx-- {
		if _, ok := present[c.hashB[idx]]; ok {
			cloneB = idx
			target = c.hashB[idx]
			found = true
			break
		}
	}
	if !found {
		return SentinelIndex, SentinelIndex, false
	}

	for idx, h := range c.hashA {
		if h == target {
			cloneA = idx
			return cloneA, cloneB, true
		}
	}
	// unreachable: target came from present, which was built from hashA.
	return SentinelIndex, SentinelIndex, false
}
