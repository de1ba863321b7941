package analyzer

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash computes the 64-bit structural fingerprint of the subtree rooted at
// b. The hash of a BASIC leaf depends only on its variant tag; the hash of
// a composite depends on its variant tag and the hashes of its ordered
// children. It never depends on ids, offsets, or labels, so two subtrees
// differing only in identifier assignment hash equal (spec.md 4.3).
//
// The mixer is order-sensitive: children in different order produce
// different hashes. It is built on hash/fnv rather than a cryptographic
// hash.
func (b *Block) Hash() uint64 {
	h := fnv.New64a()
	b.writeHash(h)
	return h.Sum64()
}

// hasher is the minimal surface writeHash needs from hash.Hash64, kept
// narrow so tests can swap in a recording fake.
type hasher interface {
	Write(p []byte) (int, error)
}

func (b *Block) writeHash(h hasher) {
	_, _ = h.Write([]byte{b.Kind.tag()})
	var buf [8]byte
	for _, child := range b.Children {
		binary.LittleEndian.PutUint64(buf[:], child.Hash())
		_, _ = h.Write(buf[:])
	}
}
