// Package concurrency provides the FIFO work queue and spinlock utility
// primitives spec.md 5 describes for embedders that want to distribute
// multiple functions' structuring over worker goroutines. Neither
// primitive is used by the core analyzer package itself — the CFS
// reduction engine is single-threaded and synchronous by design.
package concurrency

import "sync/atomic"

// Spinlock is a test-and-set mutual exclusion lock for short critical
// sections, grounded on
// original_source/src/multithreading/spinlock.hpp's std::atomic_flag
// implementation. Prefer sync.Mutex for anything that might block for a
// non-trivial duration; this exists only because the teacher's domain
// used one for its synchronized queue.
type Spinlock struct {
	flag atomic.Bool
}

// Lock spins until the lock is acquired.
func (s *Spinlock) Lock() {
	for !s.flag.CompareAndSwap(false, true) {
	}
}

// Unlock releases the lock.
func (s *Spinlock) Unlock() {
	s.flag.Store(false)
}
