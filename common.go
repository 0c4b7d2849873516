// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seqtreap

import (
	"math/rand"
	"sync"
	"time"
)

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap iteration.  Since a treap has a very
	// high probability that the tree height is logarithmic, it is
	// exceedingly unlikely that the parent stack will ever exceed this size
	// even for extremely large numbers of items.
	staticDepth = 128

	// maxPriority is the inclusive upper bound of the range node
	// priorities are drawn from.
	maxPriority = 1000007

	// nilMin is the cached minimum reported for an empty subtree.  It is
	// larger than any value a caller can reasonably store and keeps the
	// minimum comparisons in recalc and IndexOfMin free of nil special
	// cases.
	nilMin = 1 << 30
)

// rng generates node priorities.  It is package scoped and seeded once at
// startup rather than per node so that priority generation is cheap and can
// be made deterministic for testing via SeedPriorities.  The mutex makes the
// shared source safe for callers that build independent sequences from
// different goroutines, even though any individual sequence still requires
// external locking.
var (
	rngMtx sync.Mutex
	rng    = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SeedPriorities reseeds the priority generator with the provided seed.  Node
// priorities drive the randomized tree shape, so reseeding with a fixed value
// makes the shape of subsequently built treaps reproducible.  It is intended
// for tests and reproducible runs.
func SeedPriorities(seed int64) {
	rngMtx.Lock()
	rng = rand.New(rand.NewSource(seed))
	rngMtx.Unlock()
}

// treapNode represents a node in the treap.  The in-order position of a node
// is its logical index in the sequence, so there is no stored key.
type treapNode struct {
	// value is the element stored at this position.
	value int

	// priority orders the tree as a max-heap.  It is drawn uniformly at
	// random from [0, maxPriority] at node creation, which keeps the
	// expected tree height logarithmic regardless of insertion order.
	priority int

	// minValue caches the minimum value in the subtree rooted at this
	// node.  It is only trustworthy once any pending reversal on the node
	// has been pushed down via propagate.
	minValue int

	// reverse marks a pending lazy reversal: the children are logically
	// swapped, and each child's own flag must be toggled, but neither has
	// physically happened yet.
	reverse bool

	// size is the number of nodes in the subtree rooted at this node and
	// is what makes implicit indexing possible.
	size int

	// height is the longest root-to-leaf edge count of the subtree.  It
	// is maintained as a diagnostic and is not used by the core
	// algorithms.
	height int

	left  *treapNode
	right *treapNode
}

// newTreapNode returns a new node holding the passed value with a randomly
// generated priority.  The node is not initially linked to any others.
func newTreapNode(value int) *treapNode {
	rngMtx.Lock()
	priority := rng.Intn(maxPriority + 1)
	rngMtx.Unlock()

	return &treapNode{
		value:    value,
		priority: priority,
		minValue: value,
		size:     1,
	}
}

// nodeSize returns the number of nodes in the subtree rooted at the passed
// node, or 0 for a nil node.
func nodeSize(node *treapNode) int {
	if node == nil {
		return 0
	}
	return node.size
}

// nodeHeight returns the height of the subtree rooted at the passed node, or
// 0 for a nil node.
func nodeHeight(node *treapNode) int {
	if node == nil {
		return 0
	}
	return node.height
}

// nodeMin returns the cached minimum value of the subtree rooted at the
// passed node, or nilMin for a nil node.
func nodeMin(node *treapNode) int {
	if node == nil {
		return nilMin
	}
	return node.minValue
}

// parentStack represents a stack of parent treap nodes that are used during
// iteration.  It consists of a static array for holding the parents and a
// dynamic overflow slice.  It is extremely unlikely the overflow will ever be
// hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.  This
// approach is used because it is much more efficient for the majority case
// than dynamically allocating heap space every time the treap is iterated.
type parentStack struct {
	index    int
	items    [staticDepth]*treapNode
	overflow []*treapNode
}

// Len returns the current number of items in the stack.
func (s *parentStack) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  It returns nil if n exceeds the
// number of items on the stack.
func (s *parentStack) At(n int) *treapNode {
	index := s.index - n - 1
	if index < 0 {
		return nil
	}

	if index < staticDepth {
		return s.items[index]
	}

	return s.overflow[index-staticDepth]
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack) Pop() *treapNode {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack) Push(node *treapNode) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// This approach is used over append because reslicing the slice to pop
	// the item causes the compiler to make unneeded allocations.  Also,
	// since the max number of items is related to the tree depth which
	// requires expontentially more items to increase, only increase the cap
	// one item at a time.  This is more intelligent than the generic append
	// expansion algorithm which often doubles the cap.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*treapNode, index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}
