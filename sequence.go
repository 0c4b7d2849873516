// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seqtreap

import (
	"fmt"
)

// Sequence represents an ordered sequence of integers backed by an implicit
// treap.  The in-order traversal of the tree is the sequence, positions are
// derived from cached subtree sizes, and a lazy reversal flag on each node
// allows any contiguous range to be reversed in O(log n).  Split, insert,
// removal, and minimum-position queries are all O(log n) in expectation.
//
// The zero value is not meaningful.  Use New or FromSlice to create a
// Sequence.  A Sequence is not safe for concurrent access without external
// locking by the caller.
type Sequence struct {
	root *treapNode
}

// New returns a new empty sequence ready for use.
func New() *Sequence {
	return &Sequence{}
}

// FromSlice returns a new sequence holding the passed values in order.  The
// tree is built by folding single-node merges, so construction is
// O(n log n) in expectation.  The slice is not retained.
func FromSlice(values []int) *Sequence {
	s := New()
	for _, value := range values {
		s.root = merge(s.root, newTreapNode(value))
	}
	return s
}

// Len returns the number of elements in the sequence.
func (s *Sequence) Len() int {
	return nodeSize(s.root)
}

// Height returns the height of the underlying tree.  It is a diagnostic for
// inspecting how well balanced the treap is and has no bearing on the
// sequence contents.
func (s *Sequence) Height() int {
	return nodeHeight(s.root)
}

// Min returns the smallest value in the sequence.  The second return value is
// false when the sequence is empty.
func (s *Sequence) Min() (int, bool) {
	if s.root == nil {
		return 0, false
	}

	// The cached minimum is only trustworthy once any pending reversal has
	// been pushed down.
	propagate(s.root)
	return s.root.minValue, true
}

// InsertLast appends the passed value to the end of the sequence.
func (s *Sequence) InsertLast(value int) {
	s.root = merge(s.root, newTreapNode(value))
}

// ReverseRange reverses the closed range of positions [from, to], where
// positions are 0-based.  The reversal itself is lazy: only the root of the
// affected range is flagged here, and the flag is pushed down incrementally
// as later operations traverse into it.
//
// An Error with ErrorCode ErrInvalidRange is returned when from is negative,
// from > to, or to is beyond the end of the sequence.
func (s *Sequence) ReverseRange(from, to int) error {
	if from < 0 || to < from || to >= nodeSize(s.root) {
		str := fmt.Sprintf("range [%d, %d] is invalid for a "+
			"sequence of %d elements", from, to, nodeSize(s.root))
		return seqError(ErrInvalidRange, str)
	}

	before, rest := split(s.root, from)
	segment, after := split(rest, to-from+1)
	segment.reverse = !segment.reverse
	s.root = merge(merge(before, segment), after)
	return nil
}

// RemoveFirst detaches and discards the first element of the sequence.  It is
// a no-op when the sequence is empty.
func (s *Sequence) RemoveFirst() {
	if nodeSize(s.root) < 1 {
		return
	}

	_, rest := split(s.root, 1)
	s.root = rest
}

// IndexOfMin returns the 0-based position of the smallest value in the
// sequence, or -1 when the sequence is empty.  When several elements share
// the smallest value, the position of the leftmost one is returned.
func (s *Sequence) IndexOfMin() int {
	return findMin(s.root, 0)
}

// findMin walks down from the passed node toward the smallest value in its
// subtree, accumulating in indicesPassed the number of positions that precede
// the subtree.  Descending left leaves the count unchanged while descending
// right skips the left subtree and the node itself.  The left subtree is
// checked first and the node itself before the right subtree, so ties
// resolve to the leftmost occurrence.
func findMin(node *treapNode, indicesPassed int) int {
	if node == nil {
		return -1
	}

	propagate(node)
	index := nodeSize(node.left) + indicesPassed

	if node.minValue == nodeMin(node.left) {
		return findMin(node.left, indicesPassed)
	}

	// The node precedes everything in its right subtree, so when it holds
	// the minimum itself the right subtree must not be consulted even if
	// the minimum occurs there too.
	if node.minValue == node.value {
		return index
	}

	return findMin(node.right, index+1)
}

// ForEach invokes the passed function with the position and value of every
// element in sequence order.  Iteration stops early when the function returns
// false.
func (s *Sequence) ForEach(fn func(index, value int) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.  Pending reversals must be pushed down before a
	// node's children are inspected, so every node is propagated as it is
	// pushed.
	var parents parentStack
	for node := s.root; node != nil; node = node.left {
		propagate(node)
		parents.Push(node)
	}
	index := 0
	for parents.Len() > 0 {
		node := parents.Pop()
		if !fn(index, node.value) {
			return
		}
		index++

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		for node := node.right; node != nil; node = node.left {
			propagate(node)
			parents.Push(node)
		}
	}
}

// ToSlice returns the sequence as a slice of its values in order.
func (s *Sequence) ToSlice() []int {
	values := make([]int, 0, s.Len())
	s.ForEach(func(_, value int) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Reset efficiently removes all elements in the sequence.
func (s *Sequence) Reset() {
	s.root = nil
}

// resetMin resets the cached subtree minimum of the passed node to the node's
// own value.  It is needed immediately after a split detaches part of a
// subtree, since the detached side may have held the old minimum that the
// cached value still reflects; the following recalc then recomputes the
// minimum from only the remaining children.  No-op on a nil node.
func resetMin(node *treapNode) {
	if node == nil {
		return
	}

	node.minValue = node.value
}

// propagate applies any pending reversal on the passed node: the children's
// own reversal flags are toggled to defer their reversals, the children are
// physically swapped, the node's flag is cleared, and the node's aggregates
// are recomputed.  Every traversal that is about to inspect or recurse into a
// node's children must call propagate on it first.  No-op on a nil node or
// when no reversal is pending.
func propagate(node *treapNode) {
	if node == nil || !node.reverse {
		return
	}

	if node.left != nil {
		node.left.reverse = !node.left.reverse
	}
	if node.right != nil {
		node.right.reverse = !node.right.reverse
	}

	node.left, node.right = node.right, node.left
	node.reverse = false
	recalc(node)
}

// recalc recomputes the size, height, and cached subtree minimum of the
// passed node from its children's cached aggregates, which must already be
// correct.  When the node's reversal flag could be set, propagate must be
// applied first since the cached child identities are otherwise stale.
// No-op on a nil node.
func recalc(node *treapNode) {
	if node == nil {
		return
	}

	node.size = 1 + nodeSize(node.left) + nodeSize(node.right)

	if node.left == nil && node.right == nil {
		node.height = 0
		node.minValue = node.value
		return
	}

	node.height = 1 + max(nodeHeight(node.left), nodeHeight(node.right))
	node.minValue = min(node.minValue, min(nodeMin(node.left),
		nodeMin(node.right)))
}

// merge concatenates two treaps into one, with every element of left
// preceding every element of right in the resulting in-order sequence.
// Either input may be nil.  The root with the strictly higher priority
// becomes the result root and its subtree adjacent to the other treap is
// recursively merged with it, so equal priorities fall to the right root.
//
// Both inputs are consumed: the caller must not reuse either passed root
// after the call.
func merge(left, right *treapNode) *treapNode {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	propagate(left)
	propagate(right)

	if left.priority > right.priority {
		left.right = merge(left.right, right)

		// The subtree minimum might have changed.
		resetMin(left)
		recalc(left)
		return left
	}

	right.left = merge(left, right.left)

	resetMin(right)
	recalc(right)
	return right
}

// split cuts a treap into two: the first count elements by in-order position
// and the remainder.  count must be between 0, which sends the entire treap
// right, and the treap size, which sends it all left; exported callers
// validate before calling.  The cut point is located with implicit indices:
// when the left subtree holds at least count elements the cut is inside it,
// otherwise the count is adjusted past the left subtree and the node itself
// and the cut continues on the right.
//
// Like merge, this consumes its input root; the caller must only use the two
// returned roots afterward.
func split(node *treapNode, count int) (*treapNode, *treapNode) {
	if node == nil {
		return nil, nil
	}

	propagate(node)

	if nodeSize(node.left) >= count {
		leftPart, rest := split(node.left, count)
		node.left = rest

		resetMin(node)
		recalc(node)
		return leftPart, node
	}

	count -= nodeSize(node.left) + 1
	mid, rightPart := split(node.right, count)
	node.right = mid

	resetMin(node)
	recalc(node)
	return node, rightPart
}
