// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package seqtreap implements an implicit treap data structure that is used to
hold an ordered sequence of integers using a combination of binary tree and
heap semantics.  It is a self-organizing and randomized data structure that
doesn't require complex operations to maintain balance.

Unlike an ordinary treap, the tree is not ordered by a stored key.  An
element's logical position in the sequence is its in-order rank, derived from
cached subtree sizes, so the structure behaves like an array with
O(log n) split, concatenate, and range operations.

Each node additionally caches the minimum value of its subtree, which allows
the position of the smallest element to be located in O(log n), and carries a
lazy reversal flag so that reversing any contiguous range of the sequence is
also O(log n).  The pending reversal is pushed down to children only when a
traversal next visits the node.

An individual sequence is not safe for concurrent access without external
locking by the caller.  Distinct sequences may however be built and used from
different goroutines since the shared priority source is synchronized.
*/
package seqtreap
