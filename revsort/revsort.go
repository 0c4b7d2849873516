// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package revsort implements a reversal-based incremental sort on top of the
// seqtreap package.  Given a permutation, each step locates the position of
// the current minimum, reverses the prefix up to and including it so the
// minimum becomes the front element, and then discards the front element.
// The reported index of each step is the 1-based position the located element
// occupied in the original, unshrunk sequence.
package revsort

import (
	"github.com/btcsuite/seqtreap"
)

// Indices performs the reversal sort over the passed values and returns the
// reported index of every step.  The input slice is not modified.
//
// Every individual step is O(log n) in expectation, so the whole procedure is
// O(n log n).
func Indices(values []int) ([]int, error) {
	seq := seqtreap.FromSlice(values)

	indices := make([]int, 0, len(values))
	for step := 0; step < len(values); step++ {
		index := seq.IndexOfMin()
		log.Tracef("Step %d: minimum of %d remaining elements at "+
			"index %d", step+1, seq.Len(), index)
		indices = append(indices, index+step+1)

		// A nonzero index means the minimum is not already at the
		// front, so the prefix ending at it has to be reversed before
		// the front element is popped.  The popped element is final:
		// everything before it is already sorted and it can no longer
		// be the minimum of a later step.
		if index != 0 {
			if err := seq.ReverseRange(0, index); err != nil {
				return nil, err
			}
		}
		seq.RemoveFirst()
	}

	return indices, nil
}
