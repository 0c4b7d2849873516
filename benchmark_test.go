// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seqtreap

import (
	"math/rand"
	"sync"
	"testing"
)

// numBenchValues is the number of values to generate for use in the
// benchmarks.
const numBenchValues = 50000

var (
	// generatedBenchValues is used to store values generated for use in
	// the benchmarks so that they only need to be generated once for all
	// benchmarks that use them.
	genBenchValuesLock   sync.Mutex
	generatedBenchValues []int
)

// genBenchValues generates and returns 'numBenchValues' along with memoizing
// them so that future calls return the cached data.
func genBenchValues() []int {
	genBenchValuesLock.Lock()
	defer genBenchValuesLock.Unlock()
	if generatedBenchValues != nil {
		return generatedBenchValues
	}

	prng := rand.New(rand.NewSource(1))
	values := make([]int, 0, numBenchValues)
	for i := 0; i < numBenchValues; i++ {
		values = append(values, prng.Int())
	}
	generatedBenchValues = values
	return values
}

// BenchmarkFromSlice benchmarks building a sequence of 'numBenchValues'
// elements by folding single-node merges.
func BenchmarkFromSlice(b *testing.B) {
	values := genBenchValues()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		FromSlice(values)
	}
}

// BenchmarkInsertLast benchmarks appending to an ever-growing sequence.
func BenchmarkInsertLast(b *testing.B) {
	values := genBenchValues()

	b.ReportAllocs()
	b.ResetTimer()

	s := New()
	for i := 0; i < b.N; i++ {
		s.InsertLast(values[i%len(values)])
	}
}

// BenchmarkReverseRange benchmarks lazy whole-sequence reversals of a
// sequence with 'numBenchValues' elements.
func BenchmarkReverseRange(b *testing.B) {
	s := FromSlice(genBenchValues())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := s.ReverseRange(0, s.Len()-1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIndexOfMin benchmarks locating the position of the minimum in a
// sequence with 'numBenchValues' elements.
func BenchmarkIndexOfMin(b *testing.B) {
	s := FromSlice(genBenchValues())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.IndexOfMin()
	}
}
