// Package qbits fixes the bit convention shared by every index method:
// an index value is expanded big-endian over the index register, so index
// qubit 0 holds the most significant bit. Both the default and the
// unary-iteration synthesis read bit vectors from here and nowhere else.
package qbits

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"

	"github.com/qompose/qompose/debug"
)

// Width returns the number of index qubits needed to address n values,
// ceil(log2(n)).
func Width(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Bits returns the big-endian width-bit expansion of v.
func Bits(v, width int) []bool {
	out := make([]bool, width)
	for p := 0; p < width; p++ {
		out[p] = v>>(width-1-p)&1 == 1
	}
	return out
}

// FirstDiffs returns, for each consecutive index pair (i-1, i) with
// i in [1, n), the most significant bit position at which the two indices
// differ. This drives how far the unary-iteration ancilla cascade has to
// be recomputed between adjacent indices.
func FirstDiffs(n, width int) []int {
	out := make([]int, 0, n-1)
	prev := vector(0, width)
	for i := 1; i < n; i++ {
		cur := vector(i, width)
		diff := prev.SymmetricDifference(cur)
		// position 0 is the most significant bit, so the first set bit of
		// the XOR is the highest-order differing bit
		p, ok := diff.NextSet(0)
		debug.Assert(ok, "consecutive indices always differ in at least one bit")
		out = append(out, int(p))
		prev = cur
	}
	return out
}

func vector(v, width int) *bitset.BitSet {
	b := bitset.New(uint(width))
	for p, set := range Bits(v, width) {
		if set {
			b.Set(uint(p))
		}
	}
	return b
}
