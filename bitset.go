package dynkin

import "math/bits"

// A Bitset records one bit per subset index of the ground set. Its capacity
// is fixed by NewBitset and never grows. Indices are caller-validated to be
// below that capacity.
type Bitset []uint64

// NewBitset returns a Bitset with capacity for n bits, all zero.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+63)/64)
}

// Set sets bit i.
func (b Bitset) Set(i uint32) { b[i>>6] |= 1 << (i & 63) }

// Get reports whether bit i is set.
func (b Bitset) Get(i uint32) bool { return b[i>>6]&(1<<(i&63)) != 0 }

// Clear zeroes every bit.
func (b Bitset) Clear() {
	for i := range b {
		b[i] = 0
	}
}

// CopyFrom overwrites b with the contents of src, which must have been
// created with the same capacity.
func (b Bitset) CopyFrom(src Bitset) { copy(b, src) }

// Clone returns an independent copy of b.
func (b Bitset) Clone() Bitset {
	dst := make(Bitset, len(b))
	copy(dst, b)
	return dst
}

// OnesCount returns the number of set bits.
func (b Bitset) OnesCount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}
