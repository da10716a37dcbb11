package dynkin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseState returns the seed search state for a ground set of n elements:
// omega, the included family {∅, Ω}, and the bitset capacity 1<<n.
func baseState(n int) (omega uint32, included Bitset, nbits int) {
	if n > 0 {
		omega = 1<<uint(n) - 1
	}
	nbits = 1 << uint(n)
	included = NewBitset(nbits)
	included.Set(0)
	included.Set(omega)
	return omega, included, nbits
}

// checkDynkinClosed fails the test unless fam is closed under complement
// within omega and under union of disjoint members.
func checkDynkinClosed(t *testing.T, omega uint32, fam Bitset) {
	t.Helper()
	for x := uint32(0); x <= omega; x++ {
		if !fam.Get(x) {
			continue
		}
		require.Truef(t, fam.Get(omega^x), "complement %#x of member %#x missing", omega^x, x)
		for y := x; y <= omega; y++ {
			if fam.Get(y) && x&y == 0 {
				require.Truef(t, fam.Get(x|y), "disjoint union %#x|%#x missing", x, y)
			}
		}
	}
}

func TestExtendClosureComplement(t *testing.T) {
	// n=3: forcing {0} into {∅, Ω} forces exactly its complement {1,2}.
	omega, included, nbits := baseState(3)
	closure := NewBitset(nbits)
	queue := make([]uint32, 0, nbits)

	ok := extendClosure(omega, included, 1, NewBitset(nbits), closure, queue)
	require.True(t, ok)
	assert.Equal(t, 4, closure.OnesCount())
	for _, i := range []uint32{0, 1, 6, 7} {
		assert.Truef(t, closure.Get(i), "subset %#x", i)
	}
	checkDynkinClosed(t, omega, closure)
}

func TestExtendClosureIdempotent(t *testing.T) {
	// Extending with a subset the family already contains must succeed and
	// change nothing.
	omega, included, nbits := baseState(3)
	closure := NewBitset(nbits)
	queue := make([]uint32, 0, nbits)
	excluded := NewBitset(nbits)

	for _, i := range []uint32{0, omega} {
		require.True(t, extendClosure(omega, included, i, excluded, closure, queue))
		assert.Equalf(t, included, closure, "extending with %#x must be a no-op", i)
	}

	// Same check against a richer closed family.
	require.True(t, extendClosure(omega, included, 1, excluded, closure, queue))
	family := closure.Clone()
	for x := uint32(0); x <= omega; x++ {
		if !family.Get(x) {
			continue
		}
		require.True(t, extendClosure(omega, family, x, excluded, closure, queue))
		assert.Equalf(t, family, closure, "extending with member %#x must be a no-op", x)
	}
}

func TestExtendClosureContradiction(t *testing.T) {
	t.Run("Complement", func(t *testing.T) {
		// n=2: forcing {0} in while its complement {1} is excluded.
		omega, included, nbits := baseState(2)
		excluded := NewBitset(nbits)
		excluded.Set(2)
		closure := NewBitset(nbits)
		assert.False(t, extendClosure(omega, included, 1, excluded, closure,
			make([]uint32, 0, nbits)))
	})

	t.Run("DisjointUnion", func(t *testing.T) {
		// n=3: the family {∅, {0}, {1,2}, Ω} with {0,1} excluded. Forcing
		// {1} in would force the disjoint union {0}∪{1} = {0,1}.
		omega, included, nbits := baseState(3)
		closure := NewBitset(nbits)
		queue := make([]uint32, 0, nbits)
		require.True(t, extendClosure(omega, included, 1, NewBitset(nbits), closure, queue))
		family := closure.Clone()

		excluded := NewBitset(nbits)
		excluded.Set(3)
		assert.False(t, extendClosure(omega, family, 2, excluded, closure, queue))
	})
}

// TestExtendClosureProperties walks the entire search tree for small n and
// verifies every successful extension: the result is Dynkin-closed, contains
// the prior family and the extension, and avoids the excluded set.
func TestExtendClosureProperties(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			omega, included, nbits := baseState(n)
			queue := make([]uint32, 0, nbits)
			walkChecking(t, omega, nbits, 1, included, NewBitset(nbits), queue)
		})
	}
}

func walkChecking(t *testing.T, omega uint32, nbits int, lb uint32, included, excluded Bitset, queue []uint32) {
	limit := (omega + 1) >> 1
	closure := NewBitset(nbits)
	for m := lb; m < limit; m++ {
		if included.Get(m) || excluded.Get(m) {
			continue
		}
		if extendClosure(omega, included, m, excluded, closure, queue) {
			checkDynkinClosed(t, omega, closure)
			require.True(t, closure.Get(m))
			for i := uint32(0); i < uint32(nbits); i++ {
				if included.Get(i) {
					require.Truef(t, closure.Get(i), "member %#x dropped by extension", i)
				}
				if closure.Get(i) {
					require.Falsef(t, excluded.Get(i), "excluded subset %#x forced in", i)
				}
			}
			walkChecking(t, omega, nbits, m+1, closure.Clone(), excluded.Clone(), queue)
		}
		excluded.Set(m)
		excluded.Set(omega ^ m)
	}
}
