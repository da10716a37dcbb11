package dynkin

import "math/bits"

// extendClosure copies included into closure, adds extension, and propagates
// the two Dynkin closure rules to a least fixed point:
//
//  1. complement: x in the family forces omega^x
//  2. disjoint union: x and y in the family with x&y == 0 force x|y
//
// queue is caller-owned scratch with capacity for every subset index; it is
// clobbered. If a forced subset is already present in excluded the extension
// is contradictory: extendClosure returns false and the contents of closure
// are unspecified. included and excluded are never written.
func extendClosure(omega uint32, included Bitset, extension uint32, excluded Bitset, closure Bitset, queue []uint32) bool {
	closure.CopyFrom(included)
	closure.Set(extension)

	queue = append(queue[:0], extension)
	for qi := 0; qi < len(queue); qi++ {
		x := queue[qi]

		comp := omega ^ x
		if !closure.Get(comp) {
			if excluded.Get(comp) {
				return false
			}
			closure.Set(comp)
			queue = append(queue, comp)
		}

		// Scan the current family for disjoint partners of x. Bits set in a
		// word after its snapshot is taken are not revisited here; they are
		// queued and get their own scan.
		for w, word := range closure {
			for word != 0 {
				y := uint32(w)<<6 | uint32(bits.TrailingZeros64(word))
				word &= word - 1
				if x&y != 0 {
					continue
				}
				z := x | y
				if closure.Get(z) {
					continue
				}
				if excluded.Get(z) {
					return false
				}
				closure.Set(z)
				queue = append(queue, z)
			}
		}
	}
	return true
}
