package dynkin

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// counter carries the per-goroutine state for one enumeration: the ground
// set, the decision frontier limit, and scratch reused across closure calls.
type counter struct {
	omega   uint32
	limit   uint32 // only indices below (omega+1)/2 need a decision
	closure Bitset
	queue   []uint32
}

// newCounter returns a counter for the given ground set with scratch sized
// for nbits = 1<<n subset indices.
func newCounter(omega uint32, nbits int) *counter {
	return &counter{
		omega:   omega,
		limit:   (omega + 1) >> 1,
		closure: NewBitset(nbits),
		queue:   make([]uint32, 0, nbits),
	}
}

// enumerate counts the completed Dynkin systems reachable from the partial
// state (included, excluded) by deciding every undecided subset index in
// [lb, c.limit), one at a time. The include branch recurses into the forced
// closure with private copies; the exclude branch commits m and its
// complement to excluded in place and continues at the same level. The two
// branches partition the completions, so no system is counted twice. The
// current state itself is one completed system, hence the count starts at 1.
//
// enumerate owns included and excluded and may clobber both.
func (c *counter) enumerate(lb uint32, included, excluded Bitset) uint64 {
	count := uint64(1)
	for m := lb; m < c.limit; m++ {
		if included.Get(m) || excluded.Get(m) {
			continue
		}
		// c.closure is safe to share across recursion levels: extendClosure
		// fully overwrites it, and only the clone escapes into the recursion.
		if extendClosure(c.omega, included, m, excluded, c.closure, c.queue) {
			count += c.enumerate(m+1, c.closure.Clone(), excluded.Clone())
		}
		excluded.Set(m)
		excluded.Set(c.omega ^ m)
	}
	return count
}

// Count returns the number of distinct Dynkin systems on a ground set of n
// elements, splitting the top level of the search across GOMAXPROCS workers.
// Count panics if n is negative or larger than MaxN.
func Count(n int) uint64 {
	return CountWorkers(n, runtime.GOMAXPROCS(0))
}

// CountWorkers is Count with an explicit worker count for the top-level
// split. workers <= 1 runs the strictly serial enumeration.
func CountWorkers(n, workers int) uint64 {
	if n < 0 || n > MaxN {
		panic(fmt.Sprintf("dynkin: ground set size %d out of range [0, %d]", n, MaxN))
	}
	var omega uint32
	if n > 0 {
		omega = 1<<uint(n) - 1
	}
	limit := (omega + 1) >> 1
	if limit == 0 {
		// n == 0: the only family is {∅} = {Ω}.
		return 1
	}

	nbits := 1 << uint(n)
	included := NewBitset(nbits)
	included.Set(0)
	included.Set(omega)

	if workers <= 1 {
		c := newCounter(omega, nbits)
		return c.enumerate(1, included, NewBitset(nbits))
	}

	// Each top-level index m must see the excluded state a sequential run
	// would have accumulated over indices 1..m-1. Every prior iteration
	// excludes its index and complement unconditionally, so the prefix is
	// fixed and cheap to precompute serially.
	rootExcluded := make([]Bitset, limit)
	rootExcluded[0] = NewBitset(nbits)
	for m := uint32(1); m < limit; m++ {
		rootExcluded[m] = rootExcluded[m-1].Clone()
		rootExcluded[m].Set(m)
		rootExcluded[m].Set(omega ^ m)
	}

	// Fork-join pool over the top-level indices. Subtree sizes are wildly
	// uneven, so indices are handed out dynamically through the channel.
	// included and rootExcluded are read-only from here on.
	var total atomic.Uint64
	work := make(chan uint32, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newCounter(omega, nbits)
			var local uint64
			for m := range work {
				excluded := rootExcluded[m-1]
				if included.Get(m) || excluded.Get(m) {
					continue
				}
				if !extendClosure(omega, included, m, excluded, c.closure, c.queue) {
					continue
				}
				branchExcluded := excluded.Clone()
				branchExcluded.Set(m)
				branchExcluded.Set(omega ^ m)
				local += c.enumerate(m+1, c.closure.Clone(), branchExcluded)
			}
			total.Add(local)
		}()
	}
	for m := uint32(1); m < limit; m++ {
		work <- m
	}
	close(work)
	wg.Wait()

	// The base family {∅, Ω} itself.
	return total.Load() + 1
}
