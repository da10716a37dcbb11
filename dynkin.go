// Package dynkin counts the Dynkin (λ) systems over a finite ground set.
//
// A Dynkin system on a set Ω is a family of subsets of Ω that contains ∅,
// is closed under complement within Ω, and is closed under union of pairwise
// disjoint members. The number of such families is only known for small
// ground sets; this package enumerates them exhaustively with a pruned
// backtracking search over the subset lattice.
//
// Subsets of the n-element ground set are encoded as integers in [0, 1<<n):
// bit i set means element i is a member. Ω itself is (1<<n)-1 and ∅ is 0.
// Counting decides membership of one subset at a time, and only for indices
// below (Ω+1)/2, since a subset and its complement always enter or leave a
// system together.
package dynkin

// MaxN is the largest supported ground set size. The search walks bitsets
// over all 1<<n subset indices and its running time grows faster than
// exponentially in n, so the ceiling is deliberately small.
const MaxN = 8
