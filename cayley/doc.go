// Package cayley derives and stores the multiplication structure of a
// Clifford algebra.
//
// # Entry Calculator
//
// Compute maps a pair of basis-blade indices to the product blade and its
// sign under a signature:
//
//	blade = lhs ^ rhs                   vectors present in exactly one operand survive
//	sign  = 0                           if a shared vector squares to zero
//	      = (-1)^(shared negatives)     times the reordering sign
//
// The reordering sign counts the transpositions needed to bring the
// concatenated basis vectors of lhs and rhs into ascending order.
//
// # Tables
//
// A Table materializes Compute for every pair of blades of one signature.
// Building is O(4^n) in time and memory, so tables are limited to
// MaxTableVectors basis vectors and are built in parallel rows.
//
// # Registry
//
// A Registry memoizes one Table per signature key. Concurrent first requests
// for the same signature share a single build; later requests are lock-free
// reads of an immutable table:
//
//	reg := cayley.NewRegistry(cayley.WithMemoryLimit(256 << 20))
//	t, err := reg.Get(ctx, signature.STA)
//
// # Snapshots
//
// WriteSnapshot and ReadSnapshot persist tables in a checksummed, optionally
// compressed binary format so that large tables can be generated ahead of
// time and loaded with Registry.Load.
package cayley
