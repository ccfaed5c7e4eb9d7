// Package bitset provides a fixed-width bit vector backed by a single machine word.
//
// Architecture:
//   - Value type: a uint64 word plus a declared width W (0 <= W <= 64)
//   - Masking: bits at positions >= W never leak through Count, Equal, Shr or Uint64
//   - Contract checks: Test/Set panic with *OutOfRangeError for bit >= W
//
// Used internally for:
//   - Signature range masks (positive, negative and null basis vectors)
//   - Blade index arithmetic in the Cayley entry calculator
package bitset
