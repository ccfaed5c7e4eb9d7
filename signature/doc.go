// Package signature describes the quadratic form of a Clifford algebra.
//
// A Signature counts the basis vectors that square to +1 (Positive), -1
// (Negative) and 0 (Zero). It fully determines the multiplication rules of the
// algebra; the configured InnerProduct selects which contraction Inner uses.
//
// Basis vectors are assigned bit positions in declaration order: positive
// vectors first, then negative, then null:
//
//	bits [0, P)        square to +1
//	bits [P, P+N)      square to -1
//	bits [P+N, P+N+Z)  square to  0
//
// # Presets
//
//	signature.Complex       Cl(0,1,0)
//	signature.Dual          Cl(0,0,1)
//	signature.SplitComplex  Cl(1,0,0)
//	signature.VGA3          Cl(3,0,0)
//	signature.PGA3          Cl(3,0,1)
//	signature.STA           Cl(1,3,0)
//
// # Layout
//
// Layout maps between bit order (the storage order of coefficients) and
// declaration order (grade-major, lexicographic within a grade), the order
// used when naming and printing blades.
package signature
