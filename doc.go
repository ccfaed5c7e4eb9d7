// Package cliffgo provides Clifford (geometric) algebras of any signature
// Cl(p,n,z) backed by precomputed Cayley tables.
//
// An Algebra is created from a signature and resolves its Cayley table from a
// shared registry, building it once in parallel on first use. Multivectors
// are dense coefficient slices over the 2^(p+n+z) basis blades of their
// algebra; every product is a table-driven loop over nonzero coefficients.
//
// # Quick Start
//
//	alg, _ := cliffgo.New[float64](signature.VGA3)
//	e0, e1 := alg.Basis(0), alg.Basis(1)
//
//	b := e0.Outer(e1)          // the bivector e01
//	fmt.Println(b.Mul(b))      // -1
//	fmt.Println(e0.Add(e1).Mul(e0)) // 1 - e01
//
// # Signatures
//
// Basis vectors are ordered positive first, then negative, then null:
//
//	sig, _ := signature.New(3, 0, 1)            // PGA3
//	sig, _ = signature.Parse("Cl(1,3,0)/bidirectional")
//	sig = signature.STA                         // preset
//
// The inner product style is part of the signature and is resolved when the
// algebra is created; Algebra.InnerProduct returns it, or an error for
// signature.NoImplicitInner.
//
// # Products
//
// Mul is the geometric product. Outer, LeftContraction, RightContraction,
// BidirectionalInner and Regress derive from the same table. Sandwich applies
// a versor as m * x * inverse(m).
//
// # Errors
//
// Construction and I/O return errors. Mixing algebras, indexing past the
// blade count, or requesting an invalid grade are contract violations and
// panic with typed errors that wrap ErrAlgebraMismatch, ErrOutOfRange and
// ErrInvalidGrade. Division by zero follows IEEE 754; use TryInverse to
// detect a non-invertible multivector.
//
// # Tables
//
// Tables are shared per metric across algebras and element types. Build and
// memory limits are configured on a cayley.Registry:
//
//	reg := cayley.NewRegistry(cayley.WithMemoryLimit(64<<20), cayley.WithMaxBuilds(1))
//	alg, _ := cliffgo.New[float32](signature.CGA3, cliffgo.WithRegistry(reg))
//
// Tables can be exported with cayley.WriteSnapshot (or the cliff CLI) and
// loaded back with LoadTable to skip the build.
//
// # Key Features
//
//   - Any signature up to 12 basis vectors with a table
//   - float32 and float64 coefficients
//   - Parallel, deduplicated, memory-bounded table builds
//   - Compressed, checksummed table snapshots (LZ4/ZSTD)
//   - Structured logging via log/slog and pluggable metrics
package cliffgo
