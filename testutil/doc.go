// Package testutil provides testing utilities for cliffgo.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Coefficients
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Coefficients(alg.BladeCount())   // uniform [-1, 1)
//	v := rng.Vector(alg.BladeCount())         // grade-1 part only
//
// # Approximate Comparison
//
//	testutil.RequireInDeltaSlice(t, want, got, 1e-9)
package testutil
