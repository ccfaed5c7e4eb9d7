package signature

import (
	"maps"
	"slices"
	"strings"
)

// Common algebras.
var (
	// Complex numbers: one vector squaring to -1.
	Complex = Signature{Negative: 1}
	// Dual numbers: one null vector.
	Dual = Signature{Zero: 1}
	// SplitComplex numbers: one vector squaring to +1.
	SplitComplex = Signature{Positive: 1}
	// Quaternion is Cl(0,2,0); its bivector e01 plays the role of k.
	Quaternion = Signature{Negative: 2}
	// VGA2 is the vector algebra of the Euclidean plane.
	VGA2 = Signature{Positive: 2}
	// VGA3 is the vector algebra of Euclidean space.
	VGA3 = Signature{Positive: 3}
	// PGA2 is plane-based projective geometric algebra.
	PGA2 = Signature{Positive: 2, Zero: 1}
	// PGA3 is space-based projective geometric algebra.
	PGA3 = Signature{Positive: 3, Zero: 1}
	// STA is the spacetime algebra with a (+,-,-,-) metric.
	STA = Signature{Positive: 1, Negative: 3}
	// CGA3 is conformal geometric algebra of Euclidean space.
	CGA3 = Signature{Positive: 4, Negative: 1}
)

var presets = map[string]Signature{
	"complex":       Complex,
	"dual":          Dual,
	"split-complex": SplitComplex,
	"quaternion":    Quaternion,
	"vga2":          VGA2,
	"vga3":          VGA3,
	"pga2":          PGA2,
	"pga3":          PGA3,
	"sta":           STA,
	"cga3":          CGA3,
}

// Preset looks up a named algebra, case-insensitively.
func Preset(name string) (Signature, bool) {
	s, ok := presets[strings.ToLower(name)]
	return s, ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
