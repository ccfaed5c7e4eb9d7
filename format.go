package cliffgo

import (
	"strconv"
	"strings"
	"unsafe"
)

// String formats m as a sum of blades in declaration order, for example
// "1 + 2e0 - e01". The zero multivector formats as "0".
func (m *Multivector[T]) String() string {
	var sb strings.Builder
	bitSize := int(unsafe.Sizeof(T(0))) * 8
	layout := m.alg.layout

	for pos := range layout.Len() {
		blade := layout.BladeAt(pos)
		v := m.c[blade]
		if v == 0 {
			continue
		}

		neg := v < 0
		if neg {
			v = -v
		}
		switch {
		case sb.Len() == 0 && neg:
			sb.WriteString("-")
		case sb.Len() > 0 && neg:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		if blade == 0 || v != 1 {
			sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bitSize))
		}
		if blade != 0 {
			sb.WriteString(layout.Name(blade))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
