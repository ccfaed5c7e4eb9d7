package cayley

// deriveDualSigns returns, per blade i, the sign s with e_i ∧ s·e_{~i} = I.
// The complement never overlaps i, so the table entry carries only the
// reordering sign and is never zero, even for degenerate metrics.
func deriveDualSigns(t *Table) []int8 {
	full := t.blades - 1
	signs := make([]int8, t.blades)
	for i := range t.blades {
		signs[i] = t.entries[i*t.blades+(full^i)].Sign
	}
	return signs
}

// DualSigns returns the per-blade sign applied by the dual map
// e_i -> dualSign[i]·e_{~i}. The slice aliases the table and must not be
// modified.
func (t *Table) DualSigns() []int8 { return t.dual }

// DualSign returns the dual sign of blade i.
func (t *Table) DualSign(i uint64) int8 {
	if i >= t.blades {
		panic(&IndexError{Index: i, Blades: t.blades})
	}
	return t.dual[i]
}
