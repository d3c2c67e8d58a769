package board

// ActionBudget bounds how many marks may be outstanding at once.
// Remaining only moves by one per mark or unmark and never goes negative.
type ActionBudget struct {
	remaining int
}

// NewActionBudget creates a budget with n available marks.
// Negative values are clamped to zero.
func NewActionBudget(n int) ActionBudget {
	if n < 0 {
		n = 0
	}
	return ActionBudget{remaining: n}
}

// Remaining returns how many more marks may be placed.
func (b ActionBudget) Remaining() int {
	return b.remaining
}

// take spends one slot. Returns false when nothing is left.
func (b *ActionBudget) take() bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// refund returns one slot.
func (b *ActionBudget) refund() {
	b.remaining++
}
