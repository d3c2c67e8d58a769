// Package board implements the Tileshift resolution engine: the 3x3 grid of
// numbered cells, the mark budget and the cascade that decides win or loss.
// It contains no I/O and no rendering; callers feed it mark requests and read
// back snapshots and effect descriptors.
package board

import "fmt"

// MaxValue is the highest value a cell can hold. Wrap-around arithmetic on
// marked cells is fixed to the domain [1, MaxValue].
const MaxValue = 4

// Mark is the pending annotation on a cell.
type Mark int

const (
	MarkNormal Mark = iota
	MarkPlus
	MarkMinus
)

// String returns the level-file spelling of the mark.
func (m Mark) String() string {
	switch m {
	case MarkNormal:
		return "normal"
	case MarkPlus:
		return "plus"
	case MarkMinus:
		return "minus"
	default:
		return fmt.Sprintf("mark(%d)", int(m))
	}
}

// ParseMark converts a level-file spelling into a Mark.
func ParseMark(s string) (Mark, bool) {
	switch s {
	case "", "normal", "none":
		return MarkNormal, true
	case "plus", "+":
		return MarkPlus, true
	case "minus", "-":
		return MarkMinus, true
	default:
		return MarkNormal, false
	}
}

// Valid reports whether m is one of the three known marks.
func (m Mark) Valid() bool {
	return m == MarkNormal || m == MarkPlus || m == MarkMinus
}

// Cell is a single grid slot.
type Cell struct {
	Value   int
	Enabled bool
	Mark    Mark
}

// Marked reports whether the cell carries a Plus or Minus mark.
func (c Cell) Marked() bool {
	return c.Mark == MarkPlus || c.Mark == MarkMinus
}

// Markable reports whether the cell accepts mark requests.
func (c Cell) Markable() bool {
	return c.Enabled && c.Value > 0
}

// normalize forces the rest mark onto cells that cannot hold one.
func (c *Cell) normalize() {
	if !c.Markable() {
		c.Mark = MarkNormal
	}
}

// applyMark consumes the mark, shifting the value with wrap-around.
// Returns false if the cell was not marked.
func (c *Cell) applyMark() bool {
	switch c.Mark {
	case MarkPlus:
		if c.Value < MaxValue {
			c.Value++
		} else {
			c.Value = 1
		}
	case MarkMinus:
		if c.Value > 1 {
			c.Value--
		} else {
			c.Value = MaxValue
		}
	default:
		return false
	}
	c.Mark = MarkNormal
	return true
}
