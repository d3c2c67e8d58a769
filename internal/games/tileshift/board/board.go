package board

// Grid dimensions.
const (
	Side = 3
	Size = Side * Side
)

// lines lists the triples checked for matches: rows first, then columns.
// Diagonals never match.
var lines = [2 * Side][Side]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
}

// Index converts a row/column pair into a cell index.
func Index(row, col int) int {
	return row*Side + col
}

// Position converts a cell index into its row and column.
func Position(i int) (row, col int) {
	return i / Side, i % Side
}

// Board owns the nine cells and the action budget.
// It is driven by one caller and is not safe for concurrent use.
type Board struct {
	cells  [Size]Cell
	budget ActionBudget
}

// New creates a board reset from the given level. An invalid level is
// returned as a *LevelError.
func New(level LevelState) (*Board, error) {
	b := &Board{}
	if err := b.Reset(level); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset overwrites every cell and the budget from level.
// Nothing from a previous level or attempt survives. An invalid level is
// rejected and the board keeps its current state.
func (b *Board) Reset(level LevelState) error {
	if err := level.Validate(); err != nil {
		return err
	}

	for i := range b.cells {
		b.cells[i] = Cell{
			Value:   level.Values[i],
			Enabled: level.Enabled[i],
			Mark:    level.Marks[i],
		}
		b.cells[i].normalize()
	}
	b.budget = NewActionBudget(level.MoveBudget)
	return nil
}

// RequestMark toggles a mark on cell i. Illegal requests (bad index, inert
// cell, non-mark kind, empty budget) are ignored. Returns true if the board
// changed.
func (b *Board) RequestMark(i int, kind Mark) bool {
	if i < 0 || i >= Size {
		return false
	}
	if kind != MarkPlus && kind != MarkMinus {
		return false
	}
	c := &b.cells[i]
	if !c.Markable() {
		return false
	}

	switch c.Mark {
	case MarkNormal:
		if !b.budget.take() {
			return false
		}
		c.Mark = kind
	case kind:
		c.Mark = MarkNormal
		b.budget.refund()
	default:
		// Switching between Plus and Minus is free.
		c.Mark = kind
	}
	return true
}

// Cell returns a copy of cell i. Out-of-range indices yield a zero Cell.
func (b *Board) Cell(i int) Cell {
	if i < 0 || i >= Size {
		return Cell{}
	}
	return b.cells[i]
}

// Remaining returns the unused action budget.
func (b *Board) Remaining() int {
	return b.budget.Remaining()
}

// MarkedCount returns how many cells currently carry a mark.
func (b *Board) MarkedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Marked() {
			n++
		}
	}
	return n
}

// Sum returns the total of all cell values.
func (b *Board) Sum() int {
	return sumValues(b.values())
}

// Snapshot is a read-only copy of the board for rendering.
type Snapshot struct {
	Cells     [Size]Cell
	Remaining int
}

// Snapshot copies the current cells and budget.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{Cells: b.cells, Remaining: b.budget.Remaining()}
}

// Values returns the value of every cell in index order.
func (s Snapshot) Values() [Size]int {
	var v [Size]int
	for i, c := range s.Cells {
		v[i] = c.Value
	}
	return v
}

func (b *Board) values() [Size]int {
	var v [Size]int
	for i, c := range b.cells {
		v[i] = c.Value
	}
	return v
}

func sumValues(v [Size]int) int {
	sum := 0
	for _, n := range v {
		sum += n
	}
	return sum
}
