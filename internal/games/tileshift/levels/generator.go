package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

// GenParams configures random level generation.
type GenParams struct {
	MaxLines    int // matching lines in the solved layout (1..6)
	MaxMarks    int // cells the player has to mark
	SpareMoves  int // extra budget, granted back as par
	WrongMarks  float64
	MaxAttempts int
}

// DefaultGenParams returns the parameters used by the random mode.
func DefaultGenParams() GenParams {
	return GenParams{
		MaxLines:    2,
		MaxMarks:    3,
		SpareMoves:  0,
		WrongMarks:  0.2,
		MaxAttempts: 64,
	}
}

// Generator builds solvable levels by scrambling a layout that is known to
// clear. Same seed, same sequence of levels.
type Generator struct {
	rng    *rand.Rand
	params GenParams
}

// NewGenerator creates a generator.
func NewGenerator(seed int64, params GenParams) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		params: params.sanitized(),
	}
}

func (p GenParams) sanitized() GenParams {
	p.MaxLines = min(max(p.MaxLines, 1), 2*board.Side)
	p.MaxMarks = max(p.MaxMarks, 1)
	p.SpareMoves = max(p.SpareMoves, 0)
	p.MaxAttempts = max(p.MaxAttempts, 1)
	return p
}

// SetParams changes the parameters for the following levels.
func (g *Generator) SetParams(params GenParams) {
	g.params = params.sanitized()
}

// Generate returns the level with the given number.
func (g *Generator) Generate(number int) (Level, error) {
	for range g.params.MaxAttempts {
		target, ok := g.target()
		if !ok {
			continue
		}

		ls, ok := g.scramble(target)
		if !ok {
			continue
		}
		ls.ID = fmt.Sprintf("rnd%04d", number)
		ls.Name = fmt.Sprintf("Random #%d", number)
		ls.Number = number

		if err := ls.Validate(); err != nil {
			return Level{}, fmt.Errorf("levels: generated invalid level: %w", err)
		}
		if _, ok := board.Solve(ls); !ok {
			continue
		}
		return Level{LevelState: ls}, nil
	}

	return Level{}, fmt.Errorf("levels: no solvable layout after %d attempts", g.params.MaxAttempts)
}

// target lays down one or more full lines and keeps the layout only if the
// cascade clears it without any marks.
func (g *Generator) target() ([board.Size]int, bool) {
	var values [board.Size]int

	n := 1 + g.rng.Intn(g.params.MaxLines)
	for range n {
		line := lineCells(g.rng.Intn(2 * board.Side))
		v, ok := lineValue(values, line)
		if !ok {
			continue
		}
		if v == 0 {
			v = 1 + g.rng.Intn(board.MaxValue)
		}
		for _, i := range line {
			values[i] = v
		}
	}

	var ls board.LevelState
	ls.Values = values
	for i := range ls.Enabled {
		ls.Enabled[i] = true
	}
	b, err := board.New(ls)
	if err != nil || b.Resolve().Verdict != board.Win {
		return values, false
	}
	return values, true
}

// scramble undoes a random mark on some nonzero cells of target.
func (g *Generator) scramble(target [board.Size]int) (board.LevelState, bool) {
	var filled []int
	for i, v := range target {
		if v > 0 {
			filled = append(filled, i)
		}
	}
	if len(filled) == 0 {
		return board.LevelState{}, false
	}
	g.rng.Shuffle(len(filled), func(i, j int) { filled[i], filled[j] = filled[j], filled[i] })

	k := 1 + g.rng.Intn(min(g.params.MaxMarks, len(filled)))

	ls := board.LevelState{Values: target}
	for i := range ls.Enabled {
		ls.Enabled[i] = true
	}

	wrong := 0
	for _, i := range filled[:k] {
		want := board.MarkPlus
		if g.rng.Intn(2) == 0 {
			want = board.MarkMinus
		}
		ls.Values[i] = undo(target[i], want)

		if g.rng.Float64() < g.params.WrongMarks {
			ls.Marks[i] = opposite(want)
			wrong++
		}
	}

	// Filled cells nobody needs to mark may be locked.
	for _, i := range filled[k:] {
		if g.rng.Intn(4) == 0 {
			ls.Enabled[i] = false
		}
	}

	ls.MoveBudget = k - wrong + g.params.SpareMoves
	ls.Par = g.params.SpareMoves
	return ls, true
}

// undo returns the value that becomes v once mark is applied.
func undo(v int, mark board.Mark) int {
	switch mark {
	case board.MarkPlus:
		if v == 1 {
			return board.MaxValue
		}
		return v - 1
	case board.MarkMinus:
		if v == board.MaxValue {
			return 1
		}
		return v + 1
	}
	return v
}

func opposite(m board.Mark) board.Mark {
	if m == board.MarkPlus {
		return board.MarkMinus
	}
	return board.MarkPlus
}

// lineCells returns row n for n < Side, otherwise column n-Side.
func lineCells(n int) [board.Side]int {
	var out [board.Side]int
	for k := range board.Side {
		if n < board.Side {
			out[k] = board.Index(n, k)
		} else {
			out[k] = board.Index(k, n-board.Side)
		}
	}
	return out
}

// lineValue returns the value already fixed on line by crossing lines, or 0.
// It fails when two crossings disagree.
func lineValue(values [board.Size]int, line [board.Side]int) (int, bool) {
	v := 0
	for _, i := range line {
		if values[i] == 0 {
			continue
		}
		if v != 0 && v != values[i] {
			return 0, false
		}
		v = values[i]
	}
	return v, true
}
