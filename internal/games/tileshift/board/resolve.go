package board

// CascadeRounds is the fixed number of elimination rounds per resolve.
const CascadeRounds = 4

// Verdict is the outcome of a resolve.
type Verdict int

const (
	Loss Verdict = iota
	Win
)

func (v Verdict) String() string {
	if v == Win {
		return "win"
	}
	return "loss"
}

// Resolution is returned by Resolve.
type Resolution struct {
	Verdict Verdict
	Effects []Effect // drained emitter, in emission order: apply phase, then cascade rounds
	Cleared bool     // the board was empty right after marks were applied
}

// Resolve applies all pending marks and runs the cascade.
//
// Every marked cell is shifted by one with wrap-around and its budget slot is
// refunded. If the board is then empty the verdict is Win and no cascade runs.
// Otherwise exactly CascadeRounds rounds run; each round finds the rows and
// columns holding three equal nonzero values and lowers every matched cell by
// one. The final sum decides the verdict.
func (b *Board) Resolve() Resolution {
	var em Emitter

	for i := range b.cells {
		c := &b.cells[i]
		if !c.Marked() {
			continue
		}
		before := c.Value
		c.Enabled = true
		c.applyMark()
		b.budget.refund()
		em.Emit(Effect{Cell: i, Direction: DirUp, Value: before, Phase: PhaseApply, Round: -1})
	}

	if b.Sum() == 0 {
		return Resolution{Verdict: Win, Effects: collect(&em), Cleared: true}
	}

	for round := range CascadeRounds {
		matched := Matches(b.values())
		dir := cascadeDirections[round]
		for _, i := range matched {
			b.cells[i].Enabled = true
			em.Emit(Effect{Cell: i, Direction: dir, Value: b.cells[i].Value, Phase: PhaseCascade, Round: round})
		}
		for _, i := range matched {
			b.cells[i].Value--
		}
	}

	verdict := Loss
	if b.Sum() == 0 {
		verdict = Win
	}
	return Resolution{Verdict: verdict, Effects: collect(&em)}
}

// Matches returns, in ascending order, every index that belongs to a row or
// column of three equal nonzero values. An index shared by a matching row and
// a matching column appears once.
func Matches(values [Size]int) []int {
	var hit [Size]bool
	for _, line := range lines {
		v := values[line[0]]
		if v == 0 || values[line[1]] != v || values[line[2]] != v {
			continue
		}
		for _, i := range line {
			hit[i] = true
		}
	}

	var out []int
	for i, ok := range hit {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// collect drains em into a slice.
func collect(em *Emitter) []Effect {
	out := make([]Effect, 0, em.Len())
	for fx := range em.Drain() {
		out = append(out, fx)
	}
	return out
}
