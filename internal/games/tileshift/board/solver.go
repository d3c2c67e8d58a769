package board

// Step is one mark request in a solution.
type Step struct {
	Cell int
	Mark Mark
}

// Solution is a mark layout that wins the level, plus the requests that reach
// it from the level's starting marks.
type Solution struct {
	Marks   [Size]Mark
	Steps   []Step
	Changes int
}

// Solve searches every final mark layout of the level's markable cells and
// returns the winning one that needs the fewest mark requests.
//
// A layout is only considered if the budget allows reaching it and if the
// budget left afterwards is within the level's par, since the resolve control
// is not offered otherwise.
func Solve(level LevelState) (Solution, bool) {
	if level.Validate() != nil {
		return Solution{}, false
	}

	var markable []int
	for i := range Size {
		if level.Enabled[i] && level.Values[i] > 0 {
			markable = append(markable, i)
		}
	}
	capacity := level.MoveBudget + level.InitialMarks()

	var (
		best  Solution
		found bool
	)

	layout := level.Marks
	var search func(k, marked int)
	search = func(k, marked int) {
		if marked > capacity {
			return
		}
		if k == len(markable) {
			if capacity-marked > level.Par {
				return
			}
			changes := diffMarks(level.Marks, layout)
			if found && changes >= best.Changes {
				return
			}
			if !wins(level, layout) {
				return
			}
			best = Solution{Marks: layout, Changes: changes}
			found = true
			return
		}

		i := markable[k]
		for _, m := range [...]Mark{MarkNormal, MarkPlus, MarkMinus} {
			layout[i] = m
			next := marked
			if m != MarkNormal {
				next++
			}
			search(k+1, next)
		}
		layout[i] = level.Marks[i]
	}
	search(0, 0)

	if !found {
		return Solution{}, false
	}
	best.Steps = stepsBetween(level.Marks, best.Marks)
	return best, true
}

// wins resolves a scratch copy of the level with the given marks.
func wins(level LevelState, marks [Size]Mark) bool {
	scratch := level
	scratch.Marks = marks
	b, err := New(scratch)
	if err != nil {
		return false
	}
	return b.Resolve().Verdict == Win
}

func diffMarks(a, b [Size]Mark) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// stepsBetween orders requests so the budget never blocks: unmarks refund
// first, switches are free, new marks spend last.
func stepsBetween(from, to [Size]Mark) []Step {
	var unmarks, switches, marks []Step
	for i := range from {
		switch {
		case from[i] == to[i]:
		case to[i] == MarkNormal:
			unmarks = append(unmarks, Step{Cell: i, Mark: from[i]})
		case from[i] == MarkNormal:
			marks = append(marks, Step{Cell: i, Mark: to[i]})
		default:
			switches = append(switches, Step{Cell: i, Mark: to[i]})
		}
	}
	steps := append(unmarks, switches...)
	return append(steps, marks...)
}

// AsLevel turns the snapshot back into a level so the solver can continue
// from the current position. Remaining becomes the move budget.
func (s Snapshot) AsLevel(par int) LevelState {
	var l LevelState
	for i, c := range s.Cells {
		l.Values[i] = c.Value
		l.Enabled[i] = c.Enabled
		l.Marks[i] = c.Mark
	}
	l.MoveBudget = s.Remaining
	l.Par = par
	return l
}
