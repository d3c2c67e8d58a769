package board

import (
	"fmt"
	"strings"
)

// LevelState is the immutable configuration a board is reset from.
type LevelState struct {
	ID     string
	Name   string
	Number int

	Values  [Size]int
	Enabled [Size]bool
	Marks   [Size]Mark

	MoveBudget int
	// Par is the remaining-budget threshold at or below which the resolve
	// control is offered. The engine carries it but never reads it.
	Par int
}

// LevelError lists every structural problem found in a level definition.
type LevelError struct {
	Level    string
	Problems []string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("invalid level %q: %s", e.Level, strings.Join(e.Problems, "; "))
}

// LevelSpec is the slice-based form a level arrives in from a decoder.
// Nil Enabled or Marks mean "all enabled" and "all normal".
type LevelSpec struct {
	ID         string
	Name       string
	Number     int
	Values     []int
	Enabled    []bool
	Marks      []Mark
	MoveBudget int
	Par        int
}

// NewLevelState checks spec and copies it into a LevelState.
// Any problem is reported as a *LevelError and no state is returned.
func NewLevelState(spec LevelSpec) (LevelState, error) {
	var errs []string

	if len(spec.Values) != Size {
		errs = append(errs, fmt.Sprintf("values: want %d entries, got %d", Size, len(spec.Values)))
	}
	if spec.Enabled != nil && len(spec.Enabled) != Size {
		errs = append(errs, fmt.Sprintf("enabled: want %d entries, got %d", Size, len(spec.Enabled)))
	}
	if spec.Marks != nil && len(spec.Marks) != Size {
		errs = append(errs, fmt.Sprintf("marks: want %d entries, got %d", Size, len(spec.Marks)))
	}
	if len(errs) > 0 {
		return LevelState{}, &LevelError{Level: levelLabel(spec.ID, spec.Number), Problems: errs}
	}

	ls := LevelState{
		ID:         spec.ID,
		Name:       spec.Name,
		Number:     spec.Number,
		MoveBudget: spec.MoveBudget,
		Par:        spec.Par,
	}
	copy(ls.Values[:], spec.Values)
	for i := range ls.Enabled {
		ls.Enabled[i] = true
	}
	if spec.Enabled != nil {
		copy(ls.Enabled[:], spec.Enabled)
	}
	if spec.Marks != nil {
		copy(ls.Marks[:], spec.Marks)
	}

	if err := ls.Validate(); err != nil {
		return LevelState{}, err
	}
	return ls, nil
}

// Validate checks the value ranges and mark consistency of the level.
func (l LevelState) Validate() error {
	var errs []string

	for i, v := range l.Values {
		if v < 0 || v > MaxValue {
			errs = append(errs, fmt.Sprintf("values[%d]: %d out of range [0,%d]", i, v, MaxValue))
		}
	}
	for i, m := range l.Marks {
		switch {
		case !m.Valid():
			errs = append(errs, fmt.Sprintf("marks[%d]: unknown mark %d", i, int(m)))
		case m != MarkNormal && l.Values[i] == 0:
			errs = append(errs, fmt.Sprintf("marks[%d]: %s on an empty cell", i, m))
		case m != MarkNormal && !l.Enabled[i]:
			errs = append(errs, fmt.Sprintf("marks[%d]: %s on a disabled cell", i, m))
		}
	}
	if l.MoveBudget < 0 {
		errs = append(errs, fmt.Sprintf("moves: must be >= 0, got %d", l.MoveBudget))
	}
	if l.Par < 0 {
		errs = append(errs, fmt.Sprintf("par: must be >= 0, got %d", l.Par))
	}

	if len(errs) > 0 {
		return &LevelError{Level: levelLabel(l.ID, l.Number), Problems: errs}
	}
	return nil
}

// InitialMarks counts the marks the level starts with.
func (l LevelState) InitialMarks() int {
	n := 0
	for _, m := range l.Marks {
		if m != MarkNormal {
			n++
		}
	}
	return n
}

func levelLabel(id string, number int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("#%d", number)
}
