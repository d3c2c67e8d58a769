package board

import "iter"

// Direction is the drift of a visual effect on screen.
type Direction int

const (
	DirRight Direction = iota // +x
	DirDown                   // +y
	DirLeft                   // -x
	DirUp                     // -y
)

// cascadeDirections holds one direction per cascade round.
var cascadeDirections = [CascadeRounds]Direction{DirRight, DirDown, DirLeft, DirUp}

// Vector returns the unit step for the direction in screen coordinates
// (y grows downward).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "+x"
	case DirDown:
		return "+y"
	case DirLeft:
		return "-x"
	case DirUp:
		return "-y"
	default:
		return "?"
	}
}

// Phase tells which step of a resolve produced an effect.
type Phase int

const (
	PhaseApply   Phase = iota // a pending mark was applied
	PhaseCascade              // a cell was eliminated in a cascade round
)

// Effect describes one visual event caused by a value change.
// It carries no reference back into the board.
type Effect struct {
	Cell      int
	Direction Direction
	Value     int // value at emission time
	Phase     Phase
	Round     int // cascade round, -1 for PhaseApply
}

// Emitter buffers effects while a resolve runs and hands them out once.
// Resolve drains its emitter completely before returning, so callers see the
// effects as the Resolution.Effects slice rather than as a live stream.
type Emitter struct {
	buf []Effect
}

// Emit queues an effect.
func (e *Emitter) Emit(fx Effect) {
	e.buf = append(e.buf, fx)
}

// Len returns the number of queued effects.
func (e *Emitter) Len() int {
	return len(e.buf)
}

// Drain yields queued effects in emission order. Every yielded effect is
// dropped from the buffer, so a second Drain only sees effects emitted since.
func (e *Emitter) Drain() iter.Seq[Effect] {
	return func(yield func(Effect) bool) {
		for len(e.buf) > 0 {
			fx := e.buf[0]
			e.buf = e.buf[1:]
			if !yield(fx) {
				return
			}
		}
		e.buf = nil
	}
}
