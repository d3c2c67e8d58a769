// Package core provides fundamental types shared by games and the platform.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Grid splits the rectangle into cols x rows cells of equal size separated
// by gap cells, returned row by row. Leftover space goes to the right and
// bottom edges.
func (r Rect) Grid(cols, rows, gap int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cw := (r.W - gap*(cols-1)) / cols
	ch := (r.H - gap*(rows-1)) / rows
	if cw <= 0 || ch <= 0 {
		return nil
	}

	out := make([]Rect, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			out = append(out, Rect{
				X: r.X + col*(cw+gap),
				Y: r.Y + row*(ch+gap),
				W: cw,
				H: ch,
			})
		}
	}
	return out
}

// HitTest returns the index of the first rect containing (x, y), or -1.
func HitTest(rects []Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
