package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 30, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero should clamp, got %+v", tiny)
	}
}

func TestRectGrid(t *testing.T) {
	cells := NewRect(0, 0, 32, 14).Grid(3, 3, 1)
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(cells))
	}

	// (32 - 2) / 3 = 10 wide, (14 - 2) / 3 = 4 high
	if cells[0] != NewRect(0, 0, 10, 4) {
		t.Errorf("cells[0] = %+v", cells[0])
	}
	if cells[4] != NewRect(11, 5, 10, 4) {
		t.Errorf("cells[4] = %+v", cells[4])
	}
	if cells[8] != NewRect(22, 10, 10, 4) {
		t.Errorf("cells[8] = %+v", cells[8])
	}

	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			a, b := cells[i], cells[j]
			overlap := a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
			if overlap {
				t.Errorf("cells %d and %d overlap", i, j)
			}
		}
	}
}

func TestRectGridTooSmall(t *testing.T) {
	if cells := NewRect(0, 0, 2, 2).Grid(3, 3, 1); cells != nil {
		t.Errorf("expected nil for a rect too small to split, got %v", cells)
	}
}

func TestHitTest(t *testing.T) {
	cells := NewRect(0, 0, 32, 14).Grid(3, 3, 1)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{15, 6, 4},
		{31, 13, 8},
		{10, 0, -1}, // gap column
		{40, 40, -1},
	}
	for _, tt := range tests {
		if got := HitTest(cells, tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
