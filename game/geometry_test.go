package game

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 15, Y: 15, W: 2, H: 2}, true},
		{"partial", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 5, H: 5}, false},
		{"left of", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"above", Rect{X: 10, Y: -10, W: 5, H: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tc.other, got, tc.want)
			}
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(10, 5) {
		t.Error("right edge should be outside")
	}
	if cx, cy := r.Center(); cx != 5 || cy != 5 {
		t.Errorf("Center() = (%v, %v), want (5, 5)", cx, cy)
	}
}

func TestCircleRect(t *testing.T) {
	got := CircleRect(10, 20, 4)
	want := Rect{X: 6, Y: 16, W: 8, H: 8}
	if got != want {
		t.Errorf("CircleRect = %+v, want %+v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 8, 2, 8},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
