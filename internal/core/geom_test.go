package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "above the playfield",
			a:        NewRectF(0, 0, 1200, 675),
			b:        NewRectF(100, -5, 2, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAnchors(t *testing.T) {
	r := RectCenteredAt(600, 300, 60, 40)
	if r.X != 570 || r.Y != 280 {
		t.Errorf("RectCenteredAt() origin = (%v, %v), expected (570, 280)", r.X, r.Y)
	}

	mb := RectMidBottomAt(100, 0, 40, 30)
	if mb.Bottom() != 0 || mb.CenterX() != 100 {
		t.Errorf("RectMidBottomAt() bottom=%v centerX=%v, expected 0 and 100", mb.Bottom(), mb.CenterX())
	}

	x, y := r.MidTop()
	if x != 600 || y != 280 {
		t.Errorf("MidTop() = (%v, %v), expected (600, 280)", x, y)
	}
	x, y = r.MidBottom()
	if x != 600 || y != 320 {
		t.Errorf("MidBottom() = (%v, %v), expected (600, 320)", x, y)
	}
}

func TestRectOrigin(t *testing.T) {
	tests := []struct {
		r      RectF
		ex, ey int
	}{
		{NewRectF(1.9, 2.1, 1, 1), 1, 2},
		{NewRectF(-0.5, -3.2, 1, 1), -1, -4},
	}
	for _, tc := range tests {
		x, y := tc.r.Origin()
		if x != tc.ex || y != tc.ey {
			t.Errorf("Origin() = (%d, %d), expected (%d, %d)", x, y, tc.ex, tc.ey)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{1140.2, 0, 1140, 1140},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
