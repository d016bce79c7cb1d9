package core

import "testing"

func TestBoundsInBounds(t *testing.T) {
	b := Bounds{Position: V(-5, -3), Size: V(10, 6)}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"origin corner", V(-5, -3), true},
		{"center", V(0, 0), true},
		{"just inside upper edge", V(4.999, 2.999), true},
		{"upper x edge (exclusive)", V(5, 0), false},
		{"upper y edge (exclusive)", V(0, 3), false},
		{"left of box", V(-5.001, 0), false},
		{"above box", V(0, -3.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.InBounds(tc.p); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if got := b.Max(); got != V(5, 3) {
		t.Errorf("Max() = %v, expected (5, 3)", got)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v, expected (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v, expected (2, 2)", got)
	}
	if got := a.Half(); got != V(1.5, 2) {
		t.Errorf("Half() = %v, expected (1.5, 2)", got)
	}
	if got := V(1.7, -0.2).Floor(); got != V(1, -1) {
		t.Errorf("Floor() = %v, expected (1, -1)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"white", ColorWhite, true},
		{"Orange", ColorOrange, true},
		{"bright-red", ColorBrightRed, true},
		{"purple", ColorMagenta, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
