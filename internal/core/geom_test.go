package core

import (
	"math"
	"testing"
)

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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 80, Y: 40, W: 40, H: 20}

	if b.Right() != 120 {
		t.Errorf("Right() = %v, expected 120", b.Right())
	}
	if b.Bottom() != 60 {
		t.Errorf("Bottom() = %v, expected 60", b.Bottom())
	}
}

func TestBoxContainsAndIntersects(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 10}

	if !b.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if b.Contains(10, 5) {
		t.Error("right edge should be exclusive")
	}
	if !b.Intersects(Box{X: 9.5, Y: 9.5, W: 2, H: 2}) {
		t.Error("overlapping boxes should intersect")
	}
	if b.Intersects(Box{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("touching boxes should not intersect")
	}
}

func TestVecFromAngle(t *testing.T) {
	tests := []struct {
		deg   float64
		wantX float64
		wantY float64
	}{
		{0, 10, 0},
		{90, 0, 10},
		{180, -10, 0},
		{270, 0, -10},
	}

	for _, tc := range tests {
		v := FromAngle(tc.deg, 10)
		if math.Abs(v.X-tc.wantX) > 1e-9 || math.Abs(v.Y-tc.wantY) > 1e-9 {
			t.Errorf("FromAngle(%v, 10) = %+v, expected (%v, %v)", tc.deg, v, tc.wantX, tc.wantY)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.5, 0, 1); got != 0 {
		t.Errorf("Lerp(0.5, 0, 1) = %v, expected 0", got)
	}
	if got := Lerp(1, 2, 0.5); got != 1.5 {
		t.Errorf("Lerp(1, 2, 0.5) = %v, expected 1.5", got)
	}
}
