package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := DistanceSquared(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestCircleTests(t *testing.T) {
	if !CirclesOverlap(0, 0, 10, 15, 0, 6) {
		t.Error("circles 15 apart with radii 10+6 should overlap")
	}
	if CirclesOverlap(0, 0, 10, 16, 0, 6) {
		t.Error("touching circles must not count as overlapping")
	}
	if !PointInCircle(3, 0, 0, 0, 5) {
		t.Error("point inside circle not detected")
	}
	if PointInCircle(5, 0, 0, 0, 5) {
		t.Error("point on the boundary must not count as inside")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, bound, margin, want float64
	}{
		{-16, 800, 15, 815},
		{816, 800, 15, -15},
		{-15, 800, 15, -15},
		{815, 800, 15, 815},
		{400, 800, 15, 400},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.bound, tt.margin); got != tt.want {
			t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.v, tt.bound, tt.margin, got, tt.want)
		}
	}
}

func TestWrapEdge(t *testing.T) {
	if got := WrapEdge(-0.5, 600); got != 600 {
		t.Errorf("WrapEdge(-0.5) = %v, want 600", got)
	}
	if got := WrapEdge(600.5, 600); got != 0 {
		t.Errorf("WrapEdge(600.5) = %v, want 0", got)
	}
	if got := WrapEdge(0, 600); got != 0 || math.Signbit(got) {
		t.Errorf("WrapEdge(0) = %v, want 0", got)
	}
}
