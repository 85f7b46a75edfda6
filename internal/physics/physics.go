// Package physics provides collision detection, distance and wraparound utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle reports whether a point lies strictly inside a circle.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Wrap teleports a coordinate that has left [-margin, bound+margin] to the
// opposite edge at the same margin. Objects are fully off screen before they
// reappear, so margin is usually the object's radius.
func Wrap(v, bound, margin float64) float64 {
	switch {
	case v < -margin:
		return bound + margin
	case v > bound+margin:
		return -margin
	default:
		return v
	}
}

// WrapEdge is Wrap with no margin: a point crossing 0 or bound jumps to the
// other edge.
func WrapEdge(v, bound float64) float64 {
	return Wrap(v, bound, 0)
}
