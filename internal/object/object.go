// Package object defines the fixed-shape game entities and the factory that
// creates them.
package object

// Vector is a 2D velocity or offset in playfield pixels per tick.
type Vector struct {
	X, Y float64
}

// BlinkVisible reports whether an entity with the given remaining blink
// count should be drawn this frame. Even counts are visible, so a ship that
// has finished blinking (count 0) is always shown.
func BlinkVisible(blinkNumber int) bool {
	return blinkNumber%2 == 0
}
