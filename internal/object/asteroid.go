package object

import "math"

// AsteroidSize represents the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Fragment returns the tier produced when an asteroid of this tier splits.
// ok is false for the smallest tier, which does not split.
func (s AsteroidSize) Fragment() (AsteroidSize, bool) {
	if s <= AsteroidSmall {
		return 0, false
	}
	return s - 1, true
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y    float64      // Position (center)
	VX, VY  float64      // Velocity per tick
	Angle   float64      // Rotation of the outline
	Size    AsteroidSize // Size tier
	Radius  float64      // Collision/draw radius
	Offsets []float64    // Per-vertex radius multipliers, fixed for the asteroid's lifetime

	destroyed bool // Marked for removal at the end of collision resolution
}

// Advance moves the asteroid one tick.
func (a *Asteroid) Advance() {
	a.X += a.VX
	a.Y += a.VY
}

// Outline writes the polygon vertices into buf (grown if needed) and returns it.
func (a *Asteroid) Outline(buf []Vector) []Vector {
	n := len(a.Offsets)
	if cap(buf) < n {
		buf = make([]Vector, n)
	}
	buf = buf[:n]
	for i, off := range a.Offsets {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(n)
		buf[i] = Vector{
			X: a.X + a.Radius*off*math.Cos(vertAngle),
			Y: a.Y + a.Radius*off*math.Sin(vertAngle),
		}
	}
	return buf
}

// MarkDestroyed marks the asteroid for removal.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
