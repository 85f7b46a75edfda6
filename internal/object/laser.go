package object

import "math"

// Laser is a shot fired by the ship.
type Laser struct {
	X, Y          float64 // Position
	VX, VY        float64 // Velocity per tick (screen space, +Y down)
	Distance      float64 // Distance travelled so far
	ExplosionTime int     // Ticks of hit explosion remaining, 0 = flying
}

// Exploding reports whether the laser has hit something and is fading out.
func (l *Laser) Exploding() bool {
	return l.ExplosionTime > 0
}

// Advance moves the laser one tick and accumulates its travelled distance.
func (l *Laser) Advance() {
	l.X += l.VX
	l.Y += l.VY
	l.Distance += math.Hypot(l.VX, l.VY)
}
