package object

import "math"

// Ship is the player-controlled spaceship. It owns its lasers.
type Ship struct {
	X, Y     float64 // Position (center of ship)
	Angle    float64 // Heading in radians (π/2 = pointing up, increases counter-clockwise)
	Rotation float64 // Heading change per tick requested by input
	Thrust   Vector  // Velocity in pixels per tick (screen space, +Y down)
	Radius   float64

	ExplosionTime int // Ticks of explosion remaining, 0 = alive
	BlinkTime     int // Ticks until the current blink ends
	BlinkNumber   int // Blinks remaining, > 0 = invulnerable

	Thrusting    bool
	ShootAllowed bool
	Dead         bool

	Lasers []Laser
}

// Exploding reports whether the ship is mid-explosion.
func (s *Ship) Exploding() bool {
	return s.ExplosionTime > 0
}

// Invulnerable reports whether asteroid collisions are currently ignored.
func (s *Ship) Invulnerable() bool {
	return s.BlinkNumber > 0
}

// Nose returns the tip of the ship, where lasers leave from.
func (s *Ship) Nose() (x, y float64) {
	return s.X + 4.0/3.0*s.Radius*math.Cos(s.Angle),
		s.Y - 4.0/3.0*s.Radius*math.Sin(s.Angle)
}

// Hull returns the three corners of the ship triangle: nose, rear left, rear right.
func (s *Ship) Hull() [3]Vector {
	return Hull(s.X, s.Y, s.Radius, s.Angle)
}

// Hull returns the triangle for a ship of radius r at (x, y) facing a.
// Used for the ship itself and for the lives indicator.
func Hull(x, y, r, a float64) [3]Vector {
	cos, sin := math.Cos(a), math.Sin(a)
	return [3]Vector{
		{X: x + 4.0/3.0*r*cos, Y: y - 4.0/3.0*r*sin},
		{X: x - r*(2.0/3.0*cos+sin), Y: y + r*(2.0/3.0*sin-cos)},
		{X: x - r*(2.0/3.0*cos-sin), Y: y + r*(2.0/3.0*sin+cos)},
	}
}

// Flame returns the exhaust triangle drawn behind a thrusting ship.
func (s *Ship) Flame() [3]Vector {
	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	r := s.Radius
	return [3]Vector{
		{X: s.X - r*(2.0/3.0*cos+0.5*sin), Y: s.Y + r*(2.0/3.0*sin-0.5*cos)},
		{X: s.X - r*2*cos, Y: s.Y + r*2*sin},
		{X: s.X - r*(2.0/3.0*cos-0.5*sin), Y: s.Y + r*(2.0/3.0*sin+0.5*cos)},
	}
}
