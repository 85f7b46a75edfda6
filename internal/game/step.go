package game

import (
	"math"

	"github.com/tomz197/asteroids-classic/internal/physics"
)

// step integrates every entity by one tick. Collisions run afterwards on
// the moved positions.
func (s *Session) step() {
	ship := &s.Ship
	exploding := ship.Exploding()
	rate := float64(s.cfg.TickRate)
	width, height := float64(s.cfg.Width), float64(s.cfg.Height)

	s.fire()

	// Thrust or coast
	thrusting := ship.Thrusting && !ship.Dead
	if thrusting {
		ship.Thrust.X += s.cfg.ShipThrust * math.Cos(ship.Angle) / rate
		ship.Thrust.Y -= s.cfg.ShipThrust * math.Sin(ship.Angle) / rate
	} else {
		ship.Thrust.X -= s.cfg.ShipFriction * ship.Thrust.X / rate
		ship.Thrust.Y -= s.cfg.ShipFriction * ship.Thrust.Y / rate
	}
	s.trackThrust(thrusting)

	// Move, or count the explosion down
	if !exploding {
		if !ship.Dead {
			ship.Angle += ship.Rotation
			ship.X += ship.Thrust.X
			ship.Y += ship.Thrust.Y
		}
	} else {
		ship.ExplosionTime--
		if ship.ExplosionTime == 0 {
			s.loseLife() // may replace the ship
		}
	}

	ship.X = physics.Wrap(ship.X, width, ship.Radius)
	ship.Y = physics.Wrap(ship.Y, height, ship.Radius)

	s.stepLasers(width, height)

	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		a.Advance()
		a.X = physics.Wrap(a.X, width, a.Radius)
		a.Y = physics.Wrap(a.Y, height, a.Radius)
	}

	// Invulnerability blink
	if !exploding && ship.BlinkNumber > 0 {
		ship.BlinkTime--
		if ship.BlinkTime <= 0 {
			ship.BlinkTime = s.cfg.BlinkTicks()
			ship.BlinkNumber--
		}
	}
}

// fire spawns a laser for a pending fire request.
func (s *Session) fire() {
	if !s.fireRequested {
		return
	}
	s.fireRequested = false

	ship := &s.Ship
	if ship.Dead || len(ship.Lasers) >= s.cfg.LaserMax {
		return
	}
	ship.Lasers = append(ship.Lasers, s.factory.NewLaser(ship))
	s.emit(Event{Type: EventLaserFired})
}

// stepLasers expires, moves and wraps the ship's lasers, compacting in place.
func (s *Session) stepLasers(width, height float64) {
	maxDistance := s.cfg.LaserRange()
	kept := s.Ship.Lasers[:0]
	for _, l := range s.Ship.Lasers {
		if l.Distance > maxDistance {
			continue
		}
		if l.Exploding() {
			l.ExplosionTime--
			if l.ExplosionTime == 0 {
				continue
			}
		} else {
			l.Advance()
		}
		l.X = physics.WrapEdge(l.X, width)
		l.Y = physics.WrapEdge(l.Y, height)
		kept = append(kept, l)
	}
	clear(s.Ship.Lasers[len(kept):])
	s.Ship.Lasers = kept
}

// trackThrust emits an event when the engine turns on or off.
func (s *Session) trackThrust(on bool) {
	if on == s.wasThrusting {
		return
	}
	s.wasThrusting = on
	if on {
		s.emit(Event{Type: EventThrustStarted})
	} else {
		s.emit(Event{Type: EventThrustStopped})
	}
}
