package game

import (
	"github.com/tomz197/asteroids-classic/internal/object"
	"github.com/tomz197/asteroids-classic/internal/physics"
)

// collide resolves ship and laser hits on the post-move positions.
func (s *Session) collide() {
	s.checkShipCollision()
	s.checkLaserCollisions()
}

// checkShipCollision explodes a vulnerable ship on the first asteroid it
// touches. At most one ship collision is handled per tick.
func (s *Session) checkShipCollision() {
	ship := &s.Ship
	if ship.Exploding() || ship.Invulnerable() || ship.Dead {
		return
	}

	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		if physics.CirclesOverlap(ship.X, ship.Y, ship.Radius, a.X, a.Y, a.Radius) {
			s.ExplodeShip()
			s.destroyAsteroid(a)
			break
		}
	}
	s.sweepAsteroids()
}

// checkLaserCollisions scans asteroids and then lasers from the back.
// Each asteroid is removed by at most one laser and each laser hits at most
// one asteroid, since a laser that hit is exploding. Split products are
// held back until the scan finishes, so they cannot be hit in the tick they
// are born.
func (s *Session) checkLaserCollisions() {
	lasers := s.Ship.Lasers
	for i := len(s.Asteroids) - 1; i >= 0; i-- {
		a := &s.Asteroids[i]
		for j := len(lasers) - 1; j >= 0; j-- {
			l := &lasers[j]
			if l.Exploding() || !physics.PointInCircle(l.X, l.Y, a.X, a.Y, a.Radius) {
				continue
			}
			l.ExplosionTime = s.cfg.LaserExplosionTicks()
			s.emit(Event{Type: EventLaserHit, Size: a.Size})
			s.destroyAsteroid(a)
			break
		}
	}
	s.sweepAsteroids()
}

// destroyAsteroid splits and scores an asteroid and marks it for removal.
func (s *Session) destroyAsteroid(a *object.Asteroid) {
	a.MarkDestroyed()

	if fragment, ok := a.Size.Fragment(); ok {
		for range 2 {
			s.spawned = append(s.spawned, s.factory.NewAsteroid(a.X, a.Y, fragment, s.Level))
		}
	}

	points := s.asteroidScore(a.Size)
	s.Score += points
	s.recordScore()

	s.AsteroidsRemaining--
	ratio := 1.0
	if s.AsteroidsRemaining > 0 && s.AsteroidsTotal > 0 {
		ratio = float64(s.AsteroidsRemaining) / float64(s.AsteroidsTotal)
	}
	s.emit(Event{Type: EventAsteroidDestroyed, Size: a.Size, Points: points, BeatRatio: ratio})
}

// sweepAsteroids drops destroyed asteroids, appends split products and
// starts the next level when nothing is left.
func (s *Session) sweepAsteroids() {
	removed := 0
	kept := s.Asteroids[:0]
	for _, a := range s.Asteroids {
		if a.IsDestroyed() {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	clear(s.Asteroids[len(kept):])
	s.Asteroids = append(kept, s.spawned...)
	clear(s.spawned)
	s.spawned = s.spawned[:0]

	if removed > 0 && len(s.Asteroids) == 0 {
		s.nextLevel()
	}
}

// asteroidScore returns the score for destroying an asteroid of the given size.
func (s *Session) asteroidScore(size object.AsteroidSize) int {
	switch size {
	case object.AsteroidLarge:
		return s.cfg.ScoreLarge
	case object.AsteroidMedium:
		return s.cfg.ScoreMedium
	case object.AsteroidSmall:
		return s.cfg.ScoreSmall
	default:
		return 0
	}
}
