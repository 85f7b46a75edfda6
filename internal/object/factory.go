package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/physics"
)

// maxSpawnAttempts bounds rejection sampling of level asteroid positions.
// Validate guarantees a valid spot exists, so this is only hit on a very
// unlucky stream of draws; the farthest candidate is used then.
const maxSpawnAttempts = 1000

// Factory creates entities with their initial kinematic state.
// All randomness comes from the injected source so games are reproducible.
type Factory struct {
	cfg config.Config
	rng *rand.Rand
}

// NewFactory creates a factory. A nil rng gets a randomly seeded source.
func NewFactory(cfg config.Config, rng *rand.Rand) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Factory{cfg: cfg, rng: rng}
}

// NewShip creates a ship at the centre of the playfield, pointing up and
// invulnerable for the configured window.
func (f *Factory) NewShip() Ship {
	return Ship{
		X:            float64(f.cfg.Width) / 2,
		Y:            float64(f.cfg.Height) / 2,
		Radius:       f.cfg.ShipRadius(),
		Angle:        math.Pi / 2,
		BlinkTime:    f.cfg.BlinkTicks(),
		BlinkNumber:  f.cfg.BlinkCount(),
		ShootAllowed: true,
	}
}

// Radius returns the collision radius for an asteroid tier.
func (f *Factory) Radius(size AsteroidSize) float64 {
	switch size {
	case AsteroidLarge:
		return f.cfg.LargeRadius()
	case AsteroidMedium:
		return f.cfg.MediumRadius()
	default:
		return f.cfg.SmallRadius()
	}
}

// NewAsteroid creates an asteroid of the given tier at (x, y). Its speed
// scales with the level and its jagged outline is drawn once here.
func (f *Factory) NewAsteroid(x, y float64, size AsteroidSize, level int) Asteroid {
	difficulty := 1 + 0.1*float64(level)
	maxSpeed := f.cfg.AsteroidSpeed * difficulty / float64(f.cfg.TickRate)

	a := Asteroid{
		X:      x,
		Y:      y,
		VX:     f.rng.Float64() * maxSpeed * f.sign(),
		VY:     f.rng.Float64() * maxSpeed * f.sign(),
		Size:   size,
		Radius: f.Radius(size),
		Angle:  f.rng.Float64() * 2 * math.Pi,
	}

	// Between half and one and a half times the average vertex count.
	avg := float64(f.cfg.AsteroidVertices)
	numVerts := max(int(math.Floor(f.rng.Float64()*(avg+1)+avg/2)), 3)
	randomness := f.cfg.AsteroidRandomness
	a.Offsets = make([]float64, numVerts)
	for i := range a.Offsets {
		a.Offsets[i] = f.rng.Float64()*randomness*2 + 1 - randomness
	}
	return a
}

// NewLaser creates a laser leaving the ship's nose along its heading.
func (f *Factory) NewLaser(s *Ship) Laser {
	x, y := s.Nose()
	speed := f.cfg.LaserSpeed / float64(f.cfg.TickRate)
	return Laser{
		X:  x,
		Y:  y,
		VX: speed * math.Cos(s.Angle),
		VY: -speed * math.Sin(s.Angle),
	}
}

// LevelAsteroids creates the large asteroids for a level, none of them
// within the spawn clearance of the ship.
func (f *Factory) LevelAsteroids(level int, shipX, shipY float64) []Asteroid {
	count := f.cfg.AsteroidCount + level
	asteroids := make([]Asteroid, 0, count)
	for range count {
		x, y := f.spawnPoint(shipX, shipY)
		asteroids = append(asteroids, f.NewAsteroid(x, y, AsteroidLarge, level))
	}
	return asteroids
}

// spawnPoint draws whole-pixel positions until one is clear of the ship.
func (f *Factory) spawnPoint(shipX, shipY float64) (float64, float64) {
	clearance := f.cfg.SpawnClearance()
	var bestX, bestY, bestDist float64
	for range maxSpawnAttempts {
		x := float64(f.rng.IntN(f.cfg.Width))
		y := float64(f.rng.IntN(f.cfg.Height))
		d := physics.Distance(shipX, shipY, x, y)
		if d >= clearance {
			return x, y
		}
		if d > bestDist {
			bestX, bestY, bestDist = x, y, d
		}
	}
	return bestX, bestY
}

func (f *Factory) sign() float64 {
	if f.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
