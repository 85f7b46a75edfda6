package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Playfield
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultTickRate = 30 // ticks per second
)

// Player
const (
	DefaultPlayerLives            = 3
	DefaultShipSize               = 30.0 // pixels
	DefaultShipTurnSpeed          = 360.0 // degrees per second
	DefaultShipThrust             = 5.0   // pixels per second²
	DefaultShipFriction           = 0.7   // 0 = none, 1 = lots
	DefaultShipExplosionSeconds   = 0.3
	DefaultShipBlinkSeconds       = 0.1
	DefaultInvulnerabilitySeconds = 3.0
)

// Asteroids
const (
	DefaultAsteroidCount      = 3
	DefaultAsteroidSpeed      = 50.0  // max pixels per second at level 0
	DefaultAsteroidSize       = 100.0 // diameter of a large asteroid in pixels
	DefaultAsteroidVertices   = 10
	DefaultAsteroidRandomness = 0.4
)

// Lasers
const (
	DefaultLaserMax              = 10
	DefaultLaserSpeed            = 500.0 // pixels per second
	DefaultLaserMaxDistance      = 0.4   // fraction of playfield width
	DefaultLaserExplosionSeconds = 0.1
)

// Text and scoring
const (
	DefaultTextFadeSeconds = 2.5
	DefaultScoreLarge      = 20
	DefaultScoreMedium     = 50
	DefaultScoreSmall      = 100
)

// DefaultHighScorePath is where the high score is kept unless overridden.
const DefaultHighScorePath = "asteroids.highscore"

// Config holds every tunable of a game session. It is fixed at process start.
type Config struct {
	Width    int
	Height   int
	TickRate int

	PlayerLives            int
	ShipSize               float64
	ShipTurnSpeed          float64
	ShipThrust             float64
	ShipFriction           float64
	ShipExplosionSeconds   float64
	ShipBlinkSeconds       float64
	InvulnerabilitySeconds float64

	AsteroidCount      int
	AsteroidSpeed      float64
	AsteroidSize       float64
	AsteroidVertices   int
	AsteroidRandomness float64

	LaserMax              int
	LaserSpeed            float64
	LaserMaxDistance      float64
	LaserExplosionSeconds float64

	TextFadeSeconds float64

	ScoreLarge  int
	ScoreMedium int
	ScoreSmall  int

	AudioEnabled  bool
	HighScorePath string // empty keeps the high score in memory only
	LogLevel      string
}

// Default returns the classic arcade tuning.
func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TickRate: DefaultTickRate,

		PlayerLives:            DefaultPlayerLives,
		ShipSize:               DefaultShipSize,
		ShipTurnSpeed:          DefaultShipTurnSpeed,
		ShipThrust:             DefaultShipThrust,
		ShipFriction:           DefaultShipFriction,
		ShipExplosionSeconds:   DefaultShipExplosionSeconds,
		ShipBlinkSeconds:       DefaultShipBlinkSeconds,
		InvulnerabilitySeconds: DefaultInvulnerabilitySeconds,

		AsteroidCount:      DefaultAsteroidCount,
		AsteroidSpeed:      DefaultAsteroidSpeed,
		AsteroidSize:       DefaultAsteroidSize,
		AsteroidVertices:   DefaultAsteroidVertices,
		AsteroidRandomness: DefaultAsteroidRandomness,

		LaserMax:              DefaultLaserMax,
		LaserSpeed:            DefaultLaserSpeed,
		LaserMaxDistance:      DefaultLaserMaxDistance,
		LaserExplosionSeconds: DefaultLaserExplosionSeconds,

		TextFadeSeconds: DefaultTextFadeSeconds,

		ScoreLarge:  DefaultScoreLarge,
		ScoreMedium: DefaultScoreMedium,
		ScoreSmall:  DefaultScoreSmall,

		AudioEnabled:  true,
		HighScorePath: DefaultHighScorePath,
		LogLevel:      "info",
	}
}

// Load builds a Config from the defaults, an optional .env file and
// ASTEROIDS_* environment variables, then validates it.
// An empty envFile skips the .env step.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ASTEROIDS_WIDTH", &c.Width},
		{"ASTEROIDS_HEIGHT", &c.Height},
		{"ASTEROIDS_TICK_RATE", &c.TickRate},
		{"ASTEROIDS_LIVES", &c.PlayerLives},
		{"ASTEROIDS_ASTEROID_COUNT", &c.AsteroidCount},
		{"ASTEROIDS_ASTEROID_VERTICES", &c.AsteroidVertices},
		{"ASTEROIDS_LASER_MAX", &c.LaserMax},
		{"ASTEROIDS_SCORE_LARGE", &c.ScoreLarge},
		{"ASTEROIDS_SCORE_MEDIUM", &c.ScoreMedium},
		{"ASTEROIDS_SCORE_SMALL", &c.ScoreSmall},
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"ASTEROIDS_SHIP_SIZE", &c.ShipSize},
		{"ASTEROIDS_SHIP_TURN_SPEED", &c.ShipTurnSpeed},
		{"ASTEROIDS_SHIP_THRUST", &c.ShipThrust},
		{"ASTEROIDS_SHIP_FRICTION", &c.ShipFriction},
		{"ASTEROIDS_SHIP_EXPLOSION_SECONDS", &c.ShipExplosionSeconds},
		{"ASTEROIDS_SHIP_BLINK_SECONDS", &c.ShipBlinkSeconds},
		{"ASTEROIDS_INVULNERABILITY_SECONDS", &c.InvulnerabilitySeconds},
		{"ASTEROIDS_ASTEROID_SPEED", &c.AsteroidSpeed},
		{"ASTEROIDS_ASTEROID_SIZE", &c.AsteroidSize},
		{"ASTEROIDS_ASTEROID_RANDOMNESS", &c.AsteroidRandomness},
		{"ASTEROIDS_LASER_SPEED", &c.LaserSpeed},
		{"ASTEROIDS_LASER_MAX_DISTANCE", &c.LaserMaxDistance},
		{"ASTEROIDS_LASER_EXPLOSION_SECONDS", &c.LaserExplosionSeconds},
		{"ASTEROIDS_TEXT_FADE_SECONDS", &c.TextFadeSeconds},
	}

	var errs []error
	for _, f := range ints {
		v, err := envInt(f.key, *f.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = v
	}
	for _, f := range floats {
		v, err := envFloat(f.key, *f.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = v
	}

	audio, err := envBool("ASTEROIDS_AUDIO", c.AudioEnabled)
	if err != nil {
		errs = append(errs, err)
	}
	c.AudioEnabled = audio
	c.HighScorePath = GetEnv("ASTEROIDS_HIGHSCORE_PATH", c.HighScorePath)
	c.LogLevel = GetEnv("ASTEROIDS_LOG_LEVEL", c.LogLevel)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "playfield %dx%d must be positive", c.Width, c.Height)
	check(c.TickRate > 0, "tick rate %d must be positive", c.TickRate)
	check(c.PlayerLives > 0, "player lives %d must be positive", c.PlayerLives)
	check(c.ShipSize > 0, "ship size %v must be positive", c.ShipSize)
	check(c.ShipTurnSpeed >= 0, "ship turn speed %v must not be negative", c.ShipTurnSpeed)
	check(c.ShipThrust >= 0, "ship thrust %v must not be negative", c.ShipThrust)
	check(c.ShipFriction >= 0 && c.ShipFriction <= float64(c.TickRate),
		"ship friction %v must be within [0, tick rate]", c.ShipFriction)
	check(c.ShipExplosionSeconds > 0, "ship explosion duration %v must be positive", c.ShipExplosionSeconds)
	check(c.ShipBlinkSeconds > 0, "ship blink duration %v must be positive", c.ShipBlinkSeconds)
	check(c.InvulnerabilitySeconds >= 0, "invulnerability duration %v must not be negative", c.InvulnerabilitySeconds)
	check(c.AsteroidCount >= 0, "asteroid count %d must not be negative", c.AsteroidCount)
	check(c.AsteroidSpeed >= 0, "asteroid speed %v must not be negative", c.AsteroidSpeed)
	check(c.AsteroidSize > 0, "asteroid size %v must be positive", c.AsteroidSize)
	check(c.AsteroidVertices >= 3, "asteroid vertices %d must be at least 3", c.AsteroidVertices)
	check(c.AsteroidRandomness >= 0 && c.AsteroidRandomness < 1,
		"asteroid randomness %v must be within [0, 1)", c.AsteroidRandomness)
	check(c.LaserMax >= 0, "laser max %d must not be negative", c.LaserMax)
	check(c.LaserSpeed > 0, "laser speed %v must be positive", c.LaserSpeed)
	check(c.LaserMaxDistance > 0, "laser max distance %v must be positive", c.LaserMaxDistance)
	check(c.LaserExplosionSeconds > 0, "laser explosion duration %v must be positive", c.LaserExplosionSeconds)
	check(c.TextFadeSeconds > 0, "text fade duration %v must be positive", c.TextFadeSeconds)
	check(c.ScoreLarge >= 0 && c.ScoreMedium >= 0 && c.ScoreSmall >= 0, "score values must not be negative")

	// Level spawning rejection-samples positions away from the centred ship.
	if c.Width > 0 && c.Height > 0 && c.ShipSize > 0 && c.AsteroidSize > 0 {
		halfDiagonal := math.Hypot(float64(c.Width), float64(c.Height)) / 2
		check(c.SpawnClearance() < halfDiagonal,
			"playfield %dx%d too small for spawn clearance %v", c.Width, c.Height, c.SpawnClearance())
	}

	return errors.Join(errs...)
}

// Ticks converts a duration in seconds to a whole number of ticks, rounding up.
func (c Config) Ticks(seconds float64) int {
	// Absorbs float noise such as 0.3*30 = 9.000000000000002.
	return int(math.Ceil(seconds*float64(c.TickRate) - 1e-9))
}

// ShipRadius is the collision radius of the ship.
func (c Config) ShipRadius() float64 {
	return c.ShipSize / 2
}

// TurnRate is the ship's rotation in radians per tick while a turn key is held.
func (c Config) TurnRate() float64 {
	return c.ShipTurnSpeed / 180 * math.Pi / float64(c.TickRate)
}

// BlinkTicks is the length of one invulnerability blink.
func (c Config) BlinkTicks() int {
	return c.Ticks(c.ShipBlinkSeconds)
}

// BlinkCount is the number of blinks in the invulnerability window.
func (c Config) BlinkCount() int {
	return int(math.Ceil(c.InvulnerabilitySeconds/c.ShipBlinkSeconds - 1e-9))
}

// ExplosionTicks is how long the ship explodes before a life is lost.
func (c Config) ExplosionTicks() int {
	return c.Ticks(c.ShipExplosionSeconds)
}

// LaserExplosionTicks is how long a laser lingers after a hit.
func (c Config) LaserExplosionTicks() int {
	return c.Ticks(c.LaserExplosionSeconds)
}

// LaserRange is the distance after which a laser is discarded.
func (c Config) LaserRange() float64 {
	return c.LaserMaxDistance * float64(c.Width)
}

// FadeStep is the banner alpha lost per tick.
func (c Config) FadeStep() float64 {
	return 1.0 / c.TextFadeSeconds / float64(c.TickRate)
}

// LargeRadius, MediumRadius and SmallRadius are the asteroid tier radii.
func (c Config) LargeRadius() float64  { return math.Ceil(c.AsteroidSize / 2) }
func (c Config) MediumRadius() float64 { return math.Ceil(c.AsteroidSize / 4) }
func (c Config) SmallRadius() float64  { return math.Ceil(c.AsteroidSize / 8) }

// SpawnClearance is the minimum distance between the ship and a level asteroid.
func (c Config) SpawnClearance() float64 {
	return c.AsteroidSize*2 + c.ShipRadius()
}
