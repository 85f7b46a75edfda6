// Package game implements the fixed-tick simulation: ship and asteroid
// physics, collisions, scoring and the level/life state machine.
package game

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/object"
)

// HighScoreStore persists the best score across processes.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Options configures a Session. All fields are optional.
type Options struct {
	Store  HighScoreStore // nil keeps the high score in memory only
	Rand   *rand.Rand     // nil seeds randomly
	Logger *log.Logger    // nil uses log.Default()
}

// Session owns all state of one single-player game.
// It is not safe for concurrent use; one driver calls Tick at a fixed rate.
type Session struct {
	cfg     config.Config
	factory *object.Factory
	store   HighScoreStore
	logger  *log.Logger

	Ship      object.Ship
	Asteroids []object.Asteroid
	Banner    object.Banner

	Level     int // 0-based
	Lives     int
	Score     int
	HighScore int

	// Beat ratio bookkeeping: total counts every fragment a level can produce.
	AsteroidsTotal     int
	AsteroidsRemaining int

	Ticks uint64

	fireRequested bool
	wasThrusting  bool
	phase         Phase
	spawned       []object.Asteroid // split products waiting to join Asteroids
	events        []Event
}

// NewSession loads the high score and starts a new game.
func NewSession(cfg config.Config, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		cfg:     cfg,
		factory: object.NewFactory(cfg, opts.Rand),
		store:   opts.Store,
		logger:  logger,
	}
	s.HighScore = s.loadHighScore()
	s.newGame()
	s.phase = s.Phase()
	s.events = s.events[:0]
	return s
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Tick advances the game by one fixed step and returns what happened.
// The returned slice is reused by the next Tick.
func (s *Session) Tick() []Event {
	s.events = s.events[:0]
	s.Ticks++

	s.step()
	s.collide()
	s.fadeBanner()
	s.trackPhase()

	return s.events
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	score, err := s.store.LoadHighScore()
	if err != nil {
		s.logger.Warn("high score unreadable, starting from 0", "err", err)
		return 0
	}
	return score
}

// recordScore raises and persists the high score when the score beats it.
func (s *Session) recordScore() {
	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	s.emit(Event{Type: EventHighScore, Score: s.HighScore})

	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.HighScore); err != nil {
		s.logger.Error("saving high score", "score", s.HighScore, "err", err)
	}
}

// Frame is a read-only view of the session for renderers.
// Slices alias session state and are only valid until the next Tick.
type Frame struct {
	Width, Height int

	Ship      object.Ship
	Asteroids []object.Asteroid
	Lasers    []object.Laser

	Score     int
	HighScore int
	Lives     int
	Level     int
	Banner    object.Banner
	Phase     Phase
	Tick      uint64
}

// Frame returns the current state for rendering.
func (s *Session) Frame() Frame {
	return Frame{
		Width:     s.cfg.Width,
		Height:    s.cfg.Height,
		Ship:      s.Ship,
		Asteroids: s.Asteroids,
		Lasers:    s.Ship.Lasers,
		Score:     s.Score,
		HighScore: s.HighScore,
		Lives:     s.Lives,
		Level:     s.Level,
		Banner:    s.Banner,
		Phase:     s.phase,
		Tick:      s.Ticks,
	}
}
