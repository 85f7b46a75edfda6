package game

import "fmt"

// Phase is the coarse game state derived from the session each tick.
type Phase int

const (
	PhaseSpawning      Phase = iota // New game or level, banner shown
	PhasePlaying                    // Normal play
	PhaseShipExploding              // Ship destroyed, explosion counting down
	PhaseRespawning                 // Fresh ship, invulnerable while blinking
	PhaseGameOver                   // No lives left until the banner fades
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "Spawning"
	case PhasePlaying:
		return "Playing"
	case PhaseShipExploding:
		return "ShipExploding"
	case PhaseRespawning:
		return "Respawning"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Phase reports the current state. Earlier cases take precedence: a dead
// ship is game over even while the banner shows, and an explosion outranks
// the level banner.
func (s *Session) Phase() Phase {
	switch {
	case s.Ship.Dead:
		return PhaseGameOver
	case s.Ship.Exploding():
		return PhaseShipExploding
	case s.Banner.Visible():
		return PhaseSpawning
	case s.Ship.Invulnerable():
		return PhaseRespawning
	default:
		return PhasePlaying
	}
}

// trackPhase emits PhaseChanged when the derived phase moved this tick.
func (s *Session) trackPhase() {
	p := s.Phase()
	if p != s.phase {
		s.emit(Event{Type: EventPhaseChanged, From: s.phase, To: p})
		s.phase = p
	}
}

// ExplodeShip starts the ship explosion. It does nothing if the ship is
// already exploding or dead.
func (s *Session) ExplodeShip() {
	if s.Ship.Exploding() || s.Ship.Dead {
		return
	}
	s.Ship.ExplosionTime = s.cfg.ExplosionTicks()
	s.emit(Event{Type: EventShipExploded})
}

// loseLife runs when an explosion finishes.
func (s *Session) loseLife() {
	s.Lives--
	s.emit(Event{Type: EventLifeLost, Lives: s.Lives})

	if s.Lives <= 0 {
		s.gameOver()
		return
	}

	s.Ship = s.factory.NewShip()
	s.fireRequested = false
	s.emit(Event{Type: EventShipRespawned})
}

func (s *Session) gameOver() {
	s.Ship.Dead = true
	s.Banner.Show("Game Over")
	s.emit(Event{Type: EventGameOver, Score: s.Score})
	s.logger.Info("game over", "score", s.Score, "level", s.Level+1, "highscore", s.HighScore)
}

// newGame resets lives, score and level. The high score is kept.
func (s *Session) newGame() {
	s.Lives = s.cfg.PlayerLives
	s.Score = 0
	s.Level = 0
	s.Ship = s.factory.NewShip()
	s.fireRequested = false
	s.startLevel()
	s.emit(Event{Type: EventNewGame})
}

// startLevel shows the level banner and spawns the level's asteroids around
// the ship's current position. The ship itself is left alone.
func (s *Session) startLevel() {
	s.Banner.Show(fmt.Sprintf("Level %d", s.Level+1))
	s.Asteroids = s.factory.LevelAsteroids(s.Level, s.Ship.X, s.Ship.Y)

	// Each large asteroid accounts for itself, two mediums and four smalls.
	s.AsteroidsTotal = (s.cfg.AsteroidCount + s.Level) * 7
	s.AsteroidsRemaining = s.AsteroidsTotal
	s.emit(Event{Type: EventLevelStarted, Level: s.Level})
}

func (s *Session) nextLevel() {
	s.emit(Event{Type: EventLevelCleared, Level: s.Level})
	s.Level++
	s.startLevel()
}

// fadeBanner fades the banner and restarts the game once the game-over
// banner has gone.
func (s *Session) fadeBanner() {
	if !s.Banner.Fade(s.cfg.FadeStep()) && s.Ship.Dead {
		s.newGame()
	}
}
