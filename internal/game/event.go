package game

import "github.com/tomz197/asteroids-classic/internal/object"

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventLaserFired EventType = iota
	EventLaserHit
	EventAsteroidDestroyed
	EventShipExploded
	EventShipRespawned
	EventLifeLost
	EventGameOver
	EventNewGame
	EventLevelCleared
	EventLevelStarted
	EventHighScore
	EventThrustStarted
	EventThrustStopped
	EventPhaseChanged
)

var eventNames = [...]string{
	EventLaserFired:        "LaserFired",
	EventLaserHit:          "LaserHit",
	EventAsteroidDestroyed: "AsteroidDestroyed",
	EventShipExploded:      "ShipExploded",
	EventShipRespawned:     "ShipRespawned",
	EventLifeLost:          "LifeLost",
	EventGameOver:          "GameOver",
	EventNewGame:           "NewGame",
	EventLevelCleared:      "LevelCleared",
	EventLevelStarted:      "LevelStarted",
	EventHighScore:         "HighScore",
	EventThrustStarted:     "ThrustStarted",
	EventThrustStopped:     "ThrustStopped",
	EventPhaseChanged:      "PhaseChanged",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[t]
}

// Event is a notification emitted by a tick for audio, rendering and logging.
// Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	Size      object.AsteroidSize // LaserHit, AsteroidDestroyed
	Points    int                 // AsteroidDestroyed
	BeatRatio float64             // AsteroidDestroyed: remaining/total, 1 when none remain
	Level     int                 // LevelCleared, LevelStarted
	Score     int                 // HighScore, GameOver
	Lives     int                 // LifeLost
	From, To  Phase               // PhaseChanged
}
