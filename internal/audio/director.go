package audio

import "github.com/tomz197/asteroids-classic/internal/game"

// Director turns each tick's game events into sounds and keeps the
// background beat in step with the level.
type Director struct {
	player Player
	beat   *Beat
}

// NewDirector creates a director for a session ticking at tickRate.
func NewDirector(p Player, tickRate int) *Director {
	if p == nil {
		p = Nop{}
	}
	return &Director{player: p, beat: NewBeat(tickRate)}
}

// Update handles one tick's events and advances the beat.
func (d *Director) Update(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventLaserFired:
			d.player.PlayLaserFire()
		case game.EventShipExploded:
			d.player.PlayShipExplosion()
		case game.EventThrustStarted:
			d.player.PlayThrust()
		case game.EventThrustStopped:
			d.player.StopThrust()
		case game.EventAsteroidDestroyed:
			// Ship collisions destroy asteroids too and get the same hit.
			d.player.PlayLaserHit()
			d.beat.SetRatio(e.BeatRatio)
			d.player.SetBeatTempo(e.BeatRatio)
		case game.EventLevelStarted:
			d.fullTempo()
		case game.EventGameOver:
			d.player.StopThrust()
			d.fullTempo()
		}
	}

	if play, high := d.beat.Tick(); play {
		d.player.PlayBeat(high)
	}
}

// fullTempo slows the beat back to one pulse per second without
// restarting it.
func (d *Director) fullTempo() {
	d.beat.SetRatio(1)
	d.player.SetBeatTempo(1)
}
