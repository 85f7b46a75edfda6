// Package audio synthesizes the game's sound effects and background beat.
package audio

// Player plays the game's sounds. Implementations must not block the tick.
type Player interface {
	PlayLaserFire()
	PlayLaserHit()
	PlayShipExplosion()
	PlayThrust()
	StopThrust()
	PlayBeat(high bool)
	SetBeatTempo(ratio float64)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) PlayLaserFire()       {}
func (Nop) PlayLaserHit()        {}
func (Nop) PlayShipExplosion()   {}
func (Nop) PlayThrust()          {}
func (Nop) StopThrust()          {}
func (Nop) PlayBeat(bool)        {}
func (Nop) SetBeatTempo(float64) {}
func (Nop) Close()               {}
