package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	beatLowHz  = 55.0
	beatHighHz = 62.0
)

// BeepPlayer plays synthesized sounds on the system speaker.
// All sounds are fed through one mixer; the thrust rumble is a looping
// noise stream that is paused while the engine is off.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	thrust *beep.Ctrl
	closed bool
}

// NewBeepPlayer opens the speaker and starts the mixer.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &BeepPlayer{
		mixer:  &beep.Mixer{},
		thrust: &beep.Ctrl{Streamer: thrustSound(), Paused: true},
	}
	p.mixer.Add(p.thrust)
	speaker.Play(p.mixer)
	return p, nil
}

func (p *BeepPlayer) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *BeepPlayer) setThrust(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.thrust.Paused = paused
	speaker.Unlock()
}

func (p *BeepPlayer) PlayLaserFire()     { p.add(laserSound()) }
func (p *BeepPlayer) PlayLaserHit()      { p.add(laserHitSound()) }
func (p *BeepPlayer) PlayShipExplosion() { p.add(explosionSound()) }
func (p *BeepPlayer) PlayThrust()        { p.setThrust(false) }
func (p *BeepPlayer) StopThrust()        { p.setThrust(true) }

// PlayBeat plays one pulse of the background beat.
func (p *BeepPlayer) PlayBeat(high bool) {
	freq := beatLowHz
	if high {
		freq = beatHighHz
	}
	s, err := tone(freq, 100*time.Millisecond, 0.5)
	if err != nil {
		return
	}
	p.add(s)
}

// SetBeatTempo is a no-op: beat timing is tick-driven by the Director.
func (p *BeepPlayer) SetBeatTempo(float64) {}

// Close silences the mixer. The speaker itself stays open, as beep
// allows only one speaker per process.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.thrust.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
}
