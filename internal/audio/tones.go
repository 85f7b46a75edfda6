package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// noise streams white noise forever.
type noise struct {
	rng *rand.Rand
}

func newNoise() *noise {
	return &noise{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// decay fades a streamer out exponentially; rate is in 1/seconds.
type decay struct {
	streamer beep.Streamer
	rate     float64
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := math.Exp(-d.rate * float64(d.pos) / float64(sampleRate))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// sweep is a sine whose frequency glides linearly from one value to another.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// volume scales a streamer linearly; 0 silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// burst is a decaying noise hit of the given length.
func burst(d time.Duration, rate, vol float64) beep.Streamer {
	return volume(beep.Take(sampleRate.N(d), &decay{streamer: newNoise(), rate: rate}), vol)
}

// tone is a short decaying sine at freq.
func tone(freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return volume(beep.Take(sampleRate.N(d), &decay{streamer: sine, rate: 12}), vol), nil
}

func laserSound() beep.Streamer {
	d := 120 * time.Millisecond
	return volume(&decay{streamer: &sweep{from: 1400, to: 300, total: sampleRate.N(d)}, rate: 10}, 0.25)
}

func laserHitSound() beep.Streamer {
	return burst(150*time.Millisecond, 25, 0.35)
}

func explosionSound() beep.Streamer {
	return burst(700*time.Millisecond, 5, 0.6)
}

func thrustSound() beep.Streamer {
	return volume(newNoise(), 0.08)
}
