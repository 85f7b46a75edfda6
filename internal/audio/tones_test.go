package audio

import (
	"testing"
	"time"
)

func TestSweepEnds(t *testing.T) {
	s := &sweep{from: 1000, to: 200, total: 100}
	samples := make([][2]float64, 64)

	total := 0
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
}

func TestDecayFadesOut(t *testing.T) {
	d := &decay{streamer: newNoise(), rate: 50}
	samples := make([][2]float64, sampleRate.N(time.Second))
	d.Stream(samples)

	for _, s := range samples[len(samples)-100:] {
		if s[0] > 1e-6 || s[0] < -1e-6 {
			t.Fatalf("sample %v after 1s of decay", s[0])
		}
	}
}

func TestToneRejectsUnplayableFrequency(t *testing.T) {
	if _, err := tone(float64(sampleRate), 10*time.Millisecond, 1); err == nil {
		t.Error("expected an error above the Nyquist frequency")
	}
	if _, err := tone(beatLowHz, 10*time.Millisecond, 1); err != nil {
		t.Errorf("tone(%v): %v", beatLowHz, err)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayLaserFire()
	p.PlayBeat(true)
	p.Close()
}
