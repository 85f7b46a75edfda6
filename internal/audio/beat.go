package audio

import "math"

// Beat schedules the two-tone background pulse. The pulse speeds up as
// the share of the level's asteroids still alive (the beat ratio) drops.
type Beat struct {
	rate  int
	ratio float64
	wait  int
	high  bool
}

// NewBeat returns a beat at its slowest tempo for the given tick rate.
func NewBeat(tickRate int) *Beat {
	b := &Beat{rate: tickRate}
	b.Reset()
	return b
}

// Reset restores the slowest tempo. The next tick plays the low tone.
func (b *Beat) Reset() {
	b.ratio = 1
	b.high = false
	b.wait = 0
}

// SetRatio changes the tempo. A shorter interval takes effect at once.
func (b *Beat) SetRatio(ratio float64) {
	b.ratio = math.Max(0, math.Min(1, ratio))
	if iv := b.Interval(); b.wait > iv {
		b.wait = iv
	}
}

// Ratio returns the current beat ratio.
func (b *Beat) Ratio() float64 {
	return b.ratio
}

// Seconds returns the time between beats: 1s at ratio 1, 0.25s at ratio 0.
func (b *Beat) Seconds() float64 {
	return 1 - 0.75*(1-b.ratio)
}

// Interval returns the time between beats in ticks.
func (b *Beat) Interval() int {
	n := int(math.Ceil(b.Seconds()*float64(b.rate) - 1e-9))
	return max(n, 1)
}

// Tick advances one tick and reports whether a beat is due and which tone
// it uses. Tones alternate low, high, low...
func (b *Beat) Tick() (play, high bool) {
	b.wait--
	if b.wait > 0 {
		return false, false
	}
	b.wait = b.Interval()
	high = b.high
	b.high = !b.high
	return true, high
}
