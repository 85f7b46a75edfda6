package object

// Banner is the fading centre-screen message ("Level 2", "Game Over").
type Banner struct {
	Text  string
	Alpha float64 // 1 = opaque; hidden once below 0
}

// Show replaces the text and restores full opacity.
func (b *Banner) Show(text string) {
	b.Text = text
	b.Alpha = 1.0
}

// Visible reports whether the banner is still drawn.
func (b Banner) Visible() bool {
	return b.Alpha >= 0
}

// Fade lowers the opacity by step. It reports false once the banner has
// already faded out, leaving alpha untouched.
func (b *Banner) Fade(step float64) bool {
	if !b.Visible() {
		return false
	}
	b.Alpha -= step
	return true
}
