// Package draw renders game frames to an ANSI terminal using half-block
// characters for double vertical resolution.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
