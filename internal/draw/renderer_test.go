package draw

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-classic/internal/config"
	"github.com/tomz197/asteroids-classic/internal/game"
)

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func newFrame(t *testing.T) game.Frame {
	t.Helper()
	s := game.NewSession(config.Default(), game.Options{
		Rand:   rand.New(rand.NewPCG(3, 4)),
		Logger: log.New(io.Discard),
	})
	return s.Frame()
}

func TestFit(t *testing.T) {
	tests := []struct {
		termW, termH               int
		cols, rows, offCol, offRow int
	}{
		{120, 40, 106, 40, 7, 0},
		{80, 60, 80, 30, 0, 15},
		{160, 60, 160, 60, 0, 0},
	}
	for _, tt := range tests {
		cols, rows, offCol, offRow := fit(tt.termW, tt.termH, 800, 600)
		if cols != tt.cols || rows != tt.rows || offCol != tt.offCol || offRow != tt.offRow {
			t.Errorf("fit(%d, %d) = %d,%d,%d,%d, want %d,%d,%d,%d", tt.termW, tt.termH,
				cols, rows, offCol, offRow, tt.cols, tt.rows, tt.offCol, tt.offRow)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, fixedSize(120, 40), 800, 600)

	f := newFrame(t)
	f.Score = 1230
	f.HighScore = 4560
	if err := r.Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"\033[?25l", "\033[H\033[2J", "1230", "BEST 4560", "Level 1", string(BlockFull)} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.Contains(out, "│") {
		t.Error("no side border on a wide terminal")
	}
}

func TestRenderFrameIsIncremental(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, fixedSize(120, 40), 800, 600)
	f := newFrame(t)

	r.Render(f)
	first := buf.Len()
	buf.Reset()
	r.Render(f)

	if buf.Len() >= first {
		t.Errorf("second identical frame wrote %d bytes, first %d", buf.Len(), first)
	}
	if strings.Contains(buf.String(), "\033[2J") {
		t.Error("identical frame cleared the screen")
	}
}

func TestRenderDeadShipHidden(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, fixedSize(160, 60), 800, 600)
	f := newFrame(t)
	f.Asteroids = nil
	f.Lives = 0
	f.Ship.BlinkNumber = 0
	f.Ship.Dead = true

	r.Render(f)
	for i, p := range r.canvas.pixels {
		if p != None {
			t.Fatalf("dead ship drew pixel %d", i)
		}
	}

	f.Ship.Dead = false
	r.Render(f)
	drawn := false
	for _, p := range r.canvas.pixels {
		drawn = drawn || p == White
	}
	if !drawn {
		t.Error("live ship not drawn")
	}
}

func TestRenderBlinkHidesShip(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, fixedSize(160, 60), 800, 600)
	f := newFrame(t)
	f.Asteroids = nil
	f.Lives = 0
	f.Ship.BlinkNumber = 3

	r.Render(f)
	for _, p := range r.canvas.pixels {
		if p != None {
			t.Fatal("ship drawn on an odd blink")
		}
	}
}

func TestRenderSizeErrorKeepsLastSize(t *testing.T) {
	var buf bytes.Buffer
	fail := false
	r := NewTerminalRenderer(&buf, func() (int, int, error) {
		if fail {
			return 0, 0, errors.New("no tty")
		}
		return 100, 40, nil
	}, 800, 600)

	f := newFrame(t)
	r.Render(f)
	fail = true
	if err := r.Render(f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if r.termW != 100 || r.termH != 40 {
		t.Errorf("size = %dx%d, want 100x40", r.termW, r.termH)
	}
}

func TestTextClipping(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, fixedSize(10, 5), 800, 600)
	r.updateScreen()
	buf.Reset()

	r.text(-2, 1, "abcdef", White)
	r.text(8, 2, "xyz123", White)
	r.text(1, 99, "gone", White)
	r.cw.Flush()

	out := buf.String()
	if !strings.Contains(out, "def") || strings.Contains(out, "abc") {
		t.Errorf("left clip wrong: %q", out)
	}
	if !strings.Contains(out, "xyz") || strings.Contains(out, "xyz1") {
		t.Errorf("right clip wrong: %q", out)
	}
	if strings.Contains(out, "gone") {
		t.Error("text below the canvas was written")
	}
}

func TestGray(t *testing.T) {
	if gray(1) != 255 || gray(0) != 232 || gray(-1) != 232 || gray(2) != 255 {
		t.Errorf("gray ramp ends = %d, %d", gray(0), gray(1))
	}
}
