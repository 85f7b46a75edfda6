package draw

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tomz197/asteroids-classic/internal/game"
	"github.com/tomz197/asteroids-classic/internal/object"
)

const (
	fallbackCols = 80
	fallbackRows = 24
)

// TerminalRenderer draws game frames to an ANSI terminal. The playfield is
// scaled to fit the terminal, keeping its aspect ratio, and centered.
type TerminalRenderer struct {
	out      io.Writer
	cw       *ChunkWriter
	canvas   *Canvas
	sizeFunc TermSizeFunc

	width, height float64
	termW, termH  int
	started       bool

	outline []object.Vector
}

// NewTerminalRenderer creates a renderer for a playfield of the given
// logical size. sizeFunc reports the terminal size each frame; nil uses
// DefaultTermSizeFunc.
func NewTerminalRenderer(w io.Writer, sizeFunc TermSizeFunc, width, height int) *TerminalRenderer {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &TerminalRenderer{
		out:      w,
		cw:       NewChunkWriter(w, 0, 0),
		canvas:   NewScaledCanvas(1, 1, float64(width), float64(height)),
		sizeFunc: sizeFunc,
		width:    float64(width),
		height:   float64(height),
	}
}

// Render draws one frame.
func (r *TerminalRenderer) Render(f game.Frame) error {
	if !r.started {
		r.started = true
		HideCursor(r.cw)
	}
	r.updateScreen()

	c := r.canvas
	c.Clear()
	r.drawShip(f)
	for i := range f.Asteroids {
		r.drawAsteroid(&f.Asteroids[i])
	}
	r.drawLasers(f)
	r.drawLives(f)
	c.Render(r.cw)

	r.drawHUD(f)
	return r.cw.Flush()
}

// Close restores the terminal.
func (r *TerminalRenderer) Close() error {
	r.cw.WriteString("\033[0m")
	ClearScreen(r.cw)
	ShowCursor(r.cw)
	return r.cw.Flush()
}

// updateScreen refits the canvas when the terminal size changes.
func (r *TerminalRenderer) updateScreen() {
	termW, termH, err := r.sizeFunc()
	if err != nil || termW <= 0 || termH <= 0 {
		termW, termH = r.termW, r.termH
		if termW == 0 {
			termW, termH = fallbackCols, fallbackRows
		}
	}
	if termW == r.termW && termH == r.termH {
		return
	}
	r.termW, r.termH = termW, termH

	cols, rows, offCol, offRow := fit(termW, termH, r.width, r.height)
	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(offCol, offRow)
	r.canvas.ForceRedraw()
	r.cw.SetOffset(offCol, offRow)

	r.cw.WriteString("\033[0m")
	ClearScreen(r.cw)
	r.canvas.RenderBorder(r.cw)
}

// fit returns the largest canvas (in cells) with the playfield's aspect
// ratio that fits the terminal, and the offsets that center it. Each cell
// holds two vertical pixels.
func fit(termW, termH int, width, height float64) (cols, rows, offCol, offRow int) {
	scale := min(float64(termW)/width, float64(termH*2)/height)
	cols = max(int(width*scale+1e-9), 1)
	rows = max(int(height*scale/2+1e-9), 1)
	return cols, rows, (termW - cols) / 2, (termH - rows) / 2
}

func (r *TerminalRenderer) polygon(vs []object.Vector, filled bool) {
	points := r.canvas.BorrowPoints(len(vs))
	for i, v := range vs {
		points[i] = Point{X: v.X, Y: v.Y}
	}
	r.canvas.DrawPolygon(points, filled)
}

func (r *TerminalRenderer) drawShip(f game.Frame) {
	s := &f.Ship
	c := r.canvas
	if s.Dead {
		return
	}

	if s.Exploding() {
		rings := [...]struct {
			color Color
			scale float64
		}{{Red, 1.4}, {Orange, 1.1}, {Yellow, 0.8}, {Red, 0.5}}
		for _, ring := range rings {
			c.SetColor(ring.color)
			c.DrawCircle(s.X, s.Y, s.Radius*ring.scale)
		}
		return
	}

	if !object.BlinkVisible(s.BlinkNumber) {
		return
	}
	if s.Thrusting {
		flame := s.Flame()
		c.SetColor(Yellow)
		r.polygon(flame[:], true)
		c.SetColor(Red)
		r.polygon(flame[:], false)
	}
	hull := s.Hull()
	c.SetColor(White)
	r.polygon(hull[:], false)
}

func (r *TerminalRenderer) drawAsteroid(a *object.Asteroid) {
	r.outline = a.Outline(r.outline)
	r.canvas.SetColor(Slate)
	r.polygon(r.outline, false)
}

func (r *TerminalRenderer) drawLasers(f game.Frame) {
	c := r.canvas
	radius := f.Ship.Radius
	for _, l := range f.Lasers {
		if !l.Exploding() {
			c.SetColor(Salmon)
			c.SetFloat(l.X, l.Y)
			continue
		}
		c.SetColor(Red)
		c.DrawCircle(l.X, l.Y, radius*0.75)
		c.SetColor(Salmon)
		c.DrawCircle(l.X, l.Y, radius*0.5)
		c.SetColor(Pink)
		c.DrawCircle(l.X, l.Y, radius*0.25)
	}
}

// drawLives draws one small ship per remaining life in the top-left
// corner. The last one turns red while the ship explodes.
func (r *TerminalRenderer) drawLives(f game.Frame) {
	size := f.Ship.Radius * 2
	for i := 0; i < f.Lives; i++ {
		color := White
		if f.Ship.Exploding() && i == f.Lives-1 {
			color = Red
		}
		r.canvas.SetColor(color)
		hull := object.Hull(size+float64(i)*size*1.2, size, f.Ship.Radius, math.Pi/2)
		r.polygon(hull[:], false)
	}
}

// drawHUD writes the score, high score and banner over the canvas.
func (r *TerminalRenderer) drawHUD(f game.Frame) {
	cols := r.canvas.TerminalWidth()

	score := strconv.Itoa(f.Score)
	r.text(cols-len(score), 1, score, White)

	best := "BEST " + strconv.Itoa(f.HighScore)
	r.text((cols-len(best))/2+1, 1, best, White)

	if f.Banner.Visible() && f.Banner.Text != "" {
		col, row := r.canvas.LogicalToTerminal(r.width/2, r.height*0.75)
		r.text(col-len(f.Banner.Text)/2, row, f.Banner.Text, gray(f.Banner.Alpha))
	}
}

// text writes s at a 1-based canvas position, clipped to the canvas. The
// cells underneath are redrawn by the next canvas render.
func (r *TerminalRenderer) text(col, row int, s string, color Color) {
	cols := r.canvas.TerminalWidth()
	if row < 1 || row > r.canvas.TerminalHeight() {
		return
	}
	if col < 1 {
		s = s[min(1-col, len(s)):]
		col = 1
	}
	if over := col + len(s) - 1 - cols; over > 0 {
		s = s[:max(len(s)-over, 0)]
	}
	if s == "" {
		return
	}
	r.cw.WriteAt(col, row, fmt.Sprintf("\033[0;38;5;%dm%s\033[0m", color, s))
	r.canvas.MarkDirty(col, row, len(s))
}

// gray maps an opacity in [0, 1] onto the xterm grayscale ramp.
func gray(alpha float64) Color {
	alpha = math.Max(0, math.Min(1, alpha))
	return Color(232 + int(math.Round(alpha*23)))
}
