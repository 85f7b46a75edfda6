package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetColor(White)
	c.SetFloat(0, 0) // top half of cell (1,1)
	c.SetFloat(1, 1) // bottom half of cell (2,1)
	c.SetFloat(2, 0)
	c.SetFloat(2, 1) // both halves of cell (3,1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{"\033[1;1H\033[0;38;5;15m▀", "\033[1;2H\033[0;38;5;15m▄", "\033[1;3H\033[0;38;5;15m█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%q", want, out)
		}
	}
}

func TestCanvasTwoColorsInOneCell(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetColor(Red)
	c.SetFloat(0, 0)
	c.SetColor(Yellow)
	c.SetFloat(0, 1)

	var buf bytes.Buffer
	c.Render(&buf)
	if want := "\033[0;38;5;196;48;5;226m▀"; !strings.Contains(buf.String(), want) {
		t.Errorf("output %q missing %q", buf.String(), want)
	}
}

func TestCanvasRendersOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetColor(White)
	c.DrawLine(Point{0, 0}, Point{9, 9})

	var first bytes.Buffer
	c.Render(&first)
	if first.Len() == 0 {
		t.Fatal("first render wrote nothing")
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged canvas wrote %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if strings.Contains(third.String(), string(BlockFull)) || !strings.Contains(third.String(), " ") {
		t.Errorf("cleared canvas should erase cells, wrote %q", third.String())
	}

	c.MarkDirty(1, 1, 3)
	var fourth bytes.Buffer
	c.Render(&fourth)
	if got := strings.Count(fourth.String(), "H"); got != 3 {
		t.Errorf("dirty cells redrawn = %d, want 3", got)
	}
}

func TestCanvasOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)
	c.SetFloat(0, 0)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[4;6H") {
		t.Errorf("offset not applied: %q", buf.String())
	}
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.SetFloat(400, 300)
	if c.pixels[30*80+40] == None {
		t.Error("logical centre did not land on the canvas centre")
	}

	col, row := c.LogicalToTerminal(400, 450)
	if col != 41 || row != 23 {
		t.Errorf("LogicalToTerminal = (%d, %d), want (41, 23)", col, row)
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawCircle(20, 20, 10)

	if c.pixels[20*40+30] == None || c.pixels[20*40+10] == None {
		t.Error("circle misses its left/right extremes")
	}
	if c.pixels[20*40+20] != None {
		t.Error("circle outline filled its centre")
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{2, 2}, {17, 2}, {17, 17}, {2, 17}}, true)
	if c.pixels[10*20+10] == None {
		t.Error("filled square has an empty centre")
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.DrawLine(Point{-10, -10}, Point{20, 20})
	c.SetFloat(100, 100)
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(3, 2, 3, 4)

	var none bytes.Buffer
	c.RenderBorder(&none)
	if none.Len() != 0 {
		t.Errorf("border drawn without room: %q", none.String())
	}

	c.SetOffset(1, 1)
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	for _, want := range []string{"┌───┐", "└───┘", "│"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("border missing %q", want)
		}
	}
}
