package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Color is an xterm-256 palette index. None marks an empty pixel.
type Color uint8

const (
	None   Color = 0
	White  Color = 15
	Red    Color = 196
	Orange Color = 208
	Yellow Color = 226
	Salmon Color = 210
	Pink   Color = 218
	Slate  Color = 103
)

// dirty marks a cell whose on-screen content is unknown.
const dirty = math.MaxUint16

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only emits cells that changed since the previous Render.
type Canvas struct {
	termWidth      int     // Canvas columns
	termHeight     int     // Canvas rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	shown          []uint16
	pen            Color

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the canvas.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the canvas dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		pen:           White,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// Everything is redrawn on the next Render.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.shown = make([]uint16, termHeight*termWidth)
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// ForceRedraw forgets what is on screen so the next Render draws every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = dirty
	}
}

// MarkDirty forgets n cells starting at the 1-based canvas position col,row,
// typically after text was written over them.
func (c *Canvas) MarkDirty(col, row, n int) {
	if row < 1 || row > c.termHeight {
		return
	}
	for x := max(col, 1); x < col+n && x <= c.termWidth; x++ {
		c.shown[(row-1)*c.termWidth+x-1] = dirty
	}
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// SetColor sets the color used by subsequent drawing calls.
func (c *Canvas) SetColor(col Color) {
	c.pen = col
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = c.pen
	}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline as a polygon fine enough for the
// current scale.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	segments := int(2 * math.Pi * r * max(c.scaleX, c.scaleY))
	segments = min(max(segments, 8), 64)

	points := c.BorrowPoints(segments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawPolygon(points, false)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the last Render using
// half-block characters. Nothing is written when nothing changed.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			cell := uint16(top)<<8 | uint16(bottom)

			i := row*c.termWidth + col
			if c.shown[i] == cell {
				continue
			}
			c.shown[i] = cell

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			c.writeCell(top, bottom)
		}
	}

	if c.renderBuf.Len() == 0 {
		return
	}
	c.renderBuf.WriteString("\033[0m")

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeCell emits one half-block cell. Two different colors use the
// foreground for the top pixel and the background for the bottom one.
func (c *Canvas) writeCell(top, bottom Color) {
	sgr := func(fg, bg Color) {
		c.renderBuf.WriteString("\033[0")
		if fg != None {
			c.renderBuf.WriteString(";38;5;")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(fg), 10))
		}
		if bg != None {
			c.renderBuf.WriteString(";48;5;")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(bg), 10))
		}
		c.renderBuf.WriteByte('m')
	}

	switch {
	case top == None && bottom == None:
		sgr(None, None)
		c.renderBuf.WriteRune(BlockEmpty)
	case top == bottom:
		sgr(top, None)
		c.renderBuf.WriteRune(BlockFull)
	case bottom == None:
		sgr(top, None)
		c.renderBuf.WriteRune(BlockUpperHalf)
	case top == None:
		sgr(bottom, None)
		c.renderBuf.WriteRune(BlockLowerHalf)
	default:
		sgr(top, bottom)
		c.renderBuf.WriteRune(BlockUpperHalf)
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// leaves room around it. Draws horizontal borders when there is vertical
// offset, vertical borders when there is horizontal offset, and corners
// when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(left) + "H┌" + line + "┐")
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(left) + "H└" + line + "┘")
		} else {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			r := strconv.Itoa(row)
			buf.WriteString("\033[" + r + ";" + strconv.Itoa(left) + "H│\033[" + r + ";" + strconv.Itoa(right) + "H│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
