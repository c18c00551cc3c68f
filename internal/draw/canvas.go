package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Callers draw in logical coordinates, which are scaled to the
// terminal's cells.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// space onto a termWidth x termHeight terminal.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at terminal sub-pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(Point{x, y}))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
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

// DrawPolygon draws the outline of a closed polygon.
func (c *Canvas) DrawPolygon(points []Point) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawRect draws the outline of the box from lo to hi.
func (c *Canvas) DrawRect(lo, hi Point) {
	c.DrawPolygon([]Point{lo, {hi.X, lo.Y}, hi, {lo.X, hi.Y}})
}

// FillRect sets every pixel of the box from lo to hi.
func (c *Canvas) FillRect(lo, hi Point) {
	x1, y1 := c.toPixel(lo)
	x2, y2 := c.toPixel(hi)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.setPixel(x, y)
		}
	}
}

// Render outputs the canvas to the writer using half-block characters,
// starting at the 1-based terminal cell (col, row). Empty cells are skipped.
func (c *Canvas) Render(w io.Writer, col, row int) error {
	c.renderBuf.Reset()
	for r := range c.termHeight {
		top := r * 2 * c.termWidth
		bottom := top + c.termWidth
		for x := range c.termWidth {
			var ch rune
			switch t, b := c.pixels[top+x], c.pixels[bottom+x]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.moveCursor(col+x, row+r)
			c.renderBuf.WriteRune(ch)
		}
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 0-based terminal
// column and row.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(Point{x, y})
	return px, py / 2
}
