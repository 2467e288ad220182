// Package render rasterizes race frames onto a Braille cell canvas.
//
// Braille gives 2x4 dots per terminal cell, so a WxH canvas exposes a
// (2W)x(4H) dot raster. Text can be overlaid directly on cells for
// axis labels.
package render

import "strings"

const brailleBase = 0x2800

// Dot bit layout within a braille cell:
//
//	1  8
//	2 10
//	4 20
//	40 80
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	width, height int
	cells         []rune
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// DotWidth and DotHeight are the raster dimensions in sub-cell dots.
func (c *Canvas) DotWidth() int  { return c.width * 2 }
func (c *Canvas) DotHeight() int { return c.height * 4 }

// Clear fills the canvas with empty braille cells (the background).
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// Set lights the dot at (x, y) in dot coordinates. Out-of-range dots
// are dropped silently.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.width || row >= c.height {
		return
	}
	i := row*c.width + col
	// Text cells win over dots; don't merge bits into a glyph.
	if c.cells[i] < brailleBase || c.cells[i] > brailleBase+0xff {
		return
	}
	c.cells[i] |= dotBits[y%4][x%2]
}

// Line draws a dot line between two points with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Blob fills a small square of dots around (x, y); used for markers.
func (c *Canvas) Blob(x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// Text writes a label into whole cells starting at cell (col, row),
// replacing any dots already there.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.height {
		return
	}
	for i, r := range s {
		x := col + i
		if x < 0 || x >= c.width {
			continue
		}
		c.cells[row*c.width+x] = r
	}
}

// Cell returns the rune at cell (col, row); used by exporters.
func (c *Canvas) Cell(col, row int) rune {
	return c.cells[row*c.width+col]
}

// DotSet reports whether the dot at (x, y) is lit.
func (c *Canvas) DotSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.width || row >= c.height {
		return false
	}
	cell := c.cells[row*c.width+col]
	if cell < brailleBase || cell > brailleBase+0xff {
		return false
	}
	return cell&dotBits[y%4][x%2] != 0
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.width + 1) * c.height)
	for row := 0; row < c.height; row++ {
		b.WriteString(string(c.cells[row*c.width : (row+1)*c.width]))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
