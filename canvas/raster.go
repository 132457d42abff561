package canvas

import "math"

// Primitive rasterizers writing into the block grid. Coordinates are virtual
// (80x50). Callers are expected to clip; stray cells outside the grid are
// dropped by SetBlock rather than corrupting neighbouring memory.

// FillRect fills w x h blocks starting at (x, y)
func (c *Canvas) FillRect(x, y, w, h int, color uint8) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.SetBlock(i, j, color)
		}
	}
}

// StrokeRect outlines the rectangle spanning (x, y) to (x+w, y+h) inclusive
func (c *Canvas) StrokeRect(x, y, w, h int, color uint8) {
	for j := y; j <= y+h; j++ {
		c.SetBlock(x, j, color)
		c.SetBlock(x+w, j, color)
	}
	for i := x; i <= x+w; i++ {
		c.SetBlock(i, y, color)
		c.SetBlock(i, y+h, color)
	}
}

// circleQuadrants holds the x/y signs of the four mirrored quadrants
var circleQuadrants = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

// onCircle reports whether the quadrant cell (i, j) lies within half a cell
// of the radius, measured from the quadrant corner (r, r)
func onCircle(i, j, r int) bool {
	di, dj := float64(i-r), float64(j-r)
	d := math.Sqrt(di*di + dj*dj)
	fr := float64(r)
	return d > fr-0.5 && d < fr+0.5
}

// plotQuadrants mirrors quadrant cell (i, j) around center (x, y)
func (c *Canvas) plotQuadrants(x, y, r, i, j int, color uint8) {
	for _, q := range circleQuadrants {
		c.SetBlock(x+q[0]*(r-j), y+q[1]*(r-i), color)
	}
}

// StrokeCircle draws a circle outline centered on (x, y)
func (c *Canvas) StrokeCircle(x, y, r int, color uint8) {
	if r < 0 {
		return
	}
	for i := 0; i <= r; i++ {
		for j := 0; j <= r; j++ {
			if onCircle(i, j, r) {
				c.plotQuadrants(x, y, r, i, j, color)
			}
		}
	}
}

// FillCircle draws a filled circle centered on (x, y). Each quadrant row is
// filled from the outline toward the center column.
func (c *Canvas) FillCircle(x, y, r int, color uint8) {
	if r < 0 {
		return
	}
	for i := 0; i <= r; i++ {
		fill := false
		for j := 0; j <= r; j++ {
			if !fill && onCircle(i, j, r) {
				fill = true
			}
			if fill {
				c.plotQuadrants(x, y, r, i, j, color)
			}
		}
	}
}

// Triangle draws the three edges of a triangle
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, color uint8) {
	c.Line(x0, y0, x1, y1, color)
	c.Line(x1, y1, x2, y2, color)
	c.Line(x2, y2, x0, y0, color)
}

// Line draws a Bresenham line between two points, endpoints included
func (c *Canvas) Line(x0, y0, x1, y1 int, color uint8) {
	switch {
	case y0 == y1:
		for i := min(x0, x1); i <= max(x0, x1); i++ {
			c.SetBlock(i, y0, color)
		}
	case x0 == x1:
		for j := min(y0, y1); j <= max(y0, y1); j++ {
			c.SetBlock(x0, j, color)
		}
	case abs(y1-y0) < abs(x1-x0):
		if x0 > x1 {
			c.lineLow(x1, y1, x0, y0, color)
		} else {
			c.lineLow(x0, y0, x1, y1, color)
		}
	default:
		if y0 > y1 {
			c.lineHigh(x1, y1, x0, y0, color)
		} else {
			c.lineHigh(x0, y0, x1, y1, color)
		}
	}
}

// lineLow handles slopes in (-1, 1), stepping along x
func (c *Canvas) lineLow(x0, y0, x1, y1 int, color uint8) {
	dx, dy := x1-x0, y1-y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	for x := x0; x <= x1; x++ {
		c.SetBlock(x, y, color)
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// lineHigh handles steep slopes, stepping along y
func (c *Canvas) lineHigh(x0, y0, x1, y1 int, color uint8) {
	dx, dy := x1-x0, y1-y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	for y := y0; y <= y1; y++ {
		c.SetBlock(x, y, color)
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
