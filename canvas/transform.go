package canvas

import "math"

// Shift translates the block grid by (dx, dy) with wraparound on both axes.
// Positive dx moves content right, positive dy moves it down. The slice that
// falls off an edge is parked in the transform buffer before the overlapping
// move.
func (c *Canvas) Shift(dx, dy int) {
	if n := wrap(dx, Cols); n != 0 {
		for y := range c.blocks {
			row := &c.blocks[y]
			tail := c.transform[y][:n]
			copy(tail, row[Cols-n:])
			copy(row[n:], row[:Cols-n])
			copy(row[:n], tail)
		}
	}

	if n := wrap(dy, BlockRows); n != 0 {
		copy(c.transform[:n], c.blocks[BlockRows-n:])
		copy(c.blocks[n:], c.blocks[:BlockRows-n])
		copy(c.blocks[:n], c.transform[:n])
	}
}

// ShiftRow rotates a single block row by n cells, positive to the right
func (c *Canvas) ShiftRow(row, n int) {
	if row < 0 || row >= BlockRows {
		return
	}
	n = wrap(n, Cols)
	if n == 0 {
		return
	}
	r := &c.blocks[row]
	tail := c.transform[row][:n]
	copy(tail, r[Cols-n:])
	copy(r[n:], r[:Cols-n])
	copy(r[:n], tail)
}

// ShiftCol rotates a single block column by n cells, positive downward
func (c *Canvas) ShiftCol(col, n int) {
	if col < 0 || col >= Cols {
		return
	}
	n = wrap(n, BlockRows)
	if n == 0 {
		return
	}
	var column [BlockRows]uint8
	for y := range column {
		column[y] = c.blocks[y][col]
	}
	for y := range column {
		c.blocks[(y+n)%BlockRows][col] = column[y]
	}
}

// Rotate turns the block grid by theta radians around its center using
// nearest-neighbour sampling. Each destination cell takes the color of its
// inverse-rotated source cell; destination cells whose source falls outside
// the grid keep their current color.
func (c *Canvas) Rotate(theta float64) {
	cos, sin := math.Cos(theta), math.Sin(theta)
	cx, cy := Cols/2, BlockRows/2

	c.transform = c.blocks
	for y := 0; y < BlockRows; y++ {
		n := float64(y - cy)
		for x := 0; x < Cols; x++ {
			m := float64(x - cx)
			sx := int(math.Round(m*cos+n*sin)) + cx
			sy := int(math.Round(n*cos-m*sin)) + cy
			if inGrid(sx, sy) {
				c.transform[y][x] = c.blocks[sy][sx]
			}
		}
	}
	c.blocks = c.transform
}

// Scale magnifies the block grid by an integer factor about the grid center
func (c *Canvas) Scale(factor int) {
	c.ScaleAt(factor, Cols/2, Rows)
}

// ScaleAt magnifies the block grid by an integer factor about (ox, oy).
// Every source cell becomes a factor x factor block; the origin cell stays
// in place. Factors below 2 leave the grid unchanged.
func (c *Canvas) ScaleAt(factor, ox, oy int) {
	if factor < 2 {
		return
	}

	c.transform = c.blocks
	for y := 0; y < BlockRows; y++ {
		sy := oy + floorDiv(y-oy, factor)
		for x := 0; x < Cols; x++ {
			sx := ox + floorDiv(x-ox, factor)
			if inGrid(sx, sy) {
				c.transform[y][x] = c.blocks[sy][sx]
			}
		}
	}
	c.blocks = c.transform
}

// wrap reduces v into [0, n)
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
