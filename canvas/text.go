package canvas

// wrapCol folds a column that ran past the right edge back to the row start
func wrapCol(x int) int {
	return wrap(x, Cols)
}

// PrintString writes the bytes of s as glyphs starting at (x, y). Text
// running past the last column wraps to the start of the same row.
func (c *Canvas) PrintString(s string, x, y int) {
	if y < 0 || y >= Rows {
		return
	}
	for i := 0; i < len(s); i++ {
		c.screen.Chars[y][wrapCol(x+i)] = s[i]
	}
}

// PaintArea sets the attribute of every screen cell in the w x h area at
// (x, y), clipped to the screen
func (c *Canvas) PaintArea(x, y, w, h int, attr Attr) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, Cols), min(y+h, Rows)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.Colors[row][col] = attr
		}
	}
}

// PrintColorString writes s and paints the cells it covers with attr
func (c *Canvas) PrintColorString(s string, x, y int, attr Attr) {
	if y < 0 || y >= Rows {
		return
	}
	c.PrintString(s, x, y)
	for i := 0; i < len(s); i++ {
		c.screen.Colors[y][wrapCol(x+i)] = attr
	}
}
