package canvas

// DrawBlock composites one virtual half-cell into the screen buffers.
// The glyph already in the physical cell decides which nibble carries the
// other half, so that half keeps its color. Out-of-range writes are dropped.
func (c *Canvas) DrawBlock(x, y int, color uint8) {
	if !inGrid(x, y) {
		return
	}
	color &= 0x0F

	row := y / 2
	ch := &c.screen.Chars[row][x]
	at := &c.screen.Colors[row][x]

	if y%2 == 1 {
		// Lower half: an upper or full glyph already carries the top in fg
		if *ch == GlyphUpper || *ch == GlyphFull {
			*ch = GlyphUpper
			*at = MakeAttr(at.Fg(), color)
		} else {
			*ch = GlyphLower
			*at = MakeAttr(color, at.Bg())
		}
		return
	}

	// Upper half: a lower or full glyph already carries the bottom in fg
	if *ch == GlyphLower || *ch == GlyphFull {
		*ch = GlyphLower
		*at = MakeAttr(at.Fg(), color)
	} else {
		*ch = GlyphUpper
		*at = MakeAttr(color, at.Bg())
	}
}

// HalfColors decodes the two virtual half-cell colors shown by screen cell
// (col, row)
func (c *Canvas) HalfColors(col, row int) (top, bottom uint8) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return 0, 0
	}
	return decodeCell(c.screen.Chars[row][col], c.screen.Colors[row][col])
}

func decodeCell(ch byte, at Attr) (top, bottom uint8) {
	switch ch {
	case GlyphLower:
		return at.Bg(), at.Fg()
	case GlyphUpper:
		return at.Fg(), at.Bg()
	case GlyphSpace, GlyphBlank:
		return at.Bg(), at.Bg()
	default:
		return at.Fg(), at.Fg()
	}
}

// BlocksToScreen overwrites the screen buffers with the whole block grid,
// one upper-half glyph per cell
func (c *Canvas) BlocksToScreen() {
	blocksToScreen(&c.blocks, &c.screen)
}

func blocksToScreen(blocks *[BlockRows][Cols]uint8, scr *Screen) {
	for row := 0; row < Rows; row++ {
		top := &blocks[row*2]
		bottom := &blocks[row*2+1]
		for x := 0; x < Cols; x++ {
			scr.Chars[row][x] = GlyphUpper
			scr.Colors[row][x] = MakeAttr(top[x], bottom[x])
		}
	}
}

// TransparentBlocksToScreen composites every block whose color differs from
// tp, leaving the rest of the screen untouched
func (c *Canvas) TransparentBlocksToScreen(tp uint8) {
	for y := 0; y < BlockRows; y++ {
		for x := 0; x < Cols; x++ {
			if b := c.blocks[y][x]; b != tp {
				c.DrawBlock(x, y, b)
			}
		}
	}
}

// BlocksFromScreen reads the screen buffers back into the block grid
func (c *Canvas) BlocksFromScreen() {
	for row := 0; row < Rows; row++ {
		for x := 0; x < Cols; x++ {
			top, bottom := decodeCell(c.screen.Chars[row][x], c.screen.Colors[row][x])
			c.blocks[row*2][x] = top
			c.blocks[row*2+1][x] = bottom
		}
	}
}

// FillScreenRect draws a filled rectangle in virtual coordinates straight
// into the screen buffers. Cells fully covered become full blocks; a
// rectangle edge splitting a cell is merged through DrawBlock.
func (c *Canvas) FillScreenRect(x, y, w, h int, color uint8) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, Cols), min(y+h, BlockRows)
	color &= 0x0F

	for j := y0; j < y1; j++ {
		// Partner half-cell of row j within the same screen row
		partner := j + 1
		if j%2 == 1 {
			partner = j - 1
		}
		full := partner >= y0 && partner < y1

		for i := x0; i < x1; i++ {
			if full {
				c.screen.Chars[j/2][i] = GlyphFull
				c.screen.Colors[j/2][i] = MakeAttr(color, 0)
				continue
			}
			c.DrawBlock(i, j, color)
		}
	}
}
