package canvas

import (
	"image"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/palette"
)

// DrawImage copies the image cells into the screen buffers, row-major from
// the top-left corner. With transparent set, space glyphs are skipped and
// the cell underneath is kept.
func (c *Canvas) DrawImage(img ansibin.Image, transparent bool) {
	n := min(img.Len(), Rows*Cols)
	for i := 0; i < n; i++ {
		glyph, attr := img.Cell(i)
		if transparent && glyph == GlyphSpace {
			continue
		}
		row, col := i/Cols, i%Cols
		c.screen.Chars[row][col] = glyph
		c.screen.Colors[row][col] = Attr(attr)
	}
}

// SaveScreen returns the screen buffers as a full-screen image
func (c *Canvas) SaveScreen() ansibin.Image {
	data := make([]byte, 0, 2*Rows*Cols)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			data = append(data, c.screen.Chars[row][col], byte(c.screen.Colors[row][col]))
		}
	}
	return ansibin.Image{Data: data}
}

// FromImage resamples img onto the block grid, one pixel per block, using
// nearest-neighbour sampling and the closest palette register
func (c *Canvas) FromImage(img image.Image, pal *palette.Palette) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	for y := 0; y < BlockRows; y++ {
		sy := bounds.Min.Y + (y*srcH+srcH/2)/BlockRows
		if sy >= bounds.Max.Y {
			sy = bounds.Max.Y - 1
		}
		for x := 0; x < Cols; x++ {
			sx := bounds.Min.X + (x*srcW+srcW/2)/Cols
			if sx >= bounds.Max.X {
				sx = bounds.Max.X - 1
			}
			c.blocks[y][x] = pal.Nearest(img.At(sx, sy))
		}
	}
}
