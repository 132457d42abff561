package display

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
)

// Character cell size in pixels, matching the VGA 9x16 text font minus the
// ninth column
const (
	CellWidth  = 8
	CellHeight = GlyphHeight
)

// Image rasterizes screens into an RGBA frame, 640x400 at zoom 1.
// Block glyphs are drawn as geometry, user-defined characters from their
// bitmaps, and remaining glyphs with a fixed 7x13 bitmap face.
type Image struct {
	*Registers

	// Zoom is the integer magnification applied to each presented frame
	Zoom int

	face  font.Face
	frame *image.RGBA
}

// NewImage returns an image sink at zoom 1
func NewImage(pal *palette.Palette) *Image {
	return &Image{
		Registers: NewRegisters(pal),
		Zoom:      1,
		face:      basicfont.Face7x13,
	}
}

// Present renders the screen into the current frame
func (s *Image) Present(scr *canvas.Screen) error {
	frame := s.Render(scr)
	if s.Zoom > 1 {
		b := frame.Bounds()
		zoomed := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.Zoom, b.Dy()*s.Zoom))
		draw.NearestNeighbor.Scale(zoomed, zoomed.Bounds(), frame, b, draw.Src, nil)
		frame = zoomed
	}
	s.frame = frame
	return nil
}

// Frame returns the last presented frame, nil before the first Present
func (s *Image) Frame() *image.RGBA {
	return s.frame
}

// Render draws a screen at native resolution
func (s *Image) Render(scr *canvas.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Cols*CellWidth, canvas.Rows*CellHeight))

	for row := 0; row < canvas.Rows; row++ {
		for col := 0; col < canvas.Cols; col++ {
			fgIdx, bgIdx, _ := s.Resolve(scr.Colors[row][col])
			fg := s.Palette().RGBA(int(fgIdx))
			bg := s.Palette().RGBA(int(bgIdx))
			s.drawCell(img, col*CellWidth, row*CellHeight, scr.Chars[row][col], fg, bg)
		}
	}
	return img
}

// drawCell paints one character cell with its top-left pixel at (x, y)
func (s *Image) drawCell(img *image.RGBA, x, y int, glyph byte, fg, bg color.RGBA) {
	cell := image.Rect(x, y, x+CellWidth, y+CellHeight)
	half := CellHeight / 2
	fill := func(r image.Rectangle, c color.RGBA) {
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	fill(cell, bg)

	if rows, ok := s.UserGlyph(glyph); ok {
		for cy := 0; cy < CellHeight; cy++ {
			for cx := 0; cx < CellWidth; cx++ {
				if rows[cy]&(0x80>>cx) != 0 {
					img.SetRGBA(x+cx, y+cy, fg)
				}
			}
		}
		return
	}

	switch glyph {
	case canvas.GlyphBlank, canvas.GlyphSpace:
	case canvas.GlyphFull:
		fill(cell, fg)
	case canvas.GlyphUpper:
		fill(image.Rect(x, y, x+CellWidth, y+half), fg)
	case canvas.GlyphLower:
		fill(image.Rect(x, y+half, x+CellWidth, y+CellHeight), fg)
	default:
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(fg),
			Face: s.face,
			Dot:  fixed.P(x, y+s.face.Metrics().Ascent.Ceil()+(CellHeight-13)/2),
		}
		d.DrawString(string(GlyphRune(glyph)))
	}
}

// WritePNG encodes the last frame as PNG
func (s *Image) WritePNG(w io.Writer) error {
	if s.frame == nil {
		return errors.New("display: no frame presented")
	}
	return errors.Wrap(png.Encode(w, s.frame), "display: encode png")
}

// SavePNG writes the last frame to path
func (s *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "display: create %s", path)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "display: close %s", path)
}
