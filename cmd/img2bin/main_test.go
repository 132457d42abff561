package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bin")
	prev := filepath.Join(dir, "prev.png")

	// Top half white, bottom half blue
	src := image.NewRGBA(image.Rect(0, 0, 80, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 80; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if y >= 25 {
				c = color.RGBA{0, 0, 170, 255}
			}
			src.Set(x, y, c)
		}
	}
	writePNG(t, in, src)

	if err := convert(in, out, "", prev, 1); err != nil {
		t.Fatalf("convert: %v", err)
	}

	img := ansibin.Load(out)
	if img.Len() != canvas.Cols*canvas.Rows {
		t.Fatalf("Expected full screen image, got %d cells", img.Len())
	}
	glyph, attr := img.Cell(0)
	if glyph != canvas.GlyphUpper || canvas.Attr(attr) != canvas.MakeAttr(15, 15) {
		t.Errorf("Expected white cell, got %d/%#x", glyph, attr)
	}
	_, attr = img.Cell((canvas.Rows - 1) * canvas.Cols)
	if canvas.Attr(attr) != canvas.MakeAttr(1, 1) {
		t.Errorf("Expected blue cell, got %#x", attr)
	}

	if _, err := os.Stat(prev); err != nil {
		t.Errorf("Expected preview written: %v", err)
	}
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	if err := convert(filepath.Join(dir, "none.png"), filepath.Join(dir, "o.bin"), "", "", 1); err == nil {
		t.Error("Expected error for missing input")
	}
}

func TestConvert_TerminatorAttribute(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bin")

	// Light green over blue packs into the terminator byte as a 223 cell
	pal := palette.Default()
	green, blue := pal.RGBA(10), pal.RGBA(1)
	src := image.NewRGBA(image.Rect(0, 0, canvas.Cols, canvas.Rows*2))
	for y := 0; y < canvas.Rows*2; y++ {
		for x := 0; x < canvas.Cols; x++ {
			if y%2 == 0 {
				src.Set(x, y, green)
			} else {
				src.Set(x, y, blue)
			}
		}
	}
	writePNG(t, in, src)

	if err := convert(in, out, "", "", 1); err != nil {
		t.Fatalf("convert: %v", err)
	}

	img := ansibin.Load(out)
	if img.Len() != canvas.Cols*canvas.Rows {
		t.Fatalf("Expected %d cells reloaded, got %d", canvas.Cols*canvas.Rows, img.Len())
	}
	glyph, attr := img.Cell(0)
	if glyph != canvas.GlyphLower || canvas.Attr(attr) != canvas.MakeAttr(1, 10) {
		t.Errorf("Expected lower half blue over green, got %d/%#x", glyph, attr)
	}
}
