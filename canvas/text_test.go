package canvas

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/palette"
)

func TestPrintString_Wraps(t *testing.T) {
	c := New()
	c.PrintString("ABCD", Cols-2, 3)

	got := []byte{c.screen.Chars[3][Cols-2], c.screen.Chars[3][Cols-1], c.screen.Chars[3][0], c.screen.Chars[3][1]}
	if !bytes.Equal(got, []byte("ABCD")) {
		t.Errorf("Expected wrap within the row, got %q", got)
	}
	if c.screen.Chars[4][0] != 0 {
		t.Error("Expected next row untouched")
	}
}

func TestPrintString_RowOutOfRange(t *testing.T) {
	c := New()
	c.PrintString("X", 0, Rows)
	c.PrintColorString("X", 0, -1, MakeAttr(1, 1))
	if c.screen != (Screen{}) {
		t.Error("Expected out-of-range rows to be ignored")
	}
}

func TestPaintArea(t *testing.T) {
	c := New()
	c.PrintString("hello", 0, 0)
	attr := MakeAttr(14, 1)
	c.PaintArea(Cols-2, 0, 5, 2, attr)

	if c.screen.Colors[0][Cols-1] != attr || c.screen.Colors[1][Cols-2] != attr {
		t.Error("Expected area painted")
	}
	if c.screen.Colors[0][0] != 0 {
		t.Error("Expected painting clipped, not wrapped")
	}
	if c.screen.Chars[0][0] != 'h' {
		t.Error("Expected glyphs untouched")
	}
}

func TestPrintColorString(t *testing.T) {
	c := New()
	attr := MakeAttr(2, 0)
	c.PrintColorString("ok", 5, 5, attr)
	if c.screen.Chars[5][5] != 'o' || c.screen.Colors[5][6] != attr || c.screen.Colors[5][7] != 0 {
		t.Error("Expected glyphs and attributes over exactly the string")
	}
}

func TestDrawImage(t *testing.T) {
	img := ansibin.Image{Data: []byte{'A', 0x1F, ' ', 0x2E, 'B', 0x4F}}

	tests := []struct {
		name        string
		transparent bool
		wantGlyph   byte
		wantAttr    Attr
	}{
		{"Opaque", false, ' ', 0x2E},
		{"Transparent", true, '#', 0x07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.PrintColorString("###", 0, 0, 0x07)
			c.DrawImage(img, tt.transparent)

			if c.screen.Chars[0][0] != 'A' || c.screen.Chars[0][2] != 'B' {
				t.Error("Expected non-space cells copied")
			}
			if c.screen.Chars[0][1] != tt.wantGlyph || c.screen.Colors[0][1] != tt.wantAttr {
				t.Errorf("Expected middle cell %q/%#x, got %q/%#x",
					tt.wantGlyph, tt.wantAttr, c.screen.Chars[0][1], c.screen.Colors[0][1])
			}
		})
	}
}

func TestDrawImage_Truncated(t *testing.T) {
	data := bytes.Repeat([]byte{'x', 0x07}, Cols*Rows+10)
	c := New()
	c.DrawImage(ansibin.Image{Data: data}, false)
	if c.screen.Chars[Rows-1][Cols-1] != 'x' {
		t.Error("Expected screen filled")
	}
}

func TestSaveScreen_RoundTrip(t *testing.T) {
	c := New()
	c.PrintColorString("round trip", 3, 7, MakeAttr(9, 2))
	img := c.SaveScreen()
	if img.Len() != Cols*Rows {
		t.Fatalf("Expected %d cells, got %d", Cols*Rows, img.Len())
	}

	d := New()
	d.DrawImage(img, false)
	if d.screen != c.screen {
		t.Error("Expected DrawImage(SaveScreen()) to reproduce the screen")
	}
}

func TestBackup(t *testing.T) {
	c := New()
	c.PrintString("keep", 0, 0)
	c.SaveBackup()
	c.ClearScreen()
	c.RestoreBackup()
	if c.screen.Chars[0][0] != 'k' {
		t.Error("Expected RestoreBackup to bring back the snapshot")
	}
}

func TestFromImage(t *testing.T) {
	pal := palette.Default()
	src := image.NewRGBA(image.Rect(0, 0, 160, 100))
	red := pal.RGBA(12)
	for y := 0; y < 100; y++ {
		for x := 80; x < 160; x++ {
			src.Set(x, y, red)
		}
	}
	src.Set(0, 0, color.Black)

	c := New()
	c.FromImage(src, pal)
	if c.Block(0, 0) != 0 || c.Block(Cols-1, BlockRows-1) != 12 {
		t.Errorf("Expected black left and light red right, got %d and %d",
			c.Block(0, 0), c.Block(Cols-1, BlockRows-1))
	}
}
