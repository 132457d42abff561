package display

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// cp437Control holds the printable shapes code page 437 shows for the
// control range 0x00-0x1F
var cp437Control = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// glyphRunes caches the Unicode rune for every glyph byte
var glyphRunes = func() [256]rune {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	var table [256]rune
	for i := 0; i < 256; i++ {
		b := byte(i)
		var r rune
		switch {
		case b < 0x20:
			r = cp437Control[b]
		case b == 0x7F:
			r = '⌂'
		default:
			r = charmap.CodePage437.DecodeByte(b)
		}
		// Cells are one column wide; anything else would shift the row
		if cond.RuneWidth(r) != 1 {
			r = '?'
		}
		table[i] = r
	}
	return table
}()

// GlyphRune maps a code page 437 glyph byte to its Unicode rune
func GlyphRune(b byte) rune {
	return glyphRunes[b]
}
