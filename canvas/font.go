package canvas

import (
	"strings"
	"unicode"
)

// Glyph is a large-font character bitmap. Bits[row] holds the row pixels
// with the leftmost column in bit Width-1. Rise lifts the glyph above the
// text baseline (used by '$').
type Glyph struct {
	Width  int
	Height int
	Rise   int
	Bits   [8]uint8
}

// Set reports whether the glyph pixel at (col, row) is lit
func (g Glyph) Set(col, row int) bool {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return false
	}
	return g.Bits[row]&(1<<(g.Width-1-col)) != 0
}

// LineAdvance is the virtual row step for '\n' in LargeText
const LineAdvance = 6

// largeFontSource lists glyph rows separated by spaces; a leading '-' raises
// the glyph by one row
var largeFontSource = map[rune]string{
	' ': "000 000 000 000 000",
	'!': "1 1 1 0 1",
	'"': "101 101 000 000 000",
	'#': "01010 11111 01010 11111 01010",
	'$': "-010 111 100 111 001 111 010",
	'%': "100 001 010 100 001",
	'(': "001 010 010 010 001",
	')': "100 010 010 010 100",
	'+': "000 010 111 010 000",
	',': "0 0 0 0 1 1",
	'-': "000 000 111 000 000",
	'/': "001 001 010 100 100",
	'.': "0 0 0 0 1",
	'0': "111 101 101 101 111",
	'1': "010 110 010 010 010",
	'2': "111 001 111 100 111",
	'3': "111 001 111 001 111",
	'4': "101 101 111 001 001",
	'5': "111 100 111 001 111",
	'6': "111 100 111 101 111",
	'7': "111 001 001 001 001",
	'8': "111 101 111 101 111",
	'9': "111 101 111 001 001",
	':': "000 010 000 010 000",
	';': "000 010 000 010 010",
	'<': "001 010 100 010 001",
	'>': "100 010 001 010 100",
	'?': "111 001 010 000 010",
	'@': "111 111 111 100 111",
	'A': "111 101 111 101 101",
	'B': "110 101 110 101 110",
	'C': "111 100 100 100 111",
	'D': "110 101 101 101 110",
	'E': "111 100 111 100 111",
	'F': "111 100 110 100 100",
	'G': "111 100 101 101 111",
	'H': "101 101 111 101 101",
	'I': "111 010 010 010 111",
	'J': "001 001 001 101 111",
	'K': "101 101 110 101 101",
	'L': "100 100 100 100 111",
	'M': "11111 10101 10101 10001 10001",
	'N': "110 101 101 101 101",
	'O': "111 101 101 101 111",
	'P': "111 101 111 100 100",
	'Q': "111 101 101 101 111 001",
	'R': "110 101 110 101 101",
	'S': "111 100 111 001 111",
	'T': "111 010 010 010 010",
	'U': "101 101 101 101 111",
	'V': "101 101 101 101 010",
	'W': "10001 10001 10101 10101 11111",
	'X': "101 101 010 101 101",
	'Y': "101 101 010 010 010",
	'Z': "111 001 010 100 111",
}

// LargeFont maps characters to their parsed glyphs
var LargeFont = func() map[rune]Glyph {
	font := make(map[rune]Glyph, len(largeFontSource))
	for r, src := range largeFontSource {
		font[r] = parseGlyph(src)
	}
	return font
}()

// fallbackGlyph is drawn for characters missing from LargeFont
var fallbackGlyph = parseGlyph("111 111 111 111 111")

func parseGlyph(src string) Glyph {
	var g Glyph
	if strings.HasPrefix(src, "-") {
		g.Rise = 1
		src = src[1:]
	}
	rows := strings.Fields(src)
	if len(rows) > len(g.Bits) {
		rows = rows[:len(g.Bits)]
	}
	for _, row := range rows {
		var bits uint8
		for _, ch := range row {
			bits <<= 1
			if ch == '1' {
				bits |= 1
			}
		}
		g.Bits[g.Height] = bits
		g.Width = max(g.Width, len(row))
		g.Height++
	}
	// Left-align rows narrower than the widest one
	for i := 0; i < g.Height; i++ {
		if n := len(rows[i]); n < g.Width {
			g.Bits[i] <<= g.Width - n
		}
	}
	return g
}

// LookupGlyph returns the large-font glyph for r, falling back to a solid
// block for unsupported characters
func LookupGlyph(r rune) Glyph {
	if g, ok := LargeFont[unicode.ToUpper(r)]; ok {
		return g
	}
	return fallbackGlyph
}

// LargeChar draws one large-font character into the block grid with its top
// left at (x, y) and returns the glyph width
func (c *Canvas) LargeChar(x, y int, r rune, color uint8) int {
	g := LookupGlyph(r)
	top := y - g.Rise
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Set(col, row) {
				c.SetBlock(x+col, top+row, color)
			}
		}
	}
	return g.Width
}

// LargeText draws s with the large font. '\n' returns to x and moves down
// LineAdvance virtual rows; characters are separated by one empty column.
func (c *Canvas) LargeText(x, y int, s string, color uint8) {
	cx := x
	for _, r := range s {
		if r == '\n' {
			cx = x
			y += LineAdvance
			continue
		}
		cx += c.LargeChar(cx, y, r, color) + 1
	}
}
