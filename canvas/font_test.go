package canvas

import "testing"

func TestLookupGlyph(t *testing.T) {
	tests := []struct {
		name          string
		r             rune
		width, height int
		rise          int
	}{
		{"Letter", 'A', 3, 5, 0},
		{"Lowercase folds", 'a', 3, 5, 0},
		{"Wide", 'M', 5, 5, 0},
		{"Narrow", '!', 1, 5, 0},
		{"Descender", 'Q', 3, 6, 0},
		{"Raised", '$', 3, 7, 1},
		{"Fallback", '~', 3, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LookupGlyph(tt.r)
			if g.Width != tt.width || g.Height != tt.height || g.Rise != tt.rise {
				t.Errorf("Expected %dx%d rise %d, got %dx%d rise %d",
					tt.width, tt.height, tt.rise, g.Width, g.Height, g.Rise)
			}
		})
	}
}

func TestGlyphBits(t *testing.T) {
	g := LookupGlyph('T')
	want := []string{"###", ".#.", ".#.", ".#.", ".#."}
	for row, line := range want {
		for col, ch := range line {
			if g.Set(col, row) != (ch == '#') {
				t.Errorf("T pixel (%d,%d): expected %q", col, row, ch)
			}
		}
	}
	if g.Set(3, 0) || g.Set(-1, 0) || g.Set(0, 5) {
		t.Error("Expected out-of-glyph pixels unset")
	}
}

func TestLargeChar(t *testing.T) {
	c := New()
	w := c.LargeChar(10, 10, 'L', 6)
	if w != 3 {
		t.Errorf("Expected width 3, got %d", w)
	}
	if countColor(c, 6) != 7 {
		t.Errorf("Expected 7 lit blocks for L, got %d", countColor(c, 6))
	}
	if c.Block(10, 10) != 6 || c.Block(12, 14) != 6 || c.Block(11, 10) != 0 {
		t.Error("Expected L shape at (10,10)")
	}
}

func TestLargeChar_Rise(t *testing.T) {
	c := New()
	c.LargeChar(0, 10, '$', 2)
	// Top row of '$' is "010", drawn one row above y
	if c.Block(1, 9) != 2 {
		t.Error("Expected raised glyph to start one row above y")
	}
}

func TestLargeText(t *testing.T) {
	c := New()
	c.LargeText(0, 0, "IT\nI", 5)

	// I at x=0, T at x=4 after the one-column gap
	if c.Block(0, 0) != 5 || c.Block(3, 0) != 0 || c.Block(4, 0) != 5 {
		t.Error("Expected one empty column between glyphs")
	}
	if c.Block(1, LineAdvance+1) != 5 {
		t.Error("Expected newline to restart at x and advance LineAdvance rows")
	}
}
