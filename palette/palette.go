// Package palette models the 16 text-mode DAC color registers.
// Components are 6-bit (0-63) as on VGA hardware.
package palette

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Size is the number of color registers addressable from attribute nibbles
const Size = 16

// DAC is a single register value, 6 bits per channel
type DAC struct {
	R, G, B uint8
}

// Palette holds the 16 text-mode colors
type Palette [Size]DAC

// egaColors is the power-on text palette
var egaColors = Palette{
	{0, 0, 0},    // 0: Black
	{0, 0, 42},   // 1: Blue
	{0, 42, 0},   // 2: Green
	{0, 42, 42},  // 3: Cyan
	{42, 0, 0},   // 4: Red
	{42, 0, 42},  // 5: Magenta
	{42, 21, 0},  // 6: Brown
	{42, 42, 42}, // 7: Light Gray
	{21, 21, 21}, // 8: Dark Gray
	{21, 21, 63}, // 9: Light Blue
	{21, 63, 21}, // 10: Light Green
	{21, 63, 63}, // 11: Light Cyan
	{63, 21, 21}, // 12: Light Red
	{63, 21, 63}, // 13: Light Magenta
	{63, 63, 21}, // 14: Yellow
	{63, 63, 63}, // 15: White
}

// Default returns the standard EGA text palette
func Default() *Palette {
	p := egaColors
	return &p
}

// Set programs register i. Components are masked to 6 bits; out-of-range
// registers are ignored.
func (p *Palette) Set(i int, r, g, b uint8) {
	if i < 0 || i >= Size {
		return
	}
	p[i] = DAC{r & 0x3F, g & 0x3F, b & 0x3F}
}

// Get reads register i
func (p *Palette) Get(i int) (r, g, b uint8) {
	if i < 0 || i >= Size {
		return 0, 0, 0
	}
	d := p[i]
	return d.R, d.G, d.B
}

// Expand converts a 6-bit DAC component to 8 bits
func Expand(v uint8) uint8 {
	v &= 0x3F
	return (v << 2) | (v >> 4)
}

// RGBA returns register i as an 8-bit color
func (p *Palette) RGBA(i int) color.RGBA {
	r, g, b := p.Get(i)
	return color.RGBA{Expand(r), Expand(g), Expand(b), 0xFF}
}

// Randomize fills registers lo..hi inclusive with random colors
func (p *Palette) Randomize(lo, hi int, rng *rand.Rand) {
	for i := max(lo, 0); i <= min(hi, Size-1); i++ {
		p.Set(i, uint8(rng.Intn(64)), uint8(rng.Intn(64)), uint8(rng.Intn(64)))
	}
}

// Nearest returns the register closest to c in CIE Lab space
func (p *Palette) Nearest(c color.Color) uint8 {
	target, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent
		return 0
	}

	best := 0
	bestDist := -1.0
	for i := range p {
		cand, _ := colorful.MakeColor(p.RGBA(i))
		d := target.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// ParseHex converts "#rrggbb" to a 6-bit DAC value
func ParseHex(s string) (DAC, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return DAC{}, errors.Wrapf(err, "palette: parse %q", s)
	}
	r, g, b := c.RGB255()
	return DAC{r >> 2, g >> 2, b >> 2}, nil
}
