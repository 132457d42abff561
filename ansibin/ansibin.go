// Package ansibin reads and writes .bin ANSI art: a raw stream of
// (glyph, attribute) byte pairs laid out row-major over an 80-column
// text screen, ended by a SUB (26) byte.
package ansibin

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const (
	// Cols is the row width of a .bin image in cells
	Cols = 80
	// MaxRows bounds how many screen rows a loaded image may cover
	MaxRows = 25
	// MaxBytes is the largest payload kept from a file
	MaxBytes = 2 * Cols * MaxRows
	// Terminator ends the payload
	Terminator byte = 26
)

// Image is a flat buffer of glyph/attribute pairs
type Image struct {
	Data []byte
}

// Len returns the number of complete cells in the image
func (img Image) Len() int {
	return len(img.Data) / 2
}

// Empty reports whether the image holds no cells
func (img Image) Empty() bool {
	return img.Len() == 0
}

// Cell returns the glyph and attribute of cell i
func (img Image) Cell(i int) (glyph, attr byte) {
	if i < 0 || i >= img.Len() {
		return 0, 0
	}
	return img.Data[2*i], img.Data[2*i+1]
}

// Decode reads bytes until the terminator, EOF, or MaxBytes.
// Any byte equal to Terminator ends the payload, glyph or attribute.
func Decode(r io.Reader) (Image, error) {
	br := bufio.NewReader(r)
	data := make([]byte, 0, MaxBytes)

	for len(data) < MaxBytes {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Image{}, errors.Wrap(err, "ansibin: read")
		}
		if b == Terminator {
			break
		}
		data = append(data, b)
	}
	return Image{Data: data}, nil
}

// Load decodes the file at path. A missing or unreadable file yields an
// empty image; the failure is only logged.
func Load(path string) Image {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("ansibin: open %s: %v", path, err)
		return Image{}
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		log.Printf("ansibin: decode %s: %v", path, err)
		return Image{}
	}
	return img
}

// Glyphs Sanitize can rewrite without changing how a cell looks
const (
	glyphBlank byte = 0
	glyphSpace byte = 32
	glyphFull  byte = 219
	glyphLower byte = 220
	glyphUpper byte = 223
)

// Sanitize returns a copy of img in which no attribute byte equals the
// terminator where an equivalent cell exists. Half blocks swap to the
// opposite half with the nibbles exchanged; full blocks and blanks drop the
// nibble they never show. Other cells are left as they are.
func Sanitize(img Image) Image {
	data := make([]byte, len(img.Data))
	copy(data, img.Data)

	for i := 0; i+1 < len(data); i += 2 {
		attr := data[i+1]
		if attr != Terminator {
			continue
		}
		fg, bg := attr&0x0F, attr>>4
		switch data[i] {
		case glyphUpper:
			data[i], data[i+1] = glyphLower, bg|fg<<4
		case glyphLower:
			data[i], data[i+1] = glyphUpper, bg|fg<<4
		case glyphFull:
			data[i+1] = fg
		case glyphSpace, glyphBlank:
			data[i+1] = bg | bg<<4
		}
	}
	return Image{Data: data}
}

// Encode writes the image payload followed by the terminator
func Encode(w io.Writer, img Image) error {
	if _, err := w.Write(img.Data); err != nil {
		return errors.Wrap(err, "ansibin: write payload")
	}
	if _, err := w.Write([]byte{Terminator}); err != nil {
		return errors.Wrap(err, "ansibin: write terminator")
	}
	return nil
}

// Save encodes the image to path, replacing any existing file
func Save(path string, img Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "ansibin: create %s", path)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "ansibin: close %s", path)
}
