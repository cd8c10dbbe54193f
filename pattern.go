// Package max7219 converts 8x8 LED dot-matrix patterns for MAX7219-driven
// displays to and from the hexadecimal array literals used in firmware.
//
// See the examples for how to use this package.
package max7219

import (
	"bytes"
	"fmt"
	"image"

	"github.com/flavioheleno/max7219/image1bit"
)

// Size is the number of rows and columns of a MAX7219 matrix.
const Size = 8

// Pattern is an 8x8 grid of LEDs.
//
// Row r is stored as a single byte where bit 7 is column 0 (leftmost), which
// is the value the MAX7219 digit register for that row expects.
type Pattern struct {
	img *image1bit.HorizontalBits
}

// New returns a pattern with every LED off.
func New() *Pattern {
	return &Pattern{img: image1bit.NewHorizontalBits(image.Rect(0, 0, Size, Size))}
}

// FromRows returns a pattern whose row r is rows[r].
// Missing rows are left off and values past the eighth are ignored.
func FromRows(rows []byte) *Pattern {
	p := New()
	copy(p.img.Pix, rows)
	return p
}

// Get reports whether the LED at (row, col) is lit.
// Coordinates outside the grid report false.
func (p *Pattern) Get(row, col int) bool {
	return p.img.BitAt(col, row).On
}

// Set lights or clears the LED at (row, col).
// Coordinates outside the grid are ignored.
func (p *Pattern) Set(row, col int, on bool) {
	p.img.SetBit(col, row, image1bit.Bit{On: on})
}

// Toggle flips the LED at (row, col).
func (p *Pattern) Toggle(row, col int) {
	p.img.Toggle(col, row)
}

// Clear turns every LED off.
func (p *Pattern) Clear() {
	clear(p.img.Pix)
}

// Invert flips every LED.
func (p *Pattern) Invert() {
	for i := range p.img.Pix {
		p.img.Pix[i] = ^p.img.Pix[i]
	}
}

// Rows returns the row bytes, MSB = leftmost column.
func (p *Pattern) Rows() [Size]byte {
	var rows [Size]byte
	copy(rows[:], p.img.Pix)
	return rows
}

// Lit returns the number of LEDs that are on.
func (p *Pattern) Lit() int {
	n := 0
	for _, b := range p.img.Pix {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// Equal reports whether both patterns light the same LEDs.
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(p.img.Pix, other.img.Pix)
}

// Clone returns an independent copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	return FromRows(p.img.Pix)
}

// Image returns the live 8x8 image backing the pattern.
// Writes to the image are visible through the pattern.
func (p *Pattern) Image() *image1bit.HorizontalBits {
	return p.img
}

// String returns a string representation of the pattern.
func (p *Pattern) String() string {
	return fmt.Sprintf("max7219.Pattern{% X}", p.img.Pix)
}
