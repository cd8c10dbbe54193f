// Package image1bit provides a 1-bit monochrome image format for LED dot matrices.
//
// Each byte contains 8 horizontally adjacent pixels, MSB first, which is the
// layout the MAX7219 digit registers expect for one matrix row.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents the state of a single LED.
type Bit struct {
	On bool
}

var (
	// On is a lit LED.
	On = Bit{On: true}
	// Off is an unlit LED.
	Off = Bit{}
)

// RGBA converts the Bit to opaque white (on) or opaque black (off).
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion on premultiplied components, so
	// transparent pixels stay dark.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit{On: y >= 0x8000}
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// HorizontalBits is a monochrome image where pixels are stored in horizontal bit packing.
// Each byte contains 8 pixels, bit 7 being the leftmost one.
type HorizontalBits struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalBits creates a new HorizontalBits image with the specified bounds.
// Rows whose width is not a multiple of 8 are padded to a whole byte.
func NewHorizontalBits(r image.Rectangle) *HorizontalBits {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalBits{Rect: r}
	}
	stride := (w + 7) / 8
	return &HorizontalBits{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalBits) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalBits) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *HorizontalBits) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *HorizontalBits) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit{On: p.Pix[offset]&mask != 0}
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalBits) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
func (p *HorizontalBits) SetBit(x, y int, c Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if c.On {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Toggle flips the pixel at (x, y).
func (p *HorizontalBits) Toggle(x, y int) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	p.Pix[offset] ^= mask
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// The leftmost pixel of each byte is bit 7.
func (p *HorizontalBits) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx%8)
	return
}
