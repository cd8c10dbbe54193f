package max7219

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/max7219/image1bit"
	"periph.io/x/conn/v3/display"
)

// ErrHalted is returned by Canvas.Draw after Halt.
var ErrHalted = errors.New("max7219: halted")

// Canvas is a virtual 8x8 display that renders into a Pattern.
//
// It implements display.Drawer, so anything able to draw on a periph.io
// display can draw a pattern and get its firmware code back.
type Canvas struct {
	p      *Pattern
	halted bool
}

var _ display.Drawer = (*Canvas)(nil)

// NewCanvas returns a canvas drawing into p. A nil p starts from a blank pattern.
func NewCanvas(p *Pattern) *Canvas {
	if p == nil {
		p = New()
	}
	return &Canvas{p: p}
}

// ColorModel returns the color model of the canvas.
func (c *Canvas) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the 8x8 bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.p.img.Rect
}

// Draw draws src onto the canvas. The dst rectangle is clipped to the canvas
// and every source pixel is thresholded to on or off.
func (c *Canvas) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if c.halted {
		return ErrHalted
	}
	// Clip to canvas bounds, moving sp by the amount trimmed off dst
	clipped := dst.Intersect(c.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	dst = clipped

	// Fast path: a full-size bit image is copied as-is
	if srcImg, ok := src.(*image1bit.HorizontalBits); ok {
		if dst == c.Bounds() && sp == (image.Point{}) && srcImg.Rect == c.Bounds() {
			copy(c.p.img.Pix, srcImg.Pix)
			return nil
		}
	}

	draw.Draw(c.p.img, dst, src, sp, draw.Src)
	return nil
}

// Halt stops the canvas from accepting further draws.
func (c *Canvas) Halt() error {
	c.halted = true
	return nil
}

// Pattern returns the pattern the canvas draws into.
func (c *Canvas) Pattern() *Pattern {
	return c.p
}

// Code returns the trimmed array literal of the current pattern.
func (c *Canvas) Code() string {
	return Format(c.p)
}

// String returns a string representation of the canvas.
func (c *Canvas) String() string {
	return fmt.Sprintf("max7219.Canvas{%dx%d}", Size, Size)
}
