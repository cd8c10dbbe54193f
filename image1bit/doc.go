// Package image1bit provides a 1-bit monochrome image format matching the row
// registers of the MAX7219 LED matrix controller.
//
// Pixels are stored in horizontal bit packing where each byte contains 8 pixels.
// Bit 7 (the MSB) is the leftmost pixel of the group.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7
//	Values: 1 0 0 1 1 0 0 0
//	Byte:   0x98
//
// This package provides:
//
// - Bit: A color type representing a lit or unlit LED
// - BitModel: A color model for converting standard Go colors to Bit
// - HorizontalBits: An image.Image implementation with one bit per pixel
//
// Example usage:
//
//	// Create an 8x8 image
//	img := image1bit.NewHorizontalBits(image.Rect(0, 0, 8, 8))
//
//	// Light the top-left LED
//	img.SetBit(0, 0, image1bit.On)
//
//	// Row 0 now reads 0x80
//	println(img.Pix[0])
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
