// Package max7219 converts 8x8 LED dot-matrix patterns for MAX7219-driven
// displays to and from the hexadecimal array literals used in firmware.
//
// The MAX7219 drives an 8x8 matrix through eight digit registers, one per
// row. Each register takes a byte whose MSB is the leftmost column. A pattern
// is therefore exactly eight bytes, and firmware usually stores it as a C
// array literal:
//
//	byte smiley[] = {0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C};
//
// # Emitting Code
//
// Format renders a Pattern as an array literal. Trailing all-off rows are
// dropped because firmware zero-fills the rest of the array, but at least one
// value is always emitted:
//
//	p := max7219.New()
//	p.Set(0, 3, true)
//	p.Set(0, 4, true)
//	fmt.Println(max7219.Format(p)) // {0x18}
//
// FormatFull keeps all eight rows.
//
// # Importing Code
//
// Parse is tolerant of whatever surrounds the values, so a whole line of
// firmware can be pasted:
//
//	p, err := max7219.Parse("const uint8_t heart[] PROGMEM = {0x66, 0xFF, 0xFF, 0x7E, 0x3C, 0x18};")
//
// Every 0x?? literal (lowercase x, exactly two hex digits taken) is a row, in
// order. Only the first eight are used and missing rows are off. Text without
// any literal yields ErrNoValues.
//
// # Editing
//
// Patterns support Get, Set, Toggle, Clear and Invert. ParseSketch and Sketch
// convert to and from ASCII art:
//
//	p, _ := max7219.ParseSketch([]string{
//		"..####..",
//		".#....#.",
//		"#.#..#.#",
//	})
//
// # Snapshots
//
// A pattern can be saved as a .pat file, a JSON document holding the grid:
//
//	{"grid": [[0,0,1,1,1,1,0,0], ...]}
//
// Use SaveFile and LoadFile, or WriteSnapshot and ReadSnapshot with any
// io.Writer or io.Reader.
//
// # Drawing With Images
//
// Canvas implements the display.Drawer interface from periph.io, so any image
// can be drawn onto a pattern. Pixels are thresholded with image1bit.BitModel:
//
//	c := max7219.NewCanvas(nil)
//	c.Draw(c.Bounds(), img, image.Point{})
//	fmt.Println(c.Code())
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219
