package max7219

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadSketch is returned when an ASCII sketch cannot be read as a pattern.
var ErrBadSketch = errors.New("max7219: invalid sketch")

// Sketch renders the pattern as eight lines of eight runes.
func Sketch(p *Pattern, on, off rune) []string {
	lines := make([]string, Size)
	for row := 0; row < Size; row++ {
		var b strings.Builder
		for col := 0; col < Size; col++ {
			if p.Get(row, col) {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		lines[row] = b.String()
	}
	return lines
}

// Runes ParseSketch reads as lit and unlit cells.
const (
	LitGlyphs   = "#@Xx1*●"
	UnlitGlyphs = ".0-_ ·"
)

// SketchGlyph reports whether ParseSketch reads r as a lit or an unlit cell.
// ok is false for runes ParseSketch rejects.
func SketchGlyph(r rune) (on, ok bool) {
	switch {
	case strings.ContainsRune(LitGlyphs, r):
		return true, true
	case strings.ContainsRune(UnlitGlyphs, r):
		return false, true
	}
	return false, false
}

// ParseSketch reads a pattern drawn in ASCII. Lit cells are any of # @ X x 1 * ●
// and unlit cells any of . 0 - _ · or a space.
//
// Empty lines are skipped. A line holding only spaces is a row of unlit cells,
// so sketches drawn with a space as the unlit glyph read back unchanged.
// Short rows or sketches are padded with unlit cells.
func ParseSketch(lines []string) (*Pattern, error) {
	p := New()
	row := 0
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		// Trailing blanks are unlit and only count toward the row width
		line = strings.TrimRight(line, " \t")
		if row == Size {
			if line == "" {
				continue
			}
			return nil, fmt.Errorf("%w: more than %d rows (line %d)", ErrBadSketch, Size, i+1)
		}
		col := 0
		for _, r := range line {
			if col == Size {
				return nil, fmt.Errorf("%w: more than %d columns (line %d)", ErrBadSketch, Size, i+1)
			}
			on, ok := SketchGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at line %d, column %d", ErrBadSketch, r, i+1, col+1)
			}
			if on {
				p.Set(row, col, true)
			}
			col++
		}
		row++
	}
	return p, nil
}
