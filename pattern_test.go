package max7219

import (
	"testing"
)

func TestNewIsBlank(t *testing.T) {
	p := New()
	if got := p.Rows(); got != [Size]byte{} {
		t.Errorf("Rows() = % X, want all zero", got)
	}
	if p.Lit() != 0 {
		t.Errorf("Lit() = %d, want 0", p.Lit())
	}
}

func TestRowsMSBIsLeftmost(t *testing.T) {
	tests := []struct {
		name string
		cols []int
		want byte
	}{
		{"leftmost", []int{0}, 0x80},
		{"rightmost", []int{7}, 0x01},
		{"center pair", []int{3, 4}, 0x18},
		{"edges", []int{0, 7}, 0x81},
		{"all", []int{0, 1, 2, 3, 4, 5, 6, 7}, 0xFF},
		{"alternating", []int{0, 2, 4, 6}, 0xAA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			for _, col := range tt.cols {
				p.Set(2, col, true)
			}
			rows := p.Rows()
			if rows[2] != tt.want {
				t.Errorf("Rows()[2] = 0x%02X, want 0x%02X", rows[2], tt.want)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	p := FromRows([]byte{0x80, 0x01})

	if !p.Get(0, 0) {
		t.Error("Get(0, 0) = false, want true")
	}
	if !p.Get(1, 7) {
		t.Error("Get(1, 7) = false, want true")
	}
	want := [Size]byte{0x80, 0x01}
	if got := p.Rows(); got != want {
		t.Errorf("Rows() = % X, want % X", got, want)
	}

	// Values past the eighth are ignored
	long := FromRows([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if got := long.Rows(); got != [Size]byte{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Errorf("Rows() = % X, want 01..08", got)
	}
}

func TestFromRowsRoundTrip(t *testing.T) {
	p := New()
	p.Set(0, 0, true)
	p.Set(3, 5, true)
	p.Set(7, 7, true)

	rows := p.Rows()
	if q := FromRows(rows[:]); !q.Equal(p) {
		t.Errorf("FromRows(Rows()) = %v, want %v", q, p)
	}
}

func TestToggle(t *testing.T) {
	p := New()

	p.Toggle(4, 2)
	if !p.Get(4, 2) {
		t.Error("Toggle(4, 2) did not light the LED")
	}
	p.Toggle(4, 2)
	if p.Get(4, 2) {
		t.Error("second Toggle(4, 2) did not clear the LED")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	p := New()

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		p.Set(rc[0], rc[1], true)
		p.Toggle(rc[0], rc[1])
		if p.Get(rc[0], rc[1]) {
			t.Errorf("Get(%d, %d) = true, want false", rc[0], rc[1])
		}
	}
	if p.Lit() != 0 {
		t.Errorf("Lit() = %d after out-of-range writes, want 0", p.Lit())
	}
}

func TestClear(t *testing.T) {
	p := FromRows([]byte{0xFF, 0x0F, 0xF0})
	p.Clear()
	if p.Lit() != 0 {
		t.Errorf("Lit() = %d after Clear, want 0", p.Lit())
	}
}

func TestInvert(t *testing.T) {
	p := FromRows([]byte{0xF0, 0x00, 0xAA})
	p.Invert()

	want := [Size]byte{0x0F, 0xFF, 0x55, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if got := p.Rows(); got != want {
		t.Errorf("Rows() = % X, want % X", got, want)
	}

	p.Invert()
	if got := p.Rows(); got != [Size]byte{0xF0, 0x00, 0xAA} {
		t.Errorf("double Invert Rows() = % X, want F0 00 AA 00..", got)
	}
}

func TestLit(t *testing.T) {
	p := FromRows([]byte{0xFF, 0x81, 0x00, 0x10})
	if got := p.Lit(); got != 11 {
		t.Errorf("Lit() = %d, want 11", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := FromRows([]byte{0x3C})
	q := p.Clone()
	q.Toggle(0, 0)

	if p.Get(0, 0) {
		t.Error("toggling the clone changed the original")
	}
	if p.Equal(q) {
		t.Error("Equal() = true after diverging")
	}
	if p.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}

func TestImageIsLive(t *testing.T) {
	p := New()
	p.Image().Pix[5] = 0x42

	if !p.Get(5, 1) || !p.Get(5, 6) {
		t.Error("writes to Image() not visible through the pattern")
	}
}

func TestPatternString(t *testing.T) {
	p := FromRows([]byte{0x18, 0x3C})
	want := "max7219.Pattern{18 3C 00 00 00 00 00 00}"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
