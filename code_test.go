package max7219

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		rows []byte
		want string
	}{
		{"blank keeps one value", nil, "{0x00}"},
		{"single top row", []byte{0x18}, "{0x18}"},
		{"trailing zeros trimmed", []byte{0x3C, 0x42, 0x00, 0x00}, "{0x3C, 0x42}"},
		{"inner zeros kept", []byte{0x81, 0x00, 0x81}, "{0x81, 0x00, 0x81}"},
		{"leading zeros kept", []byte{0x00, 0x00, 0x01}, "{0x00, 0x00, 0x01}"},
		{"uppercase hex", []byte{0xab, 0xcd}, "{0xAB, 0xCD}"},
		{"full pattern", []byte{0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C},
			"{0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C}"},
		{"last row only", []byte{0, 0, 0, 0, 0, 0, 0, 0x01},
			"{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(FromRows(tt.rows)); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFull(t *testing.T) {
	want := "{0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}"
	if got := FormatFull(FromRows([]byte{0x18})); got != want {
		t.Errorf("FormatFull() = %q, want %q", got, want)
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"array literal", "{0x18, 0x3C}", []byte{0x18, 0x3C}},
		{"surrounding code", "byte a[] = {0x01,0x02};  // arrow", []byte{0x01, 0x02}},
		{"lowercase digits", "0xab 0xCd", []byte{0xAB, 0xCD}},
		{"only first two digits", "0x1234", []byte{0x12}},
		{"embedded in token", "10x7F", []byte{0x7F}},
		{"more than eight", "0x01 0x02 0x03 0x04 0x05 0x06 0x07 0x08 0x09",
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"multiline", "{0x10,\n 0x20,\r\n\t0x30}", []byte{0x10, 0x20, 0x30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.input)
			if err != nil {
				t.Fatalf("ParseValues(%q) error = %v", tt.input, err)
			}
			if string(got) != string(tt.want) {
				t.Errorf("ParseValues(%q) = % X, want % X", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseValuesNoMatch(t *testing.T) {
	for _, input := range []string{"", "hello", "0X1F", "0x1", "0xG0", "{1, 2, 3}"} {
		_, err := ParseValues(input)
		if !errors.Is(err, ErrNoValues) {
			t.Errorf("ParseValues(%q) error = %v, want ErrNoValues", input, err)
		}
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("{0x66, 0xFF, 0xFF, 0x7E, 0x3C, 0x18}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := [Size]byte{0x66, 0xFF, 0xFF, 0x7E, 0x3C, 0x18, 0x00, 0x00}
	if got := p.Rows(); got != want {
		t.Errorf("Rows() = % X, want % X", got, want)
	}
	if !p.Get(0, 1) || p.Get(0, 0) {
		t.Error("row 0 = 0x66 should light columns 1, 2, 5, 6")
	}
}

func TestParseUsesFirstEight(t *testing.T) {
	p, err := Parse("0x01 0x02 0x03 0x04 0x05 0x06 0x07 0x08 0xFF 0xFF")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := [Size]byte{1, 2, 3, 4, 5, 6, 7, 8}
	if got := p.Rows(); got != want {
		t.Errorf("Rows() = % X, want % X", got, want)
	}
}

func TestParseError(t *testing.T) {
	p, err := Parse("no code here")
	if !errors.Is(err, ErrNoValues) {
		t.Errorf("Parse() error = %v, want ErrNoValues", err)
	}
	if p != nil {
		t.Errorf("Parse() = %v, want nil on error", p)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	patterns := [][]byte{
		nil,
		{0xFF},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80},
		{0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C},
		{0x01, 0x00, 0x00},
	}

	for _, rows := range patterns {
		p := FromRows(rows)
		for _, code := range []string{Format(p), FormatFull(p)} {
			q, err := Parse(code)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", code, err)
			}
			if !q.Equal(p) {
				t.Errorf("Parse(%q) = %v, want %v", code, q, p)
			}
		}
	}
}
