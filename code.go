package max7219

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoValues is returned when pasted code contains no 0x?? byte literal.
var ErrNoValues = errors.New("max7219: no valid 0x?? values found")

// hexByte matches a two-digit byte literal. Only a lowercase x is accepted and
// any further hex digits after the first two are left unmatched.
var hexByte = regexp.MustCompile(`0x([0-9A-Fa-f]{2})`)

// Format renders the pattern as a C array literal such as {0x18, 0x3C}.
// Trailing all-off rows are dropped, but at least one value is always emitted.
func Format(p *Pattern) string {
	rows := p.Rows()
	n := len(rows)
	for n > 1 && rows[n-1] == 0 {
		n--
	}
	return formatRows(rows[:n])
}

// FormatFull renders all eight rows without trimming.
func FormatFull(p *Pattern) string {
	rows := p.Rows()
	return formatRows(rows[:])
}

func formatRows(rows []byte) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02X", r)
	}
	b.WriteByte('}')
	return b.String()
}

// ParseValues extracts every 0x?? byte literal from s, in order.
// Text around the literals is ignored.
func ParseValues(s string) ([]byte, error) {
	matches := hexByte.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, ErrNoValues
	}
	values := make([]byte, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("max7219: bad byte literal %q: %w", m[0], err)
		}
		values = append(values, byte(v))
	}
	return values, nil
}

// Parse builds a pattern from pasted code. The first eight byte literals
// become rows 0-7; rows without a value stay off.
func Parse(s string) (*Pattern, error) {
	values, err := ParseValues(s)
	if err != nil {
		return nil, err
	}
	return FromRows(values), nil
}
