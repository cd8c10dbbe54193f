package max7219

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Ext is the file extension of pattern snapshots.
const Ext = ".pat"

// ErrBadSnapshot is returned when a snapshot does not hold an 8x8 grid.
var ErrBadSnapshot = errors.New("max7219: invalid snapshot")

// snapshot is the on-disk form: {"grid": [[0, 1, ...], ...]}.
type snapshot struct {
	Grid [][]int `json:"grid"`
}

// WriteSnapshot writes p as a JSON grid of 0/1 cells.
func WriteSnapshot(w io.Writer, p *Pattern) error {
	s := snapshot{Grid: make([][]int, Size)}
	for row := range s.Grid {
		s.Grid[row] = make([]int, Size)
		for col := range s.Grid[row] {
			if p.Get(row, col) {
				s.Grid[row][col] = 1
			}
		}
	}
	return json.NewEncoder(w).Encode(&s)
}

// ReadSnapshot reads a JSON grid. Any non-zero cell is lit.
func ReadSnapshot(r io.Reader) (*Pattern, error) {
	var s snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if len(s.Grid) != Size {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadSnapshot, len(s.Grid), Size)
	}
	p := New()
	for row, cells := range s.Grid {
		if len(cells) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadSnapshot, row, len(cells), Size)
		}
		for col, v := range cells {
			p.Set(row, col, v != 0)
		}
	}
	return p, nil
}

// SaveFile writes p to path, adding the .pat extension when path has none.
// It returns the path actually written.
func SaveFile(path string, p *Pattern) (string, error) {
	if filepath.Ext(path) == "" {
		path += Ext
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteSnapshot(f, p); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
