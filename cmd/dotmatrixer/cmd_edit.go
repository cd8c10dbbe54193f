package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle FILE.pat ROW COL",
	Short: "Flip one LED of a pattern",
	Long: `Flips the LED at ROW, COL (both 0-7, 0,0 is top left) and prints the new code.
The file is created when it does not exist.`,
	Args: cobra.ExactArgs(3),
	RunE: runToggle,
}

var clearCmd = &cobra.Command{
	Use:   "clear FILE.pat",
	Short: "Turn every LED of a pattern off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editPattern(cmd, args[0], (*max7219.Pattern).Clear)
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert FILE.pat",
	Short: "Flip every LED of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editPattern(cmd, args[0], (*max7219.Pattern).Invert)
	},
}

func runToggle(cmd *cobra.Command, args []string) error {
	row, err := parseIndex("row", args[1])
	if err != nil {
		return err
	}
	col, err := parseIndex("column", args[2])
	if err != nil {
		return err
	}
	return editPattern(cmd, args[0], func(p *max7219.Pattern) {
		p.Toggle(row, col)
	})
}

func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= max7219.Size {
		return 0, fmt.Errorf("%s %q must be between 0 and %d", name, s, max7219.Size-1)
	}
	return n, nil
}

// editPattern loads path (blank when missing), applies edit, writes the file
// back in place and prints the resulting code.
func editPattern(cmd *cobra.Command, path string, edit func(*max7219.Pattern)) error {
	p, err := max7219.LoadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("starting a new pattern", zap.String("path", path))
		p, err = max7219.New(), nil
	}
	if err != nil {
		return err
	}

	edit(p)

	var buf bytes.Buffer
	if err := max7219.WriteSnapshot(&buf, p); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}
	logger.Debug("pattern updated", zap.String("path", path), zap.Int("lit", p.Lit()))

	fmt.Fprintln(cmd.OutOrStdout(), formatCode(p))
	return nil
}
