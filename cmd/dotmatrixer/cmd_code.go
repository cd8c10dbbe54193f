package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	codeFull   bool
	codeCopy   bool
	outputPath string

	// writeClipboard is replaced in tests.
	writeClipboard = clipboard.WriteAll
)

var codeCmd = &cobra.Command{
	Use:   "code FILE.pat",
	Short: "Print the array literal of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runCode,
}

var loadCmd = &cobra.Command{
	Use:   "load [CODE...]",
	Short: "Load a pattern from pasted code",
	Long: `Reads firmware code from the arguments, or stdin when none are given, and
prints the resulting grid. Every 0x?? literal is a row; only the first eight
are used and text around them is ignored.

Example:
  dotmatrixer load "byte heart[] = {0x66, 0xFF, 0xFF, 0x7E, 0x3C, 0x18};" -o heart.pat`,
	RunE: runLoad,
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Read an ASCII sketch from stdin and print its code",
	Long: `Reads up to eight lines from stdin. Lit cells are any of # @ X x 1 * ● and
unlit cells any of . 0 - _ · or a space. Empty lines are skipped; a line of
spaces is a row of unlit cells.

Example:
  printf '..####..\n.#....#.\n' | dotmatrixer draw -o face.pat`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	codeCmd.Flags().BoolVar(&codeFull, "full", false, "Print all eight rows, without trimming")
	codeCmd.Flags().BoolVar(&codeCopy, "copy", false, "Copy the code to the clipboard")

	loadCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the pattern to this .pat file")
	drawCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the pattern to this .pat file")
}

func runCode(cmd *cobra.Command, args []string) error {
	p, err := max7219.LoadFile(args[0])
	if err != nil {
		return err
	}

	code := formatCode(p)
	if codeFull {
		code = max7219.FormatFull(p)
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)

	if codeCopy {
		if err := writeClipboard(code); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.Info("code copied to clipboard", zap.String("code", code))
	}
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	src := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		src = string(data)
	}

	p, err := max7219.Parse(src)
	if err != nil {
		return err
	}
	logger.Debug("pattern parsed", zap.Stringer("pattern", p))

	printPattern(cmd.OutOrStdout(), p)
	return saveOutput(p)
}

func runDraw(cmd *cobra.Command, args []string) error {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	p, err := max7219.ParseSketch(lines)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatCode(p))
	return saveOutput(p)
}

// printPattern writes the sketch of p followed by its code.
func printPattern(w io.Writer, p *max7219.Pattern) {
	for _, line := range max7219.Sketch(p, cfg.On(), cfg.Off()) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, formatCode(p))
}

// saveOutput writes p to the --output file, if one was given.
func saveOutput(p *max7219.Pattern) error {
	if outputPath == "" {
		return nil
	}
	path, err := max7219.SaveFile(outputPath, p)
	if err != nil {
		return err
	}
	logger.Info("pattern saved", zap.String("path", path))
	return nil
}
