package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show FILE.pat",
	Short: "Display a pattern as a framed grid with its code",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := max7219.LoadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderGrid(p))
	fmt.Fprintln(cmd.OutOrStdout(), codeStyle.Render(formatCode(p)))
	return nil
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	codeStyle = lipgloss.NewStyle().
			Bold(true)
)

// renderGrid draws p with lit cells in the configured color. Cells are
// separated by a space so the grid looks square in most terminal fonts.
func renderGrid(p *max7219.Pattern) string {
	onStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.OnColor))

	rows := make([]string, max7219.Size)
	for row := range rows {
		cells := make([]string, max7219.Size)
		for col := range cells {
			if p.Get(row, col) {
				cells[col] = onStyle.Render(cfg.OnGlyph)
			} else {
				cells[col] = offStyle.Render(cfg.OffGlyph)
			}
		}
		rows[row] = strings.Join(cells, " ")
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}
