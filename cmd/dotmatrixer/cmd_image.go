package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	importInvert bool
	renderOut    string
)

var importCmd = &cobra.Command{
	Use:   "import IMAGE",
	Short: "Convert an image to a pattern",
	Long: `Decodes a PNG, JPEG, GIF, BMP or TIFF image, scales it to 8x8 with
nearest-neighbour sampling and lights every cell brighter than mid-gray.
Use --invert for dark drawings on a light background.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var renderCmd = &cobra.Command{
	Use:   "render FILE.pat",
	Short: "Write a preview image of a pattern",
	Long: `Writes a PNG, BMP or TIFF preview, chosen by the --output extension. Each
cell is cell_size pixels wide; lit cells use on_color on a black background.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the pattern to this .pat file")
	importCmd.Flags().BoolVar(&importInvert, "invert", false, "Light the dark cells instead")

	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "Image file to write (.png, .bmp, .tif)")
	_ = renderCmd.MarkFlagRequired("output")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	logger.Debug("image decoded",
		zap.String("format", format),
		zap.Stringer("bounds", src.Bounds()))

	p := imageToPattern(src)
	if importInvert {
		p.Invert()
	}

	printPattern(cmd.OutOrStdout(), p)
	return saveOutput(p)
}

// imageToPattern scales src down to 8x8 and thresholds it through a Canvas.
func imageToPattern(src image.Image) *max7219.Pattern {
	c := max7219.NewCanvas(nil)
	small := image.NewRGBA(c.Bounds())
	xdraw.NearestNeighbor.Scale(small, small.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	// A fresh canvas is never halted
	_ = c.Draw(c.Bounds(), small, image.Point{})
	return c.Pattern()
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := max7219.LoadFile(args[0])
	if err != nil {
		return err
	}
	on, err := cfg.OnRGBA()
	if err != nil {
		return err
	}

	encode, err := imageEncoder(renderOut)
	if err != nil {
		return err
	}

	img := renderPattern(p, on, cfg.CellSize)

	out, err := os.Create(renderOut)
	if err != nil {
		return err
	}
	if err := encode(out, img); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("preview written", zap.String("path", renderOut), zap.Int("cell_size", cfg.CellSize))
	return nil
}

// renderPattern scales the pattern up so that each LED is a cellSize square.
func renderPattern(p *max7219.Pattern, on color.Color, cellSize int) image.Image {
	small := image.NewPaletted(image.Rect(0, 0, max7219.Size, max7219.Size),
		color.Palette{color.Black, on})
	for row := 0; row < max7219.Size; row++ {
		for col := 0; col < max7219.Size; col++ {
			if p.Get(row, col) {
				small.SetColorIndex(col, row, 1)
			}
		}
	}

	big := image.NewRGBA(image.Rect(0, 0, max7219.Size*cellSize, max7219.Size*cellSize))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return big
}

var errImageFormat = errors.New("unsupported image format")

// imageEncoder picks the encoder matching the extension of path.
func imageEncoder(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errImageFormat, filepath.Ext(path))
	}
}
