// Command dotmatrixer draws 8x8 MAX7219 LED patterns and converts them to and
// from firmware array literals.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flavioheleno/max7219"
	"github.com/flavioheleno/max7219/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dotmatrixer",
	Short: "Draw 8x8 MAX7219 patterns and convert them to firmware code",
	Long: `dotmatrixer edits 8x8 LED dot-matrix patterns for MAX7219 displays.

Patterns are stored as .pat snapshots and printed as array literals such as
{0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C}, one byte per row with the
most significant bit on the left. Trailing all-off rows are trimmed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		path := configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				logger.Debug("no user config directory", zap.Error(err))
				return nil
			}
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("config loaded", zap.String("path", path), zap.Bool("trim", cfg.Trim))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/dotmatrixer/config.yaml)")

	rootCmd.AddCommand(codeCmd, loadCmd, drawCmd, showCmd)
	rootCmd.AddCommand(toggleCmd, clearCmd, invertCmd)
	rootCmd.AddCommand(importCmd, renderCmd, watchCmd, configCmd)
}

// formatCode renders p honoring the trim setting.
func formatCode(p *max7219.Pattern) string {
	if cfg.Trim {
		return max7219.Format(p)
	}
	return max7219.FormatFull(p)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
