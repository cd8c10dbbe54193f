package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/flavioheleno/max7219"
	"github.com/flavioheleno/max7219/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE.pat",
	Short: "Print the code of a pattern every time the file changes",
	Long: `Prints the code of FILE.pat, then again after every save until interrupted.
Handy next to an editor or a second terminal running toggle.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watch.New(args[0], watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	emit := func(path string) {
		p, err := max7219.LoadFile(path)
		if err != nil {
			// Editors may leave the file half written between events
			logger.Warn("cannot read pattern", zap.String("path", path), zap.Error(err))
			return
		}
		fmt.Fprintln(out, formatCode(p))
	}

	emit(w.Path())
	logger.Info("watching", zap.String("path", w.Path()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = w.Run(ctx, emit)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
