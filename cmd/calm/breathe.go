//go:build !release

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/xslog"
)

func breatheCmd() *cobra.Command {
	var speed float64

	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run one 4-7-8 session without the UI",
		Long:  "Drives the breathing guide with real timers and prints each phase. --speed shortens every phase for quick checks.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if speed <= 0 {
				return fmt.Errorf("--speed must be positive, got %v", speed)
			}
			return runBreathe(cmd.Context(), cmd.OutOrStdout(), speed)
		},
	}
	cmd.Flags().Float64Var(&speed, "speed", 1, "speed-up factor applied to every phase")

	return cmd
}

func runBreathe(ctx context.Context, out io.Writer, speed float64) error {
	var (
		logger  = xslog.FromContext(ctx)
		started = time.Now()
	)

	g := breath.NewGuide(breath.WithObserver(breath.ObserverFunc(func(p breath.Phase, round int) {
		logger.Debug("breath phase", xslog.Phase(p.String()), xslog.Round(round))
		if p.Breathing() {
			_, _ = fmt.Fprintf(out, "%-7s round %d/%d  %s\n", p.Label(), round, breath.Rounds, p.Duration())
			return
		}
		_, _ = fmt.Fprintln(out, p.Label())
	})))

	if err := breath.Run(ctx, g, speed); err != nil {
		if errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintln(out, "stopped")
			return nil
		}
		return fmt.Errorf("breathing session failed: %w", err)
	}

	logger.Info("breathing session complete",
		xslog.Count(g.Transitions()),
		xslog.Duration(time.Since(started)),
	)
	return nil
}
