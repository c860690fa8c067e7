package main

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/calm/internal/tui"
	"github.com/garrettladley/calm/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	ctx := xslog.WithAttrs(cmd.Context(), xslog.Version())
	logger := xslog.FromContext(ctx)
	logger.Info("calm space opened",
		xslog.Hue(cfg.Hue.Int()),
		xslog.Path(cfg.File),
	)

	model := tui.New(cfg, tui.Deps{Logger: logger})

	// fang owns SIGINT/SIGTERM; they arrive as a cancelled ctx
	p := tea.NewProgram(&model, tea.WithoutSignalHandler())

	done := make(chan struct{})
	defer close(done)
	go shutdownOnCancel(ctx, p, done)

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", xslog.Error(err))
		return fmt.Errorf("failed to run tui: %w", err)
	}

	return nil
}

type sender interface {
	Send(msg tea.Msg)
}

// shutdownOnCancel routes a signal through the model, so it tears down the
// same way it does for ctrl+c. It returns once done is closed.
func shutdownOnCancel(ctx context.Context, p sender, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		xslog.FromContext(ctx).Debug("shutting down", xslog.Error(context.Cause(ctx)))
		p.Send(tui.ShutdownMsg{})
	case <-done:
	}
}
