package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/calm/internal/config"
	"github.com/garrettladley/calm/internal/validator"
	"github.com/garrettladley/calm/internal/xslog"
)

const (
	flagName = "name"
	flagHue  = "hue"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// commandConfig returns the configuration the pre-run stored on cmd, reading
// it when the command runs on its own.
func commandConfig(cmd *cobra.Command) (config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
			return cfg, nil
		}
	}
	return loadConfig(cmd)
}

// loadConfig reads file and environment configuration, then lets flags on
// cmd override it. Overrides go through the same validation as the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
		if name := strings.TrimSpace(f.Value.String()); name != "" {
			cfg.Name = name
		}
	}
	if f := cmd.Flags().Lookup(flagHue); f != nil && f.Changed {
		h, err := config.ParseHue(f.Value.String())
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --%s: %w", flagHue, err)
		}
		cfg.Hue = h
	}

	if err := validator.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// setupLogging reads the configuration once and puts it and a logger on the
// command context. The TUI owns the terminal, so logs only go to a file; with
// none configured they are dropped.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log file: %w", err)
	}

	logger := xslog.Discard()
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cobra.OnFinalize(func() { _ = f.Close() })
		logger = xslog.NewLogger(f, cfg.Level())
	}

	logger.Debug("logging configured", xslog.Path(path), xslog.Version())

	ctx := xslog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(withConfig(ctx, cfg))
	return nil
}
