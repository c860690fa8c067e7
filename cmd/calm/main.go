package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/calm/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:               "calm",
		Short:             "A small calm space in your terminal",
		Long:              "Pick a mood colour, breathe 4-7-8, keep glow notes and send a wish off into the sky.",
		Version:           version.Get(),
		PersistentPreRunE: setupLogging,
		RunE:              runTUI,
	}
	rootCmd.Flags().String(flagName, "", "who this space is for")
	rootCmd.Flags().String(flagHue, "", "starting mood hue, any integer (wrapped to 0-359)")

	rootCmd.AddCommand(paletteCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
