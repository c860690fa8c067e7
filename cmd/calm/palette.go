package main

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/calm/internal/config"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/tui/theme"
	"github.com/garrettladley/calm/internal/xerrors"
)

type paletteJSON struct {
	Hue        mood.Hue      `json:"hue"`
	Companions [2]mood.Hue   `json:"companions"`
	Swatches   []mood.Swatch `json:"swatches"`
}

func paletteCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palette [hue|preset]",
		Short: "Print the colours derived from a mood hue",
		Long:  "Prints every colour the calm space draws for a hue. The hue may be an integer or a preset name; it defaults to the configured hue.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}

			h := cfg.Hue
			if len(args) == 1 {
				if h, err = resolveHue(args[0], cfg.Presets); err != nil {
					return err
				}
			}

			pal := mood.PaletteFor(h)
			if asJSON {
				return writePaletteJSON(cmd.OutOrStdout(), pal)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPalette(pal))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the palette as JSON")

	return cmd
}

// resolveHue accepts a preset name (any case) or an integer hue.
func resolveHue(arg string, presets []mood.Preset) (mood.Hue, error) {
	if p, ok := mood.PresetByName(presets, arg); ok {
		return p.Hue, nil
	}
	h, err := config.ParseHue(arg)
	if err != nil {
		return 0, xerrors.Invalid("hue",
			xerrors.WithMessage(fmt.Sprintf("%q is neither a preset nor an integer", arg)),
			xerrors.WithCause(err),
		)
	}
	return h, nil
}

func writePaletteJSON(w io.Writer, pal mood.Palette) error {
	b, c := pal.Hue.Companions()
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(paletteJSON{
		Hue:        pal.Hue,
		Companions: [2]mood.Hue{b, c},
		Swatches:   pal.Swatches(),
	}); err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	return nil
}

func renderPalette(pal mood.Palette) string {
	var (
		title = lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true)
		dim   = lipgloss.NewStyle().Foreground(theme.ColorDim)
		lines = []string{title.Render("mood " + pal.Hue.String())}
	)
	for _, s := range pal.Swatches() {
		chip := lipgloss.NewStyle().Foreground(s.Color).Render("████")
		lines = append(lines, fmt.Sprintf("%s  %-6s %s %s",
			chip,
			s.Name,
			s.Hex,
			dim.Render(fmt.Sprintf("hsl(%d, %.0f%%, %.0f%%)", s.Hue, s.Saturation*100, s.Lightness*100)),
		))
	}
	return strings.Join(lines, "\n")
}
