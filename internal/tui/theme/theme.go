package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/mood"
)

// Theme is rebuilt whenever the hue changes; every accent comes from the
// mood palette.
type Theme struct {
	palette    mood.Palette
	background color.Color
}

func New(h mood.Hue) Theme {
	var t Theme

	t.palette = mood.PaletteFor(h)
	t.background = ColorBgDark

	return t
}

func (t Theme) Palette() mood.Palette { return t.palette }

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
}

func (t Theme) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func (t Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorText)
}

func (t Theme) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Ring.Color).Bold(true)
}

// Card is the main panel; its border glows with the base hue.
func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.palette.BlobA.Color).
		Padding(0, 2)
}

// Tile borders cycle through the three blob colours, like the blurred
// background glows of the page.
func (t Theme) Tile(i int) lipgloss.Style {
	blobs := []color.Color{t.palette.BlobA.Color, t.palette.BlobB.Color, t.palette.BlobC.Color}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blobs[((i%3)+3)%3]).
		Padding(0, 1)
}

func (t Theme) Swatch(h mood.Hue) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(mood.SwatchColor(h))
}
