// Package slider draws the hue track with a knob at the current hue.
package slider

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/tui/theme"
)

const (
	DefaultWidth = 36
	minWidth     = 8

	trackGlyph = "━"
	knobGlyph  = "●"
)

type Slider struct {
	Hue   mood.Hue
	Width int
}

func New(h mood.Hue, width int) Slider {
	return Slider{Hue: h, Width: width}
}

// Knob is the cell the knob sits in.
func (s Slider) Knob() int {
	w := s.width()
	return min(s.Hue.Int()*w/360, w-1)
}

// Render draws a rainbow track, one cell per slice of the wheel, with the
// knob in the current hue's colour and the value on the right.
func (s Slider) Render() string {
	var (
		w    = s.width()
		knob = s.Knob()
		b    strings.Builder
	)

	for i := range w {
		cell := mood.Hue(i * 360 / w)
		if i == knob {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.ColorWhite).
				Background(mood.SwatchColor(s.Hue)).
				Render(knobGlyph))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(mood.SwatchColor(cell)).Render(trackGlyph))
	}

	value := lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(" " + s.Hue.String())
	return b.String() + value
}

func (s Slider) width() int {
	if s.Width < minWidth {
		return DefaultWidth
	}
	return s.Width
}
