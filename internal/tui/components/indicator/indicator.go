// Package indicator renders the small status dots shown under the ring.
package indicator

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/tui/theme"
)

const (
	onDot  = "●"
	offDot = "○"
)

type Indicator struct {
	Label string
	On    bool
	Color color.Color // dot colour while on
}

func (i Indicator) Render() string {
	if !i.On {
		return lipgloss.NewStyle().
			Foreground(theme.ColorDim).
			Render(offDot + " " + i.Label)
	}

	c := i.Color
	if c == nil {
		c = theme.ColorWhite
	}
	return lipgloss.NewStyle().Foreground(c).Render(onDot) +
		lipgloss.NewStyle().Foreground(theme.ColorText).Render(" "+i.Label)
}
