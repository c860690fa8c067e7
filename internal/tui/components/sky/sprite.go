package sky

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Sprite is a single glyph at a cell position.
type Sprite struct {
	X, Y  int
	Glyph string
	Color color.Color
}

// Compose draws sprites over a frame of width x height cells. Sprites outside
// the frame are dropped.
func Compose(frame string, width, height int, sprites []Sprite) string {
	if len(sprites) == 0 || width <= 0 || height <= 0 {
		return frame
	}

	lines := strings.Split(frame, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for _, s := range sprites {
		if s.X < 0 || s.Y < 0 || s.X >= width || s.Y >= height || s.Glyph == "" {
			continue
		}
		glyph := s.Glyph
		if s.Color != nil {
			glyph = lipgloss.NewStyle().Foreground(s.Color).Render(glyph)
		}
		lines[s.Y] = Splice(lines[s.Y], s.X, glyph)
	}

	return strings.Join(lines, "\n")
}
