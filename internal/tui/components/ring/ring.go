package ring

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/calm/internal/tui/components/sky"
	"github.com/garrettladley/calm/internal/tui/theme"
)

const (
	// canvas size in braille dots (2 dots per char width, 4 per char height)
	ringDotsWidth  = 44 // 22 chars wide
	ringDotsHeight = 44 // 11 chars tall

	baseRadius    = 17
	ringThickness = 3
	glowGap       = 5

	emptyBraille rune = '⠀'
)

// Ring is the breathing circle with the current phase written inside it.
type Ring struct {
	Label     string
	Color     color.Color // outer ring
	GlowColor color.Color // inner halo, drawn only while active
	TextColor color.Color
	Scale     float64 // pulse scale, 1 at rest
	Active    bool
}

type Option func(*Ring)

func WithScale(s float64) Option {
	return func(r *Ring) {
		r.Scale = s
	}
}

func WithGlow(c color.Color) Option {
	return func(r *Ring) {
		r.GlowColor = c
		r.Active = true
	}
}

func New(label string, c color.Color, opts ...Option) Ring {
	r := Ring{
		Label:     label,
		Color:     c,
		GlowColor: theme.ColorFaint,
		TextColor: theme.ColorText,
		Scale:     1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Radius is the outer radius in dots after scaling, clamped to the canvas.
func (r Ring) Radius() int {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	radius := int(math.Round(baseRadius * scale))
	return min(radius, ringDotsWidth/2-1)
}

func (r Ring) Render() string {
	var (
		canvas = drawille.NewCanvas()
		cx     = ringDotsWidth / 2
		cy     = ringDotsHeight / 2
		radius = r.Radius()
	)

	var halo string
	if r.Active {
		drawCircle(&canvas, cx, cy, radius-glowGap, 1)
		halo = canvasString(&canvas, ringDotsWidth, ringDotsHeight)
		canvas.Clear()
	}

	drawCircle(&canvas, cx, cy, radius, ringThickness)
	outer := canvasString(&canvas, ringDotsWidth, ringDotsHeight)

	art := colorize(outer, halo, r.Color, r.GlowColor)

	label := lipgloss.NewStyle().
		Foreground(r.TextColor).
		Bold(true).
		Render(r.Label)
	centered := lipgloss.Place(
		lipgloss.Width(art),
		lipgloss.Height(art),
		lipgloss.Center,
		lipgloss.Center,
		label,
	)

	return sky.Overlay(art, centered)
}

// canvasString renders the canvas with a fixed number of rows and columns so
// the ring does not jitter as it pulses.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	charWidth := width / 2
	charHeight := height / 4

	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, charHeight)
	for i := range charHeight {
		var line []rune
		if i < len(rows) {
			line = []rune(rows[i])
		}
		if len(line) > charWidth {
			line = line[:charWidth]
		}
		lines[i] = string(line) + strings.Repeat(" ", charWidth-len(line))
	}
	return strings.Join(lines, "\n")
}

// colorize paints the outer ring and the halo in their own colours. Cells
// with no dots become plain spaces so the label overlay can find gaps.
func colorize(outer, halo string, ringColor, haloColor color.Color) string {
	var (
		outerLines = strings.Split(outer, "\n")
		haloLines  = strings.Split(halo, "\n")
		ringStyle  = lipgloss.NewStyle().Foreground(ringColor)
		haloStyle  = lipgloss.NewStyle().Foreground(haloColor)
		result     = make([]string, len(outerLines))
	)

	for i, line := range outerLines {
		var haloRunes []rune
		if halo != "" && i < len(haloLines) {
			haloRunes = []rune(haloLines[i])
		}

		var b strings.Builder
		for j, ch := range []rune(line) {
			switch {
			case hasDots(ch):
				b.WriteString(ringStyle.Render(string(ch)))
			case j < len(haloRunes) && hasDots(haloRunes[j]):
				b.WriteString(haloStyle.Render(string(haloRunes[j])))
			default:
				b.WriteRune(' ')
			}
		}
		result[i] = b.String()
	}
	return strings.Join(result, "\n")
}

func hasDots(r rune) bool {
	return r > emptyBraille && r <= 0x28FF
}
