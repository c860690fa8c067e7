package tui

import (
	"math"
	"time"

	"github.com/garrettladley/calm/internal/confetti"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/tui/components/sky"
	"github.com/garrettladley/calm/internal/tui/theme"
	"github.com/garrettladley/calm/internal/wish"
)

const (
	confettiSaturation = 0.75
	faintOpacity       = 0.35

	starGlyph  = "✦"
	trailGlyph = "·"
)

// rotation quadrants of a confetti piece
var confettiGlyphs = [4]string{"▘", "▝", "▗", "▖"}

func confettiSprites(b *confetti.Batch, now time.Time, width, height int) []sky.Sprite {
	if b == nil {
		return nil
	}
	elapsed := now.Sub(b.Born)
	sprites := make([]sky.Sprite, 0, len(b.Particles))
	for _, p := range b.Particles {
		f := p.At(elapsed)
		if f.Opacity == 0 {
			continue
		}
		glyph := confettiGlyphs[int(math.Mod(f.Rotation, 360)/90)%4]
		if f.Opacity < faintOpacity {
			glyph = trailGlyph
		}
		sprites = append(sprites, sky.Sprite{
			X:     int(f.X * float64(width)),
			Y:     int(math.Floor(f.Y * float64(height))),
			Glyph: glyph,
			Color: mood.HSL(p.Hue, confettiSaturation, p.Lightness),
		})
	}
	return sprites
}

// wishSprites draws each star relative to a launch point near the wish input,
// with one trailing dot.
func wishSprites(stars []wish.Star, pal mood.Palette, now time.Time, originX, originY int) []sky.Sprite {
	sprites := make([]sky.Sprite, 0, 2*len(stars))
	for _, s := range stars {
		op := s.Opacity(now)
		if op == 0 {
			continue
		}
		x := originX + int(math.Round(s.X))
		y := originY + int(math.Round(s.Y))

		glyph := starGlyph
		if op < faintOpacity {
			glyph = trailGlyph
		}
		sprites = append(sprites,
			sky.Sprite{X: x - 1, Y: y + 1, Glyph: trailGlyph, Color: theme.ColorDim},
			sky.Sprite{X: x, Y: y, Glyph: glyph, Color: pal.Ring.Color},
		)
	}
	return sprites
}
