package mood

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	blobSaturation = 0.74
	blobLightness  = 0.56
	ringSaturation = 0.80
	ringLightness  = 0.70
	glowLightness  = 0.40
)

// Swatch is one derived colour together with the HSL inputs that produced it.
type Swatch struct {
	Name       string         `json:"name"`
	Hue        Hue            `json:"hue"`
	Saturation float64        `json:"saturation"`
	Lightness  float64        `json:"lightness"`
	Hex        string         `json:"hex"`
	Color      colorful.Color `json:"-"`
}

// Palette is every colour the widget draws, recomputed from a single hue.
type Palette struct {
	Hue   Hue
	BlobA Swatch // base hue, top-left glow
	BlobB Swatch // +40
	BlobC Swatch // +320
	Ring  Swatch
	Glow  Swatch
}

func HSL(h Hue, s, l float64) colorful.Color {
	return colorful.Hsl(float64(h), s, l).Clamped()
}

func newSwatch(name string, h Hue, s, l float64) Swatch {
	c := HSL(h, s, l)
	return Swatch{
		Name:       name,
		Hue:        h,
		Saturation: s,
		Lightness:  l,
		Hex:        c.Hex(),
		Color:      c,
	}
}

// PaletteFor derives the palette for h. The same hue always yields the same
// palette.
func PaletteFor(h Hue) Palette {
	h = Wrap(int(h))
	a, b := h.Companions()
	return Palette{
		Hue:   h,
		BlobA: newSwatch("blob-a", h, blobSaturation, blobLightness),
		BlobB: newSwatch("blob-b", a, blobSaturation, blobLightness),
		BlobC: newSwatch("blob-c", b, blobSaturation, blobLightness),
		Ring:  newSwatch("ring", h, ringSaturation, ringLightness),
		Glow:  newSwatch("glow", h, ringSaturation, glowLightness),
	}
}

// SwatchColor is the colour used for preset buttons and the slider track.
func SwatchColor(h Hue) colorful.Color {
	return HSL(h, blobSaturation, blobLightness)
}

func (p Palette) Swatches() []Swatch {
	return []Swatch{p.BlobA, p.BlobB, p.BlobC, p.Ring, p.Glow}
}
