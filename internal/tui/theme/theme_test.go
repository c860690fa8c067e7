package theme

import (
	"image/color"
	"testing"

	"github.com/garrettladley/calm/internal/mood"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestNew_FollowsHue(t *testing.T) {
	t.Parallel()

	sunset := New(mood.Sunset.Hue)
	if got := sunset.Palette().Hue; got != 14 {
		t.Fatalf("Palette().Hue = %d, want 14", got)
	}
	if sameColor(sunset.Palette().Ring.Color, New(mood.Ocean.Hue).Palette().Ring.Color) {
		t.Error("different hues produced the same ring colour")
	}
	if !sameColor(sunset.Background(), ColorBgDark) {
		t.Error("background should not follow the hue")
	}
}

func TestTile_CyclesBlobs(t *testing.T) {
	t.Parallel()

	th := New(200)
	p := th.Palette()
	want := []color.Color{p.BlobA.Color, p.BlobB.Color, p.BlobC.Color, p.BlobA.Color}
	for i, w := range want {
		if got := th.Tile(i).GetBorderTopForeground(); !sameColor(got, w) {
			t.Errorf("Tile(%d) border = %v, want %v", i, got, w)
		}
	}
}
