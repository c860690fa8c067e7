package slider

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/calm/internal/mood"
)

func TestKnob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hue   int
		width int
		want  int
	}{
		{name: "zero", hue: 0, width: 36, want: 0},
		{name: "lavender", hue: 285, width: 36, want: 28},
		{name: "last cell", hue: 359, width: 36, want: 35},
		{name: "narrow falls back", hue: 180, width: 2, want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Slider{Hue: mood.Hue(tt.hue), Width: tt.width}
			if got := s.Knob(); got != tt.want {
				t.Errorf("Knob() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	plain := ansi.Strip(New(14, 20).Render())

	track, value, ok := strings.Cut(plain, " ")
	if !ok {
		t.Fatalf("Render() = %q, no value suffix", plain)
	}
	if value != "h:14" {
		t.Errorf("value = %q, want h:14", value)
	}
	if got := ansi.StringWidth(track); got != 20 {
		t.Errorf("track width = %d, want 20", got)
	}
	if strings.Count(track, knobGlyph) != 1 {
		t.Errorf("track %q should hold exactly one knob", track)
	}
	if !strings.HasPrefix(track, knobGlyph) {
		t.Errorf("knob for hue 14 on a 20 cell track should be first: %q", track)
	}
}
