package ring

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

var red = color.RGBA{R: 255, A: 255}

func TestRender_Dimensions(t *testing.T) {
	t.Parallel()

	for _, scale := range []float64{0.95, 1, 1.15} {
		out := New("Inhale", red, WithScale(scale)).Render()
		lines := strings.Split(out, "\n")
		if len(lines) != ringDotsHeight/4 {
			t.Errorf("scale %.2f: %d lines, want %d", scale, len(lines), ringDotsHeight/4)
		}
		for i, l := range lines {
			if w := ansi.StringWidth(l); w != ringDotsWidth/2 {
				t.Errorf("scale %.2f line %d: width %d, want %d", scale, i, w, ringDotsWidth/2)
			}
		}
	}
}

func TestRender_ShowsLabel(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(New("Tap to breathe", red).Render())
	if !strings.Contains(out, "Tap to breathe") {
		t.Errorf("label missing from ring:\n%s", out)
	}
	if !strings.ContainsFunc(out, hasDots) {
		t.Error("ring has no braille dots")
	}
}

func TestRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scale float64
		want  int
	}{
		{name: "rest", scale: 1, want: baseRadius},
		{name: "zero falls back to rest", scale: 0, want: baseRadius},
		{name: "peak", scale: 1.15, want: 20},
		{name: "clamped", scale: 3, want: ringDotsWidth/2 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New("", red, WithScale(tt.scale)).Radius(); got != tt.want {
				t.Errorf("Radius() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender_GlowOnlyWhenActive(t *testing.T) {
	t.Parallel()

	count := func(s string) int {
		n := 0
		for _, r := range ansi.Strip(s) {
			if hasDots(r) {
				n++
			}
		}
		return n
	}

	idle := New("", red).Render()
	active := New("", red, WithGlow(color.RGBA{B: 255, A: 255})).Render()
	if count(active) <= count(idle) {
		t.Errorf("active ring has %d dotted cells, idle %d; want more when active", count(active), count(idle))
	}
}
