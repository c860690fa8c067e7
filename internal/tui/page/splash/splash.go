package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
  ▄▄▄▄▄    ▄▄▄▄    ▄▄       ▄▄▄  ▄▄▄
 ██▀▀▀▀   ██▀▀██   ██       ███▄▄███
 ██       ██▄▄██   ██       ██ ▀▀ ██
 ██       ██▀▀██   ██       ██    ██
 ▀█▄▄▄▄   ██  ██   ██▄▄▄▄   ██    ██
   ▀▀▀▀   ▀▀  ▀▀   ▀▀▀▀▀▀   ▀▀    ▀▀`

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return t.Accent().Render(Logo)
}

// View centres the logo with a dedication line under it.
func View(t theme.Theme, name string, width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		LogoView(t),
		"",
		t.Subtitle().Render("for "+name),
	)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
