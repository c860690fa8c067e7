//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/tui/theme"
	"github.com/garrettladley/calm/internal/version"
)

var (
	buildNameStyle    = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	buildVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
)

// leftContent tags development builds so a screenshot shows which build it
// came from.
func (f Footer) leftContent() string {
	return buildNameStyle.Render("calm") + " " + buildVersionStyle.Render(version.Display(version.Get()))
}
