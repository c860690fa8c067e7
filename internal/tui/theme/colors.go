package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorText  = lipgloss.Color("#E6E6E6") // body copy, ~90% white
	ColorMuted = lipgloss.Color("#B3B3B3") // captions, ~70% white
	ColorFaint = lipgloss.Color("#3A3F4B") // idle borders
)

// ColorBgDark is the page background behind the card.
var ColorBgDark = lipgloss.Color("#0F1724")
