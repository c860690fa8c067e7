// Package calm renders the main page from a snapshot of the widget state.
package calm

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/tui/components/indicator"
	"github.com/garrettladley/calm/internal/tui/components/ring"
	"github.com/garrettladley/calm/internal/tui/components/slider"
	"github.com/garrettladley/calm/internal/tui/theme"
)

const (
	maxCardWidth = 76
	noteWidth    = 22
	noteRows     = 2
)

type State struct {
	Name        string
	Hue         mood.Hue
	Auto        bool
	Presets     []mood.Preset
	Affirmation string

	Phase breath.Phase
	Round int
	Scale float64

	Notes     []string
	WishInput string // rendered text inputs
	NoteInput string
}

// View lays the card out in the middle of a width x height screen. The
// footer is not included.
func View(state State, t theme.Theme, width, height int) string {
	inner := min(width-4, maxCardWidth) - 6 // card border and padding
	if inner < 20 {
		inner = 20
	}

	sections := []string{
		header(state, t, inner),
		"",
		moodRow(state, t, inner),
		"",
		breathing(state, t, inner),
		"",
		section(t, "make a wish", state.WishInput),
		"",
		section(t, "glow notes", state.NoteInput),
		noteTiles(state.Notes, t, inner),
	}

	card := t.Card().Width(inner + 6).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		card,
	)
}

func header(state State, t theme.Theme, width int) string {
	title := t.Title().Render("Hi " + state.Name)
	line := t.Subtitle().Italic(true).Render(ansi.Truncate(state.Affirmation, width, "…"))
	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}

func moodRow(state State, t theme.Theme, width int) string {
	var chips []string
	for i, p := range state.Presets {
		label := fmt.Sprintf("%d %s", i+1, p.Name)
		style := t.Hint()
		if p.Hue == state.Hue {
			style = t.Text().Bold(true)
		}
		chips = append(chips, t.Swatch(p.Hue).Render("■")+" "+style.Render(label))
	}
	presets := ansi.Truncate(strings.Join(chips, "  "), width, "")

	pal := t.Palette()
	blobs := lipgloss.NewStyle().Foreground(pal.BlobA.Color).Render("●") + " " +
		lipgloss.NewStyle().Foreground(pal.BlobB.Color).Render("●") + " " +
		lipgloss.NewStyle().Foreground(pal.BlobC.Color).Render("●")

	auto := indicator.Indicator{Label: "auto", On: state.Auto, Color: pal.Ring.Color}.Render()

	track := slider.New(state.Hue, max(width-lipgloss.Width(blobs)-lipgloss.Width(auto)-10, 8)).Render()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.Hint().Render("mood"),
		presets,
		track+"  "+blobs+"  "+auto,
	)
}

func breathing(state State, t theme.Theme, width int) string {
	pal := t.Palette()

	opts := []ring.Option{ring.WithScale(state.Scale)}
	if state.Phase != breath.PhaseIdle {
		opts = append(opts, ring.WithGlow(pal.Glow.Color))
	}
	circle := ring.New(state.Phase.Label(), pal.Ring.Color, opts...).Render()

	rounds := make([]string, breath.Rounds)
	for i := range rounds {
		rounds[i] = indicator.Indicator{
			Label: fmt.Sprintf("%d", i+1),
			On:    state.Round > i,
			Color: pal.Ring.Color,
		}.Render()
	}

	caption := t.Hint().Render("4 in · 7 hold · 8 out")

	return lipgloss.PlaceHorizontal(
		width,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, circle, strings.Join(rounds, "  "), caption),
	)
}

func section(t theme.Theme, title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, t.Hint().Render(title), body)
}

// noteTiles lays notes out left to right, newest first, wrapping onto at most
// noteRows rows. Whatever does not fit is counted instead.
func noteTiles(notes []string, t theme.Theme, width int) string {
	if len(notes) == 0 {
		return ""
	}

	var (
		rows    []string
		row     []string
		rowW    int
		shown   int
		tileGap = 1
	)
	for i, n := range notes {
		tile := t.Tile(i).Render(ansi.Truncate(n, noteWidth, "…"))
		w := lipgloss.Width(tile)
		if rowW > 0 && rowW+tileGap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowW = nil, 0
			if len(rows) == noteRows {
				break
			}
		}
		if rowW > 0 {
			row = append(row, strings.Repeat(" ", tileGap))
			rowW += tileGap
		}
		row = append(row, tile)
		rowW += w
		shown++
	}
	if len(row) > 0 && len(rows) < noteRows {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	if rest := len(notes) - shown; rest > 0 {
		rows = append(rows, t.Hint().Render(fmt.Sprintf("+%d more", rest)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
