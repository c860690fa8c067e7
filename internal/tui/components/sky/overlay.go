// Package sky layers transient sprites (confetti, shooting stars, labels)
// over already-rendered, ANSI-styled frames.
package sky

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Splice writes s over line starting at cell col, keeping the styling of the
// cells on either side. The line is padded with spaces when col lies past
// its end.
func Splice(line string, col int, s string) string {
	if col < 0 || s == "" {
		return line
	}
	var (
		width  = ansi.StringWidth(line)
		sWidth = ansi.StringWidth(s)
		b      strings.Builder
	)

	if col >= width {
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", col-width))
		b.WriteString(s)
		return b.String()
	}

	b.WriteString(ansi.Cut(line, 0, col))
	b.WriteString(ansi.ResetStyle)
	b.WriteString(s)
	if end := col + sWidth; end < width {
		b.WriteString(ansi.Cut(line, end, width))
	}
	return b.String()
}

// Overlay draws the visible part of each foreground line over background.
// Leading and trailing blanks in the foreground are transparent.
func Overlay(background, foreground string) string {
	var (
		bgLines  = strings.Split(background, "\n")
		fgLines  = strings.Split(foreground, "\n")
		maxLines = max(len(bgLines), len(fgLines))
		result   = make([]string, maxLines)
	)

	for i := range maxLines {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		start, end := visibleSpan(ansi.Strip(fgLine))
		if start < 0 {
			result[i] = bgLine
			continue
		}
		result[i] = Splice(bgLine, start, ansi.Cut(fgLine, start, end))
	}

	return strings.Join(result, "\n")
}

// visibleSpan returns the cell range holding non-blank content, or -1, -1.
func visibleSpan(plain string) (int, int) {
	start, end, col := -1, -1, 0
	for _, r := range plain {
		w := ansi.StringWidth(string(r))
		if r != ' ' {
			if start == -1 {
				start = col
			}
			end = col + w
		}
		col += w
	}
	return start, end
}
