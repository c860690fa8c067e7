// Package notes keeps the glow notes: short strings, newest first, held only
// in memory.
package notes

import (
	"slices"
	"strings"

	"github.com/garrettladley/calm/internal/xerrors"
)

// Seed is the note shown before anything has been added.
const Seed = "One good thing today…"

type List struct {
	items []string
}

// New returns a list holding seed in the given order. Blank seeds are skipped.
func New(seed ...string) *List {
	l := &List{}
	for _, s := range seed {
		if s = strings.TrimSpace(s); s != "" {
			l.items = append(l.items, s)
		}
	}
	return l
}

// Add trims text and puts it at the front. Blank text is rejected with an
// error wrapping xerrors.ErrBlank and leaves the list unchanged.
func (l *List) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return xerrors.Blank("note")
	}
	l.items = slices.Insert(l.items, 0, text)
	return nil
}

// All returns a copy of the notes, newest first.
func (l *List) All() []string {
	return slices.Clone(l.items)
}

func (l *List) Len() int { return len(l.items) }
