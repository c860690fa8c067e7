// Package affirm rotates through a fixed list of short supportive lines.
package affirm

import (
	"strings"
	"time"
)

// Interval is how often the background loop advances the cycler.
const Interval = 4200 * time.Millisecond

// namePlaceholder is replaced with the configured name in every line.
const namePlaceholder = "{name}"

// Default is the built-in list, in display order.
func Default() []string {
	return []string{
		"Hey {name}, you're doing better than you think.",
		"Tiny steps count. You're allowed to be soft today.",
		"Your smile could restart the sun.",
		"You're not behind; you're becoming.",
		"Storms don't last; stars do.",
		"You are loved in quiet ways.",
		"The world's a little brighter with you in it.",
	}
}

// Cycler holds an immutable list and an index into it.
type Cycler struct {
	lines []string
	index int
}

// New copies lines, dropping blank entries and substituting name. An empty
// result falls back to the default list.
func New(lines []string, name string) *Cycler {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "friend"
	}

	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, strings.ReplaceAll(l, namePlaceholder, name))
		}
	}
	if len(kept) == 0 {
		for _, l := range Default() {
			kept = append(kept, strings.ReplaceAll(l, namePlaceholder, name))
		}
	}
	return &Cycler{lines: kept}
}

func (c *Cycler) Current() string { return c.lines[c.index] }
func (c *Cycler) Index() int      { return c.index }
func (c *Cycler) Len() int        { return len(c.lines) }

// Advance moves to the next line, wrapping at the end, and returns it.
func (c *Cycler) Advance() string {
	c.index = (c.index + 1) % len(c.lines)
	return c.Current()
}
