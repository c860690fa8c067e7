package tui

import (
	"strconv"

	"charm.land/bubbles/v2/key"
)

// maxPresetKeys is how many presets are reachable from the number row.
const maxPresetKeys = 9

type keyMap struct {
	Vibe     key.Binding
	Presets  key.Binding
	Slide    key.Binding
	SlideBig key.Binding
	Auto     key.Binding
	Breathe  key.Binding
	Gentle   key.Binding
	Confetti key.Binding
	Focus    key.Binding
	Quit     key.Binding

	Submit key.Binding
	Blur   key.Binding
}

func newKeyMap(presets int) keyMap {
	return keyMap{
		Vibe:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "vibe")),
		Presets:  presetBinding(presets),
		Slide:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "hue")),
		SlideBig: key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "hue ±10")),
		Auto:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto")),
		Breathe:  key.NewBinding(key.WithKeys("b", "space"), key.WithHelp("b", "breathe")),
		Gentle:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new line")),
		Confetti: key.NewBinding(key.WithKeys("c", "s"), key.WithHelp("c", "sunshine")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "write")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Blur:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	}
}

// ShortHelp lists the bindings for the footer while no input is focused.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Vibe, k.Presets, k.Slide, k.Auto, k.Breathe, k.Gentle, k.Confetti, k.Focus, k.Quit}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Blur}
}

// presetBinding binds 1..n for the first n presets, so the help never offers
// a digit that selects nothing.
func presetBinding(n int) key.Binding {
	n = min(n, maxPresetKeys)
	if n < 1 {
		return key.NewBinding(key.WithDisabled())
	}

	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	label := "1"
	if n > 1 {
		label += "-" + keys[n-1]
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, "preset"))
}
