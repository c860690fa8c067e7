package mood

import "strings"

type Preset struct {
	Name string
	Hue  Hue
}

var (
	Lavender = Preset{Name: "Lavender", Hue: 285}
	Sunset   = Preset{Name: "Sunset", Hue: 14}
	Ocean    = Preset{Name: "Ocean", Hue: 200}
	Rose     = Preset{Name: "Rose", Hue: 330}
	Forest   = Preset{Name: "Forest", Hue: 120}
)

// Presets returns the built-in swatches in display order.
func Presets() []Preset {
	return []Preset{Lavender, Sunset, Ocean, Rose, Forest}
}

// PresetByName looks a preset up case-insensitively in presets.
func PresetByName(presets []Preset, name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
