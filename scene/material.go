package scene

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the named colours scene files may refer to.
var Palette = map[string]string{
	"Purple":           "#a67ee5",
	"DarkPurple":       "#5f458c",
	"LightDominantRed": "#ff6666",
	"Blue":             "#3ba4ff",
	"Green":            "#4ecc67",
	"White":            "#ffffff",
	"LanternBlue":      "#3168ce",
	"LanternGlow":      "#052052",
	"SaturnRed":        "#ff3333",
}

// MaterialSpec picks a shading model and colours for a mesh.
type MaterialSpec struct {
	Type      string  `yaml:"type" json:"type"`
	Color     string  `yaml:"color" json:"color"`
	Emissive  string  `yaml:"emissive,omitempty" json:"emissive,omitempty"`
	Metalness float64 `yaml:"metalness,omitempty" json:"metalness,omitempty"`
	Roughness float64 `yaml:"roughness,omitempty" json:"roughness,omitempty"`
}

// Resolve returns a copy with palette names replaced by hex colours.
func (m *MaterialSpec) Resolve() (MaterialSpec, error) {
	out := *m
	switch strings.ToLower(m.Type) {
	case "basic", "soft", "standard":
	default:
		return out, fmt.Errorf("unknown material type %q", m.Type)
	}

	c, err := ParseColor(m.Color)
	if err != nil {
		return out, err
	}
	out.Color = c.Hex()

	if m.Emissive != "" {
		e, err := ParseColor(m.Emissive)
		if err != nil {
			return out, err
		}
		out.Emissive = e.Hex()
	}
	return out, nil
}

// ParseColor accepts a palette name or a #rrggbb hex colour.
func ParseColor(s string) (colorful.Color, error) {
	if hex, ok := Palette[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return c, nil
}
