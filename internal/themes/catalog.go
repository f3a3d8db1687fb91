// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package themes defines the static preset catalog and the theme
// resolution logic that merges a preset with per-site overrides into a
// fully populated computed theme.
package themes

// ButtonStyle is the visual treatment applied to buttons site-wide.
type ButtonStyle string

const (
	ButtonSquare  ButtonStyle = "square"
	ButtonRounded ButtonStyle = "rounded"
	ButtonPill    ButtonStyle = "pill"
)

// Palette holds the six named colors every preset must define.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

// Fonts is the heading/body font pair.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Preset is one immutable catalog entry. Every preset defines all
// palette and font fields — there are no partial presets.
type Preset struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Colors          Palette     `json:"colors"`
	Fonts           Fonts       `json:"fonts"`
	Radius          string      `json:"radius"`
	ButtonStyle     ButtonStyle `json:"buttonStyle"`
	DefaultSections []string    `json:"defaultSections"`
	HeaderStyle     string      `json:"headerStyle,omitempty"`
}

// FlagshipID is the preset whose starter content carries preset-flavored
// copy instead of the generic placeholders.
const FlagshipID = "lumen"

// catalog is the ordered preset table. The first entry is the default
// fallback for unknown theme families.
var catalog = []Preset{
	{
		ID:          "lumen",
		Name:        "Lumen",
		Description: "Bright and airy, with warm amber accents.",
		Colors: Palette{
			Primary:    "#b45309",
			Secondary:  "#78350f",
			Accent:     "#f59e0b",
			Background: "#fffbeb",
			Text:       "#1c1917",
			Muted:      "#a8a29e",
		},
		Fonts:           Fonts{Heading: "Fraunces", Body: "Inter"},
		Radius:          "0.75rem",
		ButtonStyle:     ButtonPill,
		DefaultSections: []string{"hero", "about", "services", "contact", "footer"},
		HeaderStyle:     "centered",
	},
	{
		ID:          "slate",
		Name:        "Slate",
		Description: "Clean and professional with a cool gray base.",
		Colors: Palette{
			Primary:    "#0f172a",
			Secondary:  "#334155",
			Accent:     "#0ea5e9",
			Background: "#f8fafc",
			Text:       "#0f172a",
			Muted:      "#94a3b8",
		},
		Fonts:           Fonts{Heading: "Sora", Body: "Source Sans 3"},
		Radius:          "0.25rem",
		ButtonStyle:     ButtonSquare,
		DefaultSections: []string{"hero", "about", "services", "footer"},
	},
	{
		ID:          "bloom",
		Name:        "Bloom",
		Description: "Soft pastels for creative and personal sites.",
		Colors: Palette{
			Primary:    "#be185d",
			Secondary:  "#9d174d",
			Accent:     "#f9a8d4",
			Background: "#fdf2f8",
			Text:       "#3b0a2a",
			Muted:      "#d6a5bd",
		},
		Fonts:           Fonts{Heading: "Playfair Display", Body: "Lato"},
		Radius:          "1rem",
		ButtonStyle:     ButtonPill,
		DefaultSections: []string{"hero", "gallery", "testimonials", "contact", "footer"},
		HeaderStyle:     "minimal",
	},
	{
		ID:          "mono",
		Name:        "Mono",
		Description: "Stark black and white, typography first.",
		Colors: Palette{
			Primary:    "#000000",
			Secondary:  "#262626",
			Accent:     "#737373",
			Background: "#ffffff",
			Text:       "#0a0a0a",
			Muted:      "#a3a3a3",
		},
		Fonts:           Fonts{Heading: "Space Grotesk", Body: "IBM Plex Sans"},
		Radius:          "0",
		ButtonStyle:     ButtonSquare,
		DefaultSections: []string{"hero", "about", "footer"},
	},
	{
		ID:          "terra",
		Name:        "Terra",
		Description: "Earthy greens for local businesses and trades.",
		Colors: Palette{
			Primary:    "#166534",
			Secondary:  "#14532d",
			Accent:     "#84cc16",
			Background: "#f7fee7",
			Text:       "#1a2e05",
			Muted:      "#8a9a7b",
		},
		Fonts:           Fonts{Heading: "Bitter", Body: "Open Sans"},
		Radius:          "0.5rem",
		ButtonStyle:     ButtonRounded,
		DefaultSections: []string{"hero", "services", "hours", "contact", "footer"},
	},
}

var catalogByID = func() map[string]Preset {
	m := make(map[string]Preset, len(catalog))
	for _, p := range catalog {
		m[p.ID] = p
	}
	return m
}()

// Catalog returns the full ordered preset list.
func Catalog() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the catalog's designated default preset (first entry).
func Default() Preset {
	return catalog[0]
}

// Find looks up a preset by theme family. Unknown families fall back to
// the default preset, so Find never fails.
func Find(family string) Preset {
	if p, ok := catalogByID[family]; ok {
		return p
	}
	return Default()
}
