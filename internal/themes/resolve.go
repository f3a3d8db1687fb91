// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themes

// Override holds per-site theme edits. Every field is independently
// optional: a nil field falls back to the preset value during
// resolution. There is no other "unset" sentinel.
type Override struct {
	Primary     *string `json:"primary,omitempty"`
	Secondary   *string `json:"secondary,omitempty"`
	Accent      *string `json:"accent,omitempty"`
	Background  *string `json:"background,omitempty"`
	Text        *string `json:"text,omitempty"`
	Muted       *string `json:"muted,omitempty"`
	HeadingFont *string `json:"headingFont,omitempty"`
	BodyFont    *string `json:"bodyFont,omitempty"`
	Radius      *string `json:"radius,omitempty"`
	ButtonStyle *string `json:"buttonStyle,omitempty"`
}

// IsZero reports whether the override carries no edits at all.
func (o *Override) IsZero() bool {
	return o == nil || (o.Primary == nil && o.Secondary == nil && o.Accent == nil &&
		o.Background == nil && o.Text == nil && o.Muted == nil &&
		o.HeadingFont == nil && o.BodyFont == nil && o.Radius == nil && o.ButtonStyle == nil)
}

// Merge applies the non-nil fields of other on top of o, field by field.
// Fields other leaves nil are untouched. Used by theme updates so a PATCH
// only changes what it explicitly includes.
func (o *Override) Merge(other *Override) {
	if other == nil {
		return
	}
	if other.Primary != nil {
		o.Primary = other.Primary
	}
	if other.Secondary != nil {
		o.Secondary = other.Secondary
	}
	if other.Accent != nil {
		o.Accent = other.Accent
	}
	if other.Background != nil {
		o.Background = other.Background
	}
	if other.Text != nil {
		o.Text = other.Text
	}
	if other.Muted != nil {
		o.Muted = other.Muted
	}
	if other.HeadingFont != nil {
		o.HeadingFont = other.HeadingFont
	}
	if other.BodyFont != nil {
		o.BodyFont = other.BodyFont
	}
	if other.Radius != nil {
		o.Radius = other.Radius
	}
	if other.ButtonStyle != nil {
		o.ButtonStyle = other.ButtonStyle
	}
}

// Computed is the fully resolved theme applied to rendering. Resolution
// is total: every field is always populated.
type Computed struct {
	Name        string      `json:"name"`
	Family      string      `json:"family"`
	Colors      Palette     `json:"colors"`
	Fonts       Fonts       `json:"fonts"`
	Radius      string      `json:"radius"`
	ButtonStyle ButtonStyle `json:"buttonStyle"`
}

// customizedName labels a computed theme that carries site overrides.
const customizedName = "Customized"

// Resolve merges the preset for the given theme family with an optional
// per-site override. Unknown families fall back to the default preset.
// With a nil or empty override the result is the preset verbatim; with
// overrides present each non-nil field wins and the result is labeled
// as customized while Family still reflects the requested family.
func Resolve(family string, override *Override) Computed {
	preset := Find(family)

	out := Computed{
		Name:        preset.Name,
		Family:      family,
		Colors:      preset.Colors,
		Fonts:       preset.Fonts,
		Radius:      preset.Radius,
		ButtonStyle: preset.ButtonStyle,
	}
	if family == "" {
		out.Family = preset.ID
	}

	if override.IsZero() {
		return out
	}

	out.Name = customizedName
	if override.Primary != nil {
		out.Colors.Primary = *override.Primary
	}
	if override.Secondary != nil {
		out.Colors.Secondary = *override.Secondary
	}
	if override.Accent != nil {
		out.Colors.Accent = *override.Accent
	}
	if override.Background != nil {
		out.Colors.Background = *override.Background
	}
	if override.Text != nil {
		out.Colors.Text = *override.Text
	}
	if override.Muted != nil {
		out.Colors.Muted = *override.Muted
	}
	if override.HeadingFont != nil {
		out.Fonts.Heading = *override.HeadingFont
	}
	if override.BodyFont != nil {
		out.Fonts.Body = *override.BodyFont
	}
	if override.Radius != nil {
		out.Radius = *override.Radius
	}
	if override.ButtonStyle != nil {
		out.ButtonStyle = ButtonStyle(*override.ButtonStyle)
	}
	return out
}
