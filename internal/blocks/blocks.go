// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blocks defines the content model stored inside a section's
// data payload: an ordered list of typed blocks, an optional per-section
// style override, and layout extensions. It also performs the read-time
// migration from the legacy flat-field payload shape to the block list.
package blocks

// Type enumerates the supported block types. Unknown types are carried
// through storage but render nothing.
type Type string

const (
	TypeTitle       Type = "title"
	TypeSubtitle    Type = "subtitle"
	TypeText        Type = "text"
	TypeImage       Type = "image"
	TypeVideo       Type = "video"
	TypeAudio       Type = "audio"
	TypeButton      Type = "button"
	TypeShape       Type = "shape"
	TypeGallery     Type = "gallery"
	TypeContactForm Type = "contact-form"
	TypeSocialIcons Type = "social-icons"
)

// Settings keys used by specific block types.
const (
	SettingAlignment  = "alignment"  // title, subtitle
	SettingLinkType   = "linkType"   // button: "url", "page", "section"
	SettingLinkTarget = "linkTarget" // button: URL, page id/slug, or section id
	SettingAltText    = "alt"        // image
)

// Block is one ordered content unit inside a section payload. Content
// holds the primary string value — text, URL, or label depending on the
// block type. Settings carries type-specific extras.
type Block struct {
	ID       string            `json:"id"`
	Type     Type              `json:"type"`
	Order    int               `json:"order"`
	Content  string            `json:"content"`
	Settings map[string]string `json:"settings,omitempty"`
}

// Styles is the per-section style override layer. Absent fields fall
// back to the resolved site theme at render time.
type Styles struct {
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	HeadingFont     *string `json:"headingFont,omitempty"`
	BodyFont        *string `json:"bodyFont,omitempty"`
	HeadingColor    *string `json:"headingColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	ButtonStyle     *string `json:"buttonStyle,omitempty"`
}

// Merge applies the non-nil fields of other on top of s.
func (s *Styles) Merge(other *Styles) {
	if other == nil {
		return
	}
	if other.BackgroundColor != nil {
		s.BackgroundColor = other.BackgroundColor
	}
	if other.HeadingFont != nil {
		s.HeadingFont = other.HeadingFont
	}
	if other.BodyFont != nil {
		s.BodyFont = other.BodyFont
	}
	if other.HeadingColor != nil {
		s.HeadingColor = other.HeadingColor
	}
	if other.TextColor != nil {
		s.TextColor = other.TextColor
	}
	if other.ButtonStyle != nil {
		s.ButtonStyle = other.ButtonStyle
	}
}

// Renumber rewrites block orders as their contiguous index sequence
// (0..n-1) in the slice's current position order.
func Renumber(bs []Block) {
	for i := range bs {
		bs[i].Order = i
	}
}
