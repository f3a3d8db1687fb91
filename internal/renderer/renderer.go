// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer maps a section's payload and the resolved theme to a
// JSON-serializable view tree. The same function serves the editor
// preview (live data) and the public site (snapshot data); only the
// Editor flag differs.
package renderer

import (
	"encoding/json"

	"smartsite/internal/blocks"
	"smartsite/internal/markdown"
	"smartsite/internal/models"
	"smartsite/internal/themes"
)

// Node is one element of the render tree.
type Node struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// PageRef identifies a page for button link resolution.
type PageRef struct {
	ID   string
	Slug string
}

// Context carries everything a section render needs besides the section
// itself.
type Context struct {
	Theme  themes.Computed
	Editor bool
	Pages  []PageRef
}

// SectionView is the renderer's view of a section, satisfiable by both
// live sections and snapshot sections.
type SectionView struct {
	ID   string
	Type models.SectionType
	Data string
}

// Section renders one section. A malformed payload renders as empty
// content, never as an error. The second return value is false when the
// section produces no output (unknown type outside the editor).
func Section(sec SectionView, ctx Context) (Node, bool) {
	doc, _ := blocks.Decode(sec.Data)
	styles := resolveStyles(doc.Styles, ctx.Theme)

	root := Node{
		Kind: "section",
		Attrs: map[string]string{
			"id":         sec.ID,
			"type":       string(sec.Type),
			"background": styles.background,
			"radius":     ctx.Theme.Radius,
		},
	}
	if doc.ContentAlignment != "" {
		root.Attrs["align"] = doc.ContentAlignment
	}

	// A non-empty block list takes over rendering entirely; legacy flat
	// fields still present in the payload are ignored.
	if bs := doc.Blocks; len(bs) > 0 {
		for _, b := range bs {
			if child, ok := renderBlock(b, &doc, styles, ctx); ok {
				root.Children = append(root.Children, child)
			}
		}
		return root, true
	}

	children, ok := renderLegacy(sec.Type, &doc, styles, ctx)
	if !ok {
		if !ctx.Editor {
			return Node{}, false
		}
		root.Children = []Node{{
			Kind: "placeholder",
			Text: string(sec.Type) + " section",
		}}
		return root, true
	}
	root.Children = children
	return root, true
}

// Page renders an ordered list of sections, skipping any that produce
// no output.
func Page(sections []SectionView, ctx Context) []Node {
	var out []Node
	for _, sec := range sections {
		if node, ok := Section(sec, ctx); ok {
			out = append(out, node)
		}
	}
	return out
}

// styleSet is the per-section style cascade, fully resolved: section
// override first, computed site theme second. The computed theme is
// total, so every field is populated.
type styleSet struct {
	background   string
	headingFont  string
	bodyFont     string
	headingColor string
	textColor    string
	buttonStyle  string
}

func resolveStyles(st *blocks.Styles, theme themes.Computed) styleSet {
	out := styleSet{
		background:   theme.Colors.Background,
		headingFont:  theme.Fonts.Heading,
		bodyFont:     theme.Fonts.Body,
		headingColor: theme.Colors.Text,
		textColor:    theme.Colors.Text,
		buttonStyle:  string(theme.ButtonStyle),
	}
	if st == nil {
		return out
	}
	if st.BackgroundColor != nil {
		out.background = *st.BackgroundColor
	}
	if st.HeadingFont != nil {
		out.headingFont = *st.HeadingFont
	}
	if st.BodyFont != nil {
		out.bodyFont = *st.BodyFont
	}
	if st.HeadingColor != nil {
		out.headingColor = *st.HeadingColor
	}
	if st.TextColor != nil {
		out.textColor = *st.TextColor
	}
	if st.ButtonStyle != nil {
		out.buttonStyle = *st.ButtonStyle
	}
	return out
}

// renderBlock maps one block to its fixed visual node. Unknown block
// types render nothing.
func renderBlock(b blocks.Block, doc *blocks.Doc, styles styleSet, ctx Context) (Node, bool) {
	switch b.Type {
	case blocks.TypeTitle:
		return textNode("heading", b.Content, map[string]string{
			"color": styles.headingColor,
			"font":  styles.headingFont,
			"align": b.Settings[blocks.SettingAlignment],
		}), true
	case blocks.TypeSubtitle:
		return textNode("subheading", b.Content, map[string]string{
			"color": styles.headingColor,
			"font":  styles.headingFont,
			"align": b.Settings[blocks.SettingAlignment],
		}), true
	case blocks.TypeText:
		n := textNode("paragraph", b.Content, map[string]string{
			"color": styles.textColor,
			"font":  styles.bodyFont,
		})
		// Text blocks are authored as Markdown; ship the rendered HTML
		// alongside the source so clients need no Markdown runtime.
		if html, err := markdown.ToHTML(b.Content); err == nil {
			if n.Attrs == nil {
				n.Attrs = map[string]string{}
			}
			n.Attrs["html"] = html
		}
		return n, true
	case blocks.TypeImage:
		return Node{Kind: "image", Attrs: map[string]string{
			"src": b.Content,
			"alt": b.Settings[blocks.SettingAltText],
		}}, true
	case blocks.TypeVideo:
		return Node{Kind: "video", Attrs: map[string]string{"src": b.Content}}, true
	case blocks.TypeAudio:
		return Node{Kind: "audio", Attrs: map[string]string{"src": b.Content}}, true
	case blocks.TypeButton:
		return Node{
			Kind: "button",
			Text: b.Content,
			Attrs: map[string]string{
				"href":  resolveLink(b.Settings, ctx),
				"style": styles.buttonStyle,
			},
		}, true
	case blocks.TypeShape:
		return Node{Kind: "shape", Attrs: map[string]string{"shape": b.Content}}, true
	case blocks.TypeGallery:
		return galleryNode(doc.SectionImages), true
	case blocks.TypeContactForm:
		return Node{Kind: "contact-form", Attrs: map[string]string{"email": b.Content}}, true
	case blocks.TypeSocialIcons:
		return Node{Kind: "social-icons", Text: b.Content}, true
	}
	return Node{}, false
}

// resolveLink turns a button's link settings into an href. Exactly one
// of the three modes is active: a literal URL, an internal page, or a
// same-page section anchor. An unresolvable target yields "#".
func resolveLink(settings map[string]string, ctx Context) string {
	target := settings[blocks.SettingLinkTarget]
	switch settings[blocks.SettingLinkType] {
	case "url":
		if target != "" {
			return target
		}
	case "page":
		for _, p := range ctx.Pages {
			if p.ID == target || p.Slug == target {
				return "/" + p.Slug
			}
		}
	case "section":
		if target != "" {
			return "#" + target
		}
	}
	return "#"
}

// renderLegacy dispatches a not-yet-migrated payload to its bespoke
// per-type layout. Types without a bespoke layout return false and fall
// back to the caller's placeholder handling.
func renderLegacy(t models.SectionType, doc *blocks.Doc, styles styleSet, ctx Context) ([]Node, bool) {
	legacy := doc.Legacy

	heading := func(key string) []Node {
		if v := legacy[key]; v != "" {
			return []Node{textNode("heading", v, map[string]string{
				"color": styles.headingColor,
				"font":  styles.headingFont,
			})}
		}
		return nil
	}
	paragraph := func(v string) Node {
		return textNode("paragraph", v, map[string]string{
			"color": styles.textColor,
			"font":  styles.bodyFont,
		})
	}

	switch t {
	case models.SectionHero:
		nodes := heading("title")
		if v := legacy["subtitle"]; v != "" {
			nodes = append(nodes, textNode("subheading", v, map[string]string{
				"color": styles.headingColor,
				"font":  styles.headingFont,
			}))
		}
		if v := legacy["ctaText"]; v != "" {
			href := "#"
			if link := legacy["ctaLink"]; link != "" {
				href = resolveLink(map[string]string{
					blocks.SettingLinkType:   "url",
					blocks.SettingLinkTarget: link,
				}, ctx)
			}
			nodes = append(nodes, Node{
				Kind:  "button",
				Text:  v,
				Attrs: map[string]string{"href": href, "style": styles.buttonStyle},
			})
		}
		return nodes, true

	case models.SectionAbout:
		nodes := heading("title")
		if v := firstLegacy(legacy, "content", "text"); v != "" {
			nodes = append(nodes, paragraph(v))
		}
		return nodes, true

	case models.SectionServices:
		nodes := heading("title")
		var items []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		decodeExtra(doc, "items", &items)
		cards := Node{Kind: "cards"}
		for _, it := range items {
			card := Node{Kind: "card"}
			if it.Name != "" {
				card.Children = append(card.Children, textNode("heading", it.Name, map[string]string{
					"color": styles.headingColor,
					"font":  styles.headingFont,
				}))
			}
			if it.Description != "" {
				card.Children = append(card.Children, paragraph(it.Description))
			}
			cards.Children = append(cards.Children, card)
		}
		nodes = append(nodes, cards)
		return nodes, true

	case models.SectionGallery:
		return append(heading("title"), galleryNode(doc.SectionImages)), true

	case models.SectionTestimonials:
		nodes := heading("title")
		var items []struct {
			Quote  string `json:"quote"`
			Author string `json:"author"`
		}
		decodeExtra(doc, "items", &items)
		for _, it := range items {
			nodes = append(nodes, Node{
				Kind:  "quote",
				Text:  it.Quote,
				Attrs: map[string]string{"author": it.Author},
			})
		}
		return nodes, true

	case models.SectionContact:
		nodes := heading("title")
		if v := firstLegacy(legacy, "content", "text"); v != "" {
			nodes = append(nodes, paragraph(v))
		}
		nodes = append(nodes, Node{
			Kind:  "contact-form",
			Attrs: map[string]string{"email": firstLegacy(legacy, "contactEmail", "email")},
		})
		return nodes, true

	case models.SectionFooter:
		v := firstLegacy(legacy, "text", "content")
		return []Node{{Kind: "footer", Text: v, Attrs: map[string]string{
			"color": styles.textColor,
			"font":  styles.bodyFont,
		}}}, true
	}

	return nil, false
}

func galleryNode(images []string) Node {
	g := Node{Kind: "gallery"}
	for _, src := range images {
		g.Children = append(g.Children, Node{Kind: "image", Attrs: map[string]string{"src": src}})
	}
	return g
}

func textNode(kind, text string, attrs map[string]string) Node {
	for k, v := range attrs {
		if v == "" {
			delete(attrs, k)
		}
	}
	return Node{Kind: kind, Text: text, Attrs: attrs}
}

func decodeExtra(doc *blocks.Doc, key string, v any) {
	if raw, ok := doc.Extra(key); ok {
		json.Unmarshal(raw, v)
	}
}

func firstLegacy(legacy map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := legacy[k]; v != "" {
			return v
		}
	}
	return ""
}
