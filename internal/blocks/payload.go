// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"encoding/json"
	"sort"
)

// legacyKeys are the flat-field keys predating the block model. They are
// consulted during read-time migration and dropped when a migrated
// payload is written back.
var legacyKeys = []string{
	"title", "subtitle", "image", "imageUrl", "text", "content",
	"ctaText", "ctaLink", "contactEmail", "email",
}

// Doc is the decoded view of a section's data payload. Extra carries
// every key that is neither the block list nor a known legacy field, so
// unknown payload extensions survive a save untouched.
type Doc struct {
	Blocks           []Block           `json:"blocks"`
	Styles           *Styles           `json:"sectionStyles,omitempty"`
	ContentAlignment string            `json:"contentAlignment,omitempty"`
	SectionImages    []string          `json:"sectionImages,omitempty"`
	Legacy           map[string]string `json:"-"`

	extra map[string]json.RawMessage
}

// Migrated reports whether the payload already carried a block list.
func (d *Doc) Migrated() bool {
	return d.Blocks != nil
}

// Extra returns the raw JSON value of a payload key that is neither the
// block list, a style/layout field, nor a known legacy flat field.
// Section layouts use it for structured data like service or hours
// items.
func (d *Doc) Extra(key string) (json.RawMessage, bool) {
	v, ok := d.extra[key]
	return v, ok
}

// Decode parses a stored payload into a Doc. If the payload contains a
// "blocks" array it is used as-is, sorted by order — legacy fields are
// never re-synthesized. Otherwise blocks are synthesized in memory from
// the legacy flat fields in a fixed precedence. Malformed JSON yields an
// empty Doc and a non-nil error the caller may log; it must never be
// surfaced to a visitor.
func Decode(raw string) (Doc, error) {
	doc := Doc{Legacy: map[string]string{}, extra: map[string]json.RawMessage{}}
	if raw == "" {
		return doc, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return doc, err
	}

	for key, val := range m {
		switch key {
		case "blocks":
			var bs []Block
			if err := json.Unmarshal(val, &bs); err == nil {
				// Stored order is not trusted — sort before use.
				sort.SliceStable(bs, func(i, j int) bool { return bs[i].Order < bs[j].Order })
				doc.Blocks = bs
			}
		case "sectionStyles":
			var st Styles
			if err := json.Unmarshal(val, &st); err == nil {
				doc.Styles = &st
			}
		case "contentAlignment":
			json.Unmarshal(val, &doc.ContentAlignment)
		case "sectionImages":
			json.Unmarshal(val, &doc.SectionImages)
		default:
			if isLegacyKey(key) {
				var s string
				if err := json.Unmarshal(val, &s); err == nil {
					doc.Legacy[key] = s
				}
				continue
			}
			doc.extra[key] = val
		}
	}

	return doc, nil
}

// View returns the ordered block list for editing or rendering,
// regardless of whether the payload was stored migrated or legacy.
func (d *Doc) View() []Block {
	if d.Blocks != nil {
		return d.Blocks
	}
	return synthesize(d.Legacy)
}

// synthesize builds blocks from legacy flat fields in the fixed
// precedence title → subtitle → image → text/content → call-to-action →
// contact email. Absent fields produce no block; orders are assigned
// sequentially from 0.
func synthesize(legacy map[string]string) []Block {
	if len(legacy) == 0 {
		return nil
	}
	var out []Block

	add := func(id string, typ Type, content string, settings map[string]string) {
		out = append(out, Block{
			ID:       "legacy-" + id,
			Type:     typ,
			Order:    len(out),
			Content:  content,
			Settings: settings,
		})
	}

	if v := legacy["title"]; v != "" {
		add("title", TypeTitle, v, nil)
	}
	if v := legacy["subtitle"]; v != "" {
		add("subtitle", TypeSubtitle, v, nil)
	}
	if v := firstOf(legacy, "image", "imageUrl"); v != "" {
		add("image", TypeImage, v, nil)
	}
	if v := firstOf(legacy, "text", "content"); v != "" {
		add("text", TypeText, v, nil)
	}
	if v := legacy["ctaText"]; v != "" {
		var settings map[string]string
		if link := legacy["ctaLink"]; link != "" {
			settings = map[string]string{
				SettingLinkType:   "url",
				SettingLinkTarget: link,
			}
		}
		add("cta", TypeButton, v, settings)
	}
	if v := firstOf(legacy, "contactEmail", "email"); v != "" {
		add("contact-email", TypeText, "Email: "+v, nil)
	}
	return out
}

// Encode writes a block edit back to the payload. The block list is
// replaced wholesale (renumbered contiguously), legacy flat fields are
// dropped, and sectionStyles, contentAlignment, sectionImages, and any
// unknown keys are preserved verbatim from the existing payload.
func Encode(existingRaw string, bs []Block) (string, error) {
	doc, _ := Decode(existingRaw) // malformed existing payload: start clean

	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Order < bs[j].Order })
	Renumber(bs)

	out := map[string]any{"blocks": bs}
	if doc.Styles != nil {
		out["sectionStyles"] = doc.Styles
	}
	if doc.ContentAlignment != "" {
		out["contentAlignment"] = doc.ContentAlignment
	}
	if doc.SectionImages != nil {
		out["sectionImages"] = doc.SectionImages
	}
	for k, v := range doc.extra {
		out[k] = v
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MergeStyles applies a partial style override onto the payload's
// sectionStyles, leaving the rest of the payload untouched.
func MergeStyles(existingRaw string, styles *Styles) (string, error) {
	var m map[string]json.RawMessage
	if existingRaw != "" {
		if err := json.Unmarshal([]byte(existingRaw), &m); err != nil {
			m = nil
		}
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}

	current := &Styles{}
	if rawStyles, ok := m["sectionStyles"]; ok {
		json.Unmarshal(rawStyles, current)
	}
	current.Merge(styles)

	encoded, err := json.Marshal(current)
	if err != nil {
		return "", err
	}
	m["sectionStyles"] = encoded

	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isLegacyKey(key string) bool {
	for _, k := range legacyKeys {
		if k == key {
			return true
		}
	}
	return false
}

func firstOf(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}
