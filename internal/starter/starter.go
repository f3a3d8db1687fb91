// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package starter produces the initial section set for a newly created
// site: the union of mandatory, caller-selected, and preset-default
// section types, laid out in one fixed canonical sequence with
// placeholder content.
package starter

import (
	"encoding/json"
	"fmt"

	"smartsite/internal/models"
	"smartsite/internal/themes"
)

// canonicalOrder is the only sequence sections are ever generated in.
// Types outside this list are dropped silently — the generator never
// creates a section type it does not know.
var canonicalOrder = []models.SectionType{
	models.SectionHero,
	models.SectionAbout,
	models.SectionServices,
	models.SectionGallery,
	models.SectionTestimonials,
	models.SectionHours,
	models.SectionContact,
	models.SectionFooter,
}

// mandatory types are always included regardless of selection.
var mandatory = []models.SectionType{models.SectionHero, models.SectionFooter}

// Spec is one generated section before persistence.
type Spec struct {
	Type      models.SectionType
	SortOrder int
	DataJSON  string
}

// Generate returns the ordered starter sections for a new site. The
// type set is the union of {hero, footer}, the caller's selection, and
// the chosen preset's default section list, arranged in canonical order
// with contiguous orders from 0.
func Generate(siteName, themeFamily string, selected []models.SectionType) []Spec {
	preset := themes.Find(themeFamily)

	include := map[models.SectionType]bool{}
	for _, t := range mandatory {
		include[t] = true
	}
	for _, t := range selected {
		include[t] = true
	}
	for _, t := range preset.DefaultSections {
		include[models.SectionType(t)] = true
	}

	var out []Spec
	for _, t := range canonicalOrder {
		if !include[t] {
			continue
		}
		out = append(out, Spec{
			Type:      t,
			SortOrder: len(out),
			DataJSON:  DefaultData(t, siteName, preset.ID),
		})
	}
	return out
}

// DefaultData returns the type-specific placeholder payload for a new
// section. The flagship preset overrides hero and about copy with
// preset-flavored text; this is a closed lookup table, not a template
// mechanism.
func DefaultData(t models.SectionType, siteName, presetID string) string {
	if presetID == themes.FlagshipID {
		if data, ok := flagshipCopy(t, siteName); ok {
			return data
		}
	}

	switch t {
	case models.SectionHero:
		return mustJSON(map[string]string{
			"title":    fmt.Sprintf("Welcome to %s", siteName),
			"subtitle": "We're glad you're here.",
			"ctaText":  "Get in touch",
			"ctaLink":  "#contact",
		})
	case models.SectionAbout:
		return mustJSON(map[string]string{
			"title":   "About us",
			"content": "Tell your visitors who you are and what makes you different.",
		})
	case models.SectionText:
		return mustJSON(map[string]string{
			"content": "Write something here.",
		})
	case models.SectionImageText:
		return mustJSON(map[string]string{
			"title":   "A picture says more",
			"content": "Pair an image with a short story about your work.",
			"image":   "",
		})
	case models.SectionServices:
		return mustJSON(map[string]any{
			"title": "What we offer",
			"items": []map[string]string{
				{"name": "Service one", "description": "Describe your first service."},
				{"name": "Service two", "description": "Describe your second service."},
				{"name": "Service three", "description": "Describe your third service."},
			},
		})
	case models.SectionGallery:
		return mustJSON(map[string]any{
			"title":         "Gallery",
			"sectionImages": []string{},
		})
	case models.SectionTestimonials:
		return mustJSON(map[string]any{
			"title": "What people say",
			"items": []map[string]string{
				{"quote": "They did a wonderful job.", "author": "A happy customer"},
			},
		})
	case models.SectionHours:
		return mustJSON(map[string]any{
			"title": "Opening hours",
			"items": []map[string]string{
				{"days": "Mon–Fri", "hours": "9:00–17:00"},
				{"days": "Sat", "hours": "10:00–14:00"},
			},
		})
	case models.SectionContact:
		return mustJSON(map[string]string{
			"title":        "Contact",
			"content":      "Have a question? Send us a message.",
			"contactEmail": "",
		})
	case models.SectionFooter:
		return mustJSON(map[string]string{
			"text": fmt.Sprintf("© %s", siteName),
		})
	}
	return "{}"
}

// flagshipCopy holds the flagship preset's hand-written hero and about
// copy. Only these two types differ from the generic defaults.
func flagshipCopy(t models.SectionType, siteName string) (string, bool) {
	switch t {
	case models.SectionHero:
		return mustJSON(map[string]string{
			"title":    fmt.Sprintf("%s — made with light", siteName),
			"subtitle": "Warm, bright, and unmistakably yours.",
			"ctaText":  "See what we do",
			"ctaLink":  "#services",
		}), true
	case models.SectionAbout:
		return mustJSON(map[string]string{
			"title":   "Our story",
			"content": "Every detail here is chosen to feel warm and welcoming — start your story the same way.",
		}), true
	}
	return "", false
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// All inputs are literal maps; marshal cannot fail.
		panic(err)
	}
	return string(data)
}
