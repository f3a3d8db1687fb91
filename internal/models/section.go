// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SectionType enumerates the section types the builder creates. Legacy
// or unknown values read from storage are passed through untouched.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionText         SectionType = "text"
	SectionImageText    SectionType = "image-text"
	SectionServices     SectionType = "services"
	SectionGallery      SectionType = "gallery"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionFooter       SectionType = "footer"
	SectionHours        SectionType = "hours"
)

// KnownSectionType reports whether t is one of the enumerated types the
// builder itself creates.
func KnownSectionType(t SectionType) bool {
	switch t {
	case SectionHero, SectionAbout, SectionText, SectionImageText,
		SectionServices, SectionGallery, SectionTestimonials,
		SectionContact, SectionFooter, SectionHours:
		return true
	}
	return false
}

// Section is one ordered content unit on a page. DataJSON is an opaque
// serialized payload whose shape depends on the type and on whether it
// has been migrated to the block model (see the blocks package). Edits
// replace the payload wholesale, never merge it.
type Section struct {
	ID        uuid.UUID   `json:"id"`
	PageID    uuid.UUID   `json:"page_id"`
	Type      SectionType `json:"type"`
	SortOrder int         `json:"order"`
	DataJSON  string      `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
