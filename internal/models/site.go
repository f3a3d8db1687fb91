// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"smartsite/internal/themes"
)

// Site is one builder site. The plaintext editor token is shown exactly
// once at creation; only its bcrypt hash is stored.
type Site struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	ContactEmail  string           `json:"contact_email"`
	Goal          string           `json:"goal"`
	ThemeFamily   string           `json:"theme_family"`
	ThemeOverride *themes.Override `json:"theme_override,omitempty"`
	TokenHash     string           `json:"-"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ResolvedTheme returns the site's fully computed theme.
func (s *Site) ResolvedTheme() themes.Computed {
	return themes.Resolve(s.ThemeFamily, s.ThemeOverride)
}
