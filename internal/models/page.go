// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Page is one page of a site. SortOrder defines the display and tab
// sequence; the slug is unique within the owning site. At most one page
// per site has IsHome set.
type Page struct {
	ID         uuid.UUID `json:"id"`
	SiteID     uuid.UUID `json:"site_id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	SortOrder  int       `json:"order"`
	IsHome     bool      `json:"is_home"`
	ShowInMenu bool      `json:"show_in_menu"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
