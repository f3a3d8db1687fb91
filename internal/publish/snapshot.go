// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publish builds and serves immutable site snapshots. Publishing
// freezes the live editing state into a single JSON document; the public
// site reads only that document, so later edits stay invisible until the
// next publish.
package publish

import (
	"encoding/json"
	"time"

	"smartsite/internal/models"
	"smartsite/internal/themes"
)

// Snapshot is the complete frozen form of a site. It embeds everything
// public rendering needs: resolved theme, pages, and raw section
// payloads. It never references live rows.
type Snapshot struct {
	Site        SnapshotSite    `json:"site"`
	Theme       themes.Computed `json:"theme"`
	Pages       []SnapshotPage  `json:"pages"`
	PublishedAt time.Time       `json:"publishedAt"`
}

// SnapshotSite carries the site fields public rendering uses. The token
// hash and internal timestamps are deliberately absent.
type SnapshotSite struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// SnapshotPage is one page frozen with its sections in order.
type SnapshotPage struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Slug       string            `json:"slug"`
	IsHome     bool              `json:"isHome"`
	ShowInMenu bool              `json:"showInMenu"`
	Sections   []SnapshotSection `json:"sections"`
}

// SnapshotSection is one section frozen with its payload verbatim. The
// payload is copied as raw JSON so the snapshot preserves exactly what
// the editor saved, legacy fields included.
type SnapshotSection struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Build assembles a snapshot entirely in memory from the live site
// graph. Pages and sections must already be in sort order; Build keeps
// the order it is given. The result shares no mutable state with its
// inputs.
func Build(site *models.Site, pages []models.Page, sectionsByPage map[string][]models.Section, now time.Time) Snapshot {
	snap := Snapshot{
		Site: SnapshotSite{
			ID:           site.ID.String(),
			Name:         site.Name,
			Slug:         site.Slug,
			ContactEmail: site.ContactEmail,
		},
		Theme:       site.ResolvedTheme(),
		Pages:       make([]SnapshotPage, 0, len(pages)),
		PublishedAt: now.UTC(),
	}

	for _, p := range pages {
		sp := SnapshotPage{
			ID:         p.ID.String(),
			Title:      p.Title,
			Slug:       p.Slug,
			IsHome:     p.IsHome,
			ShowInMenu: p.ShowInMenu,
			Sections:   []SnapshotSection{},
		}
		for _, sec := range sectionsByPage[p.ID.String()] {
			data := sec.DataJSON
			if data == "" || !json.Valid([]byte(data)) {
				data = "{}"
			}
			sp.Sections = append(sp.Sections, SnapshotSection{
				ID:   sec.ID.String(),
				Type: string(sec.Type),
				Data: json.RawMessage([]byte(data)),
			})
		}
		snap.Pages = append(snap.Pages, sp)
	}

	return snap
}

// HomePage returns the snapshot's home page, falling back to the first
// page when no page carries the flag. Returns nil for a site with no
// pages.
func (s *Snapshot) HomePage() *SnapshotPage {
	for i := range s.Pages {
		if s.Pages[i].IsHome {
			return &s.Pages[i]
		}
	}
	if len(s.Pages) > 0 {
		return &s.Pages[0]
	}
	return nil
}

// FindPage returns the snapshot page with the given slug, or nil.
func (s *Snapshot) FindPage(slug string) *SnapshotPage {
	for i := range s.Pages {
		if s.Pages[i].Slug == slug {
			return &s.Pages[i]
		}
	}
	return nil
}
