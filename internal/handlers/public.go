// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartsite/internal/cache"
	"smartsite/internal/models"
	"smartsite/internal/publish"
	"smartsite/internal/renderer"
	"smartsite/internal/store"
)

// Public groups the handlers serving published sites. They read only
// snapshots — never live editor rows — checking the Valkey snapshot
// cache before PostgreSQL.
type Public struct {
	sites     *store.SiteStore
	publish   *store.PublishStore
	snapshots *cache.SnapshotCache
}

// NewPublic creates a new Public handler group. snapshots may be nil
// when Valkey is not configured.
func NewPublic(sites *store.SiteStore, publishStore *store.PublishStore, snapshots *cache.SnapshotCache) *Public {
	return &Public{sites: sites, publish: publishStore, snapshots: snapshots}
}

// loadSnapshot fetches the published snapshot for a site slug, cache
// first. Returns nil when the site is missing or unpublished — the two
// cases are indistinguishable from here on.
func (p *Public) loadSnapshot(r *http.Request, siteSlug string) *publish.Snapshot {
	ctx := r.Context()

	if p.snapshots != nil {
		if raw, ok := p.snapshots.Get(ctx, siteSlug); ok {
			var snap publish.Snapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap
			}
			slog.Warn("corrupt cached snapshot", "slug", siteSlug)
			p.snapshots.Invalidate(ctx, siteSlug)
		}
	}

	site, err := p.sites.FindBySlug(siteSlug)
	if err != nil {
		slog.Error("public site lookup failed", "slug", siteSlug, "error", err)
		return nil
	}
	if site == nil {
		return nil
	}

	state, err := p.publish.FindPublished(site.ID)
	if err != nil {
		slog.Error("publish state lookup failed", "slug", siteSlug, "error", err)
		return nil
	}
	if state == nil {
		return nil
	}

	var snap publish.Snapshot
	if err := json.Unmarshal([]byte(state.SnapshotJSON), &snap); err != nil {
		slog.Error("corrupt stored snapshot", "slug", siteSlug, "error", err)
		return nil
	}

	if p.snapshots != nil {
		p.snapshots.Set(ctx, siteSlug, []byte(state.SnapshotJSON))
	}
	return &snap
}

// renderSnapshotPage turns a snapshot page into the public response body.
func renderSnapshotPage(snap *publish.Snapshot, page *publish.SnapshotPage) map[string]any {
	refs := make([]renderer.PageRef, len(snap.Pages))
	menu := make([]map[string]any, 0, len(snap.Pages))
	for i, sp := range snap.Pages {
		refs[i] = renderer.PageRef{ID: sp.ID, Slug: sp.Slug}
		if sp.ShowInMenu {
			menu = append(menu, map[string]any{"title": sp.Title, "slug": sp.Slug, "isHome": sp.IsHome})
		}
	}

	ctx := renderer.Context{Theme: snap.Theme, Editor: false, Pages: refs}
	views := make([]renderer.SectionView, len(page.Sections))
	for i, sec := range page.Sections {
		views[i] = renderer.SectionView{ID: sec.ID, Type: models.SectionType(sec.Type), Data: string(sec.Data)}
	}

	return map[string]any{
		"site": map[string]any{
			"name": snap.Site.Name,
			"slug": snap.Site.Slug,
		},
		"theme":       snap.Theme,
		"menu":        menu,
		"page":        map[string]any{"title": page.Title, "slug": page.Slug, "isHome": page.IsHome},
		"tree":        renderer.Page(views, ctx),
		"publishedAt": snap.PublishedAt,
	}
}

// GetSite handles GET /s/{siteSlug}: the home page of a published site.
func (p *Public) GetSite(w http.ResponseWriter, r *http.Request) {
	snap := p.loadSnapshot(r, chi.URLParam(r, "siteSlug"))
	if snap == nil {
		respondNotFound(w)
		return
	}
	page := snap.HomePage()
	if page == nil {
		respondNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, renderSnapshotPage(snap, page))
}

// GetPage handles GET /s/{siteSlug}/{pageSlug}.
func (p *Public) GetPage(w http.ResponseWriter, r *http.Request) {
	snap := p.loadSnapshot(r, chi.URLParam(r, "siteSlug"))
	if snap == nil {
		respondNotFound(w)
		return
	}
	page := snap.FindPage(chi.URLParam(r, "pageSlug"))
	if page == nil {
		respondNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, renderSnapshotPage(snap, page))
}
