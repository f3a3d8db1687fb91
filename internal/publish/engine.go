// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"smartsite/internal/cache"
	"smartsite/internal/models"
	"smartsite/internal/store"
)

// ErrSiteNotFound is returned when publishing a site that does not exist.
var ErrSiteNotFound = errors.New("site not found")

// Engine loads the live site graph, builds a snapshot in memory, and
// writes it as the site's single publish row. A failed build or write
// leaves the previous snapshot untouched.
type Engine struct {
	sites    *store.SiteStore
	pages    *store.PageStore
	sections *store.SectionStore
	publish  *store.PublishStore
	cache    *cache.SnapshotCache
}

// NewEngine creates a publish engine over the given stores. The cache
// may be nil when Valkey is not configured.
func NewEngine(sites *store.SiteStore, pages *store.PageStore, sections *store.SectionStore, publishStore *store.PublishStore, snapshots *cache.SnapshotCache) *Engine {
	return &Engine{
		sites:    sites,
		pages:    pages,
		sections: sections,
		publish:  publishStore,
		cache:    snapshots,
	}
}

// Publish freezes the site's current state into a new snapshot and makes
// it the public one. The whole snapshot is assembled before any write
// happens, so the previous published version stays intact on failure.
func (e *Engine) Publish(ctx context.Context, siteID uuid.UUID) (*models.PublishState, error) {
	site, err := e.sites.FindByID(siteID)
	if err != nil {
		return nil, fmt.Errorf("load site: %w", err)
	}
	if site == nil {
		return nil, ErrSiteNotFound
	}

	pages, err := e.pages.ListBySite(siteID)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	sectionsByPage := make(map[string][]models.Section, len(pages))
	for _, p := range pages {
		sections, err := e.sections.ListByPage(p.ID)
		if err != nil {
			return nil, fmt.Errorf("load sections for page %s: %w", p.ID, err)
		}
		sectionsByPage[p.ID.String()] = sections
	}

	snap := Build(site, pages, sectionsByPage, time.Now())
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	state, err := e.publish.Upsert(siteID, string(raw))
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		e.cache.Invalidate(ctx, site.Slug)
	}

	slog.Info("site published",
		"site_id", siteID,
		"slug", site.Slug,
		"pages", len(snap.Pages))
	return state, nil
}

// Unpublish takes the site offline. The last snapshot is retained so a
// later republish of unchanged content is cheap to compare against.
func (e *Engine) Unpublish(ctx context.Context, siteID uuid.UUID) error {
	site, err := e.sites.FindByID(siteID)
	if err != nil {
		return fmt.Errorf("load site: %w", err)
	}
	if site == nil {
		return ErrSiteNotFound
	}

	if err := e.publish.Unpublish(siteID); err != nil {
		return err
	}
	if e.cache != nil {
		e.cache.Invalidate(ctx, site.Slug)
	}

	slog.Info("site unpublished", "site_id", siteID, "slug", site.Slug)
	return nil
}
