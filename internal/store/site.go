// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/slug"
	"smartsite/internal/themes"
)

// maxSlugAttempts bounds the suffix-counter retry loop before the
// operation is reported as a conflict.
const maxSlugAttempts = 50

// ErrSlugConflict is returned when the de-duplication loop cannot find
// a free slug.
var ErrSlugConflict = errors.New("slug conflict")

// SiteStore handles all site-related database operations.
type SiteStore struct {
	db *sql.DB
}

// NewSiteStore creates a new SiteStore with the given database connection.
func NewSiteStore(db *sql.DB) *SiteStore {
	return &SiteStore{db: db}
}

// Create inserts a new site, deriving a unique public slug from the
// name via the suffix-counter loop, and creates its empty (unpublished)
// publish state. The caller provides the token hash; the plaintext
// token never reaches this layer.
func (s *SiteStore) Create(site *models.Site) (*models.Site, error) {
	base := slug.Generate(site.Name)

	var siteSlug string
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := slug.Candidate(base, n)
		var exists bool
		err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM sites WHERE slug = $1)`, candidate).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check site slug: %w", err)
		}
		if !exists {
			siteSlug = candidate
			break
		}
	}
	if siteSlug == "" {
		return nil, ErrSlugConflict
	}

	override, err := marshalOverride(site.ThemeOverride)
	if err != nil {
		return nil, fmt.Errorf("marshal theme override: %w", err)
	}

	result := &models.Site{}
	var rawOverride []byte
	err = s.db.QueryRow(`
		INSERT INTO sites (name, slug, contact_email, goal, theme_family, theme_override, token_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, slug, contact_email, goal, theme_family, theme_override, token_hash,
		          created_at, updated_at
	`, site.Name, siteSlug, site.ContactEmail, site.Goal, site.ThemeFamily, override, site.TokenHash,
	).Scan(
		&result.ID, &result.Name, &result.Slug, &result.ContactEmail, &result.Goal,
		&result.ThemeFamily, &rawOverride, &result.TokenHash,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create site: %w", err)
	}
	result.ThemeOverride = unmarshalOverride(rawOverride)

	if _, err := s.db.Exec(`
		INSERT INTO publish_states (site_id) VALUES ($1) ON CONFLICT (site_id) DO NOTHING
	`, result.ID); err != nil {
		return nil, fmt.Errorf("create publish state: %w", err)
	}

	return result, nil
}

// FindByID retrieves a site by its UUID. Returns nil if not found.
func (s *SiteStore) FindByID(id uuid.UUID) (*models.Site, error) {
	return s.findOne(`
		SELECT id, name, slug, contact_email, goal, theme_family, theme_override, token_hash,
		       created_at, updated_at
		FROM sites WHERE id = $1
	`, id)
}

// FindBySlug retrieves a site by its public slug. Returns nil if not found.
func (s *SiteStore) FindBySlug(siteSlug string) (*models.Site, error) {
	return s.findOne(`
		SELECT id, name, slug, contact_email, goal, theme_family, theme_override, token_hash,
		       created_at, updated_at
		FROM sites WHERE slug = $1
	`, siteSlug)
}

func (s *SiteStore) findOne(query string, arg any) (*models.Site, error) {
	site := &models.Site{}
	var rawOverride []byte
	err := s.db.QueryRow(query, arg).Scan(
		&site.ID, &site.Name, &site.Slug, &site.ContactEmail, &site.Goal,
		&site.ThemeFamily, &rawOverride, &site.TokenHash,
		&site.CreatedAt, &site.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site: %w", err)
	}
	site.ThemeOverride = unmarshalOverride(rawOverride)
	return site, nil
}

// UpdateTheme persists a theme edit: the family and the merged override.
// Switching family deliberately keeps the existing override — only
// fields the caller merged in change.
func (s *SiteStore) UpdateTheme(id uuid.UUID, family string, override *themes.Override) error {
	raw, err := marshalOverride(override)
	if err != nil {
		return fmt.Errorf("marshal theme override: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE sites SET theme_family = $1, theme_override = $2, updated_at = NOW()
		WHERE id = $3
	`, family, raw, id)
	if err != nil {
		return fmt.Errorf("update site theme: %w", err)
	}
	return nil
}

// UpdateName renames a site. The public slug is intentionally stable —
// renaming does not break a published URL.
func (s *SiteStore) UpdateName(id uuid.UUID, name string) error {
	_, err := s.db.Exec(`UPDATE sites SET name = $1, updated_at = NOW() WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("update site name: %w", err)
	}
	return nil
}

// Delete removes a site; pages, sections, media records, and the
// publish state cascade.
func (s *SiteStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}

func marshalOverride(o *themes.Override) ([]byte, error) {
	if o.IsZero() {
		return nil, nil
	}
	return json.Marshal(o)
}

func unmarshalOverride(raw []byte) *themes.Override {
	if len(raw) == 0 {
		return nil
	}
	var o themes.Override
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil
	}
	if o.IsZero() {
		return nil
	}
	return &o
}
