// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/ordering"
	"smartsite/internal/slug"
)

// ErrLastPage is returned when deleting the only remaining page of a
// site. The delete is rejected with no state change.
var ErrLastPage = errors.New("cannot delete the last page")

// PageStore handles all page-related database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, site_id, title, slug, sort_order, is_home, show_in_menu, created_at, updated_at`

// ListBySite returns a site's pages ordered by their sort order.
func (s *PageStore) ListBySite(siteID uuid.UUID) ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT `+pageColumns+`
		FROM pages
		WHERE site_id = $1
		ORDER BY sort_order ASC
	`, siteID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var p models.Page
		if err := scanPage(rows, &p); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	p := &models.Page{}
	err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// uniqueSlug derives a slug from the title and de-duplicates it within
// the site via the suffix-counter loop. exclude names a page whose own
// slug does not count as a collision; uuid.Nil on create.
func (s *PageStore) uniqueSlug(siteID uuid.UUID, title string, exclude uuid.UUID) (string, error) {
	base := slug.Generate(title)

	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := slug.Candidate(base, n)
		var exists bool
		err := s.db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM pages WHERE site_id = $1 AND slug = $2 AND id <> $3)
		`, siteID, candidate, exclude).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("check page slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrSlugConflict
}

// RefreshSlug re-derives the page's slug from its current title, keeping
// it unique within the site. The page's own slug is not a collision, so
// refreshing an unchanged title keeps the slug it already has.
func (s *PageStore) RefreshSlug(p *models.Page) error {
	newSlug, err := s.uniqueSlug(p.SiteID, p.Title, p.ID)
	if err != nil {
		return err
	}
	p.Slug = newSlug
	return nil
}

// Create inserts a new page at the end of the site's page sequence. The
// slug is derived from the title and de-duplicated within the site by
// the suffix-counter loop.
func (s *PageStore) Create(siteID uuid.UUID, title string, showInMenu bool) (*models.Page, error) {
	pageSlug, err := s.uniqueSlug(siteID, title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	p := &models.Page{}
	err = scanPage(s.db.QueryRow(`
		INSERT INTO pages (site_id, title, slug, sort_order, is_home, show_in_menu)
		VALUES ($1, $2, $3,
		        COALESCE((SELECT MAX(sort_order) + 1 FROM pages WHERE site_id = $1), 0),
		        FALSE, $4)
		RETURNING `+pageColumns+`
	`, siteID, title, pageSlug, showInMenu), p)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return p, nil
}

// Update modifies a page's title, slug, and menu visibility.
func (s *PageStore) Update(p *models.Page) error {
	_, err := s.db.Exec(`
		UPDATE pages SET title = $1, slug = $2, show_in_menu = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Title, p.Slug, p.ShowInMenu, p.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// SetHome marks one page as the site's home page and clears the flag on
// every other page, in one transaction so at most one page is ever home.
func (s *PageStore) SetHome(siteID, pageID uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set home begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE pages SET is_home = FALSE WHERE site_id = $1 AND is_home`, siteID); err != nil {
		return fmt.Errorf("clear home flags: %w", err)
	}
	if _, err := tx.Exec(`UPDATE pages SET is_home = TRUE, updated_at = NOW() WHERE id = $1 AND site_id = $2`, pageID, siteID); err != nil {
		return fmt.Errorf("set home flag: %w", err)
	}
	return tx.Commit()
}

// Delete removes a page. Deleting the last remaining page of a site is
// rejected with ErrLastPage and no state change.
func (s *PageStore) Delete(id, siteID uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete page begin: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM pages WHERE site_id = $1`, siteID).Scan(&count); err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if count <= 1 {
		return ErrLastPage
	}

	if _, err := tx.Exec(`DELETE FROM pages WHERE id = $1 AND site_id = $2`, id, siteID); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return tx.Commit()
}

// UpdateOrders applies the order changes produced by the ordering
// engine in a single transaction, so a reorder is atomic: order values
// within a site are never left duplicated by a crash between writes.
func (s *PageStore) UpdateOrders(siteID uuid.UUID, changes []ordering.Change) error {
	if len(changes) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder pages begin: %w", err)
	}
	defer tx.Rollback()

	for _, c := range changes {
		if _, err := tx.Exec(`
			UPDATE pages SET sort_order = $1, updated_at = NOW()
			WHERE id = $2 AND site_id = $3
		`, c.Order, c.ID, siteID); err != nil {
			return fmt.Errorf("reorder page %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner, p *models.Page) error {
	err := row.Scan(
		&p.ID, &p.SiteID, &p.Title, &p.Slug, &p.SortOrder,
		&p.IsHome, &p.ShowInMenu, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return err
	}
	if err != nil {
		return fmt.Errorf("scan page: %w", err)
	}
	return nil
}
