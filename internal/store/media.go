// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"smartsite/internal/models"
)

// MediaStore handles media metadata. The blob itself lives in object
// storage; this table is the source of truth for existence.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, site_id, media_type, filename, url, content_type, size_bytes, created_at`

// Create inserts a media record. Called only after the blob write
// succeeded, so a record never points at a missing file.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	result := &models.Media{}
	err := s.db.QueryRow(`
		INSERT INTO media (site_id, media_type, filename, url, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+mediaColumns+`
	`, m.SiteID, m.Type, m.Filename, m.URL, m.ContentType, m.SizeBytes).Scan(
		&result.ID, &result.SiteID, &result.Type, &result.Filename,
		&result.URL, &result.ContentType, &result.SizeBytes, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// FindByID retrieves a media record. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m := &models.Media{}
	err := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id).Scan(
		&m.ID, &m.SiteID, &m.Type, &m.Filename, &m.URL,
		&m.ContentType, &m.SizeBytes, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	return m, nil
}

// ListBySite returns a site's media, newest first.
func (s *MediaStore) ListBySite(siteID uuid.UUID) ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT `+mediaColumns+`
		FROM media
		WHERE site_id = $1
		ORDER BY created_at DESC
	`, siteID)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(
			&m.ID, &m.SiteID, &m.Type, &m.Filename, &m.URL,
			&m.ContentType, &m.SizeBytes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Delete removes a media record unconditionally. Blob cleanup is the
// caller's best-effort concern.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
