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

// PublishStore handles the one-row-per-site publish state.
type PublishStore struct {
	db *sql.DB
}

// NewPublishStore creates a new PublishStore with the given database connection.
func NewPublishStore(db *sql.DB) *PublishStore {
	return &PublishStore{db: db}
}

// Upsert writes a freshly built snapshot, replacing any previous one
// wholesale. A first publish creates the row; later publishes overwrite
// it. The snapshot is always written complete — partial updates do not
// exist at this layer.
func (s *PublishStore) Upsert(siteID uuid.UUID, snapshotJSON string) (*models.PublishState, error) {
	state := &models.PublishState{}
	err := s.db.QueryRow(`
		INSERT INTO publish_states (site_id, is_published, published_at, snapshot)
		VALUES ($1, TRUE, NOW(), $2)
		ON CONFLICT (site_id) DO UPDATE
		SET is_published = TRUE, published_at = NOW(), snapshot = EXCLUDED.snapshot
		RETURNING site_id, is_published, published_at, snapshot
	`, siteID, snapshotJSON).Scan(
		&state.SiteID, &state.IsPublished, &state.PublishedAt, &state.SnapshotJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert publish state: %w", err)
	}
	return state, nil
}

// FindPublished returns the publish state for a site only if it is
// published with a snapshot. An unpublished site yields nil, exactly
// like a site that does not exist — public lookup cannot tell the two
// apart.
func (s *PublishStore) FindPublished(siteID uuid.UUID) (*models.PublishState, error) {
	state := &models.PublishState{}
	err := s.db.QueryRow(`
		SELECT site_id, is_published, published_at, snapshot
		FROM publish_states
		WHERE site_id = $1 AND is_published AND snapshot IS NOT NULL
	`, siteID).Scan(
		&state.SiteID, &state.IsPublished, &state.PublishedAt, &state.SnapshotJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find publish state: %w", err)
	}
	return state, nil
}

// Unpublish takes a site offline without discarding the last snapshot.
func (s *PublishStore) Unpublish(siteID uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE publish_states SET is_published = FALSE WHERE site_id = $1
	`, siteID)
	if err != nil {
		return fmt.Errorf("unpublish: %w", err)
	}
	return nil
}
