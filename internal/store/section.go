// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/ordering"
)

// SectionStore handles all section-related database operations.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `id, page_id, type, sort_order, data, created_at, updated_at`

// ListByPage returns a page's sections ordered by their sort order.
func (s *SectionStore) ListByPage(pageID uuid.UUID) ([]models.Section, error) {
	rows, err := s.db.Query(`
		SELECT `+sectionColumns+`
		FROM sections
		WHERE page_id = $1
		ORDER BY sort_order ASC
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var sec models.Section
		if err := scanSection(rows, &sec); err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// FindByID retrieves a section by its UUID. Returns nil if not found.
func (s *SectionStore) FindByID(id uuid.UUID) (*models.Section, error) {
	sec := &models.Section{}
	err := scanSection(s.db.QueryRow(`SELECT `+sectionColumns+` FROM sections WHERE id = $1`, id), sec)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// Create inserts a new section at the end of the page's sequence with
// the given type-specific default payload.
func (s *SectionStore) Create(pageID uuid.UUID, sectionType models.SectionType, dataJSON string) (*models.Section, error) {
	sec := &models.Section{}
	err := scanSection(s.db.QueryRow(`
		INSERT INTO sections (page_id, type, sort_order, data)
		VALUES ($1, $2,
		        COALESCE((SELECT MAX(sort_order) + 1 FROM sections WHERE page_id = $1), 0),
		        $3)
		RETURNING `+sectionColumns+`
	`, pageID, sectionType, dataJSON), sec)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return sec, nil
}

// UpdateData replaces a section's payload wholesale. Edits never merge
// at this layer; payload-level preservation of styles and layout keys
// is the blocks package's concern.
func (s *SectionStore) UpdateData(id uuid.UUID, dataJSON string) error {
	_, err := s.db.Exec(`
		UPDATE sections SET data = $1, updated_at = NOW() WHERE id = $2
	`, dataJSON, id)
	if err != nil {
		return fmt.Errorf("update section data: %w", err)
	}
	return nil
}

// Delete removes a section.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

// UpdateOrders applies the order changes produced by the ordering
// engine in a single transaction, mirroring PageStore.UpdateOrders.
func (s *SectionStore) UpdateOrders(pageID uuid.UUID, changes []ordering.Change) error {
	if len(changes) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder sections begin: %w", err)
	}
	defer tx.Rollback()

	for _, c := range changes {
		if _, err := tx.Exec(`
			UPDATE sections SET sort_order = $1, updated_at = NOW()
			WHERE id = $2 AND page_id = $3
		`, c.Order, c.ID, pageID); err != nil {
			return fmt.Errorf("reorder section %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func scanSection(row rowScanner, sec *models.Section) error {
	err := row.Scan(
		&sec.ID, &sec.PageID, &sec.Type, &sec.SortOrder, &sec.DataJSON,
		&sec.CreatedAt, &sec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return err
	}
	if err != nil {
		return fmt.Errorf("scan section: %w", err)
	}
	return nil
}
