package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"smartsite/internal/models"
	"smartsite/internal/slug"
	"smartsite/internal/starter"
	"smartsite/internal/token"
)

// Seed populates the database with a demo site for development.
// It is a no-op when any site already exists. The demo editor token is
// logged so the site is reachable from a fresh checkout.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sites").Scan(&count); err != nil {
		return fmt.Errorf("seed check sites: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	const (
		siteName = "Demo Bakery"
		family   = "lumen"
	)

	plaintext, hash, err := token.Mint()
	if err != nil {
		return fmt.Errorf("seed token: %w", err)
	}

	var siteID string
	err = db.QueryRow(`
		INSERT INTO sites (name, slug, contact_email, goal, theme_family, token_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, siteName, slug.Generate(siteName), "hello@demo-bakery.local", "business", family, hash).Scan(&siteID)
	if err != nil {
		return fmt.Errorf("seed insert site: %w", err)
	}

	var pageID string
	err = db.QueryRow(`
		INSERT INTO pages (site_id, title, slug, sort_order, is_home, show_in_menu)
		VALUES ($1, 'Home', 'home', 0, TRUE, TRUE)
		RETURNING id
	`, siteID).Scan(&pageID)
	if err != nil {
		return fmt.Errorf("seed insert home page: %w", err)
	}

	for _, spec := range starter.Generate(siteName, family, []models.SectionType{models.SectionGallery}) {
		_, err := db.Exec(`
			INSERT INTO sections (page_id, type, sort_order, data)
			VALUES ($1, $2, $3, $4)
		`, pageID, spec.Type, spec.SortOrder, spec.DataJSON)
		if err != nil {
			return fmt.Errorf("seed insert section %s: %w", spec.Type, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO publish_states (site_id) VALUES ($1)`, siteID); err != nil {
		return fmt.Errorf("seed insert publish state: %w", err)
	}

	slog.Info("database seeded with demo site",
		"site", siteName,
		"editor_token", plaintext,
	)
	return nil
}
