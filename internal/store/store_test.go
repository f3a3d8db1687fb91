// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"smartsite/internal/database"
	"smartsite/internal/models"
	"smartsite/internal/token"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "smartsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "smartsite")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestSite inserts a site with a fresh token hash and registers
// cleanup. Pages, sections, media, and publish state cascade on delete.
func createTestSite(t *testing.T, db *sql.DB, name string) *models.Site {
	t.Helper()

	_, hash, err := token.Mint()
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	sites := NewSiteStore(db)
	site, err := sites.Create(&models.Site{
		Name:         name,
		ContactEmail: "test@example.com",
		Goal:         "business",
		ThemeFamily:  "slate",
		TokenHash:    hash,
	})
	if err != nil {
		t.Fatalf("create test site: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM sites WHERE id = $1", site.ID)
	})
	return site
}

// createTestPage inserts a page for the given site and returns it.
func createTestPage(t *testing.T, db *sql.DB, siteID uuid.UUID, title string) *models.Page {
	t.Helper()

	pages := NewPageStore(db)
	p, err := pages.Create(siteID, title, true)
	if err != nil {
		t.Fatalf("create test page: %v", err)
	}
	return p
}
