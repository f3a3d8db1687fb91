// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"smartsite/internal/database"
	"smartsite/internal/middleware"
	"smartsite/internal/publish"
	"smartsite/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "smartsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "smartsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The
// snapshot cache and object storage are left nil so the tests need only
// PostgreSQL.
type testEnv struct {
	DB     *sql.DB
	Sites  *store.SiteStore
	Pages  *store.PageStore
	Router chi.Router
}

// newTestEnv creates a complete test environment with all handler
// dependencies and a router mirroring the production wiring.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	sites := store.NewSiteStore(db)
	pages := store.NewPageStore(db)
	sections := store.NewSectionStore(db)
	publishStore := store.NewPublishStore(db)
	media := store.NewMediaStore(db)

	publisher := publish.NewEngine(sites, pages, sections, publishStore, nil)
	editor := NewEditor(sites, pages, sections, media, publisher, nil, "http://test.local")
	public := NewPublic(sites, publishStore, nil)

	r := chi.NewRouter()
	r.Get("/api/themes", ListThemes)
	r.Post("/api/sites", editor.CreateSite)
	r.Route("/api/sites/{siteID}", func(r chi.Router) {
		r.Use(middleware.RequireSiteToken(sites))
		r.Get("/", editor.GetSite)
		r.Patch("/", editor.UpdateSite)
		r.Get("/theme", editor.GetTheme)
		r.Patch("/theme", editor.UpdateTheme)
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", editor.ListPages)
			r.Post("/", editor.CreatePage)
			r.Patch("/{pageID}", editor.UpdatePage)
			r.Delete("/{pageID}", editor.DeletePage)
			r.Post("/{pageID}/home", editor.SetHomePage)
			r.Post("/{pageID}/reorder", editor.ReorderPages)
			r.Get("/{pageID}/sections", editor.ListSections)
			r.Post("/{pageID}/sections", editor.CreateSection)
			r.Get("/{pageID}/preview", editor.PreviewPage)
		})
		r.Route("/sections/{sectionID}", func(r chi.Router) {
			r.Put("/blocks", editor.UpdateBlocks)
			r.Patch("/styles", editor.UpdateStyles)
			r.Post("/reorder", editor.ReorderSections)
			r.Delete("/", editor.DeleteSection)
		})
		r.Post("/publish", editor.Publish)
		r.Delete("/publish", editor.Unpublish)
	})
	r.Get("/s/{siteSlug}", public.GetSite)
	r.Get("/s/{siteSlug}/{pageSlug}", public.GetPage)

	return &testEnv{DB: db, Sites: sites, Pages: pages, Router: r}
}

// request performs an HTTP request against the test router.
func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// createdSite is what the tests need from a site creation response.
type createdSite struct {
	ID    string
	Slug  string
	Token string
}

// createSite runs the creation wizard and registers cleanup.
func (env *testEnv) createSite(t *testing.T, name string, sections []string) createdSite {
	t.Helper()

	rec := env.request(t, http.MethodPost, "/api/sites", "", map[string]any{
		"name":        name,
		"goal":        "business",
		"themeFamily": "slate",
		"sections":    sections,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create site: got %d: %s", rec.Code, rec.Body.String())
	}

	body := decode(t, rec)
	site := body["site"].(map[string]any)
	cs := createdSite{
		ID:    site["id"].(string),
		Slug:  site["slug"].(string),
		Token: body["editorToken"].(string),
	}

	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM sites WHERE id = $1", cs.ID)
	})
	return cs
}
