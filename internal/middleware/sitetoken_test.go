package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/token"
)

// fakeSiteFinder serves a single site from memory.
type fakeSiteFinder struct {
	site *models.Site
}

func (f *fakeSiteFinder) FindByID(id uuid.UUID) (*models.Site, error) {
	if f.site != nil && f.site.ID == id {
		return f.site, nil
	}
	return nil, nil
}

func tokenTestRouter(t *testing.T, finder SiteFinder) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api/sites/{siteID}", func(r chi.Router) {
		r.Use(RequireSiteToken(finder))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			site := SiteFromCtx(req.Context())
			if site == nil {
				t.Error("expected site in context")
			}
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestRequireSiteTokenAcceptsValidToken(t *testing.T) {
	plain, hash, err := token.Mint()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	site := &models.Site{ID: uuid.New(), Name: "Authed Site", TokenHash: hash}
	router := tokenTestRouter(t, &fakeSiteFinder{site: site})

	req := httptest.NewRequest(http.MethodGet, "/api/sites/"+site.ID.String()+"/", nil)
	req.Header.Set("Authorization", "Bearer "+plain)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSiteTokenRejects(t *testing.T) {
	plain, hash, err := token.Mint()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	site := &models.Site{ID: uuid.New(), Name: "Authed Site", TokenHash: hash}
	router := tokenTestRouter(t, &fakeSiteFinder{site: site})

	tests := []struct {
		name   string
		siteID string
		header string
	}{
		{name: "missing header", siteID: site.ID.String(), header: ""},
		{name: "wrong scheme", siteID: site.ID.String(), header: "Basic " + plain},
		{name: "wrong token", siteID: site.ID.String(), header: "Bearer not-the-token"},
		{name: "empty bearer", siteID: site.ID.String(), header: "Bearer "},
		{name: "unknown site", siteID: uuid.NewString(), header: "Bearer " + plain},
		{name: "malformed site id", siteID: "not-a-uuid", header: "Bearer " + plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sites/"+tt.siteID+"/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestSiteFromCtxOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if site := SiteFromCtx(req.Context()); site != nil {
		t.Errorf("expected nil site, got %+v", site)
	}
}
