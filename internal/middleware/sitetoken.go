// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/models"
	"smartsite/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// siteKey is the context key for the authenticated site.
const siteKey contextKey = "site"

// SiteFinder loads a site by ID. Satisfied by store.SiteStore.
type SiteFinder interface {
	FindByID(id uuid.UUID) (*models.Site, error)
}

// RequireSiteToken authenticates editor requests against the site named
// in the route. The bearer token from the Authorization header is checked
// against the site's stored hash; on success the site is placed in the
// request context for downstream handlers.
//
// A bad site ID, a missing site, and a wrong token all produce the same
// 401 so the endpoint does not reveal which sites exist.
func RequireSiteToken(sites SiteFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			siteID, err := uuid.Parse(chi.URLParam(r, "siteID"))
			if err != nil {
				unauthorized(w)
				return
			}

			plaintext, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			site, err := sites.FindByID(siteID)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if site == nil || !token.Verify(site.TokenHash, plaintext) {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), siteKey, site)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SiteFromCtx extracts the authenticated site from the request context.
// Returns nil outside of a RequireSiteToken-protected route.
func SiteFromCtx(ctx context.Context) *models.Site {
	site, _ := ctx.Value(siteKey).(*models.Site)
	return site
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	t := strings.TrimSpace(header[len(prefix):])
	return t, t != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="editor"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
