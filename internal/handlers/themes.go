// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"smartsite/internal/middleware"
	"smartsite/internal/themes"
)

// ListThemes handles GET /api/themes. The preset catalog is static, so
// this endpoint needs no authentication and no dependencies.
func ListThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"themes": themes.Catalog()})
}

// GetTheme handles GET /api/sites/{siteID}/theme. It returns the fully
// resolved theme plus the raw override so the editor can show which
// fields are customized.
func (e *Editor) GetTheme(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"family":   site.ThemeFamily,
		"override": site.ThemeOverride,
		"resolved": site.ResolvedTheme(),
	})
}

// updateThemeRequest carries a theme edit. Family switches and override
// patches can arrive together or separately; absent override fields are
// left untouched.
type updateThemeRequest struct {
	Family   *string          `json:"family"`
	Override *themes.Override `json:"override"`
}

// UpdateTheme handles PATCH /api/sites/{siteID}/theme. Overrides merge
// field by field, and switching the family keeps the existing override —
// a customized primary color survives trying out another preset.
func (e *Editor) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	var req updateThemeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if msg := validateOverride(req.Override); msg != "" {
		respondValidation(w, map[string]string{"override": msg})
		return
	}
	family := site.ThemeFamily
	if req.Family != nil {
		// Same catalog boundary as site creation; an explicit empty
		// family is rejected rather than read as "keep".
		if *req.Family == "" {
			respondValidation(w, map[string]string{"family": "Unknown theme family."})
			return
		}
		if msg := validateThemeFamily(*req.Family); msg != "" {
			respondValidation(w, map[string]string{"family": msg})
			return
		}
		family = *req.Family
	}

	merged := site.ThemeOverride
	if merged == nil {
		merged = &themes.Override{}
	}
	merged.Merge(req.Override)
	if merged.IsZero() {
		merged = nil
	}

	if err := e.sites.UpdateTheme(site.ID, family, merged); err != nil {
		respondInternal(w, err)
		return
	}

	site.ThemeFamily = family
	site.ThemeOverride = merged
	writeJSON(w, http.StatusOK, map[string]any{
		"family":   family,
		"override": merged,
		"resolved": site.ResolvedTheme(),
	})
}
