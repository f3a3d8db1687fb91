// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"smartsite/internal/middleware"
	"smartsite/internal/publish"
)

// Publish handles POST /api/sites/{siteID}/publish. The snapshot is
// built from the live state in one shot; a failure leaves the previous
// published version serving.
func (e *Editor) Publish(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	state, err := e.publisher.Publish(r.Context(), site.ID)
	if errors.Is(err, publish.ErrSiteNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"published":   state.IsPublished,
		"publishedAt": state.PublishedAt,
		"url":         e.baseURL + "/s/" + site.Slug,
	})
}

// Unpublish handles DELETE /api/sites/{siteID}/publish. The public site
// disappears; the editor state is unaffected.
func (e *Editor) Unpublish(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	err := e.publisher.Unpublish(r.Context(), site.ID)
	if errors.Is(err, publish.ErrSiteNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
