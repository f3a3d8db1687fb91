// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/middleware"
	"smartsite/internal/models"
	"smartsite/internal/ordering"
	"smartsite/internal/store"
)

// sitePage loads the page named in the route and verifies it belongs to
// the authenticated site. Wrong-site access reads as not-found.
func (e *Editor) sitePage(w http.ResponseWriter, r *http.Request) (*models.Page, bool) {
	site := middleware.SiteFromCtx(r.Context())

	pageID, err := uuid.Parse(chi.URLParam(r, "pageID"))
	if err != nil {
		respondNotFound(w)
		return nil, false
	}
	page, err := e.pages.FindByID(pageID)
	if err != nil {
		respondInternal(w, err)
		return nil, false
	}
	if page == nil || page.SiteID != site.ID {
		respondNotFound(w)
		return nil, false
	}
	return page, true
}

// ListPages handles GET /api/sites/{siteID}/pages.
func (e *Editor) ListPages(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	pages, err := e.pages.ListBySite(site.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// CreatePage handles POST /api/sites/{siteID}/pages. New pages go to
// the end of the menu order.
func (e *Editor) CreatePage(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	var req struct {
		Title      string `json:"title"`
		ShowInMenu *bool  `json:"showInMenu"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := validatePageTitle(req.Title); msg != "" {
		respondValidation(w, map[string]string{"title": msg})
		return
	}

	showInMenu := true
	if req.ShowInMenu != nil {
		showInMenu = *req.ShowInMenu
	}

	page, err := e.pages.Create(site.ID, req.Title, showInMenu)
	if errors.Is(err, store.ErrSlugConflict) {
		respondConflict(w, "could not allocate a page address, try a different title")
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"page": page})
}

// UpdatePage handles PATCH /api/sites/{siteID}/pages/{pageID}. Retitling
// regenerates the slug only when the client asks for it; published links
// keep working otherwise.
func (e *Editor) UpdatePage(w http.ResponseWriter, r *http.Request) {
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		ShowInMenu  *bool   `json:"showInMenu"`
		RefreshSlug bool    `json:"refreshSlug"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Title != nil {
		if msg := validatePageTitle(*req.Title); msg != "" {
			respondValidation(w, map[string]string{"title": msg})
			return
		}
		page.Title = *req.Title
		if req.RefreshSlug {
			// The refreshed slug goes through the same de-dup loop as
			// creation, so a colliding or unslugifiable title can never
			// persist a duplicate or empty slug.
			err := e.pages.RefreshSlug(page)
			if errors.Is(err, store.ErrSlugConflict) {
				respondConflict(w, "could not allocate a page address, try a different title")
				return
			}
			if err != nil {
				respondInternal(w, err)
				return
			}
		}
	}
	if req.ShowInMenu != nil {
		page.ShowInMenu = *req.ShowInMenu
	}

	if err := e.pages.Update(page); err != nil {
		respondInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"page": page})
}

// SetHomePage handles POST /api/sites/{siteID}/pages/{pageID}/home.
func (e *Editor) SetHomePage(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	if err := e.pages.SetHome(site.ID, page.ID); err != nil {
		respondInternal(w, err)
		return
	}
	page.IsHome = true
	writeJSON(w, http.StatusOK, map[string]any{"page": page})
}

// DeletePage handles DELETE /api/sites/{siteID}/pages/{pageID}. The
// last page of a site cannot be deleted.
func (e *Editor) DeletePage(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	err := e.pages.Delete(page.ID, site.ID)
	if errors.Is(err, store.ErrLastPage) {
		respondInvalidOperation(w, "a site needs at least one page")
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reorderRequest names either a directional move or a drag. Exactly one
// of direction and target must be present.
type reorderRequest struct {
	Direction string `json:"direction,omitempty"` // "up" or "down"
	Target    string `json:"target,omitempty"`    // ID of the drop position
}

// computeReorder runs the ordering engine over the given entries.
func computeReorder(entries []ordering.Entry, movedID string, req reorderRequest) ([]ordering.Change, error) {
	if req.Direction != "" {
		return ordering.Move(entries, movedID, ordering.Direction(req.Direction))
	}
	return ordering.DragTo(entries, movedID, req.Target)
}

// ReorderPages handles POST /api/sites/{siteID}/pages/{pageID}/reorder.
// All affected order values change in one transaction.
func (e *Editor) ReorderPages(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pages, err := e.pages.ListBySite(site.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	entries := make([]ordering.Entry, len(pages))
	for i, p := range pages {
		entries[i] = ordering.Entry{ID: p.ID.String(), Order: p.SortOrder}
	}

	changes, err := computeReorder(entries, page.ID.String(), req)
	if errors.Is(err, ordering.ErrInvalidMove) {
		respondInvalidOperation(w, "invalid move")
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := e.pages.UpdateOrders(site.ID, changes); err != nil {
		respondInternal(w, err)
		return
	}
	if changes == nil {
		changes = []ordering.Change{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"changes": changes})
}
