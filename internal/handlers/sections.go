// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/blocks"
	"smartsite/internal/middleware"
	"smartsite/internal/models"
	"smartsite/internal/ordering"
	"smartsite/internal/renderer"
	"smartsite/internal/starter"
)

// siteSection loads the section named in the route and verifies its page
// belongs to the authenticated site.
func (e *Editor) siteSection(w http.ResponseWriter, r *http.Request) (*models.Section, *models.Page, bool) {
	site := middleware.SiteFromCtx(r.Context())

	sectionID, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	if err != nil {
		respondNotFound(w)
		return nil, nil, false
	}
	section, err := e.sections.FindByID(sectionID)
	if err != nil {
		respondInternal(w, err)
		return nil, nil, false
	}
	if section == nil {
		respondNotFound(w)
		return nil, nil, false
	}
	page, err := e.pages.FindByID(section.PageID)
	if err != nil {
		respondInternal(w, err)
		return nil, nil, false
	}
	if page == nil || page.SiteID != site.ID {
		respondNotFound(w)
		return nil, nil, false
	}
	return section, page, true
}

// sectionPayload is the editor's view of one section: the raw payload
// plus the migrated block list the editor actually manipulates.
type sectionPayload struct {
	Section *models.Section `json:"section"`
	Blocks  []blocks.Block  `json:"blocks"`
}

func sectionToPayload(sec *models.Section) sectionPayload {
	doc, err := blocks.Decode(sec.DataJSON)
	if err != nil {
		slog.Warn("malformed section payload", "section_id", sec.ID, "error", err)
	}
	return sectionPayload{Section: sec, Blocks: doc.View()}
}

// ListSections handles GET /api/sites/{siteID}/pages/{pageID}/sections.
// Legacy flat payloads come back already migrated to blocks; the stored
// rows stay untouched until the first save.
func (e *Editor) ListSections(w http.ResponseWriter, r *http.Request) {
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	sections, err := e.sections.ListByPage(page.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}

	payloads := make([]sectionPayload, len(sections))
	for i := range sections {
		payloads[i] = sectionToPayload(&sections[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": payloads})
}

// CreateSection handles POST /api/sites/{siteID}/pages/{pageID}/sections.
// The new section starts with the type's default starter content.
func (e *Editor) CreateSection(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	var req struct {
		Type string `json:"type"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sectionType := models.SectionType(req.Type)
	if !models.KnownSectionType(sectionType) {
		respondValidation(w, map[string]string{"type": "Unknown section type."})
		return
	}

	data := starter.DefaultData(sectionType, site.Name, site.ThemeFamily)
	section, err := e.sections.Create(page.ID, sectionType, data)
	if err != nil {
		respondInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sectionToPayload(section))
}

// UpdateBlocks handles PUT /api/sites/{siteID}/sections/{sectionID}/blocks.
// The block list is replaced wholesale while section-level styles,
// alignment, images, and unknown payload keys survive; legacy flat
// fields are dropped for good on this first save.
func (e *Editor) UpdateBlocks(w http.ResponseWriter, r *http.Request) {
	section, _, ok := e.siteSection(w, r)
	if !ok {
		return
	}

	var req struct {
		Blocks []blocks.Block `json:"blocks"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	encoded, err := blocks.Encode(section.DataJSON, req.Blocks)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if err := e.sections.UpdateData(section.ID, encoded); err != nil {
		respondInternal(w, err)
		return
	}

	section.DataJSON = encoded
	writeJSON(w, http.StatusOK, sectionToPayload(section))
}

// UpdateStyles handles PATCH /api/sites/{siteID}/sections/{sectionID}/styles.
// Only the fields present in the patch change; blocks and everything
// else in the payload stay as they are.
func (e *Editor) UpdateStyles(w http.ResponseWriter, r *http.Request) {
	section, _, ok := e.siteSection(w, r)
	if !ok {
		return
	}

	var req blocks.Styles
	if !decodeBody(w, r, &req) {
		return
	}

	encoded, err := blocks.MergeStyles(section.DataJSON, &req)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if err := e.sections.UpdateData(section.ID, encoded); err != nil {
		respondInternal(w, err)
		return
	}

	section.DataJSON = encoded
	writeJSON(w, http.StatusOK, sectionToPayload(section))
}

// DeleteSection handles DELETE /api/sites/{siteID}/sections/{sectionID}.
func (e *Editor) DeleteSection(w http.ResponseWriter, r *http.Request) {
	section, _, ok := e.siteSection(w, r)
	if !ok {
		return
	}
	if err := e.sections.Delete(section.ID); err != nil {
		respondInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderSections handles POST /api/sites/{siteID}/sections/{sectionID}/reorder.
func (e *Editor) ReorderSections(w http.ResponseWriter, r *http.Request) {
	section, page, ok := e.siteSection(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sections, err := e.sections.ListByPage(page.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	entries := make([]ordering.Entry, len(sections))
	for i, s := range sections {
		entries[i] = ordering.Entry{ID: s.ID.String(), Order: s.SortOrder}
	}

	changes, err := computeReorder(entries, section.ID.String(), req)
	if errors.Is(err, ordering.ErrInvalidMove) {
		respondInvalidOperation(w, "invalid move")
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := e.sections.UpdateOrders(page.ID, changes); err != nil {
		respondInternal(w, err)
		return
	}
	if changes == nil {
		changes = []ordering.Change{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"changes": changes})
}

// PreviewPage handles GET /api/sites/{siteID}/pages/{pageID}/preview.
// It renders the live (unpublished) sections the way the public site
// would, with editor placeholders for unknown section types.
func (e *Editor) PreviewPage(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())
	page, ok := e.sitePage(w, r)
	if !ok {
		return
	}

	sections, err := e.sections.ListByPage(page.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	sitePages, err := e.pages.ListBySite(site.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}

	ctx := renderer.Context{
		Theme:  site.ResolvedTheme(),
		Editor: true,
		Pages:  pageRefs(sitePages),
	}
	views := make([]renderer.SectionView, len(sections))
	for i, s := range sections {
		views[i] = renderer.SectionView{ID: s.ID.String(), Type: s.Type, Data: s.DataJSON}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page":  page,
		"theme": ctx.Theme,
		"tree":  renderer.Page(views, ctx),
	})
}

func pageRefs(pages []models.Page) []renderer.PageRef {
	refs := make([]renderer.PageRef, len(pages))
	for i, p := range pages {
		refs[i] = renderer.PageRef{ID: p.ID.String(), Slug: p.Slug}
	}
	return refs
}
