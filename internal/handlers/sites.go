// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/skip2/go-qrcode"

	"smartsite/internal/middleware"
	"smartsite/internal/models"
	"smartsite/internal/publish"
	"smartsite/internal/starter"
	"smartsite/internal/storage"
	"smartsite/internal/store"
	"smartsite/internal/themes"
	"smartsite/internal/token"
)

// Editor groups the authenticated editor API handlers and their
// dependencies.
type Editor struct {
	sites     *store.SiteStore
	pages     *store.PageStore
	sections  *store.SectionStore
	media     *store.MediaStore
	publisher *publish.Engine
	storage   *storage.Client
	baseURL   string
}

// NewEditor creates a new Editor handler group with the given
// dependencies. storageClient may be nil when S3 is not configured.
func NewEditor(sites *store.SiteStore, pages *store.PageStore, sections *store.SectionStore, media *store.MediaStore, publisher *publish.Engine, storageClient *storage.Client, baseURL string) *Editor {
	return &Editor{
		sites:     sites,
		pages:     pages,
		sections:  sections,
		media:     media,
		publisher: publisher,
		storage:   storageClient,
		baseURL:   baseURL,
	}
}

// createSiteRequest is the site creation wizard payload.
type createSiteRequest struct {
	Name         string   `json:"name"`
	ContactEmail string   `json:"contactEmail"`
	Goal         string   `json:"goal"`
	ThemeFamily  string   `json:"themeFamily"`
	Sections     []string `json:"sections"`
}

// createSiteResponse returns the new site together with the one-time
// editor token. The token is shown exactly once: only its hash is
// stored, so it cannot be recovered later.
type createSiteResponse struct {
	Site        *models.Site `json:"site"`
	EditorToken string       `json:"editorToken"`
	EditorURL   string       `json:"editorUrl"`
	EditorQR    string       `json:"editorQr,omitempty"` // base64 PNG
}

// CreateSite handles POST /api/sites. It creates the site, its home
// page, and the starter sections derived from the chosen theme and
// section picks, and mints the editor token.
func (e *Editor) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	fields := map[string]string{}
	if msg := validateSiteName(req.Name); msg != "" {
		fields["name"] = msg
	}
	if msg := validateEmail(req.ContactEmail); msg != "" {
		fields["contactEmail"] = msg
	}
	if msg := validateGoal(req.Goal); msg != "" {
		fields["goal"] = msg
	}
	if msg := validateThemeFamily(req.ThemeFamily); msg != "" {
		fields["themeFamily"] = msg
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	family := req.ThemeFamily
	if family == "" {
		family = themes.Default().ID
	}

	plaintext, hash, err := token.Mint()
	if err != nil {
		respondInternal(w, err)
		return
	}

	site, err := e.sites.Create(&models.Site{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Goal:         req.Goal,
		ThemeFamily:  family,
		TokenHash:    hash,
	})
	if err == store.ErrSlugConflict {
		respondConflict(w, "could not allocate a site address, try a different name")
		return
	}
	if err != nil {
		respondInternal(w, err)
		return
	}

	home, err := e.pages.Create(site.ID, "Home", true)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if err := e.pages.SetHome(site.ID, home.ID); err != nil {
		respondInternal(w, err)
		return
	}

	selected := make([]models.SectionType, 0, len(req.Sections))
	for _, s := range req.Sections {
		selected = append(selected, models.SectionType(s))
	}
	for _, spec := range starter.Generate(site.Name, site.ThemeFamily, selected) {
		if _, err := e.sections.Create(home.ID, spec.Type, spec.DataJSON); err != nil {
			respondInternal(w, err)
			return
		}
	}

	resp := createSiteResponse{
		Site:        site,
		EditorToken: plaintext,
		EditorURL:   fmt.Sprintf("%s/edit/%s#%s", e.baseURL, site.ID, plaintext),
	}
	// The QR code encodes the editor URL so the phone that built the
	// site on a laptop can pick up editing immediately.
	if png, err := qrcode.Encode(resp.EditorURL, qrcode.Medium, 256); err == nil {
		resp.EditorQR = base64.StdEncoding.EncodeToString(png)
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GetSite handles GET /api/sites/{siteID}. The site comes from the auth
// middleware; the response adds the live page list.
func (e *Editor) GetSite(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	pages, err := e.pages.ListBySite(site.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"site":  site,
		"pages": pages,
		"theme": site.ResolvedTheme(),
	})
}

// UpdateSite handles PATCH /api/sites/{siteID} for renaming. The public
// slug never changes with the name.
func (e *Editor) UpdateSite(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := validateSiteName(req.Name); msg != "" {
		respondValidation(w, map[string]string{"name": msg})
		return
	}

	if err := e.sites.UpdateName(site.ID, req.Name); err != nil {
		respondInternal(w, err)
		return
	}
	site.Name = req.Name
	writeJSON(w, http.StatusOK, map[string]any{"site": site})
}
