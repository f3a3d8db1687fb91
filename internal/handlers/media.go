// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartsite/internal/middleware"
	"smartsite/internal/models"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// UploadMedia handles POST /api/sites/{siteID}/media. The blob is
// written to object storage first; the database record only exists once
// the blob does.
func (e *Editor) UploadMedia(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	if e.storage == nil {
		respondInvalidOperation(w, "media storage is not configured")
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondValidation(w, map[string]string{"file": "Upload is too large (max 50 MB)."})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondValidation(w, map[string]string{"file": "A file is required."})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondValidation(w, map[string]string{"file": "Upload is too large (max 50 MB)."})
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respondInternal(w, err)
		return
	}

	// Sniff the real content type instead of trusting the client header.
	contentType := http.DetectContentType(fileBytes)
	mediaType, ok := models.MediaTypeFromMIME(contentType)
	if !ok {
		respondValidation(w, map[string]string{"file": "Only image, video, and audio files are accepted."})
		return
	}

	key := site.ID.String() + "/" + uuid.New().String() + filepath.Ext(header.Filename)
	if err := e.storage.Upload(r.Context(), key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		respondInternal(w, err)
		return
	}

	media, err := e.media.Create(&models.Media{
		SiteID:      site.ID,
		Type:        mediaType,
		Filename:    header.Filename,
		URL:         e.storage.FileURL(key),
		ContentType: contentType,
		SizeBytes:   int64(len(fileBytes)),
	})
	if err != nil {
		// The blob exists but the record failed; remove the orphan.
		if delErr := e.storage.Delete(r.Context(), key); delErr != nil {
			slog.Warn("orphaned media blob", "key", key, "error", delErr)
		}
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"media": media})
}

// ListMedia handles GET /api/sites/{siteID}/media.
func (e *Editor) ListMedia(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	items, err := e.media.ListBySite(site.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": items})
}

// DeleteMedia handles DELETE /api/sites/{siteID}/media/{mediaID}. The
// record is removed first; the blob delete is best-effort.
func (e *Editor) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	site := middleware.SiteFromCtx(r.Context())

	mediaID, err := uuid.Parse(chi.URLParam(r, "mediaID"))
	if err != nil {
		respondNotFound(w)
		return
	}
	media, err := e.media.FindByID(mediaID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if media == nil || media.SiteID != site.ID {
		respondNotFound(w)
		return
	}

	if err := e.media.Delete(media.ID); err != nil {
		respondInternal(w, err)
		return
	}
	if e.storage != nil {
		if key, ok := e.storage.ExtractKey(media.URL); ok {
			if err := e.storage.Delete(r.Context(), key); err != nil {
				slog.Warn("media blob delete failed", "key", key, "error", err)
			}
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
