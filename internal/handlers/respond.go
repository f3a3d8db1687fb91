// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the SmartSite server.
// Handlers are grouped by concern (editor API, public serving) and
// receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON serializes v with the given status. Encoding failures are
// logged; by then the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondValidation reports rejected input. Fields maps each offending
// field name to a human-readable message.
func respondValidation(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: fields})
}

// respondNotFound is the single not-found response. Missing and
// inaccessible resources are deliberately indistinguishable.
func respondNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
}

// respondConflict reports a uniqueness conflict (slugs, mostly).
func respondConflict(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusConflict, errorBody{Error: msg})
}

// respondInvalidOperation reports a well-formed request that the current
// state rejects, like moving the first section up or deleting the last
// page.
func respondInvalidOperation(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg})
}

// respondInternal logs the error and returns an opaque 500.
func respondInternal(w http.ResponseWriter, err error) {
	slog.Error("handler error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

// decodeBody parses the request body into dst, returning false (and
// responding) on malformed JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondValidation(w, map[string]string{"body": "invalid JSON"})
		return false
	}
	return true
}
