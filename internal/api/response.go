// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/validation"
)

// APIResponse is the uniform response envelope.
type APIResponse struct {
	Success  bool      `json:"success"`
	Data     any       `json:"data,omitempty"`
	Error    *APIError `json:"error,omitempty"`
	Metadata Metadata  `json:"metadata"`
}

// APIError is the structured error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Metadata carries per-response bookkeeping.
type Metadata struct {
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes used across handlers.
const (
	codeValidation  = "VALIDATION_ERROR"
	codeBadRequest  = "BAD_REQUEST"
	codeNotFound    = "NOT_FOUND"
	codeInternal    = "INTERNAL_ERROR"
	codeUnavailable = "SERVICE_UNAVAILABLE"
)

// writeJSON sends data wrapped in the success envelope.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, status, &APIResponse{Success: true, Data: data})
}

// writeError sends the structured error body. err is logged, never
// echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.CtxErr(r.Context(), err).
			Str("code", code).
			Str("path", r.URL.Path).
			Msg("Request failed")
	}
	writeEnvelope(w, r, status, &APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, resp *APIResponse) {
	resp.Metadata.Timestamp = time.Now()
	resp.Metadata.RequestID = logging.RequestIDFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields
// is deliberately not enforced so clients can send forward-compatible
// payloads. Returns false after writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest,
			"request body is not valid JSON", err)
		return false
	}
	return true
}

// validateRequest runs validator/v10 over v. Returns false after writing
// the 400 response.
func validateRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	writeEnvelope(w, r, http.StatusBadRequest, &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
	return false
}

// queryString returns a trimmed query parameter or its default.
func queryString(r *http.Request, name, def string) string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	return v
}

// queryInt parses an integer query parameter, falling back to def on
// absence or garbage.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryFloat parses an optional float query parameter. Returns nil when
// absent, an error on garbage.
func queryFloat(r *http.Request, name string) (*float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q is not a number: %w", name, err)
	}
	return &f, nil
}
