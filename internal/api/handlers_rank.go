// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/detection"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/scheme"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/search"
)

// schemeRankRequest carries candidate scheme matches plus ranking
// options.
type schemeRankRequest struct {
	Schemes       []scheme.Recommendation `json:"schemes" validate:"required,min=1"`
	SortBy        string                  `json:"sort_by,omitempty"`
	DaysThreshold int                     `json:"days_threshold,omitempty" validate:"omitempty,min=1"`
}

// RankSchemes orders government scheme matches for display.
func (h *Handler) RankSchemes(w http.ResponseWriter, r *http.Request) {
	var req schemeRankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	var ranked []scheme.Recommendation
	switch strings.ToLower(req.SortBy) {
	case "", "overall":
		ranked = h.schemeRanker.RankByOverallScore(req.Schemes)
	case "benefit":
		ranked = h.schemeRanker.RankByBenefit(req.Schemes)
	case "deadline":
		ranked = h.schemeRanker.RankByDeadlineProximity(req.Schemes)
	case "eligibility":
		ranked = h.schemeRanker.RankByEligibility(req.Schemes)
	default:
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"sort_by must be one of overall, benefit, deadline, eligibility", nil)
		return
	}

	resp := map[string]any{
		"schemes": ranked,
		"count":   len(ranked),
	}
	if req.DaysThreshold > 0 {
		resp["approaching_deadline"] = h.schemeRanker.FilterByApproachingDeadline(
			ranked, req.DaysThreshold)
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// searchRankRequest carries raw semantic search results plus filters.
type searchRankRequest struct {
	Results   []search.Result `json:"results" validate:"required"`
	Threshold *float64        `json:"similarity_threshold,omitempty" validate:"omitempty,min=0,max=1"`
	Category  string          `json:"category,omitempty"`
	State     string          `json:"state,omitempty"`
	Limit     int             `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// RankSearchResults orders and filters semantic search results.
func (h *Handler) RankSearchResults(w http.ResponseWriter, r *http.Request) {
	var req searchRankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	results := search.RankBySimilarity(req.Results)
	if req.Threshold != nil {
		results = search.FilterBySimilarityThreshold(results, *req.Threshold)
	}
	if req.Category != "" {
		results = search.FilterByCategory(results, search.Category(req.Category))
	}
	if req.State != "" {
		results = search.FilterByState(results, req.State)
	}
	if req.Limit > 0 {
		results = search.LimitResults(results, req.Limit)
	}

	resp := map[string]any{
		"results": results,
		"count":   len(results),
	}
	if avg, ok := search.AverageSimilarity(results); ok {
		resp["average_similarity"] = avg
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// RecordDetection stores a disease detection result.
func (h *Handler) RecordDetection(w http.ResponseWriter, r *http.Request) {
	var d detection.Detection
	if !decodeJSON(w, r, &d) {
		return
	}

	saved, err := h.detections.Record(r.Context(), d)
	if err != nil {
		if errors.Is(err, detection.ErrInvalidDetection) {
			writeError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to record detection", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, saved)
}

// ListDetections serves stored detections for a user or a crop, ordered
// by confidence or severity on request.
func (h *Handler) ListDetections(w http.ResponseWriter, r *http.Request) {
	userID := int64(queryInt(r, "user_id", 0))
	cropID := int64(queryInt(r, "crop_id", 0))

	var (
		detections []detection.Detection
		err        error
	)
	switch {
	case userID > 0:
		detections, err = h.detections.ForUser(r.Context(), userID)
	case cropID > 0:
		detections, err = h.detections.ForCrop(r.Context(), cropID)
	default:
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"either user_id or crop_id is required", nil)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to load detections", err)
		return
	}

	if min, err := queryFloat(r, "min_confidence"); err == nil && min != nil {
		detections = detection.FilterByConfidenceThreshold(detections, *min)
	}
	switch strings.ToLower(queryString(r, "sort", "")) {
	case "confidence":
		detections = detection.RankByConfidence(detections)
	case "severity":
		detections = detection.RankBySeverity(detections)
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"detections": detections,
		"count":      len(detections),
	})
}

// GetDetection serves one detection by id.
func (h *Handler) GetDetection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"detection id must be an integer", nil)
		return
	}

	d, err := h.detections.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, detection.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, codeNotFound,
				"detection not found", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to load detection", err)
		return
	}
	writeJSON(w, r, http.StatusOK, d)
}

// DeleteDetection removes one detection by id.
func (h *Handler) DeleteDetection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"detection id must be an integer", nil)
		return
	}

	if err := h.detections.Delete(r.Context(), id); err != nil {
		if errors.Is(err, detection.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, codeNotFound,
				"detection not found", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to delete detection", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"deleted": id})
}
