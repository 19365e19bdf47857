// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"errors"
	"net/http"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/climate"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/recommend"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/rotation"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// RecommendCrops runs the crop recommendation pipeline.
func (h *Handler) RecommendCrops(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	resp, err := h.aggregator.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, zone.ErrInvalidLatitude) ||
			errors.Is(err, zone.ErrInvalidLongitude) ||
			errors.Is(err, zone.ErrInsufficientLocation) {
			writeError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to generate recommendations", err)
		return
	}

	// Zone-not-found is a structured unsuccessful payload, not an error.
	writeJSON(w, r, http.StatusOK, resp)
}

// climateRiskRequest asks for assessments of one or more crops under a
// deviation scenario.
type climateRiskRequest struct {
	CropCodes             []string `json:"crop_codes" validate:"required,min=1,max=50"`
	RainfallDeviationPct  *float64 `json:"rainfall_deviation_pct,omitempty"`
	TemperatureDeviationC float64  `json:"temperature_deviation_c,omitempty"`
}

// climateRiskResponse carries the per-crop assessments plus the
// high-risk roll-up.
type climateRiskResponse struct {
	Assessments   map[string]climate.Assessment `json:"assessments"`
	HighRiskCrops []string                      `json:"high_risk_crops"`
}

// ClimateRisk assesses climate risk for the requested crops.
func (h *Handler) ClimateRisk(w http.ResponseWriter, r *http.Request) {
	var req climateRiskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	rainDev := -10.0
	if req.RainfallDeviationPct != nil {
		rainDev = *req.RainfallDeviationPct
	}

	assessments := make(map[string]climate.Assessment, len(req.CropCodes))
	for _, code := range req.CropCodes {
		assessments[code] = climate.Analyze(code, rainDev, req.TemperatureDeviationC)
	}

	writeJSON(w, r, http.StatusOK, climateRiskResponse{
		Assessments:   assessments,
		HighRiskCrops: climate.FlagHighRisk(assessments),
	})
}

// rotationRequest carries the cropping history and the target season.
type rotationRequest struct {
	History []rotation.HistoryEntry `json:"crop_history"`
	Season  string                  `json:"target_season,omitempty" validate:"omitempty,season"`
	Zone    string                  `json:"zone,omitempty"`
}

// rotationResponse combines the history analysis with the engine's
// ranked options and the zone defaults.
type rotationResponse struct {
	Analysis rotation.Analysis `json:"history_analysis"`
	Result   *rotation.Result  `json:"rotation"`
}

// RecommendRotation analyzes the history and recommends rotations.
func (h *Handler) RecommendRotation(w http.ResponseWriter, r *http.Request) {
	var req rotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	analysis := rotation.AnalyzeHistory(req.History)
	result := h.rotationEngine.Recommend(req.History, req.Season)

	primary, defaults := h.rotationRanker.CompleteDisplay(
		result.Options, req.Zone, len(analysis.History) > 0)
	result.Options = primary
	result.DefaultPatterns = defaults

	writeJSON(w, r, http.StatusOK, rotationResponse{
		Analysis: analysis,
		Result:   result,
	})
}

// RotationPatterns returns the default patterns for a zone.
func (h *Handler) RotationPatterns(w http.ResponseWriter, r *http.Request) {
	zoneName := queryString(r, "zone", "")
	writeJSON(w, r, http.StatusOK, map[string]any{
		"zone":     zoneName,
		"patterns": h.rotationRanker.DefaultPatterns(zoneName),
	})
}

// RotationSchedule returns the planting and harvest window for a season.
func (h *Handler) RotationSchedule(w http.ResponseWriter, r *http.Request) {
	season := queryString(r, "season", "")
	if season == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"season query parameter is required", nil)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"season":   season,
		"schedule": rotation.SeasonSchedule(season),
	})
}
