// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/fertilizer"
)

// fertilizerPlanRequest extends the calculator request with the farmer
// id used to pull the stored soil health card when no inline readings
// are supplied.
type fertilizerPlanRequest struct {
	fertilizer.PlanRequest
	UseStoredSoilCard bool `json:"use_stored_soil_card,omitempty"`
}

// FertilizerPlan builds a fertilizer recommendation plan.
func (h *Handler) FertilizerPlan(w http.ResponseWriter, r *http.Request) {
	var req fertilizerPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CropCode == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"crop_code is required", nil)
		return
	}

	if req.Soil == nil && req.UseStoredSoilCard && req.FarmerID != "" && h.soil != nil {
		snap, err := h.soil.SoilSnapshot(r.Context(), req.FarmerID)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, codeInternal,
				"failed to load soil health card", err)
			return
		}
		req.Soil = snap
	}

	writeJSON(w, r, http.StatusOK, h.calculator.BuildPlan(req.PlanRequest))
}

// RecordApplication stores one fertilizer application.
func (h *Handler) RecordApplication(w http.ResponseWriter, r *http.Request) {
	var app fertilizer.Application
	if !decodeJSON(w, r, &app) {
		return
	}
	if app.CropID == "" || app.FarmerID == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"crop_id and farmer_id are required", nil)
		return
	}
	if app.QuantityKg <= 0 {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"quantity_kg must be positive", nil)
		return
	}

	id, err := h.applications.SaveApplication(r.Context(), &app)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to record application", err)
		return
	}
	app.ID = id
	writeJSON(w, r, http.StatusCreated, app)
}

// FertilizerTracking aggregates the logged applications for a crop into
// a usage report. With farmer_id instead it lists the farmer's raw log.
func (h *Handler) FertilizerTracking(w http.ResponseWriter, r *http.Request) {
	cropID := queryString(r, "crop_id", "")
	farmerID := queryString(r, "farmer_id", "")

	switch {
	case cropID != "":
		apps, err := h.applications.ApplicationsByCrop(r.Context(), cropID)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, codeInternal,
				"failed to load applications", err)
			return
		}
		writeJSON(w, r, http.StatusOK, fertilizer.Summarize(cropID, apps))

	case farmerID != "":
		apps, err := h.applications.ApplicationsByFarmer(r.Context(), farmerID)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, codeInternal,
				"failed to load applications", err)
			return
		}
		writeJSON(w, r, http.StatusOK, map[string]any{
			"farmer_id":    farmerID,
			"count":        len(apps),
			"applications": apps,
		})

	default:
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"either crop_id or farmer_id is required", nil)
	}
}

// DeleteApplication removes one logged application by id.
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.applications.DeleteApplication(r.Context(), id); err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to delete application", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"deleted": id})
}
