// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

// SaveSoilCard stores or replaces a farmer's soil health card.
func (h *Handler) SaveSoilCard(w http.ResponseWriter, r *http.Request) {
	var snap agronomy.SoilHealthSnapshot
	if !decodeJSON(w, r, &snap) {
		return
	}
	if snap.FarmerID == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"farmer_id is required", nil)
		return
	}

	if err := h.soil.SaveSoilSnapshot(r.Context(), &snap); err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to save soil health card", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, snap)
}

// GetSoilCard serves a farmer's stored soil health card.
func (h *Handler) GetSoilCard(w http.ResponseWriter, r *http.Request) {
	farmerID := chi.URLParam(r, "farmerID")

	snap, err := h.soil.SoilSnapshot(r.Context(), farmerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to load soil health card", err)
		return
	}
	if snap == nil {
		writeError(w, r, http.StatusNotFound, codeNotFound,
			"no soil health card for farmer "+farmerID, nil)
		return
	}
	writeJSON(w, r, http.StatusOK, snap)
}
