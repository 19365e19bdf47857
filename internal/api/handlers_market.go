// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"
	"strings"
)

// MarketPrices serves mandi price snapshots. A single crop query returns
// one snapshot; a comma-separated list returns a keyed map.
func (h *Handler) MarketPrices(w http.ResponseWriter, r *http.Request) {
	crop := queryString(r, "crop", "")
	state := queryString(r, "state", "")
	if crop == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"crop query parameter is required", nil)
		return
	}

	codes := strings.Split(crop, ",")
	for i := range codes {
		codes[i] = strings.TrimSpace(codes[i])
	}

	if len(codes) == 1 {
		snap, err := h.market.Snapshot(r.Context(), codes[0], state)
		if err != nil {
			writeError(w, r, http.StatusServiceUnavailable, codeUnavailable,
				"market data is unavailable", err)
			return
		}
		if snap == nil {
			writeError(w, r, http.StatusNotFound, codeNotFound,
				"no market data for crop "+codes[0], nil)
			return
		}
		writeJSON(w, r, http.StatusOK, snap)
		return
	}

	snaps, err := h.market.Snapshots(r.Context(), codes, state)
	if err != nil {
		writeError(w, r, http.StatusServiceUnavailable, codeUnavailable,
			"market data is unavailable", err)
		return
	}
	writeJSON(w, r, http.StatusOK, snaps)
}
