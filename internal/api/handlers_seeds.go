// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"
	"strings"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/seed"
)

// SeedVarieties serves the seed variety catalog for one crop, optionally
// narrowed by state, season, or stress tolerance.
func (h *Handler) SeedVarieties(w http.ResponseWriter, r *http.Request) {
	crop := queryString(r, "crop", "")
	if crop == "" {
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"crop query parameter is required", nil)
		return
	}

	var varieties []seed.Variety
	switch tolerance := strings.ToLower(queryString(r, "tolerance", "")); tolerance {
	case "":
		if state := queryString(r, "state", ""); state != "" {
			varieties = h.seeds.RecommendedVarieties(crop, state)
		} else {
			varieties = h.seeds.AllForCrop(crop)
		}
	case "drought":
		varieties = h.seeds.DroughtTolerant(crop)
	case "flood":
		varieties = h.seeds.FloodTolerant(crop)
	case "heat":
		varieties = h.seeds.HeatTolerant(crop)
	default:
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"tolerance must be one of drought, flood, heat", nil)
		return
	}

	if seasonStr := queryString(r, "season", ""); seasonStr != "" {
		season, ok := agronomy.ParseSeason(seasonStr)
		if !ok {
			writeError(w, r, http.StatusBadRequest, codeValidation,
				"unknown season "+seasonStr, nil)
			return
		}
		varieties = intersectSeason(varieties, h.seeds.ForSeason(crop, season))
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"crop_code": crop,
		"count":     len(varieties),
		"varieties": varieties,
	})
}

// intersectSeason keeps the varieties of vs that also appear in seasonal,
// preserving the order of vs.
func intersectSeason(vs, seasonal []seed.Variety) []seed.Variety {
	ids := make(map[string]struct{}, len(seasonal))
	for _, v := range seasonal {
		ids[v.ID] = struct{}{}
	}
	out := make([]seed.Variety, 0, len(vs))
	for _, v := range vs {
		if _, ok := ids[v.ID]; ok {
			out = append(out, v)
		}
	}
	return out
}
