// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// zoneResolution is the resolve endpoint payload.
type zoneResolution struct {
	Found bool       `json:"found"`
	Zone  *zone.Zone `json:"zone,omitempty"`
}

// ResolveZone resolves an agro-ecological zone from query parameters:
// either zone code, district (+state), or lat/lon coordinates.
func (h *Handler) ResolveZone(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	lon, err := queryFloat(r, "lon")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	req := zone.Request{
		ZoneCode:  queryString(r, "zone_code", ""),
		District:  queryString(r, "district", ""),
		State:     queryString(r, "state", ""),
		Latitude:  lat,
		Longitude: lon,
	}

	z, err := h.resolver.Resolve(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, zoneResolution{Found: true, Zone: z})
	case errors.Is(err, zone.ErrZoneNotFound):
		// Not finding a zone is an answer, not a failure.
		writeJSON(w, r, http.StatusOK, zoneResolution{Found: false})
	case errors.Is(err, zone.ErrInvalidLatitude),
		errors.Is(err, zone.ErrInvalidLongitude),
		errors.Is(err, zone.ErrInsufficientLocation):
		writeError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
	default:
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to resolve zone", err)
	}
}

// GetZone serves one zone by its code.
func (h *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	z, err := h.zones.ZoneByCode(r.Context(), code)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to load zone", err)
		return
	}
	if z == nil {
		writeError(w, r, http.StatusNotFound, codeNotFound,
			"zone "+code+" not found", nil)
		return
	}
	writeJSON(w, r, http.StatusOK, z)
}

// ListZones serves the full zone reference table.
func (h *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.zones.Zones(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"failed to load zones", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"count": len(zones),
		"zones": zones,
	})
}
