// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package zone resolves a farmer's location to an agro-ecological zone.
//
// Resolution is a fallback chain: a direct zone code, an exact
// district/state match, a lower-cased retry, a case-insensitive scan over
// all mappings and their alternative spellings, a ±0.5° bounding box
// against district centroids, and finally the zone lat/lon envelopes.
// Malformed coordinates fail validation before any lookup; a location
// that matches nothing returns ErrZoneNotFound.
package zone
