// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package recommend orchestrates the crop recommendation pipeline:
// resolve a zone, score the zone's GAEZ reference rows, layer optional
// climate-risk and market-price adjustments, filter and rank, and attach
// per-crop economics and seed varieties.
//
// # Design
//
// The aggregator owns no agronomy itself; it composes the pure scoring
// packages (suitability, climate, market, fertilizer, seed) over the
// stores. Malformed input (bad coordinates, no location) comes back as an
// error; a location that resolves to nothing, or a zone without reference
// data, comes back as a structured unsuccessful Response, because the
// product requirement is to always answer.
//
// Responses are cached by request shape with a short TTL; the request id
// is excluded from the key and regenerated per response.
package recommend
