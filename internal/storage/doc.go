// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package storage is the DuckDB-backed store for reference and
// operational data: agro-ecological zones, district mappings, GAEZ crop
// suitability rows, soil health cards, fertilizer application logs, and
// disease detections.
//
// # Architecture
//
// Store wraps one database/sql connection to an embedded DuckDB file.
// Schema creation is idempotent and runs on open; when the zones table
// is empty and seeding is enabled, the built-in reference dataset is
// loaded so a fresh deployment can answer recommendations immediately.
//
// Store satisfies the small per-domain interfaces the engine consumes:
// zone.Store, detection.Store, and the suitability/soil/application
// surfaces of the recommendation aggregator. Callers never see
// database/sql types; lookups that match nothing return (nil, nil) or a
// domain sentinel, not sql.ErrNoRows.
package storage
