// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package detection stores and ranks crop disease detection results
// produced by the image classification pipeline.
//
// # Architecture
//
// Detection is the domain record: disease name, model confidence, severity
// grade, affected leaf area, and treatment guidance for one analyzed image.
// Service wraps a Store (satisfied by the DuckDB-backed reference store)
// with input validation, timestamp defaulting, and logging. The ranking
// helpers order detection lists for display: confidence first, severity
// breaking ties.
//
// # Design
//
// Ranking follows the shared ordering contract in internal/ranking: stable
// sorts, nil in nil out, no elements dropped. Confidence thresholds are
// inclusive, so a detection exactly at the threshold passes the filter.
//
// # Thread Safety
//
// Service is safe for concurrent use when its Store is; the ranking helpers
// are pure functions.
package detection
