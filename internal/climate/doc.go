// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package climate assesses crop-level climate risk under projected
// rainfall and temperature deviation scenarios.
//
// # Architecture
//
// The package is a pure computation layer over a static per-crop
// sensitivity table. Analyze combines a rainfall deviation scenario, a
// temperature stress projection, and the crop's inherent drought and
// flood sensitivity into a 0-100 risk score, then maps the score onto
// four risk levels. Batch analysis and score adjustment build on the
// single-crop path.
//
// # Design
//
// Every assessment carries at least one mitigation strategy and one
// resilient-variety suggestion so downstream advisory surfaces never
// render an empty guidance block. Crop insurance is recommended exactly
// when the risk level is HIGH or VERY_HIGH.
//
// # Thread Safety
//
// All functions are pure and the profile tables are immutable after
// package initialization, so the package is safe for concurrent use.
package climate
