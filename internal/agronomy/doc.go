// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package agronomy holds the static agronomic reference tables shared by the
// recommendation engines: crop family and root depth classification, affected
// nutrient sets, rotation and residue guidance text, and per-crop climate
// resilience and economic viability scores.
//
// # Design
//
// All tables are immutable after package initialization and every lookup is a
// pure function. Family-specific behavior is expressed as data keyed by
// CropFamily rather than as branching code, so adding a crop or adjusting a
// template never touches engine logic.
//
// Crop name resolution is deliberately forgiving: lookups are
// case-insensitive, fall back to a substring scan for colloquial variants
// ("basmati rice"), and resolve to FamilyOther rather than failing. The
// product requirement is that every crop name produces some classification.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use; the underlying tables
// never mutate after init.
package agronomy
