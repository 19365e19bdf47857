// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package seed holds the reference catalog of state-released seed varieties
// and the lookups the recommendation pipeline uses to attach varieties to a
// recommended crop.
//
// # Architecture
//
// The catalog is a fixed in-memory table of varieties released by state
// agricultural universities and ICAR institutes, keyed informally by crop
// code. Catalog methods are thin filters over that table: by crop and state,
// by stress tolerance (drought, flood, heat), by season suitability, and by
// variety id. Crop codes and state names compare case-insensitively; variety
// ids compare exactly.
//
// # Design
//
// Lists that feed farmer-facing recommendations are ordered newest release
// first, so the most current breeding material leads. Tolerance and season
// filters keep catalog order. A crop without catalog coverage returns an
// empty list, never an error: variety data is advisory side information, not
// a precondition for a crop recommendation.
//
// # Thread Safety
//
// The catalog is read-only after construction and safe for concurrent use.
package seed
