// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package validation wraps go-playground/validator v10 behind a singleton
// with human-readable error messages and the custom season/irrigation tags.
package validation
