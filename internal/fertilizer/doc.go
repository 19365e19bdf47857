// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package fertilizer computes nutrient requirements, product
// recommendations, split application schedules, and usage summaries for a
// crop grown on a given area.
//
// # Architecture
//
// Calculator is a pure computation layer over static reference tables
// (per-crop nutrient targets, product compositions, per-kg costs). A plan is
// built in four steps: base nutrient requirement for the crop, soil health
// card adjustment, product selection (urea for N, DAP for P, MOP for K, zinc
// sulfate for micronutrients), and a split application schedule anchored on
// the sowing date. Tracker aggregates recorded applications into nutrient
// and cost totals.
//
// # Design
//
// Soil test adjustments follow Soil Health Card norms: a nutrient below its
// adequacy target raises the requirement by twice the shortfall. Every
// recommended product carries explicit application phases, so the basal and
// top dressing schedule entries are always populated. Organic alternatives
// are advisory and never alter the chemical plan quantities.
//
// # Thread Safety
//
// Calculator is stateless apart from its clock and is safe for concurrent
// use. All reference tables are read-only after package initialization.
package fertilizer
