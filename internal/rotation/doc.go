// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package rotation analyzes a farmer's cropping history and recommends crop
// rotation plans.
//
// # Architecture
//
// Three collaborators split the work:
//
//   - AnalyzeHistory examines up to the three most recent seasons for
//     same-family monoculture runs, grades the nutrient depletion risk of
//     each run, and condenses the window into a rotation quality summary.
//   - Engine turns the history into candidate rotation options: root depth
//     alternation, a balanced deep/shallow/legume template, legume
//     integration, rice system diversification, relay cropping, and
//     intercropping.
//   - Ranker orders options by weighted overall benefit, assigns sequence
//     crops to the Kharif, Rabi, and Zaid seasons, fills residue management
//     guidance, and supplies zone default patterns for farmers with no
//     usable history.
//
// # Design
//
// Crop families, root depths, and per-crop climate and economic ratings come
// from the agronomy package, so the rotation engine and the crop
// recommendation engine grade crops on the same scales. The overall benefit
// of an option weights soil health at 40% and climate resilience and
// economic viability at 30% each, clamped to [0, 100]. Multi-season
// sequences join crops with SequenceSeparator; the same constant splits them
// back for season scheduling.
//
// # Thread Safety
//
// Engine and Ranker are stateless apart from ID generation and safe for
// concurrent use. All reference tables are read-only after package
// initialization.
package rotation
