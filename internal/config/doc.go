// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package config loads layered application configuration with koanf v2:
// struct defaults, then an optional YAML file, then environment
// variables. Every load ends with validation, so components only ever see
// a workable Config.
package config
