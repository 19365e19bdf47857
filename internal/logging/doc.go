// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package logging wraps zerolog behind a small package-level API: a
// configurable global logger, component child loggers, request-scoped
// context helpers, and a log/slog bridge for the supervisor tree.
package logging
