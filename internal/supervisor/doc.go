// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package supervisor builds the suture v4 supervision tree that keeps the
// service's long-running components alive.
//
// The tree has two layers under the root:
//   - data: store maintenance (periodic DuckDB checkpoints)
//   - api: the HTTP server
//
// The layers isolate failures: a crashing maintenance job restarts on its
// own backoff schedule without touching the listener, and vice versa.
// Suture events are logged through sutureslog into the shared zerolog
// logger via logging.NewSlogLogger.
package supervisor
