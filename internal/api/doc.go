// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package api exposes the recommendation engine over HTTP using the chi
// router.
//
// All routes live under /api/v1. The middleware stack, in order: request
// id, real IP, request logging, panic recovery, CORS, per-IP rate
// limiting, timeout. Handlers decode typed request structs with
// goccy/go-json, validate them with validator/v10, and answer with the
// envelope in response.go. Validation failures are 400s;
// location-not-found is a 200 with a structured unsuccessful payload,
// because "no zone matched" is an answer, not a server fault.
package api
