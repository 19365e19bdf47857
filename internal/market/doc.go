// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package market supplies mandi price snapshots and market-linked score
// adjustments for crop recommendations.
//
// # Architecture
//
// Two Provider implementations exist. StaticProvider serves curated MSP
// and price tables with a deterministic synthetic history, and is always
// available. RemoteProvider calls an AGMARKNET-style price API behind a
// circuit breaker and an outbound rate limiter, falling back to the
// static tables whenever the remote is down or the circuit is open.
//
// The Adjuster converts a price snapshot into a bounded suitability
// score adjustment and advisory texts.
//
// # Thread Safety
//
// StaticProvider and Adjuster are stateless. RemoteProvider is safe for
// concurrent use; the circuit breaker and rate limiter serialize their
// own internal state.
package market
