// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package ranking provides the shared ordering contract used by every ranked
// output in the system: recommendation lists, rotation options, government
// schemes, disease detections, and search results.
//
// All helpers honor the same collection contract: nil input returns nil,
// empty input returns empty, and every input element is preserved in the
// output. Sorting is stable, so ties keep their relative input order.
package ranking

import "sort"

// Descending returns a copy of items stable-sorted in descending order of
// key. Ties preserve input order. nil input returns nil; empty input returns
// an empty, non-nil slice; no element is ever dropped.
func Descending[T any](items []T, key func(T) float64) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}

// IsDescending reports whether items are already ordered descending by key.
// nil and empty inputs are trivially ordered.
func IsDescending[T any](items []T, key func(T) float64) bool {
	for i := 1; i < len(items); i++ {
		if key(items[i-1]) < key(items[i]) {
			return false
		}
	}
	return true
}

// Filter returns the items satisfying keep, preserving order. nil input
// returns nil; empty input returns empty.
func Filter[T any](items []T, keep func(T) bool) []T {
	if items == nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Limit returns at most n leading items. Negative n is treated as 0. nil
// input returns nil.
func Limit[T any](items []T, n int) []T {
	if items == nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
