// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package search ranks and filters semantic search hits against the
// advisory document corpus (scheme guidelines, crop guides, disease
// management notes, market intelligence).
//
// Similarity scores live on a 0-1 scale. Ordering follows the shared
// contract in internal/ranking: stable sorts, nil in nil out. Documents
// without a state apply nationwide and therefore pass every state filter.
package search

import (
	"math"
	"strings"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Category classifies an advisory document.
type Category string

const (
	CategorySchemes     Category = "SCHEMES"
	CategoryGuidelines  Category = "GUIDELINES"
	CategoryCropInfo    Category = "CROP_INFO"
	CategoryDiseaseMgmt Category = "DISEASE_MGMT"
	CategoryMarketIntel Category = "MARKET_INTEL"
)

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// Result is one semantic search hit.
type Result struct {
	// DocumentID identifies the matched document, e.g. "DOC-42".
	DocumentID string `json:"document_id"`
	// Title is the document's display title.
	Title string `json:"title"`
	// Snippet is the matched passage shown to the farmer.
	Snippet string `json:"snippet,omitempty"`
	// Category classifies the document.
	Category Category `json:"category"`
	// State scopes state-specific documents; empty means nationwide.
	State string `json:"state,omitempty"`
	// SimilarityScore is the embedding similarity on a 0-1 scale.
	SimilarityScore float64 `json:"similarity_score"`
}

// RankBySimilarity sorts descending by similarity score. Ties preserve
// input order; nil input returns nil.
func RankBySimilarity(results []Result) []Result {
	return ranking.Descending(results, similarity)
}

// FilterBySimilarityThreshold keeps results scoring at or above threshold.
func FilterBySimilarityThreshold(results []Result, threshold float64) []Result {
	return ranking.Filter(results, func(r Result) bool {
		return r.SimilarityScore >= threshold
	})
}

// FilterByCategory keeps results in the given category.
func FilterByCategory(results []Result, category Category) []Result {
	return ranking.Filter(results, func(r Result) bool {
		return r.Category == category
	})
}

// FilterByState keeps results scoped to state. An empty state argument
// disables the filter; nationwide results (empty State) always pass.
func FilterByState(results []Result, state string) []Result {
	if state == "" {
		return results
	}
	return ranking.Filter(results, func(r Result) bool {
		return r.State == "" || strings.EqualFold(r.State, state)
	})
}

// LimitResults returns at most limit leading results.
func LimitResults(results []Result, limit int) []Result {
	return ranking.Limit(results, limit)
}

// AverageSimilarity returns the mean similarity rounded to four decimal
// places. ok is false for nil or empty input.
func AverageSimilarity(results []Result) (avg float64, ok bool) {
	if len(results) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range results {
		sum += r.SimilarityScore
	}
	return math.Round(sum/float64(len(results))*10000) / 10000, true
}

// IsDescendingOrder reports whether results are already sorted descending
// by similarity. nil, empty, and single-element inputs are trivially
// ordered.
func IsDescendingOrder(results []Result) bool {
	return ranking.IsDescending(results, similarity)
}

func similarity(r Result) float64 { return r.SimilarityScore }
