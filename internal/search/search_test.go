// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package search

import (
	"math"
	"reflect"
	"testing"
)

func docIDs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.DocumentID
	}
	return out
}

func TestRankBySimilarity(t *testing.T) {
	input := []Result{
		{DocumentID: "DOC-1", SimilarityScore: 0.42},
		{DocumentID: "DOC-2", SimilarityScore: 0.91},
		{DocumentID: "DOC-3", SimilarityScore: 0.77},
	}

	got := docIDs(RankBySimilarity(input))
	want := []string{"DOC-2", "DOC-3", "DOC-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if input[0].DocumentID != "DOC-1" {
		t.Error("RankBySimilarity mutated its input")
	}
	if got := RankBySimilarity(nil); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestRankBySimilarityTiesStable(t *testing.T) {
	input := []Result{
		{DocumentID: "first", SimilarityScore: 0.5},
		{DocumentID: "second", SimilarityScore: 0.5},
		{DocumentID: "third", SimilarityScore: 0.5},
	}

	got := docIDs(RankBySimilarity(input))
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterBySimilarityThreshold(t *testing.T) {
	input := []Result{
		{DocumentID: "low", SimilarityScore: 0.3},
		{DocumentID: "boundary", SimilarityScore: 0.6},
		{DocumentID: "high", SimilarityScore: 0.9},
	}

	got := docIDs(FilterBySimilarityThreshold(input, 0.6))
	want := []string{"boundary", "high"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterByCategory(t *testing.T) {
	input := []Result{
		{DocumentID: "DOC-1", Category: CategorySchemes},
		{DocumentID: "DOC-2", Category: CategoryDiseaseMgmt},
		{DocumentID: "DOC-3", Category: CategorySchemes},
	}

	got := docIDs(FilterByCategory(input, CategorySchemes))
	want := []string{"DOC-1", "DOC-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := FilterByCategory(input, CategoryMarketIntel); len(got) != 0 {
		t.Errorf("unmatched category = %v, want empty", docIDs(got))
	}
}

func TestFilterByState(t *testing.T) {
	input := []Result{
		{DocumentID: "nationwide"},
		{DocumentID: "punjab", State: "Punjab"},
		{DocumentID: "kerala", State: "Kerala"},
	}

	tests := []struct {
		name     string
		state    string
		expected []string
	}{
		{"empty state passes all", "", []string{"nationwide", "punjab", "kerala"}},
		{"state match plus nationwide", "Punjab", []string{"nationwide", "punjab"}},
		{"case-insensitive match", "punjab", []string{"nationwide", "punjab"}},
		{"no state match keeps nationwide", "Assam", []string{"nationwide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := docIDs(FilterByState(input, tt.state))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLimitResults(t *testing.T) {
	input := []Result{
		{DocumentID: "DOC-1"},
		{DocumentID: "DOC-2"},
		{DocumentID: "DOC-3"},
	}

	if got := docIDs(LimitResults(input, 2)); !reflect.DeepEqual(got, []string{"DOC-1", "DOC-2"}) {
		t.Errorf("limit 2 = %v", got)
	}
	if got := LimitResults(input, 10); len(got) != 3 {
		t.Errorf("limit beyond length = %d results, want 3", len(got))
	}
	if got := LimitResults(input, 0); len(got) != 0 {
		t.Errorf("limit 0 = %d results, want 0", len(got))
	}
	if got := LimitResults(nil, 5); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestAverageSimilarity(t *testing.T) {
	if _, ok := AverageSimilarity(nil); ok {
		t.Error("nil input reported an average")
	}
	if _, ok := AverageSimilarity([]Result{}); ok {
		t.Error("empty input reported an average")
	}

	input := []Result{
		{SimilarityScore: 0.8},
		{SimilarityScore: 0.6},
		{SimilarityScore: 0.7},
	}
	got, ok := AverageSimilarity(input)
	if !ok {
		t.Fatal("ok = false for non-empty input")
	}
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("got %v, want 0.7", got)
	}

	// 0.12345 + 0.12346 averages to 0.123455, rounded to 0.1235.
	rounded, _ := AverageSimilarity([]Result{
		{SimilarityScore: 0.12345},
		{SimilarityScore: 0.12346},
	})
	if math.Abs(rounded-0.1235) > 1e-9 {
		t.Errorf("got %v, want 0.1235", rounded)
	}
}

func TestIsDescendingOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    []Result
		expected bool
	}{
		{"nil", nil, true},
		{"single", []Result{{SimilarityScore: 0.4}}, true},
		{"sorted", []Result{{SimilarityScore: 0.9}, {SimilarityScore: 0.5}, {SimilarityScore: 0.5}}, true},
		{"unsorted", []Result{{SimilarityScore: 0.5}, {SimilarityScore: 0.9}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDescendingOrder(tt.input); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
