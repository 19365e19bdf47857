// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package detection

import (
	"reflect"
	"testing"
)

func diseaseNames(ds []Detection) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.DiseaseName
	}
	return out
}

func TestRankByConfidence(t *testing.T) {
	input := []Detection{
		{DiseaseName: "Leaf Spot", ConfidenceScore: 85, Severity: SeverityLow},
		{DiseaseName: "Blast", ConfidenceScore: 92, Severity: SeverityMedium},
		{DiseaseName: "Wilt", ConfidenceScore: 85, Severity: SeverityCritical},
		{DiseaseName: "Rust", ConfidenceScore: 70, Severity: SeverityHigh},
	}

	got := diseaseNames(RankByConfidence(input))
	want := []string{"Blast", "Wilt", "Leaf Spot", "Rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if input[0].DiseaseName != "Leaf Spot" {
		t.Error("RankByConfidence mutated its input")
	}
	if got := RankByConfidence(nil); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestRankBySeverity(t *testing.T) {
	input := []Detection{
		{DiseaseName: "A", Severity: SeverityMedium},
		{DiseaseName: "B", Severity: SeverityCritical},
		{DiseaseName: "C", Severity: SeverityLevel("UNGRADED")},
		{DiseaseName: "D", Severity: SeverityHigh},
		{DiseaseName: "E", Severity: SeverityLow},
	}

	got := diseaseNames(RankBySeverity(input))
	want := []string{"B", "D", "A", "E", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRankBySeverityTiesStable(t *testing.T) {
	input := []Detection{
		{DiseaseName: "first", Severity: SeverityHigh},
		{DiseaseName: "second", Severity: SeverityHigh},
		{DiseaseName: "third", Severity: SeverityHigh},
	}

	got := diseaseNames(RankBySeverity(input))
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterByConfidenceThreshold(t *testing.T) {
	input := []Detection{
		{DiseaseName: "low", ConfidenceScore: 40},
		{DiseaseName: "boundary", ConfidenceScore: 70},
		{DiseaseName: "high", ConfidenceScore: 95},
	}

	got := diseaseNames(FilterByConfidenceThreshold(input, 70))
	want := []string{"boundary", "high"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := FilterByConfidenceThreshold(nil, 70); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestHasLowConfidence(t *testing.T) {
	tests := []struct {
		name      string
		input     []Detection
		threshold float64
		expected  bool
	}{
		{"nil", nil, 70, false},
		{"empty", []Detection{}, 70, false},
		{"all above", []Detection{{ConfidenceScore: 80}, {ConfidenceScore: 90}}, 70, false},
		{"exactly at threshold is not low", []Detection{{ConfidenceScore: 70}}, 70, false},
		{"one below", []Detection{{ConfidenceScore: 80}, {ConfidenceScore: 60}}, 70, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLowConfidence(tt.input, tt.threshold); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseSeverityLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected SeverityLevel
		wantErr  bool
	}{
		{"LOW", SeverityLow, false},
		{"medium", SeverityMedium, false},
		{" High ", SeverityHigh, false},
		{"CRITICAL", SeverityCritical, false},
		{"", "", true},
		{"SEVERE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverityLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSeverityLevel(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverityLevel(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
