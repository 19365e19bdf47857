// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package scheme

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

func testRanker() *Ranker {
	return &Ranker{now: fixedNow}
}

func onDay(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func codes(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.SchemeCode
	}
	return out
}

func TestRankByBenefit(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "LATER", BenefitAmount: 50000, ApplicationDeadline: onDay(20)},
		{SchemeCode: "OPEN", BenefitAmount: 80000},
		{SchemeCode: "SOON", BenefitAmount: 50000, ApplicationDeadline: onDay(15)},
		{SchemeCode: "BIG", BenefitAmount: 120000, ApplicationDeadline: onDay(1)},
	}

	got := codes(r.RankByBenefit(input))
	want := []string{"BIG", "OPEN", "SOON", "LATER"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if input[0].SchemeCode != "LATER" {
		t.Error("RankByBenefit mutated its input")
	}
	if got := r.RankByBenefit(nil); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestRankByDeadlineProximity(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "OPEN"},
		{SchemeCode: "LATER", ApplicationDeadline: onDay(25)},
		{SchemeCode: "SOON", ApplicationDeadline: onDay(12)},
		{SchemeCode: "PASSED", ApplicationDeadline: onDay(5)},
	}

	got := codes(r.RankByDeadlineProximity(input))
	want := []string{"PASSED", "SOON", "LATER", "OPEN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRankByDeadlineProximityTiesStable(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "FIRST", ApplicationDeadline: onDay(14)},
		{SchemeCode: "SECOND", ApplicationDeadline: onDay(14)},
		{SchemeCode: "THIRD", ApplicationDeadline: onDay(14)},
	}

	got := codes(r.RankByDeadlineProximity(input))
	want := []string{"FIRST", "SECOND", "THIRD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRankByEligibility(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "MID", EligibilityScore: 60},
		{SchemeCode: "TOP", EligibilityScore: 95},
		{SchemeCode: "LOW", EligibilityScore: 30},
	}

	got := codes(r.RankByEligibility(input))
	want := []string{"TOP", "MID", "LOW"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOverallScore(t *testing.T) {
	r := testRanker()

	tests := []struct {
		name     string
		rec      *Recommendation
		expected float64
	}{
		{"nil recommendation", nil, 0},
		{"zero fields", &Recommendation{}, 0},
		{
			name: "weighted blend",
			rec: &Recommendation{
				BenefitAmount:          250000,
				EligibilityScore:       80,
				DeadlineProximityScore: 50,
			},
			expected: 59,
		},
		{
			name: "ceiling benefit with full scores",
			rec: &Recommendation{
				BenefitAmount:          500000,
				EligibilityScore:       100,
				DeadlineProximityScore: 100,
			},
			expected: 100,
		},
		{
			name: "benefit above ceiling is not clamped",
			rec: &Recommendation{
				BenefitAmount:    1000000,
				EligibilityScore: 100,
			},
			expected: 130,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.OverallScore(tt.rec); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRankByOverallScore(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "SMALL", BenefitAmount: 50000, EligibilityScore: 40, OverallScore: 999, Rank: 42},
		{SchemeCode: "BIG", BenefitAmount: 400000, EligibilityScore: 90},
		{SchemeCode: "MID", BenefitAmount: 200000, EligibilityScore: 70},
	}

	got := r.RankByOverallScore(input)
	want := []string{"BIG", "MID", "SMALL"}
	if !reflect.DeepEqual(codes(got), want) {
		t.Fatalf("got %v, want %v", codes(got), want)
	}

	// 400000/500000*100*0.5 + 90*0.3 = 40 + 27.
	if math.Abs(got[0].OverallScore-67) > 1e-9 {
		t.Errorf("BIG score = %v, want 67", got[0].OverallScore)
	}
	// Stale score and rank are recomputed, not trusted.
	if math.Abs(got[2].OverallScore-17) > 1e-9 {
		t.Errorf("SMALL score = %v, want 17", got[2].OverallScore)
	}
	for i, rec := range got {
		if rec.Rank != i+1 {
			t.Errorf("rank at %d = %d, want %d", i, rec.Rank, i+1)
		}
	}

	if got := r.RankByOverallScore(nil); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestFilterByApproachingDeadline(t *testing.T) {
	r := testRanker()

	input := []Recommendation{
		{SchemeCode: "TODAY", ApplicationDeadline: onDay(10)},
		{SchemeCode: "BOUNDARY", ApplicationDeadline: onDay(17)},
		{SchemeCode: "BEYOND", ApplicationDeadline: onDay(18)},
		{SchemeCode: "PASSED", ApplicationDeadline: onDay(9)},
		{SchemeCode: "OPEN"},
	}

	got := codes(r.FilterByApproachingDeadline(input, 7))
	want := []string{"TODAY", "BOUNDARY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = codes(r.FilterByApproachingDeadline(input, 0))
	want = []string{"TODAY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("zero threshold = %v, want %v", got, want)
	}

	if got := r.FilterByApproachingDeadline(nil, 7); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
}

func TestDaysUntilDeadline(t *testing.T) {
	r := testRanker()

	tests := []struct {
		name     string
		deadline time.Time
		expected int64
	}{
		{"no deadline", time.Time{}, noDeadline},
		{"passed", onDay(5), 0},
		{"same day", onDay(10), 0},
		{"five days out", onDay(15), 5},
		{
			name:     "time of day and zone ignored",
			deadline: time.Date(2026, time.March, 15, 1, 0, 0, 0, time.FixedZone("IST", 19800)),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.daysUntilDeadline(Recommendation{ApplicationDeadline: tt.deadline})
			if got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}
