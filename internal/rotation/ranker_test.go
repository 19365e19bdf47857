// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import (
	"math"
	"reflect"
	"testing"
)

func TestOverallBenefitScore(t *testing.T) {
	tests := []struct {
		name string
		opt  *Option
		want float64
	}{
		{"nil option", nil, 0},
		{"zero components", &Option{}, 0},
		{"balanced weights", &Option{SoilHealthBenefit: 90, ClimateResilience: 85, EconomicViability: 80}, 85.5},
		{"soil only", &Option{SoilHealthBenefit: 50}, 20},
		{"clamped high", &Option{SoilHealthBenefit: 200, ClimateResilience: 200, EconomicViability: 200}, 100},
		{"clamped low", &Option{SoilHealthBenefit: -50, ClimateResilience: -50, EconomicViability: -50}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverallBenefitScore(tc.opt); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("OverallBenefitScore() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRankByOverallBenefit(t *testing.T) {
	r := NewRanker()

	t.Run("nil", func(t *testing.T) {
		if got := r.RankByOverallBenefit(nil); got != nil {
			t.Errorf("RankByOverallBenefit(nil) = %v, want nil", got)
		}
	})
	t.Run("empty", func(t *testing.T) {
		got := r.RankByOverallBenefit([]Option{})
		if got == nil || len(got) != 0 {
			t.Errorf("RankByOverallBenefit(empty) = %v, want empty", got)
		}
	})
	t.Run("recomputes and sorts", func(t *testing.T) {
		options := []Option{
			// Stale composite score must be overwritten before ranking.
			{ID: "low", SoilHealthBenefit: 10, ClimateResilience: 10, EconomicViability: 10, OverallBenefitScore: 999},
			{ID: "high", SoilHealthBenefit: 90, ClimateResilience: 85, EconomicViability: 80},
			{ID: "mid", SoilHealthBenefit: 50, ClimateResilience: 50, EconomicViability: 50},
		}
		got := r.RankByOverallBenefit(options)
		wantIDs := []string{"high", "mid", "low"}
		for i, want := range wantIDs {
			if got[i].ID != want {
				t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want)
			}
		}
		if math.Abs(got[2].OverallBenefitScore-10) > 1e-9 {
			t.Errorf("got[2].OverallBenefitScore = %v, want 10", got[2].OverallBenefitScore)
		}
		if options[0].ID != "low" {
			t.Error("input slice was reordered")
		}
	})
}

func TestComponentRankings(t *testing.T) {
	r := NewRanker()
	options := []Option{
		{ID: "a", SoilHealthBenefit: 10, ClimateResilience: 90, EconomicViability: 50},
		{ID: "b", SoilHealthBenefit: 80, ClimateResilience: 20, EconomicViability: 70},
		{ID: "c", SoilHealthBenefit: 40, ClimateResilience: 60, EconomicViability: 90},
	}
	tests := []struct {
		name string
		rank func([]Option) []Option
		want []string
	}{
		{"soil health", r.RankBySoilHealth, []string{"b", "c", "a"}},
		{"climate resilience", r.RankByClimateResilience, []string{"a", "c", "b"}},
		{"economic viability", r.RankByEconomicViability, []string{"c", "b", "a"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rank(options)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i, want := range tc.want {
				if got[i].ID != want {
					t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want)
				}
			}
			if tc.rank(nil) != nil {
				t.Error("rank(nil) != nil")
			}
		})
	}
}

func TestApplySeasonSchedules(t *testing.T) {
	tests := []struct {
		name       string
		sequence   string
		wantKharif string
		wantRabi   string
		wantZaid   string
	}{
		{"three seasons", "Rice -> Wheat -> Greengram", "Rice", "Wheat", "Greengram"},
		{"two seasons", "Rice -> Wheat", "Rice", "Wheat", ""},
		{"single crop", "Sunflower", "Sunflower", "", ""},
		{"relay plan", "Rice (relay with Lentil)", "Rice (relay with Lentil)", "", ""},
		{"empty", "", "", "", ""},
	}
	r := NewRanker()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ApplySeasonSchedules([]Option{{CropSequence: tc.sequence}})[0]
			if got.KharifCrop != tc.wantKharif {
				t.Errorf("KharifCrop = %q, want %q", got.KharifCrop, tc.wantKharif)
			}
			if got.RabiCrop != tc.wantRabi {
				t.Errorf("RabiCrop = %q, want %q", got.RabiCrop, tc.wantRabi)
			}
			if got.ZaidCrop != tc.wantZaid {
				t.Errorf("ZaidCrop = %q, want %q", got.ZaidCrop, tc.wantZaid)
			}
		})
	}

	if r.ApplySeasonSchedules(nil) != nil {
		t.Error("ApplySeasonSchedules(nil) != nil")
	}
}

func TestApplyResidueGuidance(t *testing.T) {
	r := NewRanker()

	t.Run("family guidance overrides", func(t *testing.T) {
		got := r.ApplyResidueGuidance([]Option{{
			CropSequence:        "Rice -> Wheat -> Greengram",
			ResidueManagement:   "engine placeholder",
			OrganicMatterImpact: "engine placeholder",
		}})[0]
		wantResidue := "Incorporate straw into soil or use as mulch. Rice straw can be used for mushroom cultivation. Wheat stubble should be chopped and incorporated."
		if got.ResidueManagement != wantResidue {
			t.Errorf("ResidueManagement = %q, want %q", got.ResidueManagement, wantResidue)
		}
		wantImpact := "High organic matter addition. Rice straw adds silica; wheat straw adds carbon. Expected OM increase: 0.3-0.5% per season."
		if got.OrganicMatterImpact != wantImpact {
			t.Errorf("OrganicMatterImpact = %q, want %q", got.OrganicMatterImpact, wantImpact)
		}
	})

	t.Run("unknown family keeps existing text", func(t *testing.T) {
		got := r.ApplyResidueGuidance([]Option{{
			CropSequence:        "Moonfruit",
			ResidueManagement:   "keep me",
			OrganicMatterImpact: "keep me too",
		}})[0]
		if got.ResidueManagement != "keep me" || got.OrganicMatterImpact != "keep me too" {
			t.Errorf("got %q / %q, want existing text kept", got.ResidueManagement, got.OrganicMatterImpact)
		}
	})

	t.Run("unknown family fills empty text", func(t *testing.T) {
		got := r.ApplyResidueGuidance([]Option{{CropSequence: "Moonfruit"}})[0]
		if got.ResidueManagement != defaultResidueGuidance.residue {
			t.Errorf("ResidueManagement = %q, want generic fallback", got.ResidueManagement)
		}
		if got.OrganicMatterImpact != defaultResidueGuidance.organicMatter {
			t.Errorf("OrganicMatterImpact = %q, want generic fallback", got.OrganicMatterImpact)
		}
	})
}

func TestDefaultPatternsSouthernZone(t *testing.T) {
	r := NewRanker()
	got := r.DefaultPatterns("Southern Plateau and Hills")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	first := got[0]
	if first.CropSequence != "Rice -> Groundnut -> Sunflower" {
		t.Fatalf("CropSequence = %q, want %q", first.CropSequence, "Rice -> Groundnut -> Sunflower")
	}
	if first.ID == "" {
		t.Error("ID is empty")
	}
	if first.KharifCrop != "Rice" || first.RabiCrop != "Groundnut" || first.ZaidCrop != "Sunflower" {
		t.Errorf("season slots = %q/%q/%q", first.KharifCrop, first.RabiCrop, first.ZaidCrop)
	}

	// Cereal 70, legume 90, oilseed 72 averaged, plus the legume and
	// deep-rooted bonuses.
	wantSoil := (70.0+90+72)/3 + 5 + 3
	if math.Abs(first.SoilHealthBenefit-wantSoil) > 1e-9 {
		t.Errorf("SoilHealthBenefit = %v, want %v", first.SoilHealthBenefit, wantSoil)
	}
	if first.ClimateResilience != 75 {
		t.Errorf("ClimateResilience = %v, want 75", first.ClimateResilience)
	}
	if first.EconomicViability != 85 {
		t.Errorf("EconomicViability = %v, want 85", first.EconomicViability)
	}
	wantOverall := wantSoil*0.40 + 75*0.30 + 85*0.30
	if math.Abs(first.OverallBenefitScore-wantOverall) > 1e-9 {
		t.Errorf("OverallBenefitScore = %v, want %v", first.OverallBenefitScore, wantOverall)
	}

	wantBenefits := []string{
		"Biological nitrogen fixation improves soil fertility",
		"Cereal-legume rotation provides balanced nutrition",
		"Oilseed break helps manage pest and disease cycles",
		"Diverse crop sequence reduces risk of total crop failure",
		"Multiple income sources throughout the year",
	}
	if !reflect.DeepEqual(first.Benefits, wantBenefits) {
		t.Errorf("Benefits = %v, want %v", first.Benefits, wantBenefits)
	}
	if len(first.Considerations) != 4 {
		t.Errorf("len(Considerations) = %d, want 4", len(first.Considerations))
	}
	if first.ResidueManagement != familyResidueGuidance["CEREALS"].residue {
		t.Errorf("ResidueManagement = %q, want cereal guidance", first.ResidueManagement)
	}
}

func TestDefaultPatternsPerennialSequence(t *testing.T) {
	r := NewRanker()
	got := r.DefaultPatterns("West Coast Plains and Hills")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	coconut := got[1]
	if coconut.CropSequence != "Coconut -> Banana -> Pepper" {
		t.Fatalf("CropSequence = %q, want %q", coconut.CropSequence, "Coconut -> Banana -> Pepper")
	}
	// Two fruit crops and a spice: no legume bonus, deep-rooted bonus only.
	wantSoil := (68.0+68+68)/3 + 3
	if math.Abs(coconut.SoilHealthBenefit-wantSoil) > 1e-9 {
		t.Errorf("SoilHealthBenefit = %v, want %v", coconut.SoilHealthBenefit, wantSoil)
	}
	if coconut.ClimateResilience != 70 {
		t.Errorf("ClimateResilience = %v, want unlisted-crop default 70", coconut.ClimateResilience)
	}
	wantBenefits := []string{
		"Diverse crop sequence reduces risk of total crop failure",
		"Multiple income sources throughout the year",
	}
	if !reflect.DeepEqual(coconut.Benefits, wantBenefits) {
		t.Errorf("Benefits = %v, want %v", coconut.Benefits, wantBenefits)
	}
	if coconut.ResidueManagement != familyResidueGuidance["FRUITS"].residue {
		t.Errorf("ResidueManagement = %q, want fruit guidance", coconut.ResidueManagement)
	}
}

func TestDefaultPatternsUnknownZone(t *testing.T) {
	r := NewRanker()
	got := r.DefaultPatterns("Nonexistent Zone")
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 Indo-Gangetic patterns", len(got))
	}
	if _, ok := optionBySequence(got, "Rice -> Wheat -> Greengram"); !ok {
		t.Error("missing Rice -> Wheat -> Greengram fallback pattern")
	}
	if _, ok := optionBySequence(got, "Rice -> Wheat -> Mustard"); !ok {
		t.Error("missing Rice -> Wheat -> Mustard fallback pattern")
	}
}

func TestCompleteDisplay(t *testing.T) {
	r := NewRanker()

	t.Run("promotes defaults without history", func(t *testing.T) {
		primary, defaults := r.CompleteDisplay(nil, "Himalayan Zone", false)
		if len(defaults) != 3 {
			t.Fatalf("len(defaults) = %d, want 3", len(defaults))
		}
		if len(primary) != len(defaults) {
			t.Fatalf("len(primary) = %d, want %d", len(primary), len(defaults))
		}
		if primary[0].CropSequence != defaults[0].CropSequence {
			t.Errorf("primary[0] = %q, want %q", primary[0].CropSequence, defaults[0].CropSequence)
		}
	})

	t.Run("keeps empty options when history exists", func(t *testing.T) {
		primary, defaults := r.CompleteDisplay(nil, "Himalayan Zone", true)
		if len(primary) != 0 {
			t.Errorf("len(primary) = %d, want 0", len(primary))
		}
		if len(defaults) != 3 {
			t.Errorf("len(defaults) = %d, want 3", len(defaults))
		}
	})

	t.Run("ranks and completes supplied options", func(t *testing.T) {
		options := []Option{
			{CropSequence: "Moonfruit", SoilHealthBenefit: 10, ClimateResilience: 10, EconomicViability: 10},
			{CropSequence: "Rice -> Wheat -> Greengram", SoilHealthBenefit: 90, ClimateResilience: 85, EconomicViability: 80},
		}
		primary, defaults := r.CompleteDisplay(options, "Himalayan Zone", true)
		if len(primary) != 2 {
			t.Fatalf("len(primary) = %d, want 2", len(primary))
		}
		if primary[0].CropSequence != "Rice -> Wheat -> Greengram" {
			t.Errorf("primary[0].CropSequence = %q, want best option first", primary[0].CropSequence)
		}
		if primary[0].KharifCrop != "Rice" || primary[0].RabiCrop != "Wheat" || primary[0].ZaidCrop != "Greengram" {
			t.Errorf("season slots = %q/%q/%q", primary[0].KharifCrop, primary[0].RabiCrop, primary[0].ZaidCrop)
		}
		if primary[0].ResidueManagement != familyResidueGuidance["CEREALS"].residue {
			t.Errorf("ResidueManagement = %q, want cereal guidance", primary[0].ResidueManagement)
		}
		if math.Abs(primary[0].OverallBenefitScore-85.5) > 1e-9 {
			t.Errorf("OverallBenefitScore = %v, want 85.5", primary[0].OverallBenefitScore)
		}
		if len(defaults) != 3 {
			t.Errorf("len(defaults) = %d, want 3", len(defaults))
		}
	})
}

func TestSeasonSchedule(t *testing.T) {
	tests := []struct {
		season       string
		wantPlanting string
		wantHarvest  string
	}{
		{"KHARIF", "June - July", "September - October"},
		{"kharif", "June - July", "September - October"},
		{"RABI", "October - November", "March - April"},
		{"ZAID", "February - March", "May - June"},
		{"SUMMER", "Varies", "Varies"},
		{"", "Varies", "Varies"},
	}
	for _, tc := range tests {
		name := tc.season
		if name == "" {
			name = "blank"
		}
		t.Run(name, func(t *testing.T) {
			got := SeasonSchedule(tc.season)
			if got.PlantingMonths != tc.wantPlanting {
				t.Errorf("PlantingMonths = %q, want %q", got.PlantingMonths, tc.wantPlanting)
			}
			if got.HarvestMonths != tc.wantHarvest {
				t.Errorf("HarvestMonths = %q, want %q", got.HarvestMonths, tc.wantHarvest)
			}
		})
	}
}
