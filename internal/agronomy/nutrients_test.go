// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

import (
	"strings"
	"testing"
)

func TestAffectedNutrients_PairwiseDistinct(t *testing.T) {
	seen := make(map[string]CropFamily, len(orderedFamilies))
	for _, fam := range orderedFamilies {
		set := AffectedNutrients(fam)
		if set == "" {
			t.Errorf("family %v has empty nutrient set", fam)
			continue
		}
		if prev, dup := seen[set]; dup {
			t.Errorf("families %v and %v share nutrient set %q", prev, fam, set)
		}
		seen[set] = fam
	}
}

func TestAffectedNutrients_KnownSets(t *testing.T) {
	tests := []struct {
		family   CropFamily
		expected string
	}{
		{FamilyCereals, "Nitrogen (N), Zinc (Zn)"},
		{FamilyLegumes, "Phosphorus (P), Potassium (K)"},
		{FamilyBrassicas, "Potassium (K), Calcium (Ca), Boron (B)"},
		{FamilyOilseeds, "Sulfur (S), Boron (B)"},
		{FamilyOther, "Nitrogen (N), Phosphorus (P), Potassium (K)"},
	}

	for _, tt := range tests {
		if got := AffectedNutrients(tt.family); got != tt.expected {
			t.Errorf("AffectedNutrients(%v) = %q, want %q", tt.family, got, tt.expected)
		}
	}
}

func TestRotationAdvice(t *testing.T) {
	if got := RotationAdvice(FamilyCereals); !strings.Contains(got, "legumes") {
		t.Errorf("cereal advice should mention legumes, got %q", got)
	}
	if got := RotationAdvice(FamilyFiber); !strings.Contains(got, "nitrogen") {
		t.Errorf("fiber advice should mention nitrogen, got %q", got)
	}
	if got := RotationAdvice(FamilyOther); !strings.Contains(got, "different families") {
		t.Errorf("fallback advice = %q", got)
	}
}

func TestResidueManagement(t *testing.T) {
	tests := []struct {
		name     string
		family   CropFamily
		contains string
	}{
		{"cereals mention straw", FamilyCereals, "straw"},
		{"legumes mention green manure", FamilyLegumes, "green manure"},
		{"brassicas mention decomposition", FamilyBrassicas, "decomposition"},
		{"unknown family gets default", FamilyOther, "Incorporate crop residues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResidueManagement(tt.family)
			if !strings.Contains(strings.ToLower(got), strings.ToLower(tt.contains)) {
				t.Errorf("ResidueManagement(%v) = %q, want substring %q", tt.family, got, tt.contains)
			}
		})
	}
}

func TestOrganicMatterImpact_AlwaysSet(t *testing.T) {
	for _, fam := range orderedFamilies {
		if OrganicMatterImpact(fam) == "" {
			t.Errorf("family %v has empty OM impact", fam)
		}
	}
	if got := OrganicMatterImpact(FamilyOther); got != DefaultOrganicMatterImpact {
		t.Errorf("fallback OM impact = %q", got)
	}
}

func TestFamilySoilScore(t *testing.T) {
	tests := []struct {
		family   CropFamily
		expected float64
	}{
		{FamilyGreenManure, 95},
		{FamilyLegumes, 90},
		{FamilyRootTubers, 75},
		{FamilyOilseeds, 72},
		{FamilyCereals, 70},
		{FamilyBrassicas, 65},
		{FamilySolanaceous, 68},
		{FamilyOther, 68},
	}

	for _, tt := range tests {
		if got := FamilySoilScore(tt.family); got != tt.expected {
			t.Errorf("FamilySoilScore(%v) = %v, want %v", tt.family, got, tt.expected)
		}
	}
}

func TestScoreTables(t *testing.T) {
	if got := ClimateResilienceScore("Pearl Millet"); got != 90 {
		t.Errorf("pearl millet resilience = %v, want 90", got)
	}
	if got := ClimateResilienceScore("Quinoa"); got != 70 {
		t.Errorf("unlisted crop resilience = %v, want 70", got)
	}
	if got := ClimateResilienceScore(""); got != 65 {
		t.Errorf("empty crop resilience = %v, want 65", got)
	}
	if got := EconomicViabilityScore("Mango"); got != 92 {
		t.Errorf("mango viability = %v, want 92", got)
	}
	if got := EconomicViabilityScore("Quinoa"); got != 70 {
		t.Errorf("unlisted crop viability = %v, want 70", got)
	}
}

func TestSeason(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Season
		ok       bool
	}{
		{"kharif lowercase", "kharif", SeasonKharif, true},
		{"rabi mixed case", "Rabi", SeasonRabi, true},
		{"zaid with spaces", " ZAID ", SeasonZaid, true},
		{"unknown season", "monsoon", Season("MONSOON"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeason(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseSeason(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}

	if got := SeasonKharif.PlantingMonths(); got != "June - July" {
		t.Errorf("kharif planting = %q", got)
	}
	if got := SeasonRabi.HarvestMonths(); got != "March - April" {
		t.Errorf("rabi harvest = %q", got)
	}
	if got := Season("MONSOON").PlantingMonths(); got != "Varies" {
		t.Errorf("unknown season planting = %q, want Varies", got)
	}
	if got := Season("MONSOON").HarvestMonths(); got != "Varies" {
		t.Errorf("unknown season harvest = %q, want Varies", got)
	}
}
