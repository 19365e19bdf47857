// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

import "testing"

func TestFamilyForCrop(t *testing.T) {
	tests := []struct {
		name     string
		crop     string
		expected CropFamily
	}{
		{"exact match", "Rice", FamilyCereals},
		{"lowercase", "rice", FamilyCereals},
		{"uppercase", "WHEAT", FamilyCereals},
		{"surrounding whitespace", "  Greengram  ", FamilyLegumes},
		{"paddy is a cereal", "Paddy", FamilyCereals},
		{"brassica", "Mustard", FamilyBrassicas},
		{"solanaceous", "Tomato", FamilySolanaceous},
		{"cucurbit", "Bottle Gourd", FamilyCucurbits},
		{"root tuber", "Onion", FamilyRootTubers},
		{"fiber", "Cotton", FamilyFiber},
		{"oilseed", "Sunflower", FamilyOilseeds},
		{"spice", "Turmeric", FamilySpices},
		{"fruit", "Mango", FamilyFruits},
		{"green manure", "Dhaincha", FamilyGreenManure},
		{"fodder", "Berseem", FamilyFodder},
		{"substring variant", "Basmati Rice", FamilyCereals},
		{"substring with suffix", "Hybrid Maize Seed", FamilyCereals},
		{"multi-word exact beats substring", "Sweet Potato", FamilyRootTubers},
		{"bell pepper stays solanaceous", "Bell Pepper", FamilySolanaceous},
		{"unknown crop", "Quinoa", FamilyOther},
		{"empty name", "", FamilyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FamilyForCrop(tt.crop)
			if result != tt.expected {
				t.Errorf("FamilyForCrop(%q) = %v, want %v", tt.crop, result, tt.expected)
			}
		})
	}
}

func TestRootDepthForCrop(t *testing.T) {
	tests := []struct {
		name     string
		crop     string
		expected RootDepth
	}{
		{"cereals are deep rooted", "Rice", DepthDeep},
		{"legumes are medium rooted", "Chickpea", DepthMedium},
		{"brassicas are shallow rooted", "Cabbage", DepthShallow},
		{"cucurbits are shallow rooted", "Cucumber", DepthShallow},
		{"unknown defaults to medium", "Quinoa", DepthMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RootDepthForCrop(tt.crop)
			if result != tt.expected {
				t.Errorf("RootDepthForCrop(%q) = %v, want %v", tt.crop, result, tt.expected)
			}
		})
	}
}

func TestRootDepth_Centimeters(t *testing.T) {
	tests := []struct {
		depth    RootDepth
		expected int
	}{
		{DepthShallow, 30},
		{DepthMedium, 60},
		{DepthDeep, 120},
	}

	for _, tt := range tests {
		if got := tt.depth.Centimeters(); got != tt.expected {
			t.Errorf("%v.Centimeters() = %d, want %d", tt.depth, got, tt.expected)
		}
	}
}

func TestRootDepth_NutrientImpact(t *testing.T) {
	if got := DepthShallow.NutrientImpact(); got != "Topsoil nutrient depletion risk" {
		t.Errorf("shallow impact = %q", got)
	}
	if got := DepthDeep.NutrientImpact(); got != "Nutrient cycling from deeper layers" {
		t.Errorf("deep impact = %q", got)
	}
	if got := DepthMedium.NutrientImpact(); got != "Balanced nutrient uptake" {
		t.Errorf("medium impact = %q", got)
	}
}

func TestCropsInFamily_ReturnsCopy(t *testing.T) {
	first := CropsInFamily(FamilyCereals)
	if len(first) == 0 {
		t.Fatal("expected cereal crops")
	}
	first[0] = "mutated"

	second := CropsInFamily(FamilyCereals)
	if second[0] == "mutated" {
		t.Error("CropsInFamily leaked internal slice")
	}
}

func TestFamilyRootDepth_EveryFamilyClassified(t *testing.T) {
	for _, fam := range orderedFamilies {
		depth := FamilyRootDepth(fam)
		if depth != DepthShallow && depth != DepthMedium && depth != DepthDeep {
			t.Errorf("family %v has invalid depth %v", fam, depth)
		}
	}
}
