// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

import "strings"

// CropFamily classifies crops into rotation-relevant botanical groups.
type CropFamily string

const (
	FamilyCereals     CropFamily = "CEREALS"
	FamilyLegumes     CropFamily = "LEGUMES"
	FamilyBrassicas   CropFamily = "BRASSICAS"
	FamilySolanaceous CropFamily = "SOLANACEOUS"
	FamilyCucurbits   CropFamily = "CUCURBITS"
	FamilyRootTubers  CropFamily = "ROOT_TUBERS"
	FamilyFiber       CropFamily = "FIBER"
	FamilyOilseeds    CropFamily = "OILSEEDS"
	FamilySpices      CropFamily = "SPICES"
	FamilyFruits      CropFamily = "FRUITS"
	FamilyGreenManure CropFamily = "GREEN_MANURE"
	FamilyFodder      CropFamily = "FODDER"

	// FamilyOther is the best-effort fallback for crop names that match no
	// known family. Callers must never receive a failure for an unknown crop.
	FamilyOther CropFamily = "OTHER"
)

// DisplayName returns a human-readable family name.
func (f CropFamily) DisplayName() string {
	switch f {
	case FamilyRootTubers:
		return "Root & Tuber"
	case FamilyGreenManure:
		return "Green Manure"
	case FamilyOther:
		return "Other"
	default:
		// Single-word families title-case cleanly.
		s := strings.ToLower(string(f))
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// RootDepth classifies the typical rooting zone of a crop family, used to
// detect depth monoculture and to suggest alternation.
type RootDepth string

const (
	DepthShallow RootDepth = "SHALLOW"
	DepthMedium  RootDepth = "MEDIUM"
	DepthDeep    RootDepth = "DEEP"
)

// Centimeters returns the nominal rooting depth for the class.
func (d RootDepth) Centimeters() int {
	switch d {
	case DepthShallow:
		return 30
	case DepthDeep:
		return 120
	default:
		return 60
	}
}

// NutrientImpact describes what repeated cropping at this depth does to the
// soil profile.
func (d RootDepth) NutrientImpact() string {
	switch d {
	case DepthShallow:
		return "Topsoil nutrient depletion risk"
	case DepthDeep:
		return "Nutrient cycling from deeper layers"
	default:
		return "Balanced nutrient uptake"
	}
}

// orderedFamilies fixes iteration order for the substring fallback so that
// resolution is deterministic regardless of map layout.
var orderedFamilies = []CropFamily{
	FamilyCereals,
	FamilyLegumes,
	FamilyBrassicas,
	FamilySolanaceous,
	FamilyCucurbits,
	FamilyRootTubers,
	FamilyFiber,
	FamilyOilseeds,
	FamilySpices,
	FamilyFruits,
	FamilyGreenManure,
	FamilyFodder,
}

var familyCrops = map[CropFamily][]string{
	FamilyCereals:     {"Rice", "Wheat", "Maize", "Barley", "Sorghum", "Millet", "Ragi", "Bajra", "Paddy", "Pearl Millet", "Finger Millet"},
	FamilyLegumes:     {"Greengram", "Blackgram", "Redgram", "Chickpea", "Lentil", "Peas", "Soybean", "Groundnut", "Cowpea", "Horsegram", "Mothbean", "Cluster Bean"},
	FamilyBrassicas:   {"Cabbage", "Cauliflower", "Broccoli", "Kale", "Mustard", "Rapeseed", "Turnip", "Radish", "Knol-khol"},
	FamilySolanaceous: {"Tomato", "Potato", "Brinjal", "Chili", "Bell Pepper", "Tobacco"},
	FamilyCucurbits:   {"Cucumber", "Bottle Gourd", "Bitter Gourd", "Pumpkin", "Squash", "Melon", "Watermelon", "Zucchini"},
	FamilyRootTubers:  {"Carrot", "Beetroot", "Onion", "Garlic", "Sweet Potato", "Tapioca", "Yam", "Taro"},
	FamilyFiber:       {"Cotton", "Jute", "Mesta", "Sisal", "Hemp"},
	FamilyOilseeds:    {"Sunflower", "Sesame", "Niger", "Safflower", "Castor", "Linseed"},
	FamilySpices:      {"Coriander", "Cumin", "Fenugreek", "Turmeric", "Ginger", "Cardamom", "Black Pepper", "Cinnamon", "Cloves", "Pepper"},
	FamilyFruits:      {"Mango", "Banana", "Citrus", "Papaya", "Guava", "Pomegranate", "Grapes", "Coconut"},
	FamilyGreenManure: {"Sesbania", "Crotalaria", "Sunhemp", "Dhaincha", "Glycine"},
	FamilyFodder:      {"Berseem", "Lucerne", "Napier", "Sorghum Fodder", "Maize Fodder"},
}

var familyRootDepth = map[CropFamily]RootDepth{
	FamilyCereals:     DepthDeep,
	FamilyLegumes:     DepthMedium,
	FamilyBrassicas:   DepthShallow,
	FamilySolanaceous: DepthMedium,
	FamilyCucurbits:   DepthShallow,
	FamilyRootTubers:  DepthDeep,
	FamilyFiber:       DepthDeep,
	FamilyOilseeds:    DepthMedium,
	FamilySpices:      DepthMedium,
	FamilyFruits:      DepthDeep,
	FamilyGreenManure: DepthMedium,
	FamilyFodder:      DepthShallow,

	FamilyOther: DepthMedium,
}

// cropIndex maps lower-cased crop names to their family for exact lookups.
var cropIndex = buildCropIndex()

func buildCropIndex() map[string]CropFamily {
	idx := make(map[string]CropFamily, 96)
	for fam, crops := range familyCrops {
		for _, crop := range crops {
			idx[strings.ToLower(crop)] = fam
		}
	}
	return idx
}

// FamilyForCrop resolves a crop name to its family.
//
// Resolution order: exact case-insensitive match, then a substring scan in
// fixed family order (so "basmati rice" classifies as a cereal), then
// FamilyOther. The function never fails; unknown names degrade to
// FamilyOther so that downstream engines always produce a recommendation.
func FamilyForCrop(name string) CropFamily {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return FamilyOther
	}
	if fam, ok := cropIndex[key]; ok {
		return fam
	}
	for _, fam := range orderedFamilies {
		for _, crop := range familyCrops[fam] {
			if strings.Contains(key, strings.ToLower(crop)) {
				return fam
			}
		}
	}
	return FamilyOther
}

// RootDepthForCrop resolves a crop name to its family's typical root depth.
// Unknown names report DepthMedium.
func RootDepthForCrop(name string) RootDepth {
	return familyRootDepth[FamilyForCrop(name)]
}

// FamilyRootDepth returns the typical root depth for a family.
func FamilyRootDepth(f CropFamily) RootDepth {
	if d, ok := familyRootDepth[f]; ok {
		return d
	}
	return DepthMedium
}

// CropsInFamily returns the member crops of a family. The returned slice is
// a copy; callers may mutate it freely.
func CropsInFamily(f CropFamily) []string {
	crops := familyCrops[f]
	out := make([]string, len(crops))
	copy(out, crops)
	return out
}
