// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

// affectedNutrients names the nutrients a family depletes when grown
// repeatedly. Sets are pairwise distinct across families so that a depletion
// report always identifies the responsible family unambiguously.
var affectedNutrients = map[CropFamily]string{
	FamilyCereals:     "Nitrogen (N), Zinc (Zn)",
	FamilyLegumes:     "Phosphorus (P), Potassium (K)",
	FamilyBrassicas:   "Potassium (K), Calcium (Ca), Boron (B)",
	FamilySolanaceous: "Phosphorus (P), Calcium (Ca), Magnesium (Mg)",
	FamilyCucurbits:   "Nitrogen (N), Potassium (K)",
	FamilyRootTubers:  "Potassium (K), Phosphorus (P), Calcium (Ca)",
	FamilyFiber:       "Nitrogen (N), Potassium (K), Boron (B)",
	FamilyOilseeds:    "Sulfur (S), Boron (B)",
	FamilySpices:      "Various micronutrients depending on crop",
	FamilyFruits:      "Potassium (K), Magnesium (Mg)",
	FamilyGreenManure: "Phosphorus (P)",
	FamilyFodder:      "Nitrogen (N), Potassium (K), Calcium (Ca)",
}

// AffectedNutrients returns the nutrient set depleted by consecutive
// cropping of the family. Unknown families report the macronutrient default.
func AffectedNutrients(f CropFamily) string {
	if s, ok := affectedNutrients[f]; ok {
		return s
	}
	return "Nitrogen (N), Phosphorus (P), Potassium (K)"
}

var rotationAdvice = map[CropFamily]string{
	FamilyCereals: "Consider rotating with legumes (greengram, blackgram, chickpea) for nitrogen fixation. " +
		"Follow with oilseeds (sunflower, sesame) to break pest cycles. ",
	FamilyLegumes: "After legumes, plant cereals (wheat, rice) to utilize fixed nitrogen. " +
		"Include brassicas for diverse nutrient uptake. ",
	FamilyBrassicas: "Rotate with cereals or root crops to reduce pest pressure. " +
		"Add lime if soil pH has dropped due to brassica cultivation. ",
	FamilySolanaceous: "Avoid consecutive solanaceous crops to reduce disease buildup. " +
		"Rotate with cereals or legumes. ",
	FamilyCucurbits: "Rotate with deep-rooted crops (sunflower, maize) to access deeper nutrients. " +
		"Avoid consecutive cucurbits to prevent soil-borne diseases. ",
	FamilyRootTubers: "Follow with cereals to utilize residual potassium. " +
		"Add organic matter to replenish soil after root crop harvest. ",
	FamilyFiber: "Rotate with legumes to restore nitrogen. " +
		"Include green manure crops before next fiber crop. ",
	FamilyOilseeds: "Follow oilseeds with cereals for balanced nutrient utilization. " +
		"Add sulfur-containing fertilizers if needed. ",
}

// RotationAdvice returns guidance for breaking a monoculture of the family.
func RotationAdvice(f CropFamily) string {
	if s, ok := rotationAdvice[f]; ok {
		return s
	}
	return "Introduce crops from different families to restore balance. "
}

var residueManagement = map[CropFamily]string{
	FamilyCereals: "Incorporate straw into soil or use as mulch. " +
		"Rice straw can be used for mushroom cultivation. " +
		"Wheat stubble should be chopped and incorporated.",
	FamilyLegumes: "Legume residues are nitrogen-rich. " +
		"Incorporate residues after partial decomposition. " +
		"Can be used as green manure for next crop.",
	FamilyBrassicas: "Heavy residue from brassicas. " +
		"Chop and incorporate with adequate moisture. " +
		"May require additional nitrogen for decomposition.",
	FamilySolanaceous: "Moderate residue. Incorporate into soil. " +
		"Remove diseased plant material to prevent carryover.",
	FamilyCucurbits: "Rapid decomposition. Incorporate residues. " +
		"Vine material provides good organic matter.",
	FamilyRootTubers: "Tuber residues decompose quickly. " +
		"Incorporate tops into soil. Leave tubers for soil structure.",
	FamilyFiber: "Cotton stalks should be destroyed or incorporated. " +
		"Avoid leaving residue that harbors pests.",
	FamilyOilseeds: "Oilseed residues are carbon-rich. " +
		"Incorporate with care to avoid nitrogen immobilization.",
	FamilySpices: "Minimal residue. Incorporate any plant material. " +
		"Some spices (turmeric, ginger) can be composted.",
	FamilyFruits: "Perennial crops have minimal seasonal residue. " +
		"Prunings can be chipped and used as mulch.",
	FamilyGreenManure: "Ideally suited for incorporation. " +
		"Incorporate at flowering stage for maximum nitrogen.",
	FamilyFodder: "Fodder residues decompose quickly. " +
		"Incorporate or use as livestock bedding first.",
}

// DefaultResidueManagement is the residue guidance for sequences whose
// dominant family cannot be determined.
const DefaultResidueManagement = "Incorporate crop residues into soil. " +
	"Ensure adequate moisture for decomposition. " +
	"Consider composting if residues are heavy."

// ResidueManagement returns residue-handling guidance for the family.
func ResidueManagement(f CropFamily) string {
	if s, ok := residueManagement[f]; ok {
		return s
	}
	return DefaultResidueManagement
}

var organicMatterImpact = map[CropFamily]string{
	FamilyCereals: "High organic matter addition. " +
		"Rice straw adds silica; wheat straw adds carbon. " +
		"Expected OM increase: 0.3-0.5% per season.",
	FamilyLegumes: "Nitrogen fixation plus organic matter. " +
		"Expected OM increase: 0.4-0.6% per season. " +
		"Improves soil nitrogen status.",
	FamilyBrassicas: "Moderate organic matter. " +
		"Fast decomposition. Expected OM increase: 0.2-0.4%.",
	FamilySolanaceous: "Moderate organic matter addition. " +
		"Expected OM increase: 0.2-0.3%.",
	FamilyCucurbits: "Good organic matter from vines. " +
		"Expected OM increase: 0.3-0.5%.",
	FamilyRootTubers: "Moderate from tops, improves soil structure. " +
		"Expected OM increase: 0.2-0.4%.",
	FamilyFiber: "Variable organic matter. " +
		"Cotton adds minimal OM. Expected increase: 0.1-0.2%.",
	FamilyOilseeds: "Moderate organic matter. " +
		"Expected OM increase: 0.2-0.4%.",
	FamilySpices: "Minimal organic matter addition. " +
		"Expected OM increase: 0.1-0.2%.",
	FamilyFruits: "Minimal seasonal contribution. " +
		"Prunings add small amounts of OM.",
	FamilyGreenManure: "Excellent organic matter addition. " +
		"Expected OM increase: 0.5-1.0% per season.",
	FamilyFodder: "Good organic matter from multiple harvests. " +
		"Expected OM increase: 0.4-0.6%.",
}

// DefaultOrganicMatterImpact is the projection used when no family-specific
// figure applies.
const DefaultOrganicMatterImpact = "Expected organic matter increase: 0.2-0.4% per season. " +
	"Actual impact depends on residue quantity and decomposition conditions."

// OrganicMatterImpact returns the organic-matter projection for the family.
func OrganicMatterImpact(f CropFamily) string {
	if s, ok := organicMatterImpact[f]; ok {
		return s
	}
	return DefaultOrganicMatterImpact
}

// FamilySoilScore rates a family's contribution to soil health on the 0-100
// scale used by the rotation ranker. Nitrogen fixers score highest; heavy
// feeders lowest.
func FamilySoilScore(f CropFamily) float64 {
	switch f {
	case FamilyLegumes:
		return 90
	case FamilyGreenManure:
		return 95
	case FamilyCereals:
		return 70
	case FamilyBrassicas:
		return 65
	case FamilyOilseeds:
		return 72
	case FamilyRootTubers:
		return 75
	default:
		return 68
	}
}
