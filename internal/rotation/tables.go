// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import "github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"

// Candidate pools for option generation. Slices keep a fixed order so the
// generated option lists are deterministic.
var (
	deepRootedCrops = []string{
		"Sunflower", "Sorghum", "Cotton", "Carrot", "Onion", "Tomato",
		"Maize", "Pigeon Pea", "Redgram", "Soybean", "Sesame", "Safflower",
	}
	shallowRootedCrops = []string{
		"Cabbage", "Cauliflower", "Broccoli", "Mustard", "Radish", "Lettuce",
		"Spinach", "Cucumber", "Bottle Gourd", "Watermelon", "Wheat", "Rice",
	}
	legumeCrops = []string{
		"Greengram", "Blackgram", "Redgram", "Chickpea", "Lentil", "Peas",
		"Soybean", "Groundnut", "Cowpea", "Horsegram", "Mothbean", "Berseem",
	}
	riceDiversificationCrops = []string{
		"Greengram", "Blackgram", "Lentil", "Chickpea", "Mustard",
		"Sunflower", "Sesame", "Groundnut", "Wheat", "Barley", "Oat",
		"Rapeseed",
	}
)

// relayPairs maps a maturing main crop to the short-duration crops that can
// be relay-sown into it before harvest. Keys are lower-case.
var relayPairs = map[string][]string{
	"rice":  {"Lentil", "Chickpea", "Greengram", "Blackgram"},
	"paddy": {"Lentil", "Chickpea", "Greengram", "Blackgram"},
	"wheat": {"Chickpea", "Lentil", "Mustard"},
	"maize": {"Cowpea", "Greengram", "Soybean"},
}

// intercropPartners maps a main crop to compatible companion crops. Keys are
// lower-case.
var intercropPartners = map[string][]string{
	"rice":      {"Soybean", "Greengram", "Blackgram"},
	"maize":     {"Cowpea", "Greengram", "Soybean", "Beans"},
	"wheat":     {"Chickpea", "Lentil", "Mustard"},
	"cotton":    {"Greengram", "Blackgram", "Soybean"},
	"sugarcane": {"Soybean", "Greengram", "Potato", "Onion"},
}

// cropPestRisks lists the major pests and diseases a crop can carry over to
// the next season. Keys are lower-case.
var cropPestRisks = map[string][]string{
	"rice":      {"Blast", "Bacterial Leaf Blight", "Brown Planthopper", "Stem Rot"},
	"wheat":     {"Rust", "Karnal Bunt", "Powdery Mildew", "Aphids"},
	"cotton":    {"Pink Bollworm", "Whitefly", "Leaf Curl Virus", "Wilt"},
	"sugarcane": {"Top Borer", "Pyrilla", "Red Rot", "Smut"},
	"groundnut": {"Leaf Spot", "Rust", "Aflatoxin", "Termites"},
	"soybean":   {"Yellow Mosaic", "Stem Fly", "Girdle Beetle", "Rust"},
}

// pestCarryoverFamilies are the families whose pests persist in soil and
// residue strongly enough to make consecutive planting hazardous.
var pestCarryoverFamilies = map[agronomy.CropFamily]bool{
	agronomy.FamilyCereals:     true,
	agronomy.FamilyLegumes:     true,
	agronomy.FamilyBrassicas:   true,
	agronomy.FamilySolanaceous: true,
	agronomy.FamilyCucurbits:   true,
}

// familyAffectedNutrients maps each family to the nutrients it draws down
// hardest under repeated planting. Every family carries a distinct set.
var familyAffectedNutrients = map[agronomy.CropFamily]string{
	agronomy.FamilyCereals:     "Nitrogen (N), Zinc (Zn)",
	agronomy.FamilyLegumes:     "Phosphorus (P), Potassium (K)",
	agronomy.FamilyBrassicas:   "Potassium (K), Calcium (Ca), Boron (B)",
	agronomy.FamilySolanaceous: "Phosphorus (P), Calcium (Ca), Magnesium (Mg)",
	agronomy.FamilyCucurbits:   "Nitrogen (N), Potassium (K)",
	agronomy.FamilyRootTubers:  "Potassium (K), Phosphorus (P), Calcium (Ca)",
	agronomy.FamilyFiber:       "Nitrogen (N), Potassium (K), Boron (B)",
	agronomy.FamilyOilseeds:    "Sulfur (S), Boron (B)",
	agronomy.FamilySpices:      "Various micronutrients depending on crop",
	agronomy.FamilyFruits:      "Potassium (K), Magnesium (Mg)",
	agronomy.FamilyGreenManure: "Phosphorus (P)",
	agronomy.FamilyFodder:      "Nitrogen (N), Potassium (K), Calcium (Ca)",
}

// defaultAffectedNutrients covers families without a specific entry.
const defaultAffectedNutrients = "Nitrogen (N), Phosphorus (P), Potassium (K)"

// familyRotationAdvice maps a repeated family to advice for breaking the
// run.
var familyRotationAdvice = map[agronomy.CropFamily]string{
	agronomy.FamilyCereals:     "Consider rotating with legumes (greengram, blackgram, chickpea) for nitrogen fixation. Follow with oilseeds (sunflower, sesame) to break pest cycles.",
	agronomy.FamilyLegumes:     "After legumes, plant cereals (wheat, rice) to utilize fixed nitrogen. Include brassicas for diverse nutrient uptake.",
	agronomy.FamilyBrassicas:   "Rotate with cereals or root crops to reduce pest pressure. Add lime if soil pH has dropped due to brassica cultivation.",
	agronomy.FamilySolanaceous: "Avoid consecutive solanaceous crops to reduce disease buildup. Rotate with cereals or legumes.",
	agronomy.FamilyCucurbits:   "Rotate with deep-rooted crops (sunflower, maize) to access deeper nutrients. Avoid consecutive cucurbits to prevent soil-borne diseases.",
	agronomy.FamilyRootTubers:  "Follow with cereals to utilize residual potassium. Add organic matter to replenish soil after root crop harvest.",
	agronomy.FamilyFiber:       "Rotate with legumes to restore nitrogen. Include green manure crops before next fiber crop.",
	agronomy.FamilyOilseeds:    "Follow oilseeds with cereals for balanced nutrient utilization. Add sulfur-containing fertilizers if needed.",
}

const (
	defaultRotationAdvice = "Introduce crops from different families to restore balance."
	urgentRotationAdvice  = "URGENT: Immediate rotation change strongly recommended."
)

// residueGuidance pairs residue handling advice with the expected organic
// matter impact for a crop family.
type residueGuidance struct {
	residue       string
	organicMatter string
}

var familyResidueGuidance = map[agronomy.CropFamily]residueGuidance{
	agronomy.FamilyCereals: {
		residue:       "Incorporate straw into soil or use as mulch. Rice straw can be used for mushroom cultivation. Wheat stubble should be chopped and incorporated.",
		organicMatter: "High organic matter addition. Rice straw adds silica; wheat straw adds carbon. Expected OM increase: 0.3-0.5% per season.",
	},
	agronomy.FamilyLegumes: {
		residue:       "Legume residues are nitrogen-rich. Incorporate residues after partial decomposition. Can be used as green manure for next crop.",
		organicMatter: "Nitrogen fixation plus organic matter. Expected OM increase: 0.4-0.6% per season. Improves soil nitrogen status.",
	},
	agronomy.FamilyBrassicas: {
		residue:       "Heavy residue from brassicas. Chop and incorporate with adequate moisture. May require additional nitrogen for decomposition.",
		organicMatter: "Moderate organic matter. Fast decomposition. Expected OM increase: 0.2-0.4%.",
	},
	agronomy.FamilySolanaceous: {
		residue:       "Moderate residue. Incorporate into soil. Remove diseased plant material to prevent carryover.",
		organicMatter: "Moderate organic matter addition. Expected OM increase: 0.2-0.3%.",
	},
	agronomy.FamilyCucurbits: {
		residue:       "Rapid decomposition. Incorporate residues. Vine material provides good organic matter.",
		organicMatter: "Good organic matter from vines. Expected OM increase: 0.3-0.5%.",
	},
	agronomy.FamilyRootTubers: {
		residue:       "Tuber residues decompose quickly. Incorporate tops into soil. Leave tubers for soil structure.",
		organicMatter: "Moderate from tops, improves soil structure. Expected OM increase: 0.2-0.4%.",
	},
	agronomy.FamilyFiber: {
		residue:       "Cotton stalks should be destroyed or incorporated. Avoid leaving residue that harbors pests.",
		organicMatter: "Variable organic matter. Cotton adds minimal OM. Expected increase: 0.1-0.2%.",
	},
	agronomy.FamilyOilseeds: {
		residue:       "Oilseed residues are carbon-rich. Incorporate with care to avoid nitrogen immobilization.",
		organicMatter: "Moderate organic matter. Expected OM increase: 0.2-0.4%.",
	},
	agronomy.FamilySpices: {
		residue:       "Minimal residue. Incorporate any plant material. Some spices (turmeric, ginger) can be composted.",
		organicMatter: "Minimal organic matter addition. Expected OM increase: 0.1-0.2%.",
	},
	agronomy.FamilyFruits: {
		residue:       "Perennial crops have minimal seasonal residue. Prunings can be chipped and used as mulch.",
		organicMatter: "Minimal seasonal contribution. Prunings add small amounts of OM.",
	},
	agronomy.FamilyGreenManure: {
		residue:       "Ideally suited for incorporation. Incorporate at flowering stage for maximum nitrogen.",
		organicMatter: "Excellent organic matter addition. Expected OM increase: 0.5-1.0% per season.",
	},
	agronomy.FamilyFodder: {
		residue:       "Fodder residues decompose quickly. Incorporate or use as livestock bedding first.",
		organicMatter: "Good organic matter from multiple harvests. Expected OM increase: 0.4-0.6%.",
	},
}

// defaultResidueGuidance covers families without a specific entry.
var defaultResidueGuidance = residueGuidance{
	residue:       "Incorporate crop residues into soil. Ensure adequate moisture for decomposition. Consider composting if residues are heavy.",
	organicMatter: "Expected organic matter increase: 0.2-0.4% per season. Actual impact depends on residue quantity and decomposition conditions.",
}

// fallbackZone supplies default patterns for unrecognized zones.
const fallbackZone = "Indo-Gangetic Plains"

// zoneDefaultPatterns maps each agro-climatic zone to rotation sequences
// proven in that zone, as compiled from state agricultural university
// package-of-practices bulletins.
var zoneDefaultPatterns = map[string][][]string{
	"Trans Himalayan Zone": {
		{"Wheat", "Mustard", "Peas"},
		{"Wheat", "Potato", "Peas"},
		{"Barley", "Mustard", "Greengram"},
	},
	"Himalayan Zone": {
		{"Rice", "Wheat", "Greengram"},
		{"Maize", "Wheat", "Lentil"},
		{"Rice", "Peas", "Sesame"},
	},
	"Indo-Gangetic Plains": {
		{"Rice", "Wheat", "Greengram"},
		{"Rice", "Wheat", "Mustard"},
		{"Maize", "Wheat", "Lentil"},
		{"Rice", "Potato", "Cowpea"},
	},
	"Eastern Plateau and Hills": {
		{"Rice", "Lentil", "Sesame"},
		{"Maize", "Lentil", "Greengram"},
		{"Rice", "Peas", "Sunflower"},
	},
	"Central Plateau and Hills": {
		{"Soybean", "Wheat", "Chickpea"},
		{"Sorghum", "Wheat", "Mustard"},
		{"Rice", "Chickpea", "Sesame"},
	},
	"Western Plateau and Hills": {
		{"Cotton", "Wheat", "Greengram"},
		{"Sorghum", "Wheat", "Chickpea"},
		{"Soybean", "Wheat", "Mustard"},
	},
	"Southern Plateau and Hills": {
		{"Rice", "Groundnut", "Sunflower"},
		{"Maize", "Groundnut", "Sunflower"},
		{"Cotton", "Groundnut", "Sesame"},
	},
	"East Coast Plains and Hills": {
		{"Rice", "Groundnut", "Sesame"},
		{"Rice", "Blackgram", "Sunflower"},
		{"Maize", "Groundnut", "Greengram"},
	},
	"West Coast Plains and Hills": {
		{"Rice", "Groundnut", "Sesame"},
		{"Coconut", "Banana", "Pepper"},
		{"Rice", "Blackgram", "Sunflower"},
	},
	"Gujarat Plains and Hills": {
		{"Cotton", "Wheat", "Mustard"},
		{"Groundnut", "Wheat", "Sesame"},
		{"Pearl Millet", "Wheat", "Chickpea"},
	},
	"Western Dry Region": {
		{"Pearl Millet", "Wheat", "Mustard"},
		{"Sorghum", "Wheat", "Chickpea"},
		{"Pearl Millet", "Cluster Bean", "Sesame"},
	},
	"Island Region": {
		{"Rice", "Groundnut", "Sesame"},
		{"Rice", "Blackgram", "Sunflower"},
		{"Coconut", "Banana", "Taro"},
	},
}

// familySoilScore rates a family's soil health contribution inside a default
// rotation pattern.
var familySoilScore = map[agronomy.CropFamily]float64{
	agronomy.FamilyLegumes:     90,
	agronomy.FamilyGreenManure: 95,
	agronomy.FamilyCereals:     70,
	agronomy.FamilyBrassicas:   65,
	agronomy.FamilyOilseeds:    72,
	agronomy.FamilyRootTubers:  75,
	agronomy.FamilyOther:       65,
}

// defaultFamilySoilScore covers families without a specific entry.
const defaultFamilySoilScore = 68
