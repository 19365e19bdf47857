// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package climate

// profile captures a crop's climate sensitivity envelope.
type profile struct {
	rainfallMinMm  float64
	rainfallMaxMm  float64
	tempMinC       float64
	tempMaxC       float64
	heatThresholdC float64
	coldThresholdC float64
	droughtRisk    DroughtRisk
	floodRisk      FloodRisk
	diseases       []string
	mitigations    []string
}

// cropProfiles keys canonical crop codes to their sensitivity envelope.
// Figures follow ICAR agro-advisory ranges for the major field crops.
var cropProfiles = map[string]profile{
	"RICE": {
		rainfallMinMm: 400, rainfallMaxMm: 2500,
		tempMinC: 20, tempMaxC: 35,
		heatThresholdC: 38, coldThresholdC: 10,
		droughtRisk: DroughtHigh, floodRisk: FloodHigh,
		diseases:    []string{"blast", "bacterial leaf blight"},
		mitigations: []string{"heat-tolerant varieties", "water management"},
	},
	"WHEAT": {
		rainfallMinMm: 250, rainfallMaxMm: 750,
		tempMinC: 10, tempMaxC: 25,
		heatThresholdC: 30, coldThresholdC: 5,
		droughtRisk: DroughtModerate, floodRisk: FloodLow,
		diseases:    []string{"rust", "heat stress"},
		mitigations: []string{"early sowing", "heat-tolerant varieties"},
	},
	"COTTON": {
		rainfallMinMm: 350, rainfallMaxMm: 750,
		tempMinC: 20, tempMaxC: 40,
		heatThresholdC: 38, coldThresholdC: 12,
		droughtRisk: DroughtModerate, floodRisk: FloodLow,
		diseases:    []string{"pink bollworm", "whitefly"},
		mitigations: []string{"Bt varieties", "IPM"},
	},
	"SOYBEAN": {
		rainfallMinMm: 300, rainfallMaxMm: 800,
		tempMinC: 15, tempMaxC: 35,
		heatThresholdC: 32, coldThresholdC: 8,
		droughtRisk: DroughtModerate, floodRisk: FloodModerate,
		diseases:    []string{"rust", "stem fly"},
		mitigations: []string{"drought-tolerant varieties", "timely sowing"},
	},
	"GROUNDNUT": {
		rainfallMinMm: 350, rainfallMaxMm: 500,
		tempMinC: 20, tempMaxC: 35,
		heatThresholdC: 38, coldThresholdC: 10,
		droughtRisk: DroughtHigh, floodRisk: FloodLow,
		diseases:    []string{"tikka disease", "rust"},
		mitigations: []string{"rain-fed varieties", "mulching"},
	},
	"MUSTARD": {
		rainfallMinMm: 200, rainfallMaxMm: 600,
		tempMinC: 10, tempMaxC: 30,
		heatThresholdC: 32, coldThresholdC: 5,
		droughtRisk: DroughtModerate, floodRisk: FloodLow,
		diseases:    []string{"alternaria blight", "white rust"},
		mitigations: []string{"early maturing varieties", "proper spacing"},
	},
	"PULSES": {
		rainfallMinMm: 250, rainfallMaxMm: 700,
		tempMinC: 15, tempMaxC: 35,
		heatThresholdC: 35, coldThresholdC: 8,
		droughtRisk: DroughtModerate, floodRisk: FloodLow,
		diseases:    []string{"wilt", "powdery mildew"},
		mitigations: []string{"drought-tolerant varieties", "seed treatment"},
	},
	"MAIZE": {
		rainfallMinMm: 400, rainfallMaxMm: 800,
		tempMinC: 15, tempMaxC: 38,
		heatThresholdC: 35, coldThresholdC: 8,
		droughtRisk: DroughtModerate, floodRisk: FloodModerate,
		diseases:    []string{"stem borer", "leaf blight"},
		mitigations: []string{"hybrid varieties", "timely irrigation"},
	},
	"SUGARCANE": {
		rainfallMinMm: 750, rainfallMaxMm: 1500,
		tempMinC: 20, tempMaxC: 35,
		heatThresholdC: 38, coldThresholdC: 10,
		droughtRisk: DroughtModerate, floodRisk: FloodHigh,
		diseases:    []string{"red rot", "wilt"},
		mitigations: []string{"drought-tolerant varieties", "trash mulching"},
	},
}

// defaultProfile covers crops without a dedicated sensitivity envelope.
var defaultProfile = profile{
	rainfallMinMm: 300, rainfallMaxMm: 800,
	tempMinC: 15, tempMaxC: 35,
	heatThresholdC: 35, coldThresholdC: 8,
	droughtRisk: DroughtModerate, floodRisk: FloodModerate,
}

// resilientVarieties keys crop codes to stress-tolerant cultivar suggestions.
var resilientVarieties = map[string][]string{
	"RICE":      {"DRR Dhan 44 (drought-tolerant)", "Swarna-Sub1 (flood-tolerant)"},
	"WHEAT":     {"HD-2967 (heat-tolerant)", "DBW-187 (drought-tolerant)"},
	"COTTON":    {"Bt hybrids (pest-resistant)", "Drought-tolerant Bt varieties"},
	"SOYBEAN":   {"JS-335 (early maturing)", "MACS-450 (drought-tolerant)"},
	"GROUNDNUT": {"TAG-24 (drought-tolerant)", "ICGS-44 (climate-resilient)"},
	"MUSTARD":   {"Varuna (heat-tolerant)", "RH-749 (drought-tolerant)"},
	"PULSES":    {"Drought-tolerant varieties", "Early maturing varieties"},
	"MAIZE":     {"Hybrid varieties (heat-tolerant)", "Quality protein maize"},
	"SUGARCANE": {"Co-86032 (drought-tolerant)", "Co-99004 (water-use efficient)"},
}

// fallbackVariety keeps the resilient-variety list non-empty for crops
// outside the curated catalog.
const fallbackVariety = "Locally recommended stress-tolerant varieties"

// fallbackMitigation keeps the mitigation list non-empty for low-risk
// scenarios where no specific countermeasure applies.
const fallbackMitigation = "Follow local agro-advisory bulletins for in-season guidance"

// plantingWindows keys crop codes to advisory sowing window text.
var plantingWindows = map[string]string{
	"RICE":      "Kharif: June-July (after monsoon onset)",
	"WHEAT":     "Rabi: October-November",
	"COTTON":    "Kharif: April-May",
	"SOYBEAN":   "Kharif: June-July",
	"GROUNDNUT": "Kharif: June-July, Rabi: October-November",
	"MUSTARD":   "Rabi: October-November",
	"PULSES":    "Kharif: June-July, Rabi: October-November",
	"MAIZE":     "Kharif: June-July, Zaid: February-March",
	"SUGARCANE": "October-November (planting), February-March (ratooning)",
}

// defaultPlantingWindow covers crops without a curated window.
const defaultPlantingWindow = "Consult local agricultural office"

// cropDisplayNames maps canonical codes to display names.
var cropDisplayNames = map[string]string{
	"RICE":      "Rice",
	"WHEAT":     "Wheat",
	"COTTON":    "Cotton",
	"SOYBEAN":   "Soybean",
	"GROUNDNUT": "Groundnut",
	"MUSTARD":   "Mustard",
	"PULSES":    "Pulses",
	"MAIZE":     "Maize",
	"SUGARCANE": "Sugarcane",
}

func profileFor(cropCode string) profile {
	if p, ok := cropProfiles[cropCode]; ok {
		return p
	}
	return defaultProfile
}

// DisplayName returns the human-readable name for a crop code, falling
// back to the code itself.
func DisplayName(cropCode string) string {
	if name, ok := cropDisplayNames[cropCode]; ok {
		return name
	}
	return cropCode
}

// PlantingWindow returns the advisory sowing window for a crop code.
func PlantingWindow(cropCode string) string {
	if w, ok := plantingWindows[cropCode]; ok {
		return w
	}
	return defaultPlantingWindow
}
