// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

// Per-crop climate resilience on a 0-100 scale. Dryland millets and sesame
// top the table; water- and temperature-sensitive horticulture sits at the
// bottom.
var climateResilience = map[string]float64{
	"Rice":          75,
	"Wheat":         65,
	"Maize":         80,
	"Sorghum":       85,
	"Pearl Millet":  90,
	"Finger Millet": 88,
	"Barley":        70,
	"Greengram":     82,
	"Blackgram":     80,
	"Redgram":       78,
	"Chickpea":      75,
	"Lentil":        72,
	"Peas":          70,
	"Groundnut":     77,
	"Soybean":       78,
	"Mustard":       76,
	"Sunflower":     80,
	"Sesame":        85,
	"Cotton":        72,
	"Sugarcane":     68,
	"Potato":        65,
	"Tomato":        70,
	"Onion":         68,
	"Cabbage":       65,
	"Cauliflower":   64,
	"Carrot":        70,
	"Banana":        62,
	"Mango":         60,
	"Citrus":        65,
	"Turmeric":      72,
	"Ginger":        70,
}

// Per-crop economic viability on a 0-100 scale, reflecting typical market
// realization relative to cultivation cost.
var economicViability = map[string]float64{
	"Rice":          85,
	"Wheat":         80,
	"Maize":         82,
	"Sorghum":       70,
	"Pearl Millet":  65,
	"Finger Millet": 72,
	"Barley":        68,
	"Greengram":     78,
	"Blackgram":     76,
	"Redgram":       80,
	"Chickpea":      75,
	"Lentil":        73,
	"Peas":          77,
	"Groundnut":     82,
	"Soybean":       78,
	"Mustard":       76,
	"Sunflower":     79,
	"Sesame":        75,
	"Cotton":        88,
	"Sugarcane":     85,
	"Potato":        84,
	"Tomato":        86,
	"Onion":         83,
	"Cabbage":       75,
	"Cauliflower":   76,
	"Carrot":        78,
	"Banana":        90,
	"Mango":         92,
	"Citrus":        85,
	"Turmeric":      88,
	"Ginger":        90,
}

// ClimateResilienceScore returns the climate resilience rating for a crop.
// Unlisted crops rate 70; an empty name rates 65.
func ClimateResilienceScore(crop string) float64 {
	if crop == "" {
		return 65
	}
	if s, ok := climateResilience[crop]; ok {
		return s
	}
	return 70
}

// EconomicViabilityScore returns the economic viability rating for a crop.
// Unlisted crops rate 70; an empty name rates 65.
func EconomicViabilityScore(crop string) float64 {
	if crop == "" {
		return 65
	}
	if s, ok := economicViability[crop]; ok {
		return s
	}
	return 70
}
