// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package fertilizer

// nutrientTarget is the recommended dose for one crop in kg/acre.
type nutrientTarget struct {
	nitrogenKg   float64
	phosphorusKg float64 // as P2O5
	potassiumKg  float64 // as K2O
}

// cropNutrientTargets holds recommended N-P2O5-K2O doses per acre, following
// state agricultural university package-of-practices figures.
var cropNutrientTargets = map[string]nutrientTarget{
	"RICE":      {60, 30, 30},
	"WHEAT":     {80, 40, 30},
	"COTTON":    {100, 50, 50},
	"SOYBEAN":   {20, 60, 20},
	"GROUNDNUT": {20, 40, 40},
	"MUSTARD":   {40, 20, 20},
	"PULSES":    {15, 40, 20},
	"MAIZE":     {80, 40, 30},
	"SUGARCANE": {150, 50, 100},
	"POTATO":    {100, 60, 100},
	"ONION":     {80, 40, 60},
	"TOMATO":    {100, 50, 50},
}

// defaultNutrientTarget serves crops absent from the table.
var defaultNutrientTarget = nutrientTarget{50, 25, 25}

// Secondary and micronutrient doses applied to every plan, kg/acre.
const (
	sulfurDoseKg = 15.0
	zincDoseKg   = 5.0
)

// composition is a product's nutrient content in percent.
type composition struct {
	nitrogenPct   float64
	phosphorusPct float64 // as P2O5
	potassiumPct  float64 // as K2O
}

// productCompositions holds the nutrient analysis of common products.
var productCompositions = map[string]composition{
	"UREA":           {46, 0, 0},
	"DAP":            {18, 46, 0},
	"MOP":            {0, 0, 60},
	"SSP":            {8, 16, 0},
	"NPK":            {10, 26, 26},
	"UREA_DAP_COMBO": {32, 23, 0},
}

// productCostsPerKg holds indicative retail prices in INR/kg.
var productCostsPerKg = map[string]float64{
	"UREA":           6,
	"DAP":            27,
	"MOP":            18,
	"SSP":            12,
	"NPK":            25,
	"UREA_DAP_COMBO": 15,
	"ZINC_SULFATE":   80,
	"BORAX":          120,
	"VERMICOMPOST":   8,
	"FYM":            2,
	"GREEN_MANURE":   3,
	"BIOFERTILIZER":  150,
}

// Zinc sulfate is dosed flat rather than by nutrient arithmetic.
const (
	zincSulfateDoseKgPerAcre = 25.0
	zincSulfateCostPerAcre   = 2000.0
)

// organicOption is a template for one organic substitution advisory.
type organicOption struct {
	typ               string
	name              string
	quantityKgPerAcre float64
	benefits          string
	applicationMethod string
	costPerAcre       float64
	notes             string
}

// organicOptions lists the advisory alternatives in presentation order.
var organicOptions = []organicOption{
	{
		typ:               "VERMICOMPOST",
		name:              "Vermicompost",
		quantityKgPerAcre: 2000,
		benefits:          "Improves soil structure, water holding capacity, and microbial activity",
		applicationMethod: "Apply and mix with soil before sowing",
		costPerAcre:       16000,
		notes:             "Can replace 25-50% of chemical fertilizer requirement",
	},
	{
		typ:               "FYM",
		name:              "Farm Yard Manure (FYM)",
		quantityKgPerAcre: 5000,
		benefits:          "Adds organic matter, improves soil fertility gradually",
		applicationMethod: "Apply 15-20 days before sowing and incorporate into soil",
		costPerAcre:       10000,
		notes:             "Well-decomposed FYM is recommended",
	},
	{
		typ:               "GREEN_MANURE",
		name:              "Green Manure (Sesbania/Dhaincha)",
		quantityKgPerAcre: 20,
		benefits:          "Fixes atmospheric nitrogen, adds organic matter, improves soil structure",
		applicationMethod: "Sow 6-8 weeks before main crop, incorporate at flowering",
		costPerAcre:       600,
		notes:             "Can provide 40-60 kg N per hectare",
	},
	{
		typ:               "BIOFERTILIZER",
		name:              "Biofertilizers (Rhizobium/PSM/Azotobacter)",
		quantityKgPerAcre: 2,
		benefits:          "Biological nitrogen fixation, phosphorus solubilization",
		applicationMethod: "Seed treatment or soil application",
		costPerAcre:       300,
		notes:             "Use with organic manures for best results",
	},
}
