// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package seed

// SeasonSuitability flags the cropping seasons a variety is released for.
type SeasonSuitability struct {
	Kharif bool `json:"kharif"`
	Rabi   bool `json:"rabi"`
	Zaid   bool `json:"zaid"`
}

// Variety describes one state-released seed variety.
type Variety struct {
	// ID uniquely identifies the variety, e.g. "RICE-UP-001".
	ID string `json:"variety_id"`
	// CropCode is the upper-case crop code the variety belongs to.
	CropCode string `json:"crop_code"`
	// CropName is the crop's display name.
	CropName string `json:"crop_name"`
	// Name is the released variety name, e.g. "PB-1509".
	Name string `json:"variety_name"`
	// LocalName is the variety name in the local script.
	LocalName string `json:"variety_name_local,omitempty"`
	// Institute is the releasing university or institute.
	Institute string `json:"releasing_institute"`
	// ReleaseYear is the year of official release.
	ReleaseYear int `json:"release_year"`
	// States lists the states the variety is recommended for.
	States []string `json:"recommended_states"`
	// Zones lists the agro-ecological zone codes the variety suits.
	Zones []string `json:"suitable_zones"`
	// Seasons flags the cropping seasons the variety is released for.
	Seasons SeasonSuitability `json:"season_suitability"`
	// MaturityDays is the duration from sowing to harvest.
	MaturityDays int `json:"maturity_days"`
	// AverageYieldQtlHa is the expected farm yield in quintals per hectare.
	AverageYieldQtlHa float64 `json:"average_yield_qtl_ha"`
	// PotentialYieldQtlHa is the yield ceiling under full management.
	PotentialYieldQtlHa float64 `json:"potential_yield_qtl_ha"`
	// Characteristics lists the variety's notable traits.
	Characteristics []string `json:"characteristics"`
	// DiseaseResistance lists resistances and tolerances to major diseases.
	DiseaseResistance []string `json:"disease_resistance"`
	// ClimateResilience lists climate stress traits in free text.
	ClimateResilience []string `json:"climate_resilience"`
	// WaterRequirementMm is the seasonal water need in millimeters.
	WaterRequirementMm float64 `json:"water_requirement_mm"`
	// DroughtTolerant marks varieties bred for moisture stress.
	DroughtTolerant bool `json:"drought_tolerant"`
	// FloodTolerant marks varieties bred for submergence or waterlogging.
	FloodTolerant bool `json:"flood_tolerant"`
	// HeatTolerant marks varieties bred for terminal heat stress.
	HeatTolerant bool `json:"heat_tolerant"`
	// SeedRateKgHa is the recommended sowing rate in kg per hectare.
	SeedRateKgHa float64 `json:"seed_rate_kg_ha"`
	// Spacing is the recommended planting geometry, e.g. "20cm x 15cm".
	Spacing string `json:"spacing"`
	// CultivationNotes carries any special cultivation guidance.
	CultivationNotes string `json:"cultivation_notes,omitempty"`
	// Available reports whether certified seed is currently in the chain.
	Available bool `json:"is_available"`
	// SeedCostPerKg is the approximate certified seed price in INR per kg.
	SeedCostPerKg float64 `json:"seed_cost_per_kg"`
}
