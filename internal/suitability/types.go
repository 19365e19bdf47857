// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package suitability

import "strings"

// IrrigationType identifies the farmer's water source.
type IrrigationType string

const (
	IrrigationRainfed   IrrigationType = "RAINFED"
	IrrigationDrip      IrrigationType = "DRIP"
	IrrigationSprinkler IrrigationType = "SPRINKLER"
	IrrigationCanal     IrrigationType = "CANAL"
	IrrigationBorewell  IrrigationType = "BOREWELL"
	IrrigationMixed     IrrigationType = "MIXED"
)

// ParseIrrigation normalizes an irrigation string. Unrecognized values
// return ok=false; callers treat that as "no adjustment".
func ParseIrrigation(s string) (IrrigationType, bool) {
	switch t := IrrigationType(strings.ToUpper(strings.TrimSpace(s))); t {
	case IrrigationRainfed, IrrigationDrip, IrrigationSprinkler,
		IrrigationCanal, IrrigationBorewell, IrrigationMixed:
		return t, true
	default:
		return t, false
	}
}

// Classification bands a crop's overall suitability score.
type Classification string

const (
	HighlySuitable     Classification = "HIGHLY_SUITABLE"
	Suitable           Classification = "SUITABLE"
	MarginallySuitable Classification = "MARGINALLY_SUITABLE"
	NotSuitable        Classification = "NOT_SUITABLE"
)

// Classify maps an overall score to its classification band. Bands are
// closed on the lower bound and open on the upper: [80,∞) HIGHLY_SUITABLE,
// [60,80) SUITABLE, [40,60) MARGINALLY_SUITABLE, below 40 NOT_SUITABLE.
func Classify(score float64) Classification {
	switch {
	case score >= 80:
		return HighlySuitable
	case score >= 60:
		return Suitable
	case score >= 40:
		return MarginallySuitable
	default:
		return NotSuitable
	}
}

// Row is one per-(zone, crop) reference record from the GAEZ dataset. All
// component scores sit on a 0-100 scale. Optional measurements are pointers;
// nil means the dataset carries no figure for this crop.
type Row struct {
	CropCode      string `json:"crop_code"`
	CropName      string `json:"crop_name"`
	CropNameLocal string `json:"crop_name_local,omitempty"`
	ZoneCode      string `json:"zone_code"`

	ClimateScore float64 `json:"climate_score"`
	SoilScore    float64 `json:"soil_score"`
	TerrainScore float64 `json:"terrain_score"`
	WaterScore   float64 `json:"water_score"`

	RainfedYieldKgHa   *float64 `json:"rainfed_yield_kg_ha,omitempty"`
	IrrigatedYieldKgHa *float64 `json:"irrigated_yield_kg_ha,omitempty"`
	WaterRequirementMm *float64 `json:"water_requirement_mm,omitempty"`
	GrowingSeasonDays  *int     `json:"growing_season_days,omitempty"`

	KharifSuitable bool `json:"kharif_suitable"`
	RabiSuitable   bool `json:"rabi_suitable"`
	ZaidSuitable   bool `json:"zaid_suitable"`

	// ClimateRiskLevel is the dataset's coarse LOW/MEDIUM/HIGH label.
	ClimateRiskLevel string `json:"climate_risk_level,omitempty"`
}

// ScoredCrop is one scored, classified output of the scorer.
type ScoredCrop struct {
	CropCode      string `json:"crop_code"`
	CropName      string `json:"crop_name"`
	CropNameLocal string `json:"crop_name_local,omitempty"`

	// Component scores after irrigation and soil-health adjustment.
	ClimateScore float64 `json:"climate_score"`
	SoilScore    float64 `json:"soil_score"`
	TerrainScore float64 `json:"terrain_score"`
	WaterScore   float64 `json:"water_score"`

	// OverallScore is the convex weighted combination of the adjusted
	// components; always within [min(components), max(components)].
	OverallScore   float64        `json:"overall_score"`
	Classification Classification `json:"classification"`

	// Yield projection scaled by the overall score. Nil when the reference
	// row carries no potential yield.
	YieldMinKgHa      *float64 `json:"yield_min_kg_ha,omitempty"`
	YieldExpectedKgHa *float64 `json:"yield_expected_kg_ha,omitempty"`
	YieldMaxKgHa      *float64 `json:"yield_max_kg_ha,omitempty"`

	WaterRequirementMm *float64 `json:"water_requirement_mm,omitempty"`
	GrowingSeasonDays  *int     `json:"growing_season_days,omitempty"`

	KharifSuitable bool `json:"kharif_suitable"`
	RabiSuitable   bool `json:"rabi_suitable"`
	ZaidSuitable   bool `json:"zaid_suitable"`

	ClimateRiskLevel string `json:"climate_risk_level,omitempty"`
}
