// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package recommend

import (
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/climate"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/market"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/seed"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/suitability"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// Request is one crop recommendation call. Location is a zone code, a
// district+state pair, or GPS coordinates, in that order of precedence.
type Request struct {
	// ZoneCode selects a zone directly, skipping resolution.
	ZoneCode string `json:"zone_code,omitempty"`
	// District and State identify the farmer's location by name.
	District string `json:"district,omitempty" validate:"omitempty,min=2,max=100"`
	State    string `json:"state,omitempty" validate:"omitempty,min=2,max=100"`
	// Latitude and Longitude identify the location by GPS fix.
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`

	// Season restricts candidates to crops flagged for it. Empty keeps
	// all seasons.
	Season string `json:"season,omitempty" validate:"omitempty,season"`
	// Irrigation shifts the water component (see suitability).
	Irrigation string `json:"irrigation_type,omitempty" validate:"omitempty,irrigation"`

	// FarmerID pulls the stored soil health card when Soil is nil.
	FarmerID string `json:"farmer_id,omitempty"`
	// Soil overrides the stored card with inline readings.
	Soil *agronomy.SoilHealthSnapshot `json:"soil,omitempty"`

	// AreaAcres scales the economics attachments. Values at or below
	// zero mean one acre.
	AreaAcres float64 `json:"area_acres,omitempty"`

	// IncludeClimateRisk layers the climate assessment and its score
	// adjustment onto each crop.
	IncludeClimateRisk bool `json:"include_climate_risk,omitempty"`
	// RainfallDeviationPct is the forecast monsoon deviation; nil uses
	// the conservative planning default of -10.
	RainfallDeviationPct *float64 `json:"rainfall_deviation_pct,omitempty"`
	// TemperatureDeviationC is the forecast temperature shift.
	TemperatureDeviationC float64 `json:"temperature_deviation_c,omitempty"`

	// IncludeMarket layers mandi price data and the market adjustment.
	IncludeMarket bool `json:"include_market,omitempty"`

	// PreferredCrops get a +5 score nudge (clamped); ExcludedCrops are
	// removed before ranking. Matched by crop code, case-insensitive.
	PreferredCrops []string `json:"preferred_crops,omitempty"`
	ExcludedCrops  []string `json:"excluded_crops,omitempty"`

	// MinScore drops crops whose adjusted score falls below it.
	MinScore float64 `json:"min_score,omitempty" validate:"omitempty,min=0,max=100"`
	// MaxResults caps the final list; zero means no cap.
	MaxResults int `json:"max_results,omitempty" validate:"omitempty,min=1,max=50"`
}

// CropRecommendation is one ranked crop with its adjustments and
// attachments.
type CropRecommendation struct {
	suitability.ScoredCrop

	// Rank is the 1-based position in the final list.
	Rank int `json:"rank"`
	// AdjustedScore is the overall score after climate, market,
	// irrigation, soil, and preference adjustments.
	AdjustedScore float64 `json:"adjusted_score"`

	// ClimateRisk is present when the request asked for it.
	ClimateRisk *climate.Assessment `json:"climate_risk,omitempty"`
	// Market is present when the request asked for it and the crop
	// could be priced.
	Market *market.Snapshot `json:"market,omitempty"`

	// ExpectedYieldQtlAcre converts the expected yield to quintals per
	// acre for farmer-facing display.
	ExpectedYieldQtlAcre *float64 `json:"expected_yield_qtl_acre,omitempty"`
	// YieldGapQtlAcre is potential minus expected yield.
	YieldGapQtlAcre *float64 `json:"yield_gap_qtl_acre,omitempty"`
	// WaterRequirementLiters is the seasonal water need per acre.
	WaterRequirementLiters *float64 `json:"water_requirement_liters,omitempty"`

	// EstimatedInputCostPerAcre is the fertilizer plan cost in INR.
	EstimatedInputCostPerAcre float64 `json:"estimated_input_cost_per_acre"`
	// EstimatedNetProfitPerAcre is market revenue minus input cost,
	// present only when market data was requested and available.
	EstimatedNetProfitPerAcre *float64 `json:"estimated_net_profit_per_acre,omitempty"`

	// SeedVarieties are the catalog picks for this crop and state.
	SeedVarieties []seed.Variety `json:"seed_varieties,omitempty"`
}

// Response is the aggregator's answer. Success is false when the
// location resolved to no zone or the zone has no reference data; those
// are answers, not errors.
type Response struct {
	// RequestID is a fresh uuid per response, cache hits included.
	RequestID string `json:"request_id"`
	// Success is false for structured failures.
	Success bool `json:"success"`
	// Message explains an unsuccessful response.
	Message string `json:"message,omitempty"`

	// Echoed location input, for unsuccessful responses.
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`

	// Zone is the resolved zone on success.
	Zone *zone.Zone `json:"zone,omitempty"`
	// Season echoes the requested season filter.
	Season string `json:"season,omitempty"`

	// Recommendations is the ranked crop list.
	Recommendations []CropRecommendation `json:"recommendations"`

	// ClimateSummary counts crops per risk level when climate risk was
	// requested.
	ClimateSummary map[string]int `json:"climate_summary,omitempty"`
	// MarketAdvisories are cross-crop selling hints when market data
	// was requested.
	MarketAdvisories []string `json:"market_advisories,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
