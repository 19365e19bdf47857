// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package suitability scores crops against GAEZ reference data for one
// agro-ecological zone. Scoring is a pure function: reference rows plus the
// farmer's irrigation type and optional soil test produce classified,
// descending-sorted suitability results.
package suitability

import (
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Component weights for the overall score. They intentionally sum to 0.90
// (soil health contributes the remainder through the soil component), so the
// combination divides by weightTotal to stay a convex mix. That keeps the
// overall score inside [min(components), max(components)].
const (
	weightClimate = 0.30
	weightSoil    = 0.25
	weightTerrain = 0.15
	weightWater   = 0.20
	weightTotal   = weightClimate + weightSoil + weightTerrain + weightWater
)

// MinThreshold is the overall score below which a crop is dropped from
// recommendations entirely.
const MinThreshold = 40.0

// Soil-health adjustment bounds. Individual nutrient bands sum into a single
// delta applied to the soil component.
const (
	soilAdjustmentMin = -15.0
	soilAdjustmentMax = 10.0
)

// ScoreRows scores every reference row: the water component is adjusted for
// the irrigation type, the soil component for the optional soil test, the
// adjusted components are combined into an overall score and classified, and
// crops scoring under MinThreshold are dropped. The survivors return
// stable-sorted descending by overall score.
//
// nil input returns nil; empty input returns empty. Rows with crop codes the
// engine has never seen score normally from their own values.
func ScoreRows(rows []Row, irrigation IrrigationType, soil *agronomy.SoilHealthSnapshot) []ScoredCrop {
	if rows == nil {
		return nil
	}

	scored := make([]ScoredCrop, 0, len(rows))
	for _, row := range rows {
		crop := scoreRow(row, irrigation, soil)
		if crop.OverallScore < MinThreshold {
			continue
		}
		scored = append(scored, crop)
	}

	return ranking.Descending(scored, func(c ScoredCrop) float64 { return c.OverallScore })
}

// FilterBySeason keeps rows flagged suitable for the season. An unrecognized
// or empty season keeps everything.
func FilterBySeason(rows []Row, season agronomy.Season) []Row {
	switch season {
	case agronomy.SeasonKharif:
		return ranking.Filter(rows, func(r Row) bool { return r.KharifSuitable })
	case agronomy.SeasonRabi:
		return ranking.Filter(rows, func(r Row) bool { return r.RabiSuitable })
	case agronomy.SeasonZaid:
		return ranking.Filter(rows, func(r Row) bool { return r.ZaidSuitable })
	default:
		return rows
	}
}

func scoreRow(row Row, irrigation IrrigationType, soil *agronomy.SoilHealthSnapshot) ScoredCrop {
	climate := clamp(row.ClimateScore, 0, 100)
	terrain := clamp(row.TerrainScore, 0, 100)
	water := clamp(row.WaterScore+WaterAdjustment(irrigation), 0, 100)

	soilScore := clamp(row.SoilScore, 0, 100)
	if soil != nil {
		soilScore = clamp(soilScore+SoilAdjustment(soil), 0, 100)
	}

	overall := combine(climate, soilScore, terrain, water)

	crop := ScoredCrop{
		CropCode:           row.CropCode,
		CropName:           row.CropName,
		CropNameLocal:      row.CropNameLocal,
		ClimateScore:       climate,
		SoilScore:          soilScore,
		TerrainScore:       terrain,
		WaterScore:         water,
		OverallScore:       overall,
		Classification:     Classify(overall),
		WaterRequirementMm: row.WaterRequirementMm,
		GrowingSeasonDays:  row.GrowingSeasonDays,
		KharifSuitable:     row.KharifSuitable,
		RabiSuitable:       row.RabiSuitable,
		ZaidSuitable:       row.ZaidSuitable,
		ClimateRiskLevel:   row.ClimateRiskLevel,
	}

	if potential := potentialYield(row, irrigation); potential != nil {
		factor := overall / 100
		crop.YieldMinKgHa = ptr(*potential * factor * 0.7)
		crop.YieldExpectedKgHa = ptr(*potential * factor * 0.85)
		crop.YieldMaxKgHa = ptr(*potential * factor)
	}

	return crop
}

// WaterAdjustment returns the water-component delta for an irrigation type:
// drip +5, rain-fed -10, everything else 0.
func WaterAdjustment(irrigation IrrigationType) float64 {
	switch irrigation {
	case IrrigationDrip:
		return 5
	case IrrigationRainfed:
		return -10
	default:
		return 0
	}
}

// SoilAdjustment converts a soil test into a delta for the soil component.
// Each reported nutrient is banded against Soil Health Card norms: rich
// bands add, deficient bands subtract, untested fields contribute nothing.
// The sum is clamped to [-15, +10].
func SoilAdjustment(soil *agronomy.SoilHealthSnapshot) float64 {
	if soil == nil {
		return 0
	}

	adj := 0.0

	if n := soil.NitrogenKgHa; n != nil {
		switch {
		case *n >= agronomy.SoilHighNitrogenKgHa:
			adj += 5
		case *n >= agronomy.SoilTargetNitrogenKgHa:
			// adequate
		default:
			adj -= 5
		}
	}
	if p := soil.PhosphorusKgHa; p != nil {
		switch {
		case *p >= agronomy.SoilHighPhosphorusKgHa:
			adj += 5
		case *p >= agronomy.SoilTargetPhosphorusKgHa:
		default:
			adj -= 5
		}
	}
	if k := soil.PotassiumKgHa; k != nil {
		switch {
		case *k >= agronomy.SoilHighPotassiumKgHa:
			adj += 5
		case *k >= agronomy.SoilTargetPotassiumKgHa:
		default:
			adj -= 5
		}
	}
	if s := soil.SulfurPpm; s != nil && *s < agronomy.SoilTargetSulfurPpm {
		adj -= 2
	}
	if zn := soil.ZincPpm; zn != nil && *zn < agronomy.SoilTargetZincPpm {
		adj -= 3
	}
	if fe := soil.IronPpm; fe != nil && *fe < agronomy.SoilTargetIronPpm {
		adj -= 2
	}
	if ph := soil.PH; ph != nil {
		switch {
		case *ph >= agronomy.PHIdealMin && *ph <= agronomy.PHIdealMax:
			adj += 5
		case *ph >= agronomy.PHTolerableMin && *ph <= agronomy.PHTolerableMax:
		default:
			adj -= 5
		}
	}

	return clamp(adj, soilAdjustmentMin, soilAdjustmentMax)
}

// combine folds the four adjusted components into the overall score as a
// convex combination.
func combine(climate, soil, terrain, water float64) float64 {
	weighted := climate*weightClimate + soil*weightSoil + terrain*weightTerrain + water*weightWater
	return weighted / weightTotal
}

// potentialYield picks the reference potential matching the irrigation
// regime, falling back to whichever figure exists.
func potentialYield(row Row, irrigation IrrigationType) *float64 {
	if irrigation == IrrigationRainfed {
		if row.RainfedYieldKgHa != nil {
			return row.RainfedYieldKgHa
		}
		return row.IrrigatedYieldKgHa
	}
	if row.IrrigatedYieldKgHa != nil {
		return row.IrrigatedYieldKgHa
	}
	return row.RainfedYieldKgHa
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 { return &v }
