// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import (
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

// SequenceSeparator joins the crops of a multi-season sequence and splits
// them back for season scheduling.
const SequenceSeparator = " -> "

// HistoryEntry is one season of a farmer's cropping record. CropName,
// Season, and the dates come from the caller; Family, RootDepth, and
// SeasonOrder are filled in during analysis.
type HistoryEntry struct {
	// CropName is the crop grown, e.g. "Rice".
	CropName string `json:"crop_name"`
	// Season is the cropping season the entry belongs to, e.g. "KHARIF".
	Season string `json:"season,omitempty"`
	// SowingDate orders entries; entries without one are ignored.
	SowingDate time.Time `json:"sowing_date"`
	// HarvestDate is informational and may be zero.
	HarvestDate time.Time `json:"harvest_date"`

	// Family is the resolved crop family, set during analysis.
	Family agronomy.CropFamily `json:"crop_family,omitempty"`
	// RootDepth is the family's typical rooting depth, set during analysis.
	RootDepth agronomy.RootDepth `json:"root_depth,omitempty"`
	// SeasonOrder numbers the analyzed entries from 1 (most recent).
	SeasonOrder int `json:"season_order,omitempty"`
}

// DepletionLevel grades how urgent a nutrient depletion risk is.
type DepletionLevel string

const (
	DepletionLow      DepletionLevel = "LOW"
	DepletionMedium   DepletionLevel = "MEDIUM"
	DepletionHigh     DepletionLevel = "HIGH"
	DepletionCritical DepletionLevel = "CRITICAL"
)

// String implements fmt.Stringer.
func (l DepletionLevel) String() string { return string(l) }

// baseSeverity anchors the numeric severity score for the level.
func (l DepletionLevel) baseSeverity() float64 {
	switch l {
	case DepletionCritical:
		return 90
	case DepletionHigh:
		return 70
	case DepletionMedium:
		return 50
	default:
		return 25
	}
}

// DepletionRisk flags a nutrient drawdown caused by repeated planting of one
// crop family.
type DepletionRisk struct {
	// Family is the repeated crop family.
	Family agronomy.CropFamily `json:"family"`
	// FamilyName is the family's display name.
	FamilyName string `json:"family_name"`
	// Level grades the urgency of the risk.
	Level DepletionLevel `json:"level"`
	// Description explains the pattern and its root-depth impact.
	Description string `json:"description"`
	// AffectedNutrients lists the nutrients the family draws down hardest.
	AffectedNutrients string `json:"affected_nutrients"`
	// ConsecutiveSeasons is the length of the repeated run.
	ConsecutiveSeasons int `json:"consecutive_seasons"`
	// AffectedCrops names the crops in the run, most recent first.
	AffectedCrops []string `json:"affected_crops"`
	// Recommendation advises how to break the pattern.
	Recommendation string `json:"recommendation"`
	// SeverityScore is a 0-100 urgency score derived from Level and run
	// length.
	SeverityScore float64 `json:"severity_score"`
}

// Summary condenses the rotation quality of the analyzed window.
type Summary struct {
	// DominantFamily is the display name of the most frequent family, or
	// empty when no history was analyzed.
	DominantFamily string `json:"dominant_family,omitempty"`
	// ConsecutiveMonocultureSeasons is the longest same-family run.
	ConsecutiveMonocultureSeasons int `json:"consecutive_monoculture_seasons"`
	// RotationPattern is a one-line verdict on the rotation quality.
	RotationPattern string `json:"rotation_pattern"`
	// NutrientBalance assesses nutrient cycling across the window.
	NutrientBalance string `json:"nutrient_balance"`
	// PestDiseaseRisk grades pest and disease carryover pressure.
	PestDiseaseRisk string `json:"pest_disease_risk"`
	// HasGoodRotation is true when no family repeats in adjacent seasons.
	HasGoodRotation bool `json:"has_good_rotation"`
	// HasNutrientDepletionRisk is true when any depletion risk was found.
	HasNutrientDepletionRisk bool `json:"has_nutrient_depletion_risk"`
}

// Analysis is the output of AnalyzeHistory.
type Analysis struct {
	// HasSufficientHistory is true when at least two seasons were analyzed.
	HasSufficientHistory bool `json:"has_sufficient_history"`
	// SeasonsAnalyzed counts the entries in the analyzed window.
	SeasonsAnalyzed int `json:"seasons_analyzed"`
	// History is the analyzed window, most recent first, enriched with
	// family, root depth, and season order.
	History []HistoryEntry `json:"history"`
	// DepletionRisks lists nutrient depletion risks, most recent run first.
	DepletionRisks []DepletionRisk `json:"depletion_risks"`
	// Summary condenses the rotation quality.
	Summary Summary `json:"summary"`
	// Recommendations are generated advice lines.
	Recommendations []string `json:"recommendations"`
}

// Option is one candidate rotation plan with component benefit scores.
type Option struct {
	// ID uniquely identifies the option.
	ID string `json:"id"`
	// CropSequence is the plan, e.g. "Rice -> Greengram" or
	// "Rice (relay with Lentil)". Multi-season sequences join crops with
	// SequenceSeparator.
	CropSequence string `json:"crop_sequence"`
	// Description explains the strategy behind the option.
	Description string `json:"description"`

	// SoilHealthBenefit scores the expected soil improvement (0-100).
	SoilHealthBenefit float64 `json:"soil_health_benefit"`
	// ClimateResilience scores weather robustness (0-100).
	ClimateResilience float64 `json:"climate_resilience"`
	// EconomicViability scores expected market return (0-100).
	EconomicViability float64 `json:"economic_viability"`
	// NutrientCyclingScore scores nutrient use across soil layers (0-100).
	NutrientCyclingScore float64 `json:"nutrient_cycling_score"`
	// PestManagementScore scores pest and disease cycle breaking (0-100).
	PestManagementScore float64 `json:"pest_management_score"`
	// WaterUsageScore scores water efficiency (0-100).
	WaterUsageScore float64 `json:"water_usage_score"`
	// OverallBenefitScore is the weighted composite used for ranking.
	OverallBenefitScore float64 `json:"overall_benefit_score"`

	// KharifCrop, RabiCrop, and ZaidCrop assign the sequence crops to
	// seasons in order.
	KharifCrop string `json:"kharif_crop,omitempty"`
	RabiCrop   string `json:"rabi_crop,omitempty"`
	ZaidCrop   string `json:"zaid_crop,omitempty"`

	// Benefits lists what the plan delivers.
	Benefits []string `json:"benefits"`
	// Considerations lists what the farmer must weigh before adopting it.
	Considerations []string `json:"considerations"`
	// ResidueManagement advises on handling crop residues.
	ResidueManagement string `json:"residue_management,omitempty"`
	// OrganicMatterImpact estimates the plan's organic matter contribution.
	OrganicMatterImpact string `json:"organic_matter_impact,omitempty"`
}

// PestRisk grades the pest carryover pressure of a cropping history.
type PestRisk string

const (
	PestRiskLow    PestRisk = "LOW"
	PestRiskMedium PestRisk = "MEDIUM"
	PestRiskHigh   PestRisk = "HIGH"
)

// String implements fmt.Stringer.
func (r PestRisk) String() string { return string(r) }

// ScheduleInfo gives the planting and harvest windows for a season.
type ScheduleInfo struct {
	// PlantingMonths is the sowing window, e.g. "June - July".
	PlantingMonths string `json:"planting_months"`
	// HarvestMonths is the harvest window, e.g. "September - October".
	HarvestMonths string `json:"harvest_months"`
}

// Result is the full output of the rotation engine for one request.
type Result struct {
	// TargetSeason is the normalized season the recommendation targets.
	TargetSeason string `json:"target_season,omitempty"`
	// SeasonSchedule gives the planting and harvest windows for
	// TargetSeason.
	SeasonSchedule ScheduleInfo `json:"season_schedule"`
	// Options are the candidate rotation plans, best first.
	Options []Option `json:"options"`
	// DefaultPatterns are zone-proven fallback rotations, attached by the
	// ranker.
	DefaultPatterns []Option `json:"default_patterns,omitempty"`
	// Warnings flag pest carryover and monoculture hazards.
	Warnings []string `json:"warnings,omitempty"`
	// Recommendations are general rotation advice lines.
	Recommendations []string `json:"recommendations,omitempty"`
	// HasRiceBasedSystem is true when rice or paddy appears in the history.
	HasRiceBasedSystem bool `json:"has_rice_based_system"`
	// PestRiskLevel grades carryover pressure from the history.
	PestRiskLevel PestRisk `json:"pest_risk_level"`
}
