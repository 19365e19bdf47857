// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package climate

// RiskLevel grades overall climate risk for a crop in a zone.
type RiskLevel string

const (
	// RiskLow indicates no meaningful climate threat to the crop.
	RiskLow RiskLevel = "LOW"
	// RiskMedium indicates manageable risk with standard practices.
	RiskMedium RiskLevel = "MEDIUM"
	// RiskHigh indicates significant risk warranting mitigation and insurance.
	RiskHigh RiskLevel = "HIGH"
	// RiskVeryHigh indicates severe risk where the crop choice itself
	// should be reconsidered.
	RiskVeryHigh RiskLevel = "VERY_HIGH"
)

// String returns the wire form of the risk level.
func (r RiskLevel) String() string { return string(r) }

// Severe reports whether the level calls for insurance and active mitigation.
func (r RiskLevel) Severe() bool { return r == RiskHigh || r == RiskVeryHigh }

// DroughtRisk grades a crop's drought exposure, escalated under
// rainfall-deficit scenarios.
type DroughtRisk string

const (
	DroughtLow      DroughtRisk = "LOW"
	DroughtModerate DroughtRisk = "MODERATE"
	DroughtHigh     DroughtRisk = "HIGH"
	DroughtSevere   DroughtRisk = "SEVERE"
)

// String returns the wire form of the drought risk.
func (d DroughtRisk) String() string { return string(d) }

// FloodRisk grades a crop's flood and waterlogging exposure, escalated
// under rainfall-excess scenarios.
type FloodRisk string

const (
	FloodLow      FloodRisk = "LOW"
	FloodModerate FloodRisk = "MODERATE"
	FloodHigh     FloodRisk = "HIGH"
	FloodSevere   FloodRisk = "SEVERE"
)

// String returns the wire form of the flood risk.
func (f FloodRisk) String() string { return string(f) }

// ScenarioType classifies a projected rainfall deviation.
type ScenarioType string

const (
	// ScenarioNormal covers deviations within the -20% to +20% band.
	ScenarioNormal ScenarioType = "NORMAL"
	// ScenarioDeficit covers deviations at or below -20%.
	ScenarioDeficit ScenarioType = "DEFICIT"
	// ScenarioExcess covers deviations at or above +20%.
	ScenarioExcess ScenarioType = "EXCESS"
)

// String returns the wire form of the scenario type.
func (s ScenarioType) String() string { return string(s) }

// RainfallScenario describes the projected rainfall deviation and its
// expected consequences for the crop.
type RainfallScenario struct {
	// HistoricalAverageMm is the midpoint of the crop's viable rainfall range.
	HistoricalAverageMm float64 `json:"historical_average_mm"`
	// ProjectedDeviationPercent is the forecast deviation from the
	// historical average, negative for deficit.
	ProjectedDeviationPercent float64 `json:"projected_deviation_percent"`
	// ScenarioType classifies the deviation band.
	ScenarioType ScenarioType `json:"scenario_type"`
	// YieldImpactPercent is the expected yield change, negative for loss.
	YieldImpactPercent float64 `json:"yield_impact_percent"`
	// Probability is the likelihood of the scenario materializing (percent).
	Probability float64 `json:"probability"`
	// RiskLevel grades the scenario in isolation.
	RiskLevel RiskLevel `json:"risk_level"`
}

// TemperatureStress projects extreme heat and cold exposure for the
// crop under a temperature deviation.
type TemperatureStress struct {
	// OptimalTempMinC is the lower bound of the crop's optimal range.
	OptimalTempMinC float64 `json:"optimal_temp_min_c"`
	// OptimalTempMaxC is the upper bound of the crop's optimal range.
	OptimalTempMaxC float64 `json:"optimal_temp_max_c"`
	// HeatStressThresholdC is the temperature above which heat stress sets in.
	HeatStressThresholdC float64 `json:"heat_stress_threshold_c"`
	// ColdStressThresholdC is the temperature below which cold stress sets in.
	ColdStressThresholdC float64 `json:"cold_stress_threshold_c"`
	// ProjectedDeviationC is the forecast shift applied to both range bounds.
	ProjectedDeviationC float64 `json:"projected_deviation_c"`
	// ExtremeHeatDays estimates days above the heat threshold, capped at 30.
	ExtremeHeatDays int `json:"extreme_heat_days"`
	// ExtremeColdDays estimates days below the cold threshold, capped at 30.
	ExtremeColdDays int `json:"extreme_cold_days"`
	// RiskLevel grades the stress in isolation.
	RiskLevel RiskLevel `json:"risk_level"`
}

// Assessment is the complete climate risk picture for one crop under
// one deviation scenario.
type Assessment struct {
	// CropCode is the canonical uppercase crop identifier.
	CropCode string `json:"crop_code"`
	// CropName is the display name for the crop.
	CropName string `json:"crop_name"`
	// RiskLevel is the overall graded risk.
	RiskLevel RiskLevel `json:"risk_level"`
	// RiskScore is the raw 0-100 score behind the level.
	RiskScore float64 `json:"risk_score"`
	// RainfallScenario is the rainfall deviation analysis.
	RainfallScenario RainfallScenario `json:"rainfall_scenario"`
	// TemperatureStress is the temperature deviation analysis.
	TemperatureStress TemperatureStress `json:"temperature_stress"`
	// DroughtRisk is the scenario-adjusted drought exposure.
	DroughtRisk DroughtRisk `json:"drought_risk"`
	// FloodRisk is the scenario-adjusted flood exposure.
	FloodRisk FloodRisk `json:"flood_risk"`
	// KeyRisks lists the specific threats identified for this scenario.
	KeyRisks []string `json:"key_risks"`
	// MitigationStrategies lists recommended countermeasures, never empty.
	MitigationStrategies []string `json:"mitigation_strategies"`
	// ResilientVarieties lists stress-tolerant cultivars, never empty.
	ResilientVarieties []string `json:"resilient_varieties"`
	// DiseaseSusceptibility lists diseases the crop is prone to under stress.
	DiseaseSusceptibility []string `json:"disease_susceptibility,omitempty"`
	// OptimalPlantingWindow is the advisory sowing window text.
	OptimalPlantingWindow string `json:"optimal_planting_window"`
	// InsuranceRecommended is true exactly when RiskLevel is HIGH or VERY_HIGH.
	InsuranceRecommended bool `json:"insurance_recommended"`
}
