// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package climate

import (
	"fmt"
	"sort"
)

// Deviation band boundaries, inclusive on both sides.
const (
	deficitThresholdPct = -20.0
	excessThresholdPct  = 20.0
	severeDeficitPct    = -30.0
	severeExcessPct     = 30.0
)

// maxStressDays caps the projected extreme heat and cold day counts.
const maxStressDays = 30

// Analyze assesses climate risk for one crop under projected rainfall
// and temperature deviations. Rainfall deviation is a percentage of the
// historical average, negative for deficit; temperature deviation is in
// degrees Celsius applied to both range bounds.
func Analyze(cropCode string, rainfallDeviationPct, tempDeviationC float64) Assessment {
	p := profileFor(cropCode)

	rainfall := rainfallScenario(p, rainfallDeviationPct)
	temp := temperatureStress(p, tempDeviationC)

	score := riskScore(rainfall, temp, p)
	level := riskLevelFor(score)

	return Assessment{
		CropCode:              cropCode,
		CropName:              DisplayName(cropCode),
		RiskLevel:             level,
		RiskScore:             score,
		RainfallScenario:      rainfall,
		TemperatureStress:     temp,
		DroughtRisk:           droughtUnder(p, rainfallDeviationPct),
		FloodRisk:             floodUnder(p, rainfallDeviationPct),
		KeyRisks:              keyRisks(rainfall, temp, p),
		MitigationStrategies:  mitigations(rainfall, temp, level, p),
		ResilientVarieties:    varietiesFor(cropCode),
		DiseaseSusceptibility: p.diseases,
		OptimalPlantingWindow: PlantingWindow(cropCode),
		InsuranceRecommended:  level.Severe(),
	}
}

// AnalyzeBatch assesses every crop in cropCodes under the same rainfall
// deviation with no temperature shift. The result keys exactly the
// input crop set.
func AnalyzeBatch(cropCodes []string, rainfallDeviationPct float64) map[string]Assessment {
	assessments := make(map[string]Assessment, len(cropCodes))
	for _, code := range cropCodes {
		assessments[code] = Analyze(code, rainfallDeviationPct, 0)
	}
	return assessments
}

// FlagHighRisk returns the crop codes assessed at HIGH or VERY_HIGH,
// sorted for stable output.
func FlagHighRisk(assessments map[string]Assessment) []string {
	var flagged []string
	for code, a := range assessments {
		if a.RiskLevel.Severe() {
			flagged = append(flagged, code)
		}
	}
	sort.Strings(flagged)
	return flagged
}

// AdjustScore applies the climate penalty for the assessment's risk
// level to a base suitability score. A nil assessment leaves the base
// unchanged; the result is clamped to [0,100].
func AdjustScore(baseScore float64, a *Assessment) float64 {
	if a == nil {
		return baseScore
	}

	var adjustment float64
	switch a.RiskLevel {
	case RiskMedium:
		adjustment = -3
	case RiskHigh:
		adjustment = -7
	case RiskVeryHigh:
		adjustment = -12
	}

	adjusted := baseScore + adjustment
	if adjusted < 0 {
		return 0
	}
	if adjusted > 100 {
		return 100
	}
	return adjusted
}

func rainfallScenario(p profile, deviationPct float64) RainfallScenario {
	scenario := RainfallScenario{
		HistoricalAverageMm:       (p.rainfallMinMm + p.rainfallMaxMm) / 2,
		ProjectedDeviationPercent: deviationPct,
	}

	switch {
	case deviationPct <= deficitThresholdPct:
		scenario.ScenarioType = ScenarioDeficit
		scenario.YieldImpactPercent = deviationPct * 0.5
		scenario.Probability = 25
		scenario.RiskLevel = RiskMedium
		if deviationPct <= severeDeficitPct {
			scenario.RiskLevel = RiskHigh
		}
	case deviationPct >= excessThresholdPct:
		scenario.ScenarioType = ScenarioExcess
		scenario.YieldImpactPercent = deviationPct * 0.3
		scenario.Probability = 20
		scenario.RiskLevel = RiskMedium
		if deviationPct >= severeExcessPct {
			scenario.RiskLevel = RiskHigh
		}
	default:
		scenario.ScenarioType = ScenarioNormal
		scenario.Probability = 55
		scenario.RiskLevel = RiskLow
	}

	return scenario
}

func temperatureStress(p profile, deviationC float64) TemperatureStress {
	projectedMax := p.tempMaxC + deviationC
	projectedMin := p.tempMinC + deviationC

	var heatDays, coldDays int
	if projectedMax > p.heatThresholdC {
		heatDays = int((projectedMax - p.heatThresholdC) * 5)
		if heatDays > maxStressDays {
			heatDays = maxStressDays
		}
	}
	if projectedMin < p.coldThresholdC {
		coldDays = int((p.coldThresholdC - projectedMin) * 3)
		if coldDays > maxStressDays {
			coldDays = maxStressDays
		}
	}

	level := RiskLow
	switch {
	case heatDays > 10 || coldDays > 10:
		level = RiskHigh
	case heatDays > 5 || coldDays > 5:
		level = RiskMedium
	}

	return TemperatureStress{
		OptimalTempMinC:      p.tempMinC,
		OptimalTempMaxC:      p.tempMaxC,
		HeatStressThresholdC: p.heatThresholdC,
		ColdStressThresholdC: p.coldThresholdC,
		ProjectedDeviationC:  deviationC,
		ExtremeHeatDays:      heatDays,
		ExtremeColdDays:      coldDays,
		RiskLevel:            level,
	}
}

func riskScore(rainfall RainfallScenario, temp TemperatureStress, p profile) float64 {
	var score float64

	switch rainfall.RiskLevel {
	case RiskHigh:
		score += 30
	case RiskMedium:
		score += 15
	}

	switch temp.RiskLevel {
	case RiskHigh:
		score += 25
	case RiskMedium:
		score += 12
	}

	switch p.droughtRisk {
	case DroughtHigh:
		score += 15
	case DroughtModerate:
		score += 8
	}

	switch p.floodRisk {
	case FloodHigh:
		score += 15
	case FloodModerate:
		score += 8
	}

	return score
}

func riskLevelFor(score float64) RiskLevel {
	switch {
	case score >= 60:
		return RiskVeryHigh
	case score >= 40:
		return RiskHigh
	case score >= 20:
		return RiskMedium
	default:
		return RiskLow
	}
}

func keyRisks(rainfall RainfallScenario, temp TemperatureStress, p profile) []string {
	var risks []string

	switch rainfall.ScenarioType {
	case ScenarioDeficit:
		risks = append(risks, "Rainfall deficit - drought conditions expected")
	case ScenarioExcess:
		risks = append(risks, "Excessive rainfall - flood/waterlogging risk")
	}

	if temp.ExtremeHeatDays > 5 {
		risks = append(risks, fmt.Sprintf("Expected %d days of extreme heat stress", temp.ExtremeHeatDays))
	}
	if temp.ExtremeColdDays > 5 {
		risks = append(risks, fmt.Sprintf("Expected %d days of extreme cold stress", temp.ExtremeColdDays))
	}

	if p.droughtRisk == DroughtHigh {
		risks = append(risks, "High drought vulnerability")
	}
	if p.floodRisk == FloodHigh {
		risks = append(risks, "High flood/waterlogging vulnerability")
	}

	return risks
}

func mitigations(rainfall RainfallScenario, temp TemperatureStress, level RiskLevel, p profile) []string {
	var strategies []string

	if level.Severe() {
		strategies = append(strategies,
			"Consider climate-resilient varieties",
			"Implement soil moisture conservation techniques",
			"Monitor weather forecasts closely",
		)
	}

	switch rainfall.ScenarioType {
	case ScenarioDeficit:
		strategies = append(strategies,
			"Use drought-tolerant varieties",
			"Apply mulching to conserve soil moisture",
			"Consider supplemental irrigation if available",
			"Adjust planting dates to avoid dry periods",
		)
	case ScenarioExcess:
		strategies = append(strategies,
			"Ensure proper drainage",
			"Use raised bed planting",
			"Avoid waterlogging-sensitive varieties",
		)
	}

	if temp.ExtremeHeatDays > 5 {
		strategies = append(strategies,
			"Apply foliar sprays during heat stress",
			"Use heat-tolerant varieties",
			"Irrigate during heat waves",
		)
	}

	if p.droughtRisk == DroughtHigh {
		strategies = append(strategies, p.mitigations...)
	}

	if len(strategies) == 0 {
		strategies = append(strategies, fallbackMitigation)
	}

	return strategies
}

func varietiesFor(cropCode string) []string {
	if v, ok := resilientVarieties[cropCode]; ok {
		return v
	}
	return []string{fallbackVariety}
}

func droughtUnder(p profile, deviationPct float64) DroughtRisk {
	if deviationPct <= deficitThresholdPct {
		switch p.droughtRisk {
		case DroughtHigh:
			return DroughtSevere
		case DroughtModerate:
			return DroughtHigh
		default:
			return DroughtModerate
		}
	}
	return p.droughtRisk
}

func floodUnder(p profile, deviationPct float64) FloodRisk {
	if deviationPct >= excessThresholdPct {
		switch p.floodRisk {
		case FloodHigh:
			return FloodSevere
		case FloodModerate:
			return FloodHigh
		default:
			return FloodModerate
		}
	}
	return p.floodRisk
}
