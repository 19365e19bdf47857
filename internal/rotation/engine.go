// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Engine generates rotation options from a farmer's cropping history.
type Engine struct {
	newID func() string
}

// NewEngine returns an Engine that assigns UUID option IDs.
func NewEngine() *Engine {
	return &Engine{newID: uuid.NewString}
}

// Recommend builds the full set of rotation options for a history, ranked
// best overall first, together with pest warnings and general advice. The
// history may be nil or empty; the engine always offers at least the
// balanced rotation template.
func (e *Engine) Recommend(history []HistoryEntry, season string) *Result {
	window := recentFirst(history)
	hasRice := hasRiceSystem(window)

	var options []Option
	options = append(options, e.nutrientCyclingOptions(window)...)
	options = append(options, e.balancedOption(window))
	options = append(options, e.legumeOptions(window)...)
	if hasRice {
		options = append(options, e.riceDiversificationOptions(window)...)
	}
	options = append(options, e.relayOptions(window)...)
	options = append(options, e.intercropOptions(window)...)

	for i := range options {
		options[i].OverallBenefitScore = OverallBenefitScore(&options[i])
	}
	options = ranking.Descending(options, func(o Option) float64 { return o.OverallBenefitScore })

	normalized, _ := agronomy.ParseSeason(season)
	return &Result{
		TargetSeason:       string(normalized),
		SeasonSchedule:     SeasonSchedule(season),
		Options:            options,
		Warnings:           pestWarnings(window, hasRice),
		Recommendations:    generalRecommendations(window, hasRice),
		HasRiceBasedSystem: hasRice,
		PestRiskLevel:      pestRiskLevel(window),
	}
}

// recentFirst returns a copy of the history ordered most recent sowing
// first. Entries without a sowing date sort last.
func recentFirst(history []HistoryEntry) []HistoryEntry {
	window := make([]HistoryEntry, len(history))
	copy(window, history)
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].SowingDate.After(window[j].SowingDate)
	})
	return window
}

// hasRiceSystem reports whether rice or paddy appears anywhere in the
// history.
func hasRiceSystem(window []HistoryEntry) bool {
	for _, e := range window {
		if isRiceCrop(e.CropName) {
			return true
		}
	}
	return false
}

func isRiceCrop(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "rice") || strings.Contains(name, "paddy")
}

// nutrientCyclingOptions proposes crops whose root depth contrasts with the
// last crop so successive seasons feed from different soil layers.
func (e *Engine) nutrientCyclingOptions(window []HistoryEntry) []Option {
	last := ""
	lastFamily := agronomy.FamilyOther
	lastDepth := agronomy.DepthMedium
	hasLast := len(window) > 0
	if hasLast {
		last = window[0].CropName
		lastFamily = entryFamily(window[0])
		lastDepth = agronomy.FamilyRootDepth(lastFamily)
	}

	pool, label := deepRootedCrops, "Deep"
	if lastDepth == agronomy.DepthDeep {
		pool, label = shallowRootedCrops, "Shallow"
	}

	options := make([]Option, 0, len(pool))
	for _, crop := range pool {
		family := agronomy.FamilyForCrop(crop)
		if hasLast && family == lastFamily {
			continue
		}
		depth := agronomy.FamilyRootDepth(family)
		nutrientScore := 75.0
		if hasLast {
			nutrientScore = 65
			if depth != lastDepth {
				nutrientScore = 85
			}
		}
		sequence := crop
		if hasLast {
			sequence = last + SequenceSeparator + crop
		}
		options = append(options, Option{
			ID:           e.newID(),
			CropSequence: sequence,
			Description: fmt.Sprintf("%s-rooted crop for nutrient cycling: %s (%s)",
				label, crop, depthDescription(depth)),
			SoilHealthBenefit:    nutrientScore,
			ClimateResilience:    75,
			EconomicViability:    70,
			NutrientCyclingScore: nutrientScore,
			PestManagementScore:  pestScore(family, lastFamily, hasLast),
			WaterUsageScore:      waterScore(depth),
			Benefits: []string{
				"Alternates root depth for better nutrient utilization",
				"Improves soil structure through different root systems",
				"Reduces nutrient depletion in specific soil layers",
			},
			Considerations: []string{
				"Consider market demand for the recommended crop",
				"Ensure crop is suitable for the growing season",
				"Check water requirements match available resources",
			},
			ResidueManagement:   "Incorporate residues to enhance organic matter",
			OrganicMatterImpact: "Moderate - depends on biomass production",
		})
	}
	return options
}

// balancedOption is the deep -> shallow -> legume template that is always
// offered.
func (e *Engine) balancedOption(window []HistoryEntry) Option {
	sequence := "Sunflower" + SequenceSeparator + "Cabbage" + SequenceSeparator + "Greengram"
	if len(window) > 0 {
		sequence = window[0].CropName + SequenceSeparator + sequence
	}
	return Option{
		ID:                   e.newID(),
		CropSequence:         sequence,
		Description:          "Balanced 3-year rotation for optimal nutrient cycling",
		SoilHealthBenefit:    90,
		ClimateResilience:    85,
		EconomicViability:    80,
		NutrientCyclingScore: 95,
		PestManagementScore:  85,
		WaterUsageScore:      75,
		Benefits: []string{
			"Deep-rooted (Sunflower) accesses nutrients from deeper soil layers",
			"Shallow-rooted (Cabbage) utilizes topsoil nutrients efficiently",
			"Legume (Greengram) fixes atmospheric nitrogen",
			"Breaks pest and disease cycles effectively",
		},
		Considerations: []string{
			"Requires planning across multiple seasons",
			"Market timing important for each crop",
			"Adjust based on local climate and soil conditions",
		},
		ResidueManagement:   "Rotate residue management practices between crops",
		OrganicMatterImpact: "High - diverse root systems contribute to soil organic matter",
	}
}

// legumeOptions proposes nitrogen-fixing pulses unless the last crop was
// already a legume.
func (e *Engine) legumeOptions(window []HistoryEntry) []Option {
	last := ""
	lastFamily := agronomy.FamilyOther
	hasLast := len(window) > 0
	if hasLast {
		last = window[0].CropName
		lastFamily = entryFamily(window[0])
		if lastFamily == agronomy.FamilyLegumes {
			return nil
		}
	}
	options := make([]Option, 0, len(legumeCrops))
	for _, crop := range legumeCrops {
		if strings.EqualFold(crop, last) {
			continue
		}
		sequence := crop
		if hasLast {
			sequence = last + SequenceSeparator + crop
		}
		options = append(options, Option{
			ID:                   e.newID(),
			CropSequence:         sequence,
			Description:          "Legume integration for biological nitrogen fixation",
			SoilHealthBenefit:    85,
			ClimateResilience:    75,
			EconomicViability:    70,
			NutrientCyclingScore: 90,
			PestManagementScore:  pestScore(agronomy.FamilyForCrop(crop), lastFamily, hasLast),
			WaterUsageScore:      65,
			Benefits: []string{
				"Biological nitrogen fixation (40-60 kg N/ha)",
				"Improves soil organic matter",
				"Breaks pest and disease cycles",
				"Reduces fertilizer requirements for subsequent crops",
			},
			Considerations: []string{
				"Requires proper rhizobium inoculation",
				"Market price fluctuations possible",
				"May need additional phosphorus for nodulation",
			},
			ResidueManagement:   "Incorporate crop residues or use as green manure",
			OrganicMatterImpact: "High - adds organic matter and improves soil structure",
		})
	}
	return options
}

// riceDiversificationOptions proposes pulses and oilseeds that use residual
// moisture after a rice crop.
func (e *Engine) riceDiversificationOptions(window []HistoryEntry) []Option {
	lastRice := ""
	for _, entry := range window {
		if isRiceCrop(entry.CropName) {
			lastRice = entry.CropName
			break
		}
	}
	if lastRice == "" {
		return nil
	}
	riceFamily := agronomy.FamilyForCrop(lastRice)
	options := make([]Option, 0, len(riceDiversificationCrops))
	for _, crop := range riceDiversificationCrops {
		if isRiceCrop(crop) {
			continue
		}
		family := agronomy.FamilyForCrop(crop)
		options = append(options, Option{
			ID:                   e.newID(),
			CropSequence:         lastRice + SequenceSeparator + crop,
			Description:          "Rice-based system diversification to leverage residual moisture",
			SoilHealthBenefit:    80,
			ClimateResilience:    78,
			EconomicViability:    75,
			NutrientCyclingScore: 72,
			PestManagementScore:  pestScore(family, riceFamily, true),
			WaterUsageScore:      waterScore(agronomy.FamilyRootDepth(family)),
			Benefits: []string{
				"Utilizes residual soil moisture after rice harvest",
				"Breaks rice-specific pest and disease cycles",
				"Diversifies income sources",
				"Improves soil health through different root systems",
			},
			Considerations: []string{
				"Timing critical - sow before soil dries completely",
				"May require minimal irrigation if moisture insufficient",
				"Consider market demand before selection",
			},
			ResidueManagement:   "Manage rice residues properly to avoid pest habitat",
			OrganicMatterImpact: "Moderate - varies by crop choice",
		})
	}
	return options
}

// relayOptions proposes paira/utera style relay crops sown into the maturing
// main crop two to three weeks before its harvest.
func (e *Engine) relayOptions(window []HistoryEntry) []Option {
	if len(window) == 0 {
		return nil
	}
	main := window[0].CropName
	partners, ok := relayPairs[strings.ToLower(strings.TrimSpace(main))]
	if !ok {
		return nil
	}
	paira := isRiceCrop(main)
	options := make([]Option, 0, len(partners))
	for _, crop := range partners {
		description := fmt.Sprintf("Relay cropping: Sow %s into maturing %s", crop, main)
		if paira {
			description = fmt.Sprintf("Paira/Utera relay cropping: Sow %s into maturing %s", crop, main)
		}
		nitrogenBenefit := crop + " fixes nitrogen benefiting subsequent crops"
		if agronomy.FamilyForCrop(crop) != agronomy.FamilyLegumes {
			nitrogenBenefit = crop + " adds crop diversity reducing pest pressure"
		}
		options = append(options, Option{
			ID:                   e.newID(),
			CropSequence:         fmt.Sprintf("%s (relay with %s)", main, crop),
			Description:          description,
			SoilHealthBenefit:    85,
			ClimateResilience:    80,
			EconomicViability:    88,
			NutrientCyclingScore: 78,
			PestManagementScore:  82,
			WaterUsageScore:      90,
			Benefits: []string{
				"Utilizes residual soil moisture efficiently",
				"Maximizes land productivity per season",
				"Reduces weed competition",
				nitrogenBenefit,
			},
			Considerations: []string{
				"Timing critical - sow relay crop 2-3 weeks before main crop harvest",
				"May require minimal additional inputs",
				"Ensure relay crop is suitable for the climate",
			},
			ResidueManagement:   "Manage main crop residues to avoid smothering relay crop",
			OrganicMatterImpact: "High - dual crop biomass increases organic input",
		})
	}
	return options
}

// intercropOptions proposes companion crops grown alongside the main crop in
// the same season.
func (e *Engine) intercropOptions(window []HistoryEntry) []Option {
	if len(window) == 0 {
		return nil
	}
	main := window[0].CropName
	partners, ok := intercropPartners[strings.ToLower(strings.TrimSpace(main))]
	if !ok {
		return nil
	}
	options := make([]Option, 0, len(partners))
	for _, crop := range partners {
		options = append(options, Option{
			ID:                   e.newID(),
			CropSequence:         fmt.Sprintf("%s + %s (intercropping)", main, crop),
			Description:          fmt.Sprintf("Intercrop %s with %s for better resource utilization", crop, main),
			SoilHealthBenefit:    82,
			ClimateResilience:    78,
			EconomicViability:    85,
			NutrientCyclingScore: 75,
			PestManagementScore:  80,
			WaterUsageScore:      72,
			Benefits: []string{
				"Maximizes land use efficiency",
				"Intercrop may fix nitrogen (if legume)",
				"Reduces pest and disease incidence through diversity",
				"Provides additional income source",
			},
			Considerations: []string{
				"Requires careful crop combination selection",
				"May need adjustment of input rates",
				"Harvest timing may be more complex",
			},
			ResidueManagement:   "Manage residues of both crops appropriately",
			OrganicMatterImpact: "Moderate to High - depends on crop combination",
		})
	}
	return options
}

// depthDescription renders the parenthetical depth note in option
// descriptions.
func depthDescription(depth agronomy.RootDepth) string {
	if depth == agronomy.DepthDeep {
		return "deep-rooted (nutrient cycling from deeper layers)"
	}
	return "shallow-rooted (topsoil nutrient utilization)"
}

// pestScore rates how well a candidate family breaks the previous crop's
// pest cycle.
func pestScore(candidate, last agronomy.CropFamily, hasLast bool) float64 {
	switch {
	case !hasLast:
		return 70
	case candidate != last:
		return 85
	default:
		return 50
	}
}

// waterScore rates water efficiency by rooting depth. Deeper-rooted crops
// draw on stored moisture but tend to be thirstier overall.
func waterScore(depth agronomy.RootDepth) float64 {
	switch depth {
	case agronomy.DepthDeep:
		return 70
	case agronomy.DepthShallow:
		return 80
	default:
		return 75
	}
}

// pestWarnings surfaces pest carryover hazards from the history.
func pestWarnings(window []HistoryEntry, hasRice bool) []string {
	var warnings []string
	if hasRice {
		warnings = append(warnings, "Rice-based system detected. Consider diversification to break pest cycles and improve soil health.")
	}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(window); i++ {
		family := entryFamily(window[i])
		if family != entryFamily(window[i+1]) || !pestCarryoverFamilies[family] {
			continue
		}
		warning := fmt.Sprintf("High pest carryover risk: Consecutive %s crops may increase %s pest pressure. Consider rotating to a different crop family.",
			family.DisplayName(), family.DisplayName())
		if seen[warning] {
			continue
		}
		seen[warning] = true
		warnings = append(warnings, warning)
	}
	if len(window) > 0 {
		last := window[0].CropName
		if pests, ok := cropPestRisks[strings.ToLower(strings.TrimSpace(last))]; ok {
			warnings = append(warnings, fmt.Sprintf("%s may carry over pests/diseases: %s. Consider crop rotation or pest management measures.",
				last, strings.Join(pests, ", ")))
		}
	}
	return warnings
}

// pestRiskLevel grades pest carryover pressure by counting adjacent
// same-family season pairs.
func pestRiskLevel(window []HistoryEntry) PestRisk {
	pairs := 0
	for i := 0; i+1 < len(window); i++ {
		if entryFamily(window[i]) == entryFamily(window[i+1]) {
			pairs++
		}
	}
	switch {
	case pairs >= 2:
		return PestRiskHigh
	case pairs == 1:
		return PestRiskMedium
	default:
		return PestRiskLow
	}
}

// generalRecommendations produces rotation advice that applies regardless of
// which option the farmer picks.
func generalRecommendations(window []HistoryEntry, hasRice bool) []string {
	var recs []string
	if HasConsecutiveMonoculture(window) {
		recs = append(recs, "Consider rotating to a different crop family to break pest and disease cycles.")
	}
	if hasRice {
		recs = append(recs,
			"For rice-based systems, consider green manuring with Sesbania or Crotalaria before next rice crop.",
			"Alternate rice with pulses or oilseeds to improve soil health and reduce fertilizer requirements.")
	}
	recs = append(recs,
		"Incorporate crop residues to increase organic matter content.",
		"Consider soil testing before finalizing rotation plan.")
	return recs
}
