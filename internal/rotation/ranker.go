// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package rotation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Overall benefit weights. Soil health dominates because rotation is first a
// soil management practice; climate and market each carry the rest equally.
const (
	soilHealthWeight        = 0.40
	climateResilienceWeight = 0.30
	economicViabilityWeight = 0.30
)

// OverallBenefitScore computes the weighted composite benefit of an option:
// 40% soil health, 30% climate resilience, 30% economic viability, clamped
// to [0, 100]. A nil option scores 0; unset components contribute 0.
func OverallBenefitScore(opt *Option) float64 {
	if opt == nil {
		return 0
	}
	score := opt.SoilHealthBenefit*soilHealthWeight +
		opt.ClimateResilience*climateResilienceWeight +
		opt.EconomicViability*economicViabilityWeight
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

// Ranker orders rotation options and completes them for display with season
// schedules, residue guidance, and zone default patterns.
type Ranker struct {
	newID func() string
}

// NewRanker returns a Ranker that assigns UUID pattern IDs.
func NewRanker() *Ranker {
	return &Ranker{newID: uuid.NewString}
}

// RankByOverallBenefit orders options best overall first, recomputing the
// composite score for each. nil input returns nil; empty input returns
// empty; ties keep their input order.
func (r *Ranker) RankByOverallBenefit(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	for i := range out {
		out[i].OverallBenefitScore = OverallBenefitScore(&out[i])
	}
	return ranking.Descending(out, func(o Option) float64 { return o.OverallBenefitScore })
}

// RankBySoilHealth orders options by soil health benefit, best first.
func (r *Ranker) RankBySoilHealth(options []Option) []Option {
	return ranking.Descending(options, func(o Option) float64 { return o.SoilHealthBenefit })
}

// RankByClimateResilience orders options by climate resilience, best first.
func (r *Ranker) RankByClimateResilience(options []Option) []Option {
	return ranking.Descending(options, func(o Option) float64 { return o.ClimateResilience })
}

// RankByEconomicViability orders options by economic viability, best first.
func (r *Ranker) RankByEconomicViability(options []Option) []Option {
	return ranking.Descending(options, func(o Option) float64 { return o.EconomicViability })
}

// ApplySeasonSchedules assigns each option's sequence crops to the Kharif,
// Rabi, and Zaid slots in order. Sequences without the separator, such as
// relay and intercrop plans, occupy only the Kharif slot.
func (r *Ranker) ApplySeasonSchedules(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	for i := range out {
		crops := splitSequence(out[i].CropSequence)
		if len(crops) > 0 {
			out[i].KharifCrop = crops[0]
		}
		if len(crops) > 1 {
			out[i].RabiCrop = crops[1]
		}
		if len(crops) > 2 {
			out[i].ZaidCrop = crops[2]
		}
	}
	return out
}

// splitSequence breaks a crop sequence on SequenceSeparator, trimming each
// token. Empty sequences return nil.
func splitSequence(sequence string) []string {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return nil
	}
	parts := strings.Split(sequence, SequenceSeparator)
	crops := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			crops = append(crops, p)
		}
	}
	return crops
}

// ApplyResidueGuidance fills residue management and organic matter advice
// from each option's leading crop family. Families with specific guidance
// override whatever the option carried; others keep their existing text or
// fall back to the generic guidance.
func (r *Ranker) ApplyResidueGuidance(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	for i := range out {
		crops := splitSequence(out[i].CropSequence)
		if len(crops) == 0 {
			continue
		}
		family := agronomy.FamilyForCrop(crops[0])
		if g, ok := familyResidueGuidance[family]; ok {
			out[i].ResidueManagement = g.residue
			out[i].OrganicMatterImpact = g.organicMatter
			continue
		}
		if out[i].ResidueManagement == "" {
			out[i].ResidueManagement = defaultResidueGuidance.residue
		}
		if out[i].OrganicMatterImpact == "" {
			out[i].OrganicMatterImpact = defaultResidueGuidance.organicMatter
		}
	}
	return out
}

// DefaultPatterns returns the proven rotation sequences for an agro-climatic
// zone, scored and scheduled for display. Unknown zones fall back to the
// Indo-Gangetic Plains patterns.
func (r *Ranker) DefaultPatterns(zone string) []Option {
	patterns, ok := zoneDefaultPatterns[zone]
	if !ok {
		patterns = zoneDefaultPatterns[fallbackZone]
	}
	options := make([]Option, 0, len(patterns))
	for _, crops := range patterns {
		options = append(options, r.defaultPatternOption(crops))
	}
	return options
}

func (r *Ranker) defaultPatternOption(crops []string) Option {
	opt := Option{
		ID:           r.newID(),
		CropSequence: strings.Join(crops, SequenceSeparator),
		Description:  "Default rotation pattern for balanced nutrition and income",
	}

	hasLegume := false
	hasCereal := false
	hasOilseed := false
	hasDeep := false
	var soilTotal float64
	for _, crop := range crops {
		family := agronomy.FamilyForCrop(crop)
		soilTotal += familySoilContribution(family)
		switch family {
		case agronomy.FamilyLegumes, agronomy.FamilyGreenManure:
			hasLegume = true
		case agronomy.FamilyCereals:
			hasCereal = true
		case agronomy.FamilyOilseeds:
			hasOilseed = true
		}
		if agronomy.FamilyRootDepth(family) == agronomy.DepthDeep {
			hasDeep = true
		}
	}
	soil := soilTotal / float64(len(crops))
	if hasLegume {
		soil += 5
	}
	if hasDeep {
		soil += 3
	}

	main := crops[0]
	opt.SoilHealthBenefit = soil
	opt.ClimateResilience = agronomy.ClimateResilienceScore(main)
	opt.EconomicViability = agronomy.EconomicViabilityScore(main)
	opt.OverallBenefitScore = OverallBenefitScore(&opt)

	opt.KharifCrop = crops[0]
	if len(crops) > 1 {
		opt.RabiCrop = crops[1]
	}
	if len(crops) > 2 {
		opt.ZaidCrop = crops[2]
	}

	var benefits []string
	if hasLegume {
		benefits = append(benefits, "Biological nitrogen fixation improves soil fertility")
	}
	if hasCereal && hasLegume {
		benefits = append(benefits, "Cereal-legume rotation provides balanced nutrition")
	}
	if hasOilseed {
		benefits = append(benefits, "Oilseed break helps manage pest and disease cycles")
	}
	opt.Benefits = append(benefits,
		"Diverse crop sequence reduces risk of total crop failure",
		"Multiple income sources throughout the year")
	opt.Considerations = []string{
		"Adjust input costs based on each crop's requirements",
		"Ensure irrigation availability for all seasons",
		"Plan marketing strategy for each crop",
		"Consider labor requirements for each crop",
	}

	if g, ok := familyResidueGuidance[agronomy.FamilyForCrop(main)]; ok {
		opt.ResidueManagement = g.residue
		opt.OrganicMatterImpact = g.organicMatter
	} else {
		opt.ResidueManagement = "Incorporate residues into soil for organic matter addition."
		opt.OrganicMatterImpact = "Expected organic matter increase: 0.3-0.5% per season."
	}
	return opt
}

// familySoilContribution rates a family's soil health contribution inside a
// default rotation pattern.
func familySoilContribution(family agronomy.CropFamily) float64 {
	if s, ok := familySoilScore[family]; ok {
		return s
	}
	return defaultFamilySoilScore
}

// CompleteDisplay prepares options for presentation: ranks them by overall
// benefit, fills season schedules and residue guidance, and attaches the
// zone's default patterns. When no options were generated and the farmer has
// no recorded history, the default patterns are promoted to the primary
// list.
func (r *Ranker) CompleteDisplay(options []Option, zone string, hasHistory bool) (primary, defaults []Option) {
	defaults = r.DefaultPatterns(zone)
	if len(options) > 0 {
		primary = r.ApplyResidueGuidance(r.ApplySeasonSchedules(r.RankByOverallBenefit(options)))
		return primary, defaults
	}
	if !hasHistory {
		primary = defaults
	}
	return primary, defaults
}

// SeasonSchedule returns the planting and harvest windows for a season name.
// Unrecognized seasons return "Varies" for both.
func SeasonSchedule(season string) ScheduleInfo {
	s, _ := agronomy.ParseSeason(season)
	return ScheduleInfo{
		PlantingMonths: s.PlantingMonths(),
		HarvestMonths:  s.HarvestMonths(),
	}
}
