// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package fertilizer

import "sort"

// costTrendStable is the only trajectory label a single-season log supports.
// Cross-season trend detection needs more history than the tracker holds.
const costTrendStable = "stable"

// Summarize aggregates recorded applications for one crop into nutrient and
// cost totals. The report lists applications in ascending date order
// regardless of input order. An empty log produces zero totals, not an
// error.
func Summarize(cropID string, apps []Application) UsageReport {
	sorted := make([]Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var totals NutrientTotals
	var totalQty, totalSpend, largestArea float64
	for _, a := range sorted {
		totals.NitrogenKg += a.NitrogenKg()
		totals.PhosphorusKg += a.PhosphorusKg()
		totals.PotassiumKg += a.PotassiumKg()
		totals.SulfurKg += a.SulfurKg()
		totals.ZincKg += a.ZincKg()
		totalQty += a.QuantityKg
		totalSpend += a.Cost
		if a.AreaAcres > largestArea {
			largestArea = a.AreaAcres
		}
	}

	totals.NitrogenKg = roundTo(totals.NitrogenKg, 2)
	totals.PhosphorusKg = roundTo(totals.PhosphorusKg, 2)
	totals.PotassiumKg = roundTo(totals.PotassiumKg, 2)
	totals.SulfurKg = roundTo(totals.SulfurKg, 2)
	totals.ZincKg = roundTo(totals.ZincKg, 2)

	cost := CostSummary{
		TotalCost:   roundTo(totalSpend, 0),
		CostPerAcre: roundTo(totalSpend, 0),
		Trend:       costTrendStable,
	}
	// Repeat applications cover the same field, so the largest recorded
	// area stands in for the plot size.
	if largestArea > 0 {
		cost.CostPerAcre = roundTo(totalSpend/largestArea, 0)
	}
	if macro := totals.NitrogenKg + totals.PhosphorusKg + totals.PotassiumKg; macro > 0 {
		cost.CostPerKgNutrient = roundTo(totalSpend/macro, 2)
	}

	return UsageReport{
		CropID:           cropID,
		ApplicationCount: len(sorted),
		TotalQuantityKg:  roundTo(totalQty, 2),
		Nutrients:        totals,
		Cost:             cost,
		Applications:     sorted,
	}
}
