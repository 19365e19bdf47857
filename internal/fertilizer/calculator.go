// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package fertilizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

// soilDeficitFactor converts a soil test shortfall (kg/ha below target) into
// extra fertilizer demand (kg/acre).
const soilDeficitFactor = 2.0

// severityLow is the only shortfall class the soil card thresholds resolve.
const severityLow = "Low"

// sourceSoilTest marks recommendations derived from soil test arithmetic.
const sourceSoilTest = "soil_test"

// Calculator builds fertilizer plans from the static reference tables.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator using the system clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// BuildPlan computes a complete fertilizer plan for one request: adjusted
// nutrient requirement, product recommendations, split application schedule,
// optional organic alternatives, and the estimated cost for the whole area.
func (c *Calculator) BuildPlan(req PlanRequest) *Plan {
	area := req.AreaAcres
	if area <= 0 {
		area = 1
	}

	code := strings.ToUpper(strings.TrimSpace(req.CropCode))
	name := req.CropName
	if name == "" {
		name = code
	}

	target := baseTarget(code, req.TargetYieldIncreasePercent)
	requirement, deficiencies := adjustForSoil(target, req.Soil)
	items := recommendProducts(requirement, area)

	now := c.now().UTC()
	sowing := now.Truncate(24 * time.Hour)

	plan := &Plan{
		GeneratedAt:        now,
		FarmerID:           req.FarmerID,
		CropCode:           code,
		CropName:           name,
		AreaAcres:          area,
		SoilHealthCardUsed: req.Soil != nil,
		Deficiencies:       deficiencies,
		Requirement:        requirement,
		Fertilizers:        items,
		Schedule:           buildSchedule(items, sowing),
		EstimatedTotalCost: totalCost(items, area),
	}
	if req.IncludeOrganicAlternatives {
		plan.OrganicAlternatives = organicAlternatives(area)
	}
	return plan
}

// baseTarget looks up the per-acre dose for a crop and scales it for a
// higher yield goal.
func baseTarget(code string, yieldIncreasePct float64) nutrientTarget {
	t, ok := cropNutrientTargets[code]
	if !ok {
		t = defaultNutrientTarget
	}
	if yieldIncreasePct != 0 {
		f := 1 + yieldIncreasePct/100
		t.nitrogenKg *= f
		t.phosphorusKg *= f
		t.potassiumKg *= f
	}
	return t
}

// adjustForSoil raises the macronutrient demand by twice each soil test
// shortfall and collects the corresponding deficiency advisories. Zinc
// shortfalls produce an advisory only; the flat zinc dose already covers
// the correction.
func adjustForSoil(t nutrientTarget, soil *agronomy.SoilHealthSnapshot) (NutrientRequirement, []Deficiency) {
	req := NutrientRequirement{
		NitrogenKg:   t.nitrogenKg,
		PhosphorusKg: t.phosphorusKg,
		PotassiumKg:  t.potassiumKg,
		SulfurKg:     sulfurDoseKg,
		ZincKg:       zincDoseKg,
	}

	var defs []Deficiency
	if soil != nil {
		if soil.NitrogenKgHa != nil && *soil.NitrogenKgHa < agronomy.SoilTargetNitrogenKgHa {
			deficit := agronomy.SoilTargetNitrogenKgHa - *soil.NitrogenKgHa
			req.NitrogenKg += deficit * soilDeficitFactor
			defs = append(defs, Deficiency{
				Nutrient:      "Nitrogen",
				CurrentLevel:  formatLevel(*soil.NitrogenKgHa, "kg/ha"),
				RequiredLevel: formatLevel(agronomy.SoilTargetNitrogenKgHa, "kg/ha"),
				Severity:      severityLow,
				Advice:        fmt.Sprintf("Increase nitrogen application by %.0f kg/acre", deficit*soilDeficitFactor),
			})
		}
		if soil.PhosphorusKgHa != nil && *soil.PhosphorusKgHa < agronomy.SoilTargetPhosphorusKgHa {
			deficit := agronomy.SoilTargetPhosphorusKgHa - *soil.PhosphorusKgHa
			req.PhosphorusKg += deficit * soilDeficitFactor
			defs = append(defs, Deficiency{
				Nutrient:      "Phosphorus",
				CurrentLevel:  formatLevel(*soil.PhosphorusKgHa, "kg/ha"),
				RequiredLevel: formatLevel(agronomy.SoilTargetPhosphorusKgHa, "kg/ha"),
				Severity:      severityLow,
				Advice:        fmt.Sprintf("Increase phosphorus application by %.0f kg/acre", deficit*soilDeficitFactor),
			})
		}
		if soil.PotassiumKgHa != nil && *soil.PotassiumKgHa < agronomy.SoilTargetPotassiumKgHa {
			deficit := agronomy.SoilTargetPotassiumKgHa - *soil.PotassiumKgHa
			req.PotassiumKg += deficit * soilDeficitFactor
			defs = append(defs, Deficiency{
				Nutrient:      "Potassium",
				CurrentLevel:  formatLevel(*soil.PotassiumKgHa, "kg/ha"),
				RequiredLevel: formatLevel(agronomy.SoilTargetPotassiumKgHa, "kg/ha"),
				Severity:      severityLow,
				Advice:        fmt.Sprintf("Increase potassium application by %.0f kg/acre", deficit*soilDeficitFactor),
			})
		}
		if soil.ZincPpm != nil && *soil.ZincPpm < agronomy.SoilTargetZincPpm {
			defs = append(defs, Deficiency{
				Nutrient:      "Zinc",
				CurrentLevel:  formatLevel(*soil.ZincPpm, "ppm"),
				RequiredLevel: formatLevel(agronomy.SoilTargetZincPpm, "ppm"),
				Severity:      severityLow,
				Advice:        "Apply zinc sulfate @ 25 kg/acre",
			})
		}
	}

	req.NitrogenKg = roundTo(req.NitrogenKg, 0)
	req.PhosphorusKg = roundTo(req.PhosphorusKg, 0)
	req.PotassiumKg = roundTo(req.PotassiumKg, 0)
	return req, defs
}

// recommendProducts maps the nutrient requirement onto concrete products:
// urea for N, DAP for P, MOP for K, and a flat zinc sulfate dose. Quantities
// cover the whole area; costs are per acre.
func recommendProducts(req NutrientRequirement, area float64) []Item {
	var items []Item

	if urea := productQuantity(req.NitrogenKg, productCompositions["UREA"].nitrogenPct); urea > 0 {
		items = append(items, Item{
			FertilizerType:    "Urea",
			Category:          CategoryChemical,
			QuantityKg:        roundTo(urea*area, 1),
			ApplicationTiming: "Split application - basal and top dressing",
			ApplicationStage:  "Basal at sowing, Top dressing at tillering",
			NitrogenPercent:   productCompositions["UREA"].nitrogenPct,
			CostPerAcre:       roundTo(urea*productCostsPerKg["UREA"], 0),
			Notes:             "Apply 50% as basal and 50% as top dressing at 25-30 days after sowing",
			Source:            sourceSoilTest,
			Phases:            []Phase{PhaseBasal, PhaseFirstTopDressing},
		})
	}

	if dap := productQuantity(req.PhosphorusKg, productCompositions["DAP"].phosphorusPct); dap > 0 {
		items = append(items, Item{
			FertilizerType:    "DAP (Di-Ammonium Phosphate)",
			Category:          CategoryChemical,
			QuantityKg:        roundTo(dap*area, 1),
			ApplicationTiming: "Basal application",
			ApplicationStage:  "At sowing",
			NitrogenPercent:   productCompositions["DAP"].nitrogenPct,
			PhosphorusPercent: productCompositions["DAP"].phosphorusPct,
			CostPerAcre:       roundTo(dap*productCostsPerKg["DAP"], 0),
			Notes:             "Apply as basal dose at the time of sowing",
			Source:            sourceSoilTest,
			Phases:            []Phase{PhaseBasal},
		})
	}

	if mop := productQuantity(req.PotassiumKg, productCompositions["MOP"].potassiumPct); mop > 0 {
		items = append(items, Item{
			FertilizerType:    "MOP (Muriate of Potash)",
			Category:          CategoryChemical,
			QuantityKg:        roundTo(mop*area, 1),
			ApplicationTiming: "Split application",
			ApplicationStage:  "Basal and at flowering",
			PotassiumPercent:  productCompositions["MOP"].potassiumPct,
			CostPerAcre:       roundTo(mop*productCostsPerKg["MOP"], 0),
			Notes:             "Apply 50% as basal and 50% at flowering stage",
			Source:            sourceSoilTest,
			Phases:            []Phase{PhaseBasal, PhaseSecondTopDressing},
		})
	}

	if req.ZincKg > 0 {
		items = append(items, Item{
			FertilizerType:    "Zinc Sulfate",
			Category:          CategoryChemical,
			QuantityKg:        roundTo(zincSulfateDoseKgPerAcre*area, 1),
			ApplicationTiming: "Soil application",
			ApplicationStage:  "At sowing or as foliar spray",
			CostPerAcre:       zincSulfateCostPerAcre,
			Notes:             "Apply 25 kg/acre as soil application or 0.5% solution as foliar spray",
			Source:            sourceSoilTest,
			Phases:            []Phase{PhaseBasal},
		})
	}

	return items
}

// buildSchedule groups the recommended products into the three split
// application slots by their phase tags. Slots with no members are omitted;
// a slot's cost is the sum of its members' full per-acre costs.
func buildSchedule(items []Item, sowing time.Time) []ScheduleEntry {
	slots := []struct {
		phase       Phase
		name        string
		stage       string
		daysOffset  int
		description string
	}{
		{PhaseBasal, "Basal Dose", "Sowing", 0,
			"Apply basal fertilizers at the time of sowing for initial crop growth"},
		{PhaseFirstTopDressing, "First Top Dressing", "Tillering (25-30 DAS)", 25,
			"Apply nitrogenous fertilizers at tillering stage for vegetative growth"},
		{PhaseSecondTopDressing, "Second Top Dressing", "Flowering/Panicle Initiation (45-60 DAS)", 45,
			"Apply potassium and remaining nutrients at flowering stage"},
	}

	var schedule []ScheduleEntry
	for _, slot := range slots {
		var members []Item
		var cost float64
		for _, it := range items {
			if hasPhase(it, slot.phase) {
				members = append(members, it)
				cost += it.CostPerAcre
			}
		}
		if len(members) == 0 {
			continue
		}
		schedule = append(schedule, ScheduleEntry{
			Name:             slot.name,
			Stage:            slot.stage,
			Date:             sowing.AddDate(0, 0, slot.daysOffset),
			Fertilizers:      members,
			Description:      slot.description,
			TotalCostPerAcre: roundTo(cost, 0),
		})
	}
	return schedule
}

// organicAlternatives instantiates the advisory options for the given area.
func organicAlternatives(area float64) []OrganicAlternative {
	out := make([]OrganicAlternative, 0, len(organicOptions))
	for _, o := range organicOptions {
		out = append(out, OrganicAlternative{
			Type:              o.typ,
			Name:              o.name,
			QuantityKg:        roundTo(o.quantityKgPerAcre*area, 1),
			Benefits:          o.benefits,
			ApplicationMethod: o.applicationMethod,
			CostPerAcre:       o.costPerAcre,
			Notes:             o.notes,
		})
	}
	return out
}

// productQuantity converts a nutrient demand into product kg/acre for a
// product of the given nutrient percentage.
func productQuantity(requiredKg, nutrientPct float64) float64 {
	if requiredKg <= 0 || nutrientPct <= 0 {
		return 0
	}
	return roundTo(requiredKg*100/nutrientPct, 2)
}

// totalCost sums per-acre product costs and scales to the area.
func totalCost(items []Item, area float64) float64 {
	var sum float64
	for _, it := range items {
		sum += it.CostPerAcre
	}
	if area != 1 {
		sum *= area
	}
	return roundTo(sum, 0)
}

func hasPhase(it Item, p Phase) bool {
	for _, ph := range it.Phases {
		if ph == p {
			return true
		}
	}
	return false
}

// formatLevel renders a soil reading with its unit, trimming trailing
// zeroes ("180 kg/ha", "0.45 ppm").
func formatLevel(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
