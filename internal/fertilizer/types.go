// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package fertilizer

import (
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

// Category identifies the broad class of a fertilizer product.
type Category string

const (
	// CategoryChemical covers manufactured mineral fertilizers.
	CategoryChemical Category = "CHEMICAL"
	// CategoryOrganic covers manures, composts, and green manures.
	CategoryOrganic Category = "ORGANIC"
	// CategoryBio covers microbial inoculants.
	CategoryBio Category = "BIO"
)

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// Phase names a slot in the split application schedule.
type Phase string

const (
	// PhaseBasal is applied at sowing.
	PhaseBasal Phase = "BASAL"
	// PhaseFirstTopDressing is applied at tillering, 25-30 days after sowing.
	PhaseFirstTopDressing Phase = "FIRST_TOP_DRESSING"
	// PhaseSecondTopDressing is applied at flowering, 45-60 days after
	// sowing.
	PhaseSecondTopDressing Phase = "SECOND_TOP_DRESSING"
)

// PlanRequest describes one fertilizer planning call.
type PlanRequest struct {
	// FarmerID is echoed into the plan for client-side bookkeeping.
	FarmerID string `json:"farmer_id,omitempty"`

	// CropCode selects the nutrient target row (for example "RICE").
	// Unknown codes fall back to a conservative default target.
	CropCode string `json:"crop_code"`

	// CropName optionally overrides the display name echoed in the plan.
	CropName string `json:"crop_name,omitempty"`

	// AreaAcres scales product quantities and total cost. Values at or
	// below zero are treated as one acre.
	AreaAcres float64 `json:"area_acres"`

	// TargetYieldIncreasePercent linearly raises the base N, P, and K
	// targets, for example 10 for a 10% higher yield goal.
	TargetYieldIncreasePercent float64 `json:"target_yield_increase_percent,omitempty"`

	// Soil carries the farmer's soil health card readings when available.
	// A nil snapshot produces the unadjusted crop defaults.
	Soil *agronomy.SoilHealthSnapshot `json:"soil,omitempty"`

	// IncludeOrganicAlternatives adds the organic substitution options to
	// the plan.
	IncludeOrganicAlternatives bool `json:"include_organic_alternatives,omitempty"`
}

// NutrientRequirement is the per-acre nutrient demand after soil adjustment.
type NutrientRequirement struct {
	// NitrogenKg is elemental N demand in kg/acre.
	NitrogenKg float64 `json:"nitrogen_kg"`

	// PhosphorusKg is P2O5 demand in kg/acre.
	PhosphorusKg float64 `json:"phosphorus_kg"`

	// PotassiumKg is K2O demand in kg/acre.
	PotassiumKg float64 `json:"potassium_kg"`

	// SulfurKg is S demand in kg/acre.
	SulfurKg float64 `json:"sulfur_kg"`

	// ZincKg is Zn demand in kg/acre.
	ZincKg float64 `json:"zinc_kg"`
}

// Deficiency reports one nutrient the soil health card flags as short.
type Deficiency struct {
	// Nutrient is the display name, for example "Nitrogen".
	Nutrient string `json:"nutrient"`

	// CurrentLevel is the measured value with its unit.
	CurrentLevel string `json:"current_level"`

	// RequiredLevel is the adequacy target with its unit.
	RequiredLevel string `json:"required_level"`

	// Severity classifies the shortfall.
	Severity string `json:"severity"`

	// Advice is the corrective action in farmer-facing language.
	Advice string `json:"advice"`
}

// Item is one recommended fertilizer product.
type Item struct {
	// FertilizerType is the product display name.
	FertilizerType string `json:"fertilizer_type"`

	// Category classifies the product.
	Category Category `json:"category"`

	// QuantityKg is the total quantity for the requested area.
	QuantityKg float64 `json:"quantity_kg"`

	// ApplicationTiming summarizes when to apply.
	ApplicationTiming string `json:"application_timing"`

	// ApplicationStage names the crop stages involved.
	ApplicationStage string `json:"application_stage"`

	// NitrogenPercent is the N content of the product.
	NitrogenPercent float64 `json:"nitrogen_percent"`

	// PhosphorusPercent is the P2O5 content of the product.
	PhosphorusPercent float64 `json:"phosphorus_percent"`

	// PotassiumPercent is the K2O content of the product.
	PotassiumPercent float64 `json:"potassium_percent"`

	// CostPerAcre is the product cost for one acre in INR.
	CostPerAcre float64 `json:"cost_per_acre"`

	// Notes carries dosage and split guidance.
	Notes string `json:"notes,omitempty"`

	// Source records where the recommendation came from.
	Source string `json:"recommendation_source"`

	// Phases lists the schedule slots this product belongs to.
	Phases []Phase `json:"-"`
}

// ScheduleEntry is one slot of the split application schedule.
type ScheduleEntry struct {
	// Name labels the slot, for example "Basal Dose".
	Name string `json:"name"`

	// Stage names the crop stage with its day window.
	Stage string `json:"stage"`

	// Date is the suggested application date.
	Date time.Time `json:"date"`

	// Fertilizers are the products to apply in this slot.
	Fertilizers []Item `json:"fertilizers"`

	// Description explains the agronomic purpose of the slot.
	Description string `json:"description"`

	// TotalCostPerAcre sums the member products' per-acre costs.
	TotalCostPerAcre float64 `json:"total_cost_per_acre"`
}

// OrganicAlternative is an advisory organic substitution option.
type OrganicAlternative struct {
	// Type is the stable identifier, for example "VERMICOMPOST".
	Type string `json:"type"`

	// Name is the display name.
	Name string `json:"name"`

	// QuantityKg is the quantity for the requested area.
	QuantityKg float64 `json:"quantity_kg"`

	// Benefits summarizes the soil and crop effects.
	Benefits string `json:"benefits"`

	// ApplicationMethod explains how and when to apply.
	ApplicationMethod string `json:"application_method"`

	// CostPerAcre is the indicative cost for one acre in INR.
	CostPerAcre float64 `json:"cost_per_acre"`

	// Notes carries substitution guidance.
	Notes string `json:"notes,omitempty"`
}

// Plan is a complete fertilizer recommendation for one crop and area.
type Plan struct {
	// GeneratedAt is the plan creation time.
	GeneratedAt time.Time `json:"generated_at"`

	// FarmerID echoes the request.
	FarmerID string `json:"farmer_id,omitempty"`

	// CropCode echoes the request.
	CropCode string `json:"crop_code"`

	// CropName is the display name used in the plan.
	CropName string `json:"crop_name"`

	// AreaAcres is the area the quantities and total cost cover.
	AreaAcres float64 `json:"area_acres"`

	// SoilHealthCardUsed reports whether soil readings adjusted the plan.
	SoilHealthCardUsed bool `json:"soil_health_card_used"`

	// Deficiencies lists nutrients the soil card flagged as short.
	Deficiencies []Deficiency `json:"deficiencies,omitempty"`

	// Requirement is the adjusted per-acre nutrient demand.
	Requirement NutrientRequirement `json:"requirement"`

	// Fertilizers are the recommended products.
	Fertilizers []Item `json:"fertilizers"`

	// Schedule is the split application schedule.
	Schedule []ScheduleEntry `json:"schedule"`

	// OrganicAlternatives is populated when the request asked for it.
	OrganicAlternatives []OrganicAlternative `json:"organic_alternatives,omitempty"`

	// EstimatedTotalCost is the chemical plan cost for the whole area in
	// INR.
	EstimatedTotalCost float64 `json:"estimated_total_cost"`
}

// Application is one recorded fertilizer application against a crop.
type Application struct {
	// ID is the storage identifier.
	ID string `json:"id,omitempty"`

	// CropID identifies the crop record the application belongs to.
	CropID string `json:"crop_id"`

	// FarmerID identifies the owner.
	FarmerID string `json:"farmer_id"`

	// FertilizerType is the product display name.
	FertilizerType string `json:"fertilizer_type"`

	// Category classifies the product.
	Category Category `json:"category"`

	// QuantityKg is the quantity applied.
	QuantityKg float64 `json:"quantity_kg"`

	// AreaAcres is the area covered.
	AreaAcres float64 `json:"area_acres"`

	// Date is when the application happened.
	Date time.Time `json:"date"`

	// Stage names the crop stage at application time.
	Stage string `json:"stage,omitempty"`

	// Cost is the money spent in INR.
	Cost float64 `json:"cost"`

	// NitrogenPercent is the N content of the product.
	NitrogenPercent float64 `json:"nitrogen_percent"`

	// PhosphorusPercent is the P2O5 content of the product.
	PhosphorusPercent float64 `json:"phosphorus_percent"`

	// PotassiumPercent is the K2O content of the product.
	PotassiumPercent float64 `json:"potassium_percent"`

	// SulfurPercent is the S content of the product.
	SulfurPercent float64 `json:"sulfur_percent"`

	// ZincPercent is the Zn content of the product.
	ZincPercent float64 `json:"zinc_percent"`

	// Source records where the dosage came from.
	Source string `json:"recommendation_source,omitempty"`

	// Notes is free-form farmer input.
	Notes string `json:"notes,omitempty"`
}

// NitrogenKg is the elemental N delivered by this application.
func (a Application) NitrogenKg() float64 {
	return roundTo(a.QuantityKg*a.NitrogenPercent/100, 2)
}

// PhosphorusKg is the P2O5 delivered by this application.
func (a Application) PhosphorusKg() float64 {
	return roundTo(a.QuantityKg*a.PhosphorusPercent/100, 2)
}

// PotassiumKg is the K2O delivered by this application.
func (a Application) PotassiumKg() float64 {
	return roundTo(a.QuantityKg*a.PotassiumPercent/100, 2)
}

// SulfurKg is the S delivered by this application.
func (a Application) SulfurKg() float64 {
	return roundTo(a.QuantityKg*a.SulfurPercent/100, 2)
}

// ZincKg is the Zn delivered by this application.
func (a Application) ZincKg() float64 {
	return roundTo(a.QuantityKg*a.ZincPercent/100, 2)
}

// NutrientTotals aggregates the nutrients delivered by a set of
// applications.
type NutrientTotals struct {
	// NitrogenKg is total elemental N in kg.
	NitrogenKg float64 `json:"nitrogen_kg"`

	// PhosphorusKg is total P2O5 in kg.
	PhosphorusKg float64 `json:"phosphorus_kg"`

	// PotassiumKg is total K2O in kg.
	PotassiumKg float64 `json:"potassium_kg"`

	// SulfurKg is total S in kg.
	SulfurKg float64 `json:"sulfur_kg"`

	// ZincKg is total Zn in kg.
	ZincKg float64 `json:"zinc_kg"`
}

// CostSummary aggregates spend across a set of applications.
type CostSummary struct {
	// TotalCost is the total spend in INR.
	TotalCost float64 `json:"total_cost"`

	// CostPerAcre is the spend normalized to the tracked area.
	CostPerAcre float64 `json:"cost_per_acre"`

	// CostPerKgNutrient is spend divided by total N+P+K delivered, zero
	// when no macronutrients were applied.
	CostPerKgNutrient float64 `json:"cost_per_kg_nutrient"`

	// Trend is a coarse spend trajectory label.
	Trend string `json:"trend"`
}

// UsageReport summarizes the recorded applications for one crop.
type UsageReport struct {
	// CropID identifies the crop the report covers.
	CropID string `json:"crop_id"`

	// ApplicationCount is the number of recorded applications.
	ApplicationCount int `json:"application_count"`

	// TotalQuantityKg sums the applied product quantities.
	TotalQuantityKg float64 `json:"total_quantity_kg"`

	// Nutrients totals the nutrients delivered.
	Nutrients NutrientTotals `json:"nutrients"`

	// Cost summarizes the spend.
	Cost CostSummary `json:"cost"`

	// Applications lists the underlying records in date order.
	Applications []Application `json:"applications"`
}
