// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

// SoilHealthSnapshot carries a farmer's soil test readings. Fields are
// pointers because a soil health card rarely reports every parameter;
// consumers treat a nil field as "not tested" rather than zero.
type SoilHealthSnapshot struct {
	// FarmerID links the snapshot to its owner.
	FarmerID string `json:"farmer_id,omitempty"`

	// PH is the soil reaction (typically 4.0-9.5).
	PH *float64 `json:"ph,omitempty"`

	// NitrogenKgHa is available nitrogen in kg/ha.
	NitrogenKgHa *float64 `json:"nitrogen_kg_ha,omitempty"`

	// PhosphorusKgHa is available phosphorus in kg/ha.
	PhosphorusKgHa *float64 `json:"phosphorus_kg_ha,omitempty"`

	// PotassiumKgHa is available potassium in kg/ha.
	PotassiumKgHa *float64 `json:"potassium_kg_ha,omitempty"`

	// SulfurPpm is available sulfur in ppm.
	SulfurPpm *float64 `json:"sulfur_ppm,omitempty"`

	// ZincPpm is available zinc in ppm.
	ZincPpm *float64 `json:"zinc_ppm,omitempty"`

	// IronPpm is available iron in ppm.
	IronPpm *float64 `json:"iron_ppm,omitempty"`

	// OrganicCarbon is organic carbon percent.
	OrganicCarbon *float64 `json:"organic_carbon,omitempty"`
}

// Soil nutrient adequacy targets used across the suitability scorer and the
// fertilizer calculator (Soil Health Card norms).
const (
	// SoilTargetNitrogenKgHa is the adequacy threshold for available N.
	SoilTargetNitrogenKgHa = 280.0
	// SoilHighNitrogenKgHa marks nitrogen-rich soils.
	SoilHighNitrogenKgHa = 560.0
	// SoilTargetPhosphorusKgHa is the adequacy threshold for available P.
	SoilTargetPhosphorusKgHa = 10.0
	// SoilHighPhosphorusKgHa marks phosphorus-rich soils.
	SoilHighPhosphorusKgHa = 25.0
	// SoilTargetPotassiumKgHa is the adequacy threshold for available K.
	SoilTargetPotassiumKgHa = 108.0
	// SoilHighPotassiumKgHa marks potassium-rich soils.
	SoilHighPotassiumKgHa = 280.0
	// SoilTargetSulfurPpm is the adequacy threshold for available S.
	SoilTargetSulfurPpm = 10.0
	// SoilTargetZincPpm is the adequacy threshold for available Zn.
	SoilTargetZincPpm = 0.6
	// SoilTargetIronPpm is the adequacy threshold for available Fe.
	SoilTargetIronPpm = 4.5
)

// pH comfort bands: inside [PHIdealMin, PHIdealMax] most nutrients stay
// plant-available; outside [PHTolerableMin, PHTolerableMax] availability
// drops sharply.
const (
	PHIdealMin     = 6.0
	PHIdealMax     = 7.5
	PHTolerableMin = 5.5
	PHTolerableMax = 8.0
)
