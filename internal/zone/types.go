// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package zone

// Zone is one agro-ecological zone from the reference dataset. Immutable
// after load.
type Zone struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Region      string `json:"region,omitempty"`
	ClimateType string `json:"climate_type,omitempty"`
	SoilTypes   string `json:"soil_types,omitempty"`

	// Season suitability descriptors: comma-separated crop names the
	// dataset flags as suitable for each season in this zone.
	KharifCrops string `json:"kharif_crops,omitempty"`
	RabiCrops   string `json:"rabi_crops,omitempty"`
	ZaidCrops   string `json:"zaid_crops,omitempty"`

	// Geographic envelope of the zone, used as the last resolution
	// fallback for coordinate lookups.
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// Contains reports whether the point sits inside the zone's envelope.
func (z *Zone) Contains(lat, lon float64) bool {
	return lat >= z.LatMin && lat <= z.LatMax &&
		lon >= z.LonMin && lon <= z.LonMax
}

// DistrictMapping ties a district to its zone. Centroid coordinates back
// the bounding-box fallback for coordinate-only requests.
type DistrictMapping struct {
	District string   `json:"district"`
	State    string   `json:"state"`
	ZoneCode string   `json:"zone_code"`
	Latitude float64  `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// AltNames holds historical or transliterated spellings
	// ("Bengaluru" for "Bangalore").
	AltNames []string `json:"alt_names,omitempty"`
	Region   string   `json:"region,omitempty"`
	Verified bool     `json:"verified"`
}
