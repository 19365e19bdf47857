// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"fmt"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/suitability"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// seedIfEmpty loads the built-in reference dataset when the zones table
// is empty. Operational tables (soil cards, applications, detections) are
// never seeded.
func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM zones`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count zones: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, z := range seedZones {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO zones (code, name, region, climate_type, soil_types,
				kharif_crops, rabi_crops, zaid_crops, lat_min, lat_max, lon_min, lon_max)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			z.Code, z.Name, z.Region, z.ClimateType, z.SoilTypes,
			z.KharifCrops, z.RabiCrops, z.ZaidCrops,
			z.LatMin, z.LatMax, z.LonMin, z.LonMax); err != nil {
			return fmt.Errorf("failed to seed zone %q: %w", z.Code, err)
		}
	}

	for _, m := range seedDistricts {
		altNames, err := encodeStrings(m.AltNames)
		if err != nil {
			return fmt.Errorf("failed to encode alt names for %q: %w", m.District, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO district_mappings (district, state, zone_code,
				latitude, longitude, alt_names, region, verified)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.District, m.State, m.ZoneCode, m.Latitude, m.Longitude,
			altNames, m.Region, m.Verified); err != nil {
			return fmt.Errorf("failed to seed district %q: %w", m.District, err)
		}
	}

	for _, r := range seedSuitability {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO crop_suitability (zone_code, crop_code, crop_name,
				crop_name_local, climate_score, soil_score, terrain_score,
				water_score, rainfed_yield_kg_ha, irrigated_yield_kg_ha,
				water_requirement_mm, growing_season_days, kharif_suitable,
				rabi_suitable, zaid_suitable, climate_risk_level)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ZoneCode, r.CropCode, r.CropName, r.CropNameLocal,
			r.ClimateScore, r.SoilScore, r.TerrainScore, r.WaterScore,
			r.RainfedYieldKgHa, r.IrrigatedYieldKgHa, r.WaterRequirementMm,
			r.GrowingSeasonDays, r.KharifSuitable, r.RabiSuitable,
			r.ZaidSuitable, r.ClimateRiskLevel); err != nil {
			return fmt.Errorf("failed to seed suitability row %s/%s: %w", r.ZoneCode, r.CropCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logging.Info().
		Int("zones", len(seedZones)).
		Int("districts", len(seedDistricts)).
		Int("suitability_rows", len(seedSuitability)).
		Msg("Seeded reference dataset")
	return nil
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

// seedZones covers the 15 planning regions collapsed into the 12 named
// agro-climatic zones the rotation tables key on. Envelopes are coarse
// bounding boxes, good enough for the last-resort coordinate fallback.
var seedZones = []zone.Zone{
	{
		Code: "AEZ-01", Name: "Trans Himalayan Zone", Region: "North",
		ClimateType: "Cold arid", SoilTypes: "Skeletal, sandy",
		KharifCrops: "Barley,Buckwheat", RabiCrops: "Wheat,Mustard,Peas", ZaidCrops: "Peas",
		LatMin: 32.0, LatMax: 37.0, LonMin: 75.5, LonMax: 80.0,
	},
	{
		Code: "AEZ-02", Name: "Himalayan Zone", Region: "North",
		ClimateType: "Humid temperate", SoilTypes: "Brown forest, podzolic",
		KharifCrops: "Rice,Maize", RabiCrops: "Wheat,Peas,Lentil", ZaidCrops: "Greengram,Sesame",
		LatMin: 27.0, LatMax: 35.0, LonMin: 73.0, LonMax: 97.5,
	},
	{
		Code: "AEZ-03", Name: "Indo-Gangetic Plains", Region: "North",
		ClimateType: "Semi-arid to sub-humid", SoilTypes: "Alluvial",
		KharifCrops: "Rice,Maize,Sugarcane", RabiCrops: "Wheat,Mustard,Potato,Lentil", ZaidCrops: "Greengram,Cowpea",
		LatMin: 24.0, LatMax: 31.5, LonMin: 74.0, LonMax: 88.5,
	},
	{
		Code: "AEZ-04", Name: "Eastern Plateau and Hills", Region: "East",
		ClimateType: "Sub-humid", SoilTypes: "Red and lateritic",
		KharifCrops: "Rice,Maize", RabiCrops: "Lentil,Peas", ZaidCrops: "Sesame,Greengram",
		LatMin: 19.0, LatMax: 25.0, LonMin: 80.0, LonMax: 87.5,
	},
	{
		Code: "AEZ-05", Name: "Central Plateau and Hills", Region: "Central",
		ClimateType: "Semi-arid", SoilTypes: "Black, mixed red and black",
		KharifCrops: "Soybean,Sorghum,Rice", RabiCrops: "Wheat,Chickpea,Mustard", ZaidCrops: "Sesame",
		LatMin: 21.0, LatMax: 26.5, LonMin: 74.0, LonMax: 83.0,
	},
	{
		Code: "AEZ-06", Name: "Western Plateau and Hills", Region: "West",
		ClimateType: "Semi-arid", SoilTypes: "Deep black",
		KharifCrops: "Cotton,Sorghum,Soybean", RabiCrops: "Wheat,Chickpea", ZaidCrops: "Greengram",
		LatMin: 17.5, LatMax: 22.0, LonMin: 73.5, LonMax: 80.5,
	},
	{
		Code: "AEZ-07", Name: "Southern Plateau and Hills", Region: "South",
		ClimateType: "Semi-arid tropical", SoilTypes: "Red loamy, black",
		KharifCrops: "Rice,Maize,Cotton,Groundnut", RabiCrops: "Groundnut,Sunflower,Chickpea", ZaidCrops: "Sunflower,Sesame",
		LatMin: 11.5, LatMax: 19.5, LonMin: 74.5, LonMax: 80.5,
	},
	{
		Code: "AEZ-08", Name: "East Coast Plains and Hills", Region: "East",
		ClimateType: "Sub-humid coastal", SoilTypes: "Coastal alluvium, red",
		KharifCrops: "Rice,Maize", RabiCrops: "Blackgram,Groundnut", ZaidCrops: "Sesame,Sunflower",
		LatMin: 10.0, LatMax: 20.5, LonMin: 78.5, LonMax: 87.0,
	},
	{
		Code: "AEZ-09", Name: "West Coast Plains and Hills", Region: "West",
		ClimateType: "Humid coastal", SoilTypes: "Laterite, coastal alluvium",
		KharifCrops: "Rice,Coconut", RabiCrops: "Blackgram,Groundnut", ZaidCrops: "Sesame",
		LatMin: 8.0, LatMax: 20.5, LonMin: 72.5, LonMax: 77.5,
	},
	{
		Code: "AEZ-10", Name: "Gujarat Plains and Hills", Region: "West",
		ClimateType: "Arid to semi-arid", SoilTypes: "Black, alluvial, saline coastal",
		KharifCrops: "Cotton,Groundnut,Pearl Millet", RabiCrops: "Wheat,Mustard,Chickpea", ZaidCrops: "Sesame",
		LatMin: 20.0, LatMax: 24.5, LonMin: 68.5, LonMax: 74.5,
	},
	{
		Code: "AEZ-11", Name: "Western Dry Region", Region: "West",
		ClimateType: "Hot arid", SoilTypes: "Desert, sandy",
		KharifCrops: "Pearl Millet,Cluster Bean,Sorghum", RabiCrops: "Wheat,Mustard,Chickpea", ZaidCrops: "Sesame",
		LatMin: 24.5, LatMax: 30.0, LonMin: 69.5, LonMax: 75.5,
	},
	{
		Code: "AEZ-12", Name: "Island Region", Region: "Islands",
		ClimateType: "Humid tropical", SoilTypes: "Coastal sandy, lateritic",
		KharifCrops: "Rice,Coconut", RabiCrops: "Blackgram,Groundnut", ZaidCrops: "Sesame",
		LatMin: 6.5, LatMax: 13.5, LonMin: 92.0, LonMax: 94.0,
	},
}

// seedDistricts anchors the resolver chain: verified centroids for a
// spread of districts across the zones above.
var seedDistricts = []zone.DistrictMapping{
	{District: "Leh", State: "Ladakh", ZoneCode: "AEZ-01", Latitude: 34.15, Longitude: 77.58, Verified: true},
	{District: "Shimla", State: "Himachal Pradesh", ZoneCode: "AEZ-02", Latitude: 31.10, Longitude: 77.17, Verified: true},
	{District: "Dehradun", State: "Uttarakhand", ZoneCode: "AEZ-02", Latitude: 30.32, Longitude: 78.03, Verified: true},
	{District: "Ludhiana", State: "Punjab", ZoneCode: "AEZ-03", Latitude: 30.90, Longitude: 75.85, Verified: true},
	{District: "Karnal", State: "Haryana", ZoneCode: "AEZ-03", Latitude: 29.69, Longitude: 76.99, Verified: true},
	{District: "Lucknow", State: "Uttar Pradesh", ZoneCode: "AEZ-03", Latitude: 26.85, Longitude: 80.95, Verified: true},
	{District: "Varanasi", State: "Uttar Pradesh", ZoneCode: "AEZ-03", Latitude: 25.32, Longitude: 82.97, AltNames: []string{"Banaras", "Kashi"}, Verified: true},
	{District: "Patna", State: "Bihar", ZoneCode: "AEZ-03", Latitude: 25.59, Longitude: 85.14, Verified: true},
	{District: "Ranchi", State: "Jharkhand", ZoneCode: "AEZ-04", Latitude: 23.34, Longitude: 85.31, Verified: true},
	{District: "Raipur", State: "Chhattisgarh", ZoneCode: "AEZ-04", Latitude: 21.25, Longitude: 81.63, Verified: true},
	{District: "Bhopal", State: "Madhya Pradesh", ZoneCode: "AEZ-05", Latitude: 23.26, Longitude: 77.41, Verified: true},
	{District: "Indore", State: "Madhya Pradesh", ZoneCode: "AEZ-05", Latitude: 22.72, Longitude: 75.86, Verified: true},
	{District: "Nagpur", State: "Maharashtra", ZoneCode: "AEZ-06", Latitude: 21.15, Longitude: 79.09, Verified: true},
	{District: "Pune", State: "Maharashtra", ZoneCode: "AEZ-06", Latitude: 18.52, Longitude: 73.86, AltNames: []string{"Poona"}, Verified: true},
	{District: "Bangalore Rural", State: "Karnataka", ZoneCode: "AEZ-07", Latitude: 13.28, Longitude: 77.58, AltNames: []string{"Bengaluru Rural"}, Verified: true},
	{District: "Anantapur", State: "Andhra Pradesh", ZoneCode: "AEZ-07", Latitude: 14.68, Longitude: 77.60, AltNames: []string{"Anantapuramu"}, Verified: true},
	{District: "Coimbatore", State: "Tamil Nadu", ZoneCode: "AEZ-07", Latitude: 11.02, Longitude: 76.97, Verified: true},
	{District: "Guntur", State: "Andhra Pradesh", ZoneCode: "AEZ-08", Latitude: 16.31, Longitude: 80.44, Verified: true},
	{District: "Cuttack", State: "Odisha", ZoneCode: "AEZ-08", Latitude: 20.46, Longitude: 85.88, Verified: true},
	{District: "Thrissur", State: "Kerala", ZoneCode: "AEZ-09", Latitude: 10.53, Longitude: 76.21, AltNames: []string{"Trichur"}, Verified: true},
	{District: "Ratnagiri", State: "Maharashtra", ZoneCode: "AEZ-09", Latitude: 16.99, Longitude: 73.30, Verified: true},
	{District: "Rajkot", State: "Gujarat", ZoneCode: "AEZ-10", Latitude: 22.30, Longitude: 70.80, Verified: true},
	{District: "Vadodara", State: "Gujarat", ZoneCode: "AEZ-10", Latitude: 22.31, Longitude: 73.18, AltNames: []string{"Baroda"}, Verified: true},
	{District: "Jodhpur", State: "Rajasthan", ZoneCode: "AEZ-11", Latitude: 26.24, Longitude: 73.02, Verified: true},
	{District: "Bikaner", State: "Rajasthan", ZoneCode: "AEZ-11", Latitude: 28.02, Longitude: 73.31, Verified: true},
	{District: "Port Blair", State: "Andaman and Nicobar Islands", ZoneCode: "AEZ-12", Latitude: 11.62, Longitude: 92.73, Verified: true},
}

// seedSuitability is a compact extract of the GAEZ dataset: component
// scores and yield figures for the staple crops of the most farmed zones.
var seedSuitability = []suitability.Row{
	// Indo-Gangetic Plains
	{ZoneCode: "AEZ-03", CropCode: "RICE", CropName: "Rice", CropNameLocal: "धान",
		ClimateScore: 88, SoilScore: 85, TerrainScore: 92, WaterScore: 80,
		RainfedYieldKgHa: f(3200), IrrigatedYieldKgHa: f(5800), WaterRequirementMm: f(1250),
		GrowingSeasonDays: i(135), KharifSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-03", CropCode: "WHEAT", CropName: "Wheat", CropNameLocal: "गेहूं",
		ClimateScore: 90, SoilScore: 88, TerrainScore: 93, WaterScore: 78,
		RainfedYieldKgHa: f(2800), IrrigatedYieldKgHa: f(5200), WaterRequirementMm: f(450),
		GrowingSeasonDays: i(120), RabiSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-03", CropCode: "MAIZE", CropName: "Maize", CropNameLocal: "मक्का",
		ClimateScore: 82, SoilScore: 80, TerrainScore: 88, WaterScore: 75,
		RainfedYieldKgHa: f(2600), IrrigatedYieldKgHa: f(4800), WaterRequirementMm: f(550),
		GrowingSeasonDays: i(100), KharifSuitable: true, ZaidSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-03", CropCode: "MUSTARD", CropName: "Mustard", CropNameLocal: "सरसों",
		ClimateScore: 84, SoilScore: 82, TerrainScore: 90, WaterScore: 72,
		RainfedYieldKgHa: f(1100), IrrigatedYieldKgHa: f(1800), WaterRequirementMm: f(300),
		GrowingSeasonDays: i(110), RabiSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-03", CropCode: "SUGARCANE", CropName: "Sugarcane", CropNameLocal: "गन्ना",
		ClimateScore: 80, SoilScore: 84, TerrainScore: 90, WaterScore: 65,
		IrrigatedYieldKgHa: f(70000), WaterRequirementMm: f(2000),
		GrowingSeasonDays: i(330), KharifSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-03", CropCode: "GREENGRAM", CropName: "Greengram", CropNameLocal: "मूंग",
		ClimateScore: 78, SoilScore: 76, TerrainScore: 88, WaterScore: 82,
		RainfedYieldKgHa: f(600), IrrigatedYieldKgHa: f(1100), WaterRequirementMm: f(250),
		GrowingSeasonDays: i(65), KharifSuitable: true, ZaidSuitable: true, ClimateRiskLevel: "LOW"},

	// Central Plateau and Hills
	{ZoneCode: "AEZ-05", CropCode: "SOYBEAN", CropName: "Soybean", CropNameLocal: "सोयाबीन",
		ClimateScore: 86, SoilScore: 84, TerrainScore: 82, WaterScore: 74,
		RainfedYieldKgHa: f(1200), IrrigatedYieldKgHa: f(2200), WaterRequirementMm: f(500),
		GrowingSeasonDays: i(100), KharifSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-05", CropCode: "WHEAT", CropName: "Wheat", CropNameLocal: "गेहूं",
		ClimateScore: 80, SoilScore: 82, TerrainScore: 80, WaterScore: 70,
		RainfedYieldKgHa: f(1800), IrrigatedYieldKgHa: f(4200), WaterRequirementMm: f(450),
		GrowingSeasonDays: i(125), RabiSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-05", CropCode: "CHICKPEA", CropName: "Chickpea", CropNameLocal: "चना",
		ClimateScore: 85, SoilScore: 86, TerrainScore: 82, WaterScore: 78,
		RainfedYieldKgHa: f(900), IrrigatedYieldKgHa: f(1600), WaterRequirementMm: f(280),
		GrowingSeasonDays: i(105), RabiSuitable: true, ClimateRiskLevel: "LOW"},

	// Southern Plateau and Hills
	{ZoneCode: "AEZ-07", CropCode: "RICE", CropName: "Rice", CropNameLocal: "நெல்",
		ClimateScore: 80, SoilScore: 74, TerrainScore: 78, WaterScore: 68,
		RainfedYieldKgHa: f(2400), IrrigatedYieldKgHa: f(5000), WaterRequirementMm: f(1200),
		GrowingSeasonDays: i(130), KharifSuitable: true, RabiSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-07", CropCode: "GROUNDNUT", CropName: "Groundnut", CropNameLocal: "மூங்கடலை",
		ClimateScore: 86, SoilScore: 80, TerrainScore: 76, WaterScore: 72,
		RainfedYieldKgHa: f(1100), IrrigatedYieldKgHa: f(2200), WaterRequirementMm: f(500),
		GrowingSeasonDays: i(110), KharifSuitable: true, RabiSuitable: true, ClimateRiskLevel: "HIGH"},
	{ZoneCode: "AEZ-07", CropCode: "RAGI", CropName: "Finger Millet", CropNameLocal: "ರಾಗಿ",
		ClimateScore: 88, SoilScore: 78, TerrainScore: 80, WaterScore: 84,
		RainfedYieldKgHa: f(1500), IrrigatedYieldKgHa: f(2600), WaterRequirementMm: f(350),
		GrowingSeasonDays: i(105), KharifSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-07", CropCode: "SUNFLOWER", CropName: "Sunflower", CropNameLocal: "ಸೂರ್ಯಕಾಂತಿ",
		ClimateScore: 78, SoilScore: 74, TerrainScore: 78, WaterScore: 70,
		RainfedYieldKgHa: f(800), IrrigatedYieldKgHa: f(1500), WaterRequirementMm: f(400),
		GrowingSeasonDays: i(95), RabiSuitable: true, ZaidSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-07", CropCode: "COTTON", CropName: "Cotton", CropNameLocal: "ಹತ್ತಿ",
		ClimateScore: 76, SoilScore: 78, TerrainScore: 74, WaterScore: 62,
		RainfedYieldKgHa: f(1400), IrrigatedYieldKgHa: f(2400), WaterRequirementMm: f(700),
		GrowingSeasonDays: i(170), KharifSuitable: true, ClimateRiskLevel: "HIGH"},

	// Gujarat Plains and Hills
	{ZoneCode: "AEZ-10", CropCode: "COTTON", CropName: "Cotton", CropNameLocal: "કપાસ",
		ClimateScore: 84, SoilScore: 86, TerrainScore: 85, WaterScore: 66,
		RainfedYieldKgHa: f(1600), IrrigatedYieldKgHa: f(2800), WaterRequirementMm: f(700),
		GrowingSeasonDays: i(170), KharifSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-10", CropCode: "GROUNDNUT", CropName: "Groundnut", CropNameLocal: "મગફળી",
		ClimateScore: 87, SoilScore: 84, TerrainScore: 86, WaterScore: 70,
		RainfedYieldKgHa: f(1300), IrrigatedYieldKgHa: f(2400), WaterRequirementMm: f(500),
		GrowingSeasonDays: i(110), KharifSuitable: true, ClimateRiskLevel: "MEDIUM"},
	{ZoneCode: "AEZ-10", CropCode: "WHEAT", CropName: "Wheat", CropNameLocal: "ઘઉં",
		ClimateScore: 78, SoilScore: 80, TerrainScore: 84, WaterScore: 64,
		RainfedYieldKgHa: f(1600), IrrigatedYieldKgHa: f(3800), WaterRequirementMm: f(450),
		GrowingSeasonDays: i(115), RabiSuitable: true, ClimateRiskLevel: "LOW"},

	// Western Dry Region
	{ZoneCode: "AEZ-11", CropCode: "PEARL_MILLET", CropName: "Pearl Millet", CropNameLocal: "बाजरा",
		ClimateScore: 90, SoilScore: 74, TerrainScore: 88, WaterScore: 86,
		RainfedYieldKgHa: f(900), IrrigatedYieldKgHa: f(1800), WaterRequirementMm: f(300),
		GrowingSeasonDays: i(80), KharifSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-11", CropCode: "CLUSTER_BEAN", CropName: "Cluster Bean", CropNameLocal: "ग्वार",
		ClimateScore: 88, SoilScore: 72, TerrainScore: 86, WaterScore: 88,
		RainfedYieldKgHa: f(700), IrrigatedYieldKgHa: f(1200), WaterRequirementMm: f(250),
		GrowingSeasonDays: i(90), KharifSuitable: true, ClimateRiskLevel: "LOW"},
	{ZoneCode: "AEZ-11", CropCode: "MUSTARD", CropName: "Mustard", CropNameLocal: "सरसों",
		ClimateScore: 76, SoilScore: 70, TerrainScore: 84, WaterScore: 60,
		RainfedYieldKgHa: f(800), IrrigatedYieldKgHa: f(1500), WaterRequirementMm: f(300),
		GrowingSeasonDays: i(110), RabiSuitable: true, ClimateRiskLevel: "MEDIUM"},
}
