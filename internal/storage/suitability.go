// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/suitability"
)

// SuitabilityRows returns the GAEZ reference rows for a zone. An unknown
// zone code yields an empty slice, not an error; the aggregator reports
// that as a structured "no reference data" result.
func (s *Store) SuitabilityRows(ctx context.Context, zoneCode string) ([]suitability.Row, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT crop_code, crop_name, crop_name_local, zone_code,
			climate_score, soil_score, terrain_score, water_score,
			rainfed_yield_kg_ha, irrigated_yield_kg_ha,
			water_requirement_mm, growing_season_days,
			kharif_suitable, rabi_suitable, zaid_suitable, climate_risk_level
		 FROM crop_suitability WHERE zone_code = ? ORDER BY crop_code`, zoneCode)
	metrics.RecordStoreQuery("select", "crop_suitability", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query suitability rows for zone %q: %w", zoneCode, err)
	}
	defer rows.Close() //nolint:errcheck

	var result []suitability.Row
	for rows.Next() {
		var r suitability.Row
		var nameLocal, riskLevel sql.NullString
		var rainfed, irrigated, water sql.NullFloat64
		var seasonDays sql.NullInt64
		if err := rows.Scan(&r.CropCode, &r.CropName, &nameLocal, &r.ZoneCode,
			&r.ClimateScore, &r.SoilScore, &r.TerrainScore, &r.WaterScore,
			&rainfed, &irrigated, &water, &seasonDays,
			&r.KharifSuitable, &r.RabiSuitable, &r.ZaidSuitable, &riskLevel); err != nil {
			return nil, fmt.Errorf("failed to scan suitability row: %w", err)
		}
		r.CropNameLocal = nameLocal.String
		r.ClimateRiskLevel = riskLevel.String
		if rainfed.Valid {
			r.RainfedYieldKgHa = &rainfed.Float64
		}
		if irrigated.Valid {
			r.IrrigatedYieldKgHa = &irrigated.Float64
		}
		if water.Valid {
			r.WaterRequirementMm = &water.Float64
		}
		if seasonDays.Valid {
			days := int(seasonDays.Int64)
			r.GrowingSeasonDays = &days
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suitability rows: %w", err)
	}
	return result, nil
}
