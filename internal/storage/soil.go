// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// SoilSnapshot returns the soil health card for a farmer, or (nil, nil)
// when the farmer has no card on file.
func (s *Store) SoilSnapshot(ctx context.Context, farmerID string) (*agronomy.SoilHealthSnapshot, error) {
	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`SELECT farmer_id, ph, nitrogen_kg_ha, phosphorus_kg_ha, potassium_kg_ha,
			sulfur_ppm, zinc_ppm, iron_ppm, organic_carbon
		 FROM soil_health_cards WHERE farmer_id = ?`, farmerID)

	var snap agronomy.SoilHealthSnapshot
	var ph, n, p, k, sulfur, zn, fe, oc sql.NullFloat64
	err := row.Scan(&snap.FarmerID, &ph, &n, &p, &k, &sulfur, &zn, &fe, &oc)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordStoreQuery("select", "soil_health_cards", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordStoreQuery("select", "soil_health_cards", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query soil card for farmer %q: %w", farmerID, err)
	}

	snap.PH = nullableFloat(ph)
	snap.NitrogenKgHa = nullableFloat(n)
	snap.PhosphorusKgHa = nullableFloat(p)
	snap.PotassiumKgHa = nullableFloat(k)
	snap.SulfurPpm = nullableFloat(sulfur)
	snap.ZincPpm = nullableFloat(zn)
	snap.IronPpm = nullableFloat(fe)
	snap.OrganicCarbon = nullableFloat(oc)
	return &snap, nil
}

// SaveSoilSnapshot inserts or replaces a farmer's soil health card.
func (s *Store) SaveSoilSnapshot(ctx context.Context, snap *agronomy.SoilHealthSnapshot) error {
	if snap == nil || snap.FarmerID == "" {
		return fmt.Errorf("soil snapshot requires a farmer id")
	}

	start := time.Now()
	_, err := s.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO soil_health_cards
			(farmer_id, ph, nitrogen_kg_ha, phosphorus_kg_ha, potassium_kg_ha,
			 sulfur_ppm, zinc_ppm, iron_ppm, organic_carbon, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		snap.FarmerID, snap.PH, snap.NitrogenKgHa, snap.PhosphorusKgHa,
		snap.PotassiumKgHa, snap.SulfurPpm, snap.ZincPpm, snap.IronPpm,
		snap.OrganicCarbon)
	metrics.RecordStoreQuery("upsert", "soil_health_cards", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to save soil card for farmer %q: %w", snap.FarmerID, err)
	}
	return nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
