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

	"github.com/google/uuid"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/fertilizer"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// SaveApplication records a fertilizer application, assigning an id when
// the caller did not supply one. Returns the stored id.
func (s *Store) SaveApplication(ctx context.Context, a *fertilizer.Application) (string, error) {
	if a == nil {
		return "", fmt.Errorf("application is nil")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	start := time.Now()
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO fertilizer_applications
			(id, crop_id, farmer_id, fertilizer_type, category, quantity_kg,
			 area_acres, applied_on, stage, cost, nitrogen_percent,
			 phosphorus_percent, potassium_percent, sulfur_percent,
			 zinc_percent, source, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CropID, a.FarmerID, a.FertilizerType, string(a.Category),
		a.QuantityKg, a.AreaAcres, a.Date, a.Stage, a.Cost,
		a.NitrogenPercent, a.PhosphorusPercent, a.PotassiumPercent,
		a.SulfurPercent, a.ZincPercent, a.Source, a.Notes)
	metrics.RecordStoreQuery("insert", "fertilizer_applications", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to store fertilizer application: %w", err)
	}
	return a.ID, nil
}

// ApplicationsByCrop returns every application recorded against a crop,
// newest first.
func (s *Store) ApplicationsByCrop(ctx context.Context, cropID string) ([]fertilizer.Application, error) {
	return s.queryApplications(ctx, `WHERE crop_id = ?`, cropID)
}

// ApplicationsByFarmer returns every application a farmer has logged,
// newest first.
func (s *Store) ApplicationsByFarmer(ctx context.Context, farmerID string) ([]fertilizer.Application, error) {
	return s.queryApplications(ctx, `WHERE farmer_id = ?`, farmerID)
}

func (s *Store) queryApplications(ctx context.Context, where string, arg any) ([]fertilizer.Application, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, crop_id, farmer_id, fertilizer_type, category, quantity_kg,
			area_acres, applied_on, stage, cost, nitrogen_percent,
			phosphorus_percent, potassium_percent, sulfur_percent,
			zinc_percent, source, notes
		 FROM fertilizer_applications `+where+` ORDER BY applied_on DESC`, arg)
	metrics.RecordStoreQuery("select", "fertilizer_applications", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query fertilizer applications: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var apps []fertilizer.Application
	for rows.Next() {
		var a fertilizer.Application
		var category string
		var stage, source, notes sql.NullString
		if err := rows.Scan(&a.ID, &a.CropID, &a.FarmerID, &a.FertilizerType,
			&category, &a.QuantityKg, &a.AreaAcres, &a.Date, &stage, &a.Cost,
			&a.NitrogenPercent, &a.PhosphorusPercent, &a.PotassiumPercent,
			&a.SulfurPercent, &a.ZincPercent, &source, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan fertilizer application: %w", err)
		}
		a.Category = fertilizer.Category(category)
		a.Stage = stage.String
		a.Source = source.String
		a.Notes = notes.String
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fertilizer applications: %w", err)
	}
	return apps, nil
}

// DeleteApplication removes one recorded application.
func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	start := time.Now()
	_, err := s.conn.ExecContext(ctx,
		`DELETE FROM fertilizer_applications WHERE id = ?`, id)
	metrics.RecordStoreQuery("delete", "fertilizer_applications", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete fertilizer application %q: %w", id, err)
	}
	return nil
}
