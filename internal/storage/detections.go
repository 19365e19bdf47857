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

	json "github.com/goccy/go-json"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/detection"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

const detectionColumns = `id, user_id, crop_id, image_path, disease_name,
	disease_name_local, confidence_score, severity_level,
	affected_area_percent, treatments, detected_at, model_version`

// SaveDetection stores a disease detection and returns its assigned id.
func (s *Store) SaveDetection(ctx context.Context, d *detection.Detection) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("detection is nil")
	}

	treatments, err := encodeStrings(d.Treatments)
	if err != nil {
		return 0, fmt.Errorf("failed to encode treatments: %w", err)
	}

	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`INSERT INTO disease_detections
			(user_id, crop_id, image_path, disease_name, disease_name_local,
			 confidence_score, severity_level, affected_area_percent,
			 treatments, detected_at, model_version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		d.UserID, d.CropID, d.ImagePath, d.DiseaseName, d.DiseaseNameLocal,
		d.ConfidenceScore, string(d.Severity), d.AffectedAreaPercent,
		treatments, d.DetectedAt, d.ModelVersion)

	var id int64
	err = row.Scan(&id)
	metrics.RecordStoreQuery("insert", "disease_detections", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to store detection: %w", err)
	}
	return id, nil
}

// DetectionsByUser returns a user's detections, newest first.
func (s *Store) DetectionsByUser(ctx context.Context, userID int64) ([]detection.Detection, error) {
	return s.queryDetections(ctx, `WHERE user_id = ?`, userID)
}

// DetectionsByCrop returns a crop's detections, newest first.
func (s *Store) DetectionsByCrop(ctx context.Context, cropID int64) ([]detection.Detection, error) {
	return s.queryDetections(ctx, `WHERE crop_id = ?`, cropID)
}

// DetectionByID returns one detection or detection.ErrNotFound.
func (s *Store) DetectionByID(ctx context.Context, id int64) (*detection.Detection, error) {
	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+detectionColumns+` FROM disease_detections WHERE id = ?`, id)

	d, err := scanDetection(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), nil)
		return nil, fmt.Errorf("%w: id %d", detection.ErrNotFound, id)
	}
	metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query detection %d: %w", id, err)
	}
	return d, nil
}

// MostRecentDetectionByCrop returns the latest detection for a crop or
// detection.ErrNotFound.
func (s *Store) MostRecentDetectionByCrop(ctx context.Context, cropID int64) (*detection.Detection, error) {
	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+detectionColumns+` FROM disease_detections
		 WHERE crop_id = ? ORDER BY detected_at DESC LIMIT 1`, cropID)

	d, err := scanDetection(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), nil)
		return nil, fmt.Errorf("%w: crop %d", detection.ErrNotFound, cropID)
	}
	metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest detection for crop %d: %w", cropID, err)
	}
	return d, nil
}

// CountDetectionsByUser returns how many detections a user has submitted.
func (s *Store) CountDetectionsByUser(ctx context.Context, userID int64) (int64, error) {
	return s.countDetections(ctx, `WHERE user_id = ?`, userID)
}

// CountDetectionsByCrop returns how many detections a crop has.
func (s *Store) CountDetectionsByCrop(ctx context.Context, cropID int64) (int64, error) {
	return s.countDetections(ctx, `WHERE crop_id = ?`, cropID)
}

// DeleteDetection removes one detection.
func (s *Store) DeleteDetection(ctx context.Context, id int64) error {
	start := time.Now()
	_, err := s.conn.ExecContext(ctx,
		`DELETE FROM disease_detections WHERE id = ?`, id)
	metrics.RecordStoreQuery("delete", "disease_detections", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete detection %d: %w", id, err)
	}
	return nil
}

func (s *Store) queryDetections(ctx context.Context, where string, arg any) ([]detection.Detection, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+detectionColumns+` FROM disease_detections `+where+
			` ORDER BY detected_at DESC`, arg)
	metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query detections: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var detections []detection.Detection
	for rows.Next() {
		d, err := scanDetection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detection: %w", err)
		}
		detections = append(detections, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate detections: %w", err)
	}
	return detections, nil
}

func (s *Store) countDetections(ctx context.Context, where string, arg any) (int64, error) {
	start := time.Now()
	var count int64
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM disease_detections `+where, arg).Scan(&count)
	metrics.RecordStoreQuery("select", "disease_detections", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count detections: %w", err)
	}
	return count, nil
}

func scanDetection(sc scanner) (*detection.Detection, error) {
	var d detection.Detection
	var nameLocal, treatments, modelVersion sql.NullString
	var cropID sql.NullInt64
	var affected sql.NullFloat64
	var severity string
	if err := sc.Scan(&d.ID, &d.UserID, &cropID, &d.ImagePath, &d.DiseaseName,
		&nameLocal, &d.ConfidenceScore, &severity, &affected,
		&treatments, &d.DetectedAt, &modelVersion); err != nil {
		return nil, err
	}
	d.CropID = cropID.Int64
	d.DiseaseNameLocal = nameLocal.String
	d.Severity = detection.SeverityLevel(severity)
	d.AffectedAreaPercent = affected.Float64
	d.ModelVersion = modelVersion.String
	if treatments.Valid && treatments.String != "" {
		if err := json.Unmarshal([]byte(treatments.String), &d.Treatments); err != nil {
			return nil, fmt.Errorf("failed to decode treatments for detection %d: %w", d.ID, err)
		}
	}
	return &d, nil
}
