// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package detection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
)

// ErrNotFound is returned when no detection matches the requested id.
var ErrNotFound = errors.New("detection not found")

// ErrInvalidDetection wraps validation failures on incoming detections.
var ErrInvalidDetection = errors.New("invalid detection")

// Store persists disease detections. The DuckDB reference store satisfies
// it.
type Store interface {
	SaveDetection(ctx context.Context, d *Detection) (int64, error)
	DetectionsByUser(ctx context.Context, userID int64) ([]Detection, error)
	DetectionsByCrop(ctx context.Context, cropID int64) ([]Detection, error)
	DetectionByID(ctx context.Context, id int64) (*Detection, error)
	MostRecentDetectionByCrop(ctx context.Context, cropID int64) (*Detection, error)
	CountDetectionsByUser(ctx context.Context, userID int64) (int64, error)
	CountDetectionsByCrop(ctx context.Context, cropID int64) (int64, error)
	DeleteDetection(ctx context.Context, id int64) error
}

// Service validates, stores, and retrieves disease detections.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService returns a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Record validates and stores a detection, returning it with its assigned
// id. A zero detection timestamp defaults to now.
func (s *Service) Record(ctx context.Context, d Detection) (Detection, error) {
	if err := validateDetection(&d); err != nil {
		return Detection{}, err
	}
	if d.DetectedAt.IsZero() {
		d.DetectedAt = s.now()
	}

	id, err := s.store.SaveDetection(ctx, &d)
	if err != nil {
		return Detection{}, fmt.Errorf("failed to store detection: %w", err)
	}
	d.ID = id

	logging.Info().
		Int64("detection_id", d.ID).
		Int64("user_id", d.UserID).
		Str("disease", d.DiseaseName).
		Float64("confidence", d.ConfidenceScore).
		Str("severity", d.Severity.String()).
		Msg("Disease detection stored")
	return d, nil
}

// ForUser returns all detections submitted by a user.
func (s *Service) ForUser(ctx context.Context, userID int64) ([]Detection, error) {
	return s.store.DetectionsByUser(ctx, userID)
}

// ForCrop returns all detections recorded against a crop.
func (s *Service) ForCrop(ctx context.Context, cropID int64) ([]Detection, error) {
	return s.store.DetectionsByCrop(ctx, cropID)
}

// ByID returns one detection or ErrNotFound.
func (s *Service) ByID(ctx context.Context, id int64) (*Detection, error) {
	return s.store.DetectionByID(ctx, id)
}

// MostRecentForCrop returns the latest detection for a crop or ErrNotFound.
func (s *Service) MostRecentForCrop(ctx context.Context, cropID int64) (*Detection, error) {
	return s.store.MostRecentDetectionByCrop(ctx, cropID)
}

// CountForUser returns how many detections a user has submitted.
func (s *Service) CountForUser(ctx context.Context, userID int64) (int64, error) {
	return s.store.CountDetectionsByUser(ctx, userID)
}

// CountForCrop returns how many detections a crop has accumulated.
func (s *Service) CountForCrop(ctx context.Context, cropID int64) (int64, error) {
	return s.store.CountDetectionsByCrop(ctx, cropID)
}

// Delete removes a detection by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteDetection(ctx, id); err != nil {
		return err
	}
	logging.Info().Int64("detection_id", id).Msg("Disease detection deleted")
	return nil
}

func validateDetection(d *Detection) error {
	if d.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidDetection)
	}
	if d.ImagePath == "" {
		return fmt.Errorf("%w: image path is required", ErrInvalidDetection)
	}
	if d.ConfidenceScore < 0 || d.ConfidenceScore > 100 {
		return fmt.Errorf("%w: confidence score %.2f is outside 0-100", ErrInvalidDetection, d.ConfidenceScore)
	}
	severity, err := ParseSeverityLevel(string(d.Severity))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDetection, err)
	}
	d.Severity = severity
	return nil
}
