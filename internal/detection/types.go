// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package detection

import (
	"fmt"
	"strings"
	"time"
)

// SeverityLevel grades how far a detected disease has progressed.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "LOW"
	SeverityMedium   SeverityLevel = "MEDIUM"
	SeverityHigh     SeverityLevel = "HIGH"
	SeverityCritical SeverityLevel = "CRITICAL"
)

// String implements fmt.Stringer.
func (s SeverityLevel) String() string { return string(s) }

// ParseSeverityLevel normalizes and validates a severity string.
func ParseSeverityLevel(s string) (SeverityLevel, error) {
	switch up := SeverityLevel(strings.ToUpper(strings.TrimSpace(s))); up {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return up, nil
	default:
		return "", fmt.Errorf("unknown severity level %q", s)
	}
}

// rank orders severities for sorting: CRITICAL 4 down to LOW 1, unknown 0.
func (s SeverityLevel) rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Detection is one disease detection result for a crop image.
type Detection struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`
	// UserID is the farmer who submitted the image.
	UserID int64 `json:"user_id"`
	// CropID links the detection to a crop record; zero when unknown.
	CropID int64 `json:"crop_id,omitempty"`
	// ImagePath locates the analyzed image.
	ImagePath string `json:"image_path"`
	// DiseaseName is the classified disease, e.g. "Rice Blast".
	DiseaseName string `json:"disease_name"`
	// DiseaseNameLocal is the disease name in the local script.
	DiseaseNameLocal string `json:"disease_name_local,omitempty"`
	// ConfidenceScore is the model confidence on a 0-100 scale.
	ConfidenceScore float64 `json:"confidence_score"`
	// Severity grades the progression of the disease.
	Severity SeverityLevel `json:"severity_level"`
	// AffectedAreaPercent estimates how much of the plant is affected.
	AffectedAreaPercent float64 `json:"affected_area_percent,omitempty"`
	// Treatments lists recommended treatment actions.
	Treatments []string `json:"treatment_recommendations,omitempty"`
	// DetectedAt is when the classification ran.
	DetectedAt time.Time `json:"detection_timestamp"`
	// ModelVersion identifies the classifier build.
	ModelVersion string `json:"model_version,omitempty"`
}
