// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package detection

import "github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"

// RankByConfidence sorts descending by confidence score; among equal
// confidences the higher severity leads. nil input returns nil.
func RankByConfidence(detections []Detection) []Detection {
	// Stable-sorting the severity-ordered list by confidence keeps severity
	// as the tie-break.
	return ranking.Descending(RankBySeverity(detections), func(d Detection) float64 {
		return d.ConfidenceScore
	})
}

// RankBySeverity sorts descending by severity grade (CRITICAL first).
func RankBySeverity(detections []Detection) []Detection {
	return ranking.Descending(detections, func(d Detection) float64 {
		return float64(d.Severity.rank())
	})
}

// FilterByConfidenceThreshold keeps detections with confidence at or above
// threshold.
func FilterByConfidenceThreshold(detections []Detection, threshold float64) []Detection {
	return ranking.Filter(detections, func(d Detection) bool {
		return d.ConfidenceScore >= threshold
	})
}

// HasLowConfidence reports whether any detection falls below threshold.
func HasLowConfidence(detections []Detection, threshold float64) bool {
	for _, d := range detections {
		if d.ConfidenceScore < threshold {
			return true
		}
	}
	return false
}
