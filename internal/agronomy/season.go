// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package agronomy

import "strings"

// Season identifies one of India's three cropping seasons.
type Season string

const (
	// SeasonKharif is the monsoon season (June-October sowing).
	SeasonKharif Season = "KHARIF"
	// SeasonRabi is the winter season (October-March sowing).
	SeasonRabi Season = "RABI"
	// SeasonZaid is the short summer season (February-June sowing).
	SeasonZaid Season = "ZAID"
)

// ParseSeason normalizes a season string. Unrecognized values are returned
// upper-cased with ok=false so callers can fall back to "varies" behavior
// without losing the original token.
func ParseSeason(s string) (Season, bool) {
	switch up := Season(strings.ToUpper(strings.TrimSpace(s))); up {
	case SeasonKharif, SeasonRabi, SeasonZaid:
		return up, true
	default:
		return up, false
	}
}

// PlantingMonths returns the typical sowing window for the season, or
// "Varies" for unrecognized seasons.
func (s Season) PlantingMonths() string {
	switch s {
	case SeasonKharif:
		return "June - July"
	case SeasonRabi:
		return "October - November"
	case SeasonZaid:
		return "February - March"
	default:
		return "Varies"
	}
}

// HarvestMonths returns the typical harvest window for the season, or
// "Varies" for unrecognized seasons.
func (s Season) HarvestMonths() string {
	switch s {
	case SeasonKharif:
		return "September - October"
	case SeasonRabi:
		return "March - April"
	case SeasonZaid:
		return "May - June"
	default:
		return "Varies"
	}
}
