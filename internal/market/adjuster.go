// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package market

import (
	"fmt"
	"sort"
	"strings"
)

// AdjustScore applies the market adjustment for a snapshot to a base
// suitability score. It is a no-op when include is false or the snapshot
// is nil; the result is clamped to [0,100].
func AdjustScore(baseScore float64, s *Snapshot, include bool) float64 {
	if !include || s == nil {
		return baseScore
	}

	var adjustment float64

	switch s.Trend {
	case TrendUp:
		adjustment += 3
	case TrendDown:
		adjustment -= 3
	}

	if s.AboveMSP {
		adjustment += 2
	}

	// Prices well clear of the support floor earn an extra bump.
	if s.MSP != nil && *s.MSP > 0 && s.CurrentPrice / *s.MSP > 1.2 {
		adjustment += 2
	}

	switch s.Recommendation {
	case SellNow:
		adjustment += 2
	case Hold:
		adjustment -= 1
	}

	adjusted := baseScore + adjustment
	if adjusted < 0 {
		return 0
	}
	if adjusted > 100 {
		return 100
	}
	return adjusted
}

// ExpectedRevenue estimates revenue per acre (INR) from a yield estimate
// in quintals per acre. Returns nil when either input is missing.
func ExpectedRevenue(yieldQuintalsPerAcre *float64, s *Snapshot) *float64 {
	if yieldQuintalsPerAcre == nil || s == nil || s.CurrentPrice == 0 {
		return nil
	}
	revenue := *yieldQuintalsPerAcre * s.CurrentPrice
	return &revenue
}

// Advisories summarizes a snapshot map into farmer-facing market
// guidance. Output ordering is stable across calls.
func Advisories(snapshots map[string]*Snapshot) []string {
	var advisories []string
	if len(snapshots) == 0 {
		return advisories
	}

	codes := make([]string, 0, len(snapshots))
	for code := range snapshots {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// Highlight the strongest upward mover.
	var bestUp *Snapshot
	for _, code := range codes {
		s := snapshots[code]
		if s == nil || s.Trend != TrendUp {
			continue
		}
		if bestUp == nil || s.PriceChange30Days > bestUp.PriceChange30Days {
			bestUp = s
		}
	}
	if bestUp != nil {
		advisories = append(advisories, fmt.Sprintf(
			"%s prices are trending up - consider this crop for better returns", bestUp.CropName))
	}

	var aboveMSP []string
	for _, code := range codes {
		if s := snapshots[code]; s != nil && s.AboveMSP {
			aboveMSP = append(aboveMSP, s.CropName)
		}
	}
	if len(aboveMSP) > 0 {
		advisories = append(advisories, fmt.Sprintf(
			"Current prices for %s are above MSP - good time to sell", strings.Join(aboveMSP, ", ")))
	}

	var stable []string
	for _, code := range codes {
		if s := snapshots[code]; s != nil && s.Trend == TrendStable {
			stable = append(stable, s.CropName)
		}
	}
	if len(stable) > 0 {
		advisories = append(advisories, fmt.Sprintf(
			"%s have stable prices - reliable income potential", strings.Join(stable, ", ")))
	}

	return advisories
}
