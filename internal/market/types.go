// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package market

import (
	"context"
	"time"
)

// PriceTrend classifies the 7-day price movement.
type PriceTrend string

const (
	// TrendUp means the price rose more than 2% over 7 days.
	TrendUp PriceTrend = "UP"
	// TrendDown means the price fell more than 2% over 7 days.
	TrendDown PriceTrend = "DOWN"
	// TrendStable means the price moved within the 2% band.
	TrendStable PriceTrend = "STABLE"
)

// String returns the wire form of the trend.
func (t PriceTrend) String() string { return string(t) }

// Recommendation is the advisory action derived from price position and trend.
type Recommendation string

const (
	// SellNow: price well above MSP or falling fast.
	SellNow Recommendation = "SELL_NOW"
	// Hold: price rising strongly, waiting may pay off.
	Hold Recommendation = "HOLD"
	// Monitor: price near or below MSP, watch before committing.
	Monitor Recommendation = "MONITOR"
	// ConsiderStorage: no strong signal either way.
	ConsiderStorage Recommendation = "CONSIDER_STORAGE"
)

// String returns the wire form of the recommendation.
func (r Recommendation) String() string { return string(r) }

// Snapshot is one crop's market picture at a point in time. Prices are
// INR per quintal.
type Snapshot struct {
	// CropCode is the canonical uppercase crop identifier.
	CropCode string `json:"crop_code"`
	// CropName is the display name for the crop.
	CropName string `json:"crop_name"`
	// Variety is the traded variety the prices refer to.
	Variety string `json:"variety"`
	// CurrentPrice is the latest modal price.
	CurrentPrice float64 `json:"current_price"`
	// MinPrice is the low end of the observed daily range.
	MinPrice float64 `json:"min_price"`
	// MaxPrice is the high end of the observed daily range.
	MaxPrice float64 `json:"max_price"`
	// Price30DaysAgo anchors the monthly trend.
	Price30DaysAgo float64 `json:"price_30_days_ago"`
	// Price7DaysAgo anchors the weekly trend.
	Price7DaysAgo float64 `json:"price_7_days_ago"`
	// PriceChange30Days is the percent change versus 30 days ago.
	PriceChange30Days float64 `json:"price_change_30_days"`
	// PriceChange7Days is the percent change versus 7 days ago.
	PriceChange7Days float64 `json:"price_change_7_days"`
	// Trend classifies the weekly movement.
	Trend PriceTrend `json:"trend"`
	// ArrivalQuantityQuintals estimates market arrivals.
	ArrivalQuantityQuintals float64 `json:"arrival_quantity_quintals"`
	// ArrivalChangePercent is the arrival shift versus the prior period.
	ArrivalChangePercent float64 `json:"arrival_change_percent"`
	// NearestMandi names the closest wholesale market for the state.
	NearestMandi string `json:"nearest_mandi"`
	// DistanceToMandiKm estimates travel distance to the mandi.
	DistanceToMandiKm float64 `json:"distance_to_mandi_km"`
	// MSP is the minimum support price, nil for crops without one.
	MSP *float64 `json:"msp,omitempty"`
	// AboveMSP is true when the current price exceeds the MSP.
	AboveMSP bool `json:"above_msp"`
	// Recommendation is the derived advisory action.
	Recommendation Recommendation `json:"recommendation"`
	// DataDate is the as-of date of the snapshot.
	DataDate time.Time `json:"data_date"`
}

// Provider serves market snapshots for crops. Implementations must be
// safe for concurrent use.
type Provider interface {
	// Snapshot returns the market picture for one crop in a state.
	Snapshot(ctx context.Context, cropCode, state string) (*Snapshot, error)
	// Snapshots returns the market picture for several crops, keyed by
	// crop code. Crops that cannot be priced are omitted.
	Snapshots(ctx context.Context, cropCodes []string, state string) (map[string]*Snapshot, error)
}
