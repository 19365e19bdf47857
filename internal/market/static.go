// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package market

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"time"
)

// mspPerQuintal holds the minimum support prices (INR per quintal) for
// the crops covered by the national procurement program.
var mspPerQuintal = map[string]float64{
	"RICE":      2300,
	"WHEAT":     2650,
	"COTTON":    6620,
	"SOYBEAN":   5650,
	"GROUNDNUT": 6375,
	"MUSTARD":   5850,
	"PULSES":    6000,
	"MAIZE":     2090,
	"SUGARCANE": 315,
}

// currentPrices holds curated modal prices (INR per quintal) used when
// no live feed is available.
var currentPrices = map[string]float64{
	"RICE":      2200,
	"WHEAT":     2500,
	"COTTON":    5800,
	"SOYBEAN":   5200,
	"GROUNDNUT": 6200,
	"MUSTARD":   5500,
	"PULSES":    6500,
	"MAIZE":     2100,
	"SUGARCANE": 350,
	"POTATO":    1500,
	"ONION":     1800,
	"TOMATO":    2000,
}

// defaultPrice covers crops outside the curated price table.
const defaultPrice = 2000.0

// marketCropNames maps crop codes to display names for priced crops.
var marketCropNames = map[string]string{
	"RICE":      "Rice",
	"WHEAT":     "Wheat",
	"COTTON":    "Cotton",
	"SOYBEAN":   "Soybean",
	"GROUNDNUT": "Groundnut",
	"MUSTARD":   "Mustard",
	"PULSES":    "Pulses",
	"MAIZE":     "Maize",
	"SUGARCANE": "Sugarcane",
	"POTATO":    "Potato",
	"ONION":     "Onion",
	"TOMATO":    "Tomato",
}

// stateMandis maps lowercase state names to their principal mandi.
var stateMandis = map[string]string{
	"uttar pradesh":  "Lucknow Mandi",
	"punjab":         "Ludhiana Mandi",
	"haryana":        "Karnal Mandi",
	"maharashtra":    "Pune Mandi",
	"karnataka":      "Bangalore Mandi",
	"rajasthan":      "Jaipur Mandi",
	"madhya pradesh": "Bhopal Mandi",
	"gujarat":        "Ahmedabad Mandi",
	"west bengal":    "Kolkata Mandi",
	"tamil nadu":     "Chennai Mandi",
}

// dailyDecayRate drives the synthetic price history: prices are assumed
// to have drifted 0.1% per day toward today's level.
const dailyDecayRate = 0.001

// StaticProvider serves snapshots from the curated tables with a
// deterministic synthetic history. It never fails.
type StaticProvider struct {
	// now supplies the as-of date, overridable in tests.
	now func() time.Time
}

// NewStaticProvider returns a provider backed by the curated tables.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

// Snapshot builds the market picture for one crop in a state.
func (p *StaticProvider) Snapshot(_ context.Context, cropCode, state string) (*Snapshot, error) {
	current, ok := currentPrices[cropCode]
	if !ok {
		current = defaultPrice
	}

	price30d := historicalPrice(current, 30)
	price7d := historicalPrice(current, 7)
	change30d := priceChange(current, price30d)
	change7d := priceChange(current, price7d)
	trend := trendFor(change7d)

	var msp *float64
	if v, ok := mspPerQuintal[cropCode]; ok {
		msp = &v
	}
	aboveMSP := msp != nil && current > *msp

	return &Snapshot{
		CropCode:                cropCode,
		CropName:                marketCropName(cropCode),
		Variety:                 "Hybrid",
		CurrentPrice:            current,
		MinPrice:                current * 0.9,
		MaxPrice:                current * 1.1,
		Price30DaysAgo:          price30d,
		Price7DaysAgo:           price7d,
		PriceChange30Days:       change30d,
		PriceChange7Days:        change7d,
		Trend:                   trend,
		ArrivalQuantityQuintals: arrivalQuantity(cropCode),
		ArrivalChangePercent:    arrivalChange(cropCode),
		NearestMandi:            nearestMandi(state),
		DistanceToMandiKm:       mandiDistanceKm(state),
		MSP:                     msp,
		AboveMSP:                aboveMSP,
		Recommendation:          recommendationFor(current, msp, change30d, trend),
		DataDate:                p.now(),
	}, nil
}

// Snapshots builds snapshots for several crops, keyed by crop code.
func (p *StaticProvider) Snapshots(ctx context.Context, cropCodes []string, state string) (map[string]*Snapshot, error) {
	snapshots := make(map[string]*Snapshot, len(cropCodes))
	for _, code := range cropCodes {
		s, err := p.Snapshot(ctx, code, state)
		if err != nil {
			continue
		}
		snapshots[code] = s
	}
	return snapshots, nil
}

// historicalPrice back-projects today's price assuming steady daily
// drift, floored at 70% of the current level.
func historicalPrice(current float64, daysAgo int) float64 {
	factor := float64(daysAgo) * dailyDecayRate
	return math.Max(current*(1-factor), current*0.7)
}

func priceChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func trendFor(change7Days float64) PriceTrend {
	switch {
	case change7Days > 2:
		return TrendUp
	case change7Days < -2:
		return TrendDown
	default:
		return TrendStable
	}
}

// recommendationFor derives the advisory action. The rungs are checked
// top to bottom; the first match wins.
func recommendationFor(current float64, msp *float64, change30Days float64, trend PriceTrend) Recommendation {
	if msp != nil && current > *msp*1.15 {
		return SellNow
	}
	if trend == TrendUp && change30Days > 5 {
		return Hold
	}
	if trend == TrendDown && change30Days < -5 {
		return SellNow
	}
	if msp != nil && current <= *msp*1.05 {
		return Monitor
	}
	return ConsiderStorage
}

func marketCropName(cropCode string) string {
	if name, ok := marketCropNames[cropCode]; ok {
		return name
	}
	return cropCode
}

func nearestMandi(state string) string {
	if state == "" {
		return "Unknown Mandi"
	}
	if mandi, ok := stateMandis[strings.ToLower(state)]; ok {
		return mandi
	}
	return state + " District Mandi"
}

// mandiDistanceKm estimates distance in the 10-40 km band, derived
// deterministically from the state name.
func mandiDistanceKm(state string) float64 {
	if state == "" {
		return 25
	}
	return 10 + pseudoUnit("mandi:"+strings.ToLower(state))*30
}

// arrivalQuantity estimates daily arrivals in the 500-2500 quintal band,
// derived deterministically from the crop code.
func arrivalQuantity(cropCode string) float64 {
	return 500 + pseudoUnit("arrival:"+cropCode)*2000
}

// arrivalChange estimates the arrival shift in the -10% to +10% band.
func arrivalChange(cropCode string) float64 {
	return pseudoUnit("arrival-change:"+cropCode)*20 - 10
}

// pseudoUnit hashes a seed into [0,1). The same seed always yields the
// same value, which keeps snapshots reproducible across calls.
func pseudoUnit(seed string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return float64(h.Sum32()) / float64(math.MaxUint32+1)
}
