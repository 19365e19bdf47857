// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/cache"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/climate"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/fertilizer"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/market"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/seed"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/suitability"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// defaultRainfallDeviationPct is the conservative planning scenario used
// when the caller supplies no forecast deviation: a 10% monsoon deficit.
const defaultRainfallDeviationPct = -10.0

// preferredCropBoost is the score nudge for crops the farmer asked for.
// A nudge, not guaranteed inclusion: filters and MinScore still apply.
const preferredCropBoost = 5.0

// Unit conversions for farmer-facing figures.
const (
	acresPerHectare = 2.47
	kgPerQuintal    = 100.0
	litersPerMmAcre = 4047.0
)

// ZoneResolver is the location lookup surface (satisfied by
// zone.Resolver).
type ZoneResolver interface {
	Resolve(ctx context.Context, req zone.Request) (*zone.Zone, error)
}

// SuitabilityStore serves GAEZ reference rows for a zone.
type SuitabilityStore interface {
	SuitabilityRows(ctx context.Context, zoneCode string) ([]suitability.Row, error)
}

// SoilStore serves stored soil health cards.
type SoilStore interface {
	SoilSnapshot(ctx context.Context, farmerID string) (*agronomy.SoilHealthSnapshot, error)
}

// Aggregator runs the crop recommendation pipeline.
type Aggregator struct {
	zones      ZoneResolver
	rows       SuitabilityStore
	soil       SoilStore
	market     market.Provider
	seeds      *seed.Catalog
	calculator *fertilizer.Calculator
	cache      *cache.Cache

	now   func() time.Time
	newID func() string
}

// NewAggregator wires the pipeline. respCache may be nil to disable
// response caching.
func NewAggregator(zones ZoneResolver, rows SuitabilityStore, soil SoilStore,
	prices market.Provider, respCache *cache.Cache) *Aggregator {
	return &Aggregator{
		zones:      zones,
		rows:       rows,
		soil:       soil,
		market:     prices,
		seeds:      seed.NewCatalog(),
		calculator: fertilizer.NewCalculator(),
		cache:      respCache,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Recommend answers one recommendation request. Malformed input returns
// an error; zone-not-found and empty reference data return an
// unsuccessful Response.
func (a *Aggregator) Recommend(ctx context.Context, req Request) (*Response, error) {
	key, useCache := a.cacheKey(req)
	if useCache {
		if hit, found := a.cache.Get(key); found {
			resp := hit.(Response)
			resp.RequestID = a.newID()
			return &resp, nil
		}
	}

	start := time.Now()
	resp, err := a.recommend(ctx, req)
	metrics.RecordRecommendation("crop", time.Since(start))
	if err == nil && useCache {
		a.cache.Set(key, *resp)
	}
	return resp, err
}

func (a *Aggregator) recommend(ctx context.Context, req Request) (*Response, error) {
	z, err := a.zones.Resolve(ctx, zone.Request{
		ZoneCode:  req.ZoneCode,
		District:  req.District,
		State:     req.State,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		if errors.Is(err, zone.ErrZoneNotFound) {
			return a.failure(req, fmt.Sprintf("location could not be mapped to an agro-ecological zone: %v", err)), nil
		}
		return nil, err
	}

	rows, err := a.rows.SuitabilityRows(ctx, z.Code)
	if err != nil {
		return nil, fmt.Errorf("loading reference data for zone %q: %w", z.Code, err)
	}
	if len(rows) == 0 {
		resp := a.failure(req, fmt.Sprintf("no crop reference data available for zone %q (%s)", z.Code, z.Name))
		resp.Zone = z
		return resp, nil
	}

	season, _ := agronomy.ParseSeason(req.Season)
	rows = suitability.FilterBySeason(rows, season)

	soil := req.Soil
	if soil == nil && req.FarmerID != "" && a.soil != nil {
		soil, err = a.soil.SoilSnapshot(ctx, req.FarmerID)
		if err != nil {
			// A missing or failing soil lookup degrades to unadjusted
			// scoring rather than blocking the recommendation.
			logging.Warn().Err(err).Str("farmer_id", req.FarmerID).
				Msg("Soil card lookup failed, scoring without it")
			soil = nil
		}
	}

	irrigation, _ := suitability.ParseIrrigation(req.Irrigation)
	scored := suitability.ScoreRows(rows, irrigation, soil)

	assessments := a.assessClimate(scored, req)
	snapshots := a.fetchMarket(ctx, scored, req)

	recs := a.buildRecommendations(scored, assessments, snapshots, irrigation, soil, req)
	recs = a.applyFilters(recs, req)
	recs = ranking.Descending(recs, func(r CropRecommendation) float64 { return r.AdjustedScore })
	if req.MaxResults > 0 {
		recs = ranking.Limit(recs, req.MaxResults)
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	resp := &Response{
		RequestID:       a.newID(),
		Success:         true,
		Zone:            z,
		Season:          string(season),
		Recommendations: recs,
		GeneratedAt:     a.now(),
	}
	if req.IncludeClimateRisk {
		resp.ClimateSummary = summarizeClimate(recs)
	}
	if req.IncludeMarket {
		resp.MarketAdvisories = market.Advisories(snapshots)
	}

	logging.Info().
		Str("zone", z.Code).
		Str("season", string(season)).
		Int("crops", len(recs)).
		Bool("climate_risk", req.IncludeClimateRisk).
		Bool("market", req.IncludeMarket).
		Msg("Crop recommendations generated")
	return resp, nil
}

// assessClimate runs the climate analyzer per crop when requested.
func (a *Aggregator) assessClimate(scored []suitability.ScoredCrop, req Request) map[string]climate.Assessment {
	if !req.IncludeClimateRisk {
		return nil
	}
	rainDev := defaultRainfallDeviationPct
	if req.RainfallDeviationPct != nil {
		rainDev = *req.RainfallDeviationPct
	}
	assessments := make(map[string]climate.Assessment, len(scored))
	for _, c := range scored {
		assessments[c.CropCode] = climate.Analyze(c.CropCode, rainDev, req.TemperatureDeviationC)
	}
	return assessments
}

// fetchMarket pulls price snapshots when requested. Provider failures
// degrade to no market data.
func (a *Aggregator) fetchMarket(ctx context.Context, scored []suitability.ScoredCrop, req Request) map[string]*market.Snapshot {
	if !req.IncludeMarket || a.market == nil {
		return nil
	}
	codes := make([]string, 0, len(scored))
	for _, c := range scored {
		codes = append(codes, c.CropCode)
	}
	snapshots, err := a.market.Snapshots(ctx, codes, req.State)
	if err != nil {
		logging.Warn().Err(err).Msg("Market snapshots unavailable, recommending without prices")
		return nil
	}
	return snapshots
}

// buildRecommendations attaches adjustments and economics to each scored
// crop.
func (a *Aggregator) buildRecommendations(scored []suitability.ScoredCrop,
	assessments map[string]climate.Assessment, snapshots map[string]*market.Snapshot,
	irrigation suitability.IrrigationType, soil *agronomy.SoilHealthSnapshot,
	req Request) []CropRecommendation {

	recs := make([]CropRecommendation, 0, len(scored))
	for _, crop := range scored {
		rec := CropRecommendation{ScoredCrop: crop, AdjustedScore: crop.OverallScore}

		if assessments != nil {
			if assessment, ok := assessments[crop.CropCode]; ok {
				rec.ClimateRisk = &assessment
				rec.AdjustedScore = climate.AdjustScore(rec.AdjustedScore, &assessment)
			}
		}
		if snapshots != nil {
			snap := snapshots[crop.CropCode]
			rec.Market = snap
			rec.AdjustedScore = market.AdjustScore(rec.AdjustedScore, snap, true)
		}

		rec.AdjustedScore = clampScore(rec.AdjustedScore + irrigationAdjustment(irrigation))
		rec.AdjustedScore = clampScore(rec.AdjustedScore + soilAdjustment(soil))

		a.attachEconomics(&rec, soil, req.State)
		recs = append(recs, rec)
	}
	return recs
}

// attachEconomics fills the yield, water, cost, profit, and seed variety
// attachments.
func (a *Aggregator) attachEconomics(rec *CropRecommendation, soil *agronomy.SoilHealthSnapshot, state string) {
	if rec.YieldExpectedKgHa != nil {
		qtl := *rec.YieldExpectedKgHa / acresPerHectare / kgPerQuintal
		rec.ExpectedYieldQtlAcre = &qtl
		if rec.YieldMaxKgHa != nil {
			gap := *rec.YieldMaxKgHa/acresPerHectare/kgPerQuintal - qtl
			rec.YieldGapQtlAcre = &gap
		}
	}
	if rec.WaterRequirementMm != nil {
		liters := *rec.WaterRequirementMm * litersPerMmAcre
		rec.WaterRequirementLiters = &liters
	}

	plan := a.calculator.BuildPlan(fertilizer.PlanRequest{
		CropCode:  rec.CropCode,
		AreaAcres: 1,
		Soil:      soil,
	})
	rec.EstimatedInputCostPerAcre = plan.EstimatedTotalCost

	if rec.Market != nil {
		if revenue := market.ExpectedRevenue(rec.ExpectedYieldQtlAcre, rec.Market); revenue != nil {
			profit := *revenue - rec.EstimatedInputCostPerAcre
			rec.EstimatedNetProfitPerAcre = &profit
		}
	}

	rec.SeedVarieties = a.seeds.RecommendedVarieties(rec.CropCode, state)
}

// applyFilters removes excluded crops, nudges preferred ones, and
// enforces the minimum score, in that order.
func (a *Aggregator) applyFilters(recs []CropRecommendation, req Request) []CropRecommendation {
	excluded := foldSet(req.ExcludedCrops)
	preferred := foldSet(req.PreferredCrops)

	recs = ranking.Filter(recs, func(r CropRecommendation) bool {
		return !excluded[strings.ToUpper(r.CropCode)]
	})
	for i := range recs {
		if preferred[strings.ToUpper(recs[i].CropCode)] {
			recs[i].AdjustedScore = clampScore(recs[i].AdjustedScore + preferredCropBoost)
		}
	}
	if req.MinScore > 0 {
		recs = ranking.Filter(recs, func(r CropRecommendation) bool {
			return r.AdjustedScore >= req.MinScore
		})
	}
	return recs
}

// failure builds a structured unsuccessful response echoing the input.
func (a *Aggregator) failure(req Request, message string) *Response {
	return &Response{
		RequestID:       a.newID(),
		Success:         false,
		Message:         message,
		District:        req.District,
		State:           req.State,
		Season:          req.Season,
		Recommendations: []CropRecommendation{},
		GeneratedAt:     a.now(),
	}
}

// cacheKey derives the cache key from the request shape. The request id
// is generated per response, so it never participates.
func (a *Aggregator) cacheKey(req Request) (string, bool) {
	if a.cache == nil {
		return "", false
	}
	b, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// summarizeClimate counts crops per risk level over the final list.
func summarizeClimate(recs []CropRecommendation) map[string]int {
	summary := make(map[string]int)
	for _, r := range recs {
		if r.ClimateRisk != nil {
			summary[string(r.ClimateRisk.RiskLevel)]++
		}
	}
	return summary
}

// irrigationAdjustment is the aggregator-level nudge on the final score,
// separate from the water-component shift inside the scorer.
func irrigationAdjustment(t suitability.IrrigationType) float64 {
	switch t {
	case suitability.IrrigationRainfed:
		return -5
	case suitability.IrrigationDrip, suitability.IrrigationSprinkler:
		return 3
	case suitability.IrrigationCanal, suitability.IrrigationBorewell:
		return 2
	default:
		return 0
	}
}

// soilAdjustment penalizes deficits against the Soil Health Card
// adequacy targets.
func soilAdjustment(soil *agronomy.SoilHealthSnapshot) float64 {
	if soil == nil {
		return 0
	}
	adj := 0.0
	if soil.NitrogenKgHa != nil && *soil.NitrogenKgHa < agronomy.SoilTargetNitrogenKgHa {
		adj -= 3
	}
	if soil.PhosphorusKgHa != nil && *soil.PhosphorusKgHa < agronomy.SoilTargetPhosphorusKgHa {
		adj -= 3
	}
	if soil.PotassiumKgHa != nil && *soil.PotassiumKgHa < agronomy.SoilTargetPotassiumKgHa {
		adj -= 2
	}
	if soil.ZincPpm != nil && *soil.ZincPpm < agronomy.SoilTargetZincPpm {
		adj -= 2
	}
	return adj
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func foldSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToUpper(strings.TrimSpace(v))] = true
	}
	return set
}
