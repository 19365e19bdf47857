// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/cache"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/market"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/suitability"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

type fakeResolver struct {
	zone *zone.Zone
	err  error
}

func (f *fakeResolver) Resolve(ctx context.Context, req zone.Request) (*zone.Zone, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.zone, nil
}

type fakeRows struct {
	rows []suitability.Row
	err  error
}

func (f *fakeRows) SuitabilityRows(ctx context.Context, zoneCode string) ([]suitability.Row, error) {
	return f.rows, f.err
}

type fakeSoil struct {
	snap *agronomy.SoilHealthSnapshot
}

func (f *fakeSoil) SoilSnapshot(ctx context.Context, farmerID string) (*agronomy.SoilHealthSnapshot, error) {
	return f.snap, nil
}

func f64(v float64) *float64 { return &v }

func testRows() []suitability.Row {
	return []suitability.Row{
		{
			CropCode: "RICE", CropName: "Rice", ZoneCode: "AEZ-03",
			ClimateScore: 88, SoilScore: 85, TerrainScore: 92, WaterScore: 80,
			IrrigatedYieldKgHa: f64(5800), WaterRequirementMm: f64(1250),
			KharifSuitable: true,
		},
		{
			CropCode: "WHEAT", CropName: "Wheat", ZoneCode: "AEZ-03",
			ClimateScore: 90, SoilScore: 88, TerrainScore: 93, WaterScore: 78,
			IrrigatedYieldKgHa: f64(5200), WaterRequirementMm: f64(450),
			RabiSuitable: true,
		},
		{
			CropCode: "MAIZE", CropName: "Maize", ZoneCode: "AEZ-03",
			ClimateScore: 82, SoilScore: 80, TerrainScore: 88, WaterScore: 75,
			IrrigatedYieldKgHa: f64(4800), WaterRequirementMm: f64(550),
			KharifSuitable: true,
		},
	}
}

func testZone() *zone.Zone {
	return &zone.Zone{Code: "AEZ-03", Name: "Indo-Gangetic Plains"}
}

func newTestAggregator(resolver ZoneResolver, rows SuitabilityStore) *Aggregator {
	a := NewAggregator(resolver, rows, &fakeSoil{}, market.NewStaticProvider(), nil)
	a.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	return a
}

func TestRecommendRanksDescending(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !resp.Success {
		t.Fatalf("unexpected failure: %s", resp.Message)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(resp.Recommendations))
	}
	for i, rec := range resp.Recommendations {
		if rec.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, rec.Rank, i+1)
		}
		if i > 0 && rec.AdjustedScore > resp.Recommendations[i-1].AdjustedScore {
			t.Errorf("list not descending at %d: %v > %v", i,
				rec.AdjustedScore, resp.Recommendations[i-1].AdjustedScore)
		}
	}
	if resp.RequestID == "" {
		t.Error("expected a request id")
	}
}

func TestRecommendSeasonFilter(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03", Season: "RABI"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("rabi crops = %d, want 1", len(resp.Recommendations))
	}
	if resp.Recommendations[0].CropCode != "WHEAT" {
		t.Errorf("rabi crop = %q, want WHEAT", resp.Recommendations[0].CropCode)
	}
}

func TestRecommendZoneNotFoundIsStructuredFailure(t *testing.T) {
	a := newTestAggregator(
		&fakeResolver{err: fmt.Errorf("%w: district \"Atlantis\"", zone.ErrZoneNotFound)},
		&fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{District: "Atlantis", State: "Nowhere"})
	if err != nil {
		t.Fatalf("zone-not-found must not be an error, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected an unsuccessful response")
	}
	if resp.District != "Atlantis" || resp.State != "Nowhere" {
		t.Errorf("input not echoed: %+v", resp)
	}
	if resp.Recommendations == nil || len(resp.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want empty non-nil", resp.Recommendations)
	}
}

func TestRecommendValidationErrorsPropagate(t *testing.T) {
	a := newTestAggregator(&fakeResolver{err: zone.ErrInvalidLatitude}, &fakeRows{})

	_, err := a.Recommend(context.Background(), Request{Latitude: f64(200), Longitude: f64(80)})
	if !errors.Is(err, zone.ErrInvalidLatitude) {
		t.Fatalf("err = %v, want ErrInvalidLatitude", err)
	}
}

func TestRecommendEmptyReferenceData(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Success {
		t.Fatal("expected an unsuccessful response for empty reference data")
	}
	if resp.Zone == nil || resp.Zone.Code != "AEZ-03" {
		t.Errorf("resolved zone should still be echoed, got %+v", resp.Zone)
	}
}

func TestRecommendExcludedCrops(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{
		ZoneCode:      "AEZ-03",
		ExcludedCrops: []string{"rice"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.CropCode == "RICE" {
			t.Error("excluded crop survived filtering")
		}
	}
}

func TestRecommendPreferredCropBoost(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	base, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	boosted, err := a.Recommend(context.Background(), Request{
		ZoneCode:       "AEZ-03",
		PreferredCrops: []string{"MAIZE"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	scoreOf := func(resp *Response, code string) float64 {
		for _, rec := range resp.Recommendations {
			if rec.CropCode == code {
				return rec.AdjustedScore
			}
		}
		t.Fatalf("crop %s missing", code)
		return 0
	}
	if got, want := scoreOf(boosted, "MAIZE"), scoreOf(base, "MAIZE")+5; got != want {
		t.Errorf("boosted maize score = %v, want %v", got, want)
	}
}

func TestRecommendMinScore(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03", MinScore: 99})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("crops above 99 = %d, want 0", len(resp.Recommendations))
	}
}

func TestRecommendClimateRisk(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{
		ZoneCode:           "AEZ-03",
		IncludeClimateRisk: true,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	total := 0
	for level, count := range resp.ClimateSummary {
		if level == "" {
			t.Error("empty risk level key in summary")
		}
		total += count
	}
	if total != len(resp.Recommendations) {
		t.Errorf("summary counts %d crops, list has %d", total, len(resp.Recommendations))
	}
	for _, rec := range resp.Recommendations {
		if rec.ClimateRisk == nil {
			t.Errorf("crop %s missing climate assessment", rec.CropCode)
		}
	}
}

func TestRecommendMarketAttachments(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{
		ZoneCode:      "AEZ-03",
		State:         "Uttar Pradesh",
		IncludeMarket: true,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	priced := 0
	for _, rec := range resp.Recommendations {
		if rec.Market != nil {
			priced++
			if rec.EstimatedNetProfitPerAcre == nil && rec.ExpectedYieldQtlAcre != nil {
				t.Errorf("crop %s priced but no net profit", rec.CropCode)
			}
		}
	}
	if priced == 0 {
		t.Error("static provider should price the staple crops")
	}
}

func TestRecommendEconomicsAttachments(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.EstimatedInputCostPerAcre <= 0 {
			t.Errorf("crop %s input cost = %v, want positive", rec.CropCode, rec.EstimatedInputCostPerAcre)
		}
		if rec.WaterRequirementLiters == nil {
			t.Errorf("crop %s missing water liters", rec.CropCode)
			continue
		}
		if *rec.WaterRequirementLiters != *rec.WaterRequirementMm*4047 {
			t.Errorf("crop %s water liters = %v, want mm*4047", rec.CropCode, *rec.WaterRequirementLiters)
		}
		if rec.ExpectedYieldQtlAcre == nil {
			t.Errorf("crop %s missing expected yield", rec.CropCode)
		}
	}
}

func TestRecommendCaching(t *testing.T) {
	c := cache.New(time.Minute, "recommendation")
	defer c.Close()

	calls := 0
	rows := &fakeRows{rows: testRows()}
	a := NewAggregator(&countingResolver{zone: testZone(), calls: &calls}, rows,
		&fakeSoil{}, market.NewStaticProvider(), c)

	req := Request{ZoneCode: "AEZ-03"}
	first, err := a.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := a.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if calls != 1 {
		t.Errorf("pipeline ran %d times, want 1", calls)
	}
	if first.RequestID == second.RequestID {
		t.Error("cache hits must carry a fresh request id")
	}
	if len(first.Recommendations) != len(second.Recommendations) {
		t.Error("cached response differs from original")
	}
}

type countingResolver struct {
	zone  *zone.Zone
	calls *int
}

func (c *countingResolver) Resolve(ctx context.Context, req zone.Request) (*zone.Zone, error) {
	*c.calls++
	return c.zone, nil
}

func TestRecommendMaxResults(t *testing.T) {
	a := newTestAggregator(&fakeResolver{zone: testZone()}, &fakeRows{rows: testRows()})

	resp, err := a.Recommend(context.Background(), Request{ZoneCode: "AEZ-03", MaxResults: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("recommendations = %d, want 2", len(resp.Recommendations))
	}
	if resp.Recommendations[1].Rank != 2 {
		t.Errorf("rank = %d, want 2", resp.Recommendations[1].Rank)
	}
}
