// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/detection"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/fertilizer"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(&config.DatabaseConfig{
		Path:              filepath.Join(t.TempDir(), "test.duckdb"),
		MaxMemory:         "512MB",
		Threads:           2,
		SeedReferenceData: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestOpenAndPing(t *testing.T) {
	s := testStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestSeededZones(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	zones, err := s.Zones(ctx)
	if err != nil {
		t.Fatalf("Zones: %v", err)
	}
	if len(zones) != 12 {
		t.Errorf("seeded zones = %d, want 12", len(zones))
	}

	z, err := s.ZoneByCode(ctx, "AEZ-03")
	if err != nil {
		t.Fatalf("ZoneByCode: %v", err)
	}
	if z == nil || z.Name != "Indo-Gangetic Plains" {
		t.Errorf("AEZ-03 = %+v, want Indo-Gangetic Plains", z)
	}

	missing, err := s.ZoneByCode(ctx, "AEZ-99")
	if err != nil {
		t.Fatalf("ZoneByCode unknown: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown zone = %+v, want nil", missing)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Re-running the seeder against a populated store is a no-op.
	if err := s.seedIfEmpty(ctx); err != nil {
		t.Fatalf("seedIfEmpty: %v", err)
	}
	zones, err := s.Zones(ctx)
	if err != nil {
		t.Fatalf("Zones: %v", err)
	}
	if len(zones) != 12 {
		t.Errorf("zones after reseed = %d, want 12", len(zones))
	}
}

func TestDistrictMappings(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	m, err := s.DistrictMapping(ctx, "Varanasi", "Uttar Pradesh")
	if err != nil {
		t.Fatalf("DistrictMapping: %v", err)
	}
	if m == nil {
		t.Fatal("expected a mapping for Varanasi")
	}
	if m.ZoneCode != "AEZ-03" {
		t.Errorf("zone code = %q, want AEZ-03", m.ZoneCode)
	}
	if len(m.AltNames) != 2 {
		t.Errorf("alt names = %v, want Banaras and Kashi", m.AltNames)
	}

	missing, err := s.DistrictMapping(ctx, "Atlantis", "Nowhere")
	if err != nil {
		t.Fatalf("DistrictMapping unknown: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown district = %+v, want nil", missing)
	}
}

func TestSuitabilityRows(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rows, err := s.SuitabilityRows(ctx, "AEZ-03")
	if err != nil {
		t.Fatalf("SuitabilityRows: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected seeded rows for AEZ-03")
	}
	for _, r := range rows {
		if r.ZoneCode != "AEZ-03" {
			t.Errorf("row %s has zone %q", r.CropCode, r.ZoneCode)
		}
	}

	empty, err := s.SuitabilityRows(ctx, "AEZ-99")
	if err != nil {
		t.Fatalf("SuitabilityRows unknown zone: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown zone rows = %d, want 0", len(empty))
	}
}

func TestSoilSnapshotRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	ph := 6.8
	n := 240.0
	snap := &agronomy.SoilHealthSnapshot{
		FarmerID:     "FARMER-001",
		PH:           &ph,
		NitrogenKgHa: &n,
	}
	if err := s.SaveSoilSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSoilSnapshot: %v", err)
	}

	got, err := s.SoilSnapshot(ctx, "FARMER-001")
	if err != nil {
		t.Fatalf("SoilSnapshot: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.PH == nil || *got.PH != 6.8 {
		t.Errorf("pH = %v, want 6.8", got.PH)
	}
	if got.PotassiumKgHa != nil {
		t.Errorf("untested parameter should stay nil, got %v", *got.PotassiumKgHa)
	}

	missing, err := s.SoilSnapshot(ctx, "FARMER-999")
	if err != nil {
		t.Fatalf("SoilSnapshot unknown: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown farmer snapshot = %+v, want nil", missing)
	}
}

func TestApplicationRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	app := &fertilizer.Application{
		CropID:          "CROP-42",
		FarmerID:        "FARMER-001",
		FertilizerType:  "Urea",
		Category:        fertilizer.CategoryChemical,
		QuantityKg:      50,
		AreaAcres:       2,
		Date:            time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		NitrogenPercent: 46,
		Cost:            320,
	}
	id, err := s.SaveApplication(ctx, app)
	if err != nil {
		t.Fatalf("SaveApplication: %v", err)
	}
	if id == "" {
		t.Fatal("expected an assigned id")
	}

	apps, err := s.ApplicationsByCrop(ctx, "CROP-42")
	if err != nil {
		t.Fatalf("ApplicationsByCrop: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("applications = %d, want 1", len(apps))
	}
	if apps[0].FertilizerType != "Urea" || apps[0].NitrogenPercent != 46 {
		t.Errorf("round trip mismatch: %+v", apps[0])
	}

	if err := s.DeleteApplication(ctx, id); err != nil {
		t.Fatalf("DeleteApplication: %v", err)
	}
	apps, err = s.ApplicationsByCrop(ctx, "CROP-42")
	if err != nil {
		t.Fatalf("ApplicationsByCrop after delete: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("applications after delete = %d, want 0", len(apps))
	}
}

func TestDetectionRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	d := &detection.Detection{
		UserID:          7,
		CropID:          42,
		ImagePath:       "/uploads/leaf.jpg",
		DiseaseName:     "Rice Blast",
		ConfidenceScore: 92.5,
		Severity:        detection.SeverityHigh,
		Treatments:      []string{"Apply tricyclazole", "Drain standing water"},
		DetectedAt:      time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
		ModelVersion:    "v2.1",
	}
	id, err := s.SaveDetection(ctx, d)
	if err != nil {
		t.Fatalf("SaveDetection: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	got, err := s.DetectionByID(ctx, id)
	if err != nil {
		t.Fatalf("DetectionByID: %v", err)
	}
	if got.DiseaseName != "Rice Blast" || len(got.Treatments) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	count, err := s.CountDetectionsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("CountDetectionsByUser: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	latest, err := s.MostRecentDetectionByCrop(ctx, 42)
	if err != nil {
		t.Fatalf("MostRecentDetectionByCrop: %v", err)
	}
	if latest.ID != id {
		t.Errorf("latest id = %d, want %d", latest.ID, id)
	}

	if err := s.DeleteDetection(ctx, id); err != nil {
		t.Fatalf("DeleteDetection: %v", err)
	}
	if _, err := s.DetectionByID(ctx, id); !errors.Is(err, detection.ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}
