// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package zone

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeStore struct {
	zones    []Zone
	mappings []DistrictMapping
	err      error
}

func (f *fakeStore) ZoneByCode(_ context.Context, code string) (*Zone, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.zones {
		if f.zones[i].Code == code {
			return &f.zones[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DistrictMapping(_ context.Context, district, state string) (*DistrictMapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.mappings {
		if f.mappings[i].District == district && f.mappings[i].State == state {
			return &f.mappings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DistrictMappings(_ context.Context) ([]DistrictMapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mappings, nil
}

func (f *fakeStore) Zones(_ context.Context) ([]Zone, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.zones, nil
}

func testStore() *fakeStore {
	return &fakeStore{
		zones: []Zone{
			{
				Code: "IGP", Name: "Indo-Gangetic Plains",
				LatMin: 24, LatMax: 31, LonMin: 74, LonMax: 88,
			},
			{
				Code: "WDR", Name: "Western Dry Region",
				LatMin: 24, LatMax: 30, LonMin: 69, LonMax: 74,
			},
		},
		mappings: []DistrictMapping{
			{
				District: "Varanasi", State: "Uttar Pradesh", ZoneCode: "IGP",
				Latitude: 25.32, Longitude: 82.97,
				AltNames: []string{"Banaras", "Kashi"},
			},
			{
				District: "Jaisalmer", State: "Rajasthan", ZoneCode: "WDR",
				Latitude: 26.92, Longitude: 70.90,
			},
		},
	}
}

func ptr(f float64) *float64 { return &f }

func TestResolveByCode(t *testing.T) {
	r := NewResolver(testStore())

	z, err := r.Resolve(context.Background(), Request{ZoneCode: "IGP"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if z.Name != "Indo-Gangetic Plains" {
		t.Errorf("zone = %q, want Indo-Gangetic Plains", z.Name)
	}
}

func TestResolveByCodeUnknown(t *testing.T) {
	r := NewResolver(testStore())

	_, err := r.Resolve(context.Background(), Request{ZoneCode: "XX"})
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("err = %v, want ErrZoneNotFound", err)
	}
}

func TestResolveByDistrict(t *testing.T) {
	tests := []struct {
		name     string
		district string
		state    string
		wantCode string
	}{
		{"exact match", "Varanasi", "Uttar Pradesh", "IGP"},
		{"case insensitive", "VARANASI", "uttar pradesh", "IGP"},
		{"alternative name", "Banaras", "Uttar Pradesh", "IGP"},
		{"alternative name case insensitive", "kashi", "UTTAR PRADESH", "IGP"},
		{"second district", "Jaisalmer", "Rajasthan", "WDR"},
	}

	r := NewResolver(testStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := r.Resolve(context.Background(), Request{District: tt.district, State: tt.state})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if z.Code != tt.wantCode {
				t.Errorf("zone code = %q, want %q", z.Code, tt.wantCode)
			}
		})
	}
}

func TestResolveByDistrictNotFound(t *testing.T) {
	r := NewResolver(testStore())

	_, err := r.Resolve(context.Background(), Request{District: "Atlantis", State: "Uttar Pradesh"})
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("err = %v, want ErrZoneNotFound", err)
	}
	if !strings.Contains(err.Error(), "Atlantis") {
		t.Errorf("error should echo the district, got %q", err.Error())
	}
}

func TestResolveByCoordinatesCentroid(t *testing.T) {
	r := NewResolver(testStore())

	// Within 0.5 degrees of the Varanasi centroid.
	z, err := r.Resolve(context.Background(), Request{Latitude: ptr(25.0), Longitude: ptr(83.0)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if z.Code != "IGP" {
		t.Errorf("zone code = %q, want IGP", z.Code)
	}
}

func TestResolveByCoordinatesZoneEnvelope(t *testing.T) {
	r := NewResolver(testStore())

	// Far from any centroid but inside the WDR envelope.
	z, err := r.Resolve(context.Background(), Request{Latitude: ptr(25.0), Longitude: ptr(72.0)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if z.Code != "WDR" {
		t.Errorf("zone code = %q, want WDR", z.Code)
	}
}

func TestResolveByCoordinatesNotFound(t *testing.T) {
	r := NewResolver(testStore())

	_, err := r.Resolve(context.Background(), Request{Latitude: ptr(10.0), Longitude: ptr(120.0)})
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("err = %v, want ErrZoneNotFound", err)
	}
}

func TestResolveDistrictFallsBackToCoordinates(t *testing.T) {
	r := NewResolver(testStore())

	z, err := r.Resolve(context.Background(), Request{
		District: "Atlantis", State: "Nowhere",
		Latitude: ptr(25.3), Longitude: ptr(83.0),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if z.Code != "IGP" {
		t.Errorf("zone code = %q, want IGP", z.Code)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"latitude too low", Request{Latitude: ptr(-91), Longitude: ptr(80)}, ErrInvalidLatitude},
		{"latitude too high", Request{Latitude: ptr(91), Longitude: ptr(80)}, ErrInvalidLatitude},
		{"longitude too low", Request{Latitude: ptr(25), Longitude: ptr(-181)}, ErrInvalidLongitude},
		{"longitude too high", Request{Latitude: ptr(25), Longitude: ptr(181)}, ErrInvalidLongitude},
		{"empty request", Request{}, ErrInsufficientLocation},
		{"district without state", Request{District: "Varanasi"}, ErrInsufficientLocation},
		{"latitude without longitude", Request{Latitude: ptr(25)}, ErrInsufficientLocation},
	}

	r := NewResolver(testStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveStoreError(t *testing.T) {
	boom := errors.New("store down")
	r := NewResolver(&fakeStore{err: boom})

	_, err := r.Resolve(context.Background(), Request{ZoneCode: "IGP"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestZoneContains(t *testing.T) {
	z := Zone{LatMin: 24, LatMax: 31, LonMin: 74, LonMax: 88}

	if !z.Contains(25, 80) {
		t.Error("interior point should be contained")
	}
	if !z.Contains(24, 74) {
		t.Error("boundary point should be contained")
	}
	if z.Contains(23.9, 80) {
		t.Error("point below LatMin should not be contained")
	}
}
