// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package validation

import (
	"strings"
	"testing"
)

type locationRequest struct {
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
	District  string   `validate:"omitempty,min=2"`
	State     string   `validate:"omitempty,min=2"`
}

type seasonRequest struct {
	Season     string `validate:"required,season"`
	Irrigation string `validate:"omitempty,irrigation"`
}

func ptr(v float64) *float64 { return &v }

func TestValidateStructPasses(t *testing.T) {
	req := locationRequest{Latitude: ptr(26.85), Longitude: ptr(80.95)}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("valid coordinates should pass, got %v", err)
	}
}

func TestLatitudeOutOfRange(t *testing.T) {
	req := locationRequest{Latitude: ptr(100), Longitude: ptr(80)}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("latitude 100 should fail validation")
	}
	if !strings.Contains(err.Error(), "latitude") {
		t.Errorf("error should mention latitude, got %q", err.Error())
	}
}

func TestLongitudeOutOfRange(t *testing.T) {
	req := locationRequest{Latitude: ptr(26), Longitude: ptr(200)}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("longitude 200 should fail validation")
	}
	if !strings.Contains(err.Error(), "longitude") {
		t.Errorf("error should mention longitude, got %q", err.Error())
	}
}

func TestSeasonTag(t *testing.T) {
	tests := []struct {
		season string
		valid  bool
	}{
		{"KHARIF", true},
		{"RABI", true},
		{"ZAID", true},
		{"kharif", true},
		{" rabi ", true},
		{"MONSOON", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.season, func(t *testing.T) {
			err := ValidateStruct(&seasonRequest{Season: tt.season})
			if tt.valid && err != nil {
				t.Errorf("season %q should pass, got %v", tt.season, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("season %q should fail", tt.season)
			}
		})
	}
}

func TestIrrigationTag(t *testing.T) {
	valid := seasonRequest{Season: "KHARIF", Irrigation: "drip"}
	if err := ValidateStruct(&valid); err != nil {
		t.Errorf("drip irrigation should pass, got %v", err)
	}

	invalid := seasonRequest{Season: "KHARIF", Irrigation: "FLOOD"}
	if err := ValidateStruct(&invalid); err == nil {
		t.Error("unrecognized irrigation type should fail")
	}
}

func TestToAPIErrorSingleField(t *testing.T) {
	req := locationRequest{Latitude: ptr(95)}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Latitude" {
		t.Errorf("details field = %v, want Latitude", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultipleFields(t *testing.T) {
	req := locationRequest{Latitude: ptr(95), Longitude: ptr(300)}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 detail fields, got %v", apiErr.Details["fields"])
	}
}
