// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package seed

import (
	"reflect"
	"strings"
	"testing"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
)

func varietyNames(vs []Variety) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}

func TestRecommendedVarieties(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name     string
		cropCode string
		state    string
		expected []string
	}{
		{
			name:     "rice in Punjab newest first",
			cropCode: "RICE",
			state:    "Punjab",
			expected: []string{"PB-1509", "HD-2967"},
		},
		{
			name:     "case-insensitive crop and state",
			cropCode: "rice",
			state:    "punjab",
			expected: []string{"PB-1509", "HD-2967"},
		},
		{
			name:     "wheat in Punjab newest first",
			cropCode: "WHEAT",
			state:    "Punjab",
			expected: []string{"DBW-187", "HD-3086"},
		},
		{
			name:     "coastal rice excluded outside its states",
			cropCode: "RICE",
			state:    "Goa",
			expected: []string{"WHD-1"},
		},
		{
			name:     "unknown crop",
			cropCode: "UNKNOWN",
			state:    "Punjab",
			expected: []string{},
		},
		{
			name:     "unknown state",
			cropCode: "RICE",
			state:    "Atlantis",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.RecommendedVarieties(tt.cropCode, tt.state)
			if got == nil {
				t.Fatal("got nil, want non-nil slice")
			}
			if names := varietyNames(got); !reflect.DeepEqual(names, tt.expected) {
				t.Errorf("got %v, want %v", names, tt.expected)
			}
		})
	}
}

func TestRecommendedNames(t *testing.T) {
	c := NewCatalog()

	got := c.RecommendedNames("RICE", "Punjab")
	want := []string{"PB-1509", "HD-2967"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	empty := c.RecommendedNames("CASHEW", "Kerala")
	if empty == nil || len(empty) != 0 {
		t.Errorf("uncovered crop = %v, want empty non-nil", empty)
	}
}

func TestAllForCrop(t *testing.T) {
	c := NewCatalog()

	got := varietyNames(c.AllForCrop("RICE"))
	want := []string{"WHD-1", "PB-1509", "HD-2967"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rice varieties = %v, want %v", got, want)
	}

	for _, v := range c.AllForCrop("rice") {
		if v.CropCode != "RICE" {
			t.Errorf("AllForCrop returned crop code %q", v.CropCode)
		}
	}

	if got := c.AllForCrop("JUTE"); len(got) != 0 {
		t.Errorf("uncovered crop = %v, want empty", got)
	}
}

func TestToleranceFilters(t *testing.T) {
	c := NewCatalog()

	t.Run("drought tolerant groundnut", func(t *testing.T) {
		got := c.DroughtTolerant("GROUNDNUT")
		if names := varietyNames(got); !reflect.DeepEqual(names, []string{"TAG-24"}) {
			t.Errorf("got %v, want [TAG-24]", names)
		}
		for _, v := range got {
			if !v.DroughtTolerant {
				t.Errorf("%s is not drought tolerant", v.ID)
			}
		}
	})

	t.Run("no drought tolerant rice", func(t *testing.T) {
		if got := c.DroughtTolerant("RICE"); len(got) != 0 {
			t.Errorf("got %v, want none", varietyNames(got))
		}
	})

	t.Run("flood tolerant rice", func(t *testing.T) {
		got := c.FloodTolerant("RICE")
		if names := varietyNames(got); !reflect.DeepEqual(names, []string{"WHD-1"}) {
			t.Errorf("got %v, want [WHD-1]", names)
		}
	})

	t.Run("heat tolerant rice keeps catalog order", func(t *testing.T) {
		got := c.HeatTolerant("RICE")
		if names := varietyNames(got); !reflect.DeepEqual(names, []string{"PB-1509", "HD-2967"}) {
			t.Errorf("got %v, want [PB-1509 HD-2967]", names)
		}
	})

	t.Run("heat tolerant wheat", func(t *testing.T) {
		got := c.HeatTolerant("WHEAT")
		if len(got) != 2 {
			t.Fatalf("got %d varieties, want 2", len(got))
		}
		for _, v := range got {
			if !v.HeatTolerant {
				t.Errorf("%s is not heat tolerant", v.ID)
			}
		}
	})
}

func TestForSeason(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name     string
		cropCode string
		season   agronomy.Season
		expected []string
	}{
		{"kharif rice", "RICE", agronomy.SeasonKharif, []string{"PB-1509", "HD-2967", "WHD-1"}},
		{"no rabi rice", "RICE", agronomy.SeasonRabi, []string{}},
		{"rabi wheat", "WHEAT", agronomy.SeasonRabi, []string{"HD-3086", "DBW-187"}},
		{"zaid groundnut", "GROUNDNUT", agronomy.SeasonZaid, []string{"TAG-24"}},
		{"zaid maize", "MAIZE", agronomy.SeasonZaid, []string{"PMH-1"}},
		{"sunflower fits every season", "SUNFLOWER", agronomy.SeasonRabi, []string{"KBSH-44"}},
		{"unrecognized season", "RICE", agronomy.Season("SUMMER"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := varietyNames(c.ForSeason(tt.cropCode, tt.season))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestByID(t *testing.T) {
	c := NewCatalog()

	v, ok := c.ByID("RICE-UP-001")
	if !ok {
		t.Fatal("RICE-UP-001 not found")
	}
	if v.Name != "PB-1509" {
		t.Errorf("name = %q, want PB-1509", v.Name)
	}
	if v.Institute != "Punjab Agricultural University, Ludhiana" {
		t.Errorf("institute = %q", v.Institute)
	}

	if _, ok := c.ByID("UNKNOWN-ID"); ok {
		t.Error("unknown id reported found")
	}
	if _, ok := c.ByID("rice-up-001"); ok {
		t.Error("id lookup should be exact, not case-insensitive")
	}
}

func TestStatesForCrop(t *testing.T) {
	c := NewCatalog()

	got := c.StatesForCrop("RICE")
	want := []string{"Goa", "Haryana", "Karnataka", "Madhya Pradesh", "Maharashtra", "Punjab", "Uttar Pradesh"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = c.StatesForCrop("WHEAT")
	want = []string{"Haryana", "Madhya Pradesh", "Punjab", "Uttar Pradesh"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	empty := c.StatesForCrop("COCONUT")
	if empty == nil || len(empty) != 0 {
		t.Errorf("uncovered crop = %v, want empty non-nil", empty)
	}
}

func TestCatalogIntegrity(t *testing.T) {
	c := NewCatalog()

	ids := make(map[string]bool)
	for _, v := range c.varieties {
		if ids[v.ID] {
			t.Errorf("duplicate variety id %s", v.ID)
		}
		ids[v.ID] = true

		if v.ID == "" || v.CropCode == "" || v.CropName == "" || v.Name == "" || v.Institute == "" {
			t.Errorf("%s: missing identity field", v.ID)
		}
		if v.CropCode != strings.ToUpper(v.CropCode) {
			t.Errorf("%s: crop code %q is not upper-case", v.ID, v.CropCode)
		}
		if v.ReleaseYear < 1950 {
			t.Errorf("%s: implausible release year %d", v.ID, v.ReleaseYear)
		}
		if len(v.States) == 0 || len(v.Zones) == 0 {
			t.Errorf("%s: missing states or zones", v.ID)
		}
		if !v.Seasons.Kharif && !v.Seasons.Rabi && !v.Seasons.Zaid {
			t.Errorf("%s: no season suitability", v.ID)
		}
		if v.MaturityDays <= 0 {
			t.Errorf("%s: maturity days %d", v.ID, v.MaturityDays)
		}
		if v.AverageYieldQtlHa <= 0 || v.PotentialYieldQtlHa < v.AverageYieldQtlHa {
			t.Errorf("%s: yields %v/%v", v.ID, v.AverageYieldQtlHa, v.PotentialYieldQtlHa)
		}
		if len(v.Characteristics) == 0 || len(v.DiseaseResistance) == 0 || len(v.ClimateResilience) == 0 {
			t.Errorf("%s: missing descriptor lists", v.ID)
		}
		if v.WaterRequirementMm <= 0 || v.SeedRateKgHa <= 0 || v.SeedCostPerKg <= 0 {
			t.Errorf("%s: missing agronomic numbers", v.ID)
		}
		if v.Spacing == "" {
			t.Errorf("%s: missing spacing", v.ID)
		}
	}

	if len(c.varieties) < 15 {
		t.Errorf("catalog holds %d varieties, want at least 15", len(c.varieties))
	}
}
