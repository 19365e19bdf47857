// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package seed

import (
	"sort"
	"strings"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/ranking"
)

// Catalog answers seed variety lookups against the embedded release
// catalog. Crop codes and state names compare case-insensitively.
type Catalog struct {
	varieties []Variety
}

// NewCatalog returns a catalog backed by the embedded variety table.
func NewCatalog() *Catalog {
	return &Catalog{varieties: releasedVarieties}
}

// RecommendedVarieties returns the varieties released for cropCode and
// recommended in state, newest release first.
func (c *Catalog) RecommendedVarieties(cropCode, state string) []Variety {
	matched := ranking.Filter(c.varieties, func(v Variety) bool {
		return strings.EqualFold(v.CropCode, cropCode) && anyStateFold(v.States, state)
	})
	return ranking.Descending(matched, byReleaseYear)
}

// RecommendedNames returns just the variety names for cropCode in state,
// newest release first.
func (c *Catalog) RecommendedNames(cropCode, state string) []string {
	matched := c.RecommendedVarieties(cropCode, state)
	names := make([]string, len(matched))
	for i, v := range matched {
		names[i] = v.Name
	}
	return names
}

// AllForCrop returns every variety released for cropCode, newest release
// first.
func (c *Catalog) AllForCrop(cropCode string) []Variety {
	return ranking.Descending(c.forCrop(cropCode), byReleaseYear)
}

// DroughtTolerant returns the drought-tolerant varieties for cropCode in
// catalog order.
func (c *Catalog) DroughtTolerant(cropCode string) []Variety {
	return ranking.Filter(c.forCrop(cropCode), func(v Variety) bool { return v.DroughtTolerant })
}

// FloodTolerant returns the flood-tolerant varieties for cropCode in catalog
// order.
func (c *Catalog) FloodTolerant(cropCode string) []Variety {
	return ranking.Filter(c.forCrop(cropCode), func(v Variety) bool { return v.FloodTolerant })
}

// HeatTolerant returns the heat-tolerant varieties for cropCode in catalog
// order.
func (c *Catalog) HeatTolerant(cropCode string) []Variety {
	return ranking.Filter(c.forCrop(cropCode), func(v Variety) bool { return v.HeatTolerant })
}

// ForSeason returns the varieties of cropCode released for the given
// cropping season. Unrecognized seasons match nothing.
func (c *Catalog) ForSeason(cropCode string, season agronomy.Season) []Variety {
	return ranking.Filter(c.forCrop(cropCode), func(v Variety) bool {
		switch season {
		case agronomy.SeasonKharif:
			return v.Seasons.Kharif
		case agronomy.SeasonRabi:
			return v.Seasons.Rabi
		case agronomy.SeasonZaid:
			return v.Seasons.Zaid
		default:
			return false
		}
	})
}

// ByID looks up a variety by its exact id.
func (c *Catalog) ByID(varietyID string) (Variety, bool) {
	for _, v := range c.varieties {
		if v.ID == varietyID {
			return v, true
		}
	}
	return Variety{}, false
}

// StatesForCrop returns the distinct states with released varieties for
// cropCode, sorted alphabetically.
func (c *Catalog) StatesForCrop(cropCode string) []string {
	seen := make(map[string]struct{})
	states := make([]string, 0, 8)
	for _, v := range c.forCrop(cropCode) {
		for _, s := range v.States {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			states = append(states, s)
		}
	}
	sort.Strings(states)
	return states
}

func (c *Catalog) forCrop(cropCode string) []Variety {
	return ranking.Filter(c.varieties, func(v Variety) bool {
		return strings.EqualFold(v.CropCode, cropCode)
	})
}

func byReleaseYear(v Variety) float64 { return float64(v.ReleaseYear) }

func anyStateFold(states []string, want string) bool {
	for _, s := range states {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
