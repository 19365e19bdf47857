// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package zone

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// Sentinel errors. Invalid input is an error the caller must handle;
// a location that simply matches nothing is ErrZoneNotFound, which the
// aggregator converts into a structured unsuccessful result.
var (
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrInsufficientLocation = errors.New("insufficient location information")
	ErrZoneNotFound         = errors.New("zone not found")
)

// boundingBoxDegrees is the half-width of the centroid search box for
// coordinate lookups, roughly 55 km at Indian latitudes.
const boundingBoxDegrees = 0.5

// Store is the reference-data surface the resolver needs. Lookup methods
// return (nil, nil) when nothing matches; errors are reserved for store
// failures.
type Store interface {
	ZoneByCode(ctx context.Context, code string) (*Zone, error)
	DistrictMapping(ctx context.Context, district, state string) (*DistrictMapping, error)
	DistrictMappings(ctx context.Context) ([]DistrictMapping, error)
	Zones(ctx context.Context) ([]Zone, error)
}

// Request carries the caller's location. ZoneCode wins when set;
// otherwise district+state, then coordinates.
type Request struct {
	ZoneCode  string
	District  string
	State     string
	Latitude  *float64
	Longitude *float64
}

// Resolver maps a location request to an agro-ecological zone through a
// chain of progressively looser matches.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve finds the zone for req. The chain: direct zone code, exact
// district/state, lower-cased district/state, case-insensitive scan
// (including alternative district names), centroid bounding box, zone
// envelope. Coordinates are validated before any lookup.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Zone, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if code := strings.TrimSpace(req.ZoneCode); code != "" {
		return r.byCode(ctx, code)
	}

	if strings.TrimSpace(req.District) != "" && strings.TrimSpace(req.State) != "" {
		z, err := r.byDistrict(ctx, req.District, req.State)
		if err == nil || !errors.Is(err, ErrZoneNotFound) {
			return z, err
		}
		// District lookup exhausted; coordinates, if present, get a turn.
		if req.Latitude == nil || req.Longitude == nil {
			return nil, err
		}
	}

	return r.byCoordinates(ctx, *req.Latitude, *req.Longitude)
}

// validate rejects malformed coordinates and requests with no usable
// location at all.
func validate(req Request) error {
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, *req.Latitude)
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, *req.Longitude)
	}

	hasCode := strings.TrimSpace(req.ZoneCode) != ""
	hasDistrict := strings.TrimSpace(req.District) != "" && strings.TrimSpace(req.State) != ""
	hasCoords := req.Latitude != nil && req.Longitude != nil
	if !hasCode && !hasDistrict && !hasCoords {
		return fmt.Errorf("%w: need a zone code, district+state, or latitude+longitude", ErrInsufficientLocation)
	}
	return nil
}

func (r *Resolver) byCode(ctx context.Context, code string) (*Zone, error) {
	z, err := r.store.ZoneByCode(ctx, code)
	if err != nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("code", "error").Inc()
		return nil, fmt.Errorf("zone lookup for code %q: %w", code, err)
	}
	if z == nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("code", "not_found").Inc()
		return nil, fmt.Errorf("%w: code %q", ErrZoneNotFound, code)
	}
	metrics.ZoneResolutionsTotal.WithLabelValues("code", "success").Inc()
	return z, nil
}

func (r *Resolver) byDistrict(ctx context.Context, district, state string) (*Zone, error) {
	district = strings.TrimSpace(district)
	state = strings.TrimSpace(state)

	m, err := r.store.DistrictMapping(ctx, district, state)
	if err != nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("district", "error").Inc()
		return nil, fmt.Errorf("district lookup %q/%q: %w", district, state, err)
	}

	if m == nil {
		m, err = r.store.DistrictMapping(ctx, strings.ToLower(district), strings.ToLower(state))
		if err != nil {
			metrics.ZoneResolutionsTotal.WithLabelValues("district", "error").Inc()
			return nil, fmt.Errorf("district lookup %q/%q: %w", district, state, err)
		}
	}

	if m == nil {
		m, err = r.scanDistricts(ctx, district, state)
		if err != nil {
			metrics.ZoneResolutionsTotal.WithLabelValues("district", "error").Inc()
			return nil, err
		}
	}

	if m == nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("district", "not_found").Inc()
		return nil, fmt.Errorf("%w: district %q, state %q", ErrZoneNotFound, district, state)
	}

	z, err := r.store.ZoneByCode(ctx, m.ZoneCode)
	if err != nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("district", "error").Inc()
		return nil, fmt.Errorf("zone lookup for code %q: %w", m.ZoneCode, err)
	}
	if z == nil {
		// Mapping points at a zone the dataset no longer carries.
		logging.Warn().Str("district", district).Str("zone_code", m.ZoneCode).
			Msg("district mapping references unknown zone")
		metrics.ZoneResolutionsTotal.WithLabelValues("district", "not_found").Inc()
		return nil, fmt.Errorf("%w: district %q maps to unknown zone %q", ErrZoneNotFound, district, m.ZoneCode)
	}

	metrics.ZoneResolutionsTotal.WithLabelValues("district", "success").Inc()
	return z, nil
}

// scanDistricts walks every mapping comparing case-insensitively,
// alternative names included.
func (r *Resolver) scanDistricts(ctx context.Context, district, state string) (*DistrictMapping, error) {
	mappings, err := r.store.DistrictMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing district mappings: %w", err)
	}

	for i := range mappings {
		m := &mappings[i]
		if !strings.EqualFold(m.State, state) {
			continue
		}
		if strings.EqualFold(m.District, district) {
			return m, nil
		}
		for _, alt := range m.AltNames {
			if strings.EqualFold(alt, district) {
				return m, nil
			}
		}
	}
	return nil, nil
}

func (r *Resolver) byCoordinates(ctx context.Context, lat, lon float64) (*Zone, error) {
	m, err := r.nearestDistrict(ctx, lat, lon)
	if err != nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "error").Inc()
		return nil, err
	}
	if m != nil {
		z, err := r.store.ZoneByCode(ctx, m.ZoneCode)
		if err != nil {
			metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "error").Inc()
			return nil, fmt.Errorf("zone lookup for code %q: %w", m.ZoneCode, err)
		}
		if z != nil {
			metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "success").Inc()
			return z, nil
		}
	}

	// No centroid close enough; fall back to the zone envelopes.
	zones, err := r.store.Zones(ctx)
	if err != nil {
		metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "error").Inc()
		return nil, fmt.Errorf("listing zones: %w", err)
	}
	for i := range zones {
		if zones[i].Contains(lat, lon) {
			metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "success").Inc()
			return &zones[i], nil
		}
	}

	metrics.ZoneResolutionsTotal.WithLabelValues("coordinates", "not_found").Inc()
	return nil, fmt.Errorf("%w: no zone covers (%v, %v)", ErrZoneNotFound, lat, lon)
}

// nearestDistrict returns the district whose centroid is closest to the
// point, restricted to a ±boundingBoxDegrees box. nil when nothing is in
// the box.
func (r *Resolver) nearestDistrict(ctx context.Context, lat, lon float64) (*DistrictMapping, error) {
	mappings, err := r.store.DistrictMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing district mappings: %w", err)
	}

	var best *DistrictMapping
	bestDist := math.MaxFloat64
	for i := range mappings {
		m := &mappings[i]
		dLat := m.Latitude - lat
		dLon := m.Longitude - lon
		if math.Abs(dLat) > boundingBoxDegrees || math.Abs(dLon) > boundingBoxDegrees {
			continue
		}
		d := dLat*dLat + dLon*dLon
		if d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best, nil
}
