// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

const zoneColumns = `code, name, region, climate_type, soil_types,
	kharif_crops, rabi_crops, zaid_crops, lat_min, lat_max, lon_min, lon_max`

// ZoneByCode returns the zone for code, or (nil, nil) when unknown.
func (s *Store) ZoneByCode(ctx context.Context, code string) (*zone.Zone, error) {
	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+zoneColumns+` FROM zones WHERE code = ?`, code)

	z, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordStoreQuery("select", "zones", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordStoreQuery("select", "zones", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone %q: %w", code, err)
	}
	return z, nil
}

// Zones returns every zone in the reference dataset.
func (s *Store) Zones(ctx context.Context) ([]zone.Zone, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+zoneColumns+` FROM zones ORDER BY code`)
	metrics.RecordStoreQuery("select", "zones", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var zones []zone.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, *z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate zones: %w", err)
	}
	return zones, nil
}

// DistrictMapping returns the mapping for an exact district/state pair,
// or (nil, nil) when unknown.
func (s *Store) DistrictMapping(ctx context.Context, district, state string) (*zone.DistrictMapping, error) {
	start := time.Now()
	row := s.conn.QueryRowContext(ctx,
		`SELECT district, state, zone_code, latitude, longitude, alt_names, region, verified
		 FROM district_mappings WHERE district = ? AND state = ?`, district, state)

	m, err := scanDistrictMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordStoreQuery("select", "district_mappings", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordStoreQuery("select", "district_mappings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query district %q/%q: %w", district, state, err)
	}
	return m, nil
}

// DistrictMappings returns every district mapping.
func (s *Store) DistrictMappings(ctx context.Context) ([]zone.DistrictMapping, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT district, state, zone_code, latitude, longitude, alt_names, region, verified
		 FROM district_mappings ORDER BY state, district`)
	metrics.RecordStoreQuery("select", "district_mappings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query district mappings: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var mappings []zone.DistrictMapping
	for rows.Next() {
		m, err := scanDistrictMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan district mapping: %w", err)
		}
		mappings = append(mappings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate district mappings: %w", err)
	}
	return mappings, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanZone(sc scanner) (*zone.Zone, error) {
	var z zone.Zone
	var region, climate, soils, kharif, rabi, zaid sql.NullString
	if err := sc.Scan(&z.Code, &z.Name, &region, &climate, &soils,
		&kharif, &rabi, &zaid, &z.LatMin, &z.LatMax, &z.LonMin, &z.LonMax); err != nil {
		return nil, err
	}
	z.Region = region.String
	z.ClimateType = climate.String
	z.SoilTypes = soils.String
	z.KharifCrops = kharif.String
	z.RabiCrops = rabi.String
	z.ZaidCrops = zaid.String
	return &z, nil
}

func scanDistrictMapping(sc scanner) (*zone.DistrictMapping, error) {
	var m zone.DistrictMapping
	var altNames, region sql.NullString
	if err := sc.Scan(&m.District, &m.State, &m.ZoneCode, &m.Latitude, &m.Longitude,
		&altNames, &region, &m.Verified); err != nil {
		return nil, err
	}
	m.Region = region.String
	if altNames.Valid && altNames.String != "" {
		if err := json.Unmarshal([]byte(altNames.String), &m.AltNames); err != nil {
			return nil, fmt.Errorf("failed to decode alt names for %q: %w", m.District, err)
		}
	}
	return &m, nil
}

// encodeStrings JSON-encodes a string slice for VARCHAR storage. Empty
// slices become the empty string.
func encodeStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
