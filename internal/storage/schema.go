// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"fmt"
)

// schemaStatements create every table and sequence. All statements are
// idempotent so opening an existing database is a no-op.
var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS detections_id_seq`,

	`CREATE TABLE IF NOT EXISTS zones (
		code          VARCHAR PRIMARY KEY,
		name          VARCHAR NOT NULL,
		region        VARCHAR,
		climate_type  VARCHAR,
		soil_types    VARCHAR,
		kharif_crops  VARCHAR,
		rabi_crops    VARCHAR,
		zaid_crops    VARCHAR,
		lat_min       DOUBLE NOT NULL,
		lat_max       DOUBLE NOT NULL,
		lon_min       DOUBLE NOT NULL,
		lon_max       DOUBLE NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS district_mappings (
		district   VARCHAR NOT NULL,
		state      VARCHAR NOT NULL,
		zone_code  VARCHAR NOT NULL,
		latitude   DOUBLE NOT NULL,
		longitude  DOUBLE NOT NULL,
		alt_names  VARCHAR,
		region     VARCHAR,
		verified   BOOLEAN NOT NULL DEFAULT false,
		PRIMARY KEY (district, state)
	)`,

	`CREATE TABLE IF NOT EXISTS crop_suitability (
		zone_code             VARCHAR NOT NULL,
		crop_code             VARCHAR NOT NULL,
		crop_name             VARCHAR NOT NULL,
		crop_name_local       VARCHAR,
		climate_score         DOUBLE NOT NULL,
		soil_score            DOUBLE NOT NULL,
		terrain_score         DOUBLE NOT NULL,
		water_score           DOUBLE NOT NULL,
		rainfed_yield_kg_ha   DOUBLE,
		irrigated_yield_kg_ha DOUBLE,
		water_requirement_mm  DOUBLE,
		growing_season_days   INTEGER,
		kharif_suitable       BOOLEAN NOT NULL DEFAULT false,
		rabi_suitable         BOOLEAN NOT NULL DEFAULT false,
		zaid_suitable         BOOLEAN NOT NULL DEFAULT false,
		climate_risk_level    VARCHAR,
		PRIMARY KEY (zone_code, crop_code)
	)`,

	`CREATE TABLE IF NOT EXISTS soil_health_cards (
		farmer_id         VARCHAR PRIMARY KEY,
		ph                DOUBLE,
		nitrogen_kg_ha    DOUBLE,
		phosphorus_kg_ha  DOUBLE,
		potassium_kg_ha   DOUBLE,
		sulfur_ppm        DOUBLE,
		zinc_ppm          DOUBLE,
		iron_ppm          DOUBLE,
		organic_carbon    DOUBLE,
		updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS fertilizer_applications (
		id                 VARCHAR PRIMARY KEY,
		crop_id            VARCHAR NOT NULL,
		farmer_id          VARCHAR NOT NULL,
		fertilizer_type    VARCHAR NOT NULL,
		category           VARCHAR NOT NULL,
		quantity_kg        DOUBLE NOT NULL,
		area_acres         DOUBLE NOT NULL,
		applied_on         TIMESTAMP NOT NULL,
		stage              VARCHAR,
		cost               DOUBLE NOT NULL DEFAULT 0,
		nitrogen_percent   DOUBLE NOT NULL DEFAULT 0,
		phosphorus_percent DOUBLE NOT NULL DEFAULT 0,
		potassium_percent  DOUBLE NOT NULL DEFAULT 0,
		sulfur_percent     DOUBLE NOT NULL DEFAULT 0,
		zinc_percent       DOUBLE NOT NULL DEFAULT 0,
		source             VARCHAR,
		notes              VARCHAR
	)`,

	`CREATE TABLE IF NOT EXISTS disease_detections (
		id                    BIGINT PRIMARY KEY DEFAULT nextval('detections_id_seq'),
		user_id               BIGINT NOT NULL,
		crop_id               BIGINT,
		image_path            VARCHAR NOT NULL,
		disease_name          VARCHAR NOT NULL,
		disease_name_local    VARCHAR,
		confidence_score      DOUBLE NOT NULL,
		severity_level        VARCHAR NOT NULL,
		affected_area_percent DOUBLE,
		treatments            VARCHAR,
		detected_at           TIMESTAMP NOT NULL,
		model_version         VARCHAR
	)`,

	`CREATE INDEX IF NOT EXISTS idx_district_state ON district_mappings (state)`,
	`CREATE INDEX IF NOT EXISTS idx_suitability_zone ON crop_suitability (zone_code)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_crop ON fertilizer_applications (crop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_farmer ON fertilizer_applications (farmer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_detections_user ON disease_detections (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_detections_crop ON disease_detections (crop_id)`,
}

func (s *Store) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
