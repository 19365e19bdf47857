// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
)

// Store wraps the DuckDB connection and provides data access methods.
type Store struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens (or creates) the DuckDB database at cfg.Path, initializes the
// schema, and seeds the reference dataset when the store is empty and
// seeding is enabled.
func New(cfg *config.DatabaseConfig) (*Store, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists so a fresh deployment does not
	// fail with "No such file or directory". 0750 per gosec G301.
	dbDir := filepath.Dir(cfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{conn: conn, cfg: cfg}

	// DuckDB is embedded; a single writer connection avoids write-write
	// conflicts while still letting reads share it.
	conn.SetMaxOpenConns(numThreads)
	conn.SetMaxIdleConns(numThreads)
	conn.SetConnMaxLifetime(0)

	if err := s.initialize(); err != nil {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close database after init error")
		}
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", numThreads).
		Str("max_memory", cfg.MaxMemory).
		Msg("DuckDB store opened")
	return s, nil
}

// Conn returns the underlying SQL connection for packages that need
// direct access.
func (s *Store) Conn() *sql.DB {
	return s.conn
}

// Close checkpoints and closes the database connection.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}

	// Best-effort checkpoint to flush the WAL before closing.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}

	return s.conn.Close()
}

// Checkpoint flushes the WAL to the database file.
func (s *Store) Checkpoint(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	if _, err := s.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// Ping checks that the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.conn.PingContext(ctx)
}

// initialize creates the schema and seeds reference data when needed.
func (s *Store) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.createTables(ctx); err != nil {
		return err
	}

	if s.cfg.SeedReferenceData {
		if err := s.seedIfEmpty(ctx); err != nil {
			return err
		}
	}

	return nil
}
