// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package services

import (
	"context"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
)

// Checkpointer flushes buffered writes to durable storage. Satisfied by
// the DuckDB store.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService periodically checkpoints the store so application and
// detection logs survive an unclean shutdown.
type CheckpointService struct {
	store    Checkpointer
	interval time.Duration
	name     string
}

// NewCheckpointService wraps the store as a supervised maintenance job.
func NewCheckpointService(store Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CheckpointService{
		store:    store,
		interval: interval,
		name:     "store-checkpoint",
	}
}

// Serve implements suture.Service.
func (c *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.store.Checkpoint(ctx); err != nil {
				logging.Warn().Err(err).Msg("Periodic checkpoint failed")
				continue
			}
			logging.Debug().Msg("Store checkpointed")
		}
	}
}

// String implements fmt.Stringer; suture logs services by this name.
func (c *CheckpointService) String() string {
	return c.name
}
