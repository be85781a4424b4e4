// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package store defines the persistence boundary for drone snapshots.
// Per spec.md, a concrete adapter (SQL, time-series, whatever) is out of
// scope; only the interface the registry drives is defined here.
package store

import (
	"context"
	"time"

	"github.com/sutt0n/depin-open-droneid/drone"
)

// Snapshot is what the registry hands to a DroneStore: the derived view
// plus the bookkeeping fields a store needs to decide insert vs update.
type Snapshot struct {
	SourceId  string
	View      drone.View
	StoreId   int64
	UpdatedAt time.Time
}

// DroneStore is the four-operation persistence contract used by the
// registry. Implementations decide their own schema and durability;
// the registry only ever calls these four methods.
type DroneStore interface {
	// Insert persists a new snapshot and returns the id assigned to it.
	Insert(ctx context.Context, s Snapshot) (int64, error)

	// Update persists a later snapshot of an already-inserted record;
	// s.StoreId is always non-zero here.
	Update(ctx context.Context, s Snapshot) error

	// Active returns every snapshot updated within the last window.
	Active(ctx context.Context, window time.Duration) ([]Snapshot, error)

	// All returns every snapshot the store holds, regardless of age.
	All(ctx context.Context) ([]Snapshot, error)
}
