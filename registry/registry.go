// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package registry holds the single authoritative map of tracked
// drones and the merge sequencing described in spec.md §4.3: acquire
// the write lock, ensure an entry, apply the decoded messages, release
// the lock before any store I/O, then reacquire only to call
// MarkStored.
package registry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sutt0n/depin-open-droneid/bus"
	"github.com/sutt0n/depin-open-droneid/drone"
	"github.com/sutt0n/depin-open-droneid/metrics"
	"github.com/sutt0n/depin-open-droneid/store"
	"github.com/sutt0n/depin-open-droneid/wire"

	"sync"
)

// DroneRegistry owns every tracked drone.Drone, keyed by the ingest
// layer's source identifier (a BT device address, or for Wi-Fi the
// decoded uas_id). A single mutex, rather than per-entry locks, guards
// the map and every Drone in it; it is held while messages are applied
// and released around each store call.
type DroneRegistry struct {
	mu      sync.Mutex
	drones  map[string]*drone.Drone
	store   store.DroneStore
	bus     *bus.DroneUpdateBus
	log     logrus.FieldLogger
}

// New builds a registry backed by the given store and update bus.
func New(s store.DroneStore, b *bus.DroneUpdateBus, log logrus.FieldLogger) *DroneRegistry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DroneRegistry{
		drones: make(map[string]*drone.Drone),
		store:  s,
		bus:    b,
		log:    log,
	}
}

// Merge applies msgs, decoded from a single source, into that source's
// Drone accumulator, persists the result when appropriate, and
// publishes a drone.Update. It is the single entry point the Wi-Fi
// ingest loop calls after a successful wire-layer parse; every
// complete pack is persisted (spec.md §4.5.2).
func (r *DroneRegistry) Merge(ctx context.Context, sourceId string, msgs []wire.Message) error {
	return r.merge(ctx, sourceId, msgs, true)
}

// MergeThrottled behaves like Merge, but (per spec.md §9's preserved
// "Bluetooth-only" heuristic) re-persistence of an already-inserted
// record only happens when msgs contains an Authentication or System
// message; the accumulator is still updated on every call, and the
// very first insert is never throttled. The Bluetooth ingest loop is
// the only caller of this variant.
func (r *DroneRegistry) MergeThrottled(ctx context.Context, sourceId string, msgs []wire.Message) error {
	return r.merge(ctx, sourceId, msgs, containsAuthOrSystem(msgs))
}

func containsAuthOrSystem(msgs []wire.Message) bool {
	for _, m := range msgs {
		if m.Authentication != nil || m.SystemMessage != nil {
			return true
		}
	}
	return false
}

func (r *DroneRegistry) merge(ctx context.Context, sourceId string, msgs []wire.Message, persistUpdate bool) error {
	r.mu.Lock()
	d, existed := r.drones[sourceId]
	if !existed {
		d = drone.New()
		r.drones[sourceId] = d
	}
	for _, m := range msgs {
		d.ApplyMessage(m)
	}
	ready := d.PayloadReady()
	inStore := d.InStore
	view := d.DeriveView()
	storeId := d.StoreId
	trackedCount := len(r.drones)
	r.mu.Unlock()

	metrics.DronesTracked.Set(float64(trackedCount))

	if !ready {
		return nil
	}
	if inStore && !persistUpdate {
		return nil
	}

	snap := store.Snapshot{
		SourceId:  sourceId,
		View:      view,
		StoreId:   storeId,
		UpdatedAt: time.Now(),
	}

	mutation := drone.MutationUpdate
	if !inStore {
		mutation = drone.MutationCreate
		id, err := r.store.Insert(ctx, snap)
		if err != nil {
			r.log.WithError(err).WithField("source", sourceId).Warn("drone insert failed")
			return err
		}

		r.mu.Lock()
		d.MarkStored(id)
		r.mu.Unlock()

		snap.StoreId = id
	} else {
		snap.StoreId = storeId
		if err := r.store.Update(ctx, snap); err != nil {
			r.log.WithError(err).WithField("source", sourceId).Warn("drone update failed")
			return err
		}
	}

	if r.bus != nil {
		r.bus.Publish(drone.Update{
			Mutation: mutation,
			SourceId: sourceId,
			View:     snap.View,
			StoreId:  snap.StoreId,
		})
	}

	return nil
}

// Get returns a read-only snapshot view of a tracked drone, if any.
func (r *DroneRegistry) Get(sourceId string) (drone.View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drones[sourceId]
	if !ok {
		return drone.View{}, false
	}
	return d.DeriveView(), true
}

// Len reports how many distinct sources are currently tracked.
func (r *DroneRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drones)
}
