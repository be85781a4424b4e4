// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package drone holds the per-source Drone accumulator, its derived
// publication View, and the Update value broadcast after a merge. The
// map from source identifier to Drone lives in package registry.
package drone

import (
	"fmt"

	"github.com/sutt0n/depin-open-droneid/wire"
)

// Drone accumulates the partial ODID messages observed for a single
// aircraft. It is mutated only by the ingest loop holding the
// registry's write lock (spec.md §3 invariant); Drone itself has no
// internal locking.
type Drone struct {
	BasicId         *wire.BasicId
	LastLocation    *wire.Location
	LocationHistory []wire.Location
	SystemMessage   *wire.SystemMessage
	Operator        *wire.Operator

	InStore bool
	StoreId int64
}

// New returns an empty Drone accumulator, created on first sighting of a source.
func New() *Drone {
	return &Drone{}
}

// UpdateBasicId replaces the accumulated BasicId.
func (d *Drone) UpdateBasicId(b wire.BasicId) {
	d.BasicId = &b
}

// UpdateSystemMessage replaces the accumulated SystemMessage.
func (d *Drone) UpdateSystemMessage(s wire.SystemMessage) {
	d.SystemMessage = &s
}

// UpdateOperator replaces the accumulated Operator.
func (d *Drone) UpdateOperator(o wire.Operator) {
	d.Operator = &o
}

// UpdateLocation applies a new Location fix. If a prior location is
// held, it is pushed onto LocationHistory before being replaced; if
// this is the first-ever location, it is pushed onto LocationHistory
// as well as becoming LastLocation — this lets downstream consumers
// render a take-off marker from LocationHistory[0] before a second fix
// ever arrives (spec.md §4.2, §9 design note: this codifies the
// home-point-capture reading of the two divergent update_location
// forms found in the original source).
func (d *Drone) UpdateLocation(l wire.Location) {
	if d.LastLocation != nil {
		d.LocationHistory = append(d.LocationHistory, *d.LastLocation)
	} else {
		d.LocationHistory = append(d.LocationHistory, l)
	}
	loc := l
	d.LastLocation = &loc
}

// PayloadReady reports whether every field required for persistence has
// been observed at least once.
func (d *Drone) PayloadReady() bool {
	return d.BasicId != nil && d.LastLocation != nil && d.SystemMessage != nil && d.Operator != nil
}

// MarkStored records that this record has been persisted. It may only
// be called once per Drone; a second call is a programmer error and
// panics rather than silently overwriting the store id, since in_store
// must transition false -> true exactly once (spec.md §3 invariant).
func (d *Drone) MarkStored(id int64) {
	if d.InStore {
		panic(fmt.Sprintf("drone: MarkStored called twice (existing store id %d, new id %d)", d.StoreId, id))
	}
	d.InStore = true
	d.StoreId = id
}

// ApplyMessage merges one decoded wire.Message into the drone,
// dispatching on whichever field is populated. Unknown, Authentication,
// and SelfId messages are accepted (so the header dispatch table in
// wire.ParseMessage never has to special-case them) but never change
// PayloadReady, per spec.md §1 non-goals.
func (d *Drone) ApplyMessage(m wire.Message) {
	switch {
	case m.BasicId != nil:
		d.UpdateBasicId(*m.BasicId)
	case m.Location != nil:
		d.UpdateLocation(*m.Location)
	case m.SystemMessage != nil:
		d.UpdateSystemMessage(*m.SystemMessage)
	case m.Operator != nil:
		d.UpdateOperator(*m.Operator)
	}
}
