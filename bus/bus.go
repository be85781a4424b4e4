// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package bus provides a bounded, lossy fan-out broadcast of drone
// updates to however many subscribers the process happens to have.
package bus

import (
	"sync"

	"github.com/sutt0n/depin-open-droneid/drone"
)

// DefaultCapacity is the per-subscriber channel buffer used when none is
// given explicitly (spec.md §4.6).
const DefaultCapacity = 10

// DroneUpdateBus fans a single stream of drone.Update values out to any
// number of subscribers. A slow subscriber drops updates rather than
// blocking the publisher; there being no subscribers at all is not an
// error, publishing into the void is simply a no-op.
type DroneUpdateBus struct {
	mu          sync.Mutex
	capacity    int
	subscribers map[int]chan drone.Update
	nextId      int
}

// New returns a bus whose subscriber channels are buffered to capacity.
func New(capacity int) *DroneUpdateBus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &DroneUpdateBus{
		capacity:    capacity,
		subscribers: make(map[int]chan drone.Update),
	}
}

// Subscription is a handle returned by Subscribe; call Close to detach.
type Subscription struct {
	id   int
	ch   chan drone.Update
	bus  *DroneUpdateBus
}

// C returns the channel updates arrive on.
func (s *Subscription) C() <-chan drone.Update { return s.ch }

// Close detaches the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if _, ok := s.bus.subscribers[s.id]; ok {
		delete(s.bus.subscribers, s.id)
		close(s.ch)
	}
}

// Subscribe registers a new listener and returns its Subscription.
func (b *DroneUpdateBus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextId
	b.nextId++
	ch := make(chan drone.Update, b.capacity)
	b.subscribers[id] = ch
	return &Subscription{id: id, ch: ch, bus: b}
}

// Publish delivers u to every current subscriber. A subscriber whose
// buffer is full has the update dropped for it; Publish never blocks.
func (b *DroneUpdateBus) Publish(u drone.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- u:
		default:
			// subscriber too slow; drop rather than stall ingest.
		}
	}
}

// Subscribers reports the current subscriber count, mostly for metrics.
func (b *DroneUpdateBus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
