// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package wifi owns the shared WifiInterface state and the channel
// hopper that cycles it, independently of however a capture loop is
// actually reading frames off the NIC.
package wifi

import (
	"sync"
	"time"
)

// DefaultChannelList is the 2.4 GHz legacy channel set spec.md §4.4
// names as the default; configurations may extend it with 5 GHz
// channels.
var DefaultChannelList = []uint16{1, 6, 11}

// DwellSeconds is how long the hopper pins a channel after the last
// received ODID frame before hopping again.
const DwellSeconds = 30 * time.Second

// InitialGraceSeconds is how long the hopper waits for the first-ever
// frame before giving up on a channel and hopping.
const InitialGraceSeconds = 5 * time.Second

// Interface is the shared state a capture loop and the channel hopper
// both touch: the NIC name, the channel list to cycle, the current
// channel, and the timestamp of the last decoded ODID frame.
type Interface struct {
	mu sync.Mutex

	Name        string
	ChannelList []uint16
	Dwell       time.Duration
	channelIdx  int
	startedAt   time.Time
	lastODID    time.Time
	hasLastODID bool
}

// New returns an Interface tuned to the given NIC name, channel list,
// and dwell period, starting on the list's first entry. An empty
// channelList falls back to DefaultChannelList; a zero dwell falls
// back to DwellSeconds.
func New(name string, channelList []uint16, dwell time.Duration) *Interface {
	if len(channelList) == 0 {
		channelList = DefaultChannelList
	}
	if dwell <= 0 {
		dwell = DwellSeconds
	}
	return &Interface{
		Name:        name,
		ChannelList: channelList,
		Dwell:       dwell,
	}
}

// Channel returns the currently tuned channel.
func (w *Interface) Channel() uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ChannelList[w.channelIdx]
}

// Start records the loop's start time, used for the initial grace
// period before any ODID traffic has ever been seen.
func (w *Interface) Start(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.startedAt = now
}

// NoteODIDReceived resets the dwell timer: called by the capture loop
// whenever it successfully decodes an ODID message pack.
func (w *Interface) NoteODIDReceived(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastODID = now
	w.hasLastODID = true
}

// ShouldHop implements spec.md §4.4's state machine, evaluated by the
// hopper at a fixed cadence.
func (w *Interface) ShouldHop(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hasLastODID {
		return now.Sub(w.lastODID) > w.Dwell
	}
	return now.Sub(w.startedAt) > InitialGraceSeconds
}

// LastODID returns the timestamp of the last decoded ODID frame and
// whether one has ever been seen, for diagnostic logging.
func (w *Interface) LastODID() (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastODID, w.hasLastODID
}

// Advance moves to the next channel in ChannelList, wrapping at the
// end, and returns the new channel.
func (w *Interface) Advance() uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.channelIdx = (w.channelIdx + 1) % len(w.ChannelList)
	return w.ChannelList[w.channelIdx]
}
