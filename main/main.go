// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Command depin-open-droneid is the ground-station sensor process:
// it races the Bluetooth capture loop, the Wi-Fi capture loop, and the
// Wi-Fi channel hopper, merging every decoded Open Drone ID message
// into a DroneRegistry and publishing updates on a bus. Loading
// configuration from a file or flags, the HTTP/SSE surface, and
// concrete persistence are all out of scope; see SPEC_FULL.md.
package main

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/sutt0n/depin-open-droneid/bus"
	"github.com/sutt0n/depin-open-droneid/config"
	"github.com/sutt0n/depin-open-droneid/ingest"
	"github.com/sutt0n/depin-open-droneid/metrics"
	"github.com/sutt0n/depin-open-droneid/orchestrator"
	"github.com/sutt0n/depin-open-droneid/registry"
	"github.com/sutt0n/depin-open-droneid/store"
	"github.com/sutt0n/depin-open-droneid/wifi"
)

// nullStore is a DroneStore that drops everything but hands out
// unique ids; it stands in for the relational persistence layer
// spec.md §1 treats as an opaque external collaborator. A real
// deployment supplies its own store.DroneStore implementation here
// instead of nullStore.
type nullStore struct {
	nextId int64
}

func (s *nullStore) Insert(ctx context.Context, snap store.Snapshot) (int64, error) {
	return atomic.AddInt64(&s.nextId, 1), nil
}
func (s *nullStore) Update(ctx context.Context, snap store.Snapshot) error { return nil }
func (s *nullStore) Active(ctx context.Context, window time.Duration) ([]store.Snapshot, error) {
	return nil, nil
}
func (s *nullStore) All(ctx context.Context) ([]store.Snapshot, error) { return nil, nil }

func run() error {
	cfg := config.Default()
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	b := bus.New(cfg.BusCapacity)
	reg := registry.New(&nullStore{}, b, log)

	wifiIface := wifi.New(cfg.WifiInterfaceName, cfg.ChannelList, cfg.Dwell)
	radio := wifi.NewIwRadioAdmin()
	if err := radio.EnableMonitor(cfg.WifiInterfaceName); err != nil {
		log.WithError(err).Warn("failed to enable monitor mode; continuing, assuming it is already set")
	}

	btLoop := ingest.NewBluetooth(cfg.BluetoothAdapterSubstring, reg, log)
	wifiLoop := ingest.NewWifi(wifiIface, reg, log)
	hopper := wifi.NewHopper(wifiIface, radio, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wifiIface.Start(time.Now())

	return orchestrator.Run(ctx,
		btLoop.Run,
		wifiLoop.Run,
		func(ctx context.Context) error { return hopper.Run(ctx, cfg.HopInterval) },
	)
}

func main() {
	if err := run(); err != nil && err != context.Canceled {
		logrus.WithError(err).Fatal("exiting")
	}
}
