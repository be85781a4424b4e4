// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package ingest owns the two capture loops (Bluetooth, Wi-Fi) that
// feed decoded wire.Message values into the registry, per spec.md
// §4.5.
package ingest

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"

	"github.com/sutt0n/depin-open-droneid/metrics"
	"github.com/sutt0n/depin-open-droneid/registry"
	"github.com/sutt0n/depin-open-droneid/wire"
)

// Bluetooth runs the BLE central scan loop described in spec.md
// §4.5.1: duplicate-data-allowed discovery, filtered by an adapter
// name substring, decoding the first service-data value of each
// advertisement.
type Bluetooth struct {
	Adapter          *bluetooth.Adapter
	AdapterSubstring string
	Registry         *registry.DroneRegistry
	Log              logrus.FieldLogger
}

// NewBluetooth builds a Bluetooth loop against the platform's default adapter.
func NewBluetooth(substring string, reg *registry.DroneRegistry, log logrus.FieldLogger) *Bluetooth {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bluetooth{
		Adapter:          bluetooth.DefaultAdapter,
		AdapterSubstring: substring,
		Registry:         reg,
		Log:              log,
	}
}

// Run enables the adapter and scans until ctx is cancelled or a fatal
// radio error occurs; scan callbacks run on the adapter's own
// goroutine, so handleResult must not block.
func (b *Bluetooth) Run(ctx context.Context) error {
	if err := b.Adapter.Enable(); err != nil {
		return err
	}

	scanErr := make(chan error, 1)
	go func() {
		scanErr <- b.Adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			b.handleResult(ctx, result)
		})
	}()

	select {
	case <-ctx.Done():
		_ = b.Adapter.StopScan()
		return ctx.Err()
	case err := <-scanErr:
		return err
	}
}

func (b *Bluetooth) handleResult(ctx context.Context, result bluetooth.ScanResult) {
	log := b.Log.WithField("source", "bluetooth")

	id := result.Address.String()
	if b.AdapterSubstring != "" && !strings.Contains(id, b.AdapterSubstring) {
		return
	}

	services := result.AdvertisementPayload.ServiceData()
	if len(services) == 0 {
		return
	}
	data := services[0].Data

	_, env, err := wire.ParseBluetoothEnvelope(data)
	if err != nil {
		log.WithError(err).Trace("rejected bluetooth advertisement")
		metrics.ParseErrorsTotal.WithLabelValues("bluetooth", errorKind(err)).Inc()
		return
	}

	_, msgs, err := wire.ParseMessage(env.Payload)
	if err != nil {
		log.WithError(err).Trace("rejected bluetooth odid payload")
		metrics.ParseErrorsTotal.WithLabelValues("bluetooth", errorKind(err)).Inc()
		return
	}

	metrics.FramesParsedTotal.WithLabelValues("bluetooth").Inc()
	if err := b.Registry.MergeThrottled(ctx, id, msgs); err != nil {
		log.WithError(err).WithField("device", id).Warn("drone merge/store failed")
	}
}
