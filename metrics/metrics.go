// Copyright (c) 2026 depin-open-droneid contributors
// Distributable under the terms of The "BSD New" License
// that can be found in the LICENSE file.

// Package metrics exposes the Prometheus counters/gauges the ingest
// loops, aggregator, and channel hopper update.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FramesParsedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "odid_frames_parsed_total",
		Help: "Radio frames successfully decoded into an ODID message pack.",
	}, []string{"source"})

	ParseErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "odid_parse_errors_total",
		Help: "Frames rejected by a wire-layer parser, by source and error kind.",
	}, []string{"source", "kind"})

	DronesTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "odid_drones_tracked",
		Help: "Distinct drone sources currently held in the registry.",
	})

	ChannelHopsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "odid_channel_hops_total",
		Help: "Wi-Fi channel hops performed by the channel hopper.",
	}, []string{"interface"})
)

// MustRegister registers every metric in this package against reg.
// Callers normally pass prometheus.DefaultRegisterer.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(FramesParsedTotal, ParseErrorsTotal, DronesTracked, ChannelHopsTotal)
}
