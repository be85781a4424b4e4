package wifi

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/sutt0n/depin-open-droneid/metrics"
)

// Hopper drives one Interface's channel at a fixed cadence, per
// spec.md §4.4. It only ever calls RadioAdmin.SetChannel; enabling
// monitor mode is done once by the process at startup, before the
// loops are launched.
type Hopper struct {
	iface *Interface
	radio RadioAdmin
	log   logrus.FieldLogger
}

// NewHopper builds a Hopper bound to iface and radio.
func NewHopper(iface *Interface, radio RadioAdmin, log logrus.FieldLogger) *Hopper {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hopper{iface: iface, radio: radio, log: log}
}

// Run evaluates the hop decision every hopInterval until ctx is done.
// Callers must call iface.Start before launching Run, normally at the
// same moment the paired capture loop begins.
func (h *Hopper) Run(ctx context.Context, hopInterval time.Duration) error {
	ticker := time.NewTicker(hopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !h.iface.ShouldHop(now) {
				continue
			}
			ch := h.iface.Advance()
			if err := h.radio.SetChannel(h.iface.Name, ch); err != nil {
				h.log.WithError(err).WithField("source", "wifi").WithField("channel", ch).
					Error("channel hop failed")
				return err
			}

			metrics.ChannelHopsTotal.WithLabelValues(h.iface.Name).Inc()

			entry := h.log.WithField("source", "wifi").WithField("channel", ch)
			if last, ok := h.iface.LastODID(); ok {
				entry = entry.WithField("last_odid", humanize.Time(last))
			}
			entry.Trace("hopped channel")
		}
	}
}
