package ingest

import (
	"context"
	"time"

	"github.com/google/gopacket/pcap"
	"github.com/sirupsen/logrus"

	"github.com/sutt0n/depin-open-droneid/drone"
	"github.com/sutt0n/depin-open-droneid/metrics"
	"github.com/sutt0n/depin-open-droneid/registry"
	"github.com/sutt0n/depin-open-droneid/wifi"
	"github.com/sutt0n/depin-open-droneid/wire"
)

// Wifi runs the monitor-mode packet capture loop described in spec.md
// §4.5.2: strip radiotap, classify the 802.11 frame, extract an ODID
// message pack from either a NAN Action frame or a Beacon's
// vendor-specific tag, merge into the registry keyed by uas_id.
type Wifi struct {
	Iface    *wifi.Interface
	Registry *registry.DroneRegistry
	Log      logrus.FieldLogger

	// snapLen and readTimeout are exposed for tests; production
	// callers leave them at their NewWifi-assigned defaults.
	snapLen     int32
	readTimeout time.Duration
}

// NewWifi builds a Wifi loop bound to iface's NIC name.
func NewWifi(iface *wifi.Interface, reg *registry.DroneRegistry, log logrus.FieldLogger) *Wifi {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Wifi{
		Iface:       iface,
		Registry:    reg,
		Log:         log,
		snapLen:     2048,
		readTimeout: 500 * time.Millisecond,
	}
}

// Run opens the monitor-mode interface and reads frames until ctx is
// cancelled or pcap reports a fatal error.
func (w *Wifi) Run(ctx context.Context) error {
	handle, err := pcap.OpenLive(w.Iface.Name, w.snapLen, true, w.readTimeout)
	if err != nil {
		return err
	}
	defer handle.Close()

	w.Iface.Start(time.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, _, err := handle.ReadPacketData()
		if err == pcap.NextErrorTimeoutExpired {
			continue
		}
		if err != nil {
			return err
		}
		w.handleFrame(ctx, data)
	}
}

func (w *Wifi) handleFrame(ctx context.Context, raw []byte) {
	log := w.Log.WithField("source", "wifi")

	payload, ok := wire.StripRadiotap(raw)
	if !ok {
		log.Trace("undecodable radiotap header; passing frame through unstripped")
	}

	var pack []byte
	switch wire.ClassifyDot11(payload) {
	case wire.Dot11Action:
		_, frame, err := wire.ParseNANActionFrame(payload)
		if err != nil {
			log.WithError(err).Trace("rejected NAN action frame")
			metrics.ParseErrorsTotal.WithLabelValues("wifi", errorKind(err)).Inc()
			return
		}
		pack = frame.MessagePack
	case wire.Dot11Beacon:
		found, ok2, err := wire.ParseBeaconFrame(payload)
		if err != nil {
			log.WithError(err).Trace("rejected beacon frame")
			metrics.ParseErrorsTotal.WithLabelValues("wifi", errorKind(err)).Inc()
			return
		}
		if !ok2 {
			return
		}
		pack = found
	default:
		return
	}

	if len(pack) == 0 {
		return
	}

	_, msgs, err := wire.ParseMessage(pack)
	if err != nil {
		log.WithError(err).Trace("rejected message pack")
		metrics.ParseErrorsTotal.WithLabelValues("wifi", errorKind(err)).Inc()
		return
	}

	metrics.FramesParsedTotal.WithLabelValues("wifi").Inc()
	w.Iface.NoteODIDReceived(time.Now())

	scratch := drone.New()
	for _, m := range msgs {
		scratch.ApplyMessage(m)
	}
	if scratch.BasicId == nil {
		return
	}
	key := scratch.BasicId.UasId

	if err := w.Registry.Merge(ctx, key, msgs); err != nil {
		log.WithError(err).WithField("uas_id", key).Warn("drone merge/store failed")
	}
}
