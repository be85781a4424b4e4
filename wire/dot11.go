package wire

import "bytes"

// OUI values that mark a vendor-specific element/frame as carrying
// Open Drone ID traffic.
var (
	OUIWiFiAlliance = [3]byte{0x50, 0x6F, 0x9A}
	OUIASDSTAN      = [3]byte{0xFA, 0x0B, 0xBC}
)

// NANServiceID is the NAN Service ID assigned to Open Drone ID.
var NANServiceID = [6]byte{0x88, 0x69, 0x19, 0x9D, 0x92, 0x09}

func matchesODIDOUI(oui []byte) bool {
	return bytes.Equal(oui, OUIWiFiAlliance[:]) || bytes.Equal(oui, OUIASDSTAN[:])
}

// dot11MacHeaderLen covers frame_control, duration_id, three 6-byte
// addresses, and sequence_control.
const dot11MacHeaderLen = 2 + 2 + 6 + 6 + 6 + 2

// NANActionFrame is a decoded 802.11 NAN Service Discovery Action frame
// carrying an Open Drone ID service descriptor.
type NANActionFrame struct {
	Category     uint8
	Action       uint8
	OUIType      uint8
	InstanceID   uint8
	RequestorID  uint8
	MessageCount uint8
	MessagePack  []byte
}

// ParseNANActionFrame decodes the 802.11 MAC header, validates the OUI
// and NAN service id, and extracts the embedded ODID message-pack bytes
// per spec.md §4.1.
func ParseNANActionFrame(data []byte) (rest []byte, frame NANActionFrame, err error) {
	if err := need(data, dot11MacHeaderLen+2, "nan.mac_header"); err != nil {
		return nil, NANActionFrame{}, err
	}

	offset := dot11MacHeaderLen
	frame.Category = data[offset]
	frame.Action = data[offset+1]
	offset += 2

	if err := need(data, offset+4, "nan.oui"); err != nil {
		return nil, NANActionFrame{}, err
	}
	oui := data[offset : offset+3]
	if !matchesODIDOUI(oui) {
		return nil, NANActionFrame{}, badSentinel("nan.oui", offset)
	}
	frame.OUIType = data[offset+3]
	offset += 4

	body := data[offset:]
	return parseServiceDescriptor(body, &frame)
}

// serviceDescriptorFixedLen covers attribute_id, attribute_length,
// service_id, instance_id, requestor_id, service_control,
// service_info_length, message_counter.
const serviceDescriptorFixedLen = 1 + 2 + 6 + 1 + 1 + 1 + 1 + 1

func parseServiceDescriptor(body []byte, frame *NANActionFrame) (rest []byte, out NANActionFrame, err error) {
	if err := need(body, serviceDescriptorFixedLen, "nan.service_descriptor"); err != nil {
		return nil, NANActionFrame{}, err
	}

	// attribute_id(1), attribute_length(2) are walked over but not validated further.
	serviceID := body[3:9]
	if !bytes.Equal(serviceID, NANServiceID[:]) {
		return nil, NANActionFrame{}, badSentinel("nan.service_id", 3)
	}

	frame.InstanceID = body[9]
	frame.RequestorID = body[10]
	// body[11] is service_control, not surfaced.
	serviceInfoLength := int(body[12])
	frame.MessageCount = body[13]

	if serviceInfoLength <= 1 {
		frame.MessagePack = nil
		return body[serviceDescriptorFixedLen:], *frame, nil
	}

	payloadLen := serviceInfoLength - 1
	if err := need(body[serviceDescriptorFixedLen:], payloadLen, "nan.message_pack"); err != nil {
		return nil, NANActionFrame{}, err
	}
	frame.MessagePack = body[serviceDescriptorFixedLen : serviceDescriptorFixedLen+payloadLen]

	return body[serviceDescriptorFixedLen+payloadLen:], *frame, nil
}

// beaconHeaderLen is the 802.11 header portion up to and including
// sequence_control, per spec.md §4.1.
const beaconHeaderLen = 16

// beaconFixedParamsLen covers timestamp(8), beacon_interval(2), capability(2).
const beaconFixedParamsLen = 8 + 2 + 2

const tagVendorSpecific = 0xDD

// ParseBeaconFrame walks a beacon frame's tagged parameters looking for
// the vendor-specific (0xDD) tag carrying an Open Drone ID OUI, and
// extracts its embedded ODID message-pack bytes per spec.md §4.1.
//
// The tag's declared length counts everything after the length byte:
// OUI(3) + oui_type(1) + message_counter(1) + payload. This
// implementation subtracts all five non-payload bytes; an earlier
// reading of the prose (subtracting only 4) would leave the message
// counter byte glued onto the front of the message-pack, which cannot
// be right since the counter is explicitly supposed to be skipped.
func ParseBeaconFrame(data []byte) (frame []byte, found bool, err error) {
	if err := need(data, beaconHeaderLen+beaconFixedParamsLen, "beacon.header"); err != nil {
		return nil, false, err
	}

	tags := data[beaconHeaderLen+beaconFixedParamsLen:]
	for len(tags) >= 2 {
		tagID := tags[0]
		tagLen := int(tags[1])
		if len(tags) < 2+tagLen {
			return nil, false, truncated("beacon.tag", len(tags))
		}
		tagData := tags[2 : 2+tagLen]

		if tagID == tagVendorSpecific && tagLen >= 5 && matchesODIDOUI(tagData[0:3]) {
			payload := tagData[5:]
			return payload, true, nil
		}

		tags = tags[2+tagLen:]
	}

	return nil, false, nil
}
