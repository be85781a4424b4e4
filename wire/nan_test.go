package wire

import "testing"

func buildRecord(t *testing.T, singleMsgSize int, header byte, payload []byte) []byte {
	t.Helper()
	record := make([]byte, singleMsgSize)
	record[0] = header
	copy(record[1:], payload)
	return record
}

func buildMessagePack(t *testing.T) []byte {
	t.Helper()
	const singleMsgSize = 25

	basicIDPayload := append([]byte{0x02}, []byte("1787F04BM24010011039")...)
	locationPayload := buildLocationBody(t)
	systemPayload := make([]byte, systemMessageBodyLen)
	systemPayload[0] = 0x02
	operatorPayload := append([]byte{0x01}, []byte("FAA-REG/1")...)

	records := [][]byte{
		buildRecord(t, singleMsgSize, byte(MessageTypeBasicID)<<4, basicIDPayload),
		buildRecord(t, singleMsgSize, byte(MessageTypeLocation)<<4, locationPayload),
		buildRecord(t, singleMsgSize, byte(MessageTypeSystem)<<4, systemPayload),
		buildRecord(t, singleMsgSize, byte(MessageTypeOperatorID)<<4, operatorPayload),
	}

	pack := []byte{byte(MessageTypeMessagePack)<<4 | 0x02, singleMsgSize, byte(len(records))}
	for _, r := range records {
		pack = append(pack, r...)
	}
	return pack
}

func TestParseMessage_MessagePackFlattensAllFour(t *testing.T) {
	pack := buildMessagePack(t)

	_, msgs, err := ParseMessage(pack)
	if err != nil {
		t.Fatalf("ParseMessage() error = %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	if msgs[0].BasicId == nil || msgs[1].Location == nil || msgs[2].SystemMessage == nil || msgs[3].Operator == nil {
		t.Fatalf("unexpected message kinds: %+v", msgs)
	}
	if msgs[0].BasicId.UasId != "1787F04BM24010011039" {
		t.Errorf("BasicId.UasId = %q", msgs[0].BasicId.UasId)
	}
}

func buildNANActionFrame(t *testing.T) []byte {
	t.Helper()

	mac := make([]byte, dot11MacHeaderLen)
	category := byte(0x04)
	action := byte(0x09)
	oui := OUIWiFiAlliance[:]
	ouiType := byte(0x13)

	sd := []byte{
		0x02,             // attribute_id
		0x00, 0x00,       // attribute_length (not validated)
	}
	sd = append(sd, NANServiceID[:]...)
	sd = append(sd, 0x01) // instance_id
	sd = append(sd, 0x02) // requestor_id
	sd = append(sd, 0x00) // service_control

	pack := buildMessagePack(t)
	serviceInfoLength := byte(len(pack) + 1) // message_counter + payload
	sd = append(sd, serviceInfoLength)
	sd = append(sd, 0x07) // message_counter
	sd = append(sd, pack...)

	frame := append([]byte{}, mac...)
	frame = append(frame, category, action)
	frame = append(frame, oui...)
	frame = append(frame, ouiType)
	frame = append(frame, sd...)
	return frame
}

func TestClassifyDot11_Action(t *testing.T) {
	header := []byte{Dot11FrameControlAction, 0x00}
	if got := ClassifyDot11(header); got != Dot11Action {
		t.Errorf("ClassifyDot11() = %v, want Dot11Action", got)
	}
}

func TestParseNANActionFrame_CanonicalFixture(t *testing.T) {
	frame := buildNANActionFrame(t)

	_, nan, err := ParseNANActionFrame(frame)
	if err != nil {
		t.Fatalf("ParseNANActionFrame() error = %v", err)
	}
	if len(nan.MessagePack) == 0 {
		t.Fatal("expected a non-empty embedded message pack")
	}

	_, msgs, err := ParseMessage(nan.MessagePack)
	if err != nil {
		t.Fatalf("ParseMessage(messagepack) error = %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("got %d messages from NAN-embedded pack, want 4", len(msgs))
	}

	header := nan.MessagePack[0]
	msgType := MessageType(header >> 4)
	if msgType != MessageTypeMessagePack {
		t.Errorf("message-pack header type = %#x, want %#x", msgType, MessageTypeMessagePack)
	}
	if nan.MessagePack[1] != 0x19 {
		t.Errorf("single_msg_size = %#x, want 0x19", nan.MessagePack[1])
	}
	if nan.MessagePack[2] != 4 {
		t.Errorf("num_messages = %d, want 4", nan.MessagePack[2])
	}
}

func TestParseNANActionFrame_RejectsWrongOUI(t *testing.T) {
	frame := buildNANActionFrame(t)
	// corrupt the OUI bytes (right after the mac header + category/action).
	frame[dot11MacHeaderLen+2] = 0xFF
	_, _, err := ParseNANActionFrame(frame)
	if err == nil {
		t.Fatal("expected rejection of non-ODID OUI")
	}
}

func TestParseNANActionFrame_RejectsWrongServiceID(t *testing.T) {
	frame := buildNANActionFrame(t)
	sdStart := dot11MacHeaderLen + 2 + 4
	frame[sdStart+3] = 0xFF // first byte of service_id
	_, _, err := ParseNANActionFrame(frame)
	if err == nil {
		t.Fatal("expected rejection of wrong NAN service id")
	}
}

func TestParseNANActionFrame_EmptyServiceInfoIsNotAFailure(t *testing.T) {
	mac := make([]byte, dot11MacHeaderLen)
	sd := []byte{0x02, 0x00, 0x00}
	sd = append(sd, NANServiceID[:]...)
	sd = append(sd, 0x01, 0x02, 0x00, 0x00, 0x00) // service_info_length=0

	frame := append([]byte{}, mac...)
	frame = append(frame, 0x04, 0x09)
	frame = append(frame, OUIASDSTAN[:]...)
	frame = append(frame, 0x13)
	frame = append(frame, sd...)

	_, nan, err := ParseNANActionFrame(frame)
	if err != nil {
		t.Fatalf("ParseNANActionFrame() error = %v", err)
	}
	if nan.MessagePack != nil {
		t.Errorf("MessagePack = %v, want nil for service_info_length <= 1", nan.MessagePack)
	}
}
