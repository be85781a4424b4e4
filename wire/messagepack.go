package wire

// ParseMessagePack decodes a MessageType 0xF composite frame: a
// single_msg_size byte, a num_messages byte, then num_messages records
// each single_msg_size bytes long (one header byte + single_msg_size-1
// body bytes). Each record is dispatched independently through
// ParseMessage, so a MessagePack may itself (in principle, though not
// in observed captures) contain nested packs.
//
// The implementation honors whatever single_msg_size it reads rather
// than assuming the 25 (Bluetooth) / 24 (Wi-Fi) sizes seen in
// practice, per spec.md §4.1.
func ParseMessagePack(data []byte) (rest []byte, msgs []Message, err error) {
	if err := need(data, 2, "message_pack.header"); err != nil {
		return nil, nil, err
	}

	singleMsgSize := int(data[0])
	numMessages := int(data[1])
	body := data[2:]

	if singleMsgSize == 0 {
		return nil, nil, misaligned("message_pack.single_msg_size", 0)
	}

	recordsLen := singleMsgSize * numMessages
	if len(body) < recordsLen {
		return nil, nil, truncated("message_pack.records", len(body))
	}

	all := make([]Message, 0, numMessages)
	for i := 0; i < numMessages; i++ {
		record := body[i*singleMsgSize : (i+1)*singleMsgSize]
		_, sub, err := ParseMessage(record)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, sub...)
	}

	return body[recordsLen:], all, nil
}
