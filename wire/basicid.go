package wire

// basicIdIdWindow is the number of bytes of uas_id on the wire, null-padded.
const basicIdIdWindow = 20

// ParseBasicId decodes a BasicId payload (header byte already consumed
// by ParseMessage). The first byte splits into id_type (high nibble)
// and ua_type (low nibble); the following bytes hold uas_id, read up to
// the first NUL and filtered to ASCII alphanumeric characters only
// (spec.md §9 design note: this loses hyphens/slashes some CAA schemes
// use, kept as specified).
func ParseBasicId(data []byte) (rest []byte, b BasicId, err error) {
	if err := need(data, 1, "basic_id.type"); err != nil {
		return nil, BasicId{}, err
	}

	typeByte := data[0]
	b.UasIdType = uasIdTypeFromCode(typeByte >> 4)
	b.UaType = uaTypeFromCode(typeByte & 0x0F)

	idBytes := data[1:]
	window := idBytes
	if len(window) > basicIdIdWindow {
		window = window[:basicIdIdWindow]
	}

	nul := len(window)
	for i, c := range window {
		if c == 0 {
			nul = i
			break
		}
	}
	window = window[:nul]

	filtered := make([]byte, 0, len(window))
	for _, c := range window {
		if isASCIIAlnum(c) {
			filtered = append(filtered, c)
		}
	}
	b.UasId = string(filtered)

	consumed := 1
	if len(idBytes) < basicIdIdWindow {
		consumed += len(idBytes)
	} else {
		consumed += basicIdIdWindow
	}
	if consumed > len(data) {
		consumed = len(data)
	}
	return data[consumed:], b, nil
}

func isASCIIAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isASCIIPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}
