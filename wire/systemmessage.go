package wire

import "encoding/binary"

const systemMessageBodyLen = 16

// ParseSystemMessage decodes a SystemMessage payload per spec.md §4.1.
func ParseSystemMessage(data []byte) (rest []byte, s SystemMessage, err error) {
	if err := need(data, systemMessageBodyLen, "system_message"); err != nil {
		return nil, SystemMessage{}, err
	}

	flags := data[0]
	s.OperatorLocationType = operatorLocationTypeFromCode(flags & 0x03)

	s.OperatorLatitudeInt = int32(binary.LittleEndian.Uint32(data[1:5]))
	s.OperatorLongitudeInt = int32(binary.LittleEndian.Uint32(data[5:9]))
	s.AreaCount = int16(binary.LittleEndian.Uint16(data[9:11]))
	s.AreaRadius = data[11]
	s.AreaCeiling = binary.LittleEndian.Uint16(data[12:14])
	s.AreaFloor = binary.LittleEndian.Uint16(data[14:16])

	return data[systemMessageBodyLen:], s, nil
}
