package wire

import "encoding/binary"

const locationBodyLen = 22

// ParseLocation decodes a Location payload per spec.md §4.1. All
// multi-byte integers are little-endian.
func ParseLocation(data []byte) (rest []byte, l Location, err error) {
	if err := need(data, locationBodyLen, "location"); err != nil {
		return nil, Location{}, err
	}

	flags := data[0]
	l.Status = flags >> 4
	l.HeightType = flags&0x04 != 0
	l.EwDirection = flags&0x02 != 0
	l.SpeedMultiplier = flags&0x01 != 0

	l.TrackingDirection = data[1]
	l.Speed = data[2]
	l.VerticalSpeed = data[3]
	l.LatitudeInt = int32(binary.LittleEndian.Uint32(data[4:8]))
	l.LongitudeInt = int32(binary.LittleEndian.Uint32(data[8:12]))
	l.AltitudePressure = binary.LittleEndian.Uint16(data[12:14])
	l.AltitudeGeodetic = binary.LittleEndian.Uint16(data[14:16])
	l.Height = int16(binary.LittleEndian.Uint16(data[16:18]))

	accuracy1 := data[18]
	l.HorizontalAccuracy = accuracy1 >> 4
	l.VerticalAccuracy = accuracy1 & 0x0F

	accuracy2 := data[19]
	l.BarometricAltitudeAccuracy = accuracy2 >> 4
	l.SpeedAccuracy = accuracy2 & 0x0F

	l.Timestamp = binary.LittleEndian.Uint16(data[20:22])

	return data[locationBodyLen:], l, nil
}
