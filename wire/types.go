package wire

// MessageType is the high nibble of the ODID common message header.
type MessageType uint8

const (
	MessageTypeBasicID        MessageType = 0x0
	MessageTypeLocation       MessageType = 0x1
	MessageTypeAuthentication MessageType = 0x2
	MessageTypeSelfID         MessageType = 0x3
	MessageTypeSystem         MessageType = 0x4
	MessageTypeOperatorID     MessageType = 0x5
	MessageTypeMessagePack    MessageType = 0xF
)

// UasIdType is the BasicId.uas_id_type field (high nibble of the BasicId payload byte).
type UasIdType struct {
	code  uint8
	known bool
	name  string
}

func (t UasIdType) Code() uint8  { return t.code }
func (t UasIdType) String() string {
	if t.known {
		return t.name
	}
	return "Other"
}

var (
	UasIdSerialNumber   = UasIdType{0, true, "SerialNumber"}
	UasIdCaaRegistration = UasIdType{1, true, "CaaRegistration"}
	UasIdUtmId          = UasIdType{2, true, "UtmId"}
)

func uasIdTypeFromCode(code uint8) UasIdType {
	switch code {
	case 0:
		return UasIdSerialNumber
	case 1:
		return UasIdCaaRegistration
	case 2:
		return UasIdUtmId
	default:
		return UasIdType{code, false, ""}
	}
}

// UaType is the BasicId.ua_type field (low nibble of the BasicId payload byte).
type UaType struct {
	code  uint8
	known bool
	name  string
}

func (t UaType) Code() uint8 { return t.code }
func (t UaType) String() string {
	if t.known {
		return t.name
	}
	return "Other"
}

var uaTypeNames = [...]string{
	"Undeclared", "Aeroplane", "HelicopterOrDrone", "Gyroplane", "HybridLift",
	"Ornithopter", "Glider", "Kite", "FreeBalloon", "CaptiveBalloon",
	"Airship", "FreeFallParachute", "Rocket", "TetheredAircraft", "GroundObstacle",
}

func uaTypeFromCode(code uint8) UaType {
	if int(code) < len(uaTypeNames) {
		return UaType{code, true, uaTypeNames[code]}
	}
	return UaType{code, false, ""}
}

// BasicId identifies the unmanned aircraft.
type BasicId struct {
	UasIdType UasIdType
	UaType    UaType
	UasId     string
}

// Location is a single position/velocity fix.
type Location struct {
	Status                     uint8
	HeightType                 bool
	EwDirection                bool
	SpeedMultiplier            bool
	TrackingDirection          uint8
	Speed                      uint8
	VerticalSpeed              uint8
	LatitudeInt                int32
	LongitudeInt               int32
	AltitudePressure           uint16
	AltitudeGeodetic           uint16
	Height                     int16
	HorizontalAccuracy         uint8
	VerticalAccuracy           uint8
	BarometricAltitudeAccuracy uint8
	SpeedAccuracy              uint8
	Timestamp                  uint16
}

// OperatorLocationType is SystemMessage.operator_location_type (low 2 bits of the flag byte).
type OperatorLocationType struct {
	code  uint8
	known bool
	name  string
}

func (t OperatorLocationType) Code() uint8 { return t.code }
func (t OperatorLocationType) String() string {
	if t.known {
		return t.name
	}
	return "Other"
}

var (
	OperatorLocationTakeOff       = OperatorLocationType{0, true, "TakeOff"}
	OperatorLocationLiveGNSS      = OperatorLocationType{1, true, "LiveGNSS"}
	OperatorLocationFixedLocation = OperatorLocationType{2, true, "FixedLocation"}
)

func operatorLocationTypeFromCode(code uint8) OperatorLocationType {
	switch code {
	case 0:
		return OperatorLocationTakeOff
	case 1:
		return OperatorLocationLiveGNSS
	case 2:
		return OperatorLocationFixedLocation
	default:
		return OperatorLocationType{code, false, ""}
	}
}

// SystemMessage carries the operator location and the UAS's declared operating area.
type SystemMessage struct {
	OperatorLocationType OperatorLocationType
	OperatorLatitudeInt  int32
	OperatorLongitudeInt int32
	AreaCount            int16
	AreaRadius           uint8
	AreaCeiling          uint16
	AreaFloor            uint16
}

// Operator identifies the remote pilot / operator.
type Operator struct {
	OperatorIdType uint8
	OperatorId     string
}

// Authentication carries an authentication message's bytes after the
// common header, captured verbatim and never decoded (spec non-goal).
type Authentication struct {
	Raw []byte
}

// SelfId carries a self-ID message's raw bytes; never decoded beyond the header.
type SelfId struct {
	Raw []byte
}

// Unknown is returned for message types not in the dispatch table. It is
// not a failure: the frame is simply opaque to this decoder.
type Unknown struct {
	MessageType MessageType
	Raw         []byte
}

// Message is one decoded ODID payload, tagged by which field is populated.
type Message struct {
	Type            MessageType
	BasicId         *BasicId
	Location        *Location
	Authentication  *Authentication
	SelfId          *SelfId
	SystemMessage   *SystemMessage
	Operator        *Operator
	Unknown         *Unknown
}
