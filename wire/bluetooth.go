package wire

// BluetoothSentinel is the app_code byte that marks an ODID Bluetooth
// legacy advertisement service-data value.
const BluetoothSentinel = 0x0D

// BluetoothMinLen is the shortest service-data value the pipeline
// accepts; anything shorter is rejected per spec.md §4.1.
const BluetoothMinLen = 20

// BluetoothEnvelope is a decoded BT legacy-advertisement service-data frame.
type BluetoothEnvelope struct {
	Counter uint8
	Payload []byte
}

// ParseBluetoothEnvelope strips the app_code/counter prefix from a BT
// service-data value, leaving the raw ODID payload for ParseMessage.
func ParseBluetoothEnvelope(data []byte) (rest []byte, env BluetoothEnvelope, err error) {
	if len(data) < BluetoothMinLen {
		return nil, BluetoothEnvelope{}, truncated("bluetooth.service_data", len(data))
	}
	if data[0] != BluetoothSentinel {
		return nil, BluetoothEnvelope{}, badSentinel("bluetooth.app_code", 0)
	}

	env.Counter = data[1]
	env.Payload = data[2:]
	return nil, env, nil
}
