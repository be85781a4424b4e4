package drone

// View is the derived publication view consumed by a DroneStore, per
// spec.md §4.2. It is computed fresh from a Drone snapshot rather than
// stored on Drone itself, since the formulas are pure functions of the
// accumulated wire values.
type View struct {
	UasId    string
	UaType   string
	Latitude float64
	Longitude float64
	Altitude  float64
	Yaw       float64
	HorizontalSpeed float64
	VerticalSpeed   float64
	PilotLatitude  float64
	PilotLongitude float64
	HomeLatitude   float64
	HomeLongitude  float64
}

const coordScale = 1e7

// DeriveView computes the publication view of a Drone. It does not
// check PayloadReady: on a partial record, fields whose source message
// has not been seen yet are left zero (the registry derives views of
// partial records too, e.g. in Get).
func (d *Drone) DeriveView() View {
	v := View{}

	if d.BasicId != nil {
		v.UasId = d.BasicId.UasId
		v.UaType = d.BasicId.UaType.String()
	}

	if d.LastLocation != nil {
		loc := d.LastLocation
		v.Latitude = float64(loc.LatitudeInt) / coordScale
		v.Longitude = float64(loc.LongitudeInt) / coordScale
		v.Altitude = float64(loc.Height)*0.5 - 1000.0

		yaw := float64(loc.TrackingDirection)
		if loc.EwDirection {
			yaw += 180
		}
		v.Yaw = yaw

		v.HorizontalSpeed = horizontalSpeed(loc.SpeedMultiplier, loc.Speed)
		v.VerticalSpeed = float64(loc.VerticalSpeed) * 0.5
	}

	if d.SystemMessage != nil {
		v.PilotLatitude = float64(d.SystemMessage.OperatorLatitudeInt) / coordScale
		v.PilotLongitude = float64(d.SystemMessage.OperatorLongitudeInt) / coordScale
	}

	if len(d.LocationHistory) > 0 {
		home := d.LocationHistory[0]
		v.HomeLatitude = float64(home.LatitudeInt) / coordScale
		v.HomeLongitude = float64(home.LongitudeInt) / coordScale
	}

	return v
}

// horizontalSpeed implements spec.md §4.2's three-way horizontal speed
// rule: multiplier-scaled, extended-range, or stationary.
func horizontalSpeed(speedMultiplier bool, speed uint8) float64 {
	switch {
	case speedMultiplier:
		return float64(speed) * 0.25
	case speed > 0:
		return float64(speed)*0.75 + 63.75
	default:
		return 0
	}
}
