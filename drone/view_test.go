package drone

import (
	"testing"

	"github.com/sutt0n/depin-open-droneid/wire"
)

func TestDeriveView_CoordinateScaling(t *testing.T) {
	d := New()
	d.UpdateLocation(wire.Location{LatitudeInt: 1_460_289_024, LongitudeInt: -291_846_891})

	v := d.DeriveView()
	if v.Latitude != 146.0289024 {
		t.Errorf("Latitude = %v, want 146.0289024", v.Latitude)
	}
	if v.Longitude != -29.1846891 {
		t.Errorf("Longitude = %v, want -29.1846891", v.Longitude)
	}
}

func TestDeriveView_AltitudeFormula(t *testing.T) {
	d := New()
	d.UpdateLocation(wire.Location{Height: -11768})

	v := d.DeriveView()
	if v.Altitude != -6884.0 {
		t.Errorf("Altitude = %v, want -6884.0", v.Altitude)
	}
}

func TestDeriveView_YawFormula(t *testing.T) {
	cases := []struct {
		ewDirection       bool
		trackingDirection uint8
		want              float64
	}{
		{false, 180, 180},
		{true, 180, 360},
		{false, 0, 0},
	}
	for _, c := range cases {
		d := New()
		d.UpdateLocation(wire.Location{EwDirection: c.ewDirection, TrackingDirection: c.trackingDirection})
		v := d.DeriveView()
		if v.Yaw != c.want {
			t.Errorf("ewDirection=%v trackingDirection=%d: Yaw = %v, want %v", c.ewDirection, c.trackingDirection, v.Yaw, c.want)
		}
	}
}

func TestDeriveView_HorizontalSpeedFormula(t *testing.T) {
	cases := []struct {
		name            string
		speedMultiplier bool
		speed           uint8
		want            float64
	}{
		{"multiplier set, speed=100", true, 100, 25.0},
		{"multiplier unset, speed=100", false, 100, 138.75},
		{"multiplier unset, speed=0", false, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := New()
			d.UpdateLocation(wire.Location{SpeedMultiplier: c.speedMultiplier, Speed: c.speed})
			v := d.DeriveView()
			if v.HorizontalSpeed != c.want {
				t.Errorf("HorizontalSpeed = %v, want %v", v.HorizontalSpeed, c.want)
			}
		})
	}
}

func TestDeriveView_VerticalSpeedFormula(t *testing.T) {
	d := New()
	d.UpdateLocation(wire.Location{VerticalSpeed: 10})
	v := d.DeriveView()
	if v.VerticalSpeed != 5.0 {
		t.Errorf("VerticalSpeed = %v, want 5.0", v.VerticalSpeed)
	}
}

func TestDeriveView_PilotAndHomeCoordinates(t *testing.T) {
	d := New()
	d.UpdateLocation(wire.Location{LatitudeInt: 100_000_000, LongitudeInt: 200_000_000})
	d.UpdateLocation(wire.Location{LatitudeInt: 300_000_000, LongitudeInt: 400_000_000})
	d.UpdateSystemMessage(wire.SystemMessage{OperatorLatitudeInt: 500_000_000, OperatorLongitudeInt: 600_000_000})

	v := d.DeriveView()
	if v.HomeLatitude != 10.0 || v.HomeLongitude != 20.0 {
		t.Errorf("home coords = (%v, %v), want (10, 20) (the first-ever fix)", v.HomeLatitude, v.HomeLongitude)
	}
	if v.PilotLatitude != 50.0 || v.PilotLongitude != 60.0 {
		t.Errorf("pilot coords = (%v, %v), want (50, 60)", v.PilotLatitude, v.PilotLongitude)
	}
}

func TestDeriveView_UasIdAndUaType(t *testing.T) {
	d := New()
	d.UpdateBasicId(wire.BasicId{UasId: "XYZ123", UaType: wire.UaType{}})
	v := d.DeriveView()
	if v.UasId != "XYZ123" {
		t.Errorf("UasId = %q, want %q", v.UasId, "XYZ123")
	}
}
