package drone

import (
	"testing"

	"github.com/sutt0n/depin-open-droneid/wire"
)

func sampleLocation(lat int32) wire.Location {
	return wire.Location{
		Status:       1,
		LatitudeInt:  lat,
		LongitudeInt: -291_846_891,
		Timestamp:    58626,
	}
}

func TestDrone_PayloadReady_RequiresAllFour(t *testing.T) {
	d := New()
	if d.PayloadReady() {
		t.Fatal("empty drone should not be payload-ready")
	}

	d.UpdateBasicId(wire.BasicId{UasId: "ABC"})
	d.UpdateLocation(sampleLocation(1))
	d.UpdateSystemMessage(wire.SystemMessage{})
	if d.PayloadReady() {
		t.Fatal("drone missing Operator should not be payload-ready")
	}

	d.UpdateOperator(wire.Operator{OperatorId: "FAA-1"})
	if !d.PayloadReady() {
		t.Fatal("drone with all four fields should be payload-ready")
	}
}

// TestDrone_LocationHistoryInvariant checks spec.md §8's accounting
// identity across n location updates:
//
//	len(history) + (1 if LastLocation != nil else 0) == n + (1 if n > 0 else 0)
func TestDrone_LocationHistoryInvariant(t *testing.T) {
	for n := 0; n <= 5; n++ {
		d := New()
		for i := 0; i < n; i++ {
			d.UpdateLocation(sampleLocation(int32(i)))
		}
		lastPresent := 0
		if d.LastLocation != nil {
			lastPresent = 1
		}
		got := len(d.LocationHistory) + lastPresent
		want := n
		if n > 0 {
			want++
		}
		if got != want {
			t.Errorf("n=%d: len(history)+lastPresent = %d, want %d", n, got, want)
		}
	}
}

func TestDrone_LocationHistory_FirstEntryIsHomePoint(t *testing.T) {
	d := New()
	d.UpdateLocation(sampleLocation(10))
	d.UpdateLocation(sampleLocation(20))
	d.UpdateLocation(sampleLocation(30))

	if len(d.LocationHistory) == 0 {
		t.Fatal("expected a non-empty location history")
	}
	if d.LocationHistory[0].LatitudeInt != 10 {
		t.Errorf("LocationHistory[0].LatitudeInt = %d, want 10 (the first-ever fix)", d.LocationHistory[0].LatitudeInt)
	}
	if d.LastLocation.LatitudeInt != 30 {
		t.Errorf("LastLocation.LatitudeInt = %d, want 30 (the most recent fix)", d.LastLocation.LatitudeInt)
	}
}

func TestDrone_MarkStored_SecondCallPanics(t *testing.T) {
	d := New()
	d.MarkStored(7)
	if !d.InStore || d.StoreId != 7 {
		t.Fatalf("MarkStored(7) left InStore=%v StoreId=%d", d.InStore, d.StoreId)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a second MarkStored call to panic")
		}
	}()
	d.MarkStored(8)
}

func TestDrone_ApplyMessage_DispatchesByField(t *testing.T) {
	d := New()
	d.ApplyMessage(wire.Message{BasicId: &wire.BasicId{UasId: "X"}})
	d.ApplyMessage(wire.Message{Location: &wire.Location{LatitudeInt: 5}})
	d.ApplyMessage(wire.Message{SystemMessage: &wire.SystemMessage{AreaCount: 3}})
	d.ApplyMessage(wire.Message{Operator: &wire.Operator{OperatorId: "Y"}})

	if d.BasicId == nil || d.BasicId.UasId != "X" {
		t.Errorf("BasicId not applied")
	}
	if d.LastLocation == nil || d.LastLocation.LatitudeInt != 5 {
		t.Errorf("Location not applied")
	}
	if d.SystemMessage == nil || d.SystemMessage.AreaCount != 3 {
		t.Errorf("SystemMessage not applied")
	}
	if d.Operator == nil || d.Operator.OperatorId != "Y" {
		t.Errorf("Operator not applied")
	}
}

func TestDrone_ApplyMessage_UnknownAndAuxMessagesAreNoOps(t *testing.T) {
	d := New()
	d.ApplyMessage(wire.Message{Unknown: &wire.Unknown{MessageType: 0xE}})
	d.ApplyMessage(wire.Message{Authentication: &wire.Authentication{Raw: []byte{1, 2}}})
	d.ApplyMessage(wire.Message{SelfId: &wire.SelfId{Raw: []byte("hi")}})

	if d.PayloadReady() {
		t.Fatal("aux-only messages must never make a drone payload-ready")
	}
}
