package input

import (
	"math"
	"testing"

	"github.com/johans2/YellowBelly/common"
)

func TestScriptedDevice(t *testing.T) {
	d := NewScripted(connected(ButtonApp))
	if d.Done() {
		t.Fatalf("should not be done before polling")
	}
	if s := d.Poll(0); !s.Pressed(ButtonApp) {
		t.Fatalf("first sample lost")
	}
	if !d.Done() {
		t.Fatalf("should be done")
	}
	if s := d.Poll(0); s.Status != StatusDisconnected {
		t.Fatalf("exhausted device status = %s", s.Status)
	}
}

func TestStatusText(t *testing.T) {
	for st := StatusDisconnected; st <= StatusRecentering; st++ {
		text, err := st.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", st, err)
		}
		var got Status
		if err := got.UnmarshalText(text); err != nil || got != st {
			t.Fatalf("UnmarshalText(%q) = %v, %v", text, got, err)
		}
		if st.Authoritative() != (st == StatusConnected) {
			t.Fatalf("%s authoritative = %v", st, st.Authoritative())
		}
	}
	var s Status
	if err := s.UnmarshalText([]byte("asleep")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOrientation(t *testing.T) {
	cases := []struct {
		name string
		o    Orientation
		want common.Vec3
	}{
		{"ahead", Orientation{}, common.Vec3{Z: -1}},
		{"right", Orientation{Yaw: 90}, common.Vec3{X: 1}},
		{"behind", Orientation{Yaw: 180}, common.Vec3{Z: 1}},
		{"down", Orientation{Pitch: -89}, common.Vec3{Y: -math.Sin(89 * math.Pi / 180), Z: -math.Cos(89 * math.Pi / 180)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.o.Forward()
			if !got.Approx(c.want, 1e-9) {
				t.Fatalf("Forward() = %+v, want %+v", got, c.want)
			}
			if math.Abs(got.Length()-1) > 1e-9 {
				t.Fatalf("not unit length: %v", got.Length())
			}
		})
	}

	o := Orientation{}.Rotate(-30, 200)
	if o.Yaw != 330 || o.Pitch != maxPitch {
		t.Fatalf("Rotate = %+v, want yaw 330 pitch %v", o, maxPitch)
	}
}
