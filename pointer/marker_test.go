package pointer

import (
	"testing"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
)

func TestMarkerSnapsFromOutOfBounds(t *testing.T) {
	m := NewMarker(0.5, common.Up)
	if m.Position() != common.OutOfBounds || m.Visible() {
		t.Fatalf("new marker should start hidden out of bounds")
	}
	m.MoveTo(common.Vec3{X: 1})
	if m.Position() != (common.Vec3{X: 1}) {
		t.Fatalf("reacquiring should snap, got %+v", m.Position())
	}
}

func TestMarkerEases(t *testing.T) {
	m := NewMarker(1, common.Up)
	m.MoveTo(common.Vec3{})
	m.MoveTo(common.Vec3{X: 2})

	m.Step(0.5)
	x := m.Position().X
	if x <= 0 || x >= 2 {
		t.Fatalf("halfway x = %v, want strictly between 0 and 2", x)
	}
	if m.Target() != (common.Vec3{X: 2}) {
		t.Fatalf("target = %+v", m.Target())
	}

	m.Update(&frame.Context{DT: 1})
	if m.Position() != (common.Vec3{X: 2}) {
		t.Fatalf("finished position = %+v", m.Position())
	}
}

func TestMarkerWithoutSmoothingSnaps(t *testing.T) {
	m := NewMarker(0, common.Up)
	m.MoveTo(common.Vec3{})
	m.MoveTo(common.Vec3{Z: -5})
	if m.Position() != (common.Vec3{Z: -5}) {
		t.Fatalf("position = %+v", m.Position())
	}
}

func TestMarkerHide(t *testing.T) {
	m := NewMarker(1, common.Vec3{Y: 3})
	m.MoveTo(common.Vec3{X: 1})
	m.MoveTo(common.Vec3{X: 3})
	m.Hide()
	if m.Position() != common.OutOfBounds || m.Target() != common.OutOfBounds {
		t.Fatalf("hidden marker = %+v", m.Position())
	}
	m.Step(1)
	if m.Position() != common.OutOfBounds {
		t.Fatalf("hidden marker moved")
	}
	if m.Facing() != common.Up {
		t.Fatalf("facing should be normalized, got %+v", m.Facing())
	}
}
