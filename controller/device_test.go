package controller

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/prefabs"
)

type fakePads struct {
	ids      []ebiten.GamepadID
	standard bool
	pressed  map[ebiten.StandardGamepadButton]bool
	axes     map[ebiten.StandardGamepadAxis]float64
}

func (f *fakePads) AppendIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return append(ids, f.ids...)
}

func (f *fakePads) Standard(ebiten.GamepadID) bool { return f.standard }

func (f *fakePads) Pressed(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.pressed[b]
}

func (f *fakePads) Axis(_ ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return f.axes[a]
}

func newFakePads() *fakePads {
	return &fakePads{
		standard: true,
		pressed:  map[ebiten.StandardGamepadButton]bool{},
		axes:     map[ebiten.StandardGamepadAxis]float64{},
	}
}

func TestGamepadStatusLifecycle(t *testing.T) {
	pads := newFakePads()
	g := newGamepad(pads, 2, 90)

	expect := func(step string, want input.Status) {
		t.Helper()
		if got := g.Poll(0.1).Status; got != want {
			t.Fatalf("%s: status = %s, want %s", step, got, want)
		}
	}

	expect("no pad", input.StatusScanning)

	pads.ids = []ebiten.GamepadID{3}
	expect("connect 1", input.StatusConnecting)
	expect("connect 2", input.StatusConnecting)
	expect("ready", input.StatusConnected)

	pads.pressed[gamepadHome] = true
	expect("home held", input.StatusRecentering)
	pads.pressed[gamepadHome] = false
	expect("home released", input.StatusConnected)

	pads.ids = nil
	expect("unplugged", input.StatusDisconnected)
	expect("searching", input.StatusScanning)
}

func TestGamepadNonStandardLayoutIsError(t *testing.T) {
	pads := newFakePads()
	pads.ids = []ebiten.GamepadID{0}
	pads.standard = false
	g := newGamepad(pads, 0, 0)
	if got := g.Poll(0.1).Status; got != input.StatusError {
		t.Fatalf("status = %s, want error", got)
	}
}

func TestGamepadButtonsAndSticks(t *testing.T) {
	pads := newFakePads()
	pads.ids = []ebiten.GamepadID{0}
	pads.pressed[ebiten.StandardGamepadButtonRightBottom] = true
	pads.pressed[ebiten.StandardGamepadButtonCenterRight] = true
	pads.axes[ebiten.StandardGamepadAxisRightStickHorizontal] = 1
	pads.axes[ebiten.StandardGamepadAxisRightStickVertical] = -1
	pads.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0
	pads.axes[ebiten.StandardGamepadAxisLeftStickVertical] = 1

	g := newGamepad(pads, 0, 10)
	s := g.Poll(1)

	if !s.Pressed(input.ButtonClick) || s.Pressed(input.ButtonTouch) || !s.Pressed(input.ButtonApp) {
		t.Fatalf("buttons = %v", s.Buttons)
	}
	if s.Orientation != (input.Orientation{Yaw: 10, Pitch: 10}) {
		t.Fatalf("orientation = %+v, want yaw 10 pitch 10", s.Orientation)
	}
	if s.Touch != (common.Vec2{X: 0.5, Y: 1}) {
		t.Fatalf("touch = %+v", s.Touch)
	}
}

func TestGamepadRecenterZeroesYaw(t *testing.T) {
	pads := newFakePads()
	pads.ids = []ebiten.GamepadID{0}
	pads.axes[ebiten.StandardGamepadAxisRightStickHorizontal] = 1
	g := newGamepad(pads, 0, 45)
	g.Poll(1)

	pads.axes[ebiten.StandardGamepadAxisRightStickHorizontal] = 0
	pads.pressed[gamepadHome] = true
	g.Poll(1)
	pads.pressed[gamepadHome] = false
	if s := g.Poll(1); s.Orientation.Yaw != 0 {
		t.Fatalf("yaw after recenter = %v, want 0", s.Orientation.Yaw)
	}
}

func TestGamepadDeadzone(t *testing.T) {
	pads := newFakePads()
	pads.ids = []ebiten.GamepadID{0}
	pads.axes[ebiten.StandardGamepadAxisRightStickHorizontal] = 0.1
	g := newGamepad(pads, 0, 100)
	if s := g.Poll(1); s.Orientation != (input.Orientation{}) {
		t.Fatalf("stick inside deadzone rotated: %+v", s.Orientation)
	}
}

func TestKeyboardPoll(t *testing.T) {
	held := map[ebiten.Key]bool{}
	k, err := NewKeyboard(prefabs.KeyMapSpec{}, 20)
	if err != nil {
		t.Fatalf("NewKeyboard: %v", err)
	}
	k.pressed = func(key ebiten.Key) bool { return held[key] }

	held[ebiten.KeySpace] = true
	held[ebiten.KeyArrowRight] = true
	held[ebiten.KeyW] = true
	s := k.Poll(0.5)

	if s.Status != input.StatusConnected {
		t.Fatalf("keyboard should always be connected")
	}
	// Space is bound to both click and touch by default.
	if !s.Pressed(input.ButtonClick) || !s.Pressed(input.ButtonTouch) || s.Pressed(input.ButtonApp) {
		t.Fatalf("buttons = %v", s.Buttons)
	}
	if s.Orientation != (input.Orientation{Yaw: 10, Pitch: 10}) {
		t.Fatalf("orientation = %+v", s.Orientation)
	}

	held = map[ebiten.Key]bool{ebiten.KeyA: true}
	s = k.Poll(1)
	if s.Orientation.Yaw != 350 {
		t.Fatalf("yaw = %v, want wrap to 350", s.Orientation.Yaw)
	}
}

func TestKeyboardCustomKeys(t *testing.T) {
	k, err := NewKeyboard(prefabs.KeyMapSpec{Click: []string{"enter"}, Left: []string{"Q"}}, 0)
	if err != nil {
		t.Fatalf("NewKeyboard: %v", err)
	}
	if len(k.keys.left) != 1 || k.keys.left[0] != ebiten.KeyQ {
		t.Fatalf("left = %v, want [Q]", k.keys.left)
	}
	if len(k.keys.right) != 2 || len(k.keys.app) != 1 {
		t.Fatalf("defaults missing: %+v", k.keys)
	}
	k.pressed = func(key ebiten.Key) bool { return key == ebiten.KeyEnter }
	if s := k.Poll(0); !s.Pressed(input.ButtonClick) || s.Pressed(input.ButtonTouch) {
		t.Fatalf("buttons = %v", s.Buttons)
	}
	if k.speed != defaultRotationSpeed {
		t.Fatalf("speed = %v, want default", k.speed)
	}
}

func TestNewDevice(t *testing.T) {
	cases := []struct {
		device string
		want   string
		err    bool
	}{
		{"", DeviceKeyboard, false},
		{"keyboard", DeviceKeyboard, false},
		{"gamepad", DeviceGamepad, false},
		{"wand", "", true},
	}
	for _, c := range cases {
		t.Run(c.device, func(t *testing.T) {
			d, err := NewDevice(&prefabs.ControlsSpec{Device: c.device})
			if c.err {
				if !errors.Is(err, ErrUnknownDevice) {
					t.Fatalf("err = %v, want ErrUnknownDevice", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDevice: %v", err)
			}
			if d.Name() != c.want {
				t.Fatalf("name = %s, want %s", d.Name(), c.want)
			}
		})
	}
}

func TestNewDeviceUnknownKey(t *testing.T) {
	cases := []struct {
		name string
		keys prefabs.KeyMapSpec
	}{
		{"click", prefabs.KeyMapSpec{Click: []string{"Space", "Trigger"}}},
		{"down", prefabs.KeyMapSpec{Down: []string{""}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewDevice(&prefabs.ControlsSpec{Device: DeviceKeyboard, Keys: c.keys})
			if !errors.Is(err, ErrUnknownKey) {
				t.Fatalf("err = %v, want ErrUnknownKey", err)
			}
		})
	}
}

func TestNewDeviceWithEmbeddedControls(t *testing.T) {
	spec, err := prefabs.LoadControlsSpec()
	if err != nil {
		t.Fatalf("LoadControlsSpec: %v", err)
	}
	d, err := NewDevice(spec)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	if d.Name() != spec.Device {
		t.Fatalf("name = %s, want %s", d.Name(), spec.Device)
	}
}
