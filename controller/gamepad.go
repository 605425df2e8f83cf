package controller

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/input"
)

const stickDeadzone = 0.2

var gamepadButtons = [len(input.Buttons)]ebiten.StandardGamepadButton{
	input.ButtonClick: ebiten.StandardGamepadButtonRightBottom,
	input.ButtonTouch: ebiten.StandardGamepadButtonFrontBottomRight,
	input.ButtonApp:   ebiten.StandardGamepadButtonCenterRight,
}

const gamepadHome = ebiten.StandardGamepadButtonCenterCenter

// gamepadReader is the slice of the ebiten gamepad API the Gamepad uses.
type gamepadReader interface {
	AppendIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	Standard(id ebiten.GamepadID) bool
	Pressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
}

type ebitenGamepads struct{}

func (ebitenGamepads) AppendIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenGamepads) Standard(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (ebitenGamepads) Pressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (ebitenGamepads) Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}

// Gamepad is the real controller: the first connected standard-layout
// gamepad. It walks through scanning and connecting before reporting
// connected, and reports recentering while the home button is held.
type Gamepad struct {
	reader       gamepadReader
	connectPolls int
	speed        float64

	ids         []ebiten.GamepadID
	id          ebiten.GamepadID
	hasPad      bool
	connectLeft int
	recentering bool
	orientation input.Orientation
	touch       common.Vec2
}

var _ input.Device = (*Gamepad)(nil)

func NewGamepad(connectPolls int, rotationSpeed float64) *Gamepad {
	return newGamepad(ebitenGamepads{}, connectPolls, rotationSpeed)
}

func newGamepad(reader gamepadReader, connectPolls int, rotationSpeed float64) *Gamepad {
	if rotationSpeed <= 0 {
		rotationSpeed = defaultRotationSpeed
	}
	if connectPolls < 0 {
		connectPolls = 0
	}
	return &Gamepad{reader: reader, connectPolls: connectPolls, speed: rotationSpeed}
}

func (g *Gamepad) Name() string {
	return DeviceGamepad
}

func (g *Gamepad) Poll(dt float64) input.Sample {
	s := input.Sample{Orientation: g.orientation, Touch: g.touch}

	g.ids = g.reader.AppendIDs(g.ids[:0])
	if len(g.ids) == 0 {
		if g.hasPad {
			g.hasPad = false
			g.recentering = false
			s.Status = input.StatusDisconnected
			return s
		}
		s.Status = input.StatusScanning
		return s
	}

	id := g.ids[0]
	if !g.hasPad || id != g.id {
		g.hasPad = true
		g.id = id
		g.connectLeft = g.connectPolls
	}

	if !g.reader.Standard(id) {
		s.Status = input.StatusError
		return s
	}
	if g.connectLeft > 0 {
		g.connectLeft--
		s.Status = input.StatusConnecting
		return s
	}

	if g.reader.Pressed(id, gamepadHome) {
		g.recentering = true
		s.Status = input.StatusRecentering
		return s
	}
	if g.recentering {
		g.recentering = false
		g.orientation = input.Orientation{Pitch: g.orientation.Pitch}
	}

	for _, b := range input.Buttons {
		s.Set(b, g.reader.Pressed(id, gamepadButtons[b]))
	}

	rx := g.reader.Axis(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := g.reader.Axis(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		step := dt * g.speed
		// Stick up is negative Y.
		g.orientation = g.orientation.Rotate(rx*step, -ry*step)
	}

	lx := g.reader.Axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := g.reader.Axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
	// Map the stick square onto the 0..1 touchpad.
	g.touch = common.Vec2{X: (lx + 1) / 2, Y: (ly + 1) / 2}

	s.Status = input.StatusConnected
	s.Orientation = g.orientation
	s.Touch = g.touch
	return s
}
