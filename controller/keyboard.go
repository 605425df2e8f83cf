package controller

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/prefabs"
)

// Keyboard simulates a controller with the keyboard so the demo can be
// driven without hardware. It always reports itself connected.
type Keyboard struct {
	keys        keyMap
	speed       float64
	orientation input.Orientation
	pressed     func(ebiten.Key) bool
}

var _ input.Device = (*Keyboard)(nil)

// NewKeyboard resolves the key bindings by ebiten key name. An unknown
// name is an error wrapping ErrUnknownKey.
func NewKeyboard(keys prefabs.KeyMapSpec, rotationSpeed float64) (*Keyboard, error) {
	km, err := parseKeyMap(keys)
	if err != nil {
		return nil, err
	}
	if rotationSpeed <= 0 {
		rotationSpeed = defaultRotationSpeed
	}
	return &Keyboard{
		keys:    km,
		speed:   rotationSpeed,
		pressed: ebiten.IsKeyPressed,
	}, nil
}

func (k *Keyboard) Name() string {
	return DeviceKeyboard
}

func (k *Keyboard) Poll(dt float64) input.Sample {
	var s input.Sample
	s.Status = input.StatusConnected
	s.Set(input.ButtonClick, k.any(k.keys.click))
	s.Set(input.ButtonTouch, k.any(k.keys.touch))
	s.Set(input.ButtonApp, k.any(k.keys.app))

	var yaw, pitch float64
	if k.any(k.keys.left) {
		yaw--
	}
	if k.any(k.keys.right) {
		yaw++
	}
	if k.any(k.keys.up) {
		pitch++
	}
	if k.any(k.keys.down) {
		pitch--
	}
	step := dt * k.speed
	k.orientation = k.orientation.Rotate(yaw*step, pitch*step)
	s.Orientation = k.orientation
	return s
}

func (k *Keyboard) any(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
