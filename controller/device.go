// Package controller builds the ebiten-backed controller devices: the
// standard-layout gamepad and the keyboard that simulates it.
package controller

import (
	"errors"
	"fmt"

	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/prefabs"
)

var (
	ErrUnknownDevice = errors.New("controller: unknown device")
	ErrUnknownKey    = errors.New("controller: unknown key")
)

const (
	DeviceKeyboard = "keyboard"
	DeviceGamepad  = "gamepad"
)

const defaultRotationSpeed = 50.0 // degrees per second

// NewDevice builds the device selected by the controls spec.
func NewDevice(spec *prefabs.ControlsSpec) (input.Device, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil controls spec", ErrUnknownDevice)
	}
	switch spec.Device {
	case DeviceKeyboard, "":
		k, err := NewKeyboard(spec.Keys, spec.RotationSpeed)
		if err != nil {
			return nil, err
		}
		return k, nil
	case DeviceGamepad:
		return NewGamepad(spec.ConnectPolls, spec.RotationSpeed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, spec.Device)
	}
}
