package input

import (
	"log/slog"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
)

// System owns the button State and the device feeding it. Each tick it
// polls the device once and updates every button. While the device is not
// authoritative (anything but connected) or interaction is disabled, every
// button is fed false so no phantom presses reach consumers.
type System struct {
	device Device
	state  *State
	log    *slog.Logger

	enabled      bool
	touchAsClick bool
	forced       *Status

	status      Status
	orientation Orientation
	touch       common.Vec2
}

var _ frame.System = (*System)(nil)

func NewSystem(device Device, logger *slog.Logger) *System {
	if device == nil {
		panic("input: nil device")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &System{
		device:  device,
		state:   NewState(),
		log:     logger.With("component", "input"),
		enabled: true,
	}
}

func (s *System) Update(ctx *frame.Context) {
	sample := s.device.Poll(ctx.DT)

	status := sample.Status
	if s.forced != nil {
		status = *s.forced
	}
	if status != s.status {
		s.log.Info("controller status changed", "device", s.device.Name(), "from", s.status, "to", status)
		s.status = status
	}

	available := status.Authoritative()
	if available {
		s.orientation = sample.Orientation
		s.touch = sample.Touch
	}

	buttonsAvailable := s.enabled && available
	click := sample.Pressed(ButtonClick)
	if s.touchAsClick {
		click = click || sample.Pressed(ButtonTouch)
	}

	s.state.StartTick()
	s.state.UpdateButton(ButtonClick, buttonsAvailable && click)
	s.state.UpdateButton(ButtonTouch, buttonsAvailable && sample.Pressed(ButtonTouch))
	s.state.UpdateButton(ButtonApp, buttonsAvailable && sample.Pressed(ButtonApp))
}

// Buttons returns the read-only button view for this tick.
func (s *System) Buttons() ButtonReader {
	return s.state
}

func (s *System) Orientation() Orientation {
	return s.orientation
}

func (s *System) TouchPos() common.Vec2 {
	return s.touch
}

// Status is the effective status after any forced override.
func (s *System) Status() Status {
	return s.status
}

func (s *System) Connected() bool {
	return s.status == StatusConnected
}

func (s *System) Recentering() bool {
	return s.status == StatusRecentering
}

func (s *System) Device() Device {
	return s.device
}

// SetDevice swaps the device. Buttons are released without edges so a
// button held on the old device does not fire a release on the new one.
func (s *System) SetDevice(d Device) {
	if d == nil {
		panic("input: nil device")
	}
	s.device = d
	s.state.Reset()
	s.log.Info("device selected", "device", d.Name())
}

func (s *System) DisableInteraction() {
	s.enabled = false
}

func (s *System) EnableInteraction() {
	s.enabled = true
}

func (s *System) InteractionEnabled() bool {
	return s.enabled
}

// ForceStatus pretends the controller is in the given state, for testing
// without hardware.
func (s *System) ForceStatus(st Status) {
	s.forced = &st
	s.log.Debug("forcing controller status", "status", st)
}

func (s *System) ClearForcedStatus() {
	s.forced = nil
}

// ToggleForcedConnected flips between forcing connected and the device's own status.
func (s *System) ToggleForcedConnected() {
	if s.forced != nil && *s.forced == StatusConnected {
		s.ClearForcedStatus()
		return
	}
	s.ForceStatus(StatusConnected)
}

// SetTouchAsClick lets touching the pad count as a click.
func (s *System) SetTouchAsClick(on bool) {
	s.touchAsClick = on
	s.log.Info("simulating click with touch", "enabled", on)
}

func (s *System) TouchAsClick() bool {
	return s.touchAsClick
}
