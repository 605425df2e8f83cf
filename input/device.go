package input

import "github.com/johans2/YellowBelly/common"

// Sample is one poll of a device.
type Sample struct {
	Status      Status
	Buttons     [numButtons]bool
	Orientation Orientation
	Touch       common.Vec2
}

func (s *Sample) Set(b Button, down bool) {
	s.Buttons[b.index()] = down
}

func (s Sample) Pressed(b Button) bool {
	return s.Buttons[b.index()]
}

// Device is a source of raw controller samples. Poll is called exactly
// once per tick by the owning System.
type Device interface {
	Name() string
	Poll(dt float64) Sample
}
