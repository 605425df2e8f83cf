package input

import "fmt"

// ButtonReader is the read-only view of button state handed to consumers.
type ButtonReader interface {
	IsDown(b Button) bool
	WasPressed(b Button) bool
	WasReleased(b Button) bool
}

// State turns raw per-tick samples into press/release edges.
// It performs no gating of its own; feed it false when the device
// should not be trusted.
type State struct {
	buttons [numButtons]ButtonState
	updated [numButtons]bool
	tick    uint64
}

var _ ButtonReader = (*State)(nil)

func NewState() *State {
	return &State{}
}

// StartTick opens a new tick. Each button may be updated once per tick.
func (s *State) StartTick() {
	s.tick++
	s.updated = [numButtons]bool{}
}

// Tick returns the number of ticks started so far.
func (s *State) Tick() uint64 {
	return s.tick
}

// UpdateButton feeds this tick's raw sample for b. A button that is not
// updated in a tick keeps its previous state, edges included.
func (s *State) UpdateButton(b Button, rawIsDown bool) {
	i := b.index()
	if s.updated[i] {
		panic(fmt.Sprintf("input: button %s updated twice in tick %d", b, s.tick))
	}
	s.updated[i] = true
	s.buttons[i].Update(rawIsDown)
}

// Button returns a copy of b's state for the current tick.
func (s *State) Button(b Button) ButtonState {
	return s.buttons[b.index()]
}

func (s *State) IsDown(b Button) bool {
	return s.buttons[b.index()].IsDown
}

// WasPressed is true only on the tick b went down.
func (s *State) WasPressed(b Button) bool {
	return s.buttons[b.index()].WasPressed
}

// WasReleased is true only on the tick b went up.
func (s *State) WasReleased(b Button) bool {
	return s.buttons[b.index()].WasReleased
}

// Reset releases every button without producing edges.
func (s *State) Reset() {
	for i := range s.buttons {
		s.buttons[i].Clear()
	}
}
