package input

import "fmt"

// Button identifies one of the controller's logical buttons.
type Button uint8

const (
	ButtonClick Button = iota
	ButtonTouch
	ButtonApp

	numButtons = iota
)

// ButtonSelect is the button that confirms a pointer selection.
const ButtonSelect = ButtonClick

// Buttons lists every logical button in update order.
var Buttons = [numButtons]Button{ButtonClick, ButtonTouch, ButtonApp}

var buttonNames = [numButtons]string{"click", "touch", "app"}

func (b Button) String() string {
	if int(b) >= numButtons {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

func (b Button) MarshalText() ([]byte, error) {
	if int(b) >= numButtons {
		return nil, fmt.Errorf("input: unknown button %d", uint8(b))
	}
	return []byte(buttonNames[b]), nil
}

func (b *Button) UnmarshalText(text []byte) error {
	parsed, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseButton resolves a button by its lower-case name.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown button %q", name)
}

// index panics on values outside the closed button set.
func (b Button) index() int {
	if int(b) >= numButtons {
		panic(fmt.Sprintf("input: button %d out of range", uint8(b)))
	}
	return int(b)
}

// ButtonState is the state of a single button for the current tick.
type ButtonState struct {
	// IsDown is true while the button is held.
	IsDown bool
	// WasPressed is true only on the tick the button went down.
	WasPressed bool
	// WasReleased is true only on the tick the button went up.
	WasReleased bool
}

// Update records this tick's sample and derives the edges from the previous one.
func (s *ButtonState) Update(isDown bool) {
	wasDown := s.IsDown
	s.IsDown = isDown
	s.WasPressed = !wasDown && isDown
	s.WasReleased = wasDown && !isDown
}

func (s *ButtonState) Clear() {
	s.IsDown, s.WasPressed, s.WasReleased = false, false, false
}
