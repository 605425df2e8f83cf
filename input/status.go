package input

import "fmt"

// Status is the controller connection state reported by a device.
type Status uint8

const (
	StatusDisconnected Status = iota
	StatusScanning
	StatusConnecting
	StatusConnected
	StatusError
	// StatusRecentering is reported while the user recenters the controller.
	// Samples taken in this state are not authoritative.
	StatusRecentering
)

var statusNames = [...]string{
	StatusDisconnected: "disconnected",
	StatusScanning:     "scanning",
	StatusConnecting:   "connecting",
	StatusConnected:    "connected",
	StatusError:        "error",
	StatusRecentering:  "recentering",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return statusNames[s]
}

// Authoritative reports whether samples taken in this state can be trusted.
func (s Status) Authoritative() bool {
	return s == StatusConnected
}

func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, fmt.Errorf("input: unknown status %d", uint8(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, n := range statusNames {
		if n == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("input: unknown status %q", string(text))
}
