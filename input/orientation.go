package input

import (
	"math"

	"github.com/johans2/YellowBelly/common"
)

const maxPitch = 89.0

// Orientation is the controller's pointing direction in degrees.
// Yaw 0, pitch 0 looks down -Z; positive yaw turns right (toward +X)
// and positive pitch looks up.
type Orientation struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
}

// Rotate adds the deltas, wrapping yaw into [0, 360) and clamping pitch.
func (o Orientation) Rotate(dYaw, dPitch float64) Orientation {
	yaw := math.Mod(o.Yaw+dYaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	pitch := math.Max(-maxPitch, math.Min(maxPitch, o.Pitch+dPitch))
	return Orientation{Yaw: yaw, Pitch: pitch}
}

// Forward returns the unit pointing direction.
func (o Orientation) Forward() common.Vec3 {
	yaw := o.Yaw * math.Pi / 180
	pitch := o.Pitch * math.Pi / 180
	cp := math.Cos(pitch)
	return common.Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}
