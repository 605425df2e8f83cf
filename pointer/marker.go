package pointer

import (
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Marker is the reticle shown where the pointer hits. When nothing is hit
// it sits at common.OutOfBounds instead of being hidden, so its position
// is always defined.
type Marker struct {
	position common.Vec3
	target   common.Vec3
	facing   common.Vec3
	visible  bool

	smooth float32
	tweens [3]*gween.Tween
}

var _ frame.System = (*Marker)(nil)

// NewMarker creates a marker that eases toward new targets over
// smoothSeconds (0 snaps) and always faces the given direction.
func NewMarker(smoothSeconds float64, facing common.Vec3) *Marker {
	return &Marker{
		position: common.OutOfBounds,
		target:   common.OutOfBounds,
		facing:   facing.Normalize(),
		smooth:   float32(smoothSeconds),
	}
}

// MoveTo retargets the marker. Coming back from out of bounds it snaps.
func (m *Marker) MoveTo(p common.Vec3) {
	if !m.visible || m.smooth <= 0 {
		m.snap(p)
		m.visible = true
		return
	}
	if p == m.target {
		return
	}
	m.target = p
	m.tweens[0] = gween.New(float32(m.position.X), float32(p.X), m.smooth, ease.OutQuad)
	m.tweens[1] = gween.New(float32(m.position.Y), float32(p.Y), m.smooth, ease.OutQuad)
	m.tweens[2] = gween.New(float32(m.position.Z), float32(p.Z), m.smooth, ease.OutQuad)
}

// Hide parks the marker out of bounds.
func (m *Marker) Hide() {
	m.snap(common.OutOfBounds)
	m.visible = false
}

func (m *Marker) snap(p common.Vec3) {
	m.position = p
	m.target = p
	m.tweens = [3]*gween.Tween{}
}

func (m *Marker) Update(ctx *frame.Context) {
	m.Step(ctx.DT)
}

// Step advances the easing by dt seconds.
func (m *Marker) Step(dt float64) {
	if m.tweens[0] == nil {
		return
	}
	var v [3]float32
	done := true
	for i, tw := range m.tweens {
		cur, finished := tw.Update(float32(dt))
		v[i] = cur
		done = done && finished
	}
	if done {
		m.snap(m.target)
		return
	}
	m.position = common.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func (m *Marker) Position() common.Vec3 {
	return m.position
}

func (m *Marker) Target() common.Vec3 {
	return m.target
}

func (m *Marker) Facing() common.Vec3 {
	return m.facing
}

// Visible reports whether the marker is on a target.
func (m *Marker) Visible() bool {
	return m.visible
}
