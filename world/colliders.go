package world

import (
	"image/color"
	"math"

	"github.com/johans2/YellowBelly/common"
)

const parallelEpsilon = 1e-12

// Shape is a solid that a ray can enter. entry returns the distance along
// the unit direction to the first surface crossing and the surface normal
// there. Rays starting inside a shape do not hit it.
type Shape interface {
	entry(origin, dir common.Vec3) (t float64, normal common.Vec3, ok bool)
}

// Box is an axis-aligned box.
type Box struct {
	Min, Max common.Vec3
}

// Sphere is a ball.
type Sphere struct {
	Center common.Vec3
	Radius float64
}

// Collider is a named shape on a layer.
type Collider struct {
	Name  string
	Layer LayerMask
	Shape Shape
	Color color.Color
}

// Colliders is a flat list of solids tested one by one.
type Colliders struct {
	items []Collider
}

var _ Query = (*Colliders)(nil)

func NewColliders(items ...Collider) *Colliders {
	return &Colliders{items: append([]Collider(nil), items...)}
}

func (c *Colliders) Add(col Collider) {
	c.items = append(c.items, col)
}

func (c *Colliders) Items() []Collider {
	return c.items
}

func (c *Colliders) Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	if c == nil {
		return Hit{}, false
	}
	d := dir.Normalize()
	if d.IsZero() {
		return Hit{}, false
	}

	closest := limit(maxDistance)
	var best Hit
	hasHit := false
	for _, col := range c.items {
		if !mask.Has(col.Layer) || col.Shape == nil {
			continue
		}
		t, n, ok := col.Shape.entry(origin, d)
		if !ok || t > closest {
			continue
		}
		closest = t
		hasHit = true
		best = Hit{
			Point:    origin.Add(d.Scale(t)),
			Normal:   n,
			Distance: t,
			Object:   col.Name,
			Layer:    col.Layer,
		}
	}
	return best, hasHit
}

// entry is the slab test.
func (b Box) entry(origin, dir common.Vec3) (float64, common.Vec3, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var normal common.Vec3

	for axis := 0; axis < 3; axis++ {
		o := origin.Component(axis)
		d := dir.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math.Abs(d) < parallelEpsilon {
			if o < lo || o > hi {
				return 0, common.Vec3{}, false
			}
			continue
		}

		invD := 1 / d
		t1 := (lo - o) * invD
		t2 := (hi - o) * invD
		// Entering through the min face means the normal points down the axis.
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tNear {
			tNear = t1
			normal = axisVector(axis, sign)
		}
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return 0, common.Vec3{}, false
		}
	}

	if tFar < 0 || tNear < 0 {
		return 0, common.Vec3{}, false
	}
	return tNear, normal, true
}

func (s Sphere) entry(origin, dir common.Vec3) (float64, common.Vec3, bool) {
	if s.Radius <= 0 {
		return 0, common.Vec3{}, false
	}
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	if c < 0 {
		return 0, common.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, common.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, common.Vec3{}, false
	}
	p := origin.Add(dir.Scale(t))
	return t, p.Sub(s.Center).Scale(1 / s.Radius), true
}

func axisVector(axis int, sign float64) common.Vec3 {
	switch axis {
	case 0:
		return common.Vec3{X: sign}
	case 1:
		return common.Vec3{Y: sign}
	default:
		return common.Vec3{Z: sign}
	}
}
