package world

import (
	"math"

	"github.com/johans2/YellowBelly/common"
)

// Hit is the nearest intersection of a ray with the world.
type Hit struct {
	Point    common.Vec3
	Normal   common.Vec3
	Distance float64
	// Object names what was hit.
	Object string
	Layer  LayerMask
}

// Query answers nearest-hit ray queries. maxDistance <= 0 means unlimited.
// Absence of a hit is a normal outcome, reported with ok=false.
type Query interface {
	Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (hit Hit, ok bool)
}

// QueryFunc adapts a function to Query.
type QueryFunc func(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool)

func (f QueryFunc) Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	return f(origin, dir, maxDistance, mask)
}

// Multi returns the nearest hit across several queries.
type Multi []Query

func (m Multi) Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	var best Hit
	found := false
	for _, q := range m {
		if q == nil {
			continue
		}
		hit, ok := q.Raycast(origin, dir, maxDistance, mask)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// Empty never hits anything.
var Empty Query = QueryFunc(func(common.Vec3, common.Vec3, float64, LayerMask) (Hit, bool) {
	return Hit{}, false
})

func limit(maxDistance float64) float64 {
	if maxDistance <= 0 {
		return math.Inf(1)
	}
	return maxDistance
}
