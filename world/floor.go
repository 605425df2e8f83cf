package world

import (
	"errors"
	"image/color"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/johans2/YellowBelly/common"
)

var ErrEmptyShape = errors.New("world: floor region has no area")

// FloorRegion is a walkable area on a horizontal plane. Outline points are
// (x, z) in world meters.
type FloorRegion struct {
	Name    string
	Layer   LayerMask
	Height  float64
	Outline []common.Vec2
	Color   color.Color
}

// floorLevel is one plane of floor regions. Regions are Chipmunk shapes
// laid out in (x, z) with their layer as the filter category.
type floorLevel struct {
	height float64
	space  *cp.Space
}

// Floor answers ray queries against floor regions: the ray is intersected
// with each floor plane and the point tested against the regions there.
// Floors are one-sided; only rays travelling downward hit them.
type Floor struct {
	levels  []*floorLevel
	regions []*FloorRegion
}

var _ Query = (*Floor)(nil)

func NewFloor() *Floor {
	return &Floor{}
}

// AddRect adds an axis-aligned region spanning [x, x+width] by [z, z+depth].
func (f *Floor) AddRect(name string, layer LayerMask, height, x, z, width, depth float64) (*FloorRegion, error) {
	return f.AddPolygon(name, layer, height, []common.Vec2{
		{X: x, Y: z},
		{X: x + width, Y: z},
		{X: x + width, Y: z + depth},
		{X: x, Y: z + depth},
	})
}

// AddPolygon adds a convex region. Points are (x, z); winding does not matter.
func (f *Floor) AddPolygon(name string, layer LayerMask, height float64, points []common.Vec2) (*FloorRegion, error) {
	if len(points) < 3 || polygonArea(points) == 0 {
		return nil, ErrEmptyShape
	}
	region := &FloorRegion{
		Name:    name,
		Layer:   layer,
		Height:  height,
		Outline: append([]common.Vec2(nil), points...),
	}

	level := f.level(height)
	verts := make([]cp.Vector, len(points))
	for i, p := range points {
		verts[i] = cp.Vector{X: p.X, Y: p.Y}
	}
	shape := cp.NewPolyShape(level.space.StaticBody, len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	shape.UserData = region
	level.space.AddShape(shape)

	f.regions = append(f.regions, region)
	return region, nil
}

// DebugDraw hands each floor plane's Chipmunk space to drawer, highest
// plane first.
func (f *Floor) DebugDraw(drawer cp.Drawer) {
	for _, l := range f.levels {
		cp.DrawSpace(l.space, drawer)
	}
}

// Regions returns the regions in insertion order.
func (f *Floor) Regions() []*FloorRegion {
	return f.regions
}

func (f *Floor) Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	if f == nil {
		return Hit{}, false
	}
	d := dir.Normalize()
	if d.Y >= -parallelEpsilon {
		return Hit{}, false
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	closest := limit(maxDistance)
	var best Hit
	hasHit := false
	for _, level := range f.levels {
		t := (level.height - origin.Y) / d.Y
		if t < 0 || t > closest {
			continue
		}
		p := origin.Add(d.Scale(t))
		info := level.space.PointQueryNearest(cp.Vector{X: p.X, Y: p.Z}, 0, filter)
		if info == nil || info.Shape == nil {
			continue
		}
		region, ok := info.Shape.UserData.(*FloorRegion)
		if !ok {
			continue
		}
		closest = t
		hasHit = true
		best = Hit{
			Point:    common.Vec3{X: p.X, Y: level.height, Z: p.Z},
			Normal:   common.Up,
			Distance: t,
			Object:   region.Name,
			Layer:    region.Layer,
		}
	}
	return best, hasHit
}

func (f *Floor) level(height float64) *floorLevel {
	for _, l := range f.levels {
		if l.height == height {
			return l
		}
	}
	l := &floorLevel{height: height, space: cp.NewSpace()}
	f.levels = append(f.levels, l)
	// Highest first: a downward ray reaches upper planes first.
	sort.Slice(f.levels, func(i, j int) bool { return f.levels[i].height > f.levels[j].height })
	return l
}

func polygonArea(points []common.Vec2) float64 {
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}
