package world

import (
	"fmt"
	"image/color"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/prefabs"
)

var (
	defaultFloorColor = color.NRGBA{R: 0x55, G: 0x77, B: 0x55, A: 0xff}
	defaultPropColor  = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

// Scene is everything a pointer ray can hit.
type Scene struct {
	Name  string
	Floor *Floor
	Props *Colliders
}

var _ Query = (*Scene)(nil)

func NewScene(name string) *Scene {
	return &Scene{Name: name, Floor: NewFloor(), Props: NewColliders()}
}

func (s *Scene) Raycast(origin, dir common.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	return Multi{s.Floor, s.Props}.Raycast(origin, dir, maxDistance, mask)
}

// FromSpec builds a scene from its prefab description.
func FromSpec(spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("world: nil scene spec")
	}
	scene := NewScene(spec.Name)

	for i, f := range spec.Floors {
		layer, err := ParseLayer(f.Layer)
		if err != nil {
			return nil, fmt.Errorf("world: floor %d (%s): %w", i, f.Name, err)
		}
		var region *FloorRegion
		if f.Rect != nil {
			region, err = scene.Floor.AddRect(f.Name, layer, f.Height, f.Rect.X, f.Rect.Z, f.Rect.Width, f.Rect.Depth)
		} else {
			points := make([]common.Vec2, len(f.Polygon))
			for j, p := range f.Polygon {
				points[j] = common.Vec2{X: p.X, Y: p.Z}
			}
			region, err = scene.Floor.AddPolygon(f.Name, layer, f.Height, points)
		}
		if err != nil {
			return nil, fmt.Errorf("world: floor %d (%s): %w", i, f.Name, err)
		}
		region.Color = f.Color.Or(defaultFloorColor)
	}

	for i, p := range spec.Props {
		layer, err := ParseLayer(p.Layer)
		if err != nil {
			return nil, fmt.Errorf("world: prop %d (%s): %w", i, p.Name, err)
		}
		col := Collider{Name: p.Name, Layer: layer, Color: p.Color.Or(defaultPropColor)}
		switch {
		case p.Box != nil:
			col.Shape = Box{Min: p.Box.Min, Max: p.Box.Max}
		case p.Sphere != nil:
			col.Shape = Sphere{Center: p.Sphere.Center, Radius: p.Sphere.Radius}
		default:
			return nil, fmt.Errorf("world: prop %d (%s): %w", i, p.Name, ErrEmptyShape)
		}
		scene.Props.Add(col)
	}
	return scene, nil
}
