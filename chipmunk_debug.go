package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/johans2/YellowBelly/world"
)

// floorDrawer renders the floor's Chipmunk shapes in the top-down view.
// Shape coordinates are (x, z) in world meters.
type floorDrawer struct {
	screen *ebiten.Image
	view   view
}

func (v view) drawFloorShapes(screen *ebiten.Image, floor *world.Floor) {
	if floor == nil || screen == nil {
		return
	}
	floor.DebugDraw(&floorDrawer{screen: screen, view: v})
}

func (d *floorDrawer) line(a, b cp.Vector, c color.Color) {
	x0, y0 := d.view.project(a.X, a.Y)
	x1, y1 := d.view.project(b.X, b.Y)
	vector.StrokeLine(d.screen, x0, y0, x1, y1, 1, c, true)
}

func (d *floorDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *floorDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *floorDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *floorDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
	// Diagonals mark the region as a query target.
	if count > 2 {
		d.line(verts[0], verts[count/2], fcolorToRGBA(fill))
	}
}

func (d *floorDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.project(pos.X, pos.Y)
	vector.FillCircle(d.screen, x, y, float32(size/2), fcolorToRGBA(fill), true)
}

func (d *floorDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *floorDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

// ShapeColor tints interaction floors differently from the rest.
func (d *floorDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if region, ok := shape.UserData.(*world.FloorRegion); ok && region.Layer.Has(world.LayerInteraction) {
		return cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	}
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *floorDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *floorDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *floorDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
