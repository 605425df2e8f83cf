package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/pet"
	"github.com/johans2/YellowBelly/pointer"
	"github.com/johans2/YellowBelly/prefabs"
	"github.com/johans2/YellowBelly/world"
	"golang.org/x/image/colornames"
)

const (
	defaultPixelsPerMeter = 60
	petRadius             = 0.3
	markerSize            = 0.25
)

// view draws the world from above: x to the right, -z (forward) up the
// screen, centered on (centerX, centerZ).
type view struct {
	ppm      float64
	centerX  float64
	centerZ  float64
	petColor color.Color
}

func newView(spec *prefabs.GameSpec) view {
	v := view{
		ppm:      defaultPixelsPerMeter,
		centerZ:  -4,
		petColor: colornames.Gold,
	}
	if spec != nil && spec.PixelsPerMeter > 0 {
		v.ppm = spec.PixelsPerMeter
	}
	return v
}

func (v view) project(x, z float64) (float32, float32) {
	sx := common.BaseWidth/2 + (x-v.centerX)*v.ppm
	sy := common.BaseHeight/2 + (z-v.centerZ)*v.ppm
	return float32(sx), float32(sy)
}

func (v view) drawScene(screen *ebiten.Image, scene *world.Scene) {
	screen.Fill(colornames.Darkslategray)
	if scene == nil {
		return
	}

	for _, r := range scene.Floor.Regions() {
		clr := r.Color
		if clr == nil {
			clr = colornames.Darkolivegreen
		}
		v.drawOutline(screen, r.Outline, clr)
	}

	for _, c := range scene.Props.Items() {
		clr := c.Color
		if clr == nil {
			clr = colornames.Gray
		}
		switch s := c.Shape.(type) {
		case world.Box:
			x0, y0 := v.project(s.Min.X, s.Min.Z)
			x1, y1 := v.project(s.Max.X, s.Max.Z)
			vector.FillRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Black, false)
		case world.Sphere:
			cx, cy := v.project(s.Center.X, s.Center.Z)
			vector.FillCircle(screen, cx, cy, float32(s.Radius*v.ppm), clr, true)
		}
	}
}

func (v view) drawOutline(screen *ebiten.Image, outline []common.Vec2, clr color.Color) {
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		x0, y0 := v.project(a.X, a.Y)
		x1, y1 := v.project(b.X, b.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, clr, true)
	}
}

func (v view) drawPet(screen *ebiten.Image, p *pet.Pet) {
	pos := p.Position()
	x, y := v.project(pos.X, pos.Z)
	vector.FillCircle(screen, x, y, float32(petRadius*v.ppm), v.petColor, true)

	if dest, ok := p.Destination(); ok {
		dx, dy := v.project(dest.X, dest.Z)
		vector.StrokeLine(screen, x, y, dx, dy, 1, colornames.Lightgrey, true)
	}
}

func (v view) drawPointer(screen *ebiten.Image, ray pointer.Ray, it *pointer.Interactor) {
	ox, oy := v.project(ray.Origin.X, ray.Origin.Z)
	vector.FillCircle(screen, ox, oy, 4, colornames.White, true)

	m := it.Marker()
	if !m.Visible() {
		far := ray.Origin.Add(ray.Direction.Scale(20))
		fx, fy := v.project(far.X, far.Z)
		vector.StrokeLine(screen, ox, oy, fx, fy, 1, colornames.Dimgray, true)
		return
	}

	p := m.Position()
	mx, my := v.project(p.X, p.Z)
	vector.StrokeLine(screen, ox, oy, mx, my, 2, colornames.Red, true)

	s := float32(markerSize * v.ppm)
	vector.StrokeLine(screen, mx-s, my, mx+s, my, 2, colornames.White, true)
	vector.StrokeLine(screen, mx, my-s, mx, my+s, 2, colornames.White, true)
}
