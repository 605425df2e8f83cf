package pointer

import (
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
	"github.com/johans2/YellowBelly/input"
)

// Controller is the tracked controller the ray comes from.
type Controller interface {
	Orientation() input.Orientation
	Buttons() input.ButtonReader
}

// System ticks an Interactor with a ray from a controller held at a fixed
// origin. It must run after the input system in the same tick.
type System struct {
	Interactor *Interactor
	Controller Controller
	Origin     common.Vec3
}

var _ frame.System = (*System)(nil)

func NewSystem(p *Interactor, c Controller, origin common.Vec3) *System {
	if p == nil || c == nil {
		panic("pointer: system needs an interactor and a controller")
	}
	return &System{Interactor: p, Controller: c, Origin: origin}
}

func (s *System) Ray() Ray {
	return Ray{Origin: s.Origin, Direction: s.Controller.Orientation().Forward()}
}

func (s *System) Update(*frame.Context) {
	s.Interactor.Tick(s.Ray(), s.Controller.Buttons())
}
