package pet

import (
	"log/slog"
	"math/rand/v2"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
	"github.com/johans2/YellowBelly/prefabs"
)

const (
	defaultSpeed         = 1.5
	defaultArriveRadius  = 0.1
	defaultCheckInterval = 2.0
	defaultMouthChance   = 50

	TriggerMouth = "mouth"
)

// Pet walks to selected points and idles in between, now and then
// opening its mouth.
type Pet struct {
	name          string
	speed         float64
	arriveRadius  float64
	checkInterval float64
	mouthChance   int

	position    common.Vec3
	destination common.Vec3
	hasPath     bool

	state    State
	pending  State
	idleTime float64

	roll      func() int
	triggers  map[string]int
	listeners []func(name string)
	base      *slog.Logger
	log       *slog.Logger
}

var _ frame.System = (*Pet)(nil)

func New(spec *prefabs.PetSpec, logger *slog.Logger) *Pet {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pet{
		roll:     func() int { return rand.IntN(100) },
		triggers: make(map[string]int),
		base:     logger,
	}
	p.Apply(spec)
	if spec != nil {
		p.position = spec.Start
	}
	p.state = stateIdle
	p.state.Enter(p)
	return p
}

// Apply takes new tuning values without moving the pet.
func (p *Pet) Apply(spec *prefabs.PetSpec) {
	p.name = "pet"
	p.speed = defaultSpeed
	p.arriveRadius = defaultArriveRadius
	p.checkInterval = defaultCheckInterval
	p.mouthChance = defaultMouthChance
	if spec != nil {
		p.override(spec)
	}
	p.log = p.base.With("component", "pet", "pet", p.name)
}

func (p *Pet) override(spec *prefabs.PetSpec) {
	if spec.Name != "" {
		p.name = spec.Name
	}
	if spec.Speed > 0 {
		p.speed = spec.Speed
	}
	if spec.ArriveRadius > 0 {
		p.arriveRadius = spec.ArriveRadius
	}
	if spec.CheckInterval > 0 {
		p.checkInterval = spec.CheckInterval
	}
	if spec.MouthChance != nil {
		p.mouthChance = *spec.MouthChance
	}
}

// SetRoll replaces the 0-99 dice used for idle behaviour.
func (p *Pet) SetRoll(roll func() int) {
	p.roll = roll
}

// MoveTo sets a new destination. It has the shape of a selection handler.
func (p *Pet) MoveTo(target common.Vec3) {
	p.destination = target
	p.hasPath = true
	p.log.Debug("destination set", "x", target.X, "y", target.Y, "z", target.Z)
}

func (p *Pet) Update(ctx *frame.Context) {
	p.state.Update(p, ctx.DT)
	if p.pending != nil {
		p.state.Exit(p)
		p.log.Debug("state change", "from", p.state.Name(), "to", p.pending.Name())
		p.state = p.pending
		p.pending = nil
		p.state.Enter(p)
	}
}

func (p *Pet) changeState(s State) {
	p.pending = s
}

// step moves toward the destination and reports whether it arrived.
func (p *Pet) step(dt float64) bool {
	delta := p.destination.Sub(p.position)
	dist := delta.Length()
	move := p.speed * dt
	if dist <= p.arriveRadius || move >= dist {
		p.position = p.destination
		p.hasPath = false
		return true
	}
	p.position = p.position.Add(delta.Scale(move / dist))
	return false
}

// Trigger fires a named animation trigger.
func (p *Pet) Trigger(name string) {
	p.triggers[name]++
	for _, fn := range p.listeners {
		fn(name)
	}
	p.log.Debug("trigger", "name", name)
}

// OnTrigger registers fn to be told about animation triggers.
func (p *Pet) OnTrigger(fn func(name string)) {
	p.listeners = append(p.listeners, fn)
}

// Triggered returns how often the named trigger has fired.
func (p *Pet) Triggered(name string) int {
	return p.triggers[name]
}

func (p *Pet) Name() string {
	return p.name
}

func (p *Pet) Position() common.Vec3 {
	return p.position
}

func (p *Pet) Destination() (common.Vec3, bool) {
	return p.destination, p.hasPath
}

func (p *Pet) State() string {
	return p.state.Name()
}
