package pointer

import (
	"log/slog"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/world"
)

// Ray is the controller's pointing ray for a tick.
type Ray struct {
	Origin    common.Vec3
	Direction common.Vec3
}

// Result is what the pointer targets this tick. HitPoint is meaningful
// only when HasTarget is true.
type Result struct {
	HasTarget bool
	HitPoint  common.Vec3
	Object    string
	// Selected is true when this tick dispatched a selection.
	Selected bool
}

// SelectFunc receives the world-space point of a selection.
type SelectFunc func(point common.Vec3)

type selectHandler struct {
	id uint32
	fn SelectFunc
}

// Interactor casts the pointer ray each tick, keeps the reticle marker on
// the nearest hit, and notifies subscribers when the select button goes
// down while something is targeted.
//
// Subscribers run synchronously inside Tick. A subscriber must not call
// Tick again; doing so panics.
type Interactor struct {
	query         world.Query
	mask          world.LayerMask
	selectButton  input.Button
	surfaceOffset float64
	maxDistance   float64
	marker        *Marker
	log           *slog.Logger

	handlers    []selectHandler
	dispatchBuf []selectHandler
	nextID      uint32
	dispatching bool

	last Result
}

func NewInteractor(query world.Query, opts ...Option) *Interactor {
	if query == nil {
		panic("pointer: nil world query")
	}
	p := &Interactor{
		query:        query,
		mask:         world.LayerInteraction,
		selectButton: input.ButtonSelect,
		marker:       NewMarker(0, common.Up),
		log:          slog.Default().With("component", "pointer"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tick runs the pointer for one tick. buttons must already be updated for
// this tick.
func (p *Interactor) Tick(ray Ray, buttons input.ButtonReader) Result {
	if buttons == nil {
		panic("pointer: nil button reader")
	}
	if ray.Direction.IsZero() {
		panic("pointer: zero-length ray direction")
	}
	if p.dispatching {
		panic("pointer: Tick called from a selection subscriber")
	}

	hit, ok := p.query.Raycast(ray.Origin, ray.Direction, p.maxDistance, p.mask)
	if !ok {
		p.marker.Hide()
		p.last = Result{}
		return p.last
	}

	point := hit.Point.Add(hit.Normal.Scale(p.surfaceOffset))
	p.marker.MoveTo(point)

	p.last = Result{HasTarget: true, HitPoint: point, Object: hit.Object}
	if buttons.WasPressed(p.selectButton) {
		// Subscribers see this tick's target through Last.
		p.last.Selected = true
		p.log.Debug("selected", "object", hit.Object, "x", point.X, "y", point.Y, "z", point.Z)
		p.dispatch(point)
	}
	return p.last
}

// dispatch calls every subscriber registered before the dispatch began,
// in registration order.
func (p *Interactor) dispatch(point common.Vec3) {
	p.dispatchBuf = append(p.dispatchBuf[:0], p.handlers...)
	p.dispatching = true
	defer func() {
		p.dispatching = false
		clear(p.dispatchBuf)
	}()
	for _, h := range p.dispatchBuf {
		h.fn(point)
	}
}

// OnSelect registers fn for selection events. Registering the same
// function twice delivers each selection to it twice.
func (p *Interactor) OnSelect(fn SelectFunc) Handle {
	if fn == nil {
		panic("pointer: nil select handler")
	}
	p.nextID++
	id := p.nextID
	p.handlers = append(p.handlers, selectHandler{id: id, fn: fn})
	return Handle{id: id, p: p}
}

// Subscribers returns the number of registered selection handlers.
func (p *Interactor) Subscribers() int {
	return len(p.handlers)
}

func (p *Interactor) removeHandler(id uint32) bool {
	for i := range p.handlers {
		if p.handlers[i].id == id {
			copy(p.handlers[i:], p.handlers[i+1:])
			p.handlers[len(p.handlers)-1] = selectHandler{}
			p.handlers = p.handlers[:len(p.handlers)-1]
			return true
		}
	}
	return false
}

// Apply reconfigures the interactor in place. Subscribers are kept.
func (p *Interactor) Apply(opts ...Option) {
	if p.dispatching {
		panic("pointer: Apply called during selection dispatch")
	}
	for _, opt := range opts {
		opt(p)
	}
}

// SetQuery swaps the world, e.g. after the scene is reloaded.
func (p *Interactor) SetQuery(q world.Query) {
	if q == nil {
		panic("pointer: nil world query")
	}
	p.query = q
}

func (p *Interactor) Marker() *Marker {
	return p.marker
}

// Last returns the result of the most recent Tick.
func (p *Interactor) Last() Result {
	return p.last
}

// Handle removes a registered selection handler.
type Handle struct {
	id uint32
	p  *Interactor
}

// Remove unregisters the handler. It reports whether the handler was
// still registered. A dispatch already in progress still reaches it.
func (h Handle) Remove() bool {
	if h.p == nil {
		return false
	}
	return h.p.removeHandler(h.id)
}
