package frame

// Context is the per-tick information passed to every system.
type Context struct {
	Tick uint64
	// DT is the tick length in seconds.
	DT float64
}

// System is updated once per tick.
type System interface {
	Update(ctx *Context)
}

// SystemFunc adapts a function to System.
type SystemFunc func(ctx *Context)

func (f SystemFunc) Update(ctx *Context) {
	f(ctx)
}

// Scheduler runs systems in the order they were added, once per tick.
// Systems later in the order see this tick's results of earlier ones.
type Scheduler struct {
	systems []System
	ctx     Context
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step advances one tick of dt seconds.
func (s *Scheduler) Step(dt float64) {
	s.ctx.Tick++
	s.ctx.DT = dt
	for _, system := range s.systems {
		system.Update(&s.ctx)
	}
}

// Tick returns the number of completed ticks.
func (s *Scheduler) Tick() uint64 {
	return s.ctx.Tick
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
