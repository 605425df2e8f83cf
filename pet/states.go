package pet

// State is one state of the pet's behaviour machine.
type State interface {
	Name() string
	Enter(p *Pet)
	Exit(p *Pet)
	Update(p *Pet, dt float64)
}

// State singletons (avoid allocations on transitions).
var (
	stateIdle State = &idleState{}
	stateMove State = &moveState{}
)

type idleState struct{}

type moveState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(p *Pet) {
	p.idleTime = 0
}
func (idleState) Exit(p *Pet) {}
func (idleState) Update(p *Pet, dt float64) {
	if p.hasPath {
		p.changeState(stateMove)
		return
	}
	p.idleTime += dt
	if p.idleTime > p.checkInterval {
		p.idleTime = 0
		if p.roll() > p.mouthChance {
			p.Trigger(TriggerMouth)
		}
	}
}

func (moveState) Name() string { return "move" }
func (moveState) Enter(p *Pet) {}
func (moveState) Exit(p *Pet)  {}
func (moveState) Update(p *Pet, dt float64) {
	if p.step(dt) {
		p.changeState(stateIdle)
	}
}
