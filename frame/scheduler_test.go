package frame

import (
	"strings"
	"testing"
)

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var calls []string
	record := func(name string) System {
		return SystemFunc(func(ctx *Context) {
			calls = append(calls, name)
		})
	}

	s := NewScheduler(record("input"), nil, record("pointer"))
	s.Add(record("pet"))
	s.Add(nil)

	s.Step(0.5)
	s.Step(0.5)

	if got := strings.Join(calls, ","); got != "input,pointer,pet,input,pointer,pet" {
		t.Fatalf("calls = %s", got)
	}
	if s.Tick() != 2 {
		t.Fatalf("tick = %d, want 2", s.Tick())
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("systems = %d, want 3", len(s.Systems()))
	}
}

func TestSchedulerContext(t *testing.T) {
	var ticks []uint64
	var dts []float64
	s := NewScheduler(SystemFunc(func(ctx *Context) {
		ticks = append(ticks, ctx.Tick)
		dts = append(dts, ctx.DT)
	}))
	s.Step(0.1)
	s.Step(0.2)

	if ticks[0] != 1 || ticks[1] != 2 {
		t.Fatalf("ticks = %v", ticks)
	}
	if dts[0] != 0.1 || dts[1] != 0.2 {
		t.Fatalf("dts = %v", dts)
	}
}
