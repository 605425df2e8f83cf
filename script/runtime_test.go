package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/logger"
	"github.com/johans2/YellowBelly/prefabs"
)

type fakeHost struct {
	pos      common.Vec3
	triggers []string
}

func (h *fakeHost) Position() common.Vec3 { return h.pos }
func (h *fakeHost) Trigger(name string)   { h.triggers = append(h.triggers, name) }

func TestPetScript(t *testing.T) {
	host := &fakeHost{}
	rt, err := Load("scripts/pet.tengo", host, logger.Discard())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rt.OnSelect(common.Vec3{X: 1})
	if len(host.triggers) != 0 {
		t.Fatalf("near selection triggered %v", host.triggers)
	}

	if err := rt.Select(common.Vec3{Z: -10}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(host.triggers) != 1 || host.triggers[0] != "bark" {
		t.Fatalf("far selection triggers = %v", host.triggers)
	}

	for i := 0; i < 3; i++ {
		rt.OnSelect(common.Vec3{})
	}
	if host.triggers[len(host.triggers)-1] != "mouth" {
		t.Fatalf("fifth selection should open the mouth, got %v", host.triggers)
	}
	if got := rt.State()["selections"]; got != 5 {
		t.Fatalf("selections = %v, want 5", got)
	}
}

func TestEngineFunctions(t *testing.T) {
	src := []byte(`
on_select := func(engine, state, point) {
	pos := engine.position()
	state.d = engine.distance(point)
	state.px = pos.x
	state.ok = engine.trigger("wag")
	state.blank = engine.trigger("  ")
}
`)
	host := &fakeHost{pos: common.Vec3{X: 3}}
	rt, err := New("inline", src, host, logger.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rt.Select(common.Vec3{X: 3, Z: 4}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	state := rt.State()
	if state["d"] != 4.0 || state["px"] != 3.0 {
		t.Fatalf("state = %v", state)
	}
	if state["ok"] != true || state["blank"] != false {
		t.Fatalf("trigger results = %v, %v", state["ok"], state["blank"])
	}
	if len(host.triggers) != 1 || host.triggers[0] != "wag" {
		t.Fatalf("triggers = %v", host.triggers)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := map[string]string{
		"missing_on_select": `x := 1`,
		"syntax":            `on_select := func(engine, state, point) {`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(name, []byte(src), &fakeHost{}, logger.Discard()); err == nil {
				t.Fatal("expected compile error")
			}
		})
	}
}

func TestRuntimeErrorIsReturned(t *testing.T) {
	rt, err := New("boom", []byte(`on_select := func(engine, state, point) { zero := 0; state.x = 1 / zero }`), &fakeHost{}, logger.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rt.Select(common.Vec3{}); err == nil {
		t.Fatal("expected runtime error")
	}
	// OnSelect only logs.
	rt.OnSelect(common.Vec3{})
}

func TestReloadKeepsState(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	path := filepath.Join(dir, "scripts", "count.tengo")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(src string) {
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(`on_select := func(engine, state, point) { state.n = is_undefined(state.n) ? 1 : state.n + 1 }`)
	rt, err := Load("scripts/count.tengo", &fakeHost{}, logger.Discard())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rt.OnSelect(common.Vec3{})

	write(`on_select := func(engine, state, point) { state.n = state.n + 10 }`)
	if err := rt.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	rt.OnSelect(common.Vec3{})
	if got := rt.State()["n"]; got != 11 {
		t.Fatalf("n = %v, want 11", got)
	}

	write(`on_select := func(`)
	if err := rt.Reload(); err == nil {
		t.Fatal("expected compile error")
	}
	rt.OnSelect(common.Vec3{})
	if got := rt.State()["n"]; got != 21 {
		t.Fatalf("previous program should stay active, n = %v", got)
	}
}

func TestNilHostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New("x", []byte(`on_select := func(e, s, p) {}`), nil, nil)
}
