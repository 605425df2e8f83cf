package script

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/prefabs"
)

// Host is what a script can act on.
type Host interface {
	Position() common.Vec3
	Trigger(name string)
}

const selectDispatchScript = `
if __phase == "select" {
	on_select(__engine, __state, __point)
}
`

// Runtime runs a tengo selection script. The script defines
// on_select(engine, state, point); state persists across calls and
// reloads.
type Runtime struct {
	path     string
	host     Host
	log      *slog.Logger
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
}

// Load compiles the named prefab script.
func Load(path string, host Host, logger *slog.Logger) (*Runtime, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return New(path, src, host, logger)
}

// New compiles src under the given name.
func New(name string, src []byte, host Host, logger *slog.Logger) (*Runtime, error) {
	if host == nil {
		panic("script: nil host")
	}
	if logger == nil {
		logger = slog.Default()
	}
	rt := &Runtime{
		path:  name,
		host:  host,
		log:   logger.With("component", "script", "script", name),
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}
	rt.engine = rt.buildEngine()
	if err := rt.compile(src); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *Runtime) compile(src []byte) error {
	s := tengo.NewScript([]byte(string(src) + "\n" + selectDispatchScript))
	_ = s.Add("__phase", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__point", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", rt.path, err)
	}
	rt.compiled = compiled
	return nil
}

// Reload recompiles the script from the prefab directory. The previous
// program stays active if the new one does not compile.
func (rt *Runtime) Reload() error {
	src, err := prefabs.LoadScript(rt.path)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", rt.path, err)
	}
	return rt.compile(src)
}

func (rt *Runtime) Path() string {
	return rt.path
}

// Select runs on_select for point.
func (rt *Runtime) Select(point common.Vec3) error {
	if err := rt.compiled.Set("__phase", "select"); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", rt.engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	if err := rt.compiled.Set("__point", vecObject(point)); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("script: %s: %w", rt.path, err)
	}
	return nil
}

// OnSelect is Select with the error logged, for use as a selection
// subscriber.
func (rt *Runtime) OnSelect(point common.Vec3) {
	if err := rt.Select(point); err != nil {
		rt.log.Error("on_select failed", "err", err)
	}
}

// State returns a copy of the script's persistent state.
func (rt *Runtime) State() map[string]any {
	out, _ := objectToAny(rt.state).(map[string]any)
	return out
}

func (rt *Runtime) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["trigger"] = &tengo.UserFunction{Name: "trigger", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.host.Trigger(name)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		rt.log.Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vecObject(rt.host.Position()), nil
	}}

	values["distance"] = &tengo.UserFunction{Name: "distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Float{Value: 0}, nil
		}
		p, ok := objectToVec(args[0])
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: p.Sub(rt.host.Position()).Length()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vecObject(v common.Vec3) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: v.X},
		"y": &tengo.Float{Value: v.Y},
		"z": &tengo.Float{Value: v.Z},
	}}
}

func objectToVec(obj tengo.Object) (common.Vec3, bool) {
	m, ok := objectToAny(obj).(map[string]any)
	if !ok {
		return common.Vec3{}, false
	}
	var v common.Vec3
	v.X = asFloat(m["x"])
	v.Y = asFloat(m["y"])
	v.Z = asFloat(m["z"])
	return v, true
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
