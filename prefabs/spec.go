package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/johans2/YellowBelly/common"
	"gopkg.in/yaml.v3"
)

const (
	GameFile     = "game.yaml"
	ControlsFile = "controls.yaml"
	PointerFile  = "pointer.yaml"
	SceneFile    = "scene.yaml"
	PetFile      = "pet.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type validator interface {
	Validate() error
}

// LoadSpec reads filename and decodes it into T. Specs with a Validate
// method are checked before being returned.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// DecodeSpec decodes yaml data into T and validates it.
func DecodeSpec[T any](data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("unmarshal: %w", err)
	}
	if v, ok := any(&spec).(validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	return spec, nil
}

type GameSpec struct {
	Title     string `yaml:"title"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	TPS       int    `yaml:"tps"`
	// PixelsPerMeter scales the top-down debug view.
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
}

func (s *GameSpec) Validate() error {
	if s.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidSpec, s.TPS)
	}
	if s.PixelsPerMeter < 0 {
		return fmt.Errorf("%w: pixels_per_meter %v", ErrInvalidSpec, s.PixelsPerMeter)
	}
	return nil
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ControlsSpec struct {
	// Device is "keyboard" or "gamepad".
	Device        string  `yaml:"device"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	// ConnectPolls is how many polls a newly found gamepad reports connecting.
	ConnectPolls   int        `yaml:"connect_polls"`
	TouchAsClick   bool       `yaml:"touch_as_click"`
	ForceConnected bool       `yaml:"force_connected"`
	Keys           KeyMapSpec `yaml:"keys"`
}

func (s *ControlsSpec) Validate() error {
	if s.RotationSpeed < 0 {
		return fmt.Errorf("%w: rotation_speed %v", ErrInvalidSpec, s.RotationSpeed)
	}
	if s.ConnectPolls < 0 {
		return fmt.Errorf("%w: connect_polls %d", ErrInvalidSpec, s.ConnectPolls)
	}
	return nil
}

func LoadControlsSpec() (*ControlsSpec, error) {
	spec, err := LoadSpec[ControlsSpec](ControlsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// KeyMapSpec maps controller buttons and rotation to keyboard keys, by
// ebiten key name (Space, ArrowLeft, ControlLeft, ...). Empty bindings use
// the default layout.
type KeyMapSpec struct {
	Click []string `yaml:"click"`
	Touch []string `yaml:"touch"`
	App   []string `yaml:"app"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
}

type PointerSpec struct {
	// Select names the button that confirms a selection.
	Select string `yaml:"select"`
	// Layers are the layer names the pointer ray may hit.
	Layers        []string    `yaml:"layers"`
	SurfaceOffset float64     `yaml:"surface_offset"`
	MaxDistance   float64     `yaml:"max_distance"`
	SmoothSeconds float64     `yaml:"smooth_seconds"`
	Origin        common.Vec3 `yaml:"origin"`
	// Facing is the fixed direction the reticle faces. Defaults to up.
	Facing common.Vec3 `yaml:"facing"`
}

func (s *PointerSpec) Validate() error {
	if s.MaxDistance < 0 {
		return fmt.Errorf("%w: max_distance %v", ErrInvalidSpec, s.MaxDistance)
	}
	if s.SmoothSeconds < 0 {
		return fmt.Errorf("%w: smooth_seconds %v", ErrInvalidSpec, s.SmoothSeconds)
	}
	return nil
}

func LoadPointerSpec() (*PointerSpec, error) {
	spec, err := LoadSpec[PointerSpec](PointerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SceneSpec struct {
	Name   string      `yaml:"name"`
	Floors []FloorSpec `yaml:"floors"`
	Props  []PropSpec  `yaml:"props"`
}

// FloorSpec is a walkable region on a horizontal plane. Points are (x, z)
// pairs in world meters; a convex polygon or a rect may be given.
type FloorSpec struct {
	Name    string      `yaml:"name"`
	Layer   string      `yaml:"layer"`
	Height  float64     `yaml:"height"`
	Rect    *RectSpec   `yaml:"rect"`
	Polygon []PointSpec `yaml:"polygon"`
	Color   *YAMLColor  `yaml:"color"`
}

type RectSpec struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// PropSpec is a solid object in the scene: a box or a sphere.
type PropSpec struct {
	Name   string      `yaml:"name"`
	Layer  string      `yaml:"layer"`
	Box    *BoxSpec    `yaml:"box"`
	Sphere *SphereSpec `yaml:"sphere"`
	Color  *YAMLColor  `yaml:"color"`
}

type BoxSpec struct {
	Min common.Vec3 `yaml:"min"`
	Max common.Vec3 `yaml:"max"`
}

type SphereSpec struct {
	Center common.Vec3 `yaml:"center"`
	Radius float64     `yaml:"radius"`
}

func (s *SceneSpec) Validate() error {
	for i, f := range s.Floors {
		if f.Rect == nil && len(f.Polygon) == 0 {
			return fmt.Errorf("%w: floor %d (%s) has no shape", ErrInvalidSpec, i, f.Name)
		}
		if f.Rect != nil && (f.Rect.Width <= 0 || f.Rect.Depth <= 0) {
			return fmt.Errorf("%w: floor %d (%s) has empty rect", ErrInvalidSpec, i, f.Name)
		}
		if f.Rect == nil && len(f.Polygon) < 3 {
			return fmt.Errorf("%w: floor %d (%s) polygon needs 3 points", ErrInvalidSpec, i, f.Name)
		}
	}
	for i, p := range s.Props {
		if (p.Box == nil) == (p.Sphere == nil) {
			return fmt.Errorf("%w: prop %d (%s) needs exactly one of box or sphere", ErrInvalidSpec, i, p.Name)
		}
		if p.Sphere != nil && p.Sphere.Radius <= 0 {
			return fmt.Errorf("%w: prop %d (%s) has radius %v", ErrInvalidSpec, i, p.Name, p.Sphere.Radius)
		}
	}
	return nil
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PetSpec struct {
	Name         string      `yaml:"name"`
	Start        common.Vec3 `yaml:"start"`
	Speed        float64     `yaml:"speed"`
	ArriveRadius float64     `yaml:"arrive_radius"`
	// CheckInterval is the idle time in seconds between mouth rolls.
	CheckInterval float64 `yaml:"check_interval"`
	// MouthChance is the roll (0-100) that must be exceeded to trigger.
	// Unset keeps the default.
	MouthChance *int       `yaml:"mouth_chance"`
	Script      string     `yaml:"script"`
	Color       *YAMLColor `yaml:"color"`
}

func (s *PetSpec) Validate() error {
	if s.Speed < 0 {
		return fmt.Errorf("%w: speed %v", ErrInvalidSpec, s.Speed)
	}
	if s.MouthChance != nil && (*s.MouthChance < 0 || *s.MouthChance > 100) {
		return fmt.Errorf("%w: mouth_chance %d outside 0-100", ErrInvalidSpec, *s.MouthChance)
	}
	return nil
}

func LoadPetSpec() (*PetSpec, error) {
	spec, err := LoadSpec[PetSpec](PetFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
