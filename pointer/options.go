package pointer

import (
	"fmt"
	"log/slog"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/prefabs"
	"github.com/johans2/YellowBelly/world"
)

type Option func(*Interactor)

// WithLayers restricts the ray to the given layers.
func WithLayers(mask world.LayerMask) Option {
	return func(p *Interactor) { p.mask = mask }
}

// WithSelectButton sets the button whose press dispatches a selection.
func WithSelectButton(b input.Button) Option {
	return func(p *Interactor) { p.selectButton = b }
}

// WithSurfaceOffset lifts hit points off the surface along its normal.
func WithSurfaceOffset(offset float64) Option {
	return func(p *Interactor) { p.surfaceOffset = offset }
}

// WithMaxDistance limits the ray length. Zero means unlimited.
func WithMaxDistance(d float64) Option {
	return func(p *Interactor) { p.maxDistance = d }
}

func WithMarker(m *Marker) Option {
	return func(p *Interactor) {
		if m != nil {
			p.marker = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Interactor) {
		if l != nil {
			p.log = l.With("component", "pointer")
		}
	}
}

// OptionsFromSpec translates the pointer prefab into options.
func OptionsFromSpec(spec *prefabs.PointerSpec) ([]Option, error) {
	if spec == nil {
		return nil, nil
	}
	opts := []Option{
		WithSurfaceOffset(spec.SurfaceOffset),
		WithMaxDistance(spec.MaxDistance),
	}

	mask, err := world.ParseMask(spec.Layers)
	if err != nil {
		return nil, fmt.Errorf("pointer: %w", err)
	}
	opts = append(opts, WithLayers(mask))

	if spec.Select != "" {
		b, err := input.ParseButton(spec.Select)
		if err != nil {
			return nil, fmt.Errorf("pointer: %w", err)
		}
		opts = append(opts, WithSelectButton(b))
	}

	facing := spec.Facing
	if facing.IsZero() {
		facing = common.Up
	}
	opts = append(opts, WithMarker(NewMarker(spec.SmoothSeconds, facing)))
	return opts, nil
}
