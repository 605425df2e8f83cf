package world

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLayer = errors.New("world: unknown layer")

// LayerMask is a set of layer bits. A ray query hits an object only when
// the object's layer bit is in the query mask.
type LayerMask uint32

const (
	LayerDefault       LayerMask = 1 << 0
	LayerIgnoreRaycast LayerMask = 1 << 2
	LayerInteraction   LayerMask = 1 << 8

	LayerAll LayerMask = ^LayerMask(0)
)

var layerNames = map[string]LayerMask{
	"default":        LayerDefault,
	"ignore_raycast": LayerIgnoreRaycast,
	"interaction":    LayerInteraction,
}

// ParseLayer resolves a single layer name. An empty name is the default layer.
func ParseLayer(name string) (LayerMask, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LayerDefault, nil
	}
	if l, ok := layerNames[name]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// ParseMask combines layer names into a mask. No names means the
// interaction layer.
func ParseMask(names []string) (LayerMask, error) {
	if len(names) == 0 {
		return LayerInteraction, nil
	}
	var mask LayerMask
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return 0, err
		}
		mask |= l
	}
	return mask, nil
}

func (m LayerMask) Has(l LayerMask) bool {
	return m&l != 0
}
