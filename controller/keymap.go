package controller

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/johans2/YellowBelly/prefabs"
)

// keyMap is a KeyMapSpec resolved to ebiten keys.
type keyMap struct {
	click, touch, app     []ebiten.Key
	left, right, up, down []ebiten.Key
}

var defaultKeys = keyMap{
	click: []ebiten.Key{ebiten.KeySpace},
	// Space also counts as touch to avoid a click without touch.
	touch: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeySpace},
	app:   []ebiten.Key{ebiten.KeyBackspace},
	left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
}

// parseKeyMap resolves key names, falling back to the default layout for
// empty bindings.
func parseKeyMap(spec prefabs.KeyMapSpec) (keyMap, error) {
	var (
		km  keyMap
		err error
	)
	bind := func(action string, names []string, fallback []ebiten.Key) []ebiten.Key {
		if err != nil {
			return nil
		}
		if len(names) == 0 {
			return fallback
		}
		keys := make([]ebiten.Key, 0, len(names))
		for _, name := range names {
			var k ebiten.Key
			if uerr := k.UnmarshalText([]byte(name)); uerr != nil {
				err = fmt.Errorf("%w: %s: %q", ErrUnknownKey, action, name)
				return nil
			}
			keys = append(keys, k)
		}
		return keys
	}
	km.click = bind("click", spec.Click, defaultKeys.click)
	km.touch = bind("touch", spec.Touch, defaultKeys.touch)
	km.app = bind("app", spec.App, defaultKeys.app)
	km.left = bind("left", spec.Left, defaultKeys.left)
	km.right = bind("right", spec.Right, defaultKeys.right)
	km.up = bind("up", spec.Up, defaultKeys.up)
	km.down = bind("down", spec.Down, defaultKeys.down)
	if err != nil {
		return keyMap{}, err
	}
	return km, nil
}
