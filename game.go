package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/controller"
	"github.com/johans2/YellowBelly/frame"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/pet"
	"github.com/johans2/YellowBelly/pointer"
	"github.com/johans2/YellowBelly/prefabs"
	"github.com/johans2/YellowBelly/script"
	"github.com/johans2/YellowBelly/world"
	"golang.design/x/clipboard"
)

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool
	log    *slog.Logger
	tps    int

	deviceOverride string

	scheduler  *frame.Scheduler
	input      *input.System
	interactor *pointer.Interactor
	pointer    *pointer.System
	scene      *world.Scene
	pet        *pet.Pet
	petScript  *script.Runtime
	view       view

	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	clipboard bool

	lastSelection common.Vec3
	selections    int
}

type GameOptions struct {
	Debug  bool
	Device string
	Spec   *prefabs.GameSpec
	Logger *slog.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		debug:          opts.Debug,
		log:            opts.Logger,
		tps:            ebiten.DefaultTPS,
		view:           newView(opts.Spec),
		deviceOverride: opts.Device,
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if opts.Spec != nil && opts.Spec.TPS > 0 {
		g.tps = opts.Spec.TPS
	}

	controls, err := prefabs.LoadControlsSpec()
	if err != nil {
		return nil, err
	}
	if g.deviceOverride != "" {
		controls.Device = g.deviceOverride
	}
	device, err := controller.NewDevice(controls)
	if err != nil {
		return nil, err
	}
	g.input = input.NewSystem(device, g.log)
	g.applyControls(controls)

	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	if g.scene, err = world.FromSpec(sceneSpec); err != nil {
		return nil, err
	}

	pointerSpec, err := prefabs.LoadPointerSpec()
	if err != nil {
		return nil, err
	}
	pointerOpts, err := pointer.OptionsFromSpec(pointerSpec)
	if err != nil {
		return nil, err
	}
	g.interactor = pointer.NewInteractor(g.scene, append(pointerOpts, pointer.WithLogger(g.log))...)
	g.pointer = pointer.NewSystem(g.interactor, g.input, pointerSpec.Origin)

	petSpec, err := prefabs.LoadPetSpec()
	if err != nil {
		return nil, err
	}
	g.pet = pet.New(petSpec, g.log)
	g.view.petColor = petSpec.Color.Or(g.view.petColor)
	if err := g.loadPetScript(petSpec.Script); err != nil {
		return nil, err
	}

	g.interactor.OnSelect(g.pet.MoveTo)
	g.interactor.OnSelect(g.runPetScript)
	g.interactor.OnSelect(g.recordSelection)

	g.scheduler = frame.NewScheduler(
		g.input,
		g.pointer,
		g.pet,
		frame.SystemFunc(func(ctx *frame.Context) { g.interactor.Marker().Update(ctx) }),
	)

	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		g.log.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboard = true
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts"); err != nil {
		g.log.Warn("prefab hot reload disabled", "err", err)
	} else {
		g.watcher = w
	}

	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleDebugKeys()
	g.applyReloads()

	if g.paused {
		g.pauseUI.Update()
	}

	g.scheduler.Step(1 / float64(g.tps))
	return nil
}

func (g *Game) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.input.ToggleForcedConnected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.input.SetTouchAsClick(!g.input.TouchAsClick())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		g.copyLastSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
}

// setPaused shows or hides the pause overlay. Nothing can be selected
// while paused.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.input.DisableInteraction()
	} else {
		g.input.EnableInteraction()
	}
}

func (g *Game) recordSelection(p common.Vec3) {
	g.lastSelection = p
	g.selections++
	g.log.Info("selection", "x", p.X, "y", p.Y, "z", p.Z, "object", g.interactor.Last().Object)
}

func (g *Game) runPetScript(p common.Vec3) {
	if g.petScript != nil {
		g.petScript.OnSelect(p)
	}
}

func (g *Game) loadPetScript(path string) error {
	if path == "" {
		g.petScript = nil
		return nil
	}
	rt, err := script.Load(path, g.pet, g.log)
	if err != nil {
		return err
	}
	g.petScript = rt
	return nil
}

func (g *Game) copyLastSelection() {
	if !g.clipboard || g.selections == 0 {
		return
	}
	p := g.lastSelection
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%.3f, %.3f, %.3f", p.X, p.Y, p.Z)))
	g.log.Info("copied selection to clipboard")
}

func (g *Game) applyControls(spec *prefabs.ControlsSpec) {
	g.input.SetTouchAsClick(spec.TouchAsClick)
	if spec.ForceConnected {
		g.input.ForceStatus(input.StatusConnected)
	} else {
		g.input.ClearForcedStatus()
	}
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Pending() {
		if err := g.reload(change); err != nil {
			g.log.Error("reload failed", "file", change.Name, "err", err)
			continue
		}
		g.log.Info("reloaded", "file", change.Name)
	}
}

var errReloadUnsupported = errors.New("restart to apply")

func (g *Game) reload(change prefabs.Change) error {
	if change.Kind == prefabs.ChangeScript {
		if g.petScript == nil || prefabs.Base(g.petScript.Path()) != change.Name {
			return nil
		}
		return g.petScript.Reload()
	}

	switch change.Name {
	case prefabs.SceneFile:
		spec, err := prefabs.LoadSceneSpec()
		if err != nil {
			return err
		}
		scene, err := world.FromSpec(spec)
		if err != nil {
			return err
		}
		g.scene = scene
		g.interactor.SetQuery(scene)
	case prefabs.PointerFile:
		spec, err := prefabs.LoadPointerSpec()
		if err != nil {
			return err
		}
		opts, err := pointer.OptionsFromSpec(spec)
		if err != nil {
			return err
		}
		g.interactor.Apply(opts...)
		g.pointer.Origin = spec.Origin
	case prefabs.PetFile:
		spec, err := prefabs.LoadPetSpec()
		if err != nil {
			return err
		}
		g.pet.Apply(spec)
		g.view.petColor = spec.Color.Or(g.view.petColor)
		if g.petScript == nil || g.petScript.Path() != spec.Script {
			return g.loadPetScript(spec.Script)
		}
	case prefabs.ControlsFile:
		spec, err := prefabs.LoadControlsSpec()
		if err != nil {
			return err
		}
		if g.deviceOverride != "" {
			spec.Device = g.deviceOverride
		}
		device, err := controller.NewDevice(spec)
		if err != nil {
			return err
		}
		g.input.SetDevice(device)
		g.applyControls(spec)
	case prefabs.GameFile:
		return errReloadUnsupported
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.drawScene(screen, g.scene)
	if g.debug {
		g.view.drawFloorShapes(screen, g.scene.Floor)
	}
	g.view.drawPet(screen, g.pet)
	g.view.drawPointer(screen, g.pointer.Ray(), g.interactor)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	} else {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f\n", g.frames, ebiten.ActualFPS())
	o := g.input.Orientation()
	fmt.Fprintf(&b, "device: %s  status: %s  yaw: %.1f  pitch: %.1f\n", g.input.Device().Name(), g.input.Status(), o.Yaw, o.Pitch)
	fmt.Fprintf(&b, "touch as click: %t  interaction: %t\n", g.input.TouchAsClick(), g.input.InteractionEnabled())
	last := g.interactor.Last()
	if last.HasTarget {
		fmt.Fprintf(&b, "target: %s (%.2f, %.2f, %.2f)\n", last.Object, last.HitPoint.X, last.HitPoint.Y, last.HitPoint.Z)
	} else {
		b.WriteString("target: none\n")
	}
	fmt.Fprintf(&b, "pet: %s  mouth: %d  selections: %d\n", g.pet.State(), g.pet.Triggered(pet.TriggerMouth), g.selections)
	b.WriteString("[P] pause  [F11] force connected  [F9] touch as click  [F8] copy selection  [F3] debug")
	return b.String()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
