package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/johans2/YellowBelly/common"
	"github.com/johans2/YellowBelly/frame"
	"github.com/johans2/YellowBelly/input"
	"github.com/johans2/YellowBelly/logger"
	"github.com/johans2/YellowBelly/pet"
	"github.com/johans2/YellowBelly/pointer"
	"github.com/johans2/YellowBelly/prefabs"
	"github.com/johans2/YellowBelly/world"
)

// replay feeds a recorded controller session through the input, pointer
// and pet systems without a window and prints every selection.
func main() {
	sessionPath := flag.String("session", "", "session yaml file (required)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "prefab directory overriding the embedded specs")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	if *sessionPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	prefabs.Dir = *prefabDir

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.Init(logger.Config{Level: level, Format: "console"})

	session, err := LoadSession(*sessionPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := Replay(session, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// Replay runs session against the prefab scene and writes one line per
// selection, then a summary.
func Replay(session *Session, out io.Writer) error {
	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return err
	}
	scene, err := world.FromSpec(sceneSpec)
	if err != nil {
		return err
	}
	pointerSpec, err := prefabs.LoadPointerSpec()
	if err != nil {
		return err
	}
	opts, err := pointer.OptionsFromSpec(pointerSpec)
	if err != nil {
		return err
	}
	petSpec, err := prefabs.LoadPetSpec()
	if err != nil {
		return err
	}

	origin := pointerSpec.Origin
	if session.Origin != nil {
		origin = *session.Origin
	}

	device := input.NewScripted(session.Samples()...)
	inputs := input.NewSystem(device, nil)
	interactor := pointer.NewInteractor(scene, opts...)
	pointers := pointer.NewSystem(interactor, inputs, origin)
	p := pet.New(petSpec, nil)

	scheduler := frame.NewScheduler(inputs, pointers, p)

	selections := 0
	interactor.OnSelect(p.MoveTo)
	interactor.OnSelect(func(pt common.Vec3) {
		selections++
		fmt.Fprintf(out, "tick %d: selected %s at (%.3f, %.3f, %.3f)\n",
			scheduler.Tick(), interactor.Last().Object, pt.X, pt.Y, pt.Z)
	})

	for !device.Done() {
		scheduler.Step(session.DT)
	}

	pos := p.Position()
	fmt.Fprintf(out, "%d ticks, %d selections, pet %s at (%.3f, %.3f, %.3f)\n",
		scheduler.Tick(), selections, p.State(), pos.X, pos.Y, pos.Z)
	return nil
}
