package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/johans2/YellowBelly/logger"
	"github.com/johans2/YellowBelly/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	device := flag.String("device", "", "controller device (keyboard or gamepad), overrides controls.yaml")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	level := spec.LogLevel
	if *debug {
		level = "debug"
	}
	lg := logger.Init(logger.Config{Level: level, Format: spec.LogFormat})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	title := spec.Title
	if title == "" {
		title = "YellowBelly"
	}
	ebiten.SetWindowTitle(title)
	if spec.TPS > 0 {
		ebiten.SetTPS(spec.TPS)
	}

	game, err := NewGame(GameOptions{
		Debug:  *debug,
		Device: *device,
		Spec:   spec,
		Logger: lg,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
