package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "slopes", "level name in prefabs/levels (basename, .yaml optional)")
	controllerName := flag.String("controller", "controller.yaml", "controller spec in prefabs/")
	debug := flag.Bool("debug", true, "draw shapes and traced rays")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	scale := flag.Float64("scale", 40, "pixels per world unit")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("raycontroller sandbox")

	game, err := NewGame(Options{
		Level:      *levelName,
		Controller: *controllerName,
		Debug:      *debug,
		Watch:      *watch,
		Scale:      *scale,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
