package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/milk9111/raycontroller/controller"
	"github.com/milk9111/raycontroller/prefabs"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// snapshot is what the copy action puts on the clipboard: the live tuning
// as a loadable controller spec plus the actor's collision state.
type snapshot struct {
	Level      string                 `yaml:"level"`
	Position   [2]float64             `yaml:"position"`
	Velocity   [2]float64             `yaml:"velocity"`
	State      stateSnapshot          `yaml:"state"`
	Controller prefabs.ControllerSpec `yaml:"controller"`
}

type stateSnapshot struct {
	Above          bool `yaml:"above"`
	Below          bool `yaml:"below"`
	Left           bool `yaml:"left"`
	Right          bool `yaml:"right"`
	WasGrounded    bool `yaml:"was_grounded"`
	BecameGrounded bool `yaml:"became_grounded"`
}

func newStateSnapshot(s controller.CollisionState) stateSnapshot {
	return stateSnapshot{
		Above:          s.Above,
		Below:          s.Below,
		Left:           s.Left,
		Right:          s.Right,
		WasGrounded:    s.WasGrounded,
		BecameGrounded: s.BecameGroundedThisFrame,
	}
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func (g *Game) snapshot() snapshot {
	pos := g.actor.Position
	return snapshot{
		Level:      g.level.Name,
		Position:   [2]float64{pos.X, pos.Y},
		Velocity:   [2]float64{g.velocity.X, g.velocity.Y},
		State:      newStateSnapshot(g.ctrl.State()),
		Controller: prefabs.SpecFromConfig(g.opts.Controller, g.ctrl.Config()),
	}
}

func (g *Game) copySnapshot() {
	out, err := yaml.Marshal(g.snapshot())
	if err != nil {
		log.Printf("sandbox: marshal snapshot: %v", err)
		g.status = "copy failed"
		return
	}

	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		// No clipboard on this display; the log still carries the snapshot.
		log.Printf("sandbox: clipboard unavailable: %v\n%s", clipboardErr, out)
		g.status = "clipboard unavailable, snapshot logged"
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	g.status = fmt.Sprintf("copied %d bytes", len(out))
}
