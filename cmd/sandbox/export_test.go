package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/prefabs"
	"gopkg.in/yaml.v3"
)

func newHeadlessGame(t *testing.T, level string) *Game {
	t.Helper()
	g := &Game{opts: Options{Controller: "controller.yaml", Scale: 40}}
	cfg, err := loadConfig(g.opts.Controller)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if err := g.loadLevel(level, cfg); err != nil {
		t.Fatalf("loadLevel: %v", err)
	}
	return g
}

func TestSnapshotRoundTripsController(t *testing.T) {
	g := newHeadlessGame(t, "flat")
	for i := 0; i < 120 && !g.ctrl.IsGrounded(); i++ {
		g.velocity.Y += g.gravity() * dt
		g.ctrl.Move(g.velocity.Mult(dt))
		if g.ctrl.IsGrounded() {
			g.velocity.Y = 0
		}
	}
	if !g.ctrl.IsGrounded() {
		t.Fatalf("actor never landed, feet at %v", g.actor.Feet())
	}

	out, err := yaml.Marshal(g.snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back struct {
		Level      string                 `yaml:"level"`
		State      stateSnapshot          `yaml:"state"`
		Controller prefabs.ControllerSpec `yaml:"controller"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if back.Level != g.level.Name {
		t.Fatalf("level = %q, want %q", back.Level, g.level.Name)
	}
	if !back.State.Below {
		t.Fatalf("state.below = false in\n%s", out)
	}

	cfg, err := back.Controller.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	want := g.ctrl.Config()
	if cfg.HorizontalRays != want.HorizontalRays || cfg.VerticalRays != want.VerticalRays ||
		cfg.SkinWidth != want.SkinWidth || cfg.MaxSlope != want.MaxSlope ||
		cfg.SolidMask != want.SolidMask || cfg.OneWayMask != want.OneWayMask {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestAdjustRaysKeepsConfigOnError(t *testing.T) {
	g := newHeadlessGame(t, "flat")
	before := g.ctrl.Config()

	g.adjustRays(1)
	if got := g.ctrl.Config().VerticalRays; got != before.VerticalRays+1 {
		t.Fatalf("vertical rays = %d, want %d", got, before.VerticalRays+1)
	}

	for i := 0; i < 100; i++ {
		g.adjustRays(-1)
	}
	if got := g.ctrl.Config().HorizontalRays; got < 2 {
		t.Fatalf("horizontal rays = %d, want at least 2", got)
	}
	if g.status == "" {
		t.Fatalf("expected a status after a rejected change")
	}
}

func TestRespawnAndNextLevel(t *testing.T) {
	g := newHeadlessGame(t, "flat")
	levels, err := prefabs.Levels()
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	g.levels = levels

	g.velocity = cp.Vector{X: 3, Y: -4}
	g.respawn()
	g.ctrl.Move(cp.Vector{})
	if !g.velocity.Equal(cp.Vector{}) {
		t.Fatalf("velocity = %v after respawn", g.velocity)
	}
	if want := g.level.Spawn.Vector(); !g.actor.Position.Equal(want) {
		t.Fatalf("position = %v, want spawn %v", g.actor.Position, want)
	}

	start := g.opts.Level
	g.nextLevel()
	if len(levels) > 1 && g.opts.Level == start {
		t.Fatalf("level stayed %q, have %v", start, levels)
	}
}
