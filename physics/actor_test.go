package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/controller"
)

func testConfig() controller.Config {
	cfg := controller.DefaultConfig()
	cfg.SkinWidth = 0.01
	return cfg
}

func TestActorBoundsAndTeleport(t *testing.T) {
	a := NewActor(cp.Vector{X: 1, Y: 2}, 2, 4)
	if got := a.Bounds(); got != (cp.BB{L: 0, B: 0, R: 2, T: 4}) {
		t.Fatalf("unexpected bounds %v", got)
	}

	a.Translate(cp.Vector{X: 1, Y: -1})
	if got := a.Bounds(); got != (cp.BB{L: 1, B: -1, R: 3, T: 3}) {
		t.Fatalf("unexpected bounds after translate %v", got)
	}

	a.Teleport(cp.Vector{X: 10, Y: 10})
	if a.Position.X != 2 {
		t.Fatalf("teleport must wait for the next sync")
	}
	a.Offset = cp.Vector{Y: 2}
	a.SyncTransforms()
	if got := a.Bounds(); got != (cp.BB{L: 9, B: 10, R: 11, T: 14}) {
		t.Fatalf("unexpected bounds after teleport %v", got)
	}
	if f := a.Feet(); f.X != 10 || f.Y != 10 {
		t.Fatalf("unexpected feet %v", f)
	}

	var nilActor *Actor
	nilActor.Translate(cp.Vector{X: 1})
	nilActor.SyncTransforms()
	if nilActor.Bounds() != (cp.BB{}) {
		t.Fatalf("expected empty bounds for nil actor")
	}
}

func TestControllerOnChipmunkWorld(t *testing.T) {
	t.Run("lands_on_box", func(t *testing.T) {
		w := NewWorld()
		mustAdd(t, w.AddBox(cp.BB{L: -10, B: -1, R: 10, T: 0}, controller.LayerGround))
		a := NewActor(cp.Vector{X: 0.5, Y: 0.54}, 1, 1)
		c, err := controller.New(testConfig(), w, a)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		got := c.Move(cp.Vector{Y: -0.1})
		if !near(got.Y, -0.04) || !c.IsGrounded() {
			t.Fatalf("expected landing at -0.04, got %v %+v", got, c.State())
		}
		if !near(a.Bounds().B, 0) {
			t.Fatalf("expected actor on the floor, bottom at %v", a.Bounds().B)
		}

		for i := 0; i < 3; i++ {
			if got := c.Move(cp.Vector{Y: -0.1}); math.Abs(got.Y) > 1e-9 || !c.IsGrounded() {
				t.Fatalf("frame %d: expected to stay put, got %v", i, got)
			}
		}
	})

	t.Run("climbs_slope", func(t *testing.T) {
		w := NewWorld()
		mustAdd(t, w.AddBox(cp.BB{L: -10, B: -1, R: 1.05, T: 0}, controller.LayerDefault))
		mustAdd(t, w.AddSlopeAngle(cp.Vector{X: 1.05, Y: 0}, 10, 30, controller.LayerDefault))
		a := NewActor(cp.Vector{X: 0.5, Y: 0.5}, 1, 1)
		cfg := testConfig()
		c, err := controller.New(cfg, w, a)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		got := c.Move(cp.Vector{X: 0.1})
		f := cfg.SpeedCurve.Evaluate(30)
		if !near(got.X, 0.1*f) || !near(got.Y, 0.1*math.Tan(math.Pi/6)*f) {
			t.Fatalf("expected slope climb, got %v", got)
		}
		if !c.IsGrounded() {
			t.Fatalf("expected grounded on slope")
		}
	})

	t.Run("one_way_platform", func(t *testing.T) {
		w := NewWorld()
		mustAdd(t, w.AddPlatform(cp.Vector{X: 0, Y: 1.45}, 6, 0.1, 0, controller.LayerOneWay))
		a := NewActor(cp.Vector{X: 0, Y: 0.5}, 1, 1)
		c, err := controller.New(testConfig(), w, a)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if got := c.Move(cp.Vector{Y: 1}); got.Y != 1 {
			t.Fatalf("expected to jump up through the platform, got %v", got)
		}
		// Feet end up above the platform top at 1.5.
		if got := c.Move(cp.Vector{Y: 0.6}); got.Y != 0.6 {
			t.Fatalf("expected to keep rising, got %v", got)
		}
		got := c.Move(cp.Vector{Y: -0.3})
		if !near(got.Y, -0.1) || !c.IsGrounded() {
			t.Fatalf("expected to land on the platform top, got %v %+v", got, c.State())
		}
	})
}
