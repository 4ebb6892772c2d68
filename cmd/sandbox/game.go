package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/controller"
	"github.com/milk9111/raycontroller/physics"
	"github.com/milk9111/raycontroller/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	dt             = 1.0 / 60.0
	defaultGravity = -30.0
	moveSpeed      = 7.0
	jumpSpeed      = 12.0
	dropFrames     = 12
	killDepth      = -50.0
)

var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorActor      = color.RGBA{255, 255, 255, 255}
	colorGrounded   = color.RGBA{80, 220, 255, 255}
	colorBlocked    = color.RGBA{255, 170, 60, 255}
)

type Options struct {
	Level      string
	Controller string
	Debug      bool
	Watch      bool
	Scale      float64
}

type Game struct {
	opts Options

	level  prefabs.LevelSpec
	world  *physics.World
	actor  *physics.Actor
	ctrl   *controller.Controller
	rays   controller.RayRecorder
	levels []string

	velocity   cp.Vector
	dropTimer  int
	ignoreDrop bool
	frames     int

	camera  physics.Camera
	ui      *panelUI
	watcher *prefabs.Watcher
	status  string
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}
	g.camera = physics.Camera{Scale: opts.Scale, ScreenHeight: baseHeight}

	levels, err := prefabs.Levels()
	if err != nil {
		return nil, err
	}
	g.levels = levels

	cfg, err := loadConfig(opts.Controller)
	if err != nil {
		return nil, err
	}
	if err := g.loadLevel(opts.Level, cfg); err != nil {
		return nil, err
	}

	if opts.Watch {
		if dirs := prefabs.WatchDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Printf("sandbox: watch disabled: %v", err)
			} else {
				g.watcher = w
				log.Printf("sandbox: watching %v", dirs)
			}
		} else {
			log.Printf("sandbox: no prefabs directory under the working directory, watch disabled")
		}
	}

	g.ui = newPanelUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func loadConfig(name string) (controller.Config, error) {
	spec, err := prefabs.LoadControllerSpec(name)
	if err != nil {
		return controller.Config{}, err
	}
	return spec.Config()
}

// loadLevel swaps in a new world and actor, keeping cfg for the new
// controller.
func (g *Game) loadLevel(name string, cfg controller.Config) error {
	spec, world, actor, err := prefabs.LoadLevel(name)
	if err != nil {
		return err
	}
	ctrl, err := controller.New(cfg, world, actor)
	if err != nil {
		return fmt.Errorf("sandbox: level %s: %w", name, err)
	}
	ctrl.SetTrace(g.rays.Record)

	g.level, g.world, g.actor, g.ctrl = spec, world, actor, ctrl
	g.opts.Level = name
	g.velocity = cp.Vector{}
	g.status = fmt.Sprintf("loaded %s", spec.Name)
	log.Printf("sandbox: loaded level %q (%d shapes)", spec.Name, len(world.Shapes()))
	return nil
}

func (g *Game) gravity() float64 {
	if g.level.Gravity != 0 {
		return g.level.Gravity
	}
	return defaultGravity
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.handleKeys()
	g.step()
	g.follow()
	g.ui.Update()
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.nextLevel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.toggleOneWay()
	}
}

// step integrates velocity and hands the displacement to the controller.
func (g *Game) step() {
	input := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		input--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		input++
	}
	g.velocity.X = input * moveSpeed

	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	if g.ctrl.IsGrounded() && jump {
		if down {
			g.dropTimer = dropFrames
		} else {
			g.velocity.Y = jumpSpeed
		}
	}

	if g.dropTimer > 0 {
		g.dropTimer--
	}
	g.ctrl.SetIgnoreOneWay(g.ignoreDrop || g.dropTimer > 0)

	g.velocity.Y += g.gravity() * dt
	g.rays.Reset()
	g.ctrl.Move(g.velocity.Mult(dt))

	if g.ctrl.IsGrounded() || g.ctrl.HittingAbove() {
		g.velocity.Y = 0
	}
	g.recover()
}

// recover respawns a body that fell out of the level or ended up with its
// centre inside solid geometry.
func (g *Game) recover() {
	if g.actor.Position.Y < killDepth {
		g.respawn()
		return
	}
	solid := g.ctrl.Config().SolidMask
	if info, ok := g.world.Inside(g.actor.Position, solid); ok {
		log.Printf("sandbox: body stuck in %s shape at %v, respawning", prefabs.LayerName(info.Layer), g.actor.Position)
		g.respawn()
	}
}

func (g *Game) follow() {
	feet := g.actor.Feet()
	scale := g.camera.Scale
	if scale <= 0 {
		scale = 1
	}
	g.camera.X = feet.X - baseWidth/2/scale
	g.camera.Y = feet.Y - baseHeight/3/scale
}

func (g *Game) respawn() {
	g.actor.Teleport(g.level.Spawn.Vector())
	g.velocity = cp.Vector{}
	g.status = "respawned"
}

func (g *Game) nextLevel() {
	if len(g.levels) == 0 {
		return
	}
	current := prefabs.LevelPath(g.opts.Level)
	next := g.levels[0]
	for i, l := range g.levels {
		if l == current {
			next = g.levels[(i+1)%len(g.levels)]
			break
		}
	}
	if err := g.loadLevel(next, g.ctrl.Config()); err != nil {
		log.Printf("sandbox: %v", err)
		g.status = err.Error()
	}
}

func (g *Game) toggleDebug() {
	g.opts.Debug = !g.opts.Debug
}

func (g *Game) toggleOneWay() {
	g.ignoreDrop = !g.ignoreDrop
}

// adjustRays changes the ray counts by delta, keeping the old config when
// the result is out of range.
func (g *Game) adjustRays(delta int) {
	cfg := g.ctrl.Config()
	cfg.HorizontalRays += delta
	cfg.VerticalRays += delta
	if err := g.ctrl.SetConfig(cfg); err != nil {
		g.status = err.Error()
		return
	}
	g.status = fmt.Sprintf("rays %d/%d", cfg.HorizontalRays, cfg.VerticalRays)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("sandbox: watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	switch kind := prefabs.Classify(path); kind {
	case prefabs.ChangeController, prefabs.ChangeScript:
		if kind == prefabs.ChangeController && filepath.Base(path) != filepath.Base(g.opts.Controller) {
			return
		}
		cfg, err := loadConfig(g.opts.Controller)
		if err == nil {
			cfg.IgnoreOneWay = g.ctrl.Config().IgnoreOneWay
			err = g.ctrl.SetConfig(cfg)
		}
		if err != nil {
			log.Printf("sandbox: reload %s: %v", path, err)
			g.status = "reload failed"
			return
		}
		log.Printf("sandbox: reloaded controller from %s", path)
		g.status = "controller reloaded"
		if mod, ok := prefabs.ModTime(g.opts.Controller); ok {
			g.status += " (" + mod.Format("15:04:05") + ")"
		}
	case prefabs.ChangeLevel:
		if filepath.Base(path) != filepath.Base(prefabs.LevelPath(g.opts.Level)) {
			return
		}
		if err := g.loadLevel(g.opts.Level, g.ctrl.Config()); err != nil {
			log.Printf("sandbox: reload %s: %v", path, err)
			g.status = "reload failed"
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cfg := g.ctrl.Config()
	physics.DrawWorld(screen, g.world, g.camera, cfg.OneWayMask)
	clr := colorActor
	switch s := g.ctrl.State(); {
	case s.Below:
		clr = colorGrounded
	case s.HasCollision():
		clr = colorBlocked
	}
	physics.DrawBounds(screen, g.actor.Bounds(), g.camera, clr)
	if g.opts.Debug {
		physics.DrawRays(screen, g.rays.Rays, g.camera)
	}

	s := g.ctrl.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS: %.1f  level: %s\nbelow=%v above=%v left=%v right=%v\nwas=%v became=%v  rays=%d\n%s",
		ebiten.ActualFPS(), g.level.Name,
		s.Below, s.Above, s.Left, s.Right,
		s.WasGrounded, s.BecameGroundedThisFrame, len(g.rays.Rays),
		g.status,
	), 10, 10)

	g.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
