package controller

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Controller resolves the per-frame displacement of an axis-aligned body
// against the world using ray sweeps. A Controller is not safe for
// concurrent use; one Move must finish before the next starts.
type Controller struct {
	cfg       Config
	raycaster Raycaster
	body      Body
	state     CollisionState
	trace     TraceFunc
}

func New(cfg Config, rc Raycaster, body Body) (*Controller, error) {
	if rc == nil {
		return nil, ErrNilRaycaster
	}
	if body == nil {
		return nil, ErrNilBody
	}
	body.SyncTransforms()
	if err := cfg.ValidateFor(body.Bounds()); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg, raycaster: rc, body: body}, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning between moves. An invalid config is rejected
// and the previous one kept.
func (c *Controller) SetConfig(cfg Config) error {
	c.body.SyncTransforms()
	if err := cfg.ValidateFor(c.body.Bounds()); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// SetIgnoreOneWay makes the following moves pass through one-way platforms.
func (c *Controller) SetIgnoreOneWay(ignore bool) {
	c.cfg.IgnoreOneWay = ignore
}

// SetTrace installs an observer for every ray cast. Nil disables tracing.
func (c *Controller) SetTrace(fn TraceFunc) {
	c.trace = fn
}

func (c *Controller) Body() Body {
	return c.body
}

func (c *Controller) State() CollisionState {
	return c.state
}

func (c *Controller) IsGrounded() bool {
	return c.state.Below
}

func (c *Controller) HittingAbove() bool {
	return c.state.Above
}

func (c *Controller) HittingLeft() bool {
	return c.state.Left
}

func (c *Controller) HittingRight() bool {
	return c.state.Right
}

func (c *Controller) WasGrounded() bool {
	return c.state.WasGrounded
}

func (c *Controller) BecameGroundedThisFrame() bool {
	return c.state.BecameGroundedThisFrame
}

// Move resolves delta against the world, translates the body by the result
// and returns it.
func (c *Controller) Move(delta cp.Vector) cp.Vector {
	f := c.beginFrame(delta)

	if c.state.WasGrounded && f.delta.Y < 0 {
		f.stickToDownwardSlope()
	}
	if f.delta.X != 0 {
		f.sweepHorizontal()
	}
	if f.delta.Y != 0 {
		f.sweepVertical()
	}

	c.state.BecameGroundedThisFrame = c.state.Below && !c.state.WasGrounded
	c.body.Translate(f.delta)
	return f.delta
}

func (c *Controller) beginFrame(delta cp.Vector) *frame {
	c.state.WasGrounded = c.state.Below
	c.state.reset()
	c.body.SyncTransforms()

	origins := NewRayOrigins(c.body.Bounds(), c.cfg.SkinWidth)
	return &frame{
		c:       c,
		cfg:     &c.cfg,
		delta:   delta,
		initial: delta,
		origins: origins,
		spacing: NewRaySpacing(origins, c.cfg.HorizontalRays, c.cfg.VerticalRays),
	}
}

// frame is the scratch space of a single Move.
type frame struct {
	c   *Controller
	cfg *Config

	delta   cp.Vector
	initial cp.Vector

	origins RayOrigins
	spacing RaySpacing
}

func (f *frame) cast(kind RayKind, origin, dir cp.Vector, length float64, mask LayerMask) (Hit, bool) {
	hit, ok := f.c.raycaster.Raycast(origin, dir, length, mask)
	if f.c.trace != nil {
		f.c.trace(Ray{Kind: kind, Origin: origin, Direction: dir, Length: length, Mask: mask, Hit: hit, HitOK: ok})
	}
	return hit, ok
}

// rayLength extends a displacement component by the skin width toward its
// sweep direction.
func rayLength(d, skin float64, positive bool) float64 {
	if positive {
		return d + skin
	}
	return math.Abs(d - skin)
}
