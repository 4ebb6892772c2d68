package controller

// CollisionState is what the last move ran into. It is the only state a
// Controller carries from one move to the next.
type CollisionState struct {
	Above bool
	Below bool
	Left  bool
	Right bool

	WasGrounded             bool
	BecameGroundedThisFrame bool
}

func (s *CollisionState) reset() {
	s.Above = false
	s.Below = false
	s.Left = false
	s.Right = false
}

// HasCollision reports whether any side was blocked.
func (s CollisionState) HasCollision() bool {
	return s.Above || s.Below || s.Left || s.Right
}
