package sprout

// Contact holds the ground-contact flags reported by a physics body.
// TouchingDown is set when resting on another body or platform; BlockedDown
// when pressed against the world bounds.
type Contact struct {
	TouchingDown bool
	BlockedDown  bool
}

// Grounded reports whether either flag indicates ground contact.
func (c Contact) Grounded() bool {
	return c.TouchingDown || c.BlockedDown
}

// Actor is the physics-driven entity a graph controls. The engine only ever
// writes velocity; position is read for the per-tick snapshot.
type Actor interface {
	Position() Vec2
	Velocity() Vec2
	Contact() Contact
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)
}

// InputSource is polled once per tick by the actor adapter. Implementations
// own their device state; the engine never reads input globals.
type InputSource interface {
	Poll() InputState
}

// InputFunc adapts a function to InputSource.
type InputFunc func() InputState

// Poll calls f.
func (f InputFunc) Poll() InputState { return f() }
