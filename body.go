package sprout

// Level is the static geometry a Body collides with. Bounds is the world
// rectangle; its bottom edge is the floor.
type Level struct {
	Bounds    Rect
	Platforms []Rect
}

// BodyConfig controls a Body's size and integration limits.
type BodyConfig struct {
	Width, Height float64
	Gravity       float64 // zero selects DefaultGravity
	MaxFallSpeed  float64 // zero means unlimited
}

// Body is a minimal axis-aligned kinematic body implementing Actor. It is a
// stand-in for a full physics engine: gravity integration plus resolution
// against a Level's platforms and bounds.
type Body struct {
	cfg     BodyConfig
	pos     Vec2 // top-left corner
	vel     Vec2
	contact Contact
}

// NewBody creates a body with its top-left corner at (x, y).
func NewBody(x, y float64, cfg BodyConfig) *Body {
	if cfg.Gravity == 0 {
		cfg.Gravity = DefaultGravity
	}
	return &Body{cfg: cfg, pos: Vec2{X: x, Y: y}}
}

func (b *Body) Position() Vec2 { return b.pos }
func (b *Body) Velocity() Vec2 { return b.vel }
func (b *Body) Contact() Contact { return b.contact }
func (b *Body) SetVelocityX(v float64) { b.vel.X = v }
func (b *Body) SetVelocityY(v float64) { b.vel.Y = v }

// Bounds returns the body's rectangle in world space.
func (b *Body) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, Width: b.cfg.Width, Height: b.cfg.Height}
}

// Step integrates one frame and resolves collisions. It reports whether the
// body landed this frame, i.e. was airborne before and grounded after.
func (b *Body) Step(dt float64, level *Level) (landed bool) {
	wasGrounded := b.contact.Grounded()

	b.vel.Y += b.cfg.Gravity * dt
	if b.cfg.MaxFallSpeed > 0 && b.vel.Y > b.cfg.MaxFallSpeed {
		b.vel.Y = b.cfg.MaxFallSpeed
	}

	b.pos.X += b.vel.X * dt
	b.resolveX(level)

	b.pos.Y += b.vel.Y * dt
	b.contact = Contact{}
	b.resolveY(level)

	return !wasGrounded && b.contact.Grounded()
}

func (b *Body) resolveX(level *Level) {
	if level == nil {
		return
	}
	for _, p := range level.Platforms {
		if !b.Bounds().Intersects(p) {
			continue
		}
		if b.vel.X > 0 {
			b.pos.X = p.X - b.cfg.Width
		} else if b.vel.X < 0 {
			b.pos.X = p.X + p.Width
		}
		b.vel.X = 0
	}
	minX, maxX := level.Bounds.X, level.Bounds.X+level.Bounds.Width-b.cfg.Width
	if b.pos.X < minX {
		b.pos.X, b.vel.X = minX, 0
	} else if b.pos.X > maxX {
		b.pos.X, b.vel.X = maxX, 0
	}
}

func (b *Body) resolveY(level *Level) {
	if level == nil {
		return
	}
	for _, p := range level.Platforms {
		if !b.Bounds().Intersects(p) {
			continue
		}
		if b.vel.Y > 0 {
			b.pos.Y = p.Y - b.cfg.Height
			b.contact.TouchingDown = true
		} else if b.vel.Y < 0 {
			b.pos.Y = p.Y + p.Height
		}
		b.vel.Y = 0
	}
	floor := level.Bounds.Y + level.Bounds.Height - b.cfg.Height
	if b.pos.Y >= floor {
		b.pos.Y = floor
		if b.vel.Y > 0 {
			b.vel.Y = 0
		}
		b.contact.BlockedDown = true
	} else if b.pos.Y < level.Bounds.Y {
		b.pos.Y, b.vel.Y = level.Bounds.Y, 0
	}
}
