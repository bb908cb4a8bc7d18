package sprout

import "image/color"

// Vec2 is a 2D vector used for positions, velocities, and editor placement.
// Y increases downward (screen space), so negative Y is "up".
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with a non-zero area.
// Rectangles sharing only an edge do not intersect, so a body resting on a
// platform is not considered overlapping it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten drawing calls.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// SocketType is the value type carried by a socket.
type SocketType uint8

const (
	SocketNumber SocketType = iota // float64 value
	SocketBool                     // bool value
	SocketExec                     // control-flow only, carries no data
	SocketVec2                     // Vec2 value
)

func (t SocketType) String() string {
	switch t {
	case SocketNumber:
		return "number"
	case SocketBool:
		return "boolean"
	case SocketExec:
		return "exec"
	case SocketVec2:
		return "vector2"
	default:
		return "unknown"
	}
}

// Kind identifies a node's behavior. The set is closed: every Kind has a
// stable tag used by the persisted graph format, independent of the
// user-facing label.
type Kind uint8

const (
	KindConstant    Kind = iota // emits the "value" control
	KindAxisX                   // horizontal input axis in [-1, 1]
	KindAxisY                   // vertical input axis in [-1, 1], negative is up
	KindMultiply                // value = a * b
	KindUpdateTick              // execution entry point, fires once per tick
	KindApplyMotion             // execution sink, commands actor velocity

	kindCount
)

var kindTags = [kindCount]string{
	KindConstant:    "constant",
	KindAxisX:       "axis_x",
	KindAxisY:       "axis_y",
	KindMultiply:    "multiply",
	KindUpdateTick:  "update_tick",
	KindApplyMotion: "apply_motion",
}

// Tag returns the stable persisted identifier for the kind.
func (k Kind) Tag() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindTags[k]
}

func (k Kind) String() string { return k.Tag() }

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return k < kindCount }

// KindFromTag resolves a persisted tag back to its Kind.
func KindFromTag(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
