package sprout

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Hit regions ---

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// --- Keyboard ---

// KeyBindings maps physical keys to directions. Any bound key being held
// sets the direction.
type KeyBindings struct {
	Left, Right, Up, Down []ebiten.Key
}

// DefaultKeyBindings binds the arrow keys, WASD, and space for jump.
var DefaultKeyBindings = KeyBindings{
	Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
}

// resolve reports the directions held according to pressed.
func (b KeyBindings) resolve(pressed func(ebiten.Key) bool) KeyState {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return KeyState{
		Left:  held(b.Left),
		Right: held(b.Right),
		Up:    held(b.Up),
		Down:  held(b.Down),
	}
}

// --- Virtual pad ---

// VirtualPad is the on-screen button layout for touch devices. A button is
// held while any active pointer lies inside its rectangle.
type VirtualPad struct {
	Left, Right, Jump, Down HitRect
}

// DefaultVirtualPad lays out left/right in the bottom-left corner and
// jump/fast-fall in the bottom-right corner of a screen of the given size.
func DefaultVirtualPad(screenW, screenH float64) VirtualPad {
	const size, margin = 72.0, 16.0
	bottom := screenH - size - margin
	return VirtualPad{
		Left:  HitRect{X: margin, Y: bottom, Width: size, Height: size},
		Right: HitRect{X: margin*2 + size, Y: bottom, Width: size, Height: size},
		Jump:  HitRect{X: screenW - size - margin, Y: bottom - size - margin, Width: size, Height: size},
		Down:  HitRect{X: screenW - size - margin, Y: bottom, Width: size, Height: size},
	}
}

// Resolve reports which buttons are held by the given pointer positions.
func (p VirtualPad) Resolve(points []Vec2) ButtonState {
	var s ButtonState
	for _, pt := range points {
		s.Left = s.Left || p.Left.Contains(pt.X, pt.Y)
		s.Right = s.Right || p.Right.Contains(pt.X, pt.Y)
		s.Jump = s.Jump || p.Jump.Contains(pt.X, pt.Y)
		s.Down = s.Down || p.Down.Contains(pt.X, pt.Y)
	}
	return s
}

// --- Ebiten polling ---

// EbitenInput polls the keyboard and touch screen through ebiten. The mouse
// counts as pointer 0 so the virtual pad can be exercised on desktop.
type EbitenInput struct {
	Keys         KeyBindings
	Pad          VirtualPad
	MouseAsTouch bool

	touchIDs []ebiten.TouchID
	points   []Vec2
}

// NewEbitenInput creates an input source with the default key bindings and
// the given virtual pad.
func NewEbitenInput(pad VirtualPad) *EbitenInput {
	return &EbitenInput{
		Keys:         DefaultKeyBindings,
		Pad:          pad,
		MouseAsTouch: true,
		points:       make([]Vec2, 0, maxPointers),
	}
}

// Poll reads the current device state. Must be called from the ebiten
// Update callback.
func (in *EbitenInput) Poll() InputState {
	return InputState{
		Keys:  in.Keys.resolve(ebiten.IsKeyPressed),
		Touch: in.Pad.Resolve(in.pointers()),
	}
}

// pointers collects the screen positions of every active pointer.
func (in *EbitenInput) pointers() []Vec2 {
	in.points = in.points[:0]
	if in.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.points = append(in.points, Vec2{X: float64(mx), Y: float64(my)})
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, tid := range in.touchIDs {
		if len(in.points) >= maxPointers {
			break
		}
		tx, ty := ebiten.TouchPosition(tid)
		in.points = append(in.points, Vec2{X: float64(tx), Y: float64(ty)})
	}
	return in.points
}
