package sprout

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 30, true},
		{9, 15, false},
		{15, 31, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestKeyBindingsResolve(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}
	got := DefaultKeyBindings.resolve(func(k ebiten.Key) bool { return held[k] })

	want := KeyState{Left: true, Up: true}
	if got != want {
		t.Errorf("resolve = %+v, want %+v", got, want)
	}
}

func TestKeyBindingsResolve_Custom(t *testing.T) {
	b := KeyBindings{Right: []ebiten.Key{ebiten.KeyL}}
	got := b.resolve(func(k ebiten.Key) bool { return k == ebiten.KeyL || k == ebiten.KeyArrowLeft })
	if got != (KeyState{Right: true}) {
		t.Errorf("resolve = %+v, want only right", got)
	}
}

func TestVirtualPadResolve(t *testing.T) {
	pad := DefaultVirtualPad(640, 360)
	center := func(r HitRect) Vec2 { return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

	tests := []struct {
		name   string
		points []Vec2
		want   ButtonState
	}{
		{"none", nil, ButtonState{}},
		{"left", []Vec2{center(pad.Left)}, ButtonState{Left: true}},
		{"right and jump", []Vec2{center(pad.Right), center(pad.Jump)}, ButtonState{Right: true, Jump: true}},
		{"down", []Vec2{center(pad.Down)}, ButtonState{Down: true}},
		{"outside", []Vec2{{X: 320, Y: 20}}, ButtonState{}},
	}
	for _, tt := range tests {
		if got := pad.Resolve(tt.points); got != tt.want {
			t.Errorf("%s: Resolve = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultVirtualPadLayout(t *testing.T) {
	pad := DefaultVirtualPad(640, 360)
	for name, r := range map[string]HitRect{"left": pad.Left, "right": pad.Right, "jump": pad.Jump, "down": pad.Down} {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > 640 || r.Y+r.Height > 360 {
			t.Errorf("%s button %+v is off screen", name, r)
		}
	}
	if pad.Left.X >= 320 || pad.Jump.X <= 320 {
		t.Error("movement buttons belong on the left, jump on the right")
	}
	if pad.Jump.Y >= pad.Down.Y {
		t.Error("jump should sit above fast-fall")
	}
}
