package sprout

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Squash animates a landing squash-and-stretch on a render scale. Start it
// when a Body lands and call Update(dt) each frame; ScaleX and ScaleY settle
// back to 1.
type Squash struct {
	ScaleX, ScaleY float64

	tweens [2]*gween.Tween
	Done   bool
}

// NewSquash returns an idle Squash at unit scale.
func NewSquash() *Squash {
	return &Squash{ScaleX: 1, ScaleY: 1, Done: true}
}

// Start squashes to the given amount (0.3 flattens Y by 30% and widens X by
// the same) and eases back over duration seconds.
func (s *Squash) Start(amount float64, duration float32) {
	s.tweens[0] = gween.New(float32(1+amount), 1, duration, ease.OutElastic)
	s.tweens[1] = gween.New(float32(1-amount), 1, duration, ease.OutElastic)
	s.ScaleX, s.ScaleY = 1+amount, 1-amount
	s.Done = false
}

// Update advances the animation by dt seconds.
func (s *Squash) Update(dt float32) {
	if s.Done {
		return
	}
	x, doneX := s.tweens[0].Update(dt)
	y, doneY := s.tweens[1].Update(dt)
	s.ScaleX, s.ScaleY = float64(x), float64(y)
	s.Done = doneX && doneY
}
