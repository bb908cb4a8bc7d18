package sprout

import "time"

// KeyState is the keyboard half of the input, already mapped from physical
// keys to directions.
type KeyState struct {
	Left, Right, Up, Down bool
}

// ButtonState is the on-screen virtual pad. Jump and Down are distinct
// buttons; Down is the fast-fall button.
type ButtonState struct {
	Left, Right, Jump, Down bool
}

// InputState is one frame of raw input as polled by an InputSource.
type InputState struct {
	Keys  KeyState
	Touch ButtonState
}

// Controls is the normalized union of keyboard and touch input.
type Controls struct {
	Left, Right, Jump, Down bool
}

// Merge folds both input sources into one Controls record. Keyboard Up
// counts as jump.
func (s InputState) Merge() Controls {
	return Controls{
		Left:  s.Keys.Left || s.Touch.Left,
		Right: s.Keys.Right || s.Touch.Right,
		Jump:  s.Keys.Up || s.Touch.Jump,
		Down:  s.Keys.Down || s.Touch.Down,
	}
}

// Kinematics is a snapshot of an actor's position and velocity.
type Kinematics struct {
	Position Vec2
	Velocity Vec2
}

// ExecContext is the per-tick value handed to every node evaluation. It is
// built fresh by the Processor each tick and discarded afterwards.
type ExecContext struct {
	DeltaTime float64
	Now       time.Time

	// Previous is the actor state captured before this tick's commands.
	Previous Kinematics

	// Grounded is true when the actor is touching or blocked below.
	Grounded bool
	Gravity  float64

	// Input carries both raw sources so axis nodes can combine them; Controls
	// is the merged view.
	Input    InputState
	Controls Controls

	// motion receives velocity commands from ApplyMotion. Nil when no actor
	// is bound.
	motion *motionCommand
}

// motionCommand buffers the velocity writes of one tick. Each axis is applied
// to the actor at most once when the tick ends.
type motionCommand struct {
	vx, vy     float64
	setX, setY bool
	writersX   int
	writersY   int
}

func (m *motionCommand) setVelocityX(v float64) {
	m.vx, m.setX = v, true
	m.writersX++
}

func (m *motionCommand) setVelocityY(v float64) {
	m.vy, m.setY = v, true
	m.writersY++
}

func (m *motionCommand) reset() {
	*m = motionCommand{}
}
