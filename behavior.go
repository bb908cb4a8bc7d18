package sprout

import "errors"

// Missing-collaborator errors. The Processor treats these as a logged no-op
// rather than a node fault.
var (
	ErrNoContext = errors.New("sprout: node evaluated without an execution context")
	ErrNoActor   = errors.New("sprout: no actor bound to receive motion")
)

// fastFallFactor scales a positive vertical input before it is added to
// gravity while airborne.
const fastFallFactor = 0.5

// Inputs holds the values delivered to each input socket, one entry per
// incoming connection in connection order. Exec inputs hold a single true
// entry when connected.
type Inputs map[string][]any

// Number returns the first numeric value on the socket, or 0.
func (in Inputs) Number(name string) float64 {
	vs := in[name]
	if len(vs) == 0 {
		return 0
	}
	f, _ := toNumber(vs[0])
	return f
}

// Connected reports whether any value reached the socket.
func (in Inputs) Connected(name string) bool {
	return len(in[name]) > 0
}

// Outputs maps output socket names to values. A nil Outputs means the node
// produced nothing this tick.
type Outputs map[string]any

type evalFunc func(n *Node, in Inputs, ctx *ExecContext) (Outputs, error)

// evaluators is indexed by Kind. Every Kind below kindCount has an entry.
var evaluators = [kindCount]evalFunc{
	KindConstant:    evalConstant,
	KindAxisX:       evalAxisX,
	KindAxisY:       evalAxisY,
	KindMultiply:    evalMultiply,
	KindUpdateTick:  evalUpdateTick,
	KindApplyMotion: evalApplyMotion,
}

// Evaluate runs the node's behavior once with the given inputs. It does not
// consult any cache and does not recover panics; the Processor does both.
func Evaluate(n *Node, in Inputs, ctx *ExecContext) (Outputs, error) {
	if !n.Kind.Valid() {
		return nil, ErrUnknownKind
	}
	return evaluators[n.Kind](n, in, ctx)
}

func evalConstant(n *Node, _ Inputs, _ *ExecContext) (Outputs, error) {
	return Outputs{PortValue: n.NumberControl(ControlValue)}, nil
}

func evalAxisX(_ *Node, _ Inputs, ctx *ExecContext) (Outputs, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	return Outputs{PortValue: HorizontalAxis(ctx.Input)}, nil
}

func evalAxisY(_ *Node, _ Inputs, ctx *ExecContext) (Outputs, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	return Outputs{PortValue: VerticalAxis(ctx.Input)}, nil
}

// HorizontalAxis combines keyboard and touch into [-1, 1]. Opposing
// directions cancel; agreeing directions clamp at unit magnitude.
func HorizontalAxis(s InputState) float64 {
	var kbd, touch float64
	if s.Keys.Left {
		kbd--
	}
	if s.Keys.Right {
		kbd++
	}
	if s.Touch.Left {
		touch--
	}
	if s.Touch.Right {
		touch++
	}
	return clamp(kbd+touch, -1, 1)
}

// VerticalAxis combines keyboard and touch into [-1, 1] with negative meaning
// up. On the touch pad jump is checked first, so fast-fall only counts when
// jump is not held.
func VerticalAxis(s InputState) float64 {
	var kbd, touch float64
	if s.Keys.Up {
		kbd--
	}
	if s.Keys.Down {
		kbd++
	}
	if s.Touch.Jump {
		touch = -1
	} else if s.Touch.Down {
		touch = 1
	}
	return clamp(kbd+touch, -1, 1)
}

func evalMultiply(_ *Node, in Inputs, _ *ExecContext) (Outputs, error) {
	return Outputs{PortValue: in.Number(PortA) * in.Number(PortB)}, nil
}

func evalUpdateTick(_ *Node, _ Inputs, _ *ExecContext) (Outputs, error) {
	return Outputs{PortExec: true}, nil
}

// evalApplyMotion is the only behavior with a side effect. Horizontal
// velocity is always commanded, including zero, so the actor stops instead
// of drifting. Vertical velocity is commanded only for a grounded jump or an
// airborne fast-fall; otherwise the physics engine's gravity is left alone.
func evalApplyMotion(_ *Node, in Inputs, ctx *ExecContext) (Outputs, error) {
	if !in.Connected(PortExec) {
		return Outputs{}, nil
	}
	if ctx == nil {
		return nil, ErrNoContext
	}
	if ctx.motion == nil {
		return nil, ErrNoActor
	}
	x, y := in.Number(PortX), in.Number(PortY)
	ctx.motion.setVelocityX(x)
	switch {
	case ctx.Grounded && y < 0:
		ctx.motion.setVelocityY(y)
	case !ctx.Grounded && y > 0:
		ctx.motion.setVelocityY(ctx.Gravity + y*fastFallFactor)
	}
	return Outputs{}, nil
}
