package sprout

import "time"

// actorAdapter bridges one Actor and one InputSource to the engine. It builds
// the per-tick context, buffers ApplyMotion commands, and applies them to the
// actor when the tick ends.
type actorAdapter struct {
	actor  Actor
	input  InputSource
	motion motionCommand

	// Node and connection counts seen at the previous tick.
	nodeCount int
	connCount int
}

func newActorAdapter(actor Actor, input InputSource) actorAdapter {
	return actorAdapter{actor: actor, input: input, nodeCount: -1, connCount: -1}
}

// graphChanged reports whether the graph's node or connection count differs
// from the previous call. This is approximate: an edit that keeps both counts
// (rewiring one connection, swapping one node for another) goes unnoticed
// until Processor.GraphChanged is called.
func (a *actorAdapter) graphChanged(g GraphView) bool {
	nodes, conns := len(g.Nodes()), len(g.Connections())
	changed := nodes != a.nodeCount || conns != a.connCount
	a.nodeCount, a.connCount = nodes, conns
	return changed
}

// buildContext reads the actor and input collaborators and returns a fresh
// context for this tick.
func (a *actorAdapter) buildContext(dt float64, now time.Time, gravity float64) ExecContext {
	ctx := ExecContext{
		DeltaTime: dt,
		Now:       now,
		Gravity:   gravity,
	}
	if a.input != nil {
		ctx.Input = a.input.Poll()
		ctx.Controls = ctx.Input.Merge()
	}
	a.motion.reset()
	if a.actor != nil {
		ctx.Grounded = a.actor.Contact().Grounded()
		ctx.Previous = Kinematics{
			Position: a.actor.Position(),
			Velocity: a.actor.Velocity(),
		}
		ctx.motion = &a.motion
	}
	return ctx
}

// flush applies the buffered velocity command. Each axis is written at most
// once per tick; when several ApplyMotion nodes fire, the last one wins.
func (a *actorAdapter) flush() (wroteX, wroteY bool) {
	if a.actor == nil {
		return false, false
	}
	if a.motion.setX {
		a.actor.SetVelocityX(a.motion.vx)
	}
	if a.motion.setY {
		a.actor.SetVelocityY(a.motion.vy)
	}
	return a.motion.setX, a.motion.setY
}
