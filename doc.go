// Package sprout runs node graphs that script a 2D player character.
//
// A [Graph] holds typed nodes wired together through named sockets. Value
// wires carry numbers between nodes; exec wires define the order in which
// execution-flow nodes fire. Each frame a [Processor] walks the graph once and
// turns it into at most one velocity command per axis for an [Actor].
//
// # Quick start
//
// Build a graph in code (or load one with [LoadGraphFile]), bind it to an
// actor, and tick it from your game loop:
//
//	g := sprout.NewGraph()
//	g.AddNode(sprout.NewUpdateTick("tick"))
//	g.AddNode(sprout.NewAxisX("axis"))
//	g.AddNode(sprout.NewConstant("speed", 240))
//	g.AddNode(sprout.NewMultiply("scale"))
//	g.AddNode(sprout.NewApplyMotion("move"))
//	g.Connect(sprout.Connection{Source: "tick", SourceOutput: "exec", Target: "move", TargetInput: "exec"})
//	g.Connect(sprout.Connection{Source: "axis", SourceOutput: "value", Target: "scale", TargetInput: "a"})
//	g.Connect(sprout.Connection{Source: "speed", SourceOutput: "value", Target: "scale", TargetInput: "b"})
//	g.Connect(sprout.Connection{Source: "scale", SourceOutput: "value", Target: "move", TargetInput: "x"})
//
//	proc := sprout.NewProcessor(g, player, sprout.ProcessorConfig{Input: input})
//	// every frame:
//	proc.Tick(1.0 / 60)
//
// For a complete window with a body, a level, and a touch pad, use [NewGame]
// and [Run].
//
// # Node kinds
//
// The set of kinds is closed: [KindConstant], [KindAxisX], [KindAxisY],
// [KindMultiply], [KindUpdateTick], and [KindApplyMotion]. ApplyMotion is the
// only node with a side effect.
//
// # Evaluation
//
// UpdateTick nodes are the entry points. From each one the processor follows
// exec wires depth-first; for every node reached it first pulls the node's
// value inputs from their sources. Results are cached for the tick, so a node
// feeding several consumers runs once. A node that fails or panics produces no
// output for that tick and the rest of the graph still runs.
//
// # ECS integration
//
// The sprout/ecs module provides a [Donburi] backed [Actor].
//
// [Donburi]: https://github.com/yohamta/donburi
package sprout
