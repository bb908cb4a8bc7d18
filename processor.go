package sprout

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultGravity is the downward acceleration in pixels per second squared
// used when ProcessorConfig.Gravity is zero.
const DefaultGravity = 600

// ProcessorConfig holds the optional collaborators of a Processor.
type ProcessorConfig struct {
	// Gravity is copied into every context and used by ApplyMotion's
	// fast-fall. Zero selects DefaultGravity.
	Gravity float64

	// Input is polled once per tick. Nil means no input.
	Input InputSource

	// Logger receives fault and integrity reports. Nil uses slog.Default().
	Logger *slog.Logger

	// Clock supplies the wall-clock time placed in the context. Nil uses
	// time.Now.
	Clock func() time.Time

	// Debug logs TickStats at debug level after every tick.
	Debug bool
}

// Processor evaluates a graph against one actor, once per tick. It is created
// when the actor becomes controllable and discarded when control detaches.
//
// Each tick runs two kinds of traversal. Execution-flow nodes are pushed
// depth-first along exec wires starting at every UpdateTick node. Value inputs
// of each node reached that way are pulled recursively from their sources.
// Every node runs at most once per tick; later requests reuse the cached
// result.
type Processor struct {
	graph   GraphView
	adapter actorAdapter
	gravity float64
	logger  *slog.Logger
	clock   func() time.Time
	debug   bool

	entries []NodeID

	// Per-tick state, cleared at the start of every tick.
	ctx      ExecContext
	cache    map[NodeID]Outputs
	visiting map[NodeID]bool
	fired    map[NodeID]bool
	incoming map[NodeID][]Connection
	outgoing map[NodeID][]Connection
	stats    TickStats

	// reported suppresses repeated log lines for the same problem.
	reported map[string]bool
}

// NewProcessor binds a processor to a graph and an actor and performs the
// initial entry-point scan. A nil actor is allowed; ApplyMotion then becomes
// a logged no-op.
func NewProcessor(graph GraphView, actor Actor, cfg ProcessorConfig) *Processor {
	p := &Processor{
		graph:    graph,
		adapter:  newActorAdapter(actor, cfg.Input),
		gravity:  cfg.Gravity,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
		debug:    cfg.Debug,
		cache:    map[NodeID]Outputs{},
		visiting: map[NodeID]bool{},
		fired:    map[NodeID]bool{},
		incoming: map[NodeID][]Connection{},
		outgoing: map[NodeID][]Connection{},
		reported: map[string]bool{},
	}
	if p.gravity == 0 {
		p.gravity = DefaultGravity
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	p.adapter.graphChanged(graph)
	p.scan()
	return p
}

// GraphChanged forces an entry-point rescan before the next tick. Call it
// after structural edits the count heuristic cannot see, such as rewiring
// without adding or removing anything.
func (p *Processor) GraphChanged() {
	p.adapter.graphChanged(p.graph)
	p.scan()
	clear(p.reported)
}

// Entries returns the UpdateTick nodes found by the last scan, in discovery
// order.
func (p *Processor) Entries() []NodeID {
	return p.entries
}

// LastTick returns the statistics of the most recent tick.
func (p *Processor) LastTick() TickStats {
	return p.stats
}

// scan collects every UpdateTick node in graph order.
func (p *Processor) scan() {
	p.entries = p.entries[:0]
	for _, n := range p.graph.Nodes() {
		if n != nil && n.Kind == KindUpdateTick {
			p.entries = append(p.entries, n.ID)
		}
	}
	p.logger.Debug("Scanned graph for entry points.", "entries", len(p.entries))
}

// Tick runs one frame of evaluation. Effects land on the actor; nothing is
// returned and no panic escapes.
func (p *Processor) Tick(dt float64) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Tick aborted.", "panic", r)
		}
	}()

	clear(p.cache)
	clear(p.visiting)
	clear(p.fired)
	p.stats = TickStats{}

	if p.adapter.graphChanged(p.graph) {
		p.scan()
	}
	p.ctx = p.adapter.buildContext(dt, p.clock(), p.gravity)
	p.index()

	for _, id := range p.entries {
		n := p.graph.Node(id)
		if n == nil || n.Kind != KindUpdateTick {
			p.reportOnce("entry:"+string(id), "Entry point no longer in graph.", "nodeID", id)
			continue
		}
		p.stats.Entries++
		p.push(n)
	}

	p.stats.CommandX, p.stats.CommandY = p.adapter.flush()
	if p.adapter.motion.writersX > 1 || p.adapter.motion.writersY > 1 {
		p.reportOnce("writers", "Several ApplyMotion nodes fired in one tick; the last one wins.",
			"writersX", p.adapter.motion.writersX, "writersY", p.adapter.motion.writersY)
	}
	p.stats.Duration = time.Since(start)
	if p.debug {
		p.debugLog(p.stats)
	}
}

// index builds per-tick incoming and outgoing connection lists, dropping
// connections whose endpoints no longer exist.
func (p *Processor) index() {
	clear(p.incoming)
	clear(p.outgoing)
	for _, c := range p.graph.Connections() {
		if !p.intact(c) {
			p.stats.Skipped++
			p.reportOnce("dangling:"+c.String(), "Skipping dangling connection.", "connection", c.String())
			continue
		}
		p.incoming[c.Target] = append(p.incoming[c.Target], c)
		p.outgoing[c.Source] = append(p.outgoing[c.Source], c)
	}
}

func (p *Processor) intact(c Connection) bool {
	src, dst := p.graph.Node(c.Source), p.graph.Node(c.Target)
	if src == nil || dst == nil {
		return false
	}
	_, okOut := src.Output(c.SourceOutput)
	_, okIn := dst.Input(c.TargetInput)
	return okOut && okIn
}

// push evaluates n and follows its exec outputs depth-first. Exec wires are
// never followed backward and a node is pushed at most once per tick.
func (p *Processor) push(n *Node) {
	if p.fired[n.ID] {
		return
	}
	p.fired[n.ID] = true
	p.evaluate(n)

	for _, c := range p.outgoing[n.ID] {
		out, _ := n.Output(c.SourceOutput)
		if out.Type != SocketExec {
			continue
		}
		p.push(p.graph.Node(c.Target))
	}
}

// evaluate returns n's outputs for this tick, computing them on first use.
func (p *Processor) evaluate(n *Node) Outputs {
	if out, ok := p.cache[n.ID]; ok {
		return out
	}
	if p.visiting[n.ID] {
		p.reportOnce("cycle:"+string(n.ID), "Value cycle detected; input treated as absent.", "nodeID", n.ID)
		return nil
	}
	p.visiting[n.ID] = true
	in := p.gather(n)
	out := p.run(n, in)
	delete(p.visiting, n.ID)
	p.cache[n.ID] = out
	return out
}

// gather pulls the values feeding each of n's inputs. Exec inputs record
// only that they are connected; their sources are not evaluated.
func (p *Processor) gather(n *Node) Inputs {
	conns := p.incoming[n.ID]
	if len(conns) == 0 {
		return Inputs{}
	}
	in := make(Inputs, len(n.Inputs))
	for _, s := range n.Inputs {
		for _, c := range conns {
			if c.TargetInput != s.Name {
				continue
			}
			if s.Type == SocketExec {
				in[s.Name] = append(in[s.Name], true)
				continue
			}
			src := p.evaluate(p.graph.Node(c.Source))
			if v, ok := src[c.SourceOutput]; ok {
				in[s.Name] = append(in[s.Name], v)
			}
		}
	}
	return in
}

// run invokes the node behavior, converting errors and panics into absent
// output.
func (p *Processor) run(n *Node, in Inputs) (out Outputs) {
	p.stats.Evaluated++
	defer func() {
		if r := recover(); r != nil {
			p.stats.Faults++
			p.logger.Warn("Node evaluation panicked.", "nodeID", n.ID, "kind", n.Kind.Tag(), "panic", fmt.Sprint(r))
			out = nil
		}
	}()

	out, err := Evaluate(n, in, &p.ctx)
	switch {
	case err == nil:
		return out
	case errors.Is(err, ErrNoActor), errors.Is(err, ErrNoContext):
		p.reportOnce("collaborator:"+err.Error(), "Node skipped: missing collaborator.", "nodeID", n.ID, "error", err)
	default:
		p.stats.Faults++
		p.logger.Warn("Node evaluation failed.", "nodeID", n.ID, "kind", n.Kind.Tag(), "error", err)
	}
	return nil
}

// reportOnce logs at warn level the first time key is seen.
func (p *Processor) reportOnce(key, msg string, args ...any) {
	if p.reported[key] {
		return
	}
	p.reported[key] = true
	p.logger.Warn(msg, args...)
}
