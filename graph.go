package sprout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Graph construction errors. Connect and AddNode wrap these with detail;
// test with errors.Is.
var (
	ErrDuplicateNode  = errors.New("sprout: duplicate node id")
	ErrUnknownKind    = errors.New("sprout: unknown node kind")
	ErrUnknownNode    = errors.New("sprout: unknown node")
	ErrUnknownSocket  = errors.New("sprout: unknown socket")
	ErrSocketMismatch = errors.New("sprout: exec and value sockets cannot be connected")
	ErrDuplicateWire  = errors.New("sprout: connection already exists")
	ErrSelfConnection = errors.New("sprout: node cannot connect to itself")
)

// Connection is a directed edge from an output socket to an input socket.
type Connection struct {
	Source       NodeID
	SourceOutput string
	Target       NodeID
	TargetInput  string
}

func (c Connection) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", c.Source, c.SourceOutput, c.Target, c.TargetInput)
}

// touches reports whether either endpoint of c is id.
func (c Connection) touches(id NodeID) bool {
	return c.Source == id || c.Target == id
}

// GraphView is the read-only surface the Processor consumes. Connections
// reaching a GraphView are assumed to have passed Graph.Connect validation.
type GraphView interface {
	Nodes() []*Node
	Node(id NodeID) *Node
	Connections() []Connection
}

// Graph holds nodes and connections. It is mutated by the editor between
// ticks and is not safe for concurrent use.
type Graph struct {
	nodes       []*Node
	index       map[NodeID]*Node
	connections []Connection
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{index: map[NodeID]*Node{}}
}

// Nodes returns nodes in insertion order. The returned slice MUST NOT be
// mutated.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.index[id]
}

// Connections returns connections in creation order. The returned slice MUST
// NOT be mutated.
func (g *Graph) Connections() []Connection {
	return g.connections
}

// AddNode inserts n. A node with an empty ID is assigned a fresh UUID.
func (g *Graph) AddNode(n *Node) error {
	if !n.Kind.Valid() {
		return fmt.Errorf("add node %q: %w (%d)", n.ID, ErrUnknownKind, n.Kind)
	}
	if n.ID == "" {
		n.ID = NodeID(uuid.NewString())
	}
	if _, exists := g.index[n.ID]; exists {
		return fmt.Errorf("add node: %w: %q", ErrDuplicateNode, n.ID)
	}
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = n
	return nil
}

// RemoveNode deletes the node and every connection touching it. Reports
// whether the node existed.
func (g *Graph) RemoveNode(id NodeID) bool {
	if _, ok := g.index[id]; !ok {
		return false
	}
	delete(g.index, id)
	for i, n := range g.nodes {
		if n.ID == id {
			copy(g.nodes[i:], g.nodes[i+1:])
			g.nodes[len(g.nodes)-1] = nil
			g.nodes = g.nodes[:len(g.nodes)-1]
			break
		}
	}
	kept := g.connections[:0]
	for _, c := range g.connections {
		if !c.touches(id) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(g.connections); i++ {
		g.connections[i] = Connection{}
	}
	g.connections = kept
	return true
}

// Connect validates and adds c. Exec outputs may only feed exec inputs and
// value outputs may only feed value inputs.
func (g *Graph) Connect(c Connection) error {
	if err := g.validate(c); err != nil {
		return fmt.Errorf("connect %s: %w", c, err)
	}
	g.connections = append(g.connections, c)
	return nil
}

// CanConnect reports whether Connect would accept c, for editors that
// highlight valid drop targets.
func (g *Graph) CanConnect(c Connection) error {
	return g.validate(c)
}

func (g *Graph) validate(c Connection) error {
	src := g.index[c.Source]
	if src == nil {
		return fmt.Errorf("%w: source %q", ErrUnknownNode, c.Source)
	}
	dst := g.index[c.Target]
	if dst == nil {
		return fmt.Errorf("%w: target %q", ErrUnknownNode, c.Target)
	}
	if c.Source == c.Target {
		return ErrSelfConnection
	}
	out, ok := src.Output(c.SourceOutput)
	if !ok {
		return fmt.Errorf("%w: output %q on %s node", ErrUnknownSocket, c.SourceOutput, src.Kind)
	}
	in, ok := dst.Input(c.TargetInput)
	if !ok {
		return fmt.Errorf("%w: input %q on %s node", ErrUnknownSocket, c.TargetInput, dst.Kind)
	}
	if (out.Type == SocketExec) != (in.Type == SocketExec) {
		return fmt.Errorf("%w (%s -> %s)", ErrSocketMismatch, out.Type, in.Type)
	}
	for _, existing := range g.connections {
		if existing == c {
			return ErrDuplicateWire
		}
	}
	return nil
}

// Disconnect removes c. Reports whether it existed.
func (g *Graph) Disconnect(c Connection) bool {
	for i, existing := range g.connections {
		if existing == c {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			return true
		}
	}
	return false
}
