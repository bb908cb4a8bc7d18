package sprout

import (
	"encoding/json"
	"strconv"
)

// Socket names used by the built-in kinds.
const (
	PortExec  = "exec"
	PortValue = "value"
	PortA     = "a"
	PortB     = "b"
	PortX     = "x"
	PortY     = "y"

	// ControlValue is the control key read by KindConstant.
	ControlValue = "value"
)

// NodeID identifies a node within a Graph. IDs are owned by the graph and
// persist across save and load.
type NodeID string

// Socket is a named, typed connection point on a node.
type Socket struct {
	Name string
	Type SocketType
}

// Node is a unit of graph computation. A single flat struct is used for all
// kinds; behavior is selected by Kind, never by inspecting sockets.
type Node struct {
	// Identity
	ID    NodeID
	Kind  Kind
	Label string

	// Editor placement, persisted but unused by evaluation.
	Position Vec2

	Inputs  []Socket
	Outputs []Socket

	// Controls holds user-editable constants, e.g. the literal of a
	// Constant node. Values are whatever the editor stored; readers must
	// tolerate non-numeric entries.
	Controls map[string]any
}

// NewNode creates a node of the given kind with that kind's sockets.
// Use the typed constructors where possible.
func NewNode(id NodeID, kind Kind) *Node {
	n := &Node{ID: id, Kind: kind, Label: defaultLabel(kind), Controls: map[string]any{}}
	switch kind {
	case KindConstant, KindAxisX, KindAxisY:
		n.Outputs = []Socket{{PortValue, SocketNumber}}
	case KindMultiply:
		n.Inputs = []Socket{{PortA, SocketNumber}, {PortB, SocketNumber}}
		n.Outputs = []Socket{{PortValue, SocketNumber}}
	case KindUpdateTick:
		n.Outputs = []Socket{{PortExec, SocketExec}}
	case KindApplyMotion:
		n.Inputs = []Socket{{PortExec, SocketExec}, {PortX, SocketNumber}, {PortY, SocketNumber}}
	}
	return n
}

// NewConstant creates a Constant node emitting value.
func NewConstant(id NodeID, value float64) *Node {
	n := NewNode(id, KindConstant)
	n.Controls[ControlValue] = value
	return n
}

// NewAxisX creates a horizontal input axis node.
func NewAxisX(id NodeID) *Node { return NewNode(id, KindAxisX) }

// NewAxisY creates a vertical input axis node.
func NewAxisY(id NodeID) *Node { return NewNode(id, KindAxisY) }

// NewMultiply creates a Multiply node.
func NewMultiply(id NodeID) *Node { return NewNode(id, KindMultiply) }

// NewUpdateTick creates an execution entry point.
func NewUpdateTick(id NodeID) *Node { return NewNode(id, KindUpdateTick) }

// NewApplyMotion creates the velocity sink node.
func NewApplyMotion(id NodeID) *Node { return NewNode(id, KindApplyMotion) }

func defaultLabel(k Kind) string {
	switch k {
	case KindConstant:
		return "Number"
	case KindAxisX:
		return "Horizontal Input"
	case KindAxisY:
		return "Vertical Input"
	case KindMultiply:
		return "Multiply"
	case KindUpdateTick:
		return "On Update"
	case KindApplyMotion:
		return "Apply Motion"
	default:
		return ""
	}
}

// Input returns the named input socket.
func (n *Node) Input(name string) (Socket, bool) {
	for _, s := range n.Inputs {
		if s.Name == name {
			return s, true
		}
	}
	return Socket{}, false
}

// Output returns the named output socket.
func (n *Node) Output(name string) (Socket, bool) {
	for _, s := range n.Outputs {
		if s.Name == name {
			return s, true
		}
	}
	return Socket{}, false
}

// NumberControl returns the control as a float64, or 0 when it is unset or
// not numeric.
func (n *Node) NumberControl(key string) float64 {
	v, _ := toNumber(n.Controls[key])
	return v
}

// SetControl stores a control value.
func (n *Node) SetControl(key string, v any) {
	if n.Controls == nil {
		n.Controls = map[string]any{}
	}
	n.Controls[key] = v
}

// toNumber converts the loosely typed values produced by editors and
// decoders. Strings are parsed so a text field holding "3" still counts.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
