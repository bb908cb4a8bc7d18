package sprout

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclGraphFile is the top-level structure of a hand-authored graph:
//
//	node "speed" {
//	  kind  = "constant"
//	  value = 200
//	}
//
//	node "move" {
//	  kind = "apply_motion"
//	  x    = 320
//	  y    = 40
//	}
//
//	connect {
//	  from = "speed.value"
//	  to   = "scale.b"
//	}
type hclGraphFile struct {
	Nodes       []*hclNode       `hcl:"node,block"`
	Connections []*hclConnection `hcl:"connect,block"`
}

type hclNode struct {
	ID    string  `hcl:"id,label"`
	Kind  string  `hcl:"kind"`
	Label string  `hcl:"label,optional"`
	X     float64 `hcl:"x,optional"`
	Y     float64 `hcl:"y,optional"`

	// Value is shorthand for controls = { value = ... }.
	Value    *float64  `hcl:"value,optional"`
	Controls cty.Value `hcl:"controls,optional"`
}

type hclConnection struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// LoadGraphHCL parses an HCL graph definition. filename is used only for
// diagnostics.
func LoadGraphHCL(filename string, src []byte) (*Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL graph %s: %w", filename, diags)
	}

	var parsed hclGraphFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL graph %s: %w", filename, diags)
	}

	doc := Document{Version: DocumentVersion}
	for _, n := range parsed.Nodes {
		rec := NodeRecord{
			ID:       NodeID(n.ID),
			Kind:     n.Kind,
			Label:    n.Label,
			Position: Vec2{X: n.X, Y: n.Y},
		}
		controls, err := ctyControls(n.Controls)
		if err != nil {
			return nil, fmt.Errorf("node %q in %s: %w", n.ID, filename, err)
		}
		if n.Value != nil {
			if controls == nil {
				controls = map[string]any{}
			}
			controls[ControlValue] = *n.Value
		}
		rec.Controls = controls
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, c := range parsed.Connections {
		src, srcPort, err := splitEndpoint(c.From)
		if err != nil {
			return nil, fmt.Errorf("connect in %s: from: %w", filename, err)
		}
		dst, dstPort, err := splitEndpoint(c.To)
		if err != nil {
			return nil, fmt.Errorf("connect in %s: to: %w", filename, err)
		}
		doc.Connections = append(doc.Connections, ConnectionRecord{
			Source: src, SourceOutput: srcPort,
			Target: dst, TargetInput: dstPort,
		})
	}

	g, err := NewGraphFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("HCL graph %s: %w", filename, err)
	}
	return g, nil
}

// splitEndpoint parses "node.socket". The socket is everything after the
// last dot, so node ids may themselves contain dots.
func splitEndpoint(s string) (NodeID, string, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("endpoint %q must be <node>.<socket>", s)
	}
	return NodeID(s[:i]), s[i+1:], nil
}

// ctyControls converts an HCL object of primitives into a control map.
func ctyControls(v cty.Value) (map[string]any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("controls must be an object, got %s", v.Type().FriendlyName())
	}
	out := map[string]any{}
	for it := v.ElementIterator(); it.Next(); {
		k, ev := it.Element()
		key := k.AsString()
		if ev.IsNull() {
			continue
		}
		switch ev.Type() {
		case cty.Number:
			f, _ := ev.AsBigFloat().Float64()
			out[key] = f
		case cty.String:
			out[key] = ev.AsString()
		case cty.Bool:
			out[key] = ev.True()
		default:
			return nil, fmt.Errorf("control %q has unsupported type %s", key, ev.Type().FriendlyName())
		}
	}
	return out, nil
}
