package sprout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocumentVersion is written into every encoded graph.
const DocumentVersion = 1

// ErrUnsupportedFormat is returned for graph files with an unknown extension.
var ErrUnsupportedFormat = errors.New("sprout: unsupported graph file format")

// Document is the persisted shape of a Graph. Kinds are stored by tag, never
// by label, so labels can be renamed or localized freely.
type Document struct {
	Version     int                `json:"version" yaml:"version"`
	Nodes       []NodeRecord       `json:"nodes" yaml:"nodes"`
	Connections []ConnectionRecord `json:"connections" yaml:"connections"`
}

// NodeRecord is one persisted node.
type NodeRecord struct {
	ID       NodeID         `json:"id" yaml:"id"`
	Kind     string         `json:"kind" yaml:"kind"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Position Vec2           `json:"position" yaml:"position"`
	Controls map[string]any `json:"controls,omitempty" yaml:"controls,omitempty"`
}

// ConnectionRecord is one persisted connection.
type ConnectionRecord struct {
	Source       NodeID `json:"source" yaml:"source"`
	SourceOutput string `json:"sourceOutput" yaml:"sourceOutput"`
	Target       NodeID `json:"target" yaml:"target"`
	TargetInput  string `json:"targetInput" yaml:"targetInput"`
}

// Document returns the persisted form of g.
func (g *Graph) Document() Document {
	doc := Document{
		Version:     DocumentVersion,
		Nodes:       make([]NodeRecord, 0, len(g.nodes)),
		Connections: make([]ConnectionRecord, 0, len(g.connections)),
	}
	for _, n := range g.nodes {
		rec := NodeRecord{ID: n.ID, Kind: n.Kind.Tag(), Position: n.Position}
		if n.Label != defaultLabel(n.Kind) {
			rec.Label = n.Label
		}
		if len(n.Controls) > 0 {
			rec.Controls = make(map[string]any, len(n.Controls))
			for k, v := range n.Controls {
				rec.Controls[k] = v
			}
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, c := range g.connections {
		doc.Connections = append(doc.Connections, ConnectionRecord(c))
	}
	return doc
}

// NewGraphFromDocument rebuilds a graph, validating every node kind and
// every connection as if it had been created in the editor.
func NewGraphFromDocument(doc Document) (*Graph, error) {
	g := NewGraph()
	for _, rec := range doc.Nodes {
		kind, ok := KindFromTag(rec.Kind)
		if !ok {
			return nil, fmt.Errorf("node %q: %w %q", rec.ID, ErrUnknownKind, rec.Kind)
		}
		n := NewNode(rec.ID, kind)
		if rec.Label != "" {
			n.Label = rec.Label
		}
		n.Position = rec.Position
		for k, v := range rec.Controls {
			n.Controls[k] = normalizeControl(v)
		}
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, rec := range doc.Connections {
		if err := g.Connect(Connection(rec)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// normalizeControl maps every decoded number to float64 so JSON and YAML
// documents produce identical graphs. Strings are kept as written.
func normalizeControl(v any) any {
	if _, isString := v.(string); isString {
		return v
	}
	if f, ok := toNumber(v); ok {
		return f
	}
	return v
}

// EncodeJSON writes g as indented JSON.
func EncodeJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Document()); err != nil {
		return fmt.Errorf("encode graph json: %w", err)
	}
	return nil
}

// DecodeJSON reads a graph written by EncodeJSON.
func DecodeJSON(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse graph json: %w", err)
	}
	return NewGraphFromDocument(doc)
}

// EncodeYAML writes g as YAML.
func EncodeYAML(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Document()); err != nil {
		return fmt.Errorf("encode graph yaml: %w", err)
	}
	return enc.Close()
}

// DecodeYAML reads a graph written by EncodeYAML.
func DecodeYAML(r io.Reader) (*Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse graph yaml: %w", err)
	}
	return NewGraphFromDocument(doc)
}

// LoadGraphFile reads a graph from path, choosing the format by extension:
// .json, .yaml/.yml, or .hcl.
func LoadGraphFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	case ".hcl":
		return LoadGraphHCL(path, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// SaveGraphFile writes g to path as JSON or YAML depending on the extension.
func SaveGraphFile(path string, g *Graph) error {
	var encode func(io.Writer, *Graph) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		encode = EncodeJSON
	case ".yaml", ".yml":
		encode = EncodeYAML
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create graph file: %w", err)
	}
	if err := encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
