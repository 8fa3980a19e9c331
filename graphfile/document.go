// File: document.go
// Role: Graph document model and its YAML/JSON codec.

package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrank/core"
)

var (
	// ErrNoNodes indicates a document whose node list is missing or empty.
	ErrNoNodes = errors.New("graphfile: no nodes defined")

	// ErrBadLabel indicates a node label that is not a scalar (or is null).
	ErrBadLabel = errors.New("graphfile: node label must be a non-null scalar")
)

// Label is a vertex identifier taken verbatim from a scalar document value.
type Label string

// labelOf accepts any non-null scalar and keeps its source text.
func labelOf(n *yaml.Node) (Label, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return "", fmt.Errorf("line %d: %w", n.Line, ErrBadLabel)
	}

	return Label(n.Value), nil
}

// Edge is one entry of the edges list. Well-formed entries hold exactly two
// labels: source then destination. An entry that is not a sequence decodes
// to an empty Edge, which Build skips like any other wrong-arity entry.
type Edge []Label

// MarshalYAML renders an edge as a flow sequence: [A, B].
func (e Edge) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, l := range e {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(l)})
	}

	return seq, nil
}

// Parameters holds optional engine settings. Nil fields were absent.
type Parameters struct {
	Damping       *float64 `yaml:"damping,omitempty"`
	Tolerance     *float64 `yaml:"tolerance,omitempty"`
	MaxIterations *int     `yaml:"max_iterations,omitempty"`
}

// Document is a decoded graph document.
type Document struct {
	Nodes      []Label    `yaml:"nodes"`
	Edges      []Edge     `yaml:"edges"`
	Parameters Parameters `yaml:"parameters,omitempty"`
}

// rawDocument mirrors Document with list items kept as nodes, so null
// entries reach validation instead of being dropped by the decoder.
type rawDocument struct {
	Nodes      []yaml.Node `yaml:"nodes"`
	Edges      []yaml.Node `yaml:"edges"`
	Parameters Parameters  `yaml:"parameters"`
}

// UnmarshalYAML validates every label. Null or non-scalar labels fail with
// ErrBadLabel, whether they appear as nodes or inside an edge.
func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	var raw rawDocument
	if err := n.Decode(&raw); err != nil {
		return err
	}

	doc := Document{Parameters: raw.Parameters}
	if raw.Nodes != nil {
		doc.Nodes = make([]Label, 0, len(raw.Nodes))
	}
	for i := range raw.Nodes {
		l, err := labelOf(&raw.Nodes[i])
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		doc.Nodes = append(doc.Nodes, l)
	}

	if raw.Edges != nil {
		doc.Edges = make([]Edge, 0, len(raw.Edges))
	}
	for i := range raw.Edges {
		en := &raw.Edges[i]
		if en.Kind != yaml.SequenceNode {
			doc.Edges = append(doc.Edges, nil)
			continue
		}
		e := make(Edge, 0, len(en.Content))
		for _, item := range en.Content {
			l, err := labelOf(item)
			if err != nil {
				return fmt.Errorf("edge %d: %w", i, err)
			}
			e = append(e, l)
		}
		doc.Edges = append(doc.Edges, e)
	}

	*d = doc

	return nil
}

// Decode reads one document from r. Empty input yields an empty Document,
// which Build rejects with ErrNoNodes.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// FromGraph captures g as a document: nodes in index order, edges in
// insertion order, no parameters.
func FromGraph(g *core.Graph) *Document {
	ids := g.Vertices()
	edges := g.Edges()

	doc := &Document{
		Nodes: make([]Label, len(ids)),
		Edges: make([]Edge, len(edges)),
	}
	for i, id := range ids {
		doc.Nodes[i] = Label(id)
	}
	for i, e := range edges {
		doc.Edges[i] = Edge{Label(e.From), Label(e.To)}
	}

	return doc
}

// Encode writes d to w as YAML with two-space indentation.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
