package gexf

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/fieldtrace/dynagraph/pkg/errors"
)

// AttributeDescriptor declares one typed attribute a node or edge may
// carry, as declared in a graph/<attributes> block.
type AttributeDescriptor struct {
	ID      string
	Title   string
	Type    string // string|integer|long|double|float|boolean|liststring
	Mode    string // static|dynamic
	Default string
	Class   string // node|edge
}

// AttrValue is one (possibly time-scoped) value of an attribute. A
// dynamic attribute's full history is represented as multiple AttrValue
// entries sharing the same AttributeID but different Start/End — GEXF's
// analog of a <spells> list, but for attribute values rather than
// element activity.
type AttrValue struct {
	AttributeID string
	Value       string
	Start, End  *float64
}

// Spell is a sub-interval (Start/End) or sub-timestamp (Timestamp) of
// activity for a node or edge.
type Spell struct {
	Start, End, Timestamp *float64
}

// Node is one <node> element, with its raw temporal and attribute data
// intact for pkg/slicer to project per snapshot.
type Node struct {
	ID, Label             string
	Start, End, Timestamp *float64
	Spells                []Spell
	Attrs                 []AttrValue
}

// Edge is one <edge> element.
type Edge struct {
	ID, Source, Target    string
	Directed               bool
	Start, End, Timestamp *float64
	Spells                []Spell
	Attrs                 []AttrValue
}

// Document is the parsed form of one GEXF 1.3 document.
type Document struct {
	Version            string
	TimeFormat         Format
	TimeRepresentation Representation
	NodeAttributes     []AttributeDescriptor
	EdgeAttributes     []AttributeDescriptor
	Nodes              []Node
	Edges              []Edge

	// DateMin/DateMax are the envelope of every node's (and spell's)
	// start/end/timestamp values, in the document's normalized time
	// scalar. Edges do not contribute to this envelope (spec §4.2).
	DateMin, DateMax float64

	// Warnings holds non-fatal parse observations (e.g. an unrecognized
	// version attribute) for the caller to log.
	Warnings []string
}

// Parse reads a GEXF 1.3 document from r. It returns a [pkg/errors.Error]
// with code InputSchema for any of the four schema violations spec'd for
// this format; all other errors are I/O or XML syntax errors from the
// underlying decoder, which callers should treat as InputIO.
func Parse(r io.Reader) (*Document, error) {
	var raw xmlGexf
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.InputSchema, ErrUnsupportedFormat, "decode gexf document: %v", err)
	}

	var warnings []string
	if raw.Version != "" && raw.Version != "1.3" {
		warnings = append(warnings, fmt.Sprintf("unsupported gexf version %q, proceeding as 1.3", raw.Version))
	}

	if raw.Graph.Mode != "dynamic" {
		return nil, errors.Wrap(errors.InputSchema, ErrUnsupportedMode, "graph mode %q", raw.Graph.Mode)
	}

	timeFormat, err := ParseFormat(raw.Graph.TimeFormat)
	if err != nil {
		return nil, errors.Wrap(errors.InputSchema, err, "graph timeformat %q", raw.Graph.TimeFormat)
	}
	timeRepr, err := ParseRepresentation(raw.Graph.TimeRepresentation)
	if err != nil {
		return nil, errors.Wrap(errors.InputSchema, err, "graph timerepresentation %q", raw.Graph.TimeRepresentation)
	}

	doc := &Document{
		Version:            raw.Version,
		TimeFormat:         timeFormat,
		TimeRepresentation: timeRepr,
		Warnings:           warnings,
	}

	for _, block := range raw.Graph.Attributes {
		descs, err := convertAttributeDescriptors(block)
		if err != nil {
			return nil, err
		}
		switch block.Class {
		case "edge":
			doc.EdgeAttributes = append(doc.EdgeAttributes, descs...)
		default:
			doc.NodeAttributes = append(doc.NodeAttributes, descs...)
		}
	}

	dateMin, dateMax := float64(0), float64(0)
	first := true
	observe := func(v float64) {
		if first {
			dateMin, dateMax, first = v, v, false
			return
		}
		if v < dateMin {
			dateMin = v
		}
		if v > dateMax {
			dateMax = v
		}
	}

	for _, n := range raw.Graph.Nodes.Node {
		node, err := convertNode(n, timeFormat)
		if err != nil {
			return nil, err
		}
		for _, v := range []*float64{node.Start, node.End, node.Timestamp} {
			if v != nil {
				observe(*v)
			}
		}
		for _, sp := range node.Spells {
			for _, v := range []*float64{sp.Start, sp.End, sp.Timestamp} {
				if v != nil {
					observe(*v)
				}
			}
		}
		doc.Nodes = append(doc.Nodes, node)
	}

	for _, e := range raw.Graph.Edges.Edge {
		edge, err := convertEdge(e, timeFormat)
		if err != nil {
			return nil, err
		}
		doc.Edges = append(doc.Edges, edge)
	}

	doc.DateMin, doc.DateMax = dateMin, dateMax
	return doc, nil
}

func convertAttributeDescriptors(block xmlAttributes) ([]AttributeDescriptor, error) {
	out := make([]AttributeDescriptor, 0, len(block.Attrs))
	for _, a := range block.Attrs {
		d := AttributeDescriptor{
			ID:    a.ID,
			Title: a.Title,
			Type:  a.Type,
			Mode:  block.Mode,
			Class: block.Class,
		}
		if a.Default != nil {
			d.Default = a.Default.Value
		}
		out = append(out, d)
	}
	return out, nil
}

func convertNode(n xmlNode, format Format) (Node, error) {
	start, err := parseOptionalTime(n.Start, format)
	if err != nil {
		return Node{}, err
	}
	end, err := parseOptionalTime(n.End, format)
	if err != nil {
		return Node{}, err
	}
	ts, err := parseOptionalTime(n.Timestamp, format)
	if err != nil {
		return Node{}, err
	}
	spells, err := convertSpells(n.Spells, format)
	if err != nil {
		return Node{}, err
	}
	attrs, err := convertAttValues(n.AttVals, format)
	if err != nil {
		return Node{}, err
	}
	return Node{
		ID: n.ID, Label: n.Label,
		Start: start, End: end, Timestamp: ts,
		Spells: spells, Attrs: attrs,
	}, nil
}

func convertEdge(e xmlEdge, format Format) (Edge, error) {
	start, err := parseOptionalTime(e.Start, format)
	if err != nil {
		return Edge{}, err
	}
	end, err := parseOptionalTime(e.End, format)
	if err != nil {
		return Edge{}, err
	}
	ts, err := parseOptionalTime(e.Timestamp, format)
	if err != nil {
		return Edge{}, err
	}
	spells, err := convertSpells(e.Spells, format)
	if err != nil {
		return Edge{}, err
	}
	attrs, err := convertAttValues(e.AttVals, format)
	if err != nil {
		return Edge{}, err
	}
	return Edge{
		ID: e.ID, Source: e.Source, Target: e.Target,
		Directed: e.Type != "undirected",
		Start:    start, End: end, Timestamp: ts,
		Spells: spells, Attrs: attrs,
	}, nil
}

func convertSpells(in *xmlSpells, format Format) ([]Spell, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]Spell, 0, len(in.Spell))
	for _, s := range in.Spell {
		start, err := parseOptionalTime(s.Start, format)
		if err != nil {
			return nil, err
		}
		end, err := parseOptionalTime(s.End, format)
		if err != nil {
			return nil, err
		}
		ts, err := parseOptionalTime(s.Timestamp, format)
		if err != nil {
			return nil, err
		}
		out = append(out, Spell{Start: start, End: end, Timestamp: ts})
	}
	return out, nil
}

func convertAttValues(in *xmlAttValues, format Format) ([]AttrValue, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]AttrValue, 0, len(in.AttValue))
	for _, av := range in.AttValue {
		start, err := parseOptionalTime(av.Start, format)
		if err != nil {
			return nil, err
		}
		end, err := parseOptionalTime(av.End, format)
		if err != nil {
			return nil, err
		}
		out = append(out, AttrValue{AttributeID: av.For, Value: av.Value, Start: start, End: end})
	}
	return out, nil
}

func parseOptionalTime(raw string, format Format) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := ParseTime(raw, format)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
