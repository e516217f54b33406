package gexf

import (
	"strings"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/errors"
)

const sampleDoc = `<?xml version="1.0"?>
<gexf version="1.3">
  <graph mode="dynamic" timeformat="integer" timerepresentation="interval">
    <attributes class="node" mode="static">
      <attribute id="0" title="kind" type="string"/>
    </attributes>
    <nodes>
      <node id="a" label="Alpha" start="0" end="10">
        <attvalues>
          <attvalue for="0" value="service"/>
        </attvalues>
      </node>
      <node id="b" label="Beta" start="5" end="15"/>
    </nodes>
    <edges>
      <edge id="0" source="a" target="b" start="5" end="10"/>
    </edges>
  </graph>
</gexf>`

func TestParseBasic(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.TimeFormat != FormatInteger {
		t.Errorf("TimeFormat = %v, want integer", doc.TimeFormat)
	}
	if doc.TimeRepresentation != RepresentationInterval {
		t.Errorf("TimeRepresentation = %v, want interval", doc.TimeRepresentation)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(doc.Nodes))
	}
	if len(doc.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(doc.Edges))
	}
	if doc.DateMin != 0 || doc.DateMax != 15 {
		t.Errorf("envelope = [%v,%v], want [0,15]", doc.DateMin, doc.DateMax)
	}
	if doc.Nodes[0].Attrs[0].Value != "service" {
		t.Errorf("node a attr = %q, want service", doc.Nodes[0].Attrs[0].Value)
	}
}

func TestParseRejectsNonDynamicMode(t *testing.T) {
	const doc = `<gexf version="1.3"><graph mode="static" timeformat="integer"><nodes/><edges/></graph></gexf>`
	_, err := Parse(strings.NewReader(doc))
	if !errors.Is(err, errors.InputSchema) {
		t.Errorf("Parse(static mode) error = %v, want InputSchema", err)
	}
}

func TestParseRejectsUnsupportedTimeFormat(t *testing.T) {
	const doc = `<gexf version="1.3"><graph mode="dynamic" timeformat="bogus"><nodes/><edges/></graph></gexf>`
	_, err := Parse(strings.NewReader(doc))
	if !errors.Is(err, errors.InputSchema) {
		t.Errorf("Parse(bogus timeformat) error = %v, want InputSchema", err)
	}
}

func TestParseRejectsUnsupportedTimeRepresentation(t *testing.T) {
	const doc = `<gexf version="1.3"><graph mode="dynamic" timeformat="integer" timerepresentation="bogus"><nodes/><edges/></graph></gexf>`
	_, err := Parse(strings.NewReader(doc))
	if !errors.Is(err, errors.InputSchema) {
		t.Errorf("Parse(bogus timerepresentation) error = %v, want InputSchema", err)
	}
}

func TestParseEmptyTimeFormatDefaultsToInteger(t *testing.T) {
	const doc = `<gexf version="1.3"><graph mode="dynamic"><nodes/><edges/></graph></gexf>`
	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.TimeFormat != FormatInteger {
		t.Errorf("TimeFormat = %v, want integer default", parsed.TimeFormat)
	}
	if parsed.TimeRepresentation != RepresentationInterval {
		t.Errorf("TimeRepresentation = %v, want interval default", parsed.TimeRepresentation)
	}
}

func TestParseVersionMismatchWarns(t *testing.T) {
	const doc = `<gexf version="1.2"><graph mode="dynamic" timeformat="integer"><nodes/><edges/></graph></gexf>`
	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(parsed.Warnings))
	}
}

func TestParseUndirectedEdge(t *testing.T) {
	const doc = `<gexf version="1.3"><graph mode="dynamic" timeformat="integer">
	<nodes><node id="a"/><node id="b"/></nodes>
	<edges><edge source="a" target="b" type="undirected"/></edges>
	</graph></gexf>`
	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Edges[0].Directed {
		t.Error("edge with type=undirected should have Directed=false")
	}
}
