package slicer

import (
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/gexf"
)

func TestProjectStaticAttributePassesThrough(t *testing.T) {
	descs := []gexf.AttributeDescriptor{{ID: "0", Title: "kind", Type: "string", Mode: "static"}}
	values := []gexf.AttrValue{{AttributeID: "0", Value: "service"}}
	got := project(descs, values, Window{0, 10})
	if got["kind"] != "service" {
		t.Fatalf("got %+v", got)
	}
}

func TestProjectDynamicSelectsSubSpellCoveringMidpoint(t *testing.T) {
	descs := []gexf.AttributeDescriptor{{ID: "0", Title: "load", Type: "double", Mode: "dynamic"}}
	values := []gexf.AttrValue{
		{AttributeID: "0", Value: "1.0", Start: f(0), End: f(5)},
		{AttributeID: "0", Value: "2.0", Start: f(5), End: f(10)},
	}
	// window [4,8): midpoint 6 falls in the second sub-spell [5,10).
	got := project(descs, values, Window{4, 8})
	if got["load"] != 2.0 {
		t.Fatalf("got %+v", got)
	}
}

func TestProjectDynamicFallsBackToDefaultWhenUncovered(t *testing.T) {
	descs := []gexf.AttributeDescriptor{{ID: "0", Title: "load", Type: "double", Mode: "dynamic", Default: "0.5"}}
	values := []gexf.AttrValue{{AttributeID: "0", Value: "1.0", Start: f(100), End: f(200)}}
	got := project(descs, values, Window{0, 10})
	if got["load"] != 0.5 {
		t.Fatalf("got %+v", got)
	}
}

func TestProjectOmitsAttributeWithNoValueAndNoDefault(t *testing.T) {
	descs := []gexf.AttributeDescriptor{{ID: "0", Title: "load", Type: "double", Mode: "dynamic"}}
	got := project(descs, nil, Window{0, 10})
	if _, ok := got["load"]; ok {
		t.Fatalf("got %+v, want no \"load\" key", got)
	}
}

func TestProjectUsesIDWhenTitleEmpty(t *testing.T) {
	descs := []gexf.AttributeDescriptor{{ID: "7", Type: "string", Mode: "static"}}
	values := []gexf.AttrValue{{AttributeID: "7", Value: "x"}}
	got := project(descs, values, Window{0, 10})
	if got["7"] != "x" {
		t.Fatalf("got %+v", got)
	}
}
