package slicer

import (
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/gexf"
)

func f(v float64) *float64 { return &v }

func TestActiveIntervalOverlap(t *testing.T) {
	a := activity{Start: f(2), End: f(8)}
	if !active(a, Window{0, 5}, gexf.RepresentationInterval) {
		t.Fatal("want active: [2,8) overlaps [0,5)")
	}
	if active(a, Window{9, 12}, gexf.RepresentationInterval) {
		t.Fatal("want inactive: [2,8] does not overlap [9,12)")
	}
}

func TestActiveIntervalOpenEnded(t *testing.T) {
	startOnly := activity{Start: f(10)}
	if active(startOnly, Window{0, 5}, gexf.RepresentationInterval) {
		t.Fatal("want inactive: window ends before start")
	}
	if !active(startOnly, Window{9, 20}, gexf.RepresentationInterval) {
		t.Fatal("want active: open-ended end treated as +inf")
	}

	endOnly := activity{End: f(5)}
	if !active(endOnly, Window{0, 3}, gexf.RepresentationInterval) {
		t.Fatal("want active: open-ended start treated as -inf")
	}
	if active(endOnly, Window{6, 10}, gexf.RepresentationInterval) {
		t.Fatal("want inactive: window starts after end")
	}
}

func TestActiveNoIntervalNoSpellsIsInactive(t *testing.T) {
	if active(activity{}, Window{0, 100}, gexf.RepresentationInterval) {
		t.Fatal("want inactive: no interval, no spells")
	}
}

func TestActiveUsesSpellsWhenOwnIntervalMisses(t *testing.T) {
	a := activity{Start: f(100), End: f(200), Spells: []gexf.Spell{{Start: f(0), End: f(5)}}}
	if !active(a, Window{0, 3}, gexf.RepresentationInterval) {
		t.Fatal("want active: spell [0,5) overlaps [0,3)")
	}
}

func TestActiveTimestampScenario(t *testing.T) {
	// Two-node timestamp graph: A@3, B@7, range=4 step=2 -> snapshots
	// starting at 3 through 7 should each see the node whose timestamp falls
	// inside them.
	a := activity{Timestamp: f(3)}
	b := activity{Timestamp: f(7)}

	if !active(a, Window{0, 4}, gexf.RepresentationTimestamp) {
		t.Fatal("want A active in [0,4)")
	}
	if active(b, Window{0, 4}, gexf.RepresentationTimestamp) {
		t.Fatal("want B inactive in [0,4)")
	}
	if !active(b, Window{4, 8}, gexf.RepresentationTimestamp) {
		t.Fatal("want B active in [4,8)")
	}
}

func TestOverlapsInclusiveBoundary(t *testing.T) {
	// end == w.Start is inclusive: the element still overlaps the window.
	if !overlaps(f(0), f(5), Window{5, 10}) {
		t.Fatal("want true at shared boundary")
	}
	if !overlaps(f(0), f(5), Window{4, 10}) {
		t.Fatal("want true: [0,5) overlaps [4,10)")
	}
}

func TestTimestampInHalfOpenBoundary(t *testing.T) {
	if !timestampIn(0, Window{0, 5}) {
		t.Fatal("want inclusive start")
	}
	if timestampIn(5, Window{0, 5}) {
		t.Fatal("want exclusive end")
	}
}
