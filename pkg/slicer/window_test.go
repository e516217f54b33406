package slicer

import (
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/gexf"
)

func TestResolveDefaultsScalar(t *testing.T) {
	got := Options{}.resolve(gexf.FormatInteger)
	if got.Range != scalarDefaultRange || got.Step != scalarDefaultStep {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveDefaultsDateLike(t *testing.T) {
	got := Options{}.resolve(gexf.FormatDate)
	if got.Range != dateLikeDefaultRangeMs || got.Step != dateLikeDefaultStepMs {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	got := Options{Range: f(10), Step: f(5)}.resolve(gexf.FormatInteger)
	if got.Range != 10 || got.Step != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveKeepsExplicitZero(t *testing.T) {
	// An explicit pointer to 0 must survive resolve() as a real zero, not
	// be coerced to the format default.
	got := Options{Range: f(0), Step: f(0)}.resolve(gexf.FormatInteger)
	if got.Range != 0 || got.Step != 0 {
		t.Fatalf("got %+v, want zero", got)
	}
}

func TestWindowsSingleNodeScenario(t *testing.T) {
	// Matches the concrete scenario: a single-node interval graph spanning
	// [0,15], range=10 step=5 yields two snapshots [0,10) and [5,15).
	ws := windows(0, 15, resolved{Range: 10, Step: 5})
	want := []Window{{0, 10}, {5, 15}}
	if len(ws) != len(want) {
		t.Fatalf("got %d windows, want %d: %+v", len(ws), len(want), ws)
	}
	for i := range want {
		if ws[i] != want[i] {
			t.Fatalf("window %d: got %+v, want %+v", i, ws[i], want[i])
		}
	}
}

func TestWindowsZeroRangeYieldsNone(t *testing.T) {
	if ws := windows(0, 100, resolved{Range: 0, Step: 1}); ws != nil {
		t.Fatalf("got %+v, want nil", ws)
	}
}

func TestWindowsStepLargerThanRangeYieldsOne(t *testing.T) {
	ws := windows(0, 10, resolved{Range: 5, Step: 20})
	if len(ws) != 1 || ws[0] != (Window{0, 5}) {
		t.Fatalf("got %+v", ws)
	}
}

func TestWindowsRangeExceedsSpanYieldsNone(t *testing.T) {
	ws := windows(0, 10, resolved{Range: 50, Step: 1})
	if ws != nil {
		t.Fatalf("got %+v, want nil", ws)
	}
}
