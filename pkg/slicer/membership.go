package slicer

import "github.com/fieldtrace/dynagraph/pkg/gexf"

// activity is the minimal shape membership testing needs from a node or
// edge: its own interval/timestamp plus any spells.
type activity struct {
	Start, End, Timestamp *float64
	Spells                []gexf.Spell
}

// active reports whether an element with the given activity is active in
// window w under representation.
func active(a activity, w Window, repr gexf.Representation) bool {
	switch repr {
	case gexf.RepresentationTimestamp:
		if a.Timestamp != nil && timestampIn(*a.Timestamp, w) {
			return true
		}
		for _, sp := range a.Spells {
			if sp.Timestamp != nil && timestampIn(*sp.Timestamp, w) {
				return true
			}
		}
		return false
	default: // interval
		if a.Start != nil || a.End != nil {
			if overlaps(a.Start, a.End, w) {
				return true
			}
		}
		hasOwnInterval := a.Start != nil || a.End != nil
		for _, sp := range a.Spells {
			if sp.Start != nil || sp.End != nil {
				hasOwnInterval = true
				if overlaps(sp.Start, sp.End, w) {
					return true
				}
			}
		}
		// No interval and no spells at all: inactive in every slice.
		_ = hasOwnInterval
		return false
	}
}

// overlaps implements the overlap test NOT(end < w.Start OR w.End < start),
// which is inclusive at both boundaries: an element ending exactly at
// w.Start, or starting exactly at w.End, overlaps the window. A missing
// start is treated as -inf, a missing end as +inf.
func overlaps(start, end *float64, w Window) bool {
	if end != nil && *end < w.Start {
		return false
	}
	if start != nil && w.End < *start {
		return false
	}
	return true
}

// timestampIn reports whether t falls in the half-open window [w.Start, w.End).
func timestampIn(t float64, w Window) bool {
	return t >= w.Start && t < w.End
}
