package slicer

import (
	"strconv"

	"github.com/fieldtrace/dynagraph/pkg/gexf"
)

// project builds the attribute map for one node/edge active in window w.
//
// Static attributes (mode="static") pass their single value through
// unconditionally. Dynamic attributes may carry several time-scoped
// AttrValue entries (spec's "sub-spells" of a value); this implementation
// picks the entry whose [Start,End) covers the snapshot's MIDPOINT — the
// Open Question spec §9 leaves undecided between start and midpoint; see
// DESIGN.md for the rationale. An entry with neither Start nor End is
// treated as always covering (handles documents that mix static-style
// attvalues into a dynamic-mode attribute). If no entry covers the
// midpoint, the descriptor's Default is used; if there is no default,
// the attribute is omitted.
func project(descs []gexf.AttributeDescriptor, values []gexf.AttrValue, w Window) map[string]any {
	if len(descs) == 0 {
		return nil
	}
	byID := make(map[string]gexf.AttributeDescriptor, len(descs))
	for _, d := range descs {
		byID[d.ID] = d
	}

	mid := (w.Start + w.End) / 2
	grouped := make(map[string][]gexf.AttrValue, len(values))
	for _, v := range values {
		grouped[v.AttributeID] = append(grouped[v.AttributeID], v)
	}

	out := make(map[string]any)
	for id, d := range byID {
		entries := grouped[id]
		var chosen *gexf.AttrValue
		for i := range entries {
			e := &entries[i]
			if e.Start == nil && e.End == nil {
				chosen = e
				continue
			}
			if d.Mode != "dynamic" {
				continue
			}
			if (e.Start == nil || mid >= *e.Start) && (e.End == nil || mid < *e.End) {
				chosen = e
				break
			}
		}
		key := d.Title
		if key == "" {
			key = id
		}
		switch {
		case chosen != nil:
			out[key] = coerce(chosen.Value, d.Type)
		case d.Default != "":
			out[key] = coerce(d.Default, d.Type)
		}
	}
	return out
}

// coerce converts a raw GEXF attribute value into its declared Go type.
// Unparseable or unrecognized types pass through as strings.
func coerce(raw, typ string) any {
	switch typ {
	case "integer", "long":
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	case "double", "float":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return raw
}
