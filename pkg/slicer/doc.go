// Package slicer turns a parsed [gexf.Document] into an ordered sequence
// of [graph.Snapshot]s under a sliding-window policy.
//
// # Windowing
//
// A run declares a window Range (width) and Step (stride); both default
// based on the document's time format (date-like formats default to a
// week/day in milliseconds, others to 1/0.1). Snapshot k covers
// [DateMin + k·Step, DateMin + k·Step + Range) and the sequence stops
// once a window's end would exceed DateMax.
//
// # Membership
//
// A node or edge is active in a snapshot if its own interval/timestamp,
// or any of its spells', falls inside the snapshot's window. An interval
// overlaps the window inclusively at both boundaries; a timestamp must lie
// in the half-open window [Start, End). An edge additionally
// requires both endpoints to be active in the same snapshot.
package slicer
