// Package gexf parses version 1.3 of the GEXF (Graph Exchange XML Format)
// dynamic-graph dialect into a [Document]: the raw nodes, edges, and
// attribute descriptors pkg/slicer needs to enumerate snapshots.
//
// # Shape
//
// A GEXF document is `<gexf><graph mode timeformat timerepresentation>
// <attributes class="node|edge"><attribute/></attributes><nodes><node>
// <spells><spell/></spells></node></nodes><edges><edge/></edges>
// </graph></gexf>`. Time may be carried on an element directly (start/end
// or timestamp) or on nested <spell> sub-intervals; pkg/slicer's
// membership policy considers both.
//
// # Validation
//
// Parse enforces the four schema constraints spec'd for this format:
// the root element must be present, graph mode must be "dynamic",
// timeformat must be one of the four recognized values (or empty,
// defaulting to integer), and timerepresentation must be "interval" or
// "timestamp" (or empty, defaulting to interval). A version other than
// "1.3" is tolerated with a warning rather than rejected.
package gexf
