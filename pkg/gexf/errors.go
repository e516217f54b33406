package gexf

import "errors"

// Sentinel schema errors. Parse wraps these in a [pkg/errors.Error] with
// code InputSchema when returning them to callers.
var (
	ErrUnsupportedFormat             = errors.New("gexf: missing or unrecognized root element")
	ErrUnsupportedMode                = errors.New("gexf: graph mode is not \"dynamic\"")
	ErrUnsupportedTimeFormat          = errors.New("gexf: unsupported timeformat")
	ErrUnsupportedTimeRepresentation  = errors.New("gexf: unsupported timerepresentation")
)
