package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a path the pipeline is about to write a
// rendered frame or intermediate document to. It rejects the same class of
// path-traversal and control-character issues regardless of which sink
// (file.Store, RedisCache, a PNG sink) ultimately consumes the path.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(OutputIO, "output path cannot be empty")
	}
	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(OutputIO, "output path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(OutputIO, "output path contains invalid characters")
		}
	}
	if strings.Contains(path, "..") {
		return New(OutputIO, "output path cannot contain path traversal sequences (..)")
	}
	return nil
}

// ValidateSourcePath validates a path the pipeline is about to read a GEXF
// document from.
func ValidateSourcePath(path string) error {
	if path == "" {
		return New(InputIO, "source path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(InputIO, "source path contains invalid characters")
		}
	}
	if strings.Contains(path, "..") {
		return New(InputIO, "source path cannot contain path traversal sequences (..)")
	}
	return nil
}

// ValidateWindow validates a slicing window's range and step, used by
// pkg/slicer before enumerating snapshots. Both must be strictly positive;
// a step larger than the range is legal (it just produces non-overlapping
// gaps) and is intentionally not rejected here.
func ValidateWindow(rangeSeconds, stepSeconds float64) error {
	if rangeSeconds <= 0 {
		return New(InputSchema, "window range must be positive, got %v", rangeSeconds)
	}
	if stepSeconds <= 0 {
		return New(InputSchema, "window step must be positive, got %v", stepSeconds)
	}
	return nil
}
