// Package errors provides structured error types shared by every pipeline
// stage.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes follow the five error kinds the pipeline distinguishes: a source
// document that could not be read, one that could be read but violates the
// GEXF schema, a snapshot that failed during slicing or layout, a frame
// that failed to render, and an output sink that could not be written.
//
// # Usage
//
//	err := errors.New(errors.InputSchema, "node %q missing required attribute %q", id, attr)
//	if errors.Is(err, errors.InputSchema) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.InputIO, origErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// The five error kinds the pipeline's stages produce. InputIO and InputSchema
// cover pkg/gexf and pkg/slicer; SnapshotComputation covers pkg/layout;
// RenderFailure covers pkg/raster; OutputIO covers pkg/pipeline's sinks.
const (
	InputIO            Code = "INPUT_IO"
	InputSchema        Code = "INPUT_SCHEMA"
	SnapshotComputation Code = "SNAPSHOT_COMPUTATION"
	RenderFailure      Code = "RENDER_FAILURE"
	OutputIO           Code = "OUTPUT_IO"

	// Internal covers programming errors and anything outside the five
	// pipeline kinds (e.g. cache/session backend failures).
	Internal Code = "INTERNAL"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err has the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error, without the
// code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Recoverable reports whether a failure at this code should abort the whole
// run or be logged and skipped for the affected snapshot only.
// SnapshotComputation and RenderFailure are per-snapshot failures; a bad
// snapshot is dropped and the run continues. InputIO/InputSchema/OutputIO
// abort the run since they indicate the source or destination itself is
// unusable.
func Recoverable(code Code) bool {
	return code == SnapshotComputation || code == RenderFailure
}
