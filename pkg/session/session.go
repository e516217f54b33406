// Package session provides persistence for pipeline runs.
//
// This package defines a Run record — one invocation of the slice/layout/
// raster pipeline over a source document — and a Store interface for
// saving/loading them, with implementations for different backends:
//   - file: File-based storage for CLI applications
//   - mongo: MongoDB-backed storage for the HTTP API, where a run must be
//     visible to whichever replica handles the client's next request
//
// # Architecture
//
// A Run tracks enough state for a client to poll progress (status,
// snapshot/frame counts) and retrieve results (OutputDir) or diagnose a
// failure (Error) without holding the whole in-memory pipeline state.
//
// # Usage
//
//	store, err := session.NewFileStore("")  // Uses ~/.config/dynagraph/runs/
//	run := session.New(sourcePath)
//	store.Set(ctx, run)
//
//	run, err := store.Get(ctx, runID)
//	if run == nil {
//	    // Run not found
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for run storage operations.
var (
	// ErrNotFound marks a run that does not exist. The stores in this
	// module do not return it: Get reports a missing run as nil, nil.
	ErrNotFound = errors.New("not found")
)

// Status is the lifecycle state of a [Run].
type Status string

const (
	StatusPending   Status = "pending"
	StatusSlicing   Status = "slicing"
	StatusRendering Status = "rendering"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

// Run tracks one pipeline invocation.
type Run struct {
	ID         string    `json:"id"`
	SourcePath string    `json:"source_path"`
	OutputDir  string    `json:"output_dir"`
	Status     Status    `json:"status"`
	Error      string    `json:"error,omitempty"`

	SnapshotCount int `json:"snapshot_count"`
	FramesWritten int `json:"frames_written"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Done reports whether the run has reached a terminal status.
func (r *Run) Done() bool {
	return r.Status == StatusComplete || r.Status == StatusFailed
}

// Store is the interface for run storage backends.
type Store interface {
	// Get retrieves a run by ID. Returns nil, nil if the run doesn't exist.
	Get(ctx context.Context, runID string) (*Run, error)

	// Set stores a run, overwriting any existing record with the same ID.
	Set(ctx context.Context, run *Run) error

	// Delete removes a run.
	Delete(ctx context.Context, runID string) error

	// List returns all stored runs, most recently created first.
	List(ctx context.Context) ([]*Run, error)

	// Close releases any resources held by the store.
	Close() error
}

// New creates a pending Run for the given source path with a fresh ID.
func New(sourcePath string) *Run {
	return &Run{
		ID:         uuid.NewString(),
		SourcePath: sourcePath,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
	}
}

// MarkComplete transitions a run to StatusComplete and stamps CompletedAt.
func (r *Run) MarkComplete() {
	now := time.Now()
	r.Status = StatusComplete
	r.CompletedAt = &now
}

// MarkFailed transitions a run to StatusFailed, recording err's message.
func (r *Run) MarkFailed(err error) {
	now := time.Now()
	r.Status = StatusFailed
	r.Error = err.Error()
	r.CompletedAt = &now
}
