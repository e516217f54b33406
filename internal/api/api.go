// Package api implements a minimal HTTP trigger/fetch surface over
// pkg/pipeline.Runner.
//
// It is not the interactive UI spec.md excludes: there is no client and no
// rendering logic here, only endpoints that start a run, list and inspect
// past runs, and stream back a rendered frame, analogous to a CI webhook.
// POST /runs accepts a GEXF upload and runs the pipeline synchronously;
// GET /runs lists stored runs; GET /runs/{id}/frames/{n}.png streams a
// previously rendered frame.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charmbracelet/log"

	"github.com/fieldtrace/dynagraph/pkg/config"
	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
	"github.com/fieldtrace/dynagraph/pkg/session"
)

// Server holds the dependencies every handler needs.
type Server struct {
	Runner    *pipeline.Runner
	Store     session.Store
	FramesDir string // root directory frames are written under, one subdirectory per run
	Logger    *log.Logger
}

// NewServer creates a Server. framesDir is created on first use if it
// doesn't exist.
func NewServer(runner *pipeline.Runner, store session.Store, framesDir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{Runner: runner, Store: store, FramesDir: framesDir, Logger: logger}
}

// NewRouter builds the chi router exposing s's endpoints.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	r.Post("/runs", s.handleCreateRun)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)
	r.Get("/runs/{id}/frames/{n}.png", s.handleGetFrame)
	return r
}

// runResponse is the JSON body POST /runs returns.
type runResponse struct {
	RunID         string `json:"run_id"`
	SnapshotCount int    `json:"snapshot_count"`
	FramesWritten int    `json:"frames_written"`
	Error         string `json:"error,omitempty"`
}

// handleCreateRun accepts a multipart upload field named "file" containing
// a GEXF document, runs the pipeline synchronously, writes every produced
// frame under FramesDir/<run id>/, and returns the run's id and stats.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing \"file\" field: %w", err))
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "dynagraph-upload-*.gexf")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	settings, err := config.Load(r.FormValue("config"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := pipeline.Options{
		InputPath: tmp.Name(),
		Format:    pipeline.FormatPNG,
		Logger:    s.Logger,
	}
	settings.ApplyTo(&opts)

	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.InputIO, errors.InputSchema:
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	runDir := filepath.Join(s.FramesDir, result.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for i, frame := range result.Frames {
		if frame == nil {
			continue
		}
		path := filepath.Join(runDir, frameName(i))
		if err := os.WriteFile(path, frame, 0o644); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	if s.Store != nil {
		if run, err := s.Store.Get(r.Context(), result.RunID); err == nil && run != nil {
			run.OutputDir = runDir
			if err := s.Store.Set(r.Context(), run); err != nil {
				s.Logger.Warn("failed to persist run output dir", "run_id", result.RunID, "err", err)
			}
		}
	}

	resp := runResponse{
		RunID:         result.RunID,
		SnapshotCount: result.SnapshotCount,
		FramesWritten: result.Stats.FramesWritten,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleGetRun returns the stored metadata for one run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, fmt.Errorf("run store not configured"))
		return
	}
	run, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("run not found"))
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleListRuns returns every stored run, most recently created first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, fmt.Errorf("run store not configured"))
		return
	}
	runs, err := s.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// handleGetFrame streams one rendered frame's PNG bytes.
func (s *Server) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid frame index: %w", err))
		return
	}

	path := filepath.Join(s.FramesDir, id, frameName(n))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, fmt.Errorf("frame not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/png")
	if _, err := io.Copy(w, f); err != nil {
		s.Logger.Warn("failed to stream frame", "run_id", id, "frame", n, "err", err)
	}
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%04d.png", i)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
