package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/cache"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
	"github.com/fieldtrace/dynagraph/pkg/session"
)

const sampleGEXF = `<?xml version="1.0"?>
<gexf version="1.3">
  <graph mode="dynamic" timeformat="integer" timerepresentation="interval">
    <nodes>
      <node id="a" label="Alpha" start="0" end="20"/>
      <node id="b" label="Beta" start="0" end="20"/>
    </nodes>
    <edges>
      <edge id="0" source="a" target="b" start="0" end="20"/>
    </edges>
  </graph>
</gexf>`

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil, nil)
	s := NewServer(runner, nil, filepath.Join(t.TempDir(), "frames"), nil)
	return s, NewRouter(s)
}

func uploadRequest(t *testing.T) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "sample.gexf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(sampleGEXF)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/runs", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestCreateRunReturnsFrameCount(t *testing.T) {
	_, router := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp runResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("expected a non-empty run id")
	}
	if resp.FramesWritten == 0 {
		t.Error("expected at least one frame written")
	}
}

func TestCreateRunRejectsMissingFile(t *testing.T) {
	_, router := newTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	_ = w.Close()
	req := httptest.NewRequest(http.MethodPost, "/runs", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetFrameRoundTrip(t *testing.T) {
	_, router := newTestServer(t)

	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, uploadRequest(t))
	if createRec.Code != http.StatusCreated {
		t.Fatalf("create run: status = %d, body = %s", createRec.Code, createRec.Body.String())
	}
	var resp runResponse
	if err := json.Unmarshal(createRec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/runs/"+resp.RunID+"/frames/0.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content-type = %q, want image/png", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty PNG body")
	}
}

func TestListRunsWithoutStoreReturns501(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotImplemented)
	}
}

func TestListRunsReturnsCreatedRuns(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, store, nil)
	s := NewServer(runner, store, filepath.Join(t.TempDir(), "frames"), nil)
	router := NewRouter(s)

	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, uploadRequest(t))
	if createRec.Code != http.StatusCreated {
		t.Fatalf("create run: status = %d, body = %s", createRec.Code, createRec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var runs []*session.Run
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
}

func TestGetFrameMissingReturns404(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs/does-not-exist/frames/0.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
