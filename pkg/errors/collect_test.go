package errors

import (
	"context"
	"testing"
)

func TestCollectorErrNilWhenEmpty(t *testing.T) {
	var c Collector
	if err := c.Err(); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

func TestCollectorErrUnwrapsSingle(t *testing.T) {
	var c Collector
	want := New(RenderFailure, "boom")
	c.Add(want)
	if got := c.Err(); got != want {
		t.Fatalf("got %v, want the single collected error unwrapped", got)
	}
}

func TestCollectorErrAggregatesMultiple(t *testing.T) {
	var c Collector
	c.Add(New(RenderFailure, "frame 1 failed"))
	c.Add(New(SnapshotComputation, "frame 2 failed"))
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	err := c.Err()
	if err == nil {
		t.Fatal("expected an aggregate error")
	}
	if !Is(err, SnapshotComputation) {
		t.Fatalf("aggregate error code = %v, want SnapshotComputation", GetCode(err))
	}
}

func TestCollectorAddIgnoresNil(t *testing.T) {
	var c Collector
	c.Add(nil)
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
}

func TestCollectFromContextAddsRecoverable(t *testing.T) {
	var c Collector
	ctx := WithCollector(context.Background(), &c)
	CollectFromContext(ctx, New(RenderFailure, "frame 3 failed"))
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestCollectFromContextIgnoresFatal(t *testing.T) {
	var c Collector
	ctx := WithCollector(context.Background(), &c)
	CollectFromContext(ctx, New(InputIO, "source unreadable"))
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for a non-recoverable error", c.Len())
	}
}

func TestCollectFromContextNoopWithoutCollector(t *testing.T) {
	// Must not panic when ctx carries no collector.
	CollectFromContext(context.Background(), New(RenderFailure, "boom"))
}

func TestCollectFromContextIsolatesConcurrentCallers(t *testing.T) {
	var a, b Collector
	ctxA := WithCollector(context.Background(), &a)
	ctxB := WithCollector(context.Background(), &b)

	CollectFromContext(ctxA, New(SnapshotComputation, "a failed"))
	CollectFromContext(ctxB, New(SnapshotComputation, "b failed 1"))
	CollectFromContext(ctxB, New(SnapshotComputation, "b failed 2"))

	if a.Len() != 1 {
		t.Fatalf("a.Len() = %d, want 1", a.Len())
	}
	if b.Len() != 2 {
		t.Fatalf("b.Len() = %d, want 2", b.Len())
	}
}
