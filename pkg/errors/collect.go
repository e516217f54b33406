package errors

import (
	"context"
	"strings"
)

// Collector accumulates per-snapshot failures during a pipeline run without
// aborting it, the "log and continue" principle applied to recoverable
// error codes ([Recoverable]). A fatal (non-recoverable) error should never
// reach a Collector — callers return it directly instead.
type Collector struct {
	errs []error
}

// Add records err if non-nil.
func (c *Collector) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Len reports how many errors have been collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Errors returns the collected errors in the order they were added.
func (c *Collector) Errors() []error {
	return c.errs
}

// Err returns nil if nothing was collected, the single error unwrapped if
// exactly one was, or an aggregate error otherwise.
func (c *Collector) Err() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		msgs := make([]string, len(c.errs))
		for i, e := range c.errs {
			msgs[i] = e.Error()
		}
		return New(SnapshotComputation, "%d snapshots failed: %s", len(c.errs), strings.Join(msgs, "; "))
	}
}

type collectorKey struct{}

// WithCollector attaches c to ctx so CollectFromContext can reach it from
// deep inside the layout/raster stages. Unlike [observability]'s
// process-wide hook registry, this scopes the collector to one call chain,
// so concurrent [Runner.Execute] calls (in package pipeline) never feed
// each other's failures into the wrong collector.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// CollectFromContext adds err to the collector attached to ctx via
// WithCollector, if err is non-nil and recoverable. It is a no-op if ctx
// carries no collector or err is fatal.
func CollectFromContext(ctx context.Context, err error) {
	if err == nil || !Recoverable(GetCode(err)) {
		return
	}
	if c, ok := ctx.Value(collectorKey{}).(*Collector); ok {
		c.Add(err)
	}
}
