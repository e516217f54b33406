package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fieldtrace/dynagraph/pkg/cache"
	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/observability"
	"github.com/fieldtrace/dynagraph/pkg/session"
)

// Runner encapsulates pipeline execution with caching and run persistence.
// Both the CLI and the HTTP API use this to avoid duplicating caching
// logic.
//
// The Runner is stateless except for the cache, store, and logger - it
// doesn't hold pipeline results itself. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  session.Store // optional; nil disables run persistence
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache, keyer, and session
// store. If keyer is nil, a DefaultKeyer is used. If c is nil, a NullCache
// is used (caching disabled). store may be nil to disable run persistence.
func NewRunner(c cache.Cache, keyer cache.Keyer, store session.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Store: store, Logger: logger}
}

// Execute runs the complete slice → layout → raster pipeline with caching.
// A fatal failure in the slice stage aborts the run and is returned
// directly; a recoverable failure confined to one snapshot's layout or
// raster stage is recorded in the returned Result's Err and that
// snapshot's frame is left nil ("log and continue" — see
// [errors.Recoverable]).
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	var run *session.Run
	if r.Store != nil {
		run = session.New(opts.InputPath)
		run.Status = session.StatusSlicing
		if err := r.Store.Set(ctx, run); err != nil {
			r.Logger.Warn("failed to persist run", "run_id", run.ID, "err", err)
		}
	}

	result := &Result{}
	if run != nil {
		result.RunID = run.ID
	}

	collector := &errors.Collector{}
	ctx = errors.WithCollector(ctx, collector)

	sliceStart := time.Now()
	snapshots, sliceHit, err := r.SliceWithCacheInfo(ctx, opts)
	result.Stats.SliceTime = time.Since(sliceStart)
	if err != nil {
		if run != nil {
			run.MarkFailed(err)
			_ = r.Store.Set(ctx, run)
		}
		return nil, fmt.Errorf("slice: %w", err)
	}
	result.SnapshotCount = len(snapshots)
	result.Stats.SnapshotCount = len(snapshots)
	result.CacheInfo.SliceHit = sliceHit

	r.Logger.Info("sliced document", "snapshots", len(snapshots), "cache_hit", sliceHit)

	if run != nil {
		run.SnapshotCount = len(snapshots)
		run.Status = session.StatusRendering
		_ = r.Store.Set(ctx, run)
	}

	sliceData, _ := graph.MarshalDocument(snapshots)
	sliceHash := cache.Hash(sliceData)

	layoutStart := time.Now()
	laidOut, layoutHit, err := r.LayoutWithCacheInfo(ctx, result.RunID, sliceHash, snapshots, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit
	if err != nil {
		if run != nil {
			run.MarkFailed(err)
			_ = r.Store.Set(ctx, run)
		}
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.Logger.Info("computed layout", "cache_hit", layoutHit, "duration", result.Stats.LayoutTime)

	layoutData, _ := graph.MarshalDocument(laidOut)
	layoutHash := cache.Hash(layoutData)

	rasterStart := time.Now()
	frames := make([][]byte, len(laidOut))
	for i, snap := range laidOut {
		frame, hit, err := r.RasterWithCacheInfo(ctx, result.RunID, i, layoutHash, snap, opts)
		if err != nil {
			// raster.Render has already added a recoverable failure to
			// collector through ctx; either way, skip this snapshot and
			// keep going.
			result.Stats.FramesFailed++
			continue
		}
		frames[i] = frame
		result.Stats.FramesWritten++
		if hit {
			result.CacheInfo.FrameHits++
		} else {
			result.CacheInfo.FrameMisses++
		}
	}
	result.Stats.RasterTime = time.Since(rasterStart)
	result.Frames = frames

	r.Logger.Info("rendered frames",
		"written", result.Stats.FramesWritten,
		"failed", result.Stats.FramesFailed,
		"duration", result.Stats.RasterTime)

	result.Err = collector.Err()

	if run != nil {
		run.FramesWritten = result.Stats.FramesWritten
		if result.Err != nil && result.Stats.FramesWritten == 0 {
			run.MarkFailed(result.Err)
		} else {
			run.MarkComplete()
		}
		_ = r.Store.Set(ctx, run)
	}

	return result, nil
}

// SliceWithCacheInfo slices the source document with caching and reports
// whether the result came from cache.
func (r *Runner) SliceWithCacheInfo(ctx context.Context, opts Options) ([]graph.Snapshot, bool, error) {
	if err := opts.ValidateForSlice(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	sourceHash, err := hashFile(opts.InputPath)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.SliceKey(sourceHash, opts.SliceKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if snapshots, err := graph.UnmarshalDocument(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "slice")
				return snapshots, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "slice")
	}

	snapshots, err := Slice(opts)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		if data, err := graph.MarshalDocument(snapshots); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSlice)
			observability.Cache().OnCacheSet(ctx, "slice", len(data))
		}
	}

	return snapshots, false, nil
}

// LayoutWithCacheInfo lays out every snapshot with caching and reports
// whether the result came from cache. The entire laid-out sequence is
// cached as one unit, keyed by the slice's hash plus the force-layout
// parameters — pkg/layout.Run carries positions forward from each
// snapshot to the next, so individual snapshots cannot be laid out or
// cached independently of the sequence they belong to.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, runID, sliceHash string, snapshots []graph.Snapshot, opts Options) ([]graph.Snapshot, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(sliceHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if laidOut, err := graph.UnmarshalDocument(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return laidOut, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	Layout(ctx, runID, snapshots, opts)

	if !opts.Refresh {
		if data, err := graph.MarshalDocument(snapshots); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return snapshots, false, nil
}

// RasterWithCacheInfo rasterizes one laid-out snapshot with caching and
// reports whether the result came from cache.
func (r *Runner) RasterWithCacheInfo(ctx context.Context, runID string, snapshotIndex int, layoutHash string, snap graph.Snapshot, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRaster(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.FrameKey(fmt.Sprintf("%s:%d", layoutHash, snapshotIndex), opts.FrameKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "frame")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "frame")
	}

	frame, err := RasterOne(ctx, runID, snapshotIndex, snap, opts)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		_ = r.Cache.Set(ctx, cacheKey, frame, cache.TTLFrame)
		observability.Cache().OnCacheSet(ctx, "frame", len(frame))
	}

	return frame, false, nil
}

// Close releases resources held by the runner (the cache and, if set, the
// session store).
func (r *Runner) Close() error {
	var err error
	if r.Cache != nil {
		err = r.Cache.Close()
	}
	if r.Store != nil {
		if serr := r.Store.Close(); err == nil {
			err = serr
		}
	}
	return err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.InputIO, err, "read %s", path)
	}
	return cache.Hash(data), nil
}
