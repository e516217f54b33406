// Package mongo provides a MongoDB-backed implementation of
// [session.Store], for HTTP API deployments where several replicas need a
// shared view of run state.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fieldtrace/dynagraph/pkg/session"
)

// Store is a MongoDB-backed [session.Store]. Runs are stored one document
// per run, keyed by _id = run.ID.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewStore connects to uri and returns a Store backed by database.runs.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Store{client: client, coll: client.Database(database).Collection("runs")}, nil
}

// document is the BSON shape of a [session.Run].
type document struct {
	ID            string           `bson:"_id"`
	SourcePath    string           `bson:"source_path"`
	OutputDir     string           `bson:"output_dir"`
	Status        session.Status  `bson:"status"`
	Error         string           `bson:"error,omitempty"`
	SnapshotCount int              `bson:"snapshot_count"`
	FramesWritten int              `bson:"frames_written"`
	CreatedAt     int64            `bson:"created_at_unix"`
	CompletedAt   *int64           `bson:"completed_at_unix,omitempty"`
}

func toDocument(r *session.Run) document {
	d := document{
		ID:            r.ID,
		SourcePath:    r.SourcePath,
		OutputDir:     r.OutputDir,
		Status:        r.Status,
		Error:         r.Error,
		SnapshotCount: r.SnapshotCount,
		FramesWritten: r.FramesWritten,
		CreatedAt:     r.CreatedAt.Unix(),
	}
	if r.CompletedAt != nil {
		t := r.CompletedAt.Unix()
		d.CompletedAt = &t
	}
	return d
}

func (d document) toRun() *session.Run {
	r := &session.Run{
		ID:            d.ID,
		SourcePath:    d.SourcePath,
		OutputDir:     d.OutputDir,
		Status:        d.Status,
		Error:         d.Error,
		SnapshotCount: d.SnapshotCount,
		FramesWritten: d.FramesWritten,
	}
	r.CreatedAt = unixToTime(d.CreatedAt)
	if d.CompletedAt != nil {
		t := unixToTime(*d.CompletedAt)
		r.CompletedAt = &t
	}
	return r
}

// Get implements [session.Store].
func (s *Store) Get(ctx context.Context, runID string) (*session.Run, error) {
	var d document
	err := s.coll.FindOne(ctx, bson.M{"_id": runID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	return d.toRun(), nil
}

// Set implements [session.Store].
func (s *Store) Set(ctx context.Context, run *session.Run) error {
	d := toDocument(run)
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": run.ID}, d, opts)
	if err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}
	return nil
}

// Delete implements [session.Store].
func (s *Store) Delete(ctx context.Context, runID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": runID})
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// List implements [session.Store]. Runs are returned most recently created
// first.
func (s *Store) List(ctx context.Context) ([]*session.Run, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at_unix", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer cur.Close(ctx)

	var runs []*session.Run
	for cur.Next(ctx) {
		var d document
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode run: %w", err)
		}
		runs = append(runs, d.toRun())
	}
	return runs, cur.Err()
}

// Close implements [session.Store].
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

var _ session.Store = (*Store)(nil)
