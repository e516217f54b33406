package cli

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldtrace/dynagraph/internal/api"
	"github.com/fieldtrace/dynagraph/pkg/cache"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
	"github.com/fieldtrace/dynagraph/pkg/session"
	"github.com/fieldtrace/dynagraph/pkg/session/mongo"
)

// serveCommand creates the serve command, which runs internal/api's HTTP
// trigger/fetch surface. Unlike render, serve is meant to run behind several
// replicas, so its cache and run-store backends can point at shared Redis
// and MongoDB instances instead of the local filesystem.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		framesDir    string
		cacheBackend string
		redisAddr    string
		redisPrefix  string
		storeBackend string
		mongoURI     string
		mongoDB      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `serve starts an HTTP server exposing POST /runs (upload a GEXF
file, run the pipeline synchronously, get back a run id and frame count),
GET /runs/{id} (run metadata), and GET /runs/{id}/frames/{n}.png (a
rendered frame). --cache-backend and --store-backend select shared Redis
and MongoDB backends for deployments running more than one replica.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ch, err := serveCache(cacheBackend, redisAddr, redisPrefix)
			if err != nil {
				return fmt.Errorf("create cache: %w", err)
			}
			store, err := serveStore(ctx, storeBackend, mongoURI, mongoDB)
			if err != nil {
				return fmt.Errorf("create run store: %w", err)
			}

			runner := pipeline.NewRunner(ch, nil, store, logger)
			defer runner.Close()

			server := api.NewServer(runner, store, framesDir, logger)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(server),
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Infof("listening on %s (cache=%s store=%s)", addr, cacheBackend, storeBackend)
			errCh := make(chan error, 1)
			go func() { errCh <- httpServer.ListenAndServe() }()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&framesDir, "frames-dir", "frames", "directory rendered frames are written under, one subdirectory per run")
	cmd.Flags().StringVar(&cacheBackend, "cache-backend", "file", `artifact cache backend: "file", "redis", or "none"`)
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address, used when --cache-backend=redis")
	cmd.Flags().StringVar(&redisPrefix, "redis-prefix", "dynagraph:", "key prefix for Redis cache entries")
	cmd.Flags().StringVar(&storeBackend, "store-backend", "file", `run store backend: "file" or "mongo"`)
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI, used when --store-backend=mongo")
	cmd.Flags().StringVar(&mongoDB, "mongo-database", "dynagraph", "MongoDB database name, used when --store-backend=mongo")

	return cmd
}

func serveCache(backend, redisAddr, redisPrefix string) (cache.Cache, error) {
	switch backend {
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(redisAddr, redisPrefix)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}

func serveStore(ctx context.Context, backend, mongoURI, mongoDB string) (session.Store, error) {
	switch backend {
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return session.NewFileStore(filepath.Join(dir, "runs"))
	case "mongo":
		return mongo.NewStore(ctx, mongoURI, mongoDB)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
