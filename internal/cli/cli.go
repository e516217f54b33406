// Package cli implements the dynagraph command-line interface.
//
// This is a thin composition root, not a full front-end: it wires flags
// onto pkg/config and pkg/pipeline and prints plain status lines. The
// actual slicing, layout, and rasterization logic all lives in pkg/.
//
// # Commands
//
//   - render: run the slice -> layout -> raster pipeline over a GEXF file
//     and write one PNG per snapshot
//   - serve: run the HTTP trigger/fetch API, optionally against shared
//     Redis and MongoDB backends
//   - cache: inspect or clear the on-disk artifact cache
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so subcommands can log with the level the
// user asked for.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fieldtrace/dynagraph/pkg/buildinfo"
	"github.com/fieldtrace/dynagraph/pkg/cache"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
	"github.com/fieldtrace/dynagraph/pkg/session"
)

// appName is the application name used for directories and display.
const appName = "dynagraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// A --verbose flag raises the CLI's logger to debug level and attaches it to
// every subcommand's context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "dynagraph renders dynamic graphs as temporal raster sequences",
		Long:         `dynagraph turns a GEXF graph with temporal attributes into a sequence of force-directed, Voronoi/heatmap-shaded PNG frames, one per sliding time window.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. noCache bypasses the
// on-disk artifact cache; store persists the run if non-nil.
func (c *CLI) newRunner(noCache bool, store session.Store) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, store, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore creates a file-backed run store rooted under the cache
// directory, unless the caller opted out.
func newStore(noStore bool) (session.Store, error) {
	if noStore {
		return nil, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, nil
	}
	return session.NewFileStore(filepath.Join(dir, "runs"))
}

// cacheDir returns the cache directory using the XDG standard (~/.cache/dynagraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
