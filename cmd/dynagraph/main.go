package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fieldtrace/dynagraph/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	w, closeLog := logWriter()
	defer closeLog()

	c := cli.New(w, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// logWriter returns a writer that duplicates log records to stderr and to
// log/dynagraph.log, rotated by truncating at process start. If the log
// directory can't be created, it falls back to stderr alone.
func logWriter() (io.Writer, func()) {
	if err := os.MkdirAll("log", 0o755); err != nil {
		return os.Stderr, func() {}
	}
	f, err := os.Create(filepath.Join("log", "dynagraph.log"))
	if err != nil {
		return os.Stderr, func() {}
	}
	return io.MultiWriter(os.Stderr, f), func() { f.Close() }
}
