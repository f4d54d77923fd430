package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/resumeforge/resumeforge/internal/server"
	"github.com/resumeforge/resumeforge/pkg/cache"
	"github.com/resumeforge/resumeforge/pkg/pipeline"
)

// shutdownTimeout bounds the graceful drain on exit.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command running the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

The service exposes the generation pipeline over HTTP:

  POST /v1/render   render a document to PDF
  GET  /v1/stats    render and cache counters
  GET  /healthz     liveness probe

With --redis-addr the artifact cache is shared across instances; without it
the local file cache is used. With --mongo-uri a receipt is recorded for
every render. Both backends are optional: when one is unreachable the
service logs a warning and degrades to local operation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, mongoURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", os.Getenv("RESUMEFORGE_REDIS_ADDR"), "redis address for a shared artifact cache")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", os.Getenv("RESUMEFORGE_MONGO_URI"), "mongodb uri for render receipts")

	return cmd
}

// runServe wires the backends and serves until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string) error {
	store := c.serveCache(ctx, redisAddr)
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:")
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	archive := c.serveArchive(ctx, mongoURI)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = archive.Close(closeCtx)
	}()

	srv := server.New(server.Options{
		Runner:  runner,
		Archive: archive,
		Logger:  c.Logger,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	c.Logger.Info("render service listening", "addr", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down render service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// serveCache picks the artifact cache backend. A configured but unreachable
// Redis degrades to the local file cache so the service still renders.
func (c *CLI) serveCache(ctx context.Context, redisAddr string) cache.Cache {
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr)
		if err == nil {
			c.Logger.Info("using shared artifact cache", "addr", redisAddr)
			return store
		}
		c.Logger.Warn("redis not available, falling back to the file cache", "addr", redisAddr, "error", err)
	}

	store, err := newCache(false)
	if err != nil {
		c.Logger.Warn("file cache not available, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	return store
}

// serveArchive connects the receipt archive. Receipts are optional, so a
// missing or unreachable MongoDB only disables them.
func (c *CLI) serveArchive(ctx context.Context, mongoURI string) server.Archive {
	if mongoURI == "" {
		return server.NullArchive{}
	}
	archive, err := server.NewMongoArchive(ctx, mongoURI)
	if err != nil {
		c.Logger.Warn("mongodb not available, receipts disabled", "error", err)
		return server.NullArchive{}
	}
	c.Logger.Info("recording render receipts", "collection", "receipts")
	return archive
}
