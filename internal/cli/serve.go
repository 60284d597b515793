package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrToKa/traylay/pkg/cache"
	"github.com/MrToKa/traylay/pkg/pipeline"
	"github.com/MrToKa/traylay/pkg/server"
)

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		redisAddr string
		scope     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "serve [project.json]",
		Short: "Serve layout previews over HTTP",
		Long: `Serve tray layout previews over HTTP.

The server reads the project file on each request, so edits to the file
show up on reload. Rendered layouts are cached by content, making repeated
requests cheap.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectPath = args[0]
			return c.runServe(cmd.Context(), opts, addr, noCache, redisAddr, scope)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "layout configuration file (TOML)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "canvas scale in px per mm (default 2)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&scope, "scope", "", "cache key prefix for multi-deployment setups")

	return cmd
}

// serveRunner builds the runner for the preview server. With --redis the
// cache is shared, and --scope isolates deployments in one keyspace.
func (c *CLI) serveRunner(ctx context.Context, noCache bool, redisAddr, scope string) (*pipeline.Runner, error) {
	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope+":")
	}

	if redisAddr == "" {
		cch, err := newCache(noCache)
		if err != nil {
			return nil, err
		}
		return pipeline.NewRunner(cch, keyer, c.Logger), nil
	}

	cch, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: redisAddr})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return pipeline.NewRunner(cch, keyer, c.Logger), nil
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string, noCache bool, redisAddr, scope string) error {
	runner, err := c.serveRunner(ctx, noCache, redisAddr, scope)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(runner, opts, c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	printInfo("Serving %s on http://localhost%s", opts.ProjectPath, addr)
	printNextStep("Tray listing", fmt.Sprintf("curl http://localhost%s/api/trays", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
