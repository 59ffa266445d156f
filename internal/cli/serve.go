package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archiview/pkg/api"
	"github.com/matzehuels/archiview/pkg/buildinfo"
	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/export"
	"github.com/matzehuels/archiview/pkg/layout/engine"
	"github.com/matzehuels/archiview/pkg/view"
)

type serveOpts struct {
	engineOpts
	addr           string
	timeout        time.Duration // per-view layout timeout
	requestTimeout time.Duration
	maxBody        int64
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:           ":8080",
		timeout:        view.DefaultTimeout,
		requestTimeout: 2 * time.Minute,
		maxBody:        api.DefaultMaxBody,
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}
	opts.engineOpts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "layout timeout per view")
	cmd.Flags().DurationVar(&opts.requestTimeout, "request-timeout", opts.requestTimeout, "timeout per request")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "largest accepted model file in bytes")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	eng, ch, err := c.newEngine(ctx, opts.engineOpts)
	if err != nil {
		return err
	}
	defer ch.Close()

	renderer := view.NewRenderer(eng, logger)
	renderer.Timeout = opts.timeout
	svg := export.NewCachedSVG(engine.NewGraphviz(), ch, cache.NewScopedKeyer(nil, buildinfo.CacheNamespace()))

	srv := &http.Server{
		Addr: opts.addr,
		Handler: api.New(renderer, logger,
			api.WithSVG(svg),
			api.WithMaxBody(opts.maxBody),
			api.WithRequestTimeout(opts.requestTimeout),
		).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("serving render API", "addr", opts.addr, "engine", eng.Name(), "version", buildinfo.Version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
