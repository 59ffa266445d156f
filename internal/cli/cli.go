// Package cli implements the archiview command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/archiview/pkg/buildinfo"
	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/layout/engine"
	"github.com/matzehuels/archiview/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// redisPasswordEnv keeps the password out of the process list.
const redisPasswordEnv = "ARCHIVIEW_REDIS_PASSWORD"

const (
	engineGraphviz = "graphviz" // in-process Graphviz
	engineDot      = "dot"      // system dot binary
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	verbose bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "archiview",
		Short: "archiview renders ArchiMate views as laid-out diagrams",
		Long: `archiview loads an ArchiMate model described in TOML or YAML, filters each
declared view through its viewpoint, lays the view out with Graphviz and writes
the model with positioned diagrams as JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetRenderHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetHTTPHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewpointsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// engineOpts selects and decorates the layout engine.
type engineOpts struct {
	engine  string // graphviz or dot
	dotPath string // dot binary for the dot engine
	noCache bool
	redis   string // redis address; empty uses the file cache
}

func (o *engineOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.engine, "engine", engineGraphviz, "layout engine: graphviz (in-process), dot (system binary)")
	cmd.Flags().StringVar(&o.dotPath, "dot-path", "", "dot binary for --engine dot (default: dot from PATH)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().StringVar(&o.redis, "redis", "", "cache layouts in redis at this address instead of on disk")
}

// newEngine builds the layout engine described by opts. The returned cache
// must be closed by the caller.
func (c *CLI) newEngine(ctx context.Context, opts engineOpts) (layout.Engine, cache.Cache, error) {
	var base layout.Engine
	switch opts.engine {
	case "", engineGraphviz:
		base = engine.NewGraphviz()
	case engineDot:
		e := engine.NewExec(opts.dotPath)
		if !e.Available() {
			return nil, nil, fmt.Errorf("--engine dot: %s not found on PATH", orDefault(opts.dotPath, "dot"))
		}
		base = engine.NewRetrying(e, cache.DefaultBackoff)
	default:
		return nil, nil, fmt.Errorf("invalid engine: %s (must be %q or %q)", opts.engine, engineGraphviz, engineDot)
	}

	ch, err := c.newCache(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheNamespace())
	return engine.NewCached(base, ch, keyer).WithLogger(c.Logger), ch, nil
}

func (c *CLI) newCache(ctx context.Context, opts engineOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redis != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     opts.redis,
			Password: os.Getenv(redisPasswordEnv),
			Prefix:   buildinfo.Product + ":",
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rc, nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
