package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archiview/pkg/buildinfo"
	"github.com/matzehuels/archiview/pkg/builder"
	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/export"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/layout/engine"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/modelfile"
	"github.com/matzehuels/archiview/pkg/view"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderOpts holds the flags of the render command.
type renderOpts struct {
	engineOpts
	output   string        // JSON output path; "-" for stdout, empty for <model>.json
	svgDir   string        // directory for one SVG per view
	timeout  time.Duration // per-view layout timeout
	parallel int           // views laid out at once; 0 is unlimited
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{timeout: view.DefaultTimeout}

	cmd := &cobra.Command{
		Use:   "render MODEL",
		Short: "Render the views of a model file",
		Long: `Render loads a TOML or YAML model file, lays out every declared view and
writes the model together with its diagrams as JSON. With --svg, Graphviz's
own drawing of each view is written alongside.`,
		Example: `  archiview render archisurance.toml
  archiview render shop.yaml -o - | jq '.diagrams[0].nodes'
  archiview render shop.yaml -s svg/ --engine dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	opts.engineOpts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output JSON file ("-" for stdout; default <model>.json)`)
	cmd.Flags().StringVarP(&opts.svgDir, "svg", "s", "", "write an SVG per view into this directory")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "layout timeout per view")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "views laid out concurrently (0 = unlimited)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	quiet := opts.output == stdoutPath
	prog := newProgress(logger)

	f, err := modelfile.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded model file", "path", path, "elements", len(f.Elements),
		"relationships", len(f.Relationships), "views", len(f.Views))

	eng, ch, err := c.newEngine(ctx, opts.engineOpts)
	if err != nil {
		return err
	}
	defer ch.Close()

	renderer := view.NewRenderer(eng, logger)
	renderer.Timeout = opts.timeout

	spin := newSpinner(ctx, fmt.Sprintf("Laying out %d views with %s", len(f.Views), eng.Name()))
	if !quiet {
		spin.Start()
	}
	m, err := f.Build(ctx, builder.WithRenderer(renderer), builder.WithParallelism(opts.parallel))
	spin.Stop()
	if err != nil {
		return err
	}

	var svgs []string
	if opts.svgDir != "" {
		if svgs, err = writeSVGs(ctx, m, f, opts.svgDir, ch); err != nil {
			return err
		}
	}

	out := opts.output
	if out == "" {
		out = defaultOutput(path)
	}
	if quiet {
		return export.Write(m, stdout)
	}
	if err := export.WriteFile(m, out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d views", len(m.Diagrams)))

	printSuccess("%s", m.Name)
	for _, d := range m.Diagrams {
		printDiagram(d.Name, len(d.Nodes), len(d.Connections), d.Width, d.Height)
	}
	printFile(out)
	for _, p := range svgs {
		printFile(p)
	}
	return nil
}

func writeSVGs(ctx context.Context, m *model.Model, f *modelfile.File, dir string, ch cache.Cache) ([]string, error) {
	var svg export.SVGRenderer = engine.NewGraphviz()
	svg = export.NewCachedSVG(svg, ch, cache.NewScopedKeyer(nil, buildinfo.CacheNamespace()))
	return export.WriteSVGs(ctx, svg, m, dir, func(name string) layout.Style { return f.Style(name) })
}

// defaultOutput replaces the model file's extension with .json.
func defaultOutput(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}
