// Package pkg holds the archiview libraries.
//
// archiview builds ArchiMate models in Go or from TOML/YAML model files and
// renders views of them into diagrams with pixel coordinates. The flow for
// one view is:
//
//	model (elements + relationships)
//	         ↓
//	    [view] selection (explicit lists, All, ForEndpoints)
//	         ↓
//	    [viewpoint] filter (allowed kinds, endpoint re-check)
//	         ↓
//	    [layout] graph → DOT → engine → plain output → geometry
//	         ↓
//	    [model] Diagram (view nodes, connections, bend points)
//
// # Packages
//
//   - [model]: elements, relationships, diagrams and the kind enumerations
//   - [viewpoint]: the built-in viewpoint catalogue and its filter
//   - [layout]: layout graph, DOT serialization, plain-format resolution and
//     the coordinate transform; [layout/engine] holds Graphviz adapters and
//     caching/retrying decorators
//   - [view]: selection, rendering and diagram assembly
//   - [builder]: declarative model construction with deferred, parallel view
//     rendering
//   - [modelfile]: TOML/YAML model files with includes
//   - [export]: JSON and SVG output
//   - [api]: the HTTP render service
//   - [cache]: file, memory and redis caches for engine output
//   - [observability]: render, cache and HTTP hooks
//   - [errors]: coded errors and input validation
//
// # Quick Start
//
//	b := builder.New("Shop")
//	web := b.Element(model.ApplicationComponent, "web shop")
//	orders := b.Element(model.ApplicationService, "orders")
//	b.Realizes(web, orders)
//	b.View("Overview", view.Options{Viewpoint: viewpoint.ApplicationUsage})
//	m, err := b.Build(ctx)
//
// [model]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/model
// [viewpoint]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/viewpoint
// [layout]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/layout
// [layout/engine]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/layout/engine
// [view]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/view
// [builder]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/builder
// [modelfile]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/modelfile
// [export]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/export
// [api]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/api
// [cache]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/archiview/pkg/errors
package pkg
