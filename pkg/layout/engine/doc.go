// Package engine provides layout engines that turn DOT into Graphviz plain output.
//
// All engines implement [layout.Engine]:
//
//   - [Graphviz]: in-process Graphviz compiled to WebAssembly (go-graphviz).
//     Needs no system installation and is the default.
//   - [Exec]: the system "dot" binary, for deployments that want a native
//     Graphviz build or a specific version.
//   - [Static] and [Func]: canned or computed output, for tests and replays.
//
// Two decorators wrap any engine:
//
//   - [Cached] stores output in a [cache.Cache] keyed by the DOT content hash.
//   - [Retrying] retries failures marked with [cache.Retryable].
//
// Typical CLI wiring:
//
//	fc, _ := cache.NewFileCache(dir)
//	eng := engine.NewCached(engine.NewGraphviz(), fc, nil)
package engine
