// Package api serves model rendering over HTTP.
//
// Routes:
//
//	GET  /health                  liveness
//	GET  /api/v1/viewpoints       built-in viewpoints and their allowed kinds
//	GET  /api/v1/kinds            element and relationship kinds
//	POST /api/v1/render           model file in, model with diagrams out (JSON)
//	POST /api/v1/render/svg       model file in, SVG of one view out
//
// Render requests carry a TOML or YAML model file as the body. The format is
// taken from the "format" query parameter, then from the Content-Type header
// (application/toml, application/yaml, text/yaml), and defaults to TOML.
// Includes are rejected because the server never reads from disk.
//
// Errors are returned as {"error": {"code": "...", "message": "..."}} with a
// status derived from the error code.
package api
