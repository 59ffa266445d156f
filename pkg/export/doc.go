// Package export writes models and their rendered diagrams to JSON and SVG.
//
// # JSON Format
//
// A model is written as a single object. Elements and relationships carry
// their own ids; everything that points at another object does so by id:
//
//	{
//	  "id": "id-6f0c...",
//	  "name": "Shop",
//	  "elements": [{"id": "web", "kind": "ApplicationComponent", "name": "web shop"}],
//	  "relationships": [{"id": "r1", "kind": "Realization", "source": "web", "target": "orders"}],
//	  "diagrams": [{
//	    "id": "id-...", "name": "All", "viewpoint": "Total", "width": 220, "height": 220,
//	    "nodes": [{"id": "id-...", "element": "web", "bounds": {"x": 0, "y": 82.5, "width": 110, "height": 55}}],
//	    "connections": [{"id": "id-...", "relationship": "r1", "source": "id-...", "target": "id-...", "bendpoints": []}]
//	  }]
//	}
//
// Use [Write] for any io.Writer, [WriteFile] for files and [Marshal] for
// in-memory output. [FromModel] returns the wire types for callers that embed
// them in their own responses.
//
// # SVG
//
// [SVG] re-submits a diagram's nodes and connections to a Graphviz renderer
// and returns the drawing Graphviz produces. It is a preview, not an
// ArchiMate notation renderer.
package export
