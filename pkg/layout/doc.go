// Package layout turns a filtered set of elements and relationships into
// positioned nodes and routed edges by delegating to an external layout engine.
//
// # Pipeline
//
//	elements, relationships
//	    → Build()        abstract layout graph (nodes keyed by element id)
//	    → ToDOT()        Graphviz input with fixed styling hints
//	    → Engine.Layout  external engine (see pkg/layout/engine)
//	    → plain.Parse    typed graph/node/edge records
//	    → Resolve()      ids mapped back to the model, geometry transformed
//
// [Run] performs the whole sequence.
//
// # Direction Convention
//
// Edges are submitted from target to source under rankdir=TB so that a
// relationship's target is ranked above its source. The engine therefore
// reports control points from target to source; [Transform.Bendpoints]
// reverses them back into source-to-target order.
//
// # Coordinates
//
// Engine output uses inches with a bottom-left origin. Diagrams use pixels
// with a top-left origin:
//
//	px = x * Scale
//	py = H*Scale - y*Scale   (H = canvas height from the graph record)
//
// Node bounds are anchored at the true top-left corner of the box, so bend
// points need no additional anchor offset.
package layout
