// Package view renders a filtered subset of a model into a laid-out diagram.
//
// Rendering a view runs five stages:
//
//  1. Select: resolve the element and relationship selectors against the model
//  2. Filter: restrict the selection by the view's viewpoint
//  3. Build: turn the selection into a layout graph
//  4. Layout: run the layout engine and transform its geometry
//  5. Assemble: create a Diagram with fresh ViewNodes and Connections
//
// Stages 1 to 4 never touch the model. A Diagram is only created after every
// stage succeeded, so a failed render leaves nothing behind.
//
// # Usage
//
//	r := view.NewRenderer(engine.NewGraphviz(), logger)
//	d, err := r.Render(ctx, m, view.Options{
//	    Name:      "Application Cooperation",
//	    Viewpoint: viewpoint.ApplicationCooperation,
//	})
//	if err != nil {
//	    return err
//	}
//	m.AddDiagram(d)
//
// The renderer holds no per-render state; one Renderer can serve concurrent
// renders against the same model.
package view
