package view

import (
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/model"
)

// Assemble creates a Diagram from a layout result. Every ViewNode and
// Connection gets a fresh id from m; the diagram uses opts.ID when set.
func Assemble(m *model.Model, opts Options, res *layout.Result) (*model.Diagram, error) {
	nodes := make([]*model.ViewNode, 0, len(res.Nodes))
	byElement := make(map[*model.Element]*model.ViewNode, len(res.Nodes))
	for _, pn := range res.Nodes {
		vn := &model.ViewNode{Element: pn.Element, Bounds: pn.Bounds}
		nodes = append(nodes, vn)
		byElement[pn.Element] = vn
	}

	conns := make([]*model.Connection, 0, len(res.Edges))
	for _, re := range res.Edges {
		src, ok := byElement[re.Source]
		if !ok {
			return nil, errors.Unresolved("element", re.Source.ID)
		}
		tgt, ok := byElement[re.Target]
		if !ok {
			return nil, errors.Unresolved("element", re.Target.ID)
		}
		conns = append(conns, &model.Connection{
			Relationship: re.Relationship,
			Source:       src,
			Target:       tgt,
			Bendpoints:   re.Bendpoints,
		})
	}

	id := opts.ID
	if id == "" {
		id = m.NewID()
	}
	for _, n := range nodes {
		n.ID = m.NewID()
	}
	for _, c := range conns {
		c.ID = m.NewID()
	}

	vpName := ""
	if opts.Viewpoint != nil {
		vpName = opts.Viewpoint.Name()
	}
	return &model.Diagram{
		ID:          id,
		Name:        opts.Name,
		Viewpoint:   vpName,
		Width:       res.Width,
		Height:      res.Height,
		Nodes:       nodes,
		Connections: conns,
	}, nil
}
