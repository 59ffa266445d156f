// Package viewpoint restricts which element and relationship kinds a view may show.
//
// A [Viewpoint] is a named predicate pair over element kinds and relationship
// kinds. The [Total] viewpoint applies no restriction. Viewpoints are
// stateless and safe to share between concurrent renders.
//
// Filtering is two-step: elements are reduced by kind first, then
// relationships are reduced by kind AND by requiring both endpoints to have
// survived element filtering:
//
//	elems, rels := viewpoint.ApplicationCooperation.Filter(elems, rels)
package viewpoint

import (
	"slices"

	"github.com/matzehuels/archiview/pkg/model"
)

// TotalName is the name of the unrestricted viewpoint.
const TotalName = "total"

// Viewpoint is a named filter over element and relationship kinds.
type Viewpoint struct {
	name          string
	elements      map[model.ElementKind]bool
	relationships map[model.RelationshipKind]bool
	total         bool
}

// Total allows every element and relationship.
var Total = &Viewpoint{name: TotalName, total: true}

// New creates a restricted viewpoint. A nil relationship list allows every
// relationship kind (endpoint membership is still enforced).
func New(name string, elements []model.ElementKind, relationships []model.RelationshipKind) *Viewpoint {
	vp := &Viewpoint{
		name:     name,
		elements: make(map[model.ElementKind]bool, len(elements)),
	}
	for _, k := range elements {
		vp.elements[k] = true
	}
	if relationships == nil {
		relationships = model.RelationshipKinds()
	}
	vp.relationships = make(map[model.RelationshipKind]bool, len(relationships))
	for _, k := range relationships {
		vp.relationships[k] = true
	}
	return vp
}

// Name returns the viewpoint's name.
func (vp *Viewpoint) Name() string { return vp.name }

// IsTotal reports whether the viewpoint is the unrestricted sentinel.
func (vp *Viewpoint) IsTotal() bool { return vp == nil || vp.total }

// AllowsElement reports whether elements of kind k may appear.
func (vp *Viewpoint) AllowsElement(k model.ElementKind) bool {
	return vp.IsTotal() || vp.elements[k]
}

// AllowsRelationship reports whether relationships of kind k may appear.
func (vp *Viewpoint) AllowsRelationship(k model.RelationshipKind) bool {
	return vp.IsTotal() || vp.relationships[k]
}

// ElementKinds returns the allowed element kinds, sorted. Nil for Total.
func (vp *Viewpoint) ElementKinds() []model.ElementKind {
	if vp.IsTotal() {
		return nil
	}
	out := make([]model.ElementKind, 0, len(vp.elements))
	for k := range vp.elements {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// RelationshipKinds returns the allowed relationship kinds, sorted. Nil for Total.
func (vp *Viewpoint) RelationshipKinds() []model.RelationshipKind {
	if vp.IsTotal() {
		return nil
	}
	out := make([]model.RelationshipKind, 0, len(vp.relationships))
	for k := range vp.relationships {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Filter returns the subsets of elements and relationships allowed by the
// viewpoint. Input order is preserved. For Total the inputs are returned
// unchanged.
func (vp *Viewpoint) Filter(elements []*model.Element, relationships []*model.Relationship) ([]*model.Element, []*model.Relationship) {
	if vp.IsTotal() {
		return elements, relationships
	}

	kept := make([]*model.Element, 0, len(elements))
	for _, e := range elements {
		if vp.elements[e.Kind] {
			kept = append(kept, e)
		}
	}

	members := model.NewElementSet(kept)
	rels := make([]*model.Relationship, 0, len(relationships))
	for _, r := range relationships {
		if vp.relationships[r.Kind] && members.Connects(r) {
			rels = append(rels, r)
		}
	}
	return kept, rels
}
