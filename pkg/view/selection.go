package view

import (
	"github.com/matzehuels/archiview/pkg/model"
)

// ElementSelector picks the elements of a view. The zero value selects all
// model elements.
type ElementSelector struct {
	explicit bool
	list     []*model.Element
}

// AllElements selects every element of the model.
func AllElements() ElementSelector { return ElementSelector{} }

// Elements selects exactly the given elements.
func Elements(elements ...*model.Element) ElementSelector {
	return ElementSelector{explicit: true, list: elements}
}

// IsAll reports whether the selector picks every model element.
func (s ElementSelector) IsAll() bool { return !s.explicit }

// Resolve returns the selected elements as a fresh slice.
func (s ElementSelector) Resolve(all []*model.Element) []*model.Element {
	if s.explicit {
		return append([]*model.Element(nil), s.list...)
	}
	return append([]*model.Element(nil), all...)
}

// RelationshipMode says how a RelationshipSelector picks relationships.
type RelationshipMode int

const (
	// ForEndpoints selects relationships whose source and target are both
	// selected elements.
	ForEndpoints RelationshipMode = iota
	// AllRelationshipsMode selects every relationship of the model.
	AllRelationshipsMode
	// ExplicitRelationships selects a given list verbatim.
	ExplicitRelationships
)

// String returns the mode name used in model files.
func (m RelationshipMode) String() string {
	switch m {
	case AllRelationshipsMode:
		return "all"
	case ExplicitRelationships:
		return "explicit"
	}
	return "for_elements"
}

// RelationshipSelector picks the relationships of a view. The zero value
// selects the relationships connecting the selected elements.
type RelationshipSelector struct {
	mode RelationshipMode
	list []*model.Relationship
}

// RelationshipsForEndpoints selects relationships between selected elements.
func RelationshipsForEndpoints() RelationshipSelector { return RelationshipSelector{} }

// AllRelationships selects every relationship of the model.
func AllRelationships() RelationshipSelector {
	return RelationshipSelector{mode: AllRelationshipsMode}
}

// Relationships selects exactly the given relationships.
func Relationships(relationships ...*model.Relationship) RelationshipSelector {
	return RelationshipSelector{mode: ExplicitRelationships, list: relationships}
}

// Mode returns how the selector picks relationships.
func (s RelationshipSelector) Mode() RelationshipMode { return s.mode }

// Resolve returns the selected relationships as a fresh slice, in model order
// for ForEndpoints and AllRelationshipsMode.
func (s RelationshipSelector) Resolve(all []*model.Relationship, elements []*model.Element) []*model.Relationship {
	switch s.mode {
	case AllRelationshipsMode:
		return append([]*model.Relationship(nil), all...)
	case ExplicitRelationships:
		return append([]*model.Relationship(nil), s.list...)
	}

	members := model.NewElementSet(elements)
	out := make([]*model.Relationship, 0, len(all))
	for _, r := range all {
		if members.Connects(r) {
			out = append(out, r)
		}
	}
	return out
}

// Selection is a resolved element and relationship set.
type Selection struct {
	Elements      []*model.Element
	Relationships []*model.Relationship
}

// Select resolves the selectors of opts against the current content of m.
// The model must not be mutated concurrently.
func Select(m *model.Model, opts Options) Selection {
	elems := opts.Elements.Resolve(m.Elements)
	return Selection{
		Elements:      elems,
		Relationships: opts.Relationships.Resolve(m.Relationships, elems),
	}
}
