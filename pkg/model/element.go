package model

// PropertyDefinition names a property key shared across a model.
type PropertyDefinition struct {
	ID   string
	Name string
}

// Property is a value bound to a PropertyDefinition.
type Property struct {
	Definition *PropertyDefinition
	Value      string
}

// Key returns the property's definition name, or "" if unbound.
func (p Property) Key() string {
	if p.Definition == nil {
		return ""
	}
	return p.Definition.Name
}

// Element is a typed node in the architecture model.
// The ID never changes once the element has been added to a Model.
type Element struct {
	ID            string
	Kind          ElementKind
	Name          string
	Documentation string
	Properties    []Property
}

// Relationship is a typed, directed edge between two elements.
// Source and Target are non-owning references into the same Model.
type Relationship struct {
	ID            string
	Kind          RelationshipKind
	Name          string
	Documentation string
	Source        *Element
	Target        *Element
	Properties    []Property
}

// ElementSet is a membership index over elements keyed by pointer identity.
type ElementSet map[*Element]struct{}

// NewElementSet indexes the given elements.
func NewElementSet(elements []*Element) ElementSet {
	s := make(ElementSet, len(elements))
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

// Has reports whether e is a member of the set.
func (s ElementSet) Has(e *Element) bool {
	_, ok := s[e]
	return ok
}

// Connects reports whether both endpoints of r are in the set.
func (s ElementSet) Connects(r *Relationship) bool {
	return s.Has(r.Source) && s.Has(r.Target)
}
