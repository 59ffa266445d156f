package model

import (
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/archiview/pkg/errors"
)

// idPrefix keeps minted ids valid XML NCNames (they must not start with a digit).
const idPrefix = "id-"

// Model owns elements, relationships, diagrams and properties.
//
// The zero value is not usable - use New to create a Model.
type Model struct {
	ID            string
	Name          string
	Documentation string
	Version       string

	Elements            []*Element
	Relationships       []*Relationship
	Diagrams            []*Diagram
	PropertyDefinitions []*PropertyDefinition
	Properties          []Property

	mu            sync.Mutex
	ids           map[string]struct{}
	elements      map[string]*Element
	relationships map[string]*Relationship
}

// New creates an empty model. If id is empty one is minted.
func New(id, name string) *Model {
	m := &Model{
		Name:          name,
		ids:           make(map[string]struct{}),
		elements:      make(map[string]*Element),
		relationships: make(map[string]*Relationship),
	}
	if id == "" || m.Reserve(id) != nil {
		id = m.NewID()
	}
	m.ID = id
	return m
}

// NewID mints a fresh identifier that has never been used in this model.
// It is safe for concurrent use.
func (m *Model) NewID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		id := idPrefix + uuid.NewString()
		if _, taken := m.ids[id]; !taken {
			m.ids[id] = struct{}{}
			return id
		}
	}
}

// Reserve claims an explicit identifier. It returns a DUPLICATE_ID error if
// the id is already used by anything in the model.
func (m *Model) Reserve(id string) error {
	if err := errors.ValidateID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.ids[id]; taken {
		return errors.New(errors.ErrCodeDuplicateID, "id %q already in use", id)
	}
	m.ids[id] = struct{}{}
	return nil
}

// InUse reports whether id has been minted or reserved.
func (m *Model) InUse(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok
}

// AddElement appends e. If e.ID is empty a fresh id is minted, otherwise
// the explicit id is reserved.
func (m *Model) AddElement(e *Element) error {
	if !e.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", e.Kind)
	}
	if err := errors.ValidateName(e.Name); err != nil {
		return err
	}
	if err := m.claim(&e.ID); err != nil {
		return err
	}
	m.Elements = append(m.Elements, e)
	m.elements[e.ID] = e
	return nil
}

// AddRelationship appends r. Both endpoints must already belong to m.
func (m *Model) AddRelationship(r *Relationship) error {
	if !r.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown relationship kind %q", r.Kind)
	}
	if r.Source == nil || r.Target == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s relationship requires source and target", r.Kind)
	}
	if !m.Contains(r.Source) {
		return errors.New(errors.ErrCodeContext, "source %q is not an element of model %q", r.Source.ID, m.Name)
	}
	if !m.Contains(r.Target) {
		return errors.New(errors.ErrCodeContext, "target %q is not an element of model %q", r.Target.ID, m.Name)
	}
	if err := m.claim(&r.ID); err != nil {
		return err
	}
	m.Relationships = append(m.Relationships, r)
	m.relationships[r.ID] = r
	return nil
}

// AddDiagram appends a rendered diagram. Diagram, node and connection ids
// are expected to have been minted by NewID or reserved already.
func (m *Model) AddDiagram(d *Diagram) {
	m.Diagrams = append(m.Diagrams, d)
}

// PropertyDefinition returns the definition named key, creating it if needed.
func (m *Model) PropertyDefinition(key string) *PropertyDefinition {
	for _, pd := range m.PropertyDefinitions {
		if pd.Name == key {
			return pd
		}
	}
	pd := &PropertyDefinition{ID: m.NewID(), Name: key}
	m.PropertyDefinitions = append(m.PropertyDefinitions, pd)
	return pd
}

// SetProperty appends a model-level property.
func (m *Model) SetProperty(key, value string) {
	m.Properties = append(m.Properties, Property{Definition: m.PropertyDefinition(key), Value: value})
}

// Element looks up an element by id.
func (m *Model) Element(id string) (*Element, bool) {
	e, ok := m.elements[id]
	return e, ok
}

// Relationship looks up a relationship by id.
func (m *Model) Relationship(id string) (*Relationship, bool) {
	r, ok := m.relationships[id]
	return r, ok
}

// Contains reports whether e is an element of this model (pointer identity).
func (m *Model) Contains(e *Element) bool {
	if e == nil {
		return false
	}
	got, ok := m.elements[e.ID]
	return ok && got == e
}

// Diagram returns the first diagram with the given name.
func (m *Model) Diagram(name string) (*Diagram, bool) {
	for _, d := range m.Diagrams {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

func (m *Model) claim(id *string) error {
	if *id == "" {
		*id = m.NewID()
		return nil
	}
	return m.Reserve(*id)
}
