package builder

import (
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/model"
)

type itemConfig struct {
	id, doc string
	props   [][2]string
}

// ElementOption configures a declared element or relationship.
type ElementOption func(*itemConfig)

// WithElementID sets an explicit id. It must be an XML NCName unique in the model.
func WithElementID(id string) ElementOption { return func(c *itemConfig) { c.id = id } }

// WithDoc sets the documentation.
func WithDoc(doc string) ElementOption { return func(c *itemConfig) { c.doc = doc } }

// WithProperty adds a property. Definitions are shared model-wide by key.
func WithProperty(key, value string) ElementOption {
	return func(c *itemConfig) { c.props = append(c.props, [2]string{key, value}) }
}

func (b *Builder) properties(props [][2]string) []model.Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]model.Property, 0, len(props))
	for _, kv := range props {
		out = append(out, model.Property{Definition: b.m.PropertyDefinition(kv[0]), Value: kv[1]})
	}
	return out
}

// Element declares an element. It returns nil once the builder holds an error.
func (b *Builder) Element(kind model.ElementKind, name string, opts ...ElementOption) *model.Element {
	if !b.ready() {
		return nil
	}
	var cfg itemConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &model.Element{ID: cfg.id, Kind: kind, Name: name, Documentation: cfg.doc}
	if err := b.m.AddElement(e); err != nil {
		b.fail(err)
		return nil
	}
	e.Properties = b.properties(cfg.props)
	return e
}

// Add declares an element by kind name ("business_service" or "BusinessService").
func (b *Builder) Add(kindName, name string, opts ...ElementOption) *model.Element {
	if !b.ready() {
		return nil
	}
	kind, ok := model.LookupElementKind(kindName)
	if !ok {
		b.fail(errors.New(errors.ErrCodeInvalidKind, "unknown element kind %q", kindName))
		return nil
	}
	return b.Element(kind, name, opts...)
}

// Relationship declares a relationship from source to target.
func (b *Builder) Relationship(kind model.RelationshipKind, source, target *model.Element, opts ...ElementOption) *model.Relationship {
	if !b.ready() {
		return nil
	}
	var cfg itemConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &model.Relationship{ID: cfg.id, Kind: kind, Documentation: cfg.doc, Source: source, Target: target}
	if err := b.m.AddRelationship(r); err != nil {
		b.fail(err)
		return nil
	}
	r.Properties = b.properties(cfg.props)
	return r
}

// Connect declares a relationship by kind name ("assignment", "used_by", ...).
func (b *Builder) Connect(kindName string, source, target *model.Element, opts ...ElementOption) *model.Relationship {
	if !b.ready() {
		return nil
	}
	kind, ok := model.LookupRelationshipKind(kindName)
	if !ok {
		b.fail(errors.New(errors.ErrCodeInvalidKind, "unknown relationship kind %q", kindName))
		return nil
	}
	return b.Relationship(kind, source, target, opts...)
}

// AssignedTo declares an assignment from source to target.
func (b *Builder) AssignedTo(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Assignment, source, target)
}

// Realizes declares a realization from source to target.
func (b *Builder) Realizes(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Realization, source, target)
}

// Serves declares that source serves target.
func (b *Builder) Serves(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Serving, source, target)
}

// Accesses declares that source accesses target.
func (b *Builder) Accesses(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Access, source, target)
}

// Composes declares that source is composed of target.
func (b *Builder) Composes(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Composition, source, target)
}

// Aggregates declares that source aggregates target.
func (b *Builder) Aggregates(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Aggregation, source, target)
}

// Triggers declares that source triggers target.
func (b *Builder) Triggers(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Triggering, source, target)
}

// FlowsTo declares a flow from source to target.
func (b *Builder) FlowsTo(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Flow, source, target)
}

// Influences declares that source influences target.
func (b *Builder) Influences(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Influence, source, target)
}

// Specializes declares that source is a specialization of target.
func (b *Builder) Specializes(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Specialization, source, target)
}

// AssociatedWith declares an association between source and target.
func (b *Builder) AssociatedWith(source, target *model.Element) *model.Relationship {
	return b.Relationship(model.Association, source, target)
}
