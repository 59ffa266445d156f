package model

import (
	"strings"
)

// Layer groups element kinds by ArchiMate layer.
type Layer string

const (
	LayerStrategy       Layer = "strategy"
	LayerBusiness       Layer = "business"
	LayerApplication    Layer = "application"
	LayerTechnology     Layer = "technology"
	LayerPhysical       Layer = "physical"
	LayerMotivation     Layer = "motivation"
	LayerImplementation Layer = "implementation"
	LayerOther          Layer = "other"
)

// ElementKind is the ArchiMate type of an element.
type ElementKind string

const (
	Resource       ElementKind = "Resource"
	Capability     ElementKind = "Capability"
	ValueStream    ElementKind = "ValueStream"
	CourseOfAction ElementKind = "CourseOfAction"

	BusinessActor         ElementKind = "BusinessActor"
	BusinessRole          ElementKind = "BusinessRole"
	BusinessCollaboration ElementKind = "BusinessCollaboration"
	BusinessInterface     ElementKind = "BusinessInterface"
	BusinessProcess       ElementKind = "BusinessProcess"
	BusinessFunction      ElementKind = "BusinessFunction"
	BusinessInteraction   ElementKind = "BusinessInteraction"
	BusinessEvent         ElementKind = "BusinessEvent"
	BusinessService       ElementKind = "BusinessService"
	BusinessObject        ElementKind = "BusinessObject"
	Contract              ElementKind = "Contract"
	Representation        ElementKind = "Representation"
	Product               ElementKind = "Product"

	ApplicationComponent     ElementKind = "ApplicationComponent"
	ApplicationCollaboration ElementKind = "ApplicationCollaboration"
	ApplicationInterface     ElementKind = "ApplicationInterface"
	ApplicationFunction      ElementKind = "ApplicationFunction"
	ApplicationInteraction   ElementKind = "ApplicationInteraction"
	ApplicationProcess       ElementKind = "ApplicationProcess"
	ApplicationEvent         ElementKind = "ApplicationEvent"
	ApplicationService       ElementKind = "ApplicationService"
	DataObject               ElementKind = "DataObject"

	Node                    ElementKind = "Node"
	Device                  ElementKind = "Device"
	SystemSoftware          ElementKind = "SystemSoftware"
	TechnologyCollaboration ElementKind = "TechnologyCollaboration"
	TechnologyInterface     ElementKind = "TechnologyInterface"
	Path                    ElementKind = "Path"
	CommunicationNetwork    ElementKind = "CommunicationNetwork"
	TechnologyFunction      ElementKind = "TechnologyFunction"
	TechnologyProcess       ElementKind = "TechnologyProcess"
	TechnologyInteraction   ElementKind = "TechnologyInteraction"
	TechnologyEvent         ElementKind = "TechnologyEvent"
	TechnologyService       ElementKind = "TechnologyService"
	Artifact                ElementKind = "Artifact"

	Equipment           ElementKind = "Equipment"
	Facility            ElementKind = "Facility"
	DistributionNetwork ElementKind = "DistributionNetwork"
	Material            ElementKind = "Material"

	Stakeholder ElementKind = "Stakeholder"
	Driver      ElementKind = "Driver"
	Assessment  ElementKind = "Assessment"
	Goal        ElementKind = "Goal"
	Outcome     ElementKind = "Outcome"
	Principle   ElementKind = "Principle"
	Requirement ElementKind = "Requirement"
	Constraint  ElementKind = "Constraint"
	Meaning     ElementKind = "Meaning"
	Value       ElementKind = "Value"

	WorkPackage         ElementKind = "WorkPackage"
	Deliverable         ElementKind = "Deliverable"
	ImplementationEvent ElementKind = "ImplementationEvent"
	Plateau             ElementKind = "Plateau"
	Gap                 ElementKind = "Gap"

	Location ElementKind = "Location"
	Grouping ElementKind = "Grouping"
	Junction ElementKind = "Junction"
)

// RelationshipKind is the ArchiMate type of a relationship.
type RelationshipKind string

const (
	Composition    RelationshipKind = "Composition"
	Aggregation    RelationshipKind = "Aggregation"
	Assignment     RelationshipKind = "Assignment"
	Realization    RelationshipKind = "Realization"
	Serving        RelationshipKind = "Serving"
	Access         RelationshipKind = "Access"
	Influence      RelationshipKind = "Influence"
	Triggering     RelationshipKind = "Triggering"
	Flow           RelationshipKind = "Flow"
	Specialization RelationshipKind = "Specialization"
	Association    RelationshipKind = "Association"
)

var elementLayers = []struct {
	layer Layer
	kinds []ElementKind
}{
	{LayerStrategy, []ElementKind{Resource, Capability, ValueStream, CourseOfAction}},
	{LayerBusiness, []ElementKind{
		BusinessActor, BusinessRole, BusinessCollaboration, BusinessInterface,
		BusinessProcess, BusinessFunction, BusinessInteraction, BusinessEvent,
		BusinessService, BusinessObject, Contract, Representation, Product,
	}},
	{LayerApplication, []ElementKind{
		ApplicationComponent, ApplicationCollaboration, ApplicationInterface,
		ApplicationFunction, ApplicationInteraction, ApplicationProcess,
		ApplicationEvent, ApplicationService, DataObject,
	}},
	{LayerTechnology, []ElementKind{
		Node, Device, SystemSoftware, TechnologyCollaboration, TechnologyInterface,
		Path, CommunicationNetwork, TechnologyFunction, TechnologyProcess,
		TechnologyInteraction, TechnologyEvent, TechnologyService, Artifact,
	}},
	{LayerPhysical, []ElementKind{Equipment, Facility, DistributionNetwork, Material}},
	{LayerMotivation, []ElementKind{
		Stakeholder, Driver, Assessment, Goal, Outcome, Principle,
		Requirement, Constraint, Meaning, Value,
	}},
	{LayerImplementation, []ElementKind{WorkPackage, Deliverable, ImplementationEvent, Plateau, Gap}},
	{LayerOther, []ElementKind{Location, Grouping, Junction}},
}

var relationshipKinds = []RelationshipKind{
	Composition, Aggregation, Assignment, Realization, Serving, Access,
	Influence, Triggering, Flow, Specialization, Association,
}

// Lookup tables populated once at init from the enumerations above.
var (
	elementKindsOrdered []ElementKind
	elementKindIndex    = map[string]ElementKind{}
	elementKindLayer    = map[ElementKind]Layer{}
	relationshipIndex   = map[string]RelationshipKind{}
	relationshipSet     = map[RelationshipKind]bool{}
)

func init() {
	for _, group := range elementLayers {
		for _, k := range group.kinds {
			elementKindsOrdered = append(elementKindsOrdered, k)
			elementKindIndex[normalizeKindName(string(k))] = k
			elementKindLayer[k] = group.layer
		}
	}
	for _, k := range relationshipKinds {
		relationshipIndex[normalizeKindName(string(k))] = k
		relationshipSet[k] = true
	}
	// Short aliases used by the DSL verbs and older model files.
	relationshipIndex["used_by"] = Serving
	relationshipIndex["usedby"] = Serving
}

// normalizeKindName folds "business_service", "business-service",
// "Business Service" and "BusinessService" to the same key.
func normalizeKindName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ElementKinds returns all element kinds in layer order.
// The returned slice is a copy and may be modified.
func ElementKinds() []ElementKind {
	return append([]ElementKind(nil), elementKindsOrdered...)
}

// RelationshipKinds returns all relationship kinds.
func RelationshipKinds() []RelationshipKind {
	return append([]RelationshipKind(nil), relationshipKinds...)
}

// LookupElementKind resolves a kind by any of its spellings.
func LookupElementKind(name string) (ElementKind, bool) {
	k, ok := elementKindIndex[normalizeKindName(name)]
	return k, ok
}

// LookupRelationshipKind resolves a relationship kind by any of its spellings.
func LookupRelationshipKind(name string) (RelationshipKind, bool) {
	if k, ok := relationshipIndex[strings.ToLower(name)]; ok {
		return k, true
	}
	k, ok := relationshipIndex[normalizeKindName(name)]
	return k, ok
}

// Valid reports whether k is a member of the element enumeration.
func (k ElementKind) Valid() bool {
	_, ok := elementKindLayer[k]
	return ok
}

// Layer returns the ArchiMate layer the kind belongs to.
func (k ElementKind) Layer() Layer { return elementKindLayer[k] }

// SnakeName returns the builder spelling of the kind, e.g. "business_service".
func (k ElementKind) SnakeName() string { return snake(string(k)) }

// Valid reports whether k is a member of the relationship enumeration.
func (k RelationshipKind) Valid() bool {
	return relationshipSet[k]
}

// SnakeName returns the builder spelling of the kind, e.g. "assignment".
func (k RelationshipKind) SnakeName() string { return snake(string(k)) }

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
