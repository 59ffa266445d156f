package viewpoint

import (
	"maps"
	"slices"
	"strings"

	m "github.com/matzehuels/archiview/pkg/model"
)

var (
	businessActive   = []m.ElementKind{m.BusinessActor, m.BusinessRole, m.BusinessCollaboration, m.BusinessInterface}
	businessBehavior = []m.ElementKind{m.BusinessProcess, m.BusinessFunction, m.BusinessInteraction, m.BusinessEvent, m.BusinessService}
	businessPassive  = []m.ElementKind{m.BusinessObject, m.Contract, m.Representation}

	applicationActive   = []m.ElementKind{m.ApplicationComponent, m.ApplicationCollaboration, m.ApplicationInterface}
	applicationBehavior = []m.ElementKind{m.ApplicationFunction, m.ApplicationInteraction, m.ApplicationProcess, m.ApplicationEvent, m.ApplicationService}

	technologyActive = []m.ElementKind{
		m.Node, m.Device, m.SystemSoftware, m.TechnologyCollaboration,
		m.TechnologyInterface, m.Path, m.CommunicationNetwork,
	}
	technologyBehavior = []m.ElementKind{
		m.TechnologyFunction, m.TechnologyProcess, m.TechnologyInteraction,
		m.TechnologyEvent, m.TechnologyService,
	}

	physical   = []m.ElementKind{m.Equipment, m.Facility, m.DistributionNetwork, m.Material}
	motivation = []m.ElementKind{
		m.Stakeholder, m.Driver, m.Assessment, m.Goal, m.Outcome,
		m.Principle, m.Requirement, m.Constraint, m.Meaning, m.Value,
	}
	composite = []m.ElementKind{m.Location, m.Grouping, m.Junction}

	structural = []m.RelationshipKind{m.Composition, m.Aggregation, m.Assignment, m.Realization, m.Specialization, m.Association}
	dependency = []m.RelationshipKind{m.Serving, m.Access, m.Influence, m.Association}
	dynamic    = []m.RelationshipKind{m.Triggering, m.Flow}
)

func kinds(groups ...[]m.ElementKind) []m.ElementKind {
	var out []m.ElementKind
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func rels(groups ...[]m.RelationshipKind) []m.RelationshipKind {
	var out []m.RelationshipKind
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Built-in viewpoints from the ArchiMate 3.1 catalogue.
var (
	ApplicationBehavior = New("Application Behavior",
		kinds(applicationActive, applicationBehavior, []m.ElementKind{m.DataObject}, composite),
		nil)

	ApplicationCooperation = New("Application Cooperation",
		kinds(applicationActive, applicationBehavior, []m.ElementKind{m.DataObject}, composite),
		rels(structural, dependency, dynamic))

	ApplicationUsage = New("Application Usage",
		kinds(businessActive, businessBehavior, []m.ElementKind{m.BusinessObject},
			applicationActive, applicationBehavior, []m.ElementKind{m.DataObject}, composite),
		nil)

	BusinessProcessCooperation = New("Business Process Cooperation",
		kinds(businessActive, businessBehavior, businessPassive,
			[]m.ElementKind{m.ApplicationComponent, m.ApplicationInterface, m.ApplicationProcess, m.ApplicationService, m.DataObject},
			composite),
		nil)

	CapabilityMap = New("Capability Map",
		kinds([]m.ElementKind{m.Capability, m.Resource, m.CourseOfAction, m.Outcome, m.Grouping, m.Location}),
		rels(structural, []m.RelationshipKind{m.Serving, m.Influence}))

	GoalRealization = New("Goal Realization",
		kinds([]m.ElementKind{m.Goal, m.Outcome, m.Principle, m.Requirement, m.Constraint, m.Grouping, m.Junction}),
		[]m.RelationshipKind{m.Realization, m.Influence, m.Aggregation, m.Composition, m.Association, m.Specialization})

	ImplementationAndDeployment = New("Implementation and Deployment",
		kinds(applicationActive, []m.ElementKind{m.DataObject}, technologyActive, []m.ElementKind{m.Artifact}, composite),
		nil)

	InformationStructure = New("Information Structure",
		kinds(businessPassive, []m.ElementKind{m.DataObject, m.Artifact, m.Meaning, m.Grouping, m.Junction}),
		[]m.RelationshipKind{m.Composition, m.Aggregation, m.Realization, m.Specialization, m.Association})

	Layered = New("Layered", m.ElementKinds(), nil)

	Motivation = New("Motivation",
		kinds(motivation, []m.ElementKind{m.Grouping, m.Junction}),
		[]m.RelationshipKind{m.Realization, m.Influence, m.Aggregation, m.Composition, m.Association, m.Specialization})

	Organization = New("Organization",
		kinds(businessActive, composite),
		rels(structural, []m.RelationshipKind{m.Serving, m.Triggering, m.Flow}))

	Physical = New("Physical",
		kinds(physical, []m.ElementKind{m.Node, m.Device, m.CommunicationNetwork, m.Path}, composite),
		nil)

	ProductView = New("Product",
		kinds([]m.ElementKind{m.Product, m.Contract, m.Value},
			businessActive, []m.ElementKind{m.BusinessService, m.BusinessProcess, m.BusinessFunction, m.BusinessInteraction, m.BusinessEvent},
			applicationActive, []m.ElementKind{m.ApplicationService},
			[]m.ElementKind{m.TechnologyService, m.TechnologyInterface}, composite),
		nil)

	ServiceRealization = New("Service Realization",
		kinds(businessActive, businessBehavior, businessPassive, []m.ElementKind{m.Product},
			applicationActive, applicationBehavior, []m.ElementKind{m.DataObject}, composite),
		nil)

	StakeholderView = New("Stakeholder",
		kinds([]m.ElementKind{m.Stakeholder, m.Driver, m.Assessment, m.Goal, m.Outcome, m.Grouping, m.Junction}),
		[]m.RelationshipKind{m.Influence, m.Realization, m.Aggregation, m.Composition, m.Association, m.Specialization})

	Strategy = New("Strategy",
		kinds([]m.ElementKind{m.Resource, m.Capability, m.ValueStream, m.CourseOfAction, m.Outcome, m.Grouping, m.Junction}),
		nil)

	Technology = New("Technology",
		kinds(technologyActive, technologyBehavior, []m.ElementKind{m.Artifact}, composite),
		nil)

	TechnologyUsage = New("Technology Usage",
		kinds(applicationActive, applicationBehavior, []m.ElementKind{m.DataObject},
			technologyActive, technologyBehavior, []m.ElementKind{m.Artifact}, composite),
		nil)

	ValueStreamView = New("Value Stream",
		kinds([]m.ElementKind{m.ValueStream, m.Capability, m.Outcome, m.Value, m.Stakeholder, m.Grouping, m.Junction}),
		rels(structural, []m.RelationshipKind{m.Serving, m.Triggering, m.Flow, m.Influence}))
)

var registry = map[string]*Viewpoint{}

func init() {
	for _, vp := range []*Viewpoint{
		Total, ApplicationBehavior, ApplicationCooperation, ApplicationUsage,
		BusinessProcessCooperation, CapabilityMap, GoalRealization,
		ImplementationAndDeployment, InformationStructure, Layered, Motivation,
		Organization, Physical, ProductView, ServiceRealization, StakeholderView,
		Strategy, Technology, TechnologyUsage, ValueStreamView,
	} {
		registry[key(vp.Name())] = vp
	}
}

func key(name string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(name))
}

// Lookup resolves a built-in viewpoint by name. Names are matched case- and
// separator-insensitively: "application_behavior", "Application Behavior"
// and "ApplicationBehavior" are the same viewpoint. An empty name is Total.
func Lookup(name string) (*Viewpoint, bool) {
	if name == "" {
		return Total, true
	}
	vp, ok := registry[key(name)]
	return vp, ok
}

// All returns the built-in viewpoints sorted by name.
func All() []*Viewpoint {
	out := slices.Collect(maps.Values(registry))
	slices.SortFunc(out, func(a, b *Viewpoint) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}
