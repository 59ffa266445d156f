// Package model defines the ArchiMate data model rendered by archiview.
//
// # Core Types
//
//   - [Element]: a typed node (business service, application component, ...)
//   - [Relationship]: a typed directed edge between two elements of the same model
//   - [Diagram]: a rendered view made of [ViewNode] and [Connection] records
//   - [Model]: owner of all of the above plus properties and the id allocator
//
// # Kinds
//
// Element and relationship kinds are closed enumerations. The registry built at
// package init maps every spelling used by model files and the builder
// ("business_service", "BusinessService", "business-service") to its kind:
//
//	kind, ok := model.LookupElementKind("application_component")
//
// # Identifiers
//
// Identifiers are globally unique within a model. [Model.NewID] mints
// "id-<uuid>" values; [Model.Reserve] claims an explicit id and rejects
// duplicates across elements, relationships, diagrams, view nodes,
// connections and property definitions alike.
//
// # Concurrency
//
// Id allocation is safe for concurrent use. All other mutation (adding
// elements, relationships, diagrams) must be done by a single goroutine;
// concurrent renders only read elements and relationships.
package model
