// Package modelfile loads model declarations from TOML or YAML files.
//
// A model file lists properties, elements, relationships and views. Elements
// are referenced from relationships and views by id, or by name when the
// name is unique:
//
//	name    = "Archisurance"
//	version = "3.1.1"
//	include = ["business.toml"]
//
//	[properties]
//	owner = "architecture board"
//
//	[[elements]]
//	id   = "app"
//	kind = "application_component"
//	name = "app"
//
//	[[relationships]]
//	kind   = "serving"
//	source = "app"
//	target = "order taker"
//
//	[[views]]
//	name      = "Application Behavior"
//	viewpoint = "application_behavior"
//
// Included files are resolved relative to the including file and merged
// before its own declarations, so a view sees everything included above it.
package modelfile

import (
	"github.com/matzehuels/archiview/pkg/layout"
)

// File is a decoded model file.
type File struct {
	ID            string            `toml:"id" yaml:"id"`
	Name          string            `toml:"name" yaml:"name"`
	Documentation string            `toml:"documentation" yaml:"documentation"`
	Version       string            `toml:"version" yaml:"version"`
	Include       []string          `toml:"include" yaml:"include"`
	Properties    map[string]string `toml:"properties" yaml:"properties"`
	Elements      []Element         `toml:"elements" yaml:"elements"`
	Relationships []Relationship    `toml:"relationships" yaml:"relationships"`
	Views         []View            `toml:"views" yaml:"views"`
}

// Element declares one element.
type Element struct {
	ID            string            `toml:"id" yaml:"id"`
	Kind          string            `toml:"kind" yaml:"kind"`
	Name          string            `toml:"name" yaml:"name"`
	Documentation string            `toml:"documentation" yaml:"documentation"`
	Properties    map[string]string `toml:"properties" yaml:"properties"`
}

// Relationship declares one relationship between two element references.
type Relationship struct {
	ID            string            `toml:"id" yaml:"id"`
	Kind          string            `toml:"kind" yaml:"kind"`
	Name          string            `toml:"name" yaml:"name"`
	Documentation string            `toml:"documentation" yaml:"documentation"`
	Source        string            `toml:"source" yaml:"source"`
	Target        string            `toml:"target" yaml:"target"`
	Properties    map[string]string `toml:"properties" yaml:"properties"`
}

// Relationship selection modes for views.
const (
	SelectForElements = "for_elements"
	SelectAll         = "all"
)

// View declares one diagram.
type View struct {
	ID        string `toml:"id" yaml:"id"`
	Name      string `toml:"name" yaml:"name"`
	Viewpoint string `toml:"viewpoint" yaml:"viewpoint"`
	// Elements lists element references. Empty selects all elements.
	Elements []string `toml:"elements" yaml:"elements"`
	// Relationships lists relationship ids. When set it overrides Select.
	Relationships []string `toml:"relationships" yaml:"relationships"`
	// Select is "for_elements" (default) or "all".
	Select   string       `toml:"select" yaml:"select"`
	Isolated string       `toml:"isolated" yaml:"isolated"`
	Style    layout.Style `toml:"style" yaml:"style"`
}

// merge appends the declarations of inc to f. Header fields of f win.
func (f *File) merge(inc *File) {
	for k, v := range inc.Properties {
		if f.Properties == nil {
			f.Properties = map[string]string{}
		}
		if _, set := f.Properties[k]; !set {
			f.Properties[k] = v
		}
	}
	f.Elements = append(inc.Elements, f.Elements...)
	f.Relationships = append(inc.Relationships, f.Relationships...)
	f.Views = append(inc.Views, f.Views...)
}
