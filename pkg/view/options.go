package view

import (
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/viewpoint"
)

// Options describes one view.
type Options struct {
	Name string
	// ID is the diagram id. Empty means a fresh id is minted. An explicit id
	// must not name anything already in the model; it is claimed only when
	// the diagram is attached, so rendering the same options twice is fine.
	ID string
	// Viewpoint restricts the kinds shown. Nil means viewpoint.Total.
	Viewpoint *viewpoint.Viewpoint

	Elements      ElementSelector
	Relationships RelationshipSelector

	Isolated layout.IsolatedPolicy
	Style    layout.Style
}

// SetDefaults fills the viewpoint and style.
func (o *Options) SetDefaults() {
	if o.Viewpoint == nil {
		o.Viewpoint = viewpoint.Total
	}
	o.Style = o.Style.WithDefaults()
}

// Validate checks the name, explicit id and style.
func (o *Options) Validate() error {
	if err := errors.ValidateName(o.Name); err != nil {
		return err
	}
	if o.ID != "" {
		if err := errors.ValidateID(o.ID); err != nil {
			return err
		}
	}
	if err := o.Style.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "view %q", o.Name)
	}
	return nil
}
