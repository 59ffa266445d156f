package modelfile

import (
	"context"
	"fmt"

	"github.com/matzehuels/archiview/pkg/builder"
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/view"
	"github.com/matzehuels/archiview/pkg/viewpoint"
)

// Builder declares the file's content on a new builder. The returned builder
// has not been built yet, so callers can add further declarations.
func (f *File) Builder(opts ...builder.Option) (*builder.Builder, error) {
	header := []builder.Option{builder.WithDocumentation(f.Documentation), builder.WithVersion(f.Version)}
	if f.ID != "" {
		header = append(header, builder.WithID(f.ID))
	}
	b := builder.New(f.Name, append(header, opts...)...)
	b.Properties(f.Properties)

	refs := newRefs()
	for i, fe := range f.Elements {
		e := b.Add(fe.Kind, fe.Name, itemOptions(fe.ID, fe.Documentation, fe.Properties)...)
		if e == nil {
			return nil, fmt.Errorf("element %d (%q): %w", i+1, fe.Name, b.Err())
		}
		refs.addElement(e)
	}

	rels := map[string]*model.Relationship{}
	for i, fr := range f.Relationships {
		src, err := refs.element(fr.Source)
		if err != nil {
			return nil, fmt.Errorf("relationship %d: source: %w", i+1, err)
		}
		tgt, err := refs.element(fr.Target)
		if err != nil {
			return nil, fmt.Errorf("relationship %d: target: %w", i+1, err)
		}
		r := b.Connect(fr.Kind, src, tgt, itemOptions(fr.ID, fr.Documentation, fr.Properties)...)
		if r == nil {
			return nil, fmt.Errorf("relationship %d (%s): %w", i+1, fr.Kind, b.Err())
		}
		r.Name = fr.Name
		rels[r.ID] = r
	}

	for _, fv := range f.Views {
		vopts, err := fv.options(refs, rels)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", fv.Name, err)
		}
		b.View(fv.Name, vopts)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Build declares the file's content and renders its views.
func (f *File) Build(ctx context.Context, opts ...builder.Option) (*model.Model, error) {
	b, err := f.Builder(opts...)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx)
}

// Style returns the style declared for the first view named name, or the
// default style when no such view exists.
func (f *File) Style(name string) layout.Style {
	for _, v := range f.Views {
		if v.Name == name {
			return v.Style
		}
	}
	return layout.DefaultStyle()
}

func itemOptions(id, doc string, props map[string]string) []builder.ElementOption {
	var opts []builder.ElementOption
	if id != "" {
		opts = append(opts, builder.WithElementID(id))
	}
	if doc != "" {
		opts = append(opts, builder.WithDoc(doc))
	}
	for _, k := range sortedKeys(props) {
		opts = append(opts, builder.WithProperty(k, props[k]))
	}
	return opts
}

func (fv View) options(refs *refs, rels map[string]*model.Relationship) (view.Options, error) {
	vp, ok := viewpoint.Lookup(fv.Viewpoint)
	if !ok {
		return view.Options{}, errors.New(errors.ErrCodeInvalidViewpoint, "unknown viewpoint %q", fv.Viewpoint)
	}
	isolated, ok := layout.ParseIsolatedPolicy(fv.Isolated)
	if !ok {
		return view.Options{}, errors.New(errors.ErrCodeInvalidInput, "isolated must be include or exclude, got %q", fv.Isolated)
	}
	opts := view.Options{ID: fv.ID, Viewpoint: vp, Isolated: isolated, Style: fv.Style}

	if len(fv.Elements) > 0 {
		elems := make([]*model.Element, 0, len(fv.Elements))
		for _, ref := range fv.Elements {
			e, err := refs.element(ref)
			if err != nil {
				return view.Options{}, err
			}
			elems = append(elems, e)
		}
		opts.Elements = view.Elements(elems...)
	}

	switch {
	case len(fv.Relationships) > 0:
		list := make([]*model.Relationship, 0, len(fv.Relationships))
		for _, id := range fv.Relationships {
			r, ok := rels[id]
			if !ok {
				return view.Options{}, errors.New(errors.ErrCodeNotFound, "relationship %q not declared", id)
			}
			list = append(list, r)
		}
		opts.Relationships = view.Relationships(list...)
	case fv.Select == "" || fv.Select == SelectForElements:
		opts.Relationships = view.RelationshipsForEndpoints()
	case fv.Select == SelectAll:
		opts.Relationships = view.AllRelationships()
	default:
		return view.Options{}, errors.New(errors.ErrCodeInvalidInput, "select must be %s or %s, got %q", SelectForElements, SelectAll, fv.Select)
	}
	return opts, nil
}
