package modelfile

import (
	"maps"
	"slices"

	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/model"
)

// refs resolves element references by id, then by unique name.
type refs struct {
	byID   map[string]*model.Element
	byName map[string][]*model.Element
}

func newRefs() *refs {
	return &refs{byID: map[string]*model.Element{}, byName: map[string][]*model.Element{}}
}

func (r *refs) addElement(e *model.Element) {
	r.byID[e.ID] = e
	r.byName[e.Name] = append(r.byName[e.Name], e)
}

func (r *refs) element(ref string) (*model.Element, error) {
	if e, ok := r.byID[ref]; ok {
		return e, nil
	}
	switch named := r.byName[ref]; len(named) {
	case 0:
		return nil, errors.New(errors.ErrCodeNotFound, "element %q not declared", ref)
	case 1:
		return named[0], nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "element name %q is ambiguous (%d elements); reference it by id", ref, len(named))
	}
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
