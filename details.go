package polyjson

import (
	"reflect"
)

// Binding resolves a nested family from a field of a resolved parent and
// stores the result on the parent. Build one with Details.
type Binding interface {
	// Field is the parent key holding the nested object.
	Field() string
	// Family is the nested family name.
	Family() string

	parentType() reflect.Type
	err() *Issue
	bind(parent any, raw any, path Path) (Outcome, error)
}

// Details binds field of parent type *V to the nested family fam; set stores
// the resolved detail on the parent. The nested family must not have bindings
// of its own: resolution is bounded at two levels.
func Details[V any, D any](field string, fam *Family[D], set func(*V, D)) Binding {
	b := &detailBinding[V, D]{field: field, fam: fam, set: set}
	switch {
	case fam == nil:
		it := newIssue("/"+field, CodeInvalidDescriptor, "nil nested family for "+field, nil)
		b.cfgErr = &it
	case set == nil:
		it := newIssue("/"+field, CodeInvalidDescriptor, "nil setter for "+field, nil)
		b.cfgErr = &it
	case fam.hasBindings():
		it := newIssue("/"+field, CodeNestingTooDeep, "family "+fam.Name()+" has nested families and cannot be nested itself", map[string]any{"family": fam.Name()})
		b.cfgErr = &it
	}
	return b
}

type detailBinding[V any, D any] struct {
	field  string
	fam    *Family[D]
	set    func(*V, D)
	cfgErr *Issue
}

func (b *detailBinding[V, D]) Field() string { return b.field }

func (b *detailBinding[V, D]) Family() string {
	if b.fam == nil {
		return ""
	}
	return b.fam.Name()
}

func (b *detailBinding[V, D]) parentType() reflect.Type { return reflect.TypeFor[*V]() }

func (b *detailBinding[V, D]) err() *Issue { return b.cfgErr }

func (b *detailBinding[V, D]) bind(parent any, raw any, path Path) (Outcome, error) {
	p, ok := parent.(*V)
	if !ok || p == nil {
		return Outcome{}, nil
	}
	d, out, err := b.fam.resolve(raw, path, nil)
	if err != nil {
		return out, err
	}
	b.set(p, d)
	return out, nil
}
