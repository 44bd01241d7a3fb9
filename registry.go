package polyjson

import (
	"reflect"
	"sort"
	"strings"

	"github.com/reoring/polyjson/codec"
)

// variant is one concrete shape of a family.
type variant[T any] struct {
	tag       string // canonical tag; empty for the unknown variant
	typ       reflect.Type
	newFn     func() T
	unknownFn func(raw string) T
	bindings  []Binding
	keys      map[string]struct{} // lower-cased declared JSON keys
}

func (v *variant[T]) isUnknown() bool { return v.unknownFn != nil }

func (v *variant[T]) instance(raw string) T {
	if v.unknownFn != nil {
		return v.unknownFn(raw)
	}
	return v.newFn()
}

// declares reports whether the concrete type decodes key. Mappers match keys
// case-insensitively, so the comparison does too.
func (v *variant[T]) declares(key string) bool {
	_, ok := v.keys[strings.ToLower(key)]
	return ok
}

func newVariant[T any](tag string, sample T) *variant[T] {
	typ := typeOf(any(sample))
	keys := map[string]struct{}{}
	for k := range declaredKeys(typ) {
		keys[strings.ToLower(k)] = struct{}{}
	}
	return &variant[T]{tag: tag, typ: typ, keys: keys}
}

// Registry maps discriminator values of one family to concrete types. It is
// filled while the family is built and never changes afterwards.
type Registry[T any] struct {
	family   string
	base     reflect.Type
	exact    map[string]*variant[T]
	folded   map[string]*variant[T]
	byType   map[reflect.Type]*variant[T]
	variants []*variant[T]
	aliases  map[string]string
	unknown  *variant[T]
}

func newRegistry[T any](family string) *Registry[T] {
	return &Registry[T]{
		family:  family,
		base:    reflect.TypeFor[T](),
		exact:   map[string]*variant[T]{},
		folded:  map[string]*variant[T]{},
		byType:  map[reflect.Type]*variant[T]{},
		aliases: map[string]string{},
	}
}

// register adds tag -> v. Duplicate tags, including tags equal after case
// folding, are configuration errors.
func (r *Registry[T]) register(tag string, v *variant[T]) *Issue {
	if tag == "" {
		it := newIssue("/", CodeInvalidDescriptor, r.family+": empty tag", nil)
		return &it
	}
	if prev, ok := r.exact[tag]; ok {
		it := newIssue("/", CodeDuplicateTag, r.family+": tag "+tag+" already maps to "+prev.typ.String(), map[string]any{"family": r.family, "tag": tag})
		return &it
	}
	fk := codec.Fold(tag)
	if prev, ok := r.folded[fk]; ok && prev != v {
		it := newIssue("/", CodeDuplicateTag, r.family+": tag "+tag+" collides with "+prev.tag+" ignoring case", map[string]any{"family": r.family, "tag": tag})
		return &it
	}
	if prev, ok := r.byType[v.typ]; ok && v.tag == tag {
		it := newIssue("/", CodeDuplicateTag, r.family+": "+v.typ.String()+" already registered as "+prev.tag+"; use an alias", nil)
		return &it
	}
	r.exact[tag] = v
	r.folded[fk] = v
	if v.tag == tag {
		r.variants = append(r.variants, v)
		r.byType[v.typ] = v
	} else {
		r.aliases[tag] = v.tag
	}
	return nil
}

func (r *Registry[T]) setUnknown(v *variant[T]) *Issue {
	if prev, ok := r.byType[v.typ]; ok {
		it := newIssue("/", CodeDuplicateTag, r.family+": unknown type "+v.typ.String()+" is also registered as "+prev.tag, nil)
		return &it
	}
	r.unknown = v
	r.byType[v.typ] = v
	return nil
}

// TryResolve looks tag up exactly (case-sensitive).
func (r *Registry[T]) TryResolve(tag string) (reflect.Type, bool) {
	if v, ok := r.exact[tag]; ok {
		return v.typ, true
	}
	return nil, false
}

// Contains reports whether t is the family base type or one of its concrete
// types (pointer or element form). The unknown type is included.
func (r *Registry[T]) Contains(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t == r.base {
		return true
	}
	return r.variantFor(t) != nil
}

// Unknown returns the fallback type.
func (r *Registry[T]) Unknown() reflect.Type {
	if r.unknown == nil {
		return nil
	}
	return r.unknown.typ
}

// Tags returns the canonical tags, sorted.
func (r *Registry[T]) Tags() []string {
	out := make([]string, 0, len(r.variants))
	for _, v := range r.variants {
		out = append(out, v.tag)
	}
	sort.Strings(out)
	return out
}

// Aliases returns alias -> canonical tag.
func (r *Registry[T]) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Len is the number of canonical tags.
func (r *Registry[T]) Len() int { return len(r.variants) }

func (r *Registry[T]) lookup(tag string) *variant[T] {
	typ, ok := r.TryResolve(tag)
	if !ok {
		return nil
	}
	return r.byType[typ]
}

func (r *Registry[T]) lookupFolded(tag string) *variant[T] { return r.folded[codec.Fold(tag)] }

func (r *Registry[T]) variantFor(t reflect.Type) *variant[T] {
	if v, ok := r.byType[t]; ok {
		return v
	}
	for vt, v := range r.byType {
		if sameType(vt, t) {
			return v
		}
	}
	return nil
}
