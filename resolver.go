package polyjson

import (
	"reflect"
	"sort"

	gojson "github.com/goccy/go-json"
)

// Resolver dispatches parsed JSON to the family that claims a declared type.
// It is immutable after NewResolver and safe for concurrent use.
type Resolver struct {
	families []Handle
	byName   map[string]Handle
	opt      ParseOpt
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithParseOpt sets the parse options used by Unmarshal.
func WithParseOpt(opt ParseOpt) ResolverOption {
	return func(r *Resolver) { r.opt = opt }
}

// NewResolver combines families. Two families claiming the same base or
// concrete type, or sharing a name, is a configuration error.
func NewResolver(families []Handle, opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{byName: map[string]Handle{}}
	for _, o := range opts {
		o(r)
	}
	var iss Issues
	owner := map[reflect.Type]string{}
	for _, h := range families {
		if h == nil {
			continue
		}
		if _, dup := r.byName[h.Name()]; dup {
			iss = AppendIssues(iss, newIssue("/", CodeDuplicateTag, "family "+h.Name()+" registered twice", nil))
			continue
		}
		for _, t := range append([]reflect.Type{h.BaseType()}, h.concreteTypes()...) {
			if prev, ok := owner[t]; ok {
				iss = AppendIssues(iss, newIssue("/", CodeDuplicateTag, t.String()+" claimed by "+prev+" and "+h.Name(), nil))
				continue
			}
			owner[t] = h.Name()
		}
		r.byName[h.Name()] = h
		r.families = append(r.families, h)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// CanConvert reports whether some family claims t.
func (r *Resolver) CanConvert(t reflect.Type) bool { return r.handleFor(t) != nil }

// Family returns the family registered under name.
func (r *Resolver) Family(name string) (Handle, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Families returns the families sorted by name.
func (r *Resolver) Families() []Handle {
	out := append([]Handle(nil), r.families...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Resolve resolves v for the declared type. declared may be a family base
// type or one of its concrete types; in the latter case the tag is consumed
// but the declared variant is used.
func (r *Resolver) Resolve(v any, declared reflect.Type) (any, error) {
	out, _, err := r.ResolveWithOutcome(v, declared)
	return out, err
}

// ResolveWithOutcome is Resolve plus the outcome.
func (r *Resolver) ResolveWithOutcome(v any, declared reflect.Type) (any, Outcome, error) {
	h := r.handleFor(declared)
	if h == nil {
		name := "<nil>"
		if declared != nil {
			name = declared.String()
		}
		return nil, Outcome{}, singleIssue("/", CodeUnclaimedType, name, ErrUnclaimedType)
	}
	return h.resolveAny(v, declared, Root())
}

// Unmarshal decodes data into target. Targets whose type (or slice element
// type) is claimed by a family are resolved; anything else is decoded
// structurally with goccy/go-json.
func (r *Resolver) Unmarshal(data []byte, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return singleIssue("/", CodeInvalidType, "target must be a non-nil pointer", nil)
	}
	dst := rv.Elem()
	et := dst.Type()

	switch {
	case r.CanConvert(et):
		tree, err := ParseBytes(data, r.opt)
		if err != nil {
			return err
		}
		val, _, err := r.handleFor(et).resolveAny(tree, et, Root())
		if err != nil {
			return err
		}
		return assign(dst, val)
	case et.Kind() == reflect.Slice && r.CanConvert(et.Elem()):
		tree, err := ParseBytes(data, r.opt)
		if err != nil {
			return err
		}
		arr, ok := tree.([]any)
		if !ok {
			return singleIssue("/", CodeInvalidType, "expected array", nil)
		}
		h := r.handleFor(et.Elem())
		out := reflect.MakeSlice(et, 0, len(arr))
		var iss Issues
		for i, el := range arr {
			val, _, err := h.resolveAny(el, et.Elem(), Root().Index(i))
			if err != nil {
				iss = AppendIssues(iss, toIssues(err)...)
				continue
			}
			item := reflect.New(et.Elem()).Elem()
			if err := assign(item, val); err != nil {
				iss = AppendIssues(iss, toIssues(err)...)
				continue
			}
			out = reflect.Append(out, item)
		}
		if len(iss) > 0 {
			return iss
		}
		dst.Set(out)
		return nil
	default:
		if err := gojson.Unmarshal(data, target); err != nil {
			return singleIssue("/", CodeMappingFailed, err.Error(), err)
		}
		return nil
	}
}

// Marshal always fails with ErrEncodeUnsupported.
func (r *Resolver) Marshal(any) ([]byte, error) { return nil, ErrEncodeUnsupported }

func (r *Resolver) handleFor(t reflect.Type) Handle {
	if t == nil {
		return nil
	}
	for _, h := range r.families {
		if h.Contains(t) {
			return h
		}
	}
	return nil
}

// assign stores val (a pointer to a concrete variant) into dst, which may be
// the base interface, the pointer type or the struct type.
func assign(dst reflect.Value, val any) error {
	v := reflect.ValueOf(val)
	if !v.IsValid() {
		return nil
	}
	if v.Type().AssignableTo(dst.Type()) {
		dst.Set(v)
		return nil
	}
	if v.Kind() == reflect.Pointer && v.Elem().Type().AssignableTo(dst.Type()) {
		dst.Set(v.Elem())
		return nil
	}
	return singleIssue("/", CodeInvalidType, v.Type().String()+" is not assignable to "+dst.Type().String(), nil)
}
