package polyjson

// Object is a parsed JSON object as produced by ParseTree.
type Object map[string]any

// AsObject reports whether v is a JSON object.
func AsObject(v any) (Object, bool) {
	switch t := v.(type) {
	case map[string]any:
		return Object(t), t != nil
	case Object:
		return t, t != nil
	default:
		return nil, false
	}
}

// Field returns the raw value of a field. A present null yields (nil, true).
func (o Object) Field(name string) (any, bool) {
	v, ok := o[name]
	return v, ok
}

// Object returns the named field when it holds a JSON object.
func (o Object) Object(name string) (Object, bool) {
	v, ok := o[name]
	if !ok {
		return nil, false
	}
	return AsObject(v)
}

// Clone returns a shallow copy.
func (o Object) Clone() Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Without returns a shallow copy minus the named fields. The receiver is not
// modified.
func (o Object) Without(names ...string) Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// Map returns the object as a plain map for mappers.
func (o Object) Map() map[string]any { return map[string]any(o) }
