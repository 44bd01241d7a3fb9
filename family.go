package polyjson

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sort"

	eng "github.com/reoring/polyjson/internal/engine"
	"github.com/reoring/polyjson/internal/stream"
)

// Outcome describes how one object was resolved.
type Outcome struct {
	Family string
	// Type is the concrete type instantiated.
	Type reflect.Type
	Tag  Tag
	// Forced is true when the caller declared the concrete type, so the tag
	// was only consumed, not used for selection.
	Forced bool
	// Nested holds the outcomes of detail bindings, keyed by parent field.
	Nested map[string]Outcome
	// Notes are non-fatal issues: missing, unknown or malformed tags.
	Notes Issues
}

// Unknown reports whether the family's fallback variant was used.
func (o Outcome) Unknown() bool {
	return !o.Forced && o.Tag.Status != TagMatched
}

// AllNotes returns the notes of this outcome followed by nested notes in field
// order.
func (o Outcome) AllNotes() Issues {
	out := append(Issues(nil), o.Notes...)
	fields := make([]string, 0, len(o.Nested))
	for f := range o.Nested {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		out = append(out, o.Nested[f].AllNotes()...)
	}
	return out
}

// Resolved carries a resolved value with its outcome.
type Resolved[T any] struct {
	Value   T
	Outcome Outcome
}

// Handle is the type-erased view of a Family used by Resolver.
type Handle interface {
	Name() string
	BaseType() reflect.Type
	Contains(t reflect.Type) bool
	Locations() []Location
	Tags() []string

	hasBindings() bool
	concreteTypes() []reflect.Type
	resolveAny(v any, declared reflect.Type, path Path) (any, Outcome, error)
}

// Family resolves JSON objects of one variant family. It is immutable and
// safe for concurrent use.
type Family[T any] struct {
	name   string
	locs   []Location
	reg    *Registry[T]
	native func(any) (string, bool)
	mapper Mapper
	logger *slog.Logger
	nested bool
}

// Name returns the family name.
func (f *Family[T]) Name() string { return f.name }

// BaseType is the declared base type T.
func (f *Family[T]) BaseType() reflect.Type { return f.reg.base }

// Registry exposes the tag table.
func (f *Family[T]) Registry() *Registry[T] { return f.reg }

// Contains reports whether this family claims t.
func (f *Family[T]) Contains(t reflect.Type) bool { return f.reg.Contains(t) }

// Locations returns the discriminator locations in precedence order.
func (f *Family[T]) Locations() []Location { return append([]Location(nil), f.locs...) }

// Tags returns the canonical tags, sorted.
func (f *Family[T]) Tags() []string { return f.reg.Tags() }

func (f *Family[T]) hasBindings() bool { return f.nested }

func (f *Family[T]) concreteTypes() []reflect.Type {
	out := make([]reflect.Type, 0, len(f.reg.variants)+1)
	for _, v := range f.reg.variants {
		out = append(out, v.typ)
	}
	return append(out, f.reg.unknown.typ)
}

// Resolve selects the concrete variant for v (a parsed JSON tree node) and
// maps it. Tag problems never fail; only structural mapping errors do.
func (f *Family[T]) Resolve(v any) (T, error) {
	out, _, err := f.resolve(v, Root(), nil)
	return out, err
}

// ResolveWithOutcome is Resolve plus the resolution outcome.
func (f *Family[T]) ResolveWithOutcome(v any) (Resolved[T], error) {
	val, out, err := f.resolve(v, Root(), nil)
	return Resolved[T]{Value: val, Outcome: out}, err
}

// ResolveList resolves every element of a JSON array.
func (f *Family[T]) ResolveList(v any) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, singleIssue("/", CodeInvalidType, "expected array", nil)
	}
	out := make([]T, 0, len(arr))
	var iss Issues
	for i, el := range arr {
		val, _, err := f.resolve(el, Root().Index(i), nil)
		if err != nil {
			iss = AppendIssues(iss, toIssues(err)...)
			continue
		}
		out = append(out, val)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Decode parses src and resolves the root object.
func (f *Family[T]) Decode(src Source, opts ...ParseOpt) (T, error) {
	tree, err := ParseTree(src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Resolve(tree)
}

// DecodeBytes is Decode over JSONBytes(data).
func (f *Family[T]) DecodeBytes(data []byte, opts ...ParseOpt) (T, error) {
	return f.Decode(JSONBytes(data), opts...)
}

// DecodeList parses src and resolves every element of the root array.
func (f *Family[T]) DecodeList(src Source, opts ...ParseOpt) ([]T, error) {
	tree, err := ParseTree(src, opts...)
	if err != nil {
		return nil, err
	}
	return f.ResolveList(tree)
}

// DecodeEach streams the root array of src and resolves one element at a
// time, so the whole array is never held as a tree. It stops at the first
// parse or mapping error, or when fn returns an error, which is passed through
// unchanged.
func (f *Family[T]) DecodeEach(src Source, fn func(i int, v T) error, opts ...ParseOpt) error {
	ts, conv, err := tokens(src, opts)
	if err != nil {
		return err
	}
	var fnErr error
	err = stream.Each(ts, func(i int, el eng.TokenSource) error {
		tree, err := eng.DecodeTree(el, conv)
		if err != nil {
			return toIssues(err)
		}
		val, _, err := f.resolve(tree, Root().Index(i), nil)
		if err != nil {
			return err
		}
		if err := fn(i, val); err != nil {
			fnErr = err
			return err
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	case errors.Is(err, stream.ErrNotArray):
		return singleIssue("/", CodeInvalidType, "expected array", err)
	}
	return toIssues(err)
}

// Encode always fails: values are produced by the upstream service, and this
// layer only reads them.
func (f *Family[T]) Encode(T) ([]byte, error) { return nil, ErrEncodeUnsupported }

func (f *Family[T]) resolveAny(v any, declared reflect.Type, path Path) (any, Outcome, error) {
	var forced *variant[T]
	if declared != nil && declared != f.reg.base {
		forced = f.reg.variantFor(declared)
	}
	val, out, err := f.resolve(v, path, forced)
	return any(val), out, err
}

func (f *Family[T]) resolve(v any, path Path, forced *variant[T]) (T, Outcome, error) {
	out := Outcome{Family: f.name}
	obj, ok := AsObject(v)
	if !ok {
		vr := f.reg.unknown
		if forced != nil {
			vr = forced
		}
		out.Type = vr.typ
		out.Forced = forced != nil
		out.Tag = Tag{Status: TagMalformed}
		out.Notes = AppendIssues(nil, newIssue(path.Pointer(), CodeInvalidType, "expected object", map[string]any{"family": f.name}))
		f.log(path, out)
		return vr.instance(""), out, nil
	}

	tag, vr := classify(f.reg, f.native, readTag(obj, f.locs))
	if forced != nil {
		vr = forced
		out.Forced = true
	}
	out.Type = vr.typ
	out.Tag = tag
	if !out.Forced {
		out.Notes = tagNotes(f.name, tag, path, f.locs)
	}

	node := consume(obj, tag, vr.declares(tag.At.Key()))
	if len(vr.bindings) > 0 {
		fields := make([]string, 0, len(vr.bindings))
		for _, b := range vr.bindings {
			fields = append(fields, b.Field())
		}
		node = node.Without(fields...)
	}

	val := vr.instance(tag.Raw)
	if err := f.mapper.Map(node.Map(), any(val)); err != nil {
		it := newIssue(path.Pointer(), CodeMappingFailed, vr.typ.String()+": "+err.Error(), map[string]any{"family": f.name})
		it.Cause = err
		var zero T
		return zero, out, AppendIssues(nil, it)
	}

	for _, b := range vr.bindings {
		raw, present := obj.Field(b.Field())
		if !present || raw == nil {
			continue
		}
		nout, err := b.bind(any(val), raw, path.Field(b.Field()))
		if err != nil {
			var zero T
			return zero, out, err
		}
		if out.Nested == nil {
			out.Nested = map[string]Outcome{}
		}
		out.Nested[b.Field()] = nout
	}
	f.log(path, out)
	return val, out, nil
}

func (f *Family[T]) log(path Path, out Outcome) {
	if !out.Unknown() || !f.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	f.logger.Debug("polyjson: fallback to unknown variant",
		slog.String("family", f.name),
		slog.String("path", path.Pointer()),
		slog.String("status", out.Tag.Status.String()),
		slog.String("tag", out.Tag.Raw),
	)
}
