package polyjson

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
)

// FamilyBuilder declares a family: discriminator locations, the tag table and
// the unknown fallback. Build validates the declaration once.
type FamilyBuilder[T any] struct {
	name     string
	locs     []Location
	entries  []familyEntry[T]
	aliases  [][2]string
	unknown  func(raw string) T
	native   func(any) (string, bool)
	mapper   Mapper
	logger   *slog.Logger
	expected []string
}

type familyEntry[T any] struct {
	tag      string
	ctor     func() T
	bindings []Binding
}

// NewFamily starts a family declaration. Without Discriminator the tag is read
// from the top-level "type" field.
func NewFamily[T any](name string) *FamilyBuilder[T] {
	return &FamilyBuilder[T]{name: name}
}

// Discriminator sets the tag locations in precedence order.
func (b *FamilyBuilder[T]) Discriminator(locs ...Location) *FamilyBuilder[T] {
	b.locs = append([]Location(nil), locs...)
	return b
}

// Variant registers tag -> the concrete type produced by ctor. ctor must
// return a fresh non-nil pointer on every call.
func (b *FamilyBuilder[T]) Variant(tag string, ctor func() T, bindings ...Binding) *FamilyBuilder[T] {
	b.entries = append(b.entries, familyEntry[T]{tag: tag, ctor: ctor, bindings: bindings})
	return b
}

// Alias registers an extra spelling for a canonical tag.
func (b *FamilyBuilder[T]) Alias(alias, canonical string) *FamilyBuilder[T] {
	b.aliases = append(b.aliases, [2]string{alias, canonical})
	return b
}

// Unknown sets the fallback constructor. It receives the raw tag text.
func (b *FamilyBuilder[T]) Unknown(ctor func(raw string) T) *FamilyBuilder[T] {
	b.unknown = ctor
	return b
}

// NativeTag installs the second-phase parser, consulted when the string
// match fails. It maps a raw tag value (string, json.Number, bool, ...) to a
// canonical tag.
func (b *FamilyBuilder[T]) NativeTag(fn func(raw any) (string, bool)) *FamilyBuilder[T] {
	b.native = fn
	return b
}

// Mapper sets the structural mapper (default JSONMapper).
func (b *FamilyBuilder[T]) Mapper(m Mapper) *FamilyBuilder[T] {
	b.mapper = m
	return b
}

// Logger sets the logger used for fallback diagnostics (default discards).
func (b *FamilyBuilder[T]) Logger(l *slog.Logger) *FamilyBuilder[T] {
	b.logger = l
	return b
}

// Expect declares the complete set of canonical tags. Build fails when the
// registered variants differ from it; descriptors use this to keep data and
// code in sync.
func (b *FamilyBuilder[T]) Expect(tags ...string) *FamilyBuilder[T] {
	b.expected = append([]string(nil), tags...)
	return b
}

// Build validates the declaration and freezes the family.
func (b *FamilyBuilder[T]) Build() (*Family[T], error) {
	var iss Issues
	fail := func(code, hint string) {
		iss = AppendIssues(iss, newIssue("/", code, b.name+": "+hint, map[string]any{"family": b.name}))
	}

	base := reflect.TypeFor[T]()
	if base.Kind() != reflect.Interface {
		fail(CodeInvalidDescriptor, "base type "+base.String()+" must be an interface")
	}
	locs := b.locs
	if len(locs) == 0 {
		locs = []Location{At("type")}
	}
	for _, l := range locs {
		if l.Field == "" {
			fail(CodeInvalidDescriptor, "discriminator location without field")
		}
	}

	reg := newRegistry[T](b.name)
	nested := false
	for _, e := range b.entries {
		if e.ctor == nil {
			fail(CodeInvalidDescriptor, "nil constructor for "+e.tag)
			continue
		}
		sample := e.ctor()
		if typeOf(any(sample)) == nil {
			fail(CodeInvalidDescriptor, "constructor for "+e.tag+" returned nil")
			continue
		}
		v := newVariant(e.tag, sample)
		v.newFn = e.ctor
		for _, bd := range e.bindings {
			if bd == nil {
				continue
			}
			if it := bd.err(); it != nil {
				iss = AppendIssues(iss, *it)
				continue
			}
			if !sameType(bd.parentType(), v.typ) {
				fail(CodeInvalidDescriptor, fmt.Sprintf("binding %q expects %s, variant %s is %s", bd.Field(), bd.parentType(), e.tag, v.typ))
				continue
			}
			v.bindings = append(v.bindings, bd)
			nested = true
		}
		if it := reg.register(e.tag, v); it != nil {
			iss = AppendIssues(iss, *it)
		}
	}
	for _, a := range b.aliases {
		target := reg.lookup(a[1])
		if target == nil || target.tag != a[1] {
			fail(CodeInvalidDescriptor, "alias "+a[0]+" targets unregistered tag "+a[1])
			continue
		}
		if it := reg.register(a[0], target); it != nil {
			iss = AppendIssues(iss, *it)
		}
	}

	if b.unknown == nil {
		fail(CodeMissingUnknown, "no unknown variant")
	} else {
		sample := b.unknown("")
		if typeOf(any(sample)) == nil {
			fail(CodeMissingUnknown, "unknown constructor returned nil")
		} else {
			u := newVariant("", sample)
			u.unknownFn = b.unknown
			if it := reg.setUnknown(u); it != nil {
				iss = AppendIssues(iss, *it)
			}
		}
	}

	if b.expected != nil {
		want := map[string]bool{}
		for _, t := range b.expected {
			want[t] = true
		}
		var missing, extra []string
		for _, t := range reg.Tags() {
			if !want[t] {
				extra = append(extra, t)
			}
			delete(want, t)
		}
		for t := range want {
			missing = append(missing, t)
		}
		sort.Strings(missing)
		if len(missing) > 0 {
			fail(CodeInvalidDescriptor, fmt.Sprintf("no variant for tags %v", missing))
		}
		if len(extra) > 0 {
			fail(CodeInvalidDescriptor, fmt.Sprintf("tags %v are not declared", extra))
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	mapper := b.mapper
	if mapper == nil {
		mapper = JSONMapper()
	}
	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Family[T]{
		name:   b.name,
		locs:   locs,
		reg:    reg,
		native: b.native,
		mapper: mapper,
		logger: logger,
		nested: nested,
	}, nil
}

// MustBuild is Build that panics on configuration errors.
func (b *FamilyBuilder[T]) MustBuild() *Family[T] {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
