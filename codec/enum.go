// Package codec holds small value codecs shared by the resolver and the
// domain packages: Unicode case folding and case-insensitive enumerations.
package codec

import (
	"sort"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s. A Caser carries state, so a new one
// is created per call.
func Fold(s string) string { return cases.Fold().String(s) }

// Enum is an immutable set of canonical string literals with a folded index
// for case-insensitive lookup.
type Enum[T ~string] struct {
	exact  map[string]T
	folded map[string]T
	values []T
}

// NewEnum builds an Enum. Literals that differ only in casing collapse to the
// first one given.
func NewEnum[T ~string](values ...T) Enum[T] {
	e := Enum[T]{
		exact:  make(map[string]T, len(values)),
		folded: make(map[string]T, len(values)),
	}
	for _, v := range values {
		if _, dup := e.exact[string(v)]; dup {
			continue
		}
		e.exact[string(v)] = v
		e.values = append(e.values, v)
		if _, dup := e.folded[Fold(string(v))]; !dup {
			e.folded[Fold(string(v))] = v
		}
	}
	return e
}

// Parse matches s exactly, then case-insensitively.
func (e Enum[T]) Parse(s string) (T, bool) {
	if v, ok := e.exact[s]; ok {
		return v, true
	}
	v, ok := e.folded[Fold(s)]
	return v, ok
}

// Canonical returns the canonical spelling of s, or s itself when it is not a
// member. Unknown literals are kept so newer upstream values survive.
func (e Enum[T]) Canonical(s string) T {
	if v, ok := e.Parse(s); ok {
		return v
	}
	return T(s)
}

// Known reports whether v is a member.
func (e Enum[T]) Known(v T) bool {
	_, ok := e.exact[string(v)]
	return ok
}

// Values returns the members sorted.
func (e Enum[T]) Values() []T {
	out := append([]T(nil), e.values...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
