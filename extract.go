package polyjson

import (
	"encoding/json"
	"strconv"
)

// Tag is what discriminator extraction found on one object.
type Tag struct {
	// Raw is the tag as text: strings verbatim, numbers and booleans as their
	// literal. Empty when the tag is absent or malformed.
	Raw string
	// Value is the raw JSON value of the tag field.
	Value any
	// At is the location the tag was read from (zero when absent).
	At Location
	// Found is true when some location held a non-null value.
	Found bool
	// Canonical is the registered tag the value resolved to.
	Canonical string
	// Status classifies the result.
	Status TagStatus
	// Phase is 1 for a string match (exact or case-insensitive), 2 for the
	// family's native parser, 0 when nothing matched.
	Phase int
}

// readTag walks the locations in precedence order and returns the first
// present, non-null tag value.
func readTag(obj Object, locs []Location) Tag {
	for _, l := range locs {
		holder := obj
		if l.Nested() {
			sub, ok := obj.Object(l.Object)
			if !ok {
				continue
			}
			holder = sub
		}
		v, ok := holder.Field(l.Field)
		if !ok || v == nil {
			continue
		}
		t := Tag{Value: v, At: l, Found: true}
		if raw, scalar := rawText(v); scalar {
			t.Raw = raw
		} else {
			t.Status = TagMalformed
		}
		return t
	}
	return Tag{Status: TagAbsent}
}

// rawText renders scalar tag values; objects and arrays are not scalars.
func rawText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// classify resolves a tag against the registry in two phases: string match
// (exact, then case-insensitive), then the family's native parser.
func classify[T any](reg *Registry[T], native func(any) (string, bool), t Tag) (Tag, *variant[T]) {
	if !t.Found || t.Status == TagMalformed {
		t.Raw = ""
		return t, reg.unknown
	}
	if s, ok := t.Value.(string); ok {
		if v := reg.lookup(s); v != nil {
			t.Canonical, t.Status, t.Phase = v.tag, TagMatched, 1
			return t, v
		}
		if v := reg.lookupFolded(s); v != nil {
			t.Canonical, t.Status, t.Phase = v.tag, TagMatched, 1
			return t, v
		}
	}
	if native != nil {
		if s, ok := native(t.Value); ok {
			if v := reg.lookup(s); v != nil {
				t.Canonical, t.Status, t.Phase = v.tag, TagMatched, 2
				return t, v
			}
		}
	}
	t.Status = TagUnrecognized
	return t, reg.unknown
}

// strip returns a copy of obj without the consumed tag. For nested locations
// only the tag inside the sub-object is removed, and the sub-object is dropped
// when nothing else remains in it. obj is never modified.
func strip(obj Object, at Location) Object {
	if !at.Nested() {
		return obj.Without(at.Field)
	}
	sub, ok := obj.Object(at.Object)
	if !ok {
		return obj
	}
	rest := sub.Without(at.Field)
	if len(rest) == 0 {
		return obj.Without(at.Object)
	}
	out := obj.Clone()
	out[at.Object] = map[string]any(rest)
	return out
}

// consume prepares obj for mapping into a variant. The tag is removed unless
// the variant declares the tag key. A declared key keeps string tags verbatim,
// while other scalars are rewritten as text: the canonical tag on a match, the
// raw literal otherwise. Malformed tags are always removed.
func consume(obj Object, t Tag, declared bool) Object {
	if !t.Found {
		return obj
	}
	if !declared || t.Status == TagMalformed {
		return strip(obj, t.At)
	}
	if _, ok := t.Value.(string); ok {
		return obj
	}
	text := t.Raw
	if t.Status == TagMatched {
		text = t.Canonical
	}
	return retag(obj, t.At, text)
}

// retag returns a copy of obj with the tag at the location replaced by text.
func retag(obj Object, at Location, text string) Object {
	out := obj.Clone()
	if !at.Nested() {
		out[at.Field] = text
		return out
	}
	sub, ok := obj.Object(at.Object)
	if !ok {
		return obj
	}
	inner := sub.Clone()
	inner[at.Field] = text
	out[at.Object] = map[string]any(inner)
	return out
}

// tagNotes turns a non-matching tag into non-fatal issues.
func tagNotes(family string, t Tag, base Path, locs []Location) Issues {
	params := map[string]any{"family": family}
	switch t.Status {
	case TagAbsent:
		where := ""
		for i, l := range locs {
			if i > 0 {
				where += ", "
			}
			where += l.String()
		}
		params["locations"] = where
		return AppendIssues(nil, newIssue(base.Pointer(), CodeDiscriminatorMissing, "tried "+where, params))
	case TagUnrecognized:
		params["tag"] = t.Raw
		return AppendIssues(nil, newIssue(t.At.Path(base).Pointer(), CodeDiscriminatorUnknown, "unknown variant: '"+t.Raw+"'", params))
	case TagMalformed:
		return AppendIssues(nil, newIssue(t.At.Path(base).Pointer(), CodeDiscriminatorMalformed, "expected a scalar tag", params))
	}
	return nil
}
