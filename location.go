package polyjson

// Location says where a discriminator lives on the object being resolved.
type Location struct {
	// Object names the sub-object holding the tag; empty for a top-level tag.
	Object string
	// Field is the tag field name.
	Field string
}

// At is a top-level discriminator field.
func At(field string) Location { return Location{Field: field} }

// Inside is a discriminator read from field inside the named sub-object.
func Inside(object, field string) Location { return Location{Object: object, Field: field} }

// Nested reports whether the tag lives in a sub-object.
func (l Location) Nested() bool { return l.Object != "" }

// Key is the top-level key that carries the tag: the sub-object name for
// nested locations, the field itself otherwise.
func (l Location) Key() string {
	if l.Nested() {
		return l.Object
	}
	return l.Field
}

// Path is the location relative to base.
func (l Location) Path(base Path) Path {
	if l.Nested() {
		return base.Field(l.Object).Field(l.Field)
	}
	return base.Field(l.Field)
}

func (l Location) String() string {
	if l.Nested() {
		return l.Object + "." + l.Field
	}
	return l.Field
}
