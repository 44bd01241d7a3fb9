package polyjson

import (
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths for issues.
type Path struct {
	parts []string
}

// Root is the document root ("/").
func Root() Path { return Path{} }

// Field appends an escaped object key.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array index.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path.
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p Path) String() string { return p.Pointer() }
