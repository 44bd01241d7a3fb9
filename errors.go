package polyjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/polyjson/i18n"
)

// Issue codes.
const (
	CodeInvalidType            = "invalid_type"
	CodeParseError             = "parse_error"
	CodeTruncated              = "truncated"
	CodeDuplicateKey           = "duplicate_key"
	CodeDiscriminatorMissing   = "discriminator_missing"
	CodeDiscriminatorUnknown   = "discriminator_unknown"
	CodeDiscriminatorMalformed = "discriminator_malformed"
	CodeMappingFailed          = "mapping_failed"
	// Configuration codes, reported while building families and resolvers.
	CodeDuplicateTag      = "duplicate_tag"
	CodeMissingUnknown    = "missing_unknown"
	CodeNestingTooDeep    = "nesting_too_deep"
	CodeUnclaimedType     = "unclaimed_type"
	CodeInvalidDescriptor = "invalid_descriptor"
)

var (
	// ErrEncodeUnsupported is returned by every write path. The wire format is
	// produced upstream; resolution is a read-time concern only.
	ErrEncodeUnsupported = errors.New("polyjson: encoding polymorphic values is not supported")
	// ErrUnclaimedType is returned when no family claims the declared type.
	ErrUnclaimedType = errors.New("polyjson: no family claims the declared type")
)

// Issue represents a single problem or note.
type Issue struct {
	Path    string // JSON Pointer (for example: /details/type).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, raw tags, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"family":"item","tag":"Foo"}).
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap lets errors.Is find sentinel causes such as ErrUnclaimedType.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// newIssue builds an Issue whose message comes from the current translator.
func newIssue(path, code, hint string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint, Params: params}
}

func singleIssue(path, code, hint string, cause error) Issues {
	it := newIssue(path, code, hint, nil)
	it.Cause = cause
	return AppendIssues(nil, it)
}
