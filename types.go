package polyjson

// NumberMode dictates how numbers are interpreted in the parsed tree.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Round to float64.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	NumberMode NumberMode
	// Warnings receives non-fatal parse issues such as duplicate keys in Warn mode.
	Warnings func(Issue)
}

// TagStatus classifies how a discriminator was read.
type TagStatus int

const (
	TagMatched      TagStatus = iota // Tag found and registered.
	TagUnrecognized                  // Tag found but not registered.
	TagAbsent                        // No tag at any location.
	TagMalformed                     // Tag field has a non-scalar JSON shape.
)

func (s TagStatus) String() string {
	switch s {
	case TagMatched:
		return "matched"
	case TagUnrecognized:
		return "unrecognized"
	case TagAbsent:
		return "absent"
	case TagMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}
