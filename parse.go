package polyjson

import (
	"errors"

	eng "github.com/reoring/polyjson/internal/engine"
)

// ParseTree consumes tokens from the Source and builds the generic tree the
// resolver works on: map[string]any, []any, string, json.Number (or float64),
// bool and nil.
func ParseTree(src Source, opts ...ParseOpt) (any, error) {
	ts, conv, err := tokens(src, opts)
	if err != nil {
		return nil, err
	}
	v, err := eng.DecodeTree(ts, conv)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// tokens applies the last ParseOpt to src: enforcement (only when some limit
// is set) and the number conversion.
func tokens(src Source, opts []ParseOpt) (eng.TokenSource, eng.NumberConv, error) {
	if src == nil {
		return nil, nil, singleIssue("/", CodeParseError, "nil source", nil)
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if opt.Warnings != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			opt.Warnings(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	var ts eng.TokenSource = src
	if eo.Enabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}
	conv := eng.JSONNumber
	if opt.NumberMode == NumberFloat64 {
		conv = eng.Float64
	}
	return ts, conv, nil
}

// ParseBytes is ParseTree over JSONBytes(data).
func ParseBytes(data []byte, opts ...ParseOpt) (any, error) {
	return ParseTree(JSONBytes(data), opts...)
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, newIssue(ie.Path, ie.Code, ie.Message, nil))
	}
	return singleIssue("/", CodeParseError, err.Error(), err)
}
