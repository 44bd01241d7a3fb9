package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

type sliceSource struct {
	toks []Token
	i    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, errors.New("eof")
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.i) }

func objectTokens(keys ...string) []Token {
	toks := []Token{{Kind: KindBeginObject}}
	for _, k := range keys {
		toks = append(toks, Token{Kind: KindKey, String: k}, Token{Kind: KindString, String: "v"})
	}
	return append(toks, Token{Kind: KindEndObject})
}

func TestDecodeTree_KeepsJSONNumber(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "id"},
		{Kind: KindNumber, Number: "24"},
		{Kind: KindKey, String: "flags"},
		{Kind: KindBeginArray},
		{Kind: KindEndArray},
		{Kind: KindEndObject},
	}}
	v, err := DecodeTree(src, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if m["id"] != json.Number("24") {
		t.Fatalf("id = %#v", m["id"])
	}
	if arr, ok := m["flags"].([]any); !ok || len(arr) != 0 {
		t.Fatalf("flags = %#v", m["flags"])
	}
}

func TestEnforcement_DuplicateKeyError(t *testing.T) {
	src := WrapWithEnforcement(&sliceSource{toks: objectTokens("type", "type")}, EnforceOptions{OnDuplicate: DupError})
	_, err := DecodeTree(src, nil)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/type" {
		t.Fatalf("unexpected issue: %+v", ie.SimpleIssue)
	}
}

func TestEnforcement_DuplicateKeyWarn(t *testing.T) {
	var got []SimpleIssue
	src := WrapWithEnforcement(&sliceSource{toks: objectTokens("type", "type")}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if _, err := DecodeTree(src, nil); err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one warning, got %v", got)
	}
}

func TestEnforcement_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(&sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "details"},
		{Kind: KindBeginObject},
		{Kind: KindEndObject},
		{Kind: KindEndObject},
	}}, EnforceOptions{MaxDepth: 1})
	_, err := DecodeTree(src, nil)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Path != "/details" {
		t.Fatalf("expected depth issue at /details, got %v", err)
	}
}
