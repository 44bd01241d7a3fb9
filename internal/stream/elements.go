// Package stream walks JSON arrays element by element over a token source, so
// large arrays never have to be materialised as one tree.
package stream

import (
	"errors"
	"io"

	eng "github.com/reoring/polyjson/internal/engine"
)

// ErrNotArray is returned by Each when the input does not start with '['.
var ErrNotArray = errors.New("stream: expected a JSON array")

// Each reads the array at the head of src and calls fn once per element with a
// source limited to that element. Tokens fn leaves unread are skipped before
// the next element. Each stops at the first error.
func Each(src eng.TokenSource, fn func(i int, elem eng.TokenSource) error) error {
	tok, err := src.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind != eng.KindBeginArray {
		return ErrNotArray
	}
	for i := 0; ; i++ {
		tok, err := src.NextToken()
		if err != nil {
			return err
		}
		if tok.Kind == eng.KindEndArray {
			return nil
		}
		el := &element{inner: src, first: &tok}
		if err := fn(i, el); err != nil {
			return err
		}
		if err := el.drain(); err != nil {
			return err
		}
	}
}

// element replays its first token, then streams until the matching end of
// the container (or stops right away for a scalar).
type element struct {
	inner eng.TokenSource
	first *eng.Token
	depth int
	done  bool
}

func (e *element) NextToken() (eng.Token, error) {
	if e.done {
		return eng.Token{}, io.EOF
	}
	var tok eng.Token
	if e.first != nil {
		tok, e.first = *e.first, nil
	} else {
		t, err := e.inner.NextToken()
		if err != nil {
			return eng.Token{}, err
		}
		tok = t
	}
	switch tok.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
		e.depth++
	case eng.KindEndObject, eng.KindEndArray:
		e.depth--
	}
	if e.depth <= 0 {
		e.done = true
	}
	return tok, nil
}

func (e *element) drain() error {
	for !e.done {
		if _, err := e.NextToken(); err != nil {
			return err
		}
	}
	return nil
}

func (e *element) Location() int64 { return e.inner.Location() }
