//go:build !gojson

package gojson

import (
	"io"

	"github.com/reoring/polyjson"
	jsonsrc "github.com/reoring/polyjson/source/json"
)

// Driver returns the encoding/json source when the gojson tag is not enabled.
func Driver() polyjson.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) polyjson.Source { return jsonsrc.NewReader(r) }
func (stub) NewBytes(b []byte) polyjson.Source     { return jsonsrc.NewBytes(b) }
func (stub) Name() string                          { return "encoding/json (gojson stub)" }
