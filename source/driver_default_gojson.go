// Package source installs the go-json driver as the default JSON driver when
// imported. Build with -tags gojson to enable the go-json token source.
package source

import (
	"github.com/reoring/polyjson"
	drvgojson "github.com/reoring/polyjson/source/gojson"
)

func init() { polyjson.SetJSONDriver(drvgojson.Driver()) }
