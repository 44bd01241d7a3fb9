package polyjson_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/polyjson"
)

// Shapes: a flat family with a variant that keeps its tag field.

type Shape interface{ isShape() }

type Circle struct {
	Radius float64 `json:"radius"`
}

type Square struct {
	Side int `json:"side"`
}

type Label struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type UnknownShape struct {
	RawType string `json:"-"`
	Color   string `json:"color"`
}

func (*Circle) isShape()       {}
func (*Square) isShape()       {}
func (*Label) isShape()        {}
func (*UnknownShape) isShape() {}

func shapeBuilder() *polyjson.FamilyBuilder[Shape] {
	return polyjson.NewFamily[Shape]("shape").
		Variant("Circle", func() Shape { return &Circle{} }).
		Variant("Square", func() Shape { return &Square{} }).
		Variant("Label", func() Shape { return &Label{} }).
		Unknown(func(raw string) Shape { return &UnknownShape{RawType: raw} })
}

func mustShapes(t *testing.T) *polyjson.Family[Shape] {
	t.Helper()
	f, err := shapeBuilder().Build()
	if err != nil {
		t.Fatalf("build shapes: %v", err)
	}
	return f
}

// Badges: every variant, the unknown one included, declares the tag field.

type Badge interface{ isBadge() }

type BadgeFields struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type Gold struct{ BadgeFields }

type Silver struct{ BadgeFields }

type UnknownBadge struct {
	BadgeFields
	RawType string `json:"-"`
}

func (*BadgeFields) isBadge() {}

func mustBadges(t *testing.T) *polyjson.Family[Badge] {
	t.Helper()
	f, err := polyjson.NewFamily[Badge]("badge").
		Variant("Gold", func() Badge { return &Gold{} }).
		Variant("Silver", func() Badge { return &Silver{} }).
		NativeTag(func(raw any) (string, bool) {
			if n, ok := raw.(json.Number); ok && n == "1" {
				return "Gold", true
			}
			return "", false
		}).
		Unknown(func(raw string) Badge { return &UnknownBadge{RawType: raw} }).
		Build()
	if err != nil {
		t.Fatalf("build badges: %v", err)
	}
	return f
}

// Devices and parts: a two-level family where the nested tag can live in a
// sub-object, a prefixed flat field or a plain "type" field.

type Part interface{ isPart() }

type Bolt struct {
	Size int `json:"size"`
}

type Nut struct {
	Thread string `json:"thread"`
}

type UnknownPart struct {
	RawType string `json:"-"`
}

func (*Bolt) isPart()        {}
func (*Nut) isPart()         {}
func (*UnknownPart) isPart() {}

type Device interface{ isDevice() }

type Gadget struct {
	Name string `json:"name"`
	Part Part   `json:"-"`
}

type UnknownDevice struct {
	RawType string `json:"-"`
}

func (*Gadget) isDevice()        {}
func (*UnknownDevice) isDevice() {}

func mustParts(t *testing.T) *polyjson.Family[Part] {
	t.Helper()
	f, err := polyjson.NewFamily[Part]("part").
		Discriminator(polyjson.Inside("part", "kind"), polyjson.At("part_kind"), polyjson.At("type")).
		Variant("Bolt", func() Part { return &Bolt{} }).
		Variant("Nut", func() Part { return &Nut{} }).
		Unknown(func(raw string) Part { return &UnknownPart{RawType: raw} }).
		Build()
	if err != nil {
		t.Fatalf("build parts: %v", err)
	}
	return f
}

func mustDevices(t *testing.T, parts *polyjson.Family[Part]) *polyjson.Family[Device] {
	t.Helper()
	f, err := polyjson.NewFamily[Device]("device").
		Variant("Gadget", func() Device { return &Gadget{} },
			polyjson.Details("details", parts, func(g *Gadget, p Part) { g.Part = p })).
		Unknown(func(raw string) Device { return &UnknownDevice{RawType: raw} }).
		Build()
	if err != nil {
		t.Fatalf("build devices: %v", err)
	}
	return f
}

func parse(t *testing.T, js string) any {
	t.Helper()
	v, err := polyjson.ParseBytes([]byte(js))
	if err != nil {
		t.Fatalf("parse %s: %v", js, err)
	}
	return v
}
