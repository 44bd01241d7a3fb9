package polyjson_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/polyjson"
)

func mustResolver(t *testing.T) *polyjson.Resolver {
	t.Helper()
	parts := mustParts(t)
	r, err := polyjson.NewResolver([]polyjson.Handle{mustShapes(t), mustDevices(t, parts), parts})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	return r
}

func TestResolver_CanConvert(t *testing.T) {
	r := mustResolver(t)
	for _, typ := range []reflect.Type{
		reflect.TypeFor[Shape](),
		reflect.TypeFor[*Square](),
		reflect.TypeFor[Device](),
		reflect.TypeFor[*Nut](),
		reflect.TypeFor[*UnknownPart](),
	} {
		if !r.CanConvert(typ) {
			t.Fatalf("expected CanConvert(%v)", typ)
		}
	}
	if r.CanConvert(reflect.TypeFor[map[string]any]()) || r.CanConvert(nil) {
		t.Fatalf("resolver claims foreign types")
	}
	names := []string{}
	for _, h := range r.Families() {
		names = append(names, h.Name())
	}
	if !reflect.DeepEqual(names, []string{"device", "part", "shape"}) {
		t.Fatalf("unexpected families: %v", names)
	}
	if h, ok := r.Family("part"); !ok || len(h.Locations()) != 3 {
		t.Fatalf("Family(part): %v %v", h, ok)
	}
}

func TestResolver_RejectsOverlappingFamilies(t *testing.T) {
	shapes := mustShapes(t)
	_, err := polyjson.NewResolver([]polyjson.Handle{shapes, shapes})
	if iss, ok := polyjson.AsIssues(err); !ok || !iss.Has(polyjson.CodeDuplicateTag) {
		t.Fatalf("expected duplicate family error, got %v", err)
	}

	other, err := shapeBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	renamed, err := polyjson.NewFamily[Shape]("figure").
		Variant("Circle", func() Shape { return &Circle{} }).
		Unknown(func(raw string) Shape { return &UnknownShape{RawType: raw} }).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := polyjson.NewResolver([]polyjson.Handle{other, renamed}); err == nil {
		t.Fatalf("expected error for two families claiming Shape")
	}
}

func TestResolver_ResolveByDeclaredType(t *testing.T) {
	r := mustResolver(t)
	tree := parse(t, `{"type":"Nut","thread":"M3"}`)

	v, err := r.Resolve(tree, reflect.TypeFor[Part]())
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(*Nut); !ok || n.Thread != "M3" {
		t.Fatalf("unexpected value %#v", v)
	}

	v, out, err := r.ResolveWithOutcome(tree, reflect.TypeFor[*Bolt]())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(*Bolt); !ok || !out.Forced || out.Unknown() {
		t.Fatalf("declared concrete type not honoured: %T %+v", v, out)
	}

	_, err = r.Resolve(tree, reflect.TypeFor[int]())
	if !errors.Is(err, polyjson.ErrUnclaimedType) {
		t.Fatalf("expected ErrUnclaimedType, got %v", err)
	}
	if iss, ok := polyjson.AsIssues(err); !ok || !iss.Has(polyjson.CodeUnclaimedType) {
		t.Fatalf("expected unclaimed_type issue, got %v", err)
	}
}

func TestResolver_Unmarshal(t *testing.T) {
	r := mustResolver(t)

	var s Shape
	if err := r.Unmarshal([]byte(`{"type":"Square","side":5}`), &s); err != nil {
		t.Fatal(err)
	}
	if sq, ok := s.(*Square); !ok || sq.Side != 5 {
		t.Fatalf("unexpected shape %#v", s)
	}

	var list []Shape
	if err := r.Unmarshal([]byte(`[{"type":"Circle"},{"type":"Mystery"}]`), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("unexpected list %v", list)
	}
	if u, ok := list[1].(*UnknownShape); !ok || u.RawType != "Mystery" {
		t.Fatalf("unexpected list[1] %#v", list[1])
	}

	var c *Circle
	if err := r.Unmarshal([]byte(`{"type":"Circle","radius":4}`), &c); err != nil {
		t.Fatal(err)
	}
	if c == nil || c.Radius != 4 {
		t.Fatalf("unexpected circle %#v", c)
	}

	var sq Square
	if err := r.Unmarshal([]byte(`{"side":9}`), &sq); err != nil {
		t.Fatal(err)
	}
	if sq.Side != 9 {
		t.Fatalf("unexpected square %#v", sq)
	}

	var plain struct {
		Count int `json:"count"`
	}
	if err := r.Unmarshal([]byte(`{"count":3}`), &plain); err != nil || plain.Count != 3 {
		t.Fatalf("plain unmarshal: %v %+v", err, plain)
	}

	var notPtr Square
	if err := r.Unmarshal([]byte(`{}`), notPtr); err == nil {
		t.Fatalf("expected error for non-pointer target")
	}
	if err := r.Unmarshal([]byte(`{"type":"Circle"}`), &list); err == nil {
		t.Fatalf("expected error when a list target receives an object")
	}
}

func TestResolver_MarshalUnsupported(t *testing.T) {
	r := mustResolver(t)
	if _, err := r.Marshal(&Circle{}); !errors.Is(err, polyjson.ErrEncodeUnsupported) {
		t.Fatalf("expected ErrEncodeUnsupported, got %v", err)
	}
}
