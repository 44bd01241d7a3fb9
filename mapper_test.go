package polyjson_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/polyjson"
)

type meta struct {
	Name string `json:"name"`
}

type stats struct {
	meta
	Level  int      `json:"level"`
	Weight float64  `json:"weight"`
	Flags  []string `json:"flags"`
}

func TestMappers_FillStructs(t *testing.T) {
	src := map[string]any{
		"name":   "anvil",
		"level":  json.Number("80"),
		"weight": json.Number("12.5"),
		"flags":  []any{"NoSell", "SoulbindOnUse"},
		"extra":  true,
	}
	for name, m := range map[string]polyjson.Mapper{
		"json":         polyjson.JSONMapper(),
		"mapstructure": polyjson.MapstructureMapper(),
	} {
		var got stats
		if err := m.Map(src, &got); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got.Name != "anvil" || got.Level != 80 || got.Weight != 12.5 || len(got.Flags) != 2 {
			t.Fatalf("%s: unexpected result %+v", name, got)
		}
	}
}

func TestMappers_FamilyWithMapstructure(t *testing.T) {
	shapes, err := shapeBuilder().Mapper(polyjson.MapstructureMapper()).Build()
	if err != nil {
		t.Fatal(err)
	}
	got, err := shapes.Resolve(parse(t, `{"type":"Square","side":6}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.(*Square).Side != 6 {
		t.Fatalf("unexpected square %+v", got)
	}
}

func TestMapperFunc(t *testing.T) {
	calls := 0
	m := polyjson.MapperFunc(func(src map[string]any, dst any) error {
		calls++
		if c, ok := dst.(*Circle); ok {
			c.Radius = 99
		}
		return nil
	})
	shapes, err := shapeBuilder().Mapper(m).Build()
	if err != nil {
		t.Fatal(err)
	}
	got, err := shapes.Resolve(parse(t, `{"type":"Circle","radius":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || got.(*Circle).Radius != 99 {
		t.Fatalf("custom mapper not used: calls=%d %+v", calls, got)
	}
}
