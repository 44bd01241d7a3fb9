package polyjson

import (
	"encoding/json"
	"reflect"

	gojson "github.com/goccy/go-json"
	"github.com/go-viper/mapstructure/v2"
)

// Mapper fills a concrete value from a JSON object once its type is known.
// dst is always a non-nil pointer.
type Mapper interface {
	Map(src map[string]any, dst any) error
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(src map[string]any, dst any) error

func (f MapperFunc) Map(src map[string]any, dst any) error { return f(src, dst) }

// JSONMapper re-encodes the object with goccy/go-json and decodes it into dst,
// so json struct tags and custom UnmarshalJSON methods apply.
func JSONMapper() Mapper { return jsonMapper{} }

type jsonMapper struct{}

func (jsonMapper) Map(src map[string]any, dst any) error {
	b, err := gojson.Marshal(src)
	if err != nil {
		return err
	}
	return gojson.Unmarshal(b, dst)
}

// MapstructureMapper decodes the object directly with mapstructure, reading
// json tags and squashing embedded structs. It skips the re-encode step but
// ignores UnmarshalJSON methods; string-backed enums are still assigned.
func MapstructureMapper() Mapper { return mapstructureMapper{} }

type mapstructureMapper struct{}

func (mapstructureMapper) Map(src map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook:       jsonNumberHook,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

var jsonNumberType = reflect.TypeFor[json.Number]()

// jsonNumberHook converts json.Number leaves to the numeric kind of the target.
func jsonNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from != jsonNumberType {
		return data, nil
	}
	n := data.(json.Number)
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return n.Int64()
	case reflect.Float32, reflect.Float64:
		return n.Float64()
	case reflect.String:
		return n.String(), nil
	}
	return data, nil
}
