// Package polyjson resolves polymorphic JSON objects into typed Go values.
//
// A family is a sealed Go interface plus the concrete structs that implement
// it. Each JSON object of the family carries a discriminator ("type tag")
// either beside its other fields or inside a named sub-object. Resolution
// reads the tag, picks the concrete struct, removes the consumed tag and hands
// the rest of the object to a structural Mapper.
//
// Guarantees:
// - Unknown, missing or malformed tags never fail; they select the family's
//   Unknown variant, which keeps the raw tag.
// - Tags match exactly, then case-insensitively, then through an optional
//   native parser.
// - Detail bindings resolve one nested family; nesting stops there.
// - Families and resolvers are immutable after Build and safe for concurrent
//   use. Resolution reads only; Encode/Marshal return ErrEncodeUnsupported.
//
// Typical usage:
//
//	details := polyjson.NewFamily[Detail]("detail").
//	    Variant("Rifle", func() Detail { return &Rifle{} }).
//	    Unknown(func(raw string) Detail { return &UnknownDetail{RawType: raw} }).
//	    MustBuild()
//
//	items := polyjson.NewFamily[Item]("item").
//	    Variant("Weapon", func() Item { return &Weapon{} },
//	        polyjson.Details("details", details, func(w *Weapon, d Detail) { w.Details = d })).
//	    Unknown(func(raw string) Item { return &UnknownItem{RawType: raw} }).
//	    MustBuild()
//
//	it, err := items.DecodeBytes(data)
//
// Layout:
// - Root package: public API (families, registry, resolver, mappers, Issues).
// - source/: JSON token drivers (encoding/json default, go-json with -tags gojson).
// - internal/engine: token -> tree decoding and input enforcement.
// - codec/: case folding and case-insensitive enums.
// - gw2/: the item catalogue families; client/: HTTP client; cmd/polyjson: CLI.
package polyjson
