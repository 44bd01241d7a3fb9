// Package gw2 models the Guild Wars 2 item catalogue as polyjson families.
//
// Items are dispatched on their top-level "type" tag. Armor, weapons, gizmos,
// tools, trinkets and containers carry a second polymorphic level in their
// "details" object; the other item kinds use plain detail structs.
//
// All families are built once by NewCatalog from the embedded families.yaml
// and are safe for concurrent use. Tags the catalogue does not know resolve to
// the Unknown* variant of their family with the raw tag preserved.
package gw2
