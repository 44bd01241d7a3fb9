package gw2

import (
	gojson "github.com/goccy/go-json"

	"github.com/reoring/polyjson/codec"
)

// Rarity is an item rarity. Values the catalogue does not know are kept as
// sent by the API.
type Rarity string

const (
	RarityJunk       Rarity = "Junk"
	RarityBasic      Rarity = "Basic"
	RarityFine       Rarity = "Fine"
	RarityMasterwork Rarity = "Masterwork"
	RarityRare       Rarity = "Rare"
	RarityExotic     Rarity = "Exotic"
	RarityAscended   Rarity = "Ascended"
	RarityLegendary  Rarity = "Legendary"
)

var rarities = codec.NewEnum(RarityJunk, RarityBasic, RarityFine, RarityMasterwork,
	RarityRare, RarityExotic, RarityAscended, RarityLegendary)

func (r *Rarity) UnmarshalJSON(b []byte) error { return decodeEnum(rarities, b, r) }

// Known reports whether r is one of the listed rarities.
func (r Rarity) Known() bool { return rarities.Known(r) }

// WeightClass is the armor weight.
type WeightClass string

const (
	WeightHeavy    WeightClass = "Heavy"
	WeightMedium   WeightClass = "Medium"
	WeightLight    WeightClass = "Light"
	WeightClothing WeightClass = "Clothing"
)

var weightClasses = codec.NewEnum(WeightHeavy, WeightMedium, WeightLight, WeightClothing)

func (w *WeightClass) UnmarshalJSON(b []byte) error { return decodeEnum(weightClasses, b, w) }

func (w WeightClass) Known() bool { return weightClasses.Known(w) }

// DamageType is the visual damage type of a weapon.
type DamageType string

const (
	DamageFire      DamageType = "Fire"
	DamageIce       DamageType = "Ice"
	DamageLightning DamageType = "Lightning"
	DamagePhysical  DamageType = "Physical"
	DamageChoking   DamageType = "Choking"
)

var damageTypes = codec.NewEnum(DamageFire, DamageIce, DamageLightning, DamagePhysical, DamageChoking)

func (d *DamageType) UnmarshalJSON(b []byte) error { return decodeEnum(damageTypes, b, d) }

func (d DamageType) Known() bool { return damageTypes.Known(d) }

// GameType is a game mode an item can be used in.
type GameType string

const (
	GameActivity GameType = "Activity"
	GameDungeon  GameType = "Dungeon"
	GamePve      GameType = "Pve"
	GamePvp      GameType = "Pvp"
	GamePvpLobby GameType = "PvpLobby"
	GameWvw      GameType = "Wvw"
)

var gameTypes = codec.NewEnum(GameActivity, GameDungeon, GamePve, GamePvp, GamePvpLobby, GameWvw)

func (g *GameType) UnmarshalJSON(b []byte) error { return decodeEnum(gameTypes, b, g) }

func (g GameType) Known() bool { return gameTypes.Known(g) }

// decodeEnum reads a JSON string and stores its canonical spelling. null
// leaves dst untouched.
func decodeEnum[T ~string](e codec.Enum[T], b []byte, dst *T) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := gojson.Unmarshal(b, &s); err != nil {
		return err
	}
	*dst = e.Canonical(s)
	return nil
}
