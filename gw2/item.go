package gw2

// Item is any entry of /v2/items. The dynamic type is one of the structs in
// this file or UnknownItem.
type Item interface {
	Common() *ItemCommon
	isItem()
}

// ItemCommon holds the fields every item kind shares.
type ItemCommon struct {
	ID           int        `json:"id"`
	ChatLink     string     `json:"chat_link"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon,omitempty"`
	Description  string     `json:"description,omitempty"`
	Rarity       Rarity     `json:"rarity"`
	Level        int        `json:"level"`
	VendorValue  int        `json:"vendor_value"`
	DefaultSkin  int        `json:"default_skin,omitempty"`
	Flags        []string   `json:"flags"`
	GameTypes    []GameType `json:"game_types"`
	Restrictions []string   `json:"restrictions"`
	UpgradesInto []Upgrade  `json:"upgrades_into,omitempty"`
	UpgradesFrom []Upgrade  `json:"upgrades_from,omitempty"`
}

func (c *ItemCommon) Common() *ItemCommon { return c }

func (*ItemCommon) isItem() {}

// HasFlag reports whether the item carries flag.
func (c *ItemCommon) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Upgrade links an item to the item it upgrades into or from.
type Upgrade struct {
	Upgrade string `json:"upgrade"`
	ItemID  int    `json:"item_id"`
}

// Upgradable is the stat block shared by equipment details.
type Upgradable struct {
	InfusionSlots         []InfusionSlot `json:"infusion_slots"`
	AttributeAdjustment   float64        `json:"attribute_adjustment,omitempty"`
	InfixUpgrade          *InfixUpgrade  `json:"infix_upgrade,omitempty"`
	SuffixItemID          int            `json:"suffix_item_id,omitempty"`
	SecondarySuffixItemID string         `json:"secondary_suffix_item_id,omitempty"`
	StatChoices           []int          `json:"stat_choices,omitempty"`
}

type InfusionSlot struct {
	Flags  []string `json:"flags"`
	ItemID int      `json:"item_id,omitempty"`
}

type InfixUpgrade struct {
	ID         int         `json:"id"`
	Attributes []Attribute `json:"attributes"`
	Buff       *Buff       `json:"buff,omitempty"`
}

type Attribute struct {
	Attribute string `json:"attribute"`
	Modifier  int    `json:"modifier"`
}

type Buff struct {
	SkillID     int    `json:"skill_id"`
	Description string `json:"description,omitempty"`
}

// Item kinds with polymorphic details. Details is set by the catalogue's
// nested families and is nil when the API sent no details object.

type Armor struct {
	ItemCommon
	Details ArmorDetails `json:"details,omitempty"`
}

type Weapon struct {
	ItemCommon
	Details WeaponDetails `json:"details,omitempty"`
}

type Gizmo struct {
	ItemCommon
	Details GizmoDetails `json:"details,omitempty"`
}

type Tool struct {
	ItemCommon
	Details ToolDetails `json:"details,omitempty"`
}

type Trinket struct {
	ItemCommon
	Details TrinketDetails `json:"details,omitempty"`
}

type Container struct {
	ItemCommon
	Details ContainerDetails `json:"details,omitempty"`
}

// Item kinds with plain details.

type Back struct {
	ItemCommon
	Details *BackDetails `json:"details,omitempty"`
}

type BackDetails struct {
	Upgradable
}

type Bag struct {
	ItemCommon
	Details *BagDetails `json:"details,omitempty"`
}

type BagDetails struct {
	Size         int  `json:"size"`
	NoSellOrSort bool `json:"no_sell_or_sort"`
}

type Consumable struct {
	ItemCommon
	Details *ConsumableDetails `json:"details,omitempty"`
}

// ConsumableDetails keeps the consumable kind in Type; it is not dispatched.
type ConsumableDetails struct {
	Type           string `json:"type"`
	Description    string `json:"description,omitempty"`
	DurationMs     int64  `json:"duration_ms,omitempty"`
	UnlockType     string `json:"unlock_type,omitempty"`
	ColorID        int    `json:"color_id,omitempty"`
	RecipeID       int    `json:"recipe_id,omitempty"`
	ExtraRecipeIDs []int  `json:"extra_recipe_ids,omitempty"`
	GuildUpgradeID int    `json:"guild_upgrade_id,omitempty"`
	ApplyCount     int    `json:"apply_count,omitempty"`
	Name           string `json:"name,omitempty"`
	Icon           string `json:"icon,omitempty"`
	Skins          []int  `json:"skins,omitempty"`
}

type Gathering struct {
	ItemCommon
	Details *GatheringDetails `json:"details,omitempty"`
}

type GatheringDetails struct {
	Type string `json:"type"`
}

type MiniPet struct {
	ItemCommon
	Details *MiniPetDetails `json:"details,omitempty"`
}

type MiniPetDetails struct {
	MinipetID int `json:"minipet_id"`
}

type UpgradeComponent struct {
	ItemCommon
	Details *UpgradeComponentDetails `json:"details,omitempty"`
}

type UpgradeComponentDetails struct {
	Type                 string        `json:"type"`
	Flags                []string      `json:"flags"`
	InfusionUpgradeFlags []string      `json:"infusion_upgrade_flags"`
	Suffix               string        `json:"suffix,omitempty"`
	InfixUpgrade         *InfixUpgrade `json:"infix_upgrade,omitempty"`
	Bonuses              []string      `json:"bonuses,omitempty"`
}

// Item kinds without details.

type CraftingMaterial struct{ ItemCommon }

type JadeTechModule struct{ ItemCommon }

type Key struct{ ItemCommon }

type PowerCore struct{ ItemCommon }

type Relic struct{ ItemCommon }

type Trait struct{ ItemCommon }

type Trophy struct{ ItemCommon }

// UnknownItem is an item whose type tag the catalogue does not know, or that
// has no usable tag. Details are kept undecoded.
type UnknownItem struct {
	ItemCommon
	RawType string         `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}
