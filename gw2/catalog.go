package gw2

import (
	_ "embed"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/reoring/polyjson"
)

//go:embed families.yaml
var familiesYAML []byte

// FamiliesYAML returns the embedded family descriptors.
func FamiliesYAML() []byte { return append([]byte(nil), familiesYAML...) }

// Option configures NewCatalog.
type Option func(*options)

type options struct {
	logger *slog.Logger
	mapper polyjson.Mapper
	parse  polyjson.ParseOpt
}

// WithLogger sets the logger used by every family for fallback diagnostics.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithMapper replaces the structural mapper (default polyjson.JSONMapper).
// Enum canonicalisation relies on UnmarshalJSON, which only the JSON mapper
// honours.
func WithMapper(m polyjson.Mapper) Option { return func(o *options) { o.mapper = m } }

// WithParseOpt sets the parse options used by DecodeItem, DecodeItems and the
// resolver.
func WithParseOpt(p polyjson.ParseOpt) Option { return func(o *options) { o.parse = p } }

// Catalog holds the item family and its nested detail families.
type Catalog struct {
	items     *polyjson.Family[Item]
	armor     *polyjson.Family[ArmorDetails]
	weapon    *polyjson.Family[WeaponDetails]
	gizmo     *polyjson.Family[GizmoDetails]
	tool      *polyjson.Family[ToolDetails]
	trinket   *polyjson.Family[TrinketDetails]
	container *polyjson.Family[ContainerDetails]

	resolver    *polyjson.Resolver
	descriptors polyjson.Descriptors
	parse       polyjson.ParseOpt
}

// NewCatalog builds every family from the embedded descriptors.
func NewCatalog(opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	ds, err := polyjson.LoadDescriptorsBytes(familiesYAML)
	if err != nil {
		return nil, errors.Wrap(err, "gw2: load families.yaml")
	}
	c := &Catalog{descriptors: ds, parse: o.parse}

	if c.armor, err = build(ds, "armor_details", o, armorVariants); err != nil {
		return nil, err
	}
	if c.weapon, err = build(ds, "weapon_details", o, weaponVariants); err != nil {
		return nil, err
	}
	if c.gizmo, err = build(ds, "gizmo_details", o, gizmoVariants); err != nil {
		return nil, err
	}
	if c.tool, err = build(ds, "tool_details", o, toolVariants); err != nil {
		return nil, err
	}
	if c.trinket, err = build(ds, "trinket_details", o, trinketVariants); err != nil {
		return nil, err
	}
	if c.container, err = build(ds, "container_details", o, containerVariants); err != nil {
		return nil, err
	}
	if c.items, err = build(ds, "item", o, c.itemVariants); err != nil {
		return nil, err
	}

	c.resolver, err = polyjson.NewResolver([]polyjson.Handle{
		c.items, c.armor, c.weapon, c.gizmo, c.tool, c.trinket, c.container,
	}, polyjson.WithParseOpt(o.parse))
	if err != nil {
		return nil, errors.Wrap(err, "gw2: combine families")
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error.
func MustCatalog(opts ...Option) *Catalog {
	c, err := NewCatalog(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func build[T any](ds polyjson.Descriptors, name string, o options, variants func(*polyjson.FamilyBuilder[T])) (*polyjson.Family[T], error) {
	d, ok := ds.Get(name)
	if !ok {
		return nil, errors.Errorf("gw2: no descriptor for family %q", name)
	}
	b := polyjson.FromDescriptor[T](d)
	variants(b)
	if o.logger != nil {
		b.Logger(o.logger)
	}
	if o.mapper != nil {
		b.Mapper(o.mapper)
	}
	f, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "gw2: build %s", name)
	}
	return f, nil
}

func (c *Catalog) itemVariants(b *polyjson.FamilyBuilder[Item]) {
	b.Variant("Armor", func() Item { return &Armor{} },
		polyjson.Details("details", c.armor, func(a *Armor, d ArmorDetails) { a.Details = d })).
		Variant("Back", func() Item { return &Back{} }).
		Variant("Bag", func() Item { return &Bag{} }).
		Variant("Consumable", func() Item { return &Consumable{} }).
		Variant("Container", func() Item { return &Container{} },
			polyjson.Details("details", c.container, func(ct *Container, d ContainerDetails) { ct.Details = d })).
		Variant("CraftingMaterial", func() Item { return &CraftingMaterial{} }).
		Variant("Gathering", func() Item { return &Gathering{} }).
		Variant("Gizmo", func() Item { return &Gizmo{} },
			polyjson.Details("details", c.gizmo, func(g *Gizmo, d GizmoDetails) { g.Details = d })).
		Variant("JadeTechModule", func() Item { return &JadeTechModule{} }).
		Variant("Key", func() Item { return &Key{} }).
		Variant("MiniPet", func() Item { return &MiniPet{} }).
		Variant("PowerCore", func() Item { return &PowerCore{} }).
		Variant("Relic", func() Item { return &Relic{} }).
		Variant("Tool", func() Item { return &Tool{} },
			polyjson.Details("details", c.tool, func(t *Tool, d ToolDetails) { t.Details = d })).
		Variant("Trait", func() Item { return &Trait{} }).
		Variant("Trinket", func() Item { return &Trinket{} },
			polyjson.Details("details", c.trinket, func(t *Trinket, d TrinketDetails) { t.Details = d })).
		Variant("Trophy", func() Item { return &Trophy{} }).
		Variant("UpgradeComponent", func() Item { return &UpgradeComponent{} }).
		Variant("Weapon", func() Item { return &Weapon{} },
			polyjson.Details("details", c.weapon, func(w *Weapon, d WeaponDetails) { w.Details = d })).
		Unknown(func(raw string) Item { return &UnknownItem{RawType: raw} })
}

func armorVariants(b *polyjson.FamilyBuilder[ArmorDetails]) {
	b.Variant("Boots", func() ArmorDetails { return &Boots{} }).
		Variant("Coat", func() ArmorDetails { return &Coat{} }).
		Variant("Gloves", func() ArmorDetails { return &Gloves{} }).
		Variant("Helm", func() ArmorDetails { return &Helm{} }).
		Variant("HelmAquatic", func() ArmorDetails { return &HelmAquatic{} }).
		Variant("Leggings", func() ArmorDetails { return &Leggings{} }).
		Variant("Shoulders", func() ArmorDetails { return &Shoulders{} }).
		Unknown(func(raw string) ArmorDetails { return &UnknownArmorDetails{RawType: raw} })
}

func weaponVariants(b *polyjson.FamilyBuilder[WeaponDetails]) {
	b.Variant("Axe", func() WeaponDetails { return &Axe{} }).
		Variant("Dagger", func() WeaponDetails { return &Dagger{} }).
		Variant("Mace", func() WeaponDetails { return &Mace{} }).
		Variant("Pistol", func() WeaponDetails { return &Pistol{} }).
		Variant("Scepter", func() WeaponDetails { return &Scepter{} }).
		Variant("Sword", func() WeaponDetails { return &Sword{} }).
		Variant("Focus", func() WeaponDetails { return &Focus{} }).
		Variant("Shield", func() WeaponDetails { return &Shield{} }).
		Variant("Torch", func() WeaponDetails { return &Torch{} }).
		Variant("Warhorn", func() WeaponDetails { return &Warhorn{} }).
		Variant("Greatsword", func() WeaponDetails { return &Greatsword{} }).
		Variant("Hammer", func() WeaponDetails { return &Hammer{} }).
		Variant("LongBow", func() WeaponDetails { return &LongBow{} }).
		Variant("Rifle", func() WeaponDetails { return &Rifle{} }).
		Variant("ShortBow", func() WeaponDetails { return &ShortBow{} }).
		Variant("Staff", func() WeaponDetails { return &Staff{} }).
		Variant("Harpoon", func() WeaponDetails { return &Harpoon{} }).
		Variant("Speargun", func() WeaponDetails { return &Speargun{} }).
		Variant("Trident", func() WeaponDetails { return &Trident{} }).
		Variant("LargeBundle", func() WeaponDetails { return &LargeBundle{} }).
		Variant("SmallBundle", func() WeaponDetails { return &SmallBundle{} }).
		Variant("Toy", func() WeaponDetails { return &Toy{} }).
		Variant("ToyTwoHanded", func() WeaponDetails { return &ToyTwoHanded{} }).
		Unknown(func(raw string) WeaponDetails { return &UnknownWeaponDetails{RawType: raw} })
}

func gizmoVariants(b *polyjson.FamilyBuilder[GizmoDetails]) {
	b.Variant("Default", func() GizmoDetails { return &DefaultGizmo{} }).
		Variant("ContainerKey", func() GizmoDetails { return &ContainerKey{} }).
		Variant("RentableContractNpc", func() GizmoDetails { return &RentableContractNpc{} }).
		Variant("UnlimitedConsumable", func() GizmoDetails { return &UnlimitedConsumable{} }).
		Unknown(func(raw string) GizmoDetails { return &UnknownGizmoDetails{RawType: raw} })
}

func toolVariants(b *polyjson.FamilyBuilder[ToolDetails]) {
	b.Variant("Salvage", func() ToolDetails { return &SalvageKit{} }).
		Unknown(func(raw string) ToolDetails { return &UnknownToolDetails{RawType: raw} })
}

func trinketVariants(b *polyjson.FamilyBuilder[TrinketDetails]) {
	b.Variant("Accessory", func() TrinketDetails { return &Accessory{} }).
		Variant("Amulet", func() TrinketDetails { return &Amulet{} }).
		Variant("Ring", func() TrinketDetails { return &Ring{} }).
		Unknown(func(raw string) TrinketDetails { return &UnknownTrinketDetails{RawType: raw} })
}

func containerVariants(b *polyjson.FamilyBuilder[ContainerDetails]) {
	b.Variant("Default", func() ContainerDetails { return &DefaultContainer{} }).
		Variant("GiftBox", func() ContainerDetails { return &GiftBox{} }).
		Variant("Immediate", func() ContainerDetails { return &ImmediateContainer{} }).
		Variant("OpenUI", func() ContainerDetails { return &OpenUIContainer{} }).
		Unknown(func(raw string) ContainerDetails { return &UnknownContainerDetails{RawType: raw} })
}

// Items is the top-level item family.
func (c *Catalog) Items() *polyjson.Family[Item] { return c.items }

func (c *Catalog) ArmorDetails() *polyjson.Family[ArmorDetails] { return c.armor }

func (c *Catalog) WeaponDetails() *polyjson.Family[WeaponDetails] { return c.weapon }

func (c *Catalog) GizmoDetails() *polyjson.Family[GizmoDetails] { return c.gizmo }

func (c *Catalog) ToolDetails() *polyjson.Family[ToolDetails] { return c.tool }

func (c *Catalog) TrinketDetails() *polyjson.Family[TrinketDetails] { return c.trinket }

func (c *Catalog) ContainerDetails() *polyjson.Family[ContainerDetails] { return c.container }

// Resolver combines all catalogue families; it resolves into Item, any detail
// interface or any concrete variant type.
func (c *Catalog) Resolver() *polyjson.Resolver { return c.resolver }

// Descriptors returns the descriptors the catalogue was built from.
func (c *Catalog) Descriptors() polyjson.Descriptors { return c.descriptors }

// DecodeItem decodes one item object.
func (c *Catalog) DecodeItem(data []byte) (Item, error) {
	return c.items.DecodeBytes(data, c.parse)
}

// DecodeItemWithOutcome decodes one item object and reports how it and its
// details were resolved.
func (c *Catalog) DecodeItemWithOutcome(data []byte) (polyjson.Resolved[Item], error) {
	tree, err := polyjson.ParseBytes(data, c.parse)
	if err != nil {
		return polyjson.Resolved[Item]{}, err
	}
	return c.items.ResolveWithOutcome(tree)
}

// EachItem streams a JSON array of items, calling fn for each resolved item.
func (c *Catalog) EachItem(r io.Reader, fn func(i int, it Item) error) error {
	return c.items.DecodeEach(polyjson.JSONReader(r), fn, c.parse)
}

// DecodeItems decodes a JSON array of items.
func (c *Catalog) DecodeItems(r io.Reader) ([]Item, error) {
	return c.items.DecodeList(polyjson.JSONReader(r), c.parse)
}
