package gw2

// WeaponDetails is the details object of a Weapon item, dispatched on the
// weapon kind.
type WeaponDetails interface {
	Stats() *WeaponStats
	isWeaponDetails()
}

type WeaponStats struct {
	DamageType DamageType `json:"damage_type"`
	MinPower   int        `json:"min_power"`
	MaxPower   int        `json:"max_power"`
	Defense    int        `json:"defense"`
	Upgradable
}

func (s *WeaponStats) Stats() *WeaponStats { return s }

func (*WeaponStats) isWeaponDetails() {}

// One-handed main and off hand.

type Axe struct{ WeaponStats }

type Dagger struct{ WeaponStats }

type Mace struct{ WeaponStats }

type Pistol struct{ WeaponStats }

type Scepter struct{ WeaponStats }

type Sword struct{ WeaponStats }

type Focus struct{ WeaponStats }

type Shield struct{ WeaponStats }

type Torch struct{ WeaponStats }

type Warhorn struct{ WeaponStats }

// Two-handed.

type Greatsword struct{ WeaponStats }

type Hammer struct{ WeaponStats }

type LongBow struct{ WeaponStats }

type Rifle struct{ WeaponStats }

type ShortBow struct{ WeaponStats }

type Staff struct{ WeaponStats }

// Aquatic.

type Harpoon struct{ WeaponStats }

type Speargun struct{ WeaponStats }

type Trident struct{ WeaponStats }

// Bundles and toys.

type LargeBundle struct{ WeaponStats }

type SmallBundle struct{ WeaponStats }

type Toy struct{ WeaponStats }

type ToyTwoHanded struct{ WeaponStats }

type UnknownWeaponDetails struct {
	WeaponStats
	RawType string `json:"-"`
}
