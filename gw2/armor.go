package gw2

// ArmorDetails is the details object of an Armor item, dispatched on the
// armor slot.
type ArmorDetails interface {
	Stats() *ArmorStats
	isArmorDetails()
}

type ArmorStats struct {
	WeightClass WeightClass `json:"weight_class"`
	Defense     int         `json:"defense"`
	Upgradable
}

func (s *ArmorStats) Stats() *ArmorStats { return s }

func (*ArmorStats) isArmorDetails() {}

type Boots struct{ ArmorStats }

type Coat struct{ ArmorStats }

type Gloves struct{ ArmorStats }

type Helm struct{ ArmorStats }

type HelmAquatic struct{ ArmorStats }

type Leggings struct{ ArmorStats }

type Shoulders struct{ ArmorStats }

type UnknownArmorDetails struct {
	ArmorStats
	RawType string `json:"-"`
}
