package gw2

// TrinketDetails is the details object of a Trinket item. Trinket variants
// declare "type" themselves, so the tag stays on the decoded value.
type TrinketDetails interface {
	Stats() *TrinketStats
	isTrinketDetails()
}

type TrinketStats struct {
	Type string `json:"type"`
	Upgradable
}

func (s *TrinketStats) Stats() *TrinketStats { return s }

func (*TrinketStats) isTrinketDetails() {}

type Accessory struct{ TrinketStats }

type Amulet struct{ TrinketStats }

type Ring struct{ TrinketStats }

type UnknownTrinketDetails struct {
	TrinketStats
	RawType string `json:"-"`
}
