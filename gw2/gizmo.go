package gw2

// GizmoDetails is the details object of a Gizmo item. Its tag may be sent as
// {"gizmo":{"type":...}}, as "gizmo_type" or as a plain "type".
type GizmoDetails interface {
	Info() *GizmoInfo
	isGizmoDetails()
}

type GizmoInfo struct {
	GuildUpgradeID int   `json:"guild_upgrade_id,omitempty"`
	VendorIDs      []int `json:"vendor_ids,omitempty"`
}

func (g *GizmoInfo) Info() *GizmoInfo { return g }

func (*GizmoInfo) isGizmoDetails() {}

type DefaultGizmo struct{ GizmoInfo }

type ContainerKey struct{ GizmoInfo }

type RentableContractNpc struct{ GizmoInfo }

type UnlimitedConsumable struct{ GizmoInfo }

type UnknownGizmoDetails struct {
	GizmoInfo
	RawType string `json:"-"`
}
