package gw2

// ToolDetails is the details object of a Tool item. Like gizmos, the tag may
// live in a "tool" sub-object, in "tool_type" or in "type".
type ToolDetails interface {
	isToolDetails()
}

type SalvageKit struct {
	Charges int `json:"charges"`
}

func (*SalvageKit) isToolDetails() {}

type UnknownToolDetails struct {
	RawType string `json:"-"`
	Charges int    `json:"charges,omitempty"`
}

func (*UnknownToolDetails) isToolDetails() {}
