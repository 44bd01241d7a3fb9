package gw2

// ContainerDetails is the details object of a Container item.
type ContainerDetails interface {
	isContainerDetails()
}

type DefaultContainer struct{}

// GiftBox opens into a random selection of items.
type GiftBox struct{}

type ImmediateContainer struct{}

// OpenUIContainer opens a selection window.
type OpenUIContainer struct{}

type UnknownContainerDetails struct {
	RawType string `json:"-"`
}

func (*DefaultContainer) isContainerDetails()        {}
func (*GiftBox) isContainerDetails()                 {}
func (*ImmediateContainer) isContainerDetails()      {}
func (*OpenUIContainer) isContainerDetails()         {}
func (*UnknownContainerDetails) isContainerDetails() {}
