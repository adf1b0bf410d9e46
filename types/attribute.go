package types

import "github.com/arloliu/bedrockproto/wire"

// AttributeValue is the compact attribute form sent when an actor spawns:
// no modifiers, just the bounds and the current value.
type AttributeValue struct {
	Name  string
	Min   float32
	Value float32
	Max   float32
}

func (a *AttributeValue) Marshal(io wire.IO) {
	io.String(&a.Name)
	io.Float32(&a.Min)
	io.Float32(&a.Value)
	io.Float32(&a.Max)
}

// Actor link types.
const (
	ActorLinkRemove    uint8 = 0
	ActorLinkRider     uint8 = 1
	ActorLinkPassenger uint8 = 2
)

// ActorLink attaches one actor to another, rider to ridden.
type ActorLink struct {
	RiddenActorID  ActorUniqueID
	RiderActorID   ActorUniqueID
	Type           uint8
	Immediate      bool
	RiderInitiated bool
}

func (l *ActorLink) Marshal(io wire.IO) {
	l.RiddenActorID.Marshal(io)
	l.RiderActorID.Marshal(io)
	io.Uint8(&l.Type)
	io.Bool(&l.Immediate)
	io.Bool(&l.RiderInitiated)
}
