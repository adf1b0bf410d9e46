package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Interact reports a simple interaction with another actor. Mouse-over and
// vehicle-leave actions carry the position they refer to.
type Interact struct {
	Action               types.InteractAction
	TargetActorRuntimeID types.ActorRuntimeID
	Position             types.Vec3
}

func (*Interact) ID() uint32 { return IDInteract }

func (pk *Interact) Marshal(io wire.IO) {
	pk.Action.Marshal(io)
	pk.TargetActorRuntimeID.Marshal(io)

	if pk.Action.HasPosition() {
		pk.Position.Marshal(io)
	}
}
