package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Camera points a player's camera at a camera actor.
type Camera struct {
	CameraActorID  types.ActorUniqueID
	TargetPlayerID types.ActorUniqueID
}

func (*Camera) ID() uint32 { return IDCamera }

func (pk *Camera) Marshal(io wire.IO) {
	pk.CameraActorID.Marshal(io)
	pk.TargetPlayerID.Marshal(io)
}
