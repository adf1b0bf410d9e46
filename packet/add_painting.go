package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// AddPainting spawns a painting actor with the given motif on a wall face.
type AddPainting struct {
	TargetActorID   types.ActorUniqueID
	TargetRuntimeID types.ActorRuntimeID
	Position        types.Vec3
	Direction       int32
	Motif           string
}

func (*AddPainting) ID() uint32 { return IDAddPainting }

func (pk *AddPainting) Marshal(io wire.IO) {
	pk.TargetActorID.Marshal(io)
	pk.TargetRuntimeID.Marshal(io)
	pk.Position.Marshal(io)
	io.Varint32(&pk.Direction)
	io.String(&pk.Motif)
}
