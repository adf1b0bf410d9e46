package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// PlayerAction reports a state-machine action of the local player, from
// block breaking progress to sprint and sneak transitions.
type PlayerAction struct {
	PlayerRuntimeID types.ActorRuntimeID
	Action          types.PlayerActionType
	BlockPosition   types.BlockPos
	ResultPosition  types.BlockPos
	Face            int32
}

func (*PlayerAction) ID() uint32 { return IDPlayerAction }

func (pk *PlayerAction) Marshal(io wire.IO) {
	pk.PlayerRuntimeID.Marshal(io)
	pk.Action.Marshal(io)
	pk.BlockPosition.Marshal(io)
	pk.ResultPosition.Marshal(io)
	io.Varint32(&pk.Face)
}
