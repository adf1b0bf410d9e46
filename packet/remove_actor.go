package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// RemoveActor despawns an actor on the client.
type RemoveActor struct {
	TargetActorID types.ActorUniqueID
}

func (*RemoveActor) ID() uint32 { return IDRemoveActor }

func (pk *RemoveActor) Marshal(io wire.IO) {
	pk.TargetActorID.Marshal(io)
}
