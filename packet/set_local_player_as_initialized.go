package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// SetLocalPlayerAsInitialized tells the server the client finished spawning
// and is ready for gameplay.
type SetLocalPlayerAsInitialized struct {
	PlayerRuntimeID types.ActorRuntimeID
}

func (*SetLocalPlayerAsInitialized) ID() uint32 { return IDSetLocalPlayerAsInitialized }

func (pk *SetLocalPlayerAsInitialized) Marshal(io wire.IO) {
	pk.PlayerRuntimeID.Marshal(io)
}
