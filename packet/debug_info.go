package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// DebugInfo carries opaque debugging data for development builds of the
// client.
type DebugInfo struct {
	PlayerUniqueID types.ActorUniqueID
	Data           []byte
}

func (*DebugInfo) ID() uint32 { return IDDebugInfo }

func (pk *DebugInfo) Marshal(io wire.IO) {
	pk.PlayerUniqueID.Marshal(io)
	io.ByteSlice(&pk.Data)
}
