package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// ResourcePacksInfo opens resource pack negotiation by listing every pack
// the server offers for download.
type ResourcePacksInfo struct {
	PacksRequired      bool
	HasScripts         bool
	ForcingServerPacks bool
	BehaviourPacks     []types.BehaviourPackInfo
	ResourcePacks      []types.ResourcePackInfo
}

func (*ResourcePacksInfo) ID() uint32 { return IDResourcePacksInfo }

func (pk *ResourcePacksInfo) Marshal(io wire.IO) {
	io.Bool(&pk.PacksRequired)
	io.Bool(&pk.HasScripts)
	io.Bool(&pk.ForcingServerPacks)
	wire.MarshalerSlice[types.BehaviourPackInfo](io, &pk.BehaviourPacks)
	wire.MarshalerSlice[types.ResourcePackInfo](io, &pk.ResourcePacks)
}
