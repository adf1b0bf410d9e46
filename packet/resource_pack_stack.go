package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// ResourcePackStack sends the order packs apply in, bottom of the stack
// first, once the client has every pack it needs.
type ResourcePackStack struct {
	TexturePackRequired bool
	BehaviourPacks      []types.StackPack
	ResourcePacks       []types.StackPack
	BaseGameVersion     string
	Experiments         types.Experiments
}

func (*ResourcePackStack) ID() uint32 { return IDResourcePackStack }

func (pk *ResourcePackStack) Marshal(io wire.IO) {
	io.Bool(&pk.TexturePackRequired)
	wire.MarshalerSlice[types.StackPack](io, &pk.BehaviourPacks)
	wire.MarshalerSlice[types.StackPack](io, &pk.ResourcePacks)
	io.String(&pk.BaseGameVersion)
	pk.Experiments.Marshal(io)
}
