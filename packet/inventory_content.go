package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// InventoryContent replaces the entire content of one inventory window.
type InventoryContent struct {
	InventoryID uint32
	Content     []types.ItemStack
}

func (*InventoryContent) ID() uint32 { return IDInventoryContent }

func (pk *InventoryContent) Marshal(io wire.IO) {
	io.Varuint32(&pk.InventoryID)
	wire.MarshalerSlice[types.ItemStack](io, &pk.Content)
}
