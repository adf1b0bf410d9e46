package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// InventoryTransaction reports a client-side inventory mutation with the
// full list of slot changes it implies.
type InventoryTransaction struct {
	Transaction types.InventoryTransaction
}

func (*InventoryTransaction) ID() uint32 { return IDInventoryTransaction }

func (pk *InventoryTransaction) Marshal(io wire.IO) {
	pk.Transaction.Marshal(io)
}
