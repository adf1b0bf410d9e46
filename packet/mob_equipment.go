package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// MobEquipment changes the item an actor holds or shows in a hand slot.
type MobEquipment struct {
	ActorRuntimeID types.ActorRuntimeID
	NewItem        types.ItemStack
	InventorySlot  uint8
	HotbarSlot     uint8
	ContainerID    uint8
}

func (*MobEquipment) ID() uint32 { return IDMobEquipment }

func (pk *MobEquipment) Marshal(io wire.IO) {
	pk.ActorRuntimeID.Marshal(io)
	pk.NewItem.Marshal(io)
	io.Uint8(&pk.InventorySlot)
	io.Uint8(&pk.HotbarSlot)
	io.Uint8(&pk.ContainerID)
}
