package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Container IDs with fixed assignments.
const (
	ContainerIDInventory int8 = 0
	ContainerIDFirst     int8 = 1
	ContainerIDLast      int8 = 100
	ContainerIDOffhand   int8 = 119
	ContainerIDArmor     int8 = 120
	ContainerIDUI        int8 = 124
)

// Container types.
const (
	ContainerTypeContainer      int8 = 0
	ContainerTypeWorkbench      int8 = 1
	ContainerTypeFurnace        int8 = 2
	ContainerTypeEnchantment    int8 = 3
	ContainerTypeBrewingStand   int8 = 4
	ContainerTypeAnvil          int8 = 5
	ContainerTypeDispenser      int8 = 6
	ContainerTypeDropper        int8 = 7
	ContainerTypeHopper         int8 = 8
	ContainerTypeCauldron       int8 = 9
	ContainerTypeMinecartChest  int8 = 10
	ContainerTypeMinecartHopper int8 = 11
	ContainerTypeHorse          int8 = 12
	ContainerTypeBeacon         int8 = 13
)

// ContainerOpen opens a container window on the client, anchored either to
// a block position or to a container actor.
type ContainerOpen struct {
	ContainerID   int8
	ContainerType int8
	Position      types.BlockPos
	TargetActorID types.ActorUniqueID
}

func (*ContainerOpen) ID() uint32 { return IDContainerOpen }

func (pk *ContainerOpen) Marshal(io wire.IO) {
	io.Int8(&pk.ContainerID)
	io.Int8(&pk.ContainerType)
	pk.Position.Marshal(io)
	pk.TargetActorID.Marshal(io)
}
