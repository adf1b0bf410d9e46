package packet

import "github.com/arloliu/bedrockproto/wire"

// PlayerHotbar synchronizes the selected hotbar slot.
type PlayerHotbar struct {
	SelectedSlot     uint32
	ContainerID      uint8
	ShouldSelectSlot bool
}

func (*PlayerHotbar) ID() uint32 { return IDPlayerHotbar }

func (pk *PlayerHotbar) Marshal(io wire.IO) {
	io.Varuint32(&pk.SelectedSlot)
	io.Uint8(&pk.ContainerID)
	io.Bool(&pk.ShouldSelectSlot)
}
