package types

import "github.com/arloliu/bedrockproto/wire"

// ItemStack is an item instance as carried inside inventory packets and
// transaction data. A zero NetworkID denotes the empty stack and ends the
// encoding immediately; extra data (display names, enchantments, can-place
// lists) rides in a length-prefixed blob whose interior format belongs to
// the item serializer, not this codec.
type ItemStack struct {
	NetworkID      int32
	Count          uint16
	Metadata       uint32
	BlockRuntimeID int32
	ExtraData      []byte
}

func (s *ItemStack) Marshal(io wire.IO) {
	io.Varint32(&s.NetworkID)
	if s.NetworkID == 0 {
		// Empty stack, no further fields on the wire.
		return
	}

	io.Uint16(&s.Count)
	io.Varuint32(&s.Metadata)
	io.Varint32(&s.BlockRuntimeID)
	io.ByteSlice(&s.ExtraData)
}
