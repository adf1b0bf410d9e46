package packet

import "github.com/arloliu/bedrockproto/wire"

// SetTime synchronizes the world time of day, in ticks.
type SetTime struct {
	Time int32
}

func (*SetTime) ID() uint32 { return IDSetTime }

func (pk *SetTime) Marshal(io wire.IO) {
	io.Varint32(&pk.Time)
}
