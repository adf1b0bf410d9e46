package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// CorrectPlayerMovePrediction rewinds a mispredicted client movement to the
// server's authoritative state at the given tick.
type CorrectPlayerMovePrediction struct {
	Position types.Vec3
	Delta    types.Vec3
	OnGround bool
	Tick     uint64
}

func (*CorrectPlayerMovePrediction) ID() uint32 { return IDCorrectPlayerMovePrediction }

func (pk *CorrectPlayerMovePrediction) Marshal(io wire.IO) {
	pk.Position.Marshal(io)
	pk.Delta.Marshal(io)
	io.Bool(&pk.OnGround)
	io.Varuint64(&pk.Tick)
}
