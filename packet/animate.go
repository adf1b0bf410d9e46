package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Animate actions. Actions with the 0x80 bit set are rowing actions and
// carry a timing float.
const (
	AnimateActionSwingArm      int32 = 1
	AnimateActionStopSleep     int32 = 3
	AnimateActionCriticalHit   int32 = 4
	AnimateActionMagicCritical int32 = 5
	AnimateActionRowRight      int32 = 128
	AnimateActionRowLeft       int32 = 129
)

// Animate plays an actor animation visible to other players.
type Animate struct {
	Action         int32
	ActorRuntimeID types.ActorRuntimeID
	BoatRowingTime float32
}

func (*Animate) ID() uint32 { return IDAnimate }

func (pk *Animate) Marshal(io wire.IO) {
	io.Varint32(&pk.Action)
	pk.ActorRuntimeID.Marshal(io)

	if pk.Action&0x80 != 0 {
		io.Float32(&pk.BoatRowingTime)
	}
}
