package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Move player position modes.
const (
	MoveModeNormal uint8 = iota
	MoveModeReset
	MoveModeTeleport
	MoveModeRotation
)

// MovePlayer moves a player absolutely. Teleports additionally carry their
// cause so the client can pick the right camera behavior.
type MovePlayer struct {
	PlayerRuntimeID         types.ActorRuntimeID
	Position                types.Vec3
	Pitch                   float32
	Yaw                     float32
	HeadYaw                 float32
	PositionMode            uint8
	OnGround                bool
	RiddenRuntimeID         types.ActorRuntimeID
	TeleportCause           int32
	TeleportSourceActorType int32
	Tick                    uint64
}

func (*MovePlayer) ID() uint32 { return IDMovePlayer }

func (pk *MovePlayer) Marshal(io wire.IO) {
	pk.PlayerRuntimeID.Marshal(io)
	pk.Position.Marshal(io)
	io.Float32(&pk.Pitch)
	io.Float32(&pk.Yaw)
	io.Float32(&pk.HeadYaw)
	io.Uint8(&pk.PositionMode)
	if io.Reading() && pk.PositionMode > MoveModeRotation {
		io.Fail(fmt.Errorf("%w: move position mode %d", errs.ErrOutOfRange, pk.PositionMode))
		return
	}

	io.Bool(&pk.OnGround)
	pk.RiddenRuntimeID.Marshal(io)

	if pk.PositionMode == MoveModeTeleport {
		io.Int32(&pk.TeleportCause)
		io.Int32(&pk.TeleportSourceActorType)
	}

	io.Varuint64(&pk.Tick)
}
