package types

import "github.com/arloliu/bedrockproto/wire"

// Player movement authority modes.
const (
	MovementModeClient           int32 = 0
	MovementModeServer           int32 = 1
	MovementModeServerWithRewind int32 = 2
)

// PlayerMovementSettings is the movement-authority block of the StartGame
// packet.
type PlayerMovementSettings struct {
	MovementMode                     int32
	RewindHistorySize                int32
	ServerAuthoritativeBlockBreaking bool
}

func (s *PlayerMovementSettings) Marshal(io wire.IO) {
	io.Varint32(&s.MovementMode)
	io.Varint32(&s.RewindHistorySize)
	io.Bool(&s.ServerAuthoritativeBlockBreaking)
}
