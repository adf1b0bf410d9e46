package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// ServerPlayerPostMovePosition corrects the client's camera position after
// a server-side move.
type ServerPlayerPostMovePosition struct {
	Position types.Vec3
}

func (*ServerPlayerPostMovePosition) ID() uint32 { return IDServerPlayerPostMovePosition }

func (pk *ServerPlayerPostMovePosition) Marshal(io wire.IO) {
	pk.Position.Marshal(io)
}
