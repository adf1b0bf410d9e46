package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// Login is the first game packet of a session, sent by the client after
// network settings are exchanged. The protocol version rides in network
// byte order, ahead of the authentication payload.
type Login struct {
	ClientNetworkVersion int32
	ConnectionRequest    types.ConnectionRequest
}

func (*Login) ID() uint32 { return IDLogin }

func (pk *Login) Marshal(io wire.IO) {
	io.BEInt32(&pk.ClientNetworkVersion)
	pk.ConnectionRequest.Marshal(io)
}
