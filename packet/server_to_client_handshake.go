package packet

import "github.com/arloliu/bedrockproto/wire"

// ServerToClientHandshake carries the JWT holding the server's public key
// and salt, starting encryption of the session. The client answers with an
// empty ClientToServerHandshake once its side is ready.
type ServerToClientHandshake struct {
	HandshakeJWT string
}

func (*ServerToClientHandshake) ID() uint32 { return IDServerToClientHandshake }

func (pk *ServerToClientHandshake) Marshal(io wire.IO) {
	io.String(&pk.HandshakeJWT)
}
