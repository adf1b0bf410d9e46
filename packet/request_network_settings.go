package packet

import "github.com/arloliu/bedrockproto/wire"

// RequestNetworkSettings is the very first packet of a connection, asking
// for the server's NetworkSettings. The version is big-endian so the server
// can reject a mismatched client before any other state exists.
type RequestNetworkSettings struct {
	ClientNetworkVersion int32
}

func (*RequestNetworkSettings) ID() uint32 { return IDRequestNetworkSettings }

func (pk *RequestNetworkSettings) Marshal(io wire.IO) {
	io.BEInt32(&pk.ClientNetworkVersion)
}
