package packet

import "github.com/arloliu/bedrockproto/wire"

// ClientCacheStatus reports whether the client keeps a chunk blob cache, so
// the server can switch chunk transfer to hash references.
type ClientCacheStatus struct {
	Enabled bool
}

func (*ClientCacheStatus) ID() uint32 { return IDClientCacheStatus }

func (pk *ClientCacheStatus) Marshal(io wire.IO) {
	io.Bool(&pk.Enabled)
}
