package packet

import "github.com/arloliu/bedrockproto/wire"

// RequestChunkRadius asks the server for a view distance, in chunks.
type RequestChunkRadius struct {
	ChunkRadius    int32
	MaxChunkRadius uint8
}

func (*RequestChunkRadius) ID() uint32 { return IDRequestChunkRadius }

func (pk *RequestChunkRadius) Marshal(io wire.IO) {
	io.Varint32(&pk.ChunkRadius)
	io.Uint8(&pk.MaxChunkRadius)
}
