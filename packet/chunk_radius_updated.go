package packet

import "github.com/arloliu/bedrockproto/wire"

// ChunkRadiusUpdated is the server's granted view distance, in chunks.
type ChunkRadiusUpdated struct {
	ChunkRadius int32
}

func (*ChunkRadiusUpdated) ID() uint32 { return IDChunkRadiusUpdated }

func (pk *ChunkRadiusUpdated) Marshal(io wire.IO) {
	io.Varint32(&pk.ChunkRadius)
}
