package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// LevelChunk transfers one column of terrain. With client caching enabled
// the sub-chunk payloads are replaced by their content hashes and the
// client asks for the blobs it misses separately; the hashes come from
// types.BlobID.
type LevelChunk struct {
	ChunkX        int32
	ChunkZ        int32
	SubChunkCount uint32
	CacheEnabled  bool
	BlobHashes    []uint64
	RawPayload    []byte
}

func (*LevelChunk) ID() uint32 { return IDLevelChunk }

func (pk *LevelChunk) Marshal(io wire.IO) {
	io.Varint32(&pk.ChunkX)
	io.Varint32(&pk.ChunkZ)
	io.Varuint32(&pk.SubChunkCount)
	io.Bool(&pk.CacheEnabled)

	if pk.CacheEnabled {
		count := uint32(len(pk.BlobHashes))
		io.Varuint32(&count)

		if r, ok := io.(*wire.Reader); ok {
			if int64(count)*8 > int64(r.Remaining()) {
				io.Fail(fmt.Errorf("%w: blob hash count %d exceeds frame", errs.ErrTruncated, count))
				return
			}
			pk.BlobHashes = make([]uint64, count)
		}
		for i := range pk.BlobHashes {
			io.Uint64(&pk.BlobHashes[i])
		}
	}

	io.ByteSlice(&pk.RawPayload)
}
