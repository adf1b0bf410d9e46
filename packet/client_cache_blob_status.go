package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// ClientCacheBlobStatus lists which referenced cache blobs the client
// misses and which it already holds, by content hash.
type ClientCacheBlobStatus struct {
	MissHashes []uint64
	HitHashes  []uint64
}

func (*ClientCacheBlobStatus) ID() uint32 { return IDClientCacheBlobStatus }

func (pk *ClientCacheBlobStatus) Marshal(io wire.IO) {
	missCount := uint32(len(pk.MissHashes))
	hitCount := uint32(len(pk.HitHashes))
	io.Varuint32(&missCount)
	io.Varuint32(&hitCount)

	if r, ok := io.(*wire.Reader); ok {
		if (int64(missCount)+int64(hitCount))*8 > int64(r.Remaining()) {
			io.Fail(fmt.Errorf("%w: blob status counts %d+%d exceed frame", errs.ErrTruncated, missCount, hitCount))
			return
		}
		pk.MissHashes = make([]uint64, missCount)
		pk.HitHashes = make([]uint64, hitCount)
	}

	for i := range pk.MissHashes {
		io.Uint64(&pk.MissHashes[i])
	}
	for i := range pk.HitHashes {
		io.Uint64(&pk.HitHashes[i])
	}
}
