package types

import "github.com/arloliu/bedrockproto/wire"

// BlockPos is a block coordinate as carried on the network: zig-zag varints
// for the horizontal axes and an unsigned varint for Y, which is offset so
// it never goes negative on the wire.
type BlockPos struct {
	X int32
	Y uint32
	Z int32
}

func (p *BlockPos) Marshal(io wire.IO) {
	io.Varint32(&p.X)
	io.Varuint32(&p.Y)
	io.Varint32(&p.Z)
}
