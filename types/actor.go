package types

import "github.com/arloliu/bedrockproto/wire"

// ActorUniqueID identifies an actor for the whole lifetime of a world. It
// is negative for some engine-spawned actors, so the wire form is a zig-zag
// varint.
type ActorUniqueID int64

// Marshal codecs the identifier as a 64-bit zig-zag varint.
func (id *ActorUniqueID) Marshal(io wire.IO) {
	io.Varint64((*int64)(id))
}

// ActorRuntimeID identifies an actor within a single server session. The
// wire form is an unsigned 64-bit varint.
type ActorRuntimeID uint64

// Marshal codecs the identifier as a 64-bit unsigned varint.
func (id *ActorRuntimeID) Marshal(io wire.IO) {
	io.Varuint64((*uint64)(id))
}
