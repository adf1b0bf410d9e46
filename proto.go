// Package bedrockproto implements the game-packet codec of the Bedrock
// Edition network protocol: the length-prefixed frame layer, the bit-packed
// header combining a 10-bit packet identifier with two 2-bit sub-client
// routing fields, and the full set of typed packet shapes.
//
// The codec sits above the session layer. It consumes frame bytes after
// datagram reliability, encryption and batch compression have been
// stripped, and produces typed packet values; it owns no sockets, threads
// or game state.
//
// # Basic Usage
//
// Encoding a packet to a stream:
//
//	import (
//	    "github.com/arloliu/bedrockproto"
//	    "github.com/arloliu/bedrockproto/packet"
//	)
//
//	pk := &packet.TextMessage{
//	    TextType: packet.TextTypeRaw,
//	    Message:  "hello",
//	}
//	if err := bedrockproto.EncodePacket(buf, pk); err != nil {
//	    // ...
//	}
//
// Decoding frames from a byte slice:
//
//	pk, hdr, n, err := bedrockproto.DecodePacket(data)
//	if errors.Is(err, errs.ErrUnimplementedPacket) {
//	    data = data[n:] // frame boundary is intact, skip and continue
//	}
//
// # Concurrency
//
// The codec holds no shared mutable state; distinct packets may be encoded
// or decoded on distinct goroutines as long as each call owns its buffer.
//
// # Package Structure
//
// This package provides thin wrappers around the packet package for the
// common cases. The packet package carries the shapes, identifier table and
// frame layer; wire the field codecs; types the shared composite values;
// nbt the embedded tag sub-codec; compress the session compression codecs;
// errs the error taxonomy.
package bedrockproto

import (
	"io"

	"github.com/arloliu/bedrockproto/packet"
)

// EncodePacket appends pk as one frame to w with no sub-client routing.
func EncodePacket(w io.Writer, pk packet.Packet) error {
	return packet.Encode(w, pk, 0, 0)
}

// EncodePacketFor appends pk as one frame to w with explicit sub-client
// sender and target slots, each in [0, 3].
func EncodePacketFor(w io.Writer, pk packet.Packet, sender, target byte) error {
	return packet.Encode(w, pk, sender, target)
}

// DecodePacket parses one frame from the start of data, returning the
// packet, its header and the bytes consumed. See packet.Decode for the
// error contract.
func DecodePacket(data []byte) (packet.Packet, packet.Header, int, error) {
	return packet.Decode(data)
}

// ReadPacket reads and decodes one frame from r.
func ReadPacket(r io.Reader) (packet.Packet, packet.Header, error) {
	return packet.ReadFrom(r)
}
