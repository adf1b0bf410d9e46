// Package packet defines the game packet shapes, the identifier mapping
// table, and the frame layer that carries packets on the session stream.
//
// One frame is `length || header || body`: an unsigned varint byte length,
// an unsigned varint header bit-packing the 10-bit packet identifier with
// two 2-bit sub-client routing fields, and the packet body. Encode stages
// the body first so the length prefix is exact and canonical; decode bounds
// every shape decoder to its frame and rejects leftovers.
//
// Each packet shape is a flat record with a single Marshal method over
// wire.IO, so its encoder and decoder are derived from one field listing
// and cannot drift apart. Adding a packet means defining its shape and
// adding one registry row.
package packet

import "github.com/arloliu/bedrockproto/wire"

// Packet is one game packet payload. Implementations are plain data: they
// hold no resources and may be freely copied, compared and logged.
type Packet interface {
	wire.Marshaler

	// ID returns the 10-bit packet identifier of this shape.
	ID() uint32
}
