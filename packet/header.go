package packet

// Header bit layout: the low 10 bits hold the packet identifier and the two
// 2-bit fields above it route between split-screen sub-clients sharing one
// connection.
const (
	packetIDMask   = 0x03FF
	subClientMask  = 0x3
	senderShift    = 10
	targetShift    = 12
	maxHeaderValue = 0x3FFF
	maxSubClientID = 3
)

// Header is the decoded frame header: the packet identifier plus the
// sub-client routing fields, preserved verbatim across encode and decode.
type Header struct {
	PacketID        uint32
	SenderSubClient byte
	TargetSubClient byte
}

// value packs the header into its wire integer. Both routing fields are
// 0-based; the shifts put them in place and extraction shifts them back
// down.
func (h Header) value() uint32 {
	return uint32(h.TargetSubClient)<<targetShift |
		uint32(h.SenderSubClient)<<senderShift |
		h.PacketID&packetIDMask
}

// parseHeader splits a decoded header varint into its fields. The routing
// fields are shifted down to 0-based values in [0, 3]; this differs from the
// Rust reference, which masks with 0x0C00 and 0x3000 and leaves the results
// scaled in place.
func parseHeader(v uint32) Header {
	return Header{
		PacketID:        v & packetIDMask,
		SenderSubClient: byte(v >> senderShift & subClientMask),
		TargetSubClient: byte(v >> targetShift & subClientMask),
	}
}
